package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderRecord is one row of the order book as served by the data provider.
// The portal never mutates these.
type OrderRecord struct {
	WO               string              `json:"wo"`
	Quote            string              `json:"quote"`
	PONumber         string              `json:"po_number"`
	Status           string              `json:"status"`
	CustomerName     string              `json:"customer_name"`
	ModelDescription string              `json:"model_description"`
	ScheduledDate    Date                `json:"scheduled_date"`
	CompletionDate   Date                `json:"completion_date"`
	Price            decimal.NullDecimal `json:"price"`
}

// Stats is the headline row shown above the table view.
type Stats struct {
	Orders     int             `json:"orders"`
	TotalValue decimal.Decimal `json:"total_value"`
	Pending    int             `json:"pending"`
}

// Date is a civil calendar date. The zero value means "unset";
// records with unset dates are skipped by the calendar views.
type Date struct {
	Time  time.Time
	Valid bool
}

// NewDate builds a set date from its parts.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), Valid: true}
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"01/02/2006",
}

// ParseDate accepts the date shapes the upstream store emits. Anything it
// cannot parse comes back unset rather than as an error.
func ParseDate(s string) Date {
	s = strings.TrimSpace(s)
	if s == "" || s == "None" || s == "NaT" {
		return Date{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return NewDate(t.Year(), t.Month(), t.Day())
		}
	}
	return Date{}
}

// ISO returns the date as yyyy-mm-dd, or "" when unset.
func (d Date) ISO() string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format("2006-01-02")
}

// In reports whether the date is set and falls inside the given month.
func (d Date) In(month time.Month, year int) bool {
	return d.Valid && d.Time.Month() == month && d.Time.Year() == year
}

// Equal compares two dates; unset dates compare equal to nothing.
func (d Date) Equal(o Date) bool {
	return d.Valid && o.Valid && d.Time.Equal(o.Time)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return []byte(`"` + d.ISO() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		*d = Date{}
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	*d = ParseDate(s)
	return nil
}
