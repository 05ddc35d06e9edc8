package internal

import (
	"strings"
	"time"

	"github.com/prodsched/portal/internal/model"
)

// MatchMode selects how a text filter compares against a record field.
type MatchMode string

const (
	MatchContains MatchMode = "Contains"
	MatchExact    MatchMode = "Exact"
)

// DateFilterType selects the date predicate of the table view.
type DateFilterType string

const (
	DateFilterNone  DateFilterType = "None"
	DateFilterExact DateFilterType = "Exact Date"
	DateFilterMonth DateFilterType = "Month"
)

// Filters holds the table-view filter form. Empty text fields and
// "All" selections are no-ops.
type Filters struct {
	Quote      string
	QuoteMatch MatchMode

	PO      string
	POMatch MatchMode

	Status      string
	StatusMatch MatchMode

	// Customer narrows within the viewer's own customers; ownership
	// scoping happens before filters run.
	Customer string

	Model      string
	ModelMatch MatchMode

	DateFilter DateFilterType
	ExactDate  model.Date
	Month      int
	Year       int
}

func isMine(customer string, myCustomers []string) bool {
	val := strings.ToLower(strings.TrimSpace(customer))
	for _, c := range myCustomers {
		if val == strings.ToLower(strings.TrimSpace(c)) {
			return true
		}
	}
	return false
}

// FilterMine keeps only records owned by one of the viewer's customers.
// Matching is trimmed and case-insensitive.
func FilterMine(records []model.OrderRecord, myCustomers []string) []model.OrderRecord {
	out := make([]model.OrderRecord, 0, len(records))
	for _, r := range records {
		if isMine(r.CustomerName, myCustomers) {
			out = append(out, r)
		}
	}
	return out
}

func matchText(value, filter string, mode MatchMode) bool {
	if mode == MatchExact {
		return strings.TrimSpace(value) == strings.TrimSpace(filter)
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(filter))
}

// ApplyFilters runs every active filter over the records and returns the
// survivors in their original order.
func ApplyFilters(records []model.OrderRecord, f Filters) []model.OrderRecord {
	out := make([]model.OrderRecord, 0, len(records))
	for _, r := range records {
		if f.Quote != "" && !matchText(r.Quote, f.Quote, f.QuoteMatch) {
			continue
		}
		if f.PO != "" && !matchText(r.PONumber, f.PO, f.POMatch) {
			continue
		}
		if f.Status != "" && f.Status != "All" && !matchStatus(r.Status, f.Status, f.StatusMatch) {
			continue
		}
		if f.Customer != "" && f.Customer != "All" &&
			strings.TrimSpace(r.CustomerName) != strings.TrimSpace(f.Customer) {
			continue
		}
		if f.Model != "" && !matchText(r.ModelDescription, f.Model, f.ModelMatch) {
			continue
		}
		switch f.DateFilter {
		case DateFilterExact:
			if f.ExactDate.Valid && !r.ScheduledDate.Equal(f.ExactDate) {
				continue
			}
		case DateFilterMonth:
			if f.Month >= 1 && f.Month <= 12 && f.Year != 0 &&
				!r.ScheduledDate.In(time.Month(f.Month), f.Year) {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

// matchStatus differs from matchText in its exact mode: statuses compare
// case-insensitively since they are free text, not codes.
func matchStatus(value, filter string, mode MatchMode) bool {
	if mode == MatchExact {
		return strings.EqualFold(strings.TrimSpace(value), strings.TrimSpace(filter))
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(filter))
}
