package internal

import (
	"strings"

	"github.com/prodsched/portal/internal/model"
)

// Event is one fullcalendar entry for the live calendar view.
type Event struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Start  string `json:"start"`
	AllDay bool   `json:"allDay"`
	Colors
	ExtendedProps EventProps `json:"extendedProps"`
}

// EventProps carries record detail for owned events, or just the sold flag.
type EventProps struct {
	WO               string `json:"wo,omitempty"`
	CustomerName     string `json:"customer_name,omitempty"`
	ModelDescription string `json:"model_description,omitempty"`
	Status           string `json:"status,omitempty"`
	Sold             bool   `json:"sold,omitempty"`
}

// CalendarEvents maps order records to calendar events. Owned records carry
// full detail and their status colors; everyone else's become opaque SOLD
// markers so the viewer only learns the date is taken.
func CalendarEvents(records []model.OrderRecord, myCustomers []string) []Event {
	events := make([]Event, 0, len(records))
	for _, r := range records {
		wo := strings.TrimSpace(r.WO)
		if wo == "" || !r.ScheduledDate.Valid {
			continue
		}

		cust := strings.TrimSpace(r.CustomerName)
		desc := strings.TrimSpace(r.ModelDescription)
		status := strings.TrimSpace(r.Status)

		if !isMine(cust, myCustomers) {
			events = append(events, Event{
				ID:            "sold_" + wo,
				Title:         "● SOLD",
				Start:         r.ScheduledDate.ISO(),
				AllDay:        true,
				Colors:        SoldColors,
				ExtendedProps: EventProps{Sold: true},
			})
			continue
		}

		title := wo
		if cust != "" {
			title += " | " + cust
		}
		if desc != "" {
			title += " — " + desc
		}
		events = append(events, Event{
			ID:     wo,
			Title:  title,
			Start:  r.ScheduledDate.ISO(),
			AllDay: true,
			Colors: ColorsFor(status),
			ExtendedProps: EventProps{
				WO:               wo,
				CustomerName:     cust,
				ModelDescription: desc,
				Status:           status,
			},
		})
	}
	return events
}
