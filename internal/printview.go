package internal

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/prodsched/portal/internal/model"
)

type printEvent struct {
	wo     string
	cust   string
	model  string
	status string
}

// RenderMonthlyPrintView lays the month's orders onto a Monday-first calendar
// grid and serializes it as a self-contained printable HTML document.
//
// Records dated outside (month, year) or with unset dates are skipped.
// Dates holding only other customers' orders get a generic SOLD badge; any
// owned order on a date suppresses that date's badge.
func RenderMonthlyPrintView(records []model.OrderRecord, month, year int, myCustomers []string) string {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthLabel := first.Format("January 2006")
	customersLabel := strings.Join(myCustomers, ", ")

	myEvents := make(map[int][]printEvent)
	soldDays := make(map[int]bool)

	for _, r := range records {
		if !r.ScheduledDate.In(time.Month(month), year) {
			continue
		}
		day := r.ScheduledDate.Time.Day()
		if isMine(r.CustomerName, myCustomers) {
			myEvents[day] = append(myEvents[day], printEvent{
				wo:     strings.TrimSpace(r.WO),
				cust:   strings.TrimSpace(r.CustomerName),
				model:  strings.TrimSpace(r.ModelDescription),
				status: strings.TrimSpace(r.Status),
			})
		} else {
			soldDays[day] = true
		}
	}

	// Monday-first weekday offset of day 1, and the month's day count.
	fdw := (int(first.Weekday()) + 6) % 7
	numDays := first.AddDate(0, 1, -1).Day()
	weeks := (numDays+fdw-1)/7 + 1

	var b strings.Builder
	fmt.Fprintf(&b, `<!DOCTYPE html>
<html>
<head>
<title>%s — %s</title>
<style>
@media print { @page { size: letter landscape; margin: 0.4in; } body { margin:0; } }
* { -webkit-print-color-adjust:exact !important; print-color-adjust:exact !important; }
body { font-family:Arial,sans-serif; padding:10px; background:white; max-width:10.2in; margin:0 auto; }
.header { text-align:center; margin-bottom:10px; }
.header h2 { margin:0; font-size:16px; color:#1e3a5f; font-weight:700; }
.header .sub { font-size:12px; color:#64748b; margin-top:4px; }
table { width:100%%; border-collapse:collapse; table-layout:fixed; }
th { background:#2563eb; color:white; padding:6px; text-align:center;
      border:1px solid #999; font-size:11px; width:14.28%%; }
td { border:1px solid #ccc; padding:5px; vertical-align:top; width:14.28%%;
      height:110px; background:white; }
td.sold { background:#f8fafc; }
.dn { font-weight:bold; font-size:12px; color:#333; margin-bottom:4px; }
.ev { margin-bottom:4px; padding:4px; border-radius:3px; font-size:9px; line-height:1.3; }
.s-open       { background:#dbeafe; border-left:3px solid #2563eb; }
.s-inprogress { background:#fed7aa; border-left:3px solid #d97706; }
.s-completed  { background:#dcfce7; border-left:3px solid #16a34a; }
.s-onhold     { background:#e5e7eb; border-left:3px solid #6b7280; }
.s-cancelled  { background:#fee2e2; border-left:3px solid #dc2626; }
.s-default    { background:#ccfbf1; border-left:3px solid #0f766e; }
.wo  { font-weight:bold; font-size:10px; color:#000; }
.cu  { font-size:9.5px; color:#1f2937; font-weight:500; }
.md  { font-size:9px; color:#374151; }
.sold-badge { text-align:center; margin-top:8px; padding:5px; background:#cbd5e1;
               color:#475569; border-radius:3px; font-weight:bold; font-size:10px; }
.legend { margin-top:12px; padding:8px 12px; background:#f9fafb;
           border:1px solid #ddd; border-radius:4px; }
.lt { font-weight:bold; font-size:11px; margin-bottom:6px; }
.li { display:inline-flex; align-items:center; gap:5px; font-size:10px; margin-right:12px; }
.lc { width:14px; height:14px; border-radius:2px; display:inline-block; }
</style>
</head>
<body>
<div class="header">
  <h2>%s</h2>
  <div class="sub">Production Schedule — <strong>%s</strong></div>
</div>
<table>
<thead><tr>
  <th>Monday</th><th>Tuesday</th><th>Wednesday</th>
  <th>Thursday</th><th>Friday</th><th>Saturday</th><th>Sunday</th>
</tr></thead>
<tbody>`,
		html.EscapeString(monthLabel), html.EscapeString(customersLabel),
		html.EscapeString(monthLabel), html.EscapeString(customersLabel))

	cur := 1
	for week := 0; week < weeks; week++ {
		b.WriteString("<tr>")
		for dow := 0; dow < 7; dow++ {
			switch {
			case week == 0 && dow < fdw:
				b.WriteString("<td></td>")
			case cur > numDays:
				b.WriteString("<td></td>")
			default:
				events, mine := myEvents[cur]
				isSold := soldDays[cur] && !mine
				if isSold {
					b.WriteString(`<td class="sold">`)
				} else {
					b.WriteString("<td>")
				}
				fmt.Fprintf(&b, `<div class="dn">%d</div>`, cur)
				if mine {
					for _, ev := range events {
						fmt.Fprintf(&b, `<div class="ev %s"><div class="wo">WO: %s</div>`,
							Normalize(ev.status).CSSClass(), html.EscapeString(ev.wo))
						if ev.cust != "" {
							fmt.Fprintf(&b, `<div class="cu">%s</div>`, html.EscapeString(ev.cust))
						}
						if ev.model != "" {
							fmt.Fprintf(&b, `<div class="md">%s</div>`, html.EscapeString(ev.model))
						}
						b.WriteString("</div>")
					}
				} else if isSold {
					b.WriteString(`<div class="sold-badge">SOLD</div>`)
				}
				b.WriteString("</td>")
				cur++
			}
		}
		b.WriteString("</tr>")
	}

	b.WriteString(`
</tbody></table>
<div class="legend"><div class="lt">Legend:</div>
  <div class="li"><span class="lc" style="background:#2563eb"></span> Open</div>
  <div class="li"><span class="lc" style="background:#d97706"></span> In Progress</div>
  <div class="li"><span class="lc" style="background:#16a34a"></span> Completed</div>
  <div class="li"><span class="lc" style="background:#6b7280"></span> On Hold</div>
  <div class="li"><span class="lc" style="background:#dc2626"></span> Cancelled</div>
  <div class="li"><span class="lc" style="background:#cbd5e1"></span> SOLD — Date Unavailable</div>
</div>
</body></html>`)

	return b.String()
}
