package internal

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prodsched/portal/internal/model"
)

func rec(wo, customer, desc, status string, date model.Date) model.OrderRecord {
	return model.OrderRecord{
		WO:               wo,
		CustomerName:     customer,
		ModelDescription: desc,
		Status:           status,
		ScheduledDate:    date,
	}
}

func TestPrintViewGridGeometry(t *testing.T) {
	// April 2020 starts on a Wednesday: offset 2, 30 days, 5 rows.
	html := RenderMonthlyPrintView(nil, 4, 2020, []string{"Acme Corp"})

	assert.Equal(t, 5*7, strings.Count(html, "<td"))
	// header row plus five body rows
	assert.Equal(t, 6, strings.Count(html, "<tr>"))
	// two leading blanks before day 1
	assert.Contains(t, html, `<tbody><tr><td></td><td></td><td><div class="dn">1</div>`)
	// 32 cells used, so the last row ends with three blanks
	assert.Contains(t, html, `<td></td><td></td><td></td></tr>`)
}

func TestPrintViewRowFormulaNoExtraRow(t *testing.T) {
	// February 2021 starts on a Monday and has 28 days: exactly 4 rows,
	// no blank cells at all.
	html := RenderMonthlyPrintView(nil, 2, 2021, []string{"Acme Corp"})

	assert.Equal(t, 4*7, strings.Count(html, "<td"))
	assert.Equal(t, 5, strings.Count(html, "<tr>"))
	assert.NotContains(t, html, "<td></td>")
}

func TestPrintViewMineSuppressesSold(t *testing.T) {
	records := []model.OrderRecord{
		rec("WO-1", "Acme Corp", "Model X", "Open", model.NewDate(2020, time.April, 10)),
		rec("WO-2", "Rival Inc", "Secret", "Open", model.NewDate(2020, time.April, 10)),
	}
	html := RenderMonthlyPrintView(records, 4, 2020, []string{"Acme Corp"})

	assert.Contains(t, html, "WO: WO-1")
	assert.Contains(t, html, "Model X")
	assert.NotContains(t, html, "SOLD</div>")
	assert.NotContains(t, html, `class="sold"`)
}

func TestPrintViewSoldDateHidesDetail(t *testing.T) {
	records := []model.OrderRecord{
		rec("WO-9", "Rival Inc", "Secret Model", "Open", model.NewDate(2020, time.April, 15)),
	}
	html := RenderMonthlyPrintView(records, 4, 2020, []string{"Acme Corp"})

	assert.Contains(t, html, `<div class="sold-badge">SOLD</div>`)
	assert.NotContains(t, html, "WO-9")
	assert.NotContains(t, html, "Rival Inc")
	assert.NotContains(t, html, "Secret Model")
}

func TestPrintViewStatusClass(t *testing.T) {
	records := []model.OrderRecord{
		rec("WO-1", "Acme Corp", "", "IN-PROGRESS", model.NewDate(2020, time.April, 3)),
	}
	html := RenderMonthlyPrintView(records, 4, 2020, []string{"Acme Corp"})

	assert.Contains(t, html, `<div class="ev s-inprogress">`)
}

func TestPrintViewUnsetDateExcluded(t *testing.T) {
	records := []model.OrderRecord{
		rec("WO-1", "Acme Corp", "", "Open", model.Date{}),
		rec("WO-2", "Acme Corp", "", "Open", model.ParseDate("not a date")),
	}
	html := RenderMonthlyPrintView(records, 4, 2020, []string{"Acme Corp"})

	assert.NotContains(t, html, "WO-1")
	assert.NotContains(t, html, "WO-2")
}

func TestPrintViewOtherMonthsExcluded(t *testing.T) {
	records := []model.OrderRecord{
		rec("WO-1", "Acme Corp", "", "Open", model.NewDate(2020, time.May, 10)),
		rec("WO-2", "Acme Corp", "", "Open", model.NewDate(2021, time.April, 10)),
	}
	html := RenderMonthlyPrintView(records, 4, 2020, []string{"Acme Corp"})

	assert.NotContains(t, html, "WO-1")
	assert.NotContains(t, html, "WO-2")
}

func TestPrintViewCustomerMatchNormalized(t *testing.T) {
	records := []model.OrderRecord{
		rec("WO-1", " Acme Corp ", "", "Open", model.NewDate(2020, time.April, 10)),
	}
	html := RenderMonthlyPrintView(records, 4, 2020, []string{"acme corp"})

	assert.Contains(t, html, "WO: WO-1")
	assert.NotContains(t, html, "sold-badge")
}

func TestPrintViewDeterministic(t *testing.T) {
	records := []model.OrderRecord{
		rec("WO-1", "Acme Corp", "Model X", "Open", model.NewDate(2020, time.April, 10)),
		rec("WO-2", "Rival Inc", "", "Done", model.NewDate(2020, time.April, 15)),
	}
	a := RenderMonthlyPrintView(records, 4, 2020, []string{"Acme Corp"})
	b := RenderMonthlyPrintView(records, 4, 2020, []string{"Acme Corp"})
	require.Equal(t, a, b)
}

func TestPrintViewHeaderAndLegend(t *testing.T) {
	html := RenderMonthlyPrintView(nil, 1, 2026, []string{"Acme Corp", "Beta Industries"})

	assert.Contains(t, html, "<h2>January 2026</h2>")
	assert.Contains(t, html, "<strong>Acme Corp, Beta Industries</strong>")
	assert.Contains(t, html, "<th>Monday</th>")
	assert.Contains(t, html, "<th>Sunday</th>")
	assert.Contains(t, html, "SOLD — Date Unavailable")
}

func TestPrintViewEscapesRecordText(t *testing.T) {
	records := []model.OrderRecord{
		rec("WO<1>", "Acme & Co", `<img src=x>`, "Open", model.NewDate(2020, time.April, 2)),
	}
	html := RenderMonthlyPrintView(records, 4, 2020, []string{"Acme & Co"})

	assert.Contains(t, html, "WO&lt;1&gt;")
	assert.Contains(t, html, "Acme &amp; Co")
	assert.NotContains(t, html, "<img")
}
