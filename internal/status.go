package internal

import "strings"

// Category is one of the fixed status buckets the portal renders with.
// Free-text statuses from the order book are folded into these by Normalize.
type Category string

const (
	CategoryOpen       Category = "open"
	CategoryInProgress Category = "in progress"
	CategoryCompleted  Category = "completed"
	CategoryOnHold     Category = "on hold"
	CategoryCancelled  Category = "cancelled"
	CategoryDefault    Category = "default"
)

// Colors is the display triple attached to a category. The json tags match
// the fullcalendar event fields so events can embed them directly.
type Colors struct {
	Background string `json:"backgroundColor"`
	Border     string `json:"borderColor"`
	Text       string `json:"textColor"`
}

var StatusColors = map[Category]Colors{
	CategoryOpen:       {Background: "#2563eb", Border: "#1d4ed8", Text: "#ffffff"},
	CategoryInProgress: {Background: "#d97706", Border: "#b45309", Text: "#ffffff"},
	CategoryCompleted:  {Background: "#16a34a", Border: "#15803d", Text: "#ffffff"},
	CategoryOnHold:     {Background: "#6b7280", Border: "#4b5563", Text: "#ffffff"},
	CategoryCancelled:  {Background: "#dc2626", Border: "#b91c1c", Text: "#ffffff"},
	CategoryDefault:    {Background: "#0f766e", Border: "#115e59", Text: "#ffffff"},
}

// SoldColors marks dates taken by other customers. Not a status category.
var SoldColors = Colors{Background: "#cbd5e1", Border: "#94a3b8", Text: "#475569"}

// statusKeywordRules is evaluated in order; the first category whose keyword
// appears in the canonical form wins, so the order itself is load-bearing.
var statusKeywordRules = []struct {
	category Category
	keywords []string
}{
	{CategoryOpen, []string{"open", "new", "pending"}},
	{CategoryInProgress, []string{"in progress", "inprogress", "wip", "started", "working"}},
	{CategoryCompleted, []string{"completed", "complete", "done", "closed", "shipped", "delivered"}},
	{CategoryOnHold, []string{"on hold", "hold", "paused", "waiting"}},
	{CategoryCancelled, []string{"cancelled", "canceled", "void"}},
}

// canonicalStatus lowercases the status and collapses every run of
// non-alphanumeric characters to a single space, trimmed at both ends.
func canonicalStatus(s string) string {
	var b strings.Builder
	pendingSpace := false
	for _, r := range strings.ToLower(s) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pendingSpace = true
			continue
		}
		if pendingSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		pendingSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// Normalize maps arbitrary status text onto exactly one Category.
// It never fails: unrecognized or empty text falls back to CategoryDefault.
func Normalize(status string) Category {
	compact := canonicalStatus(status)
	if compact == "" {
		return CategoryDefault
	}
	if _, ok := StatusColors[Category(compact)]; ok {
		return Category(compact)
	}
	for _, rule := range statusKeywordRules {
		for _, k := range rule.keywords {
			if strings.Contains(compact, k) {
				return rule.category
			}
		}
	}
	return CategoryDefault
}

// ColorsFor resolves status text straight to its display colors.
func ColorsFor(status string) Colors {
	return StatusColors[Normalize(status)]
}

// CSSClass is the print-view class for the category: "s-" plus the
// category key with spaces removed, e.g. "s-inprogress".
func (c Category) CSSClass() string {
	return "s-" + strings.ReplaceAll(string(c), " ", "")
}
