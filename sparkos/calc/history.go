package calc

// DefaultHistoryLimit is the number of entries kept when Options.HistoryLimit is unset.
const DefaultHistoryLimit = 5

// Entry is one completed calculation.
type Entry struct {
	Expr  string
	Value string
}

// String renders the entry as "<expr> = <value>".
func (e Entry) String() string {
	return e.Expr + " = " + e.Value
}

// History is a bounded, most-recent-first log of entries.
type History struct {
	limit   int
	entries []Entry
}

// NewHistory returns an empty history that keeps at most limit entries.
// A non-positive limit selects DefaultHistoryLimit.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{limit: limit, entries: make([]Entry, 0, limit)}
}

// Push inserts e at the front, evicting the oldest entry when full.
func (h *History) Push(e Entry) {
	if len(h.entries) < h.limit {
		h.entries = append(h.entries, Entry{})
	}
	copy(h.entries[1:], h.entries)
	h.entries[0] = e
}

// Entries returns a copy of the entries, most recent first.
func (h *History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Strings returns the rendered entries, most recent first.
func (h *History) Strings() []string {
	out := make([]string, len(h.entries))
	for i, e := range h.entries {
		out[i] = e.String()
	}
	return out
}

// Clear drops every entry.
func (h *History) Clear() {
	h.entries = h.entries[:0]
}
