package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory_PushEvictsOldest(t *testing.T) {
	h := NewHistory(3)
	for _, v := range []string{"1", "2", "3", "4"} {
		h.Push(Entry{Expr: v, Value: v})
	}
	assert.Equal(t, 3, len(h.entries))
	assert.Equal(t, []string{"4 = 4", "3 = 3", "2 = 2"}, h.Strings())
}

func TestHistory_DefaultLimitAndClear(t *testing.T) {
	h := NewHistory(0)
	assert.Equal(t, DefaultHistoryLimit, h.limit)

	h.Push(Entry{Expr: "π", Value: "3.141592653589793"})
	entries := h.Entries()
	entries[0].Value = "mutated"
	assert.Equal(t, "3.141592653589793", h.Entries()[0].Value, "Entries returns a copy")

	h.Clear()
	assert.Zero(t, len(h.entries))
	assert.Empty(t, h.Strings())
}
