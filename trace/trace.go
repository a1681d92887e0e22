package trace

import "encoding/json"

// Trace is an ordered, append-only sequence of entries produced by one
// algorithm invocation. The zero value is ready to use. A Trace is not safe
// for concurrent mutation; every invocation owns its own instance.
type Trace struct {
	entries []Entry
}

// New returns an empty trace.
func New() *Trace { return &Trace{} }

// Append records e at the end of the trace. Nil entries are ignored.
func (t *Trace) Append(e Entry) {
	if e == nil {
		return
	}
	t.entries = append(t.entries, e)
}

// Len returns the number of recorded entries.
func (t *Trace) Len() int {
	if t == nil {
		return 0
	}

	return len(t.entries)
}

// At returns entry i, or nil when i is out of range.
func (t *Trace) At(i int) Entry {
	if t == nil || i < 0 || i >= len(t.entries) {
		return nil
	}

	return t.entries[i]
}

// Entries returns a copy of the recorded sequence.
func (t *Trace) Entries() []Entry {
	if t == nil {
		return nil
	}
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)

	return out
}

// OfKind returns the entries tagged k, in order.
func (t *Trace) OfKind(k Kind) []Entry {
	if t == nil {
		return nil
	}
	var out []Entry
	for _, e := range t.entries {
		if e.Kind() == k {
			out = append(out, e)
		}
	}

	return out
}

// Counts tallies entries per kind.
func (t *Trace) Counts() map[Kind]int {
	out := make(map[Kind]int)
	if t == nil {
		return out
	}
	for _, e := range t.entries {
		out[e.Kind()]++
	}

	return out
}

type wireEntry struct {
	Kind  Kind  `json:"kind"`
	Entry Entry `json:"entry"`
}

// MarshalJSON encodes the trace as [{"kind": "...", "entry": {...}}, ...].
func (t *Trace) MarshalJSON() ([]byte, error) {
	wire := make([]wireEntry, 0, t.Len())
	if t != nil {
		for _, e := range t.entries {
			wire = append(wire, wireEntry{Kind: e.Kind(), Entry: e})
		}
	}

	return json.Marshal(wire)
}
