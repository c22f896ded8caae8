package listbox

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tri is a pattern cell: 0 false, 1 true, 2 either.
type tri int

const (
	no tri = iota
	yes
	either
)

func (t tri) matches(b bool) bool {
	return t == either || (t == yes) == b
}

// placementRules is the first-match rule list the decision table is derived
// from, in the order last, newPage, roomHeader, roomRowNext, roomRow, first.
var placementRules = []struct {
	pattern [6]tri
	outcome Outcome
}{
	{[6]tri{either, either, either, either, no, either}, Retry},
	{[6]tri{no, yes, yes, yes, yes, either}, Lead},
	{[6]tri{no, yes, yes, no, yes, either}, FullPage},
	{[6]tri{no, no, either, yes, either, no}, Body},
	{[6]tri{no, no, no, no, yes, no}, Bottom},
	{[6]tri{no, no, yes, either, either, yes}, Lead},
	{[6]tri{either, yes, no, no, yes, either}, FullPage},
	{[6]tri{yes, no, no, either, yes, no}, Bottom},
	{[6]tri{yes, yes, no, either, yes, either}, FullPage},
	{[6]tri{yes, no, no, either, yes, yes}, FullPage},
	{[6]tri{no, yes, no, yes, either, either}, Body},
	{[6]tri{no, no, no, yes, yes, yes}, Body},
	{[6]tri{no, no, no, no, yes, yes}, Retry},
	{[6]tri{yes, no, yes, either, yes, no}, Bottom},
	// a lone row below other content: header when there is one, otherwise
	// a full page item so the row still gets its own frame
	{[6]tri{yes, no, yes, either, yes, yes}, LeadOrFull},
	{[6]tri{no, no, yes, no, yes, no}, Bottom},
	{[6]tri{yes, yes, yes, either, either, either}, LeadOrFull},
}

func stateFromKey(k int) rowState {
	on := func(shift uint) bool { return k&(1<<shift) != 0 }
	return rowState{
		last:        on(5),
		newPage:     on(4),
		roomHeader:  on(3),
		roomRowNext: on(2),
		roomRow:     on(1),
		first:       on(0),
	}
}

func firstMatch(s rowState) (Outcome, bool) {
	in := [6]bool{s.last, s.newPage, s.roomHeader, s.roomRowNext, s.roomRow, s.first}
	for _, r := range placementRules {
		ok := true
		for i, p := range r.pattern {
			if !p.matches(in[i]) {
				ok = false
				break
			}
		}
		if ok {
			return r.outcome, true
		}
	}
	return outcomeUnset, false
}

func TestDecisions_Exhaustive(t *testing.T) {
	for k := 0; k < 64; k++ {
		s := stateFromKey(k)
		require.Equal(t, k, s.key())

		want, ok := firstMatch(s)
		require.True(t, ok, "rules leave %s unmapped", s)
		assert.Equal(t, want, classify(s), "key %06b (%s)", k, s)
	}
}

func TestDecisions_NoRoomAlwaysRetries(t *testing.T) {
	for k := 0; k < 64; k++ {
		s := stateFromKey(k)
		if !s.roomRow {
			assert.Equal(t, Retry, classify(s), s.String())
		}
	}
}

func TestDecisions_FreshPageNeverRetries(t *testing.T) {
	for k := 0; k < 64; k++ {
		s := stateFromKey(k)
		if s.newPage && s.roomRow {
			assert.NotEqual(t, Retry, classify(s), s.String())
		}
	}
}

func TestDecisions_LastRowClosesPage(t *testing.T) {
	// A last row drawn as data always ends the segment so its frame and
	// column lines are flushed.
	for k := 0; k < 64; k++ {
		s := stateFromKey(k)
		if !s.last {
			continue
		}
		switch classify(s) {
		case Body, Lead:
			t.Errorf("last row classified %s for %s", classify(s), s)
		}
	}
}

func TestClassify_PanicsOnUnsetEntry(t *testing.T) {
	saved := decisions[0]
	decisions[0] = outcomeUnset
	defer func() { decisions[0] = saved }()

	assert.PanicsWithValue(t,
		fmt.Sprintf("listbox: no placement decision for %s", stateFromKey(0)),
		func() { classify(stateFromKey(0)) })
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "lead-or-full", LeadOrFull.String())
	assert.Equal(t, "outcome(0)", outcomeUnset.String())
}
