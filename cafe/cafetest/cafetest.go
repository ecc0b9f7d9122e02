// Package cafetest provides Given/When/Then assertions over cafe.Evolve.
//
//	cafetest.Given(t, cafe.InitialState()).
//		When(cafe.OpenTab{Tab: tab}).
//		ThenStateShouldBe(cafe.OpenedTab{Tab: tab}).
//		WithEvents(cafe.TabOpened{Tab: tab})
package cafetest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TechArp/CafeApp/cafe"
	"github.com/TechArp/CafeApp/outcome"
)

// Scenario holds the state a command is evolved from.
type Scenario struct {
	t     testing.TB
	state cafe.State
}

// Given starts a scenario from state.
func Given(t testing.TB, state cafe.State) *Scenario {
	t.Helper()
	return &Scenario{t: t, state: state}
}

// When evolves the scenario state with cmd.
func (s *Scenario) When(cmd cafe.Command) *Result {
	s.t.Helper()
	return &Result{
		t:      s.t,
		cmd:    cmd,
		result: cafe.Evolve(s.state, cmd),
	}
}

// Result is the evolution of one command, ready for assertions.
type Result struct {
	t      testing.TB
	cmd    cafe.Command
	result outcome.Outcome[cafe.Evolution, cafe.Error]
}

// ThenStateShouldBe requires the command to succeed and asserts the next state.
func (r *Result) ThenStateShouldBe(expected cafe.State) *Result {
	r.t.Helper()

	evolution := r.evolution()
	assert.True(r.t, expected.Equal(evolution.State),
		"%s: expected state %#v, got %#v", nameOf(r.cmd), expected, evolution.State)
	return r
}

// WithEvents requires the command to succeed and asserts the produced events in order.
func (r *Result) WithEvents(expected ...cafe.Event) *Result {
	r.t.Helper()

	evolution := r.evolution()
	assert.True(r.t, cafe.EventsEqual(expected, evolution.Events),
		"%s: expected events %#v, got %#v", nameOf(r.cmd), expected, evolution.Events)
	return r
}

// ShouldFailWith asserts the command was rejected with exactly the expected errors.
func (r *Result) ShouldFailWith(expected ...cafe.Error) {
	r.t.Helper()

	require.True(r.t, r.result.IsFailure(), "%s: expected failure, got success", nameOf(r.cmd))

	got := r.result.Errors()
	require.Len(r.t, got, len(expected), "%s: errors %v", nameOf(r.cmd), got)
	for i := range expected {
		assert.ErrorIs(r.t, got[i], expected[i])
	}
}

// Evolution returns the successful evolution, failing the test otherwise.
func (r *Result) Evolution() cafe.Evolution {
	r.t.Helper()
	return r.evolution()
}

func (r *Result) evolution() cafe.Evolution {
	r.t.Helper()

	evolution, ok := r.result.Value()
	require.True(r.t, ok, "%s: unexpected errors %v", nameOf(r.cmd), r.result.Errors())
	return evolution
}

func nameOf(cmd cafe.Command) string {
	if cmd == nil {
		return "<nil>"
	}
	return cmd.Name()
}
