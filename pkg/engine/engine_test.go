package engine

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mas-protocol/mas-go/pkg/builder"
	"github.com/mas-protocol/mas-go/pkg/mas"
)

// recordingLogger captures events for assertions.
type recordingLogger struct {
	mu     sync.Mutex
	events []Event
}

func (l *recordingLogger) Log(e Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, e)
}

func testInputs(t *testing.T) *mas.Inputs {
	t.Helper()
	inputs, err := builder.NewInductor().Inductance(100e-6, 0.1).Idc(2).IacPP(0.5).Build()
	require.NoError(t, err)
	return inputs
}

func candidateMagnetic() map[string]any {
	return map[string]any{
		"core": map[string]any{
			"functionalDescription": map[string]any{
				"material": "3C97",
				"shape":    "ETD 29/16/10",
				"gapping": []any{
					map[string]any{"length": 0.0005, "type": "subtractive"},
				},
			},
		},
		"coil": map[string]any{
			"bobbin": "Basic",
			"functionalDescription": []any{
				map[string]any{
					"name":            "primary",
					"numberTurns":     24,
					"numberParallels": 1,
					"isolationSide":   "primary",
					"wire":            "Round 0.5",
				},
			},
		},
	}
}

func TestAdviseDecodesCandidates(t *testing.T) {
	var gotMax int
	solver := SolverFunc{
		AdviseFunc: func(_ context.Context, inputs map[string]any, maxResults int) ([]any, error) {
			gotMax = maxResults
			require.Contains(t, inputs, "designRequirements")
			return []any{candidateMagnetic()}, nil
		},
	}
	logger := &recordingLogger{}
	client := NewClient(solver, logger)

	candidates, err := client.Advise(context.Background(), testInputs(t), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, gotMax)
	require.Len(t, candidates, 1)
	assert.Equal(t, "3C97", candidates[0].Core.FunctionalDescription.Material)

	require.Len(t, logger.events, 2)
	assert.Equal(t, OpAdvise, logger.events[0].Operation)
	assert.NotEmpty(t, logger.events[0].RequestID)
	assert.Equal(t, 1, logger.events[1].Results)
}

func TestAdviseEmptyResult(t *testing.T) {
	solver := SolverFunc{
		AdviseFunc: func(context.Context, map[string]any, int) ([]any, error) {
			return nil, nil
		},
	}
	_, err := NewClient(solver, nil).Advise(context.Background(), testInputs(t), 5)
	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestAdviseInvalidCandidateFails(t *testing.T) {
	solver := SolverFunc{
		AdviseFunc: func(context.Context, map[string]any, int) ([]any, error) {
			return []any{map[string]any{"core": "not an object"}}, nil
		},
	}
	_, err := NewClient(solver, nil).Advise(context.Background(), testInputs(t), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "candidate 0")
}

func TestSimulateRoundTripsOutputs(t *testing.T) {
	solver := SolverFunc{
		SimulateFunc: func(_ context.Context, inputs, magnetic map[string]any) ([]any, error) {
			require.Contains(t, magnetic, "core")
			return []any{
				map[string]any{
					"coreLosses":    map[string]any{"coreLosses": 0.31},
					"windingLosses": map[string]any{"windingLosses": 0.44},
				},
			}, nil
		},
	}
	client := NewClient(solver, nil)

	inputs := testInputs(t)
	adviseSolver := SolverFunc{
		AdviseFunc: func(context.Context, map[string]any, int) ([]any, error) {
			return []any{candidateMagnetic()}, nil
		},
	}
	candidates, err := NewClient(adviseSolver, nil).Advise(context.Background(), inputs, 1)
	require.NoError(t, err)

	doc, err := client.Simulate(context.Background(), inputs, &candidates[0])
	require.NoError(t, err)
	require.Len(t, doc.Outputs, 1)
	assert.Equal(t, 0.31, doc.Outputs[0].CoreLosses.CoreLosses)
	assert.Equal(t, 0.44, doc.Outputs[0].WindingLosses.WindingLosses)

	// The simulated document must survive the codec unchanged.
	data, err := doc.ToJSON()
	require.NoError(t, err)
	again, err := mas.FromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, doc.Outputs[0].CoreLosses.CoreLosses, again.Outputs[0].CoreLosses.CoreLosses)
}

func TestSolverErrorsArePropagated(t *testing.T) {
	boom := errors.New("numerical blowup")
	solver := SolverFunc{
		SimulateFunc: func(context.Context, map[string]any, map[string]any) ([]any, error) {
			return nil, boom
		},
	}
	logger := &recordingLogger{}
	client := NewClient(solver, logger)

	adviseSolver := SolverFunc{
		AdviseFunc: func(context.Context, map[string]any, int) ([]any, error) {
			return []any{candidateMagnetic()}, nil
		},
	}
	inputs := testInputs(t)
	candidates, err := NewClient(adviseSolver, nil).Advise(context.Background(), inputs, 1)
	require.NoError(t, err)

	_, err = client.Simulate(context.Background(), inputs, &candidates[0])
	assert.ErrorIs(t, err, boom)
	require.Len(t, logger.events, 2)
	assert.ErrorIs(t, logger.events[1].Err, boom)
}
