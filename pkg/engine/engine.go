// Package engine is the boundary to an external magnetics solver: a
// set of pure functions taking and returning MAS-shaped values. The
// codec guarantees that whatever a Solver returns decodes losslessly
// back into typed documents; the Client enforces that contract on
// every call.
package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mas-protocol/mas-go/pkg/mas"
)

// ErrNoCandidates is returned when the solver adviser produces no
// magnetic for the given inputs.
var ErrNoCandidates = errors.New("engine: no magnetic candidates")

// Solver is the external engine contract. Implementations receive and
// return untyped MAS-shaped values; the Client handles all encoding
// and decoding around them.
type Solver interface {
	// Advise proposes up to maxResults magnetics for the given inputs.
	// Each returned value must decode as a Magnetic.
	Advise(ctx context.Context, inputs map[string]any, maxResults int) ([]any, error)

	// Simulate computes the outputs of one magnetic at the operating
	// points in inputs. Each returned value must decode as an Outputs,
	// one per operating point.
	Simulate(ctx context.Context, inputs, magnetic map[string]any) ([]any, error)
}

// SolverFunc adapts plain functions to the Solver interface, for tests
// and in-process engines.
type SolverFunc struct {
	AdviseFunc   func(ctx context.Context, inputs map[string]any, maxResults int) ([]any, error)
	SimulateFunc func(ctx context.Context, inputs, magnetic map[string]any) ([]any, error)
}

func (f SolverFunc) Advise(ctx context.Context, inputs map[string]any, maxResults int) ([]any, error) {
	return f.AdviseFunc(ctx, inputs, maxResults)
}

func (f SolverFunc) Simulate(ctx context.Context, inputs, magnetic map[string]any) ([]any, error) {
	return f.SimulateFunc(ctx, inputs, magnetic)
}

// Client wraps a Solver with typed encode/decode and request logging.
type Client struct {
	solver Solver
	logger Logger
}

// NewClient creates a client around the given solver. A nil logger
// disables logging.
func NewClient(solver Solver, logger Logger) *Client {
	if logger == nil {
		logger = NoopLogger{}
	}
	return &Client{solver: solver, logger: logger}
}

// Advise asks the solver for magnetic candidates matching the inputs.
func (c *Client) Advise(ctx context.Context, inputs *mas.Inputs, maxResults int) ([]mas.Magnetic, error) {
	id := uuid.NewString()
	c.logger.Log(Event{RequestID: id, Operation: OpAdvise})

	raw, err := c.solver.Advise(ctx, inputs.ToMap().Plain(), maxResults)
	if err != nil {
		c.logger.Log(Event{RequestID: id, Operation: OpAdvise, Err: err})
		return nil, fmt.Errorf("advise: %w", err)
	}
	if len(raw) == 0 {
		c.logger.Log(Event{RequestID: id, Operation: OpAdvise, Err: ErrNoCandidates})
		return nil, ErrNoCandidates
	}

	candidates := make([]mas.Magnetic, 0, len(raw))
	for i, v := range raw {
		doc, err := mas.FromValue(map[string]any{
			"inputs":   inputs.ToMap().Plain(),
			"magnetic": v,
		})
		if err != nil {
			c.logger.Log(Event{RequestID: id, Operation: OpAdvise, Err: err})
			return nil, fmt.Errorf("advise: candidate %d does not decode: %w", i, err)
		}
		candidates = append(candidates, *doc.Magnetic)
	}
	c.logger.Log(Event{RequestID: id, Operation: OpAdvise, Results: len(candidates)})
	return candidates, nil
}

// Simulate computes outputs for one magnetic and attaches them to a
// complete document.
func (c *Client) Simulate(ctx context.Context, inputs *mas.Inputs, magnetic *mas.Magnetic) (*mas.Mas, error) {
	id := uuid.NewString()
	c.logger.Log(Event{RequestID: id, Operation: OpSimulate})

	inputsMap := inputs.ToMap().Plain()
	raw, err := c.solver.Simulate(ctx, inputsMap, magneticPlain(magnetic))
	if err != nil {
		c.logger.Log(Event{RequestID: id, Operation: OpSimulate, Err: err})
		return nil, fmt.Errorf("simulate: %w", err)
	}

	doc, err := mas.FromValue(map[string]any{
		"inputs":   inputsMap,
		"magnetic": magneticPlain(magnetic),
		"outputs":  raw,
	})
	if err != nil {
		c.logger.Log(Event{RequestID: id, Operation: OpSimulate, Err: err})
		return nil, fmt.Errorf("simulate: outputs do not decode: %w", err)
	}
	c.logger.Log(Event{RequestID: id, Operation: OpSimulate, Results: len(doc.Outputs)})
	return doc, nil
}

func magneticPlain(m *mas.Magnetic) map[string]any {
	return m.ToMap().Plain()
}
