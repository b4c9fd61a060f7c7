// Package process provides the Transform Process: an ordered sequence of
// TransformSteps validated against an input Schema at construction time.
// Building a Process folds every step's MapSchema over the input Schema,
// so the final Schema is known - and every schema-shape error is caught -
// before any Row flows through the pipeline.
package process

import (
	"github.com/go-reshape/reshape"
	"github.com/go-reshape/reshape/errors"
)

type boundStep struct {
	step         reshape.TransformStep
	inputSchema  reshape.Schema
	outputSchema reshape.Schema
}

// Builder accumulates TransformSteps against an initial Schema. Each Add
// immediately folds the step's schema transformation into the running
// Schema, so an invalid step is rejected at the exact index which
// introduced it.
type Builder struct {
	initial reshape.Schema
	current reshape.Schema
	steps   []boundStep
}

// NewBuilder starts building a Process for rows shaped by inputSchema
func NewBuilder(inputSchema reshape.Schema) *Builder {
	return &Builder{initial: inputSchema, current: inputSchema}
}

// Add appends a step, folding its MapSchema into the running Schema. A
// schema failure is returned as a StepError carrying the step's index and
// name, and leaves the Builder unchanged.
func (b *Builder) Add(step reshape.TransformStep) error {
	next, err := step.MapSchema(b.current)
	if err != nil {
		return errors.StepError{Index: len(b.steps), Name: step.Name(), Err: err}
	}
	b.steps = append(b.steps, boundStep{step: step, inputSchema: b.current, outputSchema: next})
	b.current = next
	return nil
}

// Schema returns the running Schema: the shape a Row would have after the
// steps added so far
func (b *Builder) Schema() reshape.Schema {
	return b.current
}

// Build finalizes the accumulated steps into an immutable Process
func (b *Builder) Build() (*Process, error) {
	if b.initial == nil || b.initial.NumColumns() == 0 {
		return nil, errors.EmptySchemaError{}
	}
	steps := make([]boundStep, len(b.steps))
	copy(steps, b.steps)
	return &Process{
		inputSchema: b.initial,
		finalSchema: b.current,
		steps:       steps,
	}, nil
}

// Build constructs a Process from an input Schema and an ordered step
// sequence in one call, type-checking the whole sequence before any Row is
// processed
func Build(inputSchema reshape.Schema, steps ...reshape.TransformStep) (*Process, error) {
	b := NewBuilder(inputSchema)
	for _, step := range steps {
		if err := b.Add(step); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

// Process is a statically-validated, immutable, reusable transform
// pipeline. Once built it is a pure function from Row to RowOutcome,
// replaying the same step sequence which produced its final Schema.
type Process struct {
	inputSchema reshape.Schema
	finalSchema reshape.Schema
	steps       []boundStep
}

// InputSchema returns the Schema input Rows must conform to
func (p *Process) InputSchema() reshape.Schema {
	return p.inputSchema
}

// FinalSchema returns the precomputed Schema of kept output Rows. It is
// exactly the fold of every step's MapSchema over the input Schema.
func (p *Process) FinalSchema() reshape.Schema {
	return p.finalSchema
}

// NumSteps returns the number of steps in this Process
func (p *Process) NumSteps() int {
	return len(p.steps)
}

// ApplyToRow threads one Row through the step sequence, short-circuiting
// to Drop the moment any step drops it. Step failures are returned as
// StepErrors carrying the offending step's index and name.
func (p *Process) ApplyToRow(r reshape.Row) (reshape.RowOutcome, error) {
	for i, bound := range p.steps {
		outcome, err := bound.step.ApplyToRow(bound.inputSchema, bound.outputSchema, r)
		if err != nil {
			return reshape.RowOutcome{}, errors.StepError{Index: i, Name: bound.step.Name(), Err: err}
		}
		if outcome.Dropped {
			return reshape.Drop(), nil
		}
		r = outcome.Row
	}
	return reshape.Keep(r), nil
}
