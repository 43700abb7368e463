package scenario

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"
)

// Row is one displayed Step result.
type Row struct {
	Label string
	Value Value
}

// Result is an evaluated Scenario: the Rows to display, and every named value (inputs and Step results with an As).
type Result struct {
	Scenario *Scenario
	Rows     []Row
	Values   map[string]Value
}

// Evaluator runs Scenarios. Evaluating is pure; the same Scenario and overrides always give the same Result,
// so a display loop can simply re-evaluate every frame.
type Evaluator struct {
	log *zap.Logger
}

// NewEvaluator creates an Evaluator logging to the given logger; nil logs nothing.
func NewEvaluator(log *zap.Logger) *Evaluator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Evaluator{log: log}
}

// Evaluate runs the Scenario's Steps in order. overrides replaces the values of the named scalars (this is how
// animation feeds in); names that aren't scalars of the Scenario are ignored. A rotation3d fault or an argument
// of the wrong kind stops evaluation with an error naming the Step.
func (e *Evaluator) Evaluate(sc *Scenario, overrides map[string]float32) (*Result, error) {

	if sc.inputs == nil {
		if err := sc.validate(); err != nil {
			return nil, err
		}
	}

	log := e.log.With(zap.String("scenario", sc.Name))

	values := make(map[string]Value, len(sc.inputs)+len(sc.Steps))
	for name, v := range sc.inputs {
		values[name] = v
	}
	for name, s := range overrides {
		if v, exists := values[name]; exists && v.Kind == KindScalar {
			values[name] = Scalar(s)
		}
	}

	result := &Result{Scenario: sc, Values: values}

	for i, step := range sc.Steps {

		args := make([]Value, len(step.Args))
		for j, arg := range step.Args {
			if f, err := strconv.ParseFloat(arg, 32); err == nil {
				args[j] = Scalar(float32(f))
				continue
			}
			v, exists := values[arg]
			if !exists {
				return nil, fmt.Errorf("scenario %q step %d (%s): %q is undefined", sc.Name, i+1, step.Label, arg)
			}
			args[j] = v
		}

		v, err := apply(step.Op, args)
		if err != nil {
			log.Debug("step failed", zap.Int("step", i+1), zap.String("op", step.Op), zap.Error(err))
			return nil, fmt.Errorf("scenario %q step %d (%s): %w", sc.Name, i+1, step.Label, err)
		}

		log.Debug("step", zap.Int("step", i+1), zap.String("op", step.Op), zap.Stringer("kind", v.Kind))

		if step.As != "" {
			values[step.As] = v
		}

		if !step.Hidden {
			result.Rows = append(result.Rows, Row{Label: step.Label, Value: v})
		}

	}

	return result, nil

}

// EvaluateAll evaluates every Scenario without overrides.
func (e *Evaluator) EvaluateAll(scenarios []*Scenario) ([]*Result, error) {
	results := make([]*Result, 0, len(scenarios))
	for _, sc := range scenarios {
		res, err := e.Evaluate(sc, nil)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}
