// Package scenario describes which rotations a demo computes and shows, as data instead of copy-pasted programs.
// A Scenario names some input values, then lists Steps; each Step applies one rotation3d operation to inputs or to
// the results of earlier Steps. The Evaluator runs them and hands back labelled Rows for display.
package scenario

import (
	"fmt"
	"strconv"
)

// Scenario is one demo screen.
type Scenario struct {
	Name        string               `yaml:"name"`
	Title       string               `yaml:"title"`
	Scalars     map[string]float32   `yaml:"scalars,omitempty"`
	Vectors     map[string][]float32 `yaml:"vectors,omitempty"`
	Quaternions map[string][]float32 `yaml:"quaternions,omitempty"`
	Animate     []Animation          `yaml:"animate,omitempty"`
	Steps       []Step               `yaml:"steps"`

	inputs map[string]Value // built by validate
}

// Step applies the operation Op to Args. An argument is the name of an input or of an earlier Step's As,
// or a number literal. Steps that aren't Hidden are displayed under Label.
type Step struct {
	Label  string   `yaml:"label"`
	Op     string   `yaml:"op"`
	Args   []string `yaml:"args,omitempty"`
	As     string   `yaml:"as,omitempty"`
	Hidden bool     `yaml:"hidden,omitempty"`
}

// Animation tweens one of the Scenario's scalars while the scenario is on screen.
type Animation struct {
	Scalar  string  `yaml:"scalar"`
	From    float32 `yaml:"from"`
	To      float32 `yaml:"to"`
	Seconds float32 `yaml:"seconds"`
	Ease    string  `yaml:"ease,omitempty"` // defaults to "linear"
	Yoyo    bool    `yaml:"yoyo,omitempty"` // play back to From after reaching To, forever
}

// DisplayTitle returns the Scenario's title, falling back to its name.
func (sc *Scenario) DisplayTitle() string {
	if sc.Title != "" {
		return sc.Title
	}
	return sc.Name
}

// validate checks everything that can be checked without evaluating: input literals, that every argument
// refers to something defined before it, operation names and arities, and animations.
func (sc *Scenario) validate() error {

	if sc.Name == "" {
		return fmt.Errorf("scenario without a name")
	}

	if len(sc.Steps) == 0 {
		return fmt.Errorf("scenario %q: no steps", sc.Name)
	}

	sc.inputs = map[string]Value{}

	define := func(name string, v Value) error {
		if _, exists := sc.inputs[name]; exists {
			return fmt.Errorf("scenario %q: %q is defined more than once", sc.Name, name)
		}
		if _, err := strconv.ParseFloat(name, 32); err == nil {
			return fmt.Errorf("scenario %q: %q can't be used as a name", sc.Name, name)
		}
		sc.inputs[name] = v
		return nil
	}

	for name, s := range sc.Scalars {
		if err := define(name, Scalar(s)); err != nil {
			return err
		}
	}

	for name, floats := range sc.Vectors {
		if len(floats) != 3 {
			return fmt.Errorf("scenario %q: vector %q needs 3 components, got %d", sc.Name, name, len(floats))
		}
		if err := define(name, VectorValue(floats[0], floats[1], floats[2])); err != nil {
			return err
		}
	}

	for name, floats := range sc.Quaternions {
		if len(floats) != 4 {
			return fmt.Errorf("scenario %q: quaternion %q needs 4 components, got %d", sc.Name, name, len(floats))
		}
		if err := define(name, QuaternionValue(floats[0], floats[1], floats[2], floats[3])); err != nil {
			return err
		}
	}

	known := map[string]bool{}
	for name := range sc.inputs {
		known[name] = true
	}

	for i, step := range sc.Steps {

		op, exists := operations[step.Op]
		if !exists {
			return fmt.Errorf("scenario %q step %d: unknown op %q", sc.Name, i+1, step.Op)
		}

		if len(step.Args) != op.arity {
			return fmt.Errorf("scenario %q step %d: %s takes %d argument(s), got %d", sc.Name, i+1, step.Op, op.arity, len(step.Args))
		}

		for _, arg := range step.Args {
			if _, err := strconv.ParseFloat(arg, 32); err == nil {
				continue
			}
			if !known[arg] {
				return fmt.Errorf("scenario %q step %d: %q isn't defined before it's used", sc.Name, i+1, arg)
			}
		}

		if step.As != "" {
			if known[step.As] {
				return fmt.Errorf("scenario %q step %d: %q is defined more than once", sc.Name, i+1, step.As)
			}
			known[step.As] = true
		}

		if step.Label == "" {
			sc.Steps[i].Label = step.Op
		}

	}

	for _, anim := range sc.Animate {

		if _, exists := sc.Scalars[anim.Scalar]; !exists {
			return fmt.Errorf("scenario %q: animated scalar %q isn't one of its scalars", sc.Name, anim.Scalar)
		}

		if anim.Seconds <= 0 {
			return fmt.Errorf("scenario %q: animation of %q needs a duration above 0 seconds", sc.Name, anim.Scalar)
		}

		if _, exists := easings[anim.easeName()]; !exists {
			return fmt.Errorf("scenario %q: unknown easing %q", sc.Name, anim.Ease)
		}

	}

	return nil

}
