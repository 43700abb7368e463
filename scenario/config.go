package scenario

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	_ "embed"
)

//go:embed builtin.yaml
var builtinYAML []byte

// File is the layout of a scenario file.
type File struct {
	Scenarios []*Scenario `yaml:"scenarios"`
}

// Load reads a YAML scenario file and validates it.
func Load(r io.Reader) ([]*Scenario, error) {

	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding scenarios: %w", err)
	}

	if len(f.Scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios defined")
	}

	names := map[string]bool{}

	for i, sc := range f.Scenarios {
		if sc == nil {
			return nil, fmt.Errorf("scenario %d is empty", i+1)
		}
		if err := sc.validate(); err != nil {
			return nil, err
		}
		if names[sc.Name] {
			return nil, fmt.Errorf("scenario %q is defined more than once", sc.Name)
		}
		names[sc.Name] = true
	}

	return f.Scenarios, nil

}

// LoadFile loads the scenario file at the given path.
func LoadFile(path string) ([]*Scenario, error) {

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scenarios, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return scenarios, nil

}

// Builtin returns the built-in scenarios, one per rotation demo: quaternion basics, axis-angle matrices,
// direction-to-direction, rotating a vector, and slerp.
func Builtin() []*Scenario {
	scenarios, err := Load(bytes.NewReader(builtinYAML))
	if err != nil {
		panic("scenario: built-in scenarios are invalid: " + err.Error())
	}
	return scenarios
}

// Find returns the Scenario with the given name, or nil.
func Find(scenarios []*Scenario, name string) *Scenario {
	for _, sc := range scenarios {
		if sc.Name == name {
			return sc
		}
	}
	return nil
}
