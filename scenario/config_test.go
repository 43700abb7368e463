package scenario

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin(t *testing.T) {

	scenarios := Builtin()

	names := []string{}
	for _, sc := range scenarios {
		names = append(names, sc.Name)
	}

	assert.Equal(t, []string{"axis-angle-matrix", "direction-to-direction", "quaternion-basics", "rotate-vector", "slerp"}, names)

	assert.NotNil(t, Find(scenarios, "slerp"))
	assert.Nil(t, Find(scenarios, "nope"))

}

func TestLoadDefaults(t *testing.T) {

	scenarios, err := Load(strings.NewReader(`
scenarios:
  - name: tiny
    vectors:
      a: [0, 3, 4]
    steps:
      - {op: length, args: [a]}
      - {op: normalize, args: [a], hidden: true}
`))
	require.NoError(t, err)
	require.Len(t, scenarios, 1)

	sc := scenarios[0]
	assert.Equal(t, "tiny", sc.DisplayTitle())
	assert.Equal(t, "length", sc.Steps[0].Label)
	assert.Equal(t, "normalize", sc.Steps[1].Label)

}

func TestLoadErrors(t *testing.T) {

	tests := []struct {
		name  string
		yaml  string
		error string
	}{
		{"empty", `scenarios: []`, "no scenarios"},
		{"null entry", "scenarios:\n  -\n", "scenario 1 is empty"},
		{"null entry after a valid one", `
scenarios:
  - {name: a, steps: [{op: identity}]}
  -
`, "scenario 2 is empty"},
		{"unknown field", `
scenarios:
  - name: a
    colour: red
    steps: [{op: identity}]
`, "colour"},
		{"no name", `
scenarios:
  - steps: [{op: identity}]
`, "without a name"},
		{"no steps", `
scenarios:
  - name: a
`, "no steps"},
		{"duplicate scenario", `
scenarios:
  - {name: a, steps: [{op: identity}]}
  - {name: a, steps: [{op: identity}]}
`, "defined more than once"},
		{"short vector", `
scenarios:
  - name: a
    vectors: {v: [1, 2]}
    steps: [{op: identity}]
`, "needs 3 components"},
		{"short quaternion", `
scenarios:
  - name: a
    quaternions: {q: [1, 2, 3]}
    steps: [{op: identity}]
`, "needs 4 components"},
		{"input defined twice", `
scenarios:
  - name: a
    scalars: {v: 1}
    vectors: {v: [1, 2, 3]}
    steps: [{op: identity}]
`, "defined more than once"},
		{"numeric name", `
scenarios:
  - name: a
    scalars: {"1.5": 1}
    steps: [{op: identity}]
`, "can't be used as a name"},
		{"unknown op", `
scenarios:
  - name: a
    steps: [{op: teleport}]
`, "unknown op"},
		{"wrong arity", `
scenarios:
  - name: a
    quaternions: {q: [0, 0, 0, 1]}
    steps: [{op: conjugate, args: [q, q]}]
`, "takes 1 argument"},
		{"used before defined", `
scenarios:
  - name: a
    quaternions: {q: [0, 0, 0, 1]}
    steps:
      - {op: multiply, args: [q, r]}
      - {op: conjugate, args: [q], as: r}
`, `"r" isn't defined`},
		{"as defined twice", `
scenarios:
  - name: a
    quaternions: {q: [0, 0, 0, 1]}
    steps:
      - {op: conjugate, args: [q], as: q}
`, "defined more than once"},
		{"animating a non-scalar", `
scenarios:
  - name: a
    vectors: {v: [1, 0, 0]}
    animate: [{scalar: v, from: 0, to: 1, seconds: 1}]
    steps: [{op: identity}]
`, "isn't one of its scalars"},
		{"zero-length animation", `
scenarios:
  - name: a
    scalars: {t: 0}
    animate: [{scalar: t, from: 0, to: 1, seconds: 0}]
    steps: [{op: identity}]
`, "above 0 seconds"},
		{"unknown easing", `
scenarios:
  - name: a
    scalars: {t: 0}
    animate: [{scalar: t, from: 0, to: 1, seconds: 1, ease: wobbly}]
    steps: [{op: identity}]
`, "unknown easing"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(test.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.error)
		})
	}

}

func TestLoadFile(t *testing.T) {

	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
scenarios:
  - name: only
    steps: [{op: identity}]
`), 0o644))

	scenarios, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, scenarios, 1)
	assert.Equal(t, "only", scenarios[0].Name)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("scenarios: []"), 0o644))
	_, err = LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)

}
