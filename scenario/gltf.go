package scenario

import (
	"github.com/chewxy/math32"
	"github.com/qmuntal/gltf"

	"github.com/solarlune/rotation3d"
)

// ExportGLTF builds a glTF document from evaluated scenarios. Each scenario becomes a node in the default scene,
// with a child node per Row: unit quaternions become the child's rotation, matrices its matrix, and vectors its
// translation. Values glTF has no transform for go in the node's extras instead: scalars under "value", and
// quaternions that aren't unit-length (and so aren't rotations) under "quaternion" as [x, y, z, w].
func ExportGLTF(results []*Result) *gltf.Document {

	doc := gltf.NewDocument()

	for _, res := range results {

		parent := newNode(res.Scenario.Name)
		parent.Extras = map[string]interface{}{"title": res.Scenario.DisplayTitle()}

		for _, row := range res.Rows {

			child := newNode(row.Label)

			switch row.Value.Kind {
			case KindQuaternion:
				quat := row.Value.Quaternion.Floats()
				if math32.Abs(row.Value.Quaternion.Norm()-1) > rotation3d.UnitTolerance {
					child.Extras = map[string]interface{}{"quaternion": floats64(quat[:])}
					break
				}
				for i, f := range quat {
					child.Rotation[i] = float64(f)
				}
			case KindMatrix:
				for i, f := range row.Value.Matrix.ToFloats() {
					child.Matrix[i] = float64(f)
				}
			case KindVector:
				for i, f := range row.Value.Vector.Floats() {
					child.Translation[i] = float64(f)
				}
			default:
				child.Extras = map[string]interface{}{"value": float64(row.Value.Scalar)}
			}

			doc.Nodes = append(doc.Nodes, child)
			parent.Children = append(parent.Children, len(doc.Nodes)-1)

		}

		doc.Nodes = append(doc.Nodes, parent)
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)

	}

	return doc

}

// SaveGLTF exports evaluated scenarios to a .gltf (or, given a .glb path, binary glTF) file.
func SaveGLTF(path string, results []*Result) error {
	return gltf.Save(ExportGLTF(results), path)
}

func floats64(floats []float32) []float64 {
	out := make([]float64, len(floats))
	for i, f := range floats {
		out[i] = float64(f)
	}
	return out
}

func newNode(name string) *gltf.Node {
	return &gltf.Node{
		Name:     name,
		Matrix:   gltf.DefaultMatrix,
		Rotation: gltf.DefaultRotation,
		Scale:    gltf.DefaultScale,
	}
}
