package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/memmaker/heightray/engine/util"
)

// LoadGLTF reads the triangle geometry of all meshes in a glTF file into a
// single TriangleMesh. Materials, textures and animations are ignored, only
// positions and indices are kept.
func LoadGLTF(filename string) (*TriangleMesh, error) {
	doc, err := gltf.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %s", filename)
	}

	var vertices []mgl64.Vec3
	var indices []uint32
	for _, docMesh := range doc.Meshes {
		for _, subMesh := range docMesh.Primitives {
			if subMesh.Mode != gltf.PrimitiveTriangles {
				util.LogIOError(fmt.Sprintf("skipping non-triangle primitive in %s", filename))
				continue
			}
			indexOfPositions, hasPositions := subMesh.Attributes["POSITION"]
			if !hasPositions {
				continue
			}
			positionAccessor := doc.Accessors[indexOfPositions]

			var vertBuffer [][3]float32
			vertBuffer, err = modeler.ReadPosition(doc, positionAccessor, vertBuffer)
			if err != nil {
				return nil, errors.Wrapf(err, "could not read positions from %s", filename)
			}
			indexBase := uint32(len(vertices))
			for _, vertex := range vertBuffer {
				vertices = append(vertices, mgl64.Vec3{float64(vertex[0]), float64(vertex[1]), float64(vertex[2])})
			}

			if subMesh.Indices != nil {
				indicesAccessor := doc.Accessors[*subMesh.Indices]
				var indicesBuffer []uint32
				indicesBuffer, err = modeler.ReadIndices(doc, indicesAccessor, indicesBuffer)
				if err != nil {
					return nil, errors.Wrapf(err, "could not read indices from %s", filename)
				}
				for _, index := range indicesBuffer {
					indices = append(indices, indexBase+index)
				}
			} else {
				for i := range vertBuffer {
					indices = append(indices, indexBase+uint32(i))
				}
			}
		}
	}
	if len(indices) == 0 {
		return nil, errors.Errorf("%s contains no triangle geometry", filename)
	}

	result := NewTriangleMesh(vertices, indices)
	result.SetName(filename)
	util.LogIOInfo(fmt.Sprintf("loaded %d triangles from %s", result.TriangleCount(), filename))
	return result, nil
}
