package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/ragingsea/camera"
)

// toMatrix converts a 4x4 gonum matrix to raylib's layout, where M0..M3 is
// the first column.
func toMatrix(d mat.Matrix) rl.Matrix {
	at := func(r, c int) float32 { return float32(d.At(r, c)) }
	return rl.Matrix{
		M0: at(0, 0), M4: at(0, 1), M8: at(0, 2), M12: at(0, 3),
		M1: at(1, 0), M5: at(1, 1), M9: at(1, 2), M13: at(1, 3),
		M2: at(2, 0), M6: at(2, 1), M10: at(2, 2), M14: at(2, 3),
		M3: at(3, 0), M7: at(3, 1), M11: at(3, 2), M15: at(3, 3),
	}
}

func toVector3(v r3.Vec) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

// toCamera3D mirrors cam for raylib state that reads the camera directly.
func toCamera3D(cam *camera.Perspective) rl.Camera3D {
	return rl.Camera3D{
		Position:   toVector3(cam.Position),
		Target:     toVector3(cam.Target),
		Up:         toVector3(cam.Up),
		Fovy:       float32(cam.FOV),
		Projection: rl.CameraPerspective,
	}
}

// beginCamera starts 3D mode and replaces raylib's matrices with the ones
// computed by cam, so near/far and aspect follow the camera exactly.
func beginCamera(cam *camera.Perspective) {
	rl.BeginMode3D(toCamera3D(cam))
	rl.SetMatrixProjection(toMatrix(cam.Projection()))
	rl.SetMatrixModelview(toMatrix(cam.View()))
}
