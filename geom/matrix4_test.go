package geom

import (
	"math"
	"testing"
)

func TestRotationMatrix(t *testing.T) {
	const eps = 0.000001

	rot := NewEuler(10*math.Pi/180, 20*math.Pi/180, 30*math.Pi/180).ToQuaternion()
	mat := NewRotationMatrix4FromQuaternion[float64](Plain, rot)

	for _, v := range []Vector3[float64]{
		NewVector3(1.0, 0, 0),
		NewVector3(0, 1.0, 0),
		NewVector3(0, 0, 1.0),
		NewVector3(1.5, -2, 3),
	} {
		if mat.ApplyTo(v).Sub(rot.ApplyTo(v)).Len() > eps {
			t.Error("rotate: ", v, mat.ApplyTo(v), rot.ApplyTo(v))
		}
	}

	rot2 := NewEuler(-1.0, 0.5, 2).ToQuaternion()
	mat2 := NewRotationMatrix4FromQuaternion[float64](Plain, rot2)
	want := NewRotationMatrix4FromQuaternion[float64](Plain, rot.Mul(rot2))
	got := mat.Mul(mat2)
	for i := range want {
		if math.Abs(want[i]-got[i]) > eps {
			t.Error("mul: ", i, want, got)
		}
	}

	if NewRotationMatrix4FromQuaternion[float32](Fused, Identity[float64]()) != NewMatrix4[float32]() {
		t.Error("identity: ", NewRotationMatrix4FromQuaternion[float32](Fused, Identity[float64]()))
	}

	id := NewMatrix4[float64]()
	if id.Mul(mat) != mat || mat.Mul(id) != mat {
		t.Error("identity mul: ", mat)
	}
}
