// Package matrix provides the 2D affine transformations the transform
// property compiles to.
package matrix

import (
	"errors"
	"math"

	pr "github.com/retainedui/cascade/css/properties"
	"github.com/retainedui/cascade/utils"
)

type fl = utils.Fl

// Transform encodes a 2D affine transformation:
//
//	x_new = a * x + c * y + e
//	y_new = b * x + d * y + f
//
// which is the usual 3x3 matrix
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// applied to the column vector (x, y, 1).
type Transform struct {
	A, B, C, D, E, F fl
}

func New(a, b, c, d, e, f fl) Transform {
	return Transform{A: a, B: b, C: c, D: d, E: e, F: f}
}

// Identity returns the identity transformation.
func Identity() Transform {
	return New(1, 0, 0, 1, 0, 0)
}

// Translation returns the translation by (tx, ty).
func Translation(tx, ty fl) Transform {
	return Transform{1, 0, 0, 1, tx, ty}
}

// Scaling returns the scaling by (sx, sy).
func Scaling(sx, sy fl) Transform {
	return Transform{sx, 0, 0, sy, 0, 0}
}

// Rotation returns the rotation by the given angle, in radians,
// positive angles turning from the positive X axis toward the positive
// Y axis.
func Rotation(radians fl) Transform {
	cos, sin := fl(math.Cos(float64(radians))), fl(math.Sin(float64(radians)))
	return Transform{cos, sin, -sin, cos, 0, 0}
}

// Skew returns the skew by the given angles, in radians.
func Skew(thetax, thetay fl) Transform {
	b, c := fl(math.Tan(float64(thetay))), fl(math.Tan(float64(thetax)))
	return Transform{1, b, c, 1, 0, 0}
}

// Determinant returns the determinant of the matrix, non zero if and
// only if the transformation is reversible.
func (t Transform) Determinant() fl {
	return t.A*t.D - t.B*t.C
}

// write t1 * t2 in out
func mult(t1, t2 Transform, out *Transform) {
	out.A = t1.A*t2.A + t1.C*t2.B
	out.B = t1.B*t2.A + t1.D*t2.B
	out.C = t1.A*t2.C + t1.C*t2.D
	out.D = t1.B*t2.C + t1.D*t2.D
	out.E = t1.A*t2.E + t1.C*t2.F + t1.E
	out.F = t1.B*t2.E + t1.D*t2.F + t1.F
}

// Mul returns T * U, the transform applying U then T.
func Mul(T, U Transform) Transform {
	out := Transform{}
	mult(T, U, &out)
	return out
}

// RightMultBy updates T in place with T * U.
func (T *Transform) RightMultBy(U Transform) { mult(*T, U, T) }

// Invert modifies the matrix in place, returning an error if the
// transformation is not bijective.
func (T *Transform) Invert() error {
	det := T.Determinant()
	if det == 0 {
		return errors.New("transformation is not invertible")
	}
	T.A, T.D = T.D/det, T.A/det
	T.B = -T.B / det
	T.C = -T.C / det
	e := -(T.A*T.E + T.C*T.F)
	f := -(T.B*T.E + T.D*T.F)
	T.E, T.F = e, f
	return nil
}

// Apply transforms the point (x, y) by this matrix.
func (T Transform) Apply(x, y fl) (outX, outY fl) {
	outX = T.A*x + T.C*y + T.E
	outY = T.B*x + T.D*y + T.F
	return
}

// Translate composes a translation into T, applied before the current
// transformation.
func (T *Transform) Translate(tx, ty fl) {
	T.E += T.A*tx + T.C*ty
	T.F += T.B*tx + T.D*ty
}

// Scale composes a scaling into T, applied before the current
// transformation.
func (T *Transform) Scale(sx, sy fl) {
	T.A *= sx
	T.B *= sx
	T.C *= sy
	T.D *= sy
}

// Rotate composes a rotation (in radians) into T, applied before the
// current transformation.
func (T *Transform) Rotate(radians fl) { T.RightMultBy(Rotation(radians)) }

const degToRad = math.Pi / 180

// FromTransforms compiles a transform function list into a single
// matrix, composing the functions left to right as CSS does. Translate
// lengths resolve against ctx; scale factors and angles are taken as
// stored.
func FromTransforms(ops pr.Transforms, ctx pr.ResolutionContext) Transform {
	out := Identity()
	for _, op := range ops {
		switch op.Kind {
		case pr.TransformTranslate:
			tx := pr.ResolvePixels(op.X, ctx, pr.PcHorizontal)
			ty := pr.ResolvePixels(op.Y, ctx, pr.PcVertical)
			out.Translate(tx, ty)
		case pr.TransformScale:
			out.Scale(op.X.Value, op.Y.Value)
		case pr.TransformRotate:
			out.Rotate(op.Angle * degToRad)
		case pr.TransformSkew:
			out.RightMultBy(Skew(op.X.Value*degToRad, op.Y.Value*degToRad))
		}
	}
	return out
}

// AroundOrigin conjugates t by a translation to the given origin, so
// that the transformation pivots there instead of the box corner.
func AroundOrigin(t Transform, originX, originY fl) Transform {
	out := Translation(originX, originY)
	out.RightMultBy(t)
	out.Translate(-originX, -originY)
	return out
}
