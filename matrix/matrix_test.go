package matrix

import (
	"math"
	"math/rand"
	"testing"

	pr "github.com/retainedui/cascade/css/properties"
)

func randT() Transform {
	return New(rand.Float32(), rand.Float32(), rand.Float32(), rand.Float32(), rand.Float32(), rand.Float32())
}

func TestDeterminant(t *testing.T) {
	if det := Identity().Determinant(); det != 1 {
		t.Fatalf("unexpected determinant: %f", det)
	}
	if det := Rotation(20).Determinant(); det != 1 {
		t.Fatalf("unexpected determinant: %f", det)
	}
	if det := Translation(2, 2).Determinant(); det != 1 {
		t.Fatalf("unexpected determinant: %f", det)
	}
}

func TestComposition(t *testing.T) {
	sc := Scaling(2, 3)
	rt := Rotation(30)
	tr := Translation(0.5, 1.5)

	c, s := fl(math.Cos(30)), fl(math.Sin(30))
	exp := New(2*c, 3*s, -2*s, 3*c, 0.5, 1.5)

	// apply rt, then sc, then tr
	if got := Mul(tr, Mul(sc, rt)); got != exp {
		t.Fatalf("inconsistent composition: %v != %v", got, exp)
	}
}

func TestInPlaceComposition(t *testing.T) {
	for range [10]int{} {
		m := randT()

		exp := Mul(m, Scaling(2, 3))
		got := m
		got.Scale(2, 3)
		if got != exp {
			t.Fatalf("unexpected Scale: %v", got)
		}

		exp = Mul(m, Translation(2, 3))
		got = m
		got.Translate(2, 3)
		if got != exp {
			t.Fatalf("unexpected Translate: %v", got)
		}

		exp = Mul(m, Rotation(10))
		got = m
		got.Rotate(10)
		if got != exp {
			t.Fatalf("unexpected Rotate: %v", got)
		}
	}
}

func TestInvert(t *testing.T) {
	m1 := Translation(2, 2)
	m2 := Scaling(2, 4)

	prod := Mul(m1, m2)
	inv := prod
	if err := inv.Invert(); err != nil {
		t.Fatal(err)
	}
	if p := Mul(inv, prod); p != Identity() {
		t.Fatalf("%v %v %v", inv, prod, p)
	}

	if err := m1.Invert(); err != nil {
		t.Fatal(err)
	}
	if m1 != Translation(-2, -2) {
		t.Fatalf("%v", m1)
	}
}

func TestInvertError(t *testing.T) {
	m := Scaling(1, 0)
	if m.Invert() == nil {
		t.Fatal("expected error on non invertible matrix")
	}
}

func TestApply(t *testing.T) {
	m := Rotation(math.Pi)
	if x, y := m.Apply(1, 1); math.Hypot(float64(x+1), float64(y+1)) > 1e-4 {
		t.Fatalf("%f %f != -1, -1", x, y)
	}
}

func TestFromTransforms(t *testing.T) {
	ctx := pr.DefaultResolutionContext(pr.Size{Width: 100, Height: 100})

	ops := pr.Transforms{
		{Kind: pr.TransformTranslate, X: pr.PxValue(10), Y: pr.PxValue(20)},
		{Kind: pr.TransformScale, X: pr.PxValue(2), Y: pr.PxValue(2)},
	}
	m := FromTransforms(ops, ctx)
	if x, y := m.Apply(1, 1); x != 12 || y != 22 {
		t.Fatalf("%f %f != 12, 22", x, y)
	}

	// percentages resolve against the containing block
	percent := pr.Transforms{
		{Kind: pr.TransformTranslate, X: pr.PercValue(50), Y: pr.PxValue(0)},
	}
	m = FromTransforms(percent, ctx)
	if x, _ := m.Apply(0, 0); x != 50 {
		t.Fatalf("%f != 50", x)
	}

	if got := FromTransforms(nil, ctx); got != Identity() {
		t.Fatalf("%v", got)
	}
}

func TestAroundOrigin(t *testing.T) {
	// a rotation by 180 degrees around (50, 50) keeps the pivot fixed
	m := AroundOrigin(Rotation(math.Pi), 50, 50)
	if x, y := m.Apply(50, 50); math.Hypot(float64(x-50), float64(y-50)) > 1e-3 {
		t.Fatalf("pivot moved: %f %f", x, y)
	}
	if x, y := m.Apply(0, 0); math.Hypot(float64(x-100), float64(y-100)) > 1e-3 {
		t.Fatalf("%f %f != 100, 100", x, y)
	}
}
