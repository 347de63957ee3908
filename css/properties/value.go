package properties

// CssProperty is the interface implemented by every concrete CSS value
// payload (lengths, colors, keyword enums, composites). The property it
// belongs to is carried separately, as the key of the cascade maps.
type CssProperty interface {
	isCssProperty()
}

// ValueKind is the outer tag of the four-case value sum.
type ValueKind uint8

const (
	Exact ValueKind = iota // carries a concrete payload
	Auto
	Initial
	Inherit
)

func (k ValueKind) String() string {
	switch k {
	case Exact:
		return "exact"
	case Auto:
		return "auto"
	case Initial:
		return "initial"
	case Inherit:
		return "inherit"
	}
	return "<invalid value kind>"
}

// Value is the outward type of the getter layer: either one of the
// keyword cases auto / initial / inherit, or an exact payload of type T.
// Auto is distinct from Initial: `margin: auto` is a layout instruction,
// while "property absent" resolves to Initial.
type Value[T any] struct {
	V    T
	Kind ValueKind
}

func MakeExact[T any](v T) Value[T] { return Value[T]{Kind: Exact, V: v} }
func MakeAuto[T any]() Value[T]     { return Value[T]{Kind: Auto} }
func MakeInitial[T any]() Value[T]  { return Value[T]{Kind: Initial} }
func MakeInherit[T any]() Value[T]  { return Value[T]{Kind: Inherit} }

func (v Value[T]) IsExact() bool   { return v.Kind == Exact }
func (v Value[T]) IsAuto() bool    { return v.Kind == Auto }
func (v Value[T]) IsInitial() bool { return v.Kind == Initial }
func (v Value[T]) IsInherit() bool { return v.Kind == Inherit }

// Unwrap returns the exact payload, or the zero value for the keyword
// cases.
func (v Value[T]) Unwrap() T { return v.V }

// UnwrapOr returns the exact payload, or def for the keyword cases.
func (v Value[T]) UnwrapOr(def T) T {
	if v.Kind == Exact {
		return v.V
	}
	return def
}

// AnyValue is the heterogeneous form of Value used by the cascade
// storage, where payload types vary per property.
type AnyValue struct {
	Prop CssProperty // nil unless Kind == Exact
	Kind ValueKind
}

func AnyExact(p CssProperty) AnyValue { return AnyValue{Kind: Exact, Prop: p} }

var (
	AnyAuto    = AnyValue{Kind: Auto}
	AnyInitial = AnyValue{Kind: Initial}
	AnyInherit = AnyValue{Kind: Inherit}
)

// As converts an AnyValue to the typed form, asserting the payload type.
// A payload of an unexpected type degrades to Initial.
func As[T CssProperty](v AnyValue) Value[T] {
	if v.Kind != Exact {
		return Value[T]{Kind: v.Kind}
	}
	if p, ok := v.Prop.(T); ok {
		return Value[T]{Kind: Exact, V: p}
	}
	return Value[T]{Kind: Initial}
}
