package domain

// Origin records which link of a fallback chain resolved a merged field.
type Origin int

const (
	// OriginDefault means the hard-coded domain default was used.
	OriginDefault Origin = iota
	// OriginBorrowed means the value came from a related domain response.
	OriginBorrowed
	// OriginPresent means the value was explicitly present in the domain response.
	OriginPresent
)

// Link is one candidate in an ordered fallback chain. A nil value means the
// candidate is absent and resolution moves to the next link.
type Link[T any] struct {
	val    *T
	origin Origin
}

// Present wraps a value taken from the field's own domain response.
func Present[T any](v *T) Link[T] {
	return Link[T]{val: v, origin: OriginPresent}
}

// Borrowed wraps a value cross-referenced from a related domain response.
func Borrowed[T any](v *T) Link[T] {
	return Link[T]{val: v, origin: OriginBorrowed}
}

// Pick resolves a merged field: the first defined link wins, otherwise the
// hard default. Precedence is fixed by argument order, so a chain is always
// written Present(...), Borrowed(...), default.
func Pick[T any](def T, links ...Link[T]) (T, Origin) {
	for _, l := range links {
		if l.val != nil {
			return *l.val, l.origin
		}
	}
	return def, OriginDefault
}

// PickValue is Pick without the origin, for call sites that only need the value.
func PickValue[T any](def T, links ...Link[T]) T {
	v, _ := Pick(def, links...)
	return v
}
