package kinds

import "strings"

// Kind represents the kind of a template argument position: what a
// parameter slot accepts, or what a classified argument turned out to be.
// The sum is closed: Type, Value (with a value type tag), Template (with
// per-slot kinds), and Universal, which matches any of the others.
type Kind interface {
	String() string
	Equal(Kind) bool
}

// ValueType tags the type of a non-type (value) argument.
type ValueType string

const (
	VTInt    ValueType = "int"
	VTBool   ValueType = "bool"
	VTChar   ValueType = "char"
	VTDouble ValueType = "double"

	// VTAny is the tag of an `auto` value parameter, matching any value type.
	VTAny ValueType = "auto"
)

// KType is the kind of a type argument (a typename/class slot).
type KType struct{}

func (k KType) String() string { return "typename" }
func (k KType) Equal(other Kind) bool {
	if _, ok := other.(KUniversal); ok {
		return true
	}
	_, ok := other.(KType)
	return ok
}

// KValue is the kind of a non-type argument carrying a value of type Of.
type KValue struct {
	Of ValueType
}

func (k KValue) String() string { return string(k.Of) }
func (k KValue) Equal(other Kind) bool {
	if _, ok := other.(KUniversal); ok {
		return true
	}
	o, ok := other.(KValue)
	if !ok {
		return false
	}
	if k.Of == VTAny || o.Of == VTAny {
		return true
	}
	return k.Of == o.Of
}

// KTemplate is the kind of a template argument: a template-name whose
// parameter list has the given per-slot kinds. Arity is len(Slots).
type KTemplate struct {
	Slots []Kind
}

func (k KTemplate) String() string {
	parts := make([]string, len(k.Slots))
	for i, s := range k.Slots {
		parts[i] = s.String()
	}
	return "template<" + strings.Join(parts, ", ") + ">"
}

func (k KTemplate) Equal(other Kind) bool {
	if _, ok := other.(KUniversal); ok {
		return true
	}
	o, ok := other.(KTemplate)
	if !ok {
		return false
	}
	if len(k.Slots) != len(o.Slots) {
		return false
	}
	for i := range k.Slots {
		if !k.Slots[i].Equal(o.Slots[i]) {
			return false
		}
	}
	return true
}

func (k KTemplate) Arity() int { return len(k.Slots) }

// KUniversal is the kind of a universal (`template auto`) parameter slot.
// It matches every other kind; that is its defining property.
type KUniversal struct{}

func (k KUniversal) String() string        { return "template auto" }
func (k KUniversal) Equal(other Kind) bool { return true }

var Type Kind = KType{}
var Universal Kind = KUniversal{}

// Value builds a value kind with the given tag.
func Value(of ValueType) Kind { return KValue{Of: of} }

// Template builds a template kind over the given slot kinds.
func Template(slots ...Kind) Kind { return KTemplate{Slots: slots} }

// IsUniversal reports whether k is the universal kind.
func IsUniversal(k Kind) bool {
	_, ok := k.(KUniversal)
	return ok
}
