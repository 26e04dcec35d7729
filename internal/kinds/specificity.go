package kinds

// Variance selects how nested template slots are compared when ranking
// specializations. Whether a universal parameter behaves covariantly or
// contravariantly in nested parameter position is an open design choice,
// so both strategies are implemented and selectable.
type Variance int

const (
	Covariant Variance = iota
	Contravariant
)

func (v Variance) String() string {
	if v == Contravariant {
		return "contravariant"
	}
	return "covariant"
}

// Accepts reports whether a slot of kind `slot` accepts an argument
// classified as `arg`. A universal slot accepts everything; an `auto`
// value slot accepts any value; a template slot accepts a template of
// the same arity whose own slots line up per the variance strategy.
func Accepts(slot, arg Kind, v Variance) bool {
	switch s := slot.(type) {
	case KUniversal:
		return true
	case KType:
		_, ok := arg.(KType)
		return ok
	case KValue:
		a, ok := arg.(KValue)
		if !ok {
			return false
		}
		return s.Of == VTAny || s.Of == a.Of
	case KTemplate:
		a, ok := arg.(KTemplate)
		if !ok {
			return false
		}
		if len(s.Slots) != len(a.Slots) {
			return false
		}
		for i := range s.Slots {
			// The argument template will later be instantiated with
			// whatever the slot's nested kinds describe. Covariantly the
			// argument's slot must accept at least that much; the
			// contravariant strategy flips the direction.
			if v == Covariant {
				if !Accepts(a.Slots[i], s.Slots[i], v) {
					return false
				}
			} else {
				if !Accepts(s.Slots[i], a.Slots[i], v) {
					return false
				}
			}
		}
		return true
	}
	return false
}

// AtLeastAsSpecific reports whether slot kind a is at least as specific
// as slot kind b: everything a accepts, b accepts too.
func AtLeastAsSpecific(a, b Kind, v Variance) bool {
	if IsUniversal(b) {
		return true
	}
	if IsUniversal(a) {
		return false
	}
	switch ak := a.(type) {
	case KType:
		_, ok := b.(KType)
		return ok
	case KValue:
		bk, ok := b.(KValue)
		if !ok {
			return false
		}
		return bk.Of == VTAny || ak.Of == bk.Of
	case KTemplate:
		bk, ok := b.(KTemplate)
		if !ok || len(ak.Slots) != len(bk.Slots) {
			return false
		}
		for i := range ak.Slots {
			if v == Covariant {
				if !AtLeastAsSpecific(ak.Slots[i], bk.Slots[i], v) {
					return false
				}
			} else {
				if !AtLeastAsSpecific(bk.Slots[i], ak.Slots[i], v) {
					return false
				}
			}
		}
		return true
	}
	return false
}

// MoreSpecific reports whether a is strictly more specific than b.
func MoreSpecific(a, b Kind, v Variance) bool {
	return AtLeastAsSpecific(a, b, v) && !AtLeastAsSpecific(b, a, v)
}
