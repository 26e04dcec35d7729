// Package match implements specialization selection: given the
// classified kinds of an argument list, it filters the compatible
// candidates (primary template plus partial specializations) and ranks
// them by per-slot specificity, with universal-kind slots as the least
// specific case. The ranking is a strict partial order; when no
// candidate dominates, selection is ambiguous and fails.
package match

import (
	"fmt"

	"github.com/univc/univc/internal/ast"
	"github.com/univc/univc/internal/classify"
	"github.com/univc/univc/internal/diagnostics"
	"github.com/univc/univc/internal/kinds"
	"github.com/univc/univc/internal/symbols"
	"github.com/univc/univc/internal/token"
)

// Slot is one pattern position of a candidate. Exact is non-nil when the
// pattern names a specific type or value (e.g. `<int>` or `<42>`) rather
// than a kind-constrained parameter; exact slots outrank kind slots.
type Slot struct {
	Kind  kinds.Kind
	Exact *classify.Classified
}

// Candidate is a selectable definition: the primary template or one of
// its partial specializations, with its per-slot pattern.
type Candidate struct {
	Decl    *ast.TemplateDecl
	Slots   []Slot
	Primary bool
}

// Desc renders the candidate for diagnostics.
func (c *Candidate) Desc() string {
	return c.Decl.String()
}

// Matcher selects among a template's candidates.
type Matcher struct {
	variance kinds.Variance
}

func NewMatcher(variance kinds.Variance) *Matcher {
	return &Matcher{variance: variance}
}

// BuildCandidates derives the candidate set of a template group. Pattern
// slots take their kinds from the specialization's own parameter list;
// literal pattern arguments become exact slots.
func (m *Matcher) BuildCandidates(info *symbols.TemplateInfo, scope *symbols.Table) ([]*Candidate, *diagnostics.DiagnosticError) {
	var out []*Candidate

	if info.Primary != nil {
		slots := make([]Slot, len(info.Primary.Params))
		for i, p := range info.Primary.Params {
			slots[i] = Slot{Kind: p.Kind}
		}
		out = append(out, &Candidate{Decl: info.Primary, Slots: slots, Primary: true})
	}

	for _, spec := range info.Specs {
		cand, err := m.buildSpecCandidate(spec, scope)
		if err != nil {
			return nil, err
		}
		out = append(out, cand)
	}
	return out, nil
}

func (m *Matcher) buildSpecCandidate(spec *ast.TemplateDecl, scope *symbols.Table) (*Candidate, *diagnostics.DiagnosticError) {
	params := map[string]kinds.Kind{}
	for _, p := range spec.Params {
		if p.Name != "" {
			params[p.Name] = p.Kind
		}
	}

	slots := make([]Slot, len(spec.Pattern))
	for i, pat := range spec.Pattern {
		slot, err := m.patternSlot(pat, params, scope)
		if err != nil {
			return nil, err
		}
		slots[i] = slot
	}
	return &Candidate{Decl: spec, Slots: slots}, nil
}

// patternSlot derives the kind constraint of one pattern argument.
func (m *Matcher) patternSlot(pat ast.Expression, params map[string]kinds.Kind, scope *symbols.Table) (Slot, *diagnostics.DiagnosticError) {
	switch p := pat.(type) {
	case *ast.Wildcard:
		// The wildcard pattern matches any kind without binding a name;
		// for ranking it is as unconstrained as a universal slot.
		return Slot{Kind: kinds.Universal}, nil
	case *ast.Identifier:
		if k, ok := params[p.Value]; ok {
			return Slot{Kind: k}, nil
		}
		// Not one of the specialization's parameters: a concrete name.
		c, err := classify.Classify(p, scope)
		if err != nil {
			return Slot{}, err
		}
		return Slot{Kind: c.Kind, Exact: c}, nil
	default:
		c, err := classify.Classify(pat, scope)
		if err != nil {
			return Slot{}, err
		}
		return Slot{Kind: c.Kind, Exact: c}, nil
	}
}

// Match selects the single best candidate for the classified argument
// list, or fails.
func (m *Matcher) Match(info *symbols.TemplateInfo, args []*classify.Classified, at token.Token, scope *symbols.Table) (*Candidate, *diagnostics.DiagnosticError) {
	candidates, err := m.BuildCandidates(info, scope)
	if err != nil {
		return nil, err
	}

	var compatible []*Candidate
	for _, c := range candidates {
		if m.compatible(c, args) {
			compatible = append(compatible, c)
		}
	}

	if len(compatible) == 0 {
		return nil, diagnostics.NewError(diagnostics.ErrM001, at,
			fmt.Sprintf("no specialization of %s matches the given argument kinds", info.Name))
	}

	best := m.selectBest(compatible)
	if best == nil {
		descs := make([]string, len(compatible))
		for i, c := range compatible {
			descs[i] = c.Desc()
		}
		return nil, diagnostics.NewErrorWithCandidates(diagnostics.ErrM002, at,
			fmt.Sprintf("selection of %s is ambiguous", info.Name), descs)
	}

	if best.Primary && best.Decl.Deleted {
		return nil, diagnostics.NewError(diagnostics.ErrM003, at,
			fmt.Sprintf("the selected primary template %s is deleted", info.Name))
	}
	return best, nil
}

func (m *Matcher) compatible(c *Candidate, args []*classify.Classified) bool {
	if len(c.Slots) != len(args) {
		return false
	}
	for i, slot := range c.Slots {
		if slot.Exact != nil {
			if slot.Exact.Canonical != args[i].Canonical {
				return false
			}
			continue
		}
		if !kinds.Accepts(slot.Kind, args[i].Kind, m.variance) {
			return false
		}
	}
	return true
}

// selectBest returns the unique most-specific candidate, or nil when the
// order has no single maximum.
func (m *Matcher) selectBest(compatible []*Candidate) *Candidate {
	if len(compatible) == 1 {
		return compatible[0]
	}
	for _, c := range compatible {
		dominatesAll := true
		for _, other := range compatible {
			if other == c {
				continue
			}
			if !m.moreSpecific(c, other) {
				dominatesAll = false
				break
			}
		}
		if dominatesAll {
			return c
		}
	}
	return nil
}

// moreSpecific reports whether candidate a is strictly more specific
// than b: at least as specific in every slot, strictly in at least one.
func (m *Matcher) moreSpecific(a, b *Candidate) bool {
	if len(a.Slots) != len(b.Slots) {
		return false
	}
	strict := false
	for i := range a.Slots {
		cmpAtLeast, cmpStrict := m.slotCompare(a.Slots[i], b.Slots[i])
		if !cmpAtLeast {
			return false
		}
		if cmpStrict {
			strict = true
		}
	}
	return strict
}

// slotCompare reports (a at least as specific as b, a strictly more
// specific than b) for a single slot. Exact slots outrank kind slots,
// which outrank universal slots.
func (m *Matcher) slotCompare(a, b Slot) (bool, bool) {
	switch {
	case a.Exact != nil && b.Exact != nil:
		return true, false
	case a.Exact != nil:
		return true, true
	case b.Exact != nil:
		return false, false
	}
	if kinds.MoreSpecific(a.Kind, b.Kind, m.variance) {
		return true, true
	}
	return kinds.AtLeastAsSpecific(a.Kind, b.Kind, m.variance), false
}
