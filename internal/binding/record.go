// Package binding implements the parameter binder: it matches a
// template's declared parameters against a classified argument list and
// records what each parameter resolved to. A universal parameter accepts
// any classified kind; that is its defining property. Concrete parameters
// reject arguments outside their declared kind.
package binding

import (
	"strings"

	"github.com/google/uuid"
	"github.com/univc/univc/internal/ast"
	"github.com/univc/univc/internal/kinds"
)

// ParamBinding is one bound parameter slot of an instantiation attempt.
type ParamBinding struct {
	Param    string     // declared parameter name ("" for unnamed slots)
	Declared kinds.Kind // the parameter's declared kind
	Bound    kinds.Kind // the classified kind of the matched argument
	Argument ast.Expression
}

// Record is the substitution table of one instantiation attempt. It is
// created per attempt, discarded when the attempt fails, and retained as
// part of the resolution on success. Records are never shared between
// attempts.
type Record struct {
	AttemptID uuid.UUID
	Template  string
	Bindings  []*ParamBinding
}

func NewRecord(template string) *Record {
	return &Record{AttemptID: uuid.New(), Template: template}
}

// Lookup finds the binding for a named parameter.
func (r *Record) Lookup(param string) (*ParamBinding, bool) {
	for _, b := range r.Bindings {
		if b.Param != "" && b.Param == param {
			return b, true
		}
	}
	return nil, false
}

func (r *Record) String() string {
	parts := make([]string, len(r.Bindings))
	for i, b := range r.Bindings {
		name := b.Param
		if name == "" {
			name = "_"
		}
		parts[i] = name + " = " + b.Argument.String() + " : " + b.Bound.String()
	}
	return r.Template + "<" + strings.Join(parts, ", ") + ">"
}

// Resolution is the outcome of one successfully resolved instantiation
// request: the selected definition, the retained binding record, and the
// kind the instantiation produces.
type Resolution struct {
	Alias      string // name bound by the using-declaration
	Request    string // the request as written, e.g. "apply<G, int>"
	Selected   string // description of the selected primary/specialization
	Record     *Record
	ResultKind kinds.Kind
	CacheHit   bool
}
