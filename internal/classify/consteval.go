package classify

import (
	"fmt"

	"github.com/univc/univc/internal/ast"
	"github.com/univc/univc/internal/diagnostics"
	"github.com/univc/univc/internal/kinds"
	"github.com/univc/univc/internal/symbols"
)

// Value is an evaluated non-type template argument.
type Value struct {
	Type kinds.ValueType
	Int  int64
	Bool bool
	Char rune
}

func (v *Value) String() string {
	switch v.Type {
	case kinds.VTInt:
		return fmt.Sprintf("%d", v.Int)
	case kinds.VTBool:
		return fmt.Sprintf("%t", v.Bool)
	case kinds.VTChar:
		return "'" + string(v.Char) + "'"
	}
	return "?"
}

// Eval evaluates a constant expression used as a non-type template
// argument. Anything not evaluable at this point (a name that is not a
// literal, a mixed-type operation, division by zero) is an ill-formed
// argument.
func Eval(expr ast.Expression, scope *symbols.Table) (*Value, *diagnostics.DiagnosticError) {
	switch e := expr.(type) {
	case *ast.IntLiteral:
		return &Value{Type: kinds.VTInt, Int: e.Value}, nil
	case *ast.BoolLiteral:
		return &Value{Type: kinds.VTBool, Bool: e.Value}, nil
	case *ast.CharLiteral:
		return &Value{Type: kinds.VTChar, Char: e.Value}, nil
	case *ast.PrefixExpression:
		return evalPrefix(e, scope)
	case *ast.InfixExpression:
		return evalInfix(e, scope)
	case *ast.Identifier:
		return nil, notConstant(e, fmt.Sprintf("%s is not a constant expression", e.Value))
	}
	return nil, notConstant(expr, fmt.Sprintf("%s is not a constant expression", expr.String()))
}

func evalPrefix(e *ast.PrefixExpression, scope *symbols.Table) (*Value, *diagnostics.DiagnosticError) {
	right, err := Eval(e.Right, scope)
	if err != nil {
		return nil, err
	}
	switch e.Operator {
	case "-":
		if right.Type != kinds.VTInt {
			return nil, notConstant(e, fmt.Sprintf("operator - requires an int operand, got %s", right.Type))
		}
		return &Value{Type: kinds.VTInt, Int: -right.Int}, nil
	case "!":
		if right.Type != kinds.VTBool {
			return nil, notConstant(e, fmt.Sprintf("operator ! requires a bool operand, got %s", right.Type))
		}
		return &Value{Type: kinds.VTBool, Bool: !right.Bool}, nil
	}
	return nil, notConstant(e, fmt.Sprintf("unsupported operator %s in constant expression", e.Operator))
}

func evalInfix(e *ast.InfixExpression, scope *symbols.Table) (*Value, *diagnostics.DiagnosticError) {
	left, err := Eval(e.Left, scope)
	if err != nil {
		return nil, err
	}
	right, err := Eval(e.Right, scope)
	if err != nil {
		return nil, err
	}
	if left.Type != right.Type {
		return nil, notConstant(e, fmt.Sprintf("mismatched operand types %s and %s", left.Type, right.Type))
	}

	switch e.Operator {
	case "==", "!=":
		eq := *left == *right
		if e.Operator == "!=" {
			eq = !eq
		}
		return &Value{Type: kinds.VTBool, Bool: eq}, nil
	}

	if left.Type != kinds.VTInt {
		return nil, notConstant(e, fmt.Sprintf("operator %s requires int operands, got %s", e.Operator, left.Type))
	}
	switch e.Operator {
	case "+":
		return &Value{Type: kinds.VTInt, Int: left.Int + right.Int}, nil
	case "-":
		return &Value{Type: kinds.VTInt, Int: left.Int - right.Int}, nil
	case "*":
		return &Value{Type: kinds.VTInt, Int: left.Int * right.Int}, nil
	case "/", "%":
		if right.Int == 0 {
			return nil, notConstant(e, "division by zero in constant expression")
		}
		if e.Operator == "/" {
			return &Value{Type: kinds.VTInt, Int: left.Int / right.Int}, nil
		}
		return &Value{Type: kinds.VTInt, Int: left.Int % right.Int}, nil
	case "<":
		return &Value{Type: kinds.VTBool, Bool: left.Int < right.Int}, nil
	case ">":
		return &Value{Type: kinds.VTBool, Bool: left.Int > right.Int}, nil
	}
	return nil, notConstant(e, fmt.Sprintf("unsupported operator %s in constant expression", e.Operator))
}

func notConstant(node ast.Expression, msg string) *diagnostics.DiagnosticError {
	return &diagnostics.DiagnosticError{
		Code:    diagnostics.ErrC001,
		Token:   node.GetToken(),
		Message: msg,
	}
}
