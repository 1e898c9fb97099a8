package tools

import (
	"context"
	"fmt"
	"go/ast"
	"go/constant"
	"go/parser"
	"go/token"
	"strconv"
	"strings"

	"github.com/rodrigo1987mza/reactagent"
)

const CalculateName = "calculate"

// Calculate evaluates basic arithmetic: + - * / %, parentheses, unary signs, and integer or
// decimal literals. Arithmetic is exact; 10 / 4 is 2.5. Nothing else is evaluated.
type Calculate struct{}

// NewCalculate creates the calculate tool.
func NewCalculate() *Calculate {
	return &Calculate{}
}

func (t *Calculate) Name() string        { return CalculateName }
func (t *Calculate) Description() string { return "Perform simple mathematical calculations" }

// Call evaluates args[0]. Extra arguments are ignored.
func (t *Calculate) Call(_ context.Context, args []string) (string, error) {
	if len(args) < 1 || strings.TrimSpace(args[0]) == "" {
		return "", reactagent.NewExecutionError("expression required")
	}

	result, err := Evaluate(args[0])
	if err != nil {
		return "", reactagent.WrapExecutionError(err, "invalid mathematical expression")
	}
	return result, nil
}

// Evaluate computes an arithmetic expression and renders the result.
// Integral results have no decimal part; others use the shortest float representation.
func Evaluate(expression string) (string, error) {
	expr, err := parser.ParseExpr(expression)
	if err != nil {
		return "", fmt.Errorf("cannot parse %q", expression)
	}

	value, err := eval(expr)
	if err != nil {
		return "", err
	}

	return render(value), nil
}

func eval(node ast.Expr) (constant.Value, error) {
	switch n := node.(type) {
	case *ast.BasicLit:
		if n.Kind != token.INT && n.Kind != token.FLOAT {
			return nil, fmt.Errorf("unsupported literal %s", n.Value)
		}
		v := constant.MakeFromLiteral(n.Value, n.Kind, 0)
		if v.Kind() == constant.Unknown {
			return nil, fmt.Errorf("malformed number %s", n.Value)
		}
		return v, nil

	case *ast.ParenExpr:
		return eval(n.X)

	case *ast.UnaryExpr:
		if n.Op != token.ADD && n.Op != token.SUB {
			return nil, fmt.Errorf("unsupported operator %s", n.Op)
		}
		x, err := eval(n.X)
		if err != nil {
			return nil, err
		}
		return constant.UnaryOp(n.Op, x, 0), nil

	case *ast.BinaryExpr:
		x, err := eval(n.X)
		if err != nil {
			return nil, err
		}
		y, err := eval(n.Y)
		if err != nil {
			return nil, err
		}
		return binary(n.Op, x, y)

	default:
		return nil, fmt.Errorf("unsupported expression %T", node)
	}
}

func binary(op token.Token, x, y constant.Value) (constant.Value, error) {
	switch op {
	case token.ADD, token.SUB, token.MUL:
		return constant.BinaryOp(x, op, y), nil

	case token.QUO:
		if constant.Sign(y) == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		// QUO on two integers yields an exact rational rather than truncating
		return constant.BinaryOp(x, token.QUO, y), nil

	case token.REM:
		if x.Kind() != constant.Int || y.Kind() != constant.Int {
			return nil, fmt.Errorf("%% requires integer operands")
		}
		if constant.Sign(y) == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		return constant.BinaryOp(x, token.REM, y), nil

	default:
		return nil, fmt.Errorf("unsupported operator %s", op)
	}
}

func render(v constant.Value) string {
	if i := constant.ToInt(v); i.Kind() == constant.Int {
		return i.ExactString()
	}
	f, _ := constant.Float64Val(v)
	return strconv.FormatFloat(f, 'g', -1, 64)
}

var _ reactagent.Tool = (*Calculate)(nil)
