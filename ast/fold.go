package ast

import "github.com/reusee/clipc/syntax"

// binding strength of binary operators, all left-associative
var precedence = map[syntax.TokenType]int{
	syntax.TokenOr:        1,
	syntax.TokenAnd:       2,
	syntax.TokenEq:        3,
	syntax.TokenNotEq:     3,
	syntax.TokenLess:      4,
	syntax.TokenGreater:   4,
	syntax.TokenLessEq:    4,
	syntax.TokenGreaterEq: 4,
	syntax.TokenPlus:      5,
	syntax.TokenMinus:     5,
	syntax.TokenStar:      6,
	syntax.TokenSlash:     6,
}

type pendingOp struct {
	tok   syntax.Token
	unary bool
}

type folder struct {
	operands  []Expr
	operators []pendingOp
}

// fold builds an expression tree from a flattened token sequence with the
// shunting-yard algorithm. Prefix - and not bind tighter than any binary operator.
// An editing operation call is a single operand.
func fold(tokens []syntax.Token) Expr {
	f := new(folder)
	expectOperand := true

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		if tok.Type.IsOperation() {
			call, n := foldCall(tokens[i:])
			f.operands = append(f.operands, call)
			i += n - 1
			expectOperand = false
			continue
		}

		if e := operand(tok); e != nil {
			f.operands = append(f.operands, e)
			expectOperand = false
			continue
		}

		switch {
		case tok.Type == syntax.TokenLParen:
			f.operators = append(f.operators, pendingOp{tok: tok})
			expectOperand = true

		case tok.Type == syntax.TokenRParen:
			for len(f.operators) > 0 && f.top().tok.Type != syntax.TokenLParen {
				f.reduce()
			}
			if len(f.operators) > 0 {
				f.operators = f.operators[:len(f.operators)-1]
			}
			expectOperand = false

		case expectOperand && (tok.Type == syntax.TokenMinus || tok.Type == syntax.TokenNot):
			f.operators = append(f.operators, pendingOp{tok: tok, unary: true})

		default:
			prec, ok := precedence[tok.Type]
			if !ok {
				continue
			}
			for len(f.operators) > 0 {
				top := f.top()
				if top.tok.Type == syntax.TokenLParen {
					break
				}
				if !top.unary && precedence[top.tok.Type] < prec {
					break
				}
				f.reduce()
			}
			f.operators = append(f.operators, pendingOp{tok: tok})
			expectOperand = true
		}
	}

	for len(f.operators) > 0 {
		if f.top().tok.Type == syntax.TokenLParen {
			f.operators = f.operators[:len(f.operators)-1]
			continue
		}
		f.reduce()
	}

	if len(f.operands) == 0 {
		return nil
	}
	return f.operands[len(f.operands)-1]
}

// foldCall builds the call starting at tokens[0] and returns the number of
// tokens it spans, up to and including the closing bracket.
func foldCall(tokens []syntax.Token) (*FunctionCall, int) {
	op := tokens[0]
	call := &FunctionCall{
		Pos:  op.Pos,
		Op:   op.Type,
		Args: []Expr{},
	}
	for i := 1; i < len(tokens); i++ {
		if tokens[i].Type == syntax.TokenRBracket {
			return call, i + 1
		}
		if arg := operand(tokens[i]); arg != nil {
			call.Args = append(call.Args, arg)
		}
	}
	return call, len(tokens)
}

func (f *folder) top() pendingOp {
	return f.operators[len(f.operators)-1]
}

func (f *folder) popOperand() Expr {
	if len(f.operands) == 0 {
		return nil
	}
	e := f.operands[len(f.operands)-1]
	f.operands = f.operands[:len(f.operands)-1]
	return e
}

func (f *folder) reduce() {
	op := f.top()
	f.operators = f.operators[:len(f.operators)-1]

	if op.unary {
		f.operands = append(f.operands, &UnaryOp{
			Pos:     op.tok.Pos,
			Op:      op.tok.Type,
			Operand: f.popOperand(),
		})
		return
	}

	right := f.popOperand()
	left := f.popOperand()
	f.operands = append(f.operands, &BinaryOp{
		Pos:   op.tok.Pos,
		Op:    op.tok.Type,
		Left:  left,
		Right: right,
	})
}
