package compiler

import (
	"minicalc/pkg/postfix"
	"minicalc/pkg/token"
)

// Compile converts an infix token sequence into a postfix program with
// the shunting-yard algorithm. Operands go straight to the output while
// operators wait on a stack until a lower-precedence operator or a
// parenthesis boundary lets them through. Equal precedence pops before
// pushing, so same-tier operators evaluate left to right.
//
// The conversion never rejects its input: a closing parenthesis that
// finds no opening one pops whatever operators exist and nothing more,
// and an unclosed opening parenthesis is flushed into the output with
// the rest of the stack. Malformed programs surface later as evaluator
// faults, not here.
func Compile(tokens []token.Token) postfix.Program {
	out := make(postfix.Program, 0, len(tokens))
	var ops []token.Token

	for _, tok := range tokens {
		switch tok.Type {
		case token.NUMBER, token.IDENT:
			out = append(out, tok)

		case token.LPAREN:
			ops = append(ops, tok)

		case token.RPAREN:
			for len(ops) > 0 && ops[len(ops)-1].Type != token.LPAREN {
				out = append(out, ops[len(ops)-1])
				ops = ops[:len(ops)-1]
			}
			if len(ops) > 0 {
				// Discard the matching "(".
				ops = ops[:len(ops)-1]
			}

		default:
			for len(ops) > 0 && token.Precedence(ops[len(ops)-1].Type) >= token.Precedence(tok.Type) {
				out = append(out, ops[len(ops)-1])
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, tok)
		}
	}

	for len(ops) > 0 {
		out = append(out, ops[len(ops)-1])
		ops = ops[:len(ops)-1]
	}

	return out
}
