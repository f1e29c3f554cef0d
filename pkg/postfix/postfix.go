package postfix

import (
	"strings"

	"minicalc/pkg/token"
)

// Program is the compiled form of one expression: its tokens reordered
// into Reverse Polish notation, ready for stack evaluation.
type Program []token.Token

// String joins the token literals with single spaces, the form reports
// show on their "Postfix:" lines. An empty program renders as "".
func (p Program) String() string {
	literals := make([]string, len(p))
	for i, tok := range p {
		literals[i] = tok.Literal
	}
	return strings.Join(literals, " ")
}
