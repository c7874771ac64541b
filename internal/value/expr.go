package value

import (
	"strconv"
	"strings"
)

// Expr is a sealed interface over the symbolic expressions extraction hands
// back to the host. Only Lit and Call implement it; the host needs nothing
// richer to reconstruct a canonicalized value.
type Expr interface {
	expr() // Sealed - only these types implement it
}

// Lit is an integer literal.
type Lit int64

func (Lit) expr() {}

// Call is an operator applied to argument expressions.
type Call struct {
	Op   string
	Args []Expr
}

func (Call) expr() {}

// Render returns the s-expression form of e, e.g. "(rational 2 3)".
func Render(e Expr) string {
	var b strings.Builder
	render(&b, e)
	return b.String()
}

func render(b *strings.Builder, e Expr) {
	switch t := e.(type) {
	case Lit:
		b.WriteString(strconv.FormatInt(int64(t), 10))
	case Call:
		b.WriteByte('(')
		b.WriteString(t.Op)
		for _, arg := range t.Args {
			b.WriteByte(' ')
			render(b, arg)
		}
		b.WriteByte(')')
	}
}
