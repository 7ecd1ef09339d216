package compile

import (
	"github.com/reusee/clipc/ast"
	"github.com/reusee/clipc/diags"
	"github.com/reusee/clipc/sema"
	"github.com/reusee/clipc/syntax"
)

type Source struct {
	Name string
	Text string
}

// Unit holds what each phase produced for one source. Later fields are nil
// when an earlier phase reported diagnostics.
type Unit struct {
	Name        string
	Source      string
	Tokens      []syntax.Token
	Tree        *syntax.Node
	Program     *ast.Program
	Symbols     sema.Scope
	Diagnostics []diags.Diagnostic
	// empty unless generation was requested and the unit has no diagnostics
	Script string
}

func (u *Unit) OK() bool {
	return len(u.Diagnostics) == 0
}
