package diags

import (
	"fmt"
	"slices"
)

type Phase uint8

const (
	PhaseLexical Phase = iota + 1
	PhaseSyntactic
	PhaseSemantic
)

var phaseNames = [...]string{
	PhaseLexical:   "lexical",
	PhaseSyntactic: "syntactic",
	PhaseSemantic:  "semantic",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) && phaseNames[p] != "" {
		return phaseNames[p]
	}
	return fmt.Sprintf("Phase(%d)", p)
}

// Kind is the taxonomy tag of a diagnostic. It is descriptive only.
type Kind uint8

const (
	KindInvalid Kind = iota

	// lexical
	MalformedNumber
	InvalidIdentifier
	UnterminatedString
	MalformedComment
	InvalidCharacter
	InvalidOperationName

	// syntactic
	UnexpectedToken
	TableIntegrityFailure

	// semantic
	TypeMismatch
	UndeclaredVariable
	InvalidConditionType
	InvalidOperandTypes
)

var kindNames = [...]string{
	MalformedNumber:       "malformed number",
	InvalidIdentifier:     "invalid identifier",
	UnterminatedString:    "unterminated string",
	MalformedComment:      "malformed comment",
	InvalidCharacter:      "invalid character",
	InvalidOperationName:  "invalid function",
	UnexpectedToken:       "unexpected token",
	TableIntegrityFailure: "table integrity failure",
	TypeMismatch:          "type mismatch",
	UndeclaredVariable:    "undeclared variable",
	InvalidConditionType:  "invalid condition type",
	InvalidOperandTypes:   "invalid operand types",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

func (k Kind) Phase() Phase {
	switch {
	case k >= MalformedNumber && k <= InvalidOperationName:
		return PhaseLexical
	case k == UnexpectedToken || k == TableIntegrityFailure:
		return PhaseSyntactic
	case k >= TypeMismatch && k <= InvalidOperandTypes:
		return PhaseSemantic
	}
	return 0
}

// Pos is a 1-based source position.
type Pos struct {
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

func (p Pos) Before(q Pos) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Column < q.Column
}

type Diagnostic struct {
	Phase   Phase
	Kind    Kind
	Pos     Pos
	Message string
}

func New(kind Kind, pos Pos, format string, args ...any) Diagnostic {
	return Diagnostic{
		Phase:   kind.Phase(),
		Kind:    kind,
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
	}
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s error at line %d, column %d: %s", d.Phase, d.Pos.Line, d.Pos.Column, d.Message)
}

func (d Diagnostic) Error() string {
	return d.String()
}

// SortByPos sorts stably by position, keeping emission order for ties.
func SortByPos(list []Diagnostic) {
	slices.SortStableFunc(list, func(a, b Diagnostic) int {
		switch {
		case a.Pos.Before(b.Pos):
			return -1
		case b.Pos.Before(a.Pos):
			return 1
		}
		return 0
	})
}

// Truncate keeps at most max diagnostics. A non-positive max keeps all.
func Truncate(list []Diagnostic, max int) []Diagnostic {
	if max <= 0 || len(list) <= max {
		return list
	}
	return list[:max]
}
