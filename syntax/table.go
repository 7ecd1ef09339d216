package syntax

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/samber/lo"
)

const StartSymbol = "Program"

// Table is an immutable LL(1) parsing table.
type Table struct {
	start      string
	rows       map[string]map[TokenType]Production
	order      []string
	duplicates []error
}

func (t *Table) Start() string {
	return t.start
}

// Lookup returns the production for a nonterminal and lookahead.
// hasRow is false when the nonterminal has no row at all.
func (t *Table) Lookup(nonterminal string, lookahead TokenType) (prod Production, ok bool, hasRow bool) {
	row, hasRow := t.rows[nonterminal]
	if !hasRow {
		return nil, false, false
	}
	prod, ok = row[lookahead]
	return prod, ok, true
}

// Expected returns the terminals acceptable for a nonterminal, sorted by name and deduplicated.
func (t *Table) Expected(nonterminal string) []TokenType {
	return sortTerminals(lo.Keys(t.rows[nonterminal]))
}

func (t *Table) Nonterminals() []string {
	return slices.Clone(t.order)
}

func (t *Table) Entries(nonterminal string) map[TokenType]Production {
	row := t.rows[nonterminal]
	ret := make(map[TokenType]Production, len(row))
	for k, v := range row {
		ret[k] = slices.Clone(v)
	}
	return ret
}

func sortTerminals(ts []TokenType) []TokenType {
	ts = lo.Uniq(ts)
	slices.SortFunc(ts, func(a, b TokenType) int {
		return strings.Compare(a.String(), b.String())
	})
	return ts
}

func (t *Table) String() string {
	var sb strings.Builder
	for _, nt := range t.order {
		row := t.rows[nt]
		for _, la := range sortTerminals(lo.Keys(row)) {
			fmt.Fprintf(&sb, "%-14s %-16s -> %s\n", nt, la, row[la])
		}
	}
	return sb.String()
}

type TableBuilder struct {
	table *Table
}

func NewTableBuilder(start string) *TableBuilder {
	return &TableBuilder{
		table: &Table{
			start: start,
			rows:  make(map[string]map[TokenType]Production),
		},
	}
}

// Add registers prod for every lookahead. A second production for the same
// (nonterminal, lookahead) pair is recorded as a duplicate and reported by Validate.
func (b *TableBuilder) Add(nonterminal string, lookaheads []TokenType, prod ...Symbol) *TableBuilder {
	row, ok := b.table.rows[nonterminal]
	if !ok {
		row = make(map[TokenType]Production)
		b.table.rows[nonterminal] = row
		b.table.order = append(b.table.order, nonterminal)
	}
	for _, la := range lookaheads {
		if existing, ok := row[la]; ok {
			b.table.duplicates = append(b.table.duplicates, fmt.Errorf(
				"duplicated entry %s[%s]: %s and %s", nonterminal, la, existing, Production(prod),
			))
			continue
		}
		row[la] = Production(slices.Clone(prod))
	}
	return b
}

func (b *TableBuilder) Build() *Table {
	t := b.table
	b.table = nil
	return t
}

// DefaultTable returns the shared table of the editing language.
var DefaultTable = sync.OnceValue(func() *Table {
	t := buildDefaultTable()
	if err := t.Validate(); err != nil {
		panic(err)
	}
	return t
})
