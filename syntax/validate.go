package syntax

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

type terminalSet map[TokenType]bool

func (s terminalSet) addAll(other terminalSet) (changed bool) {
	for t := range other {
		if !s[t] {
			s[t] = true
			changed = true
		}
	}
	return
}

type grammarSets struct {
	nullable map[string]bool
	first    map[string]terminalSet
	follow   map[string]terminalSet
}

// productions returns the distinct productions of each row.
func (t *Table) productions() map[string][]Production {
	ret := make(map[string][]Production)
	for _, nt := range t.order {
		seen := make(map[string]bool)
		for _, la := range sortTerminals(lo.Keys(t.rows[nt])) {
			prod := t.rows[nt][la]
			key := prod.String()
			if seen[key] {
				continue
			}
			seen[key] = true
			ret[nt] = append(ret[nt], prod)
		}
	}
	return ret
}

func (t *Table) computeSets() *grammarSets {
	prods := t.productions()
	sets := &grammarSets{
		nullable: make(map[string]bool),
		first:    make(map[string]terminalSet),
		follow:   make(map[string]terminalSet),
	}
	for _, nt := range t.order {
		sets.first[nt] = make(terminalSet)
		sets.follow[nt] = make(terminalSet)
	}
	sets.follow[t.start][TokenEOF] = true

	// nullable and FIRST
	for changed := true; changed; {
		changed = false
		for nt, list := range prods {
			for _, prod := range list {
				first, nullable := sets.firstOf(prod)
				if sets.first[nt].addAll(first) {
					changed = true
				}
				if nullable && !sets.nullable[nt] {
					sets.nullable[nt] = true
					changed = true
				}
			}
		}
	}

	// FOLLOW
	for changed := true; changed; {
		changed = false
		for nt, list := range prods {
			for _, prod := range list {
				for i, sym := range prod {
					if sym.IsTerminal() {
						continue
					}
					target, ok := sets.follow[sym.Nonterminal()]
					if !ok {
						continue
					}
					first, nullable := sets.firstOf(prod[i+1:])
					if target.addAll(first) {
						changed = true
					}
					if nullable && target.addAll(sets.follow[nt]) {
						changed = true
					}
				}
			}
		}
	}

	return sets
}

func (s *grammarSets) firstOf(prod Production) (terminalSet, bool) {
	ret := make(terminalSet)
	for _, sym := range prod {
		if sym.IsTerminal() {
			ret[sym.Terminal()] = true
			return ret, false
		}
		ret.addAll(s.first[sym.Nonterminal()])
		if !s.nullable[sym.Nonterminal()] {
			return ret, false
		}
	}
	return ret, true
}

// Validate checks the table against the grammar its own productions describe.
func (t *Table) Validate() error {
	var errs []error
	errs = append(errs, t.duplicates...)

	if _, ok := t.rows[t.start]; !ok {
		errs = append(errs, fmt.Errorf("no row for start symbol %s", t.start))
	}

	for _, nt := range t.order {
		for _, la := range sortTerminals(lo.Keys(t.rows[nt])) {
			for _, sym := range t.rows[nt][la] {
				if sym.IsTerminal() {
					continue
				}
				if _, ok := t.rows[sym.Nonterminal()]; !ok {
					errs = append(errs, fmt.Errorf("%s[%s] refers to %s which has no row", nt, la, sym))
				}
			}
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	sets := t.computeSets()
	for _, nt := range t.order {
		row := t.rows[nt]
		for _, la := range sortTerminals(lo.Keys(row)) {
			prod := row[la]
			first, nullable := sets.firstOf(prod)
			if first[la] {
				continue
			}
			if nullable && sets.follow[nt][la] {
				continue
			}
			errs = append(errs, fmt.Errorf("%s[%s] -> %s does not predict %s", nt, la, prod, la))
		}
		if sets.nullable[nt] {
			for _, la := range sortTerminals(lo.Keys(sets.follow[nt])) {
				if _, ok := row[la]; !ok {
					errs = append(errs, fmt.Errorf("%s is nullable but has no entry for %s in its FOLLOW set", nt, la))
				}
			}
		}
	}

	return errors.Join(errs...)
}
