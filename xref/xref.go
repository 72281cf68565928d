// Package xref builds a cross-reference table of the absolute addresses a
// decoded instruction stream points at — the disassembly analogue of the
// teacher's tools.XRefGenerator, which cross-references assembly source
// labels. Here there is no source and no symbol table to walk: the only
// signal available after a decode call is the formatted text line itself,
// so Table.Observe scans it for the bare "0x<addr>" token the decoder's
// TypeLiteral formatter emits for PC-relative loads and branches.
package xref

import (
	"sort"
	"strconv"
	"strings"
)

// Reference records one instruction address that pointed at a Target.
type Reference struct {
	From uint32
	Line string
}

// Target is an address referenced by one or more literal loads or
// branches, together with every instruction that referenced it.
type Target struct {
	Address    uint32
	References []Reference
}

// Table accumulates Targets as a decoded instruction stream is observed.
// It is not safe for concurrent use by multiple goroutines without
// external synchronization, matching the teacher's XRefGenerator.
type Table struct {
	targets map[uint32]*Target
}

// NewTable returns an empty cross-reference table.
func NewTable() *Table {
	return &Table{targets: make(map[uint32]*Target)}
}

// Observe inspects one disassembled line, produced at address addr, and
// records a reference if the line carries a literal target address. Lines
// with no literal target (the overwhelming majority of any real program)
// are a no-op; Observe never returns an error because an unrecognized
// line is not a malformed one, just uninteresting to the cross-reference
// table.
func (t *Table) Observe(addr uint32, line string) {
	target, ok := extractLiteralTarget(line)
	if !ok {
		return
	}

	tgt, exists := t.targets[target]
	if !exists {
		tgt = &Target{Address: target}
		t.targets[target] = tgt
	}
	tgt.References = append(tgt.References, Reference{
		From: addr,
		Line: strings.TrimRight(line, "\n"),
	})
}

// Lookup returns the Target recorded at addr, if any.
func (t *Table) Lookup(addr uint32) (*Target, bool) {
	tgt, ok := t.targets[addr]
	return tgt, ok
}

// Sorted returns every recorded Target ordered by address.
func (t *Table) Sorted() []*Target {
	list := make([]*Target, 0, len(t.targets))
	for _, tgt := range t.targets {
		list = append(list, tgt)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Address < list[j].Address })
	return list
}

// extractLiteralTarget finds the last bare "0x<hex>" token in line that is
// not itself an immediate operand. The decoder's hex output is
// distinguishable by this alone: TypeLiteral's address branch prints
// "0x%x" with nothing before it but a tab or space, while the immediates of
// TypeBitmaskImm and of TypeShiftedReg's immediate arithmetic always print
// "#0x%x" — the '#' marks it as a value, not an address.
func extractLiteralTarget(line string) (uint32, bool) {
	idx := strings.LastIndex(line, "0x")
	if idx < 0 {
		return 0, false
	}
	if idx > 0 && line[idx-1] == '#' {
		return 0, false
	}

	rest := line[idx+2:]
	end := 0
	for end < len(rest) && isHexDigit(rest[end]) {
		end++
	}
	if end == 0 {
		return 0, false
	}

	value, err := strconv.ParseUint(rest[:end], 16, 32)
	if err != nil {
		return 0, false
	}
	return uint32(value), true
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
