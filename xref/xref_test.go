package xref

import "testing"

func TestObserveRecordsLiteralTarget(t *testing.T) {
	table := NewTable()
	table.Observe(0x4000, "ldr\tx0, 0x4008\n")

	tgt, ok := table.Lookup(0x4008)
	if !ok {
		t.Fatalf("expected a target at 0x4008")
	}
	if len(tgt.References) != 1 || tgt.References[0].From != 0x4000 {
		t.Errorf("unexpected references: %+v", tgt.References)
	}
}

func TestObserveIgnoresBitmaskImmediate(t *testing.T) {
	table := NewTable()
	table.Observe(0x1000, "mov\tx0, #0xaaaaaaaaaaaaaaaa\n")

	if len(table.Sorted()) != 0 {
		t.Errorf("expected no targets recorded for an immediate operand, got %d", len(table.Sorted()))
	}
}

func TestObserveIgnoresPlainInstructions(t *testing.T) {
	table := NewTable()
	table.Observe(0x2000, "add\tx0, x0, x1\n")
	table.Observe(0x2004, "undefined\t00000000\n")

	if len(table.Sorted()) != 0 {
		t.Errorf("expected no targets, got %d", len(table.Sorted()))
	}
}

func TestSortedOrdersByAddress(t *testing.T) {
	table := NewTable()
	table.Observe(0x1000, "b\t0x2000\n")
	table.Observe(0x1004, "bl\t0x1800\n")
	table.Observe(0x1008, "b\t0x2000\n") // second reference to the same target

	sorted := table.Sorted()
	if len(sorted) != 2 {
		t.Fatalf("expected 2 distinct targets, got %d", len(sorted))
	}
	if sorted[0].Address != 0x1800 || sorted[1].Address != 0x2000 {
		t.Errorf("targets not sorted by address: %+v", sorted)
	}
	if len(sorted[1].References) != 2 {
		t.Errorf("expected 2 references at 0x2000, got %d", len(sorted[1].References))
	}
}
