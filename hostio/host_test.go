package hostio

import (
	"strings"
	"testing"
)

func TestMemoryHostReadWordLittleEndian(t *testing.T) {
	img := []byte{0x01, 0x02, 0x03, 0x04, 0xff, 0xff, 0xff, 0xff}
	host := NewMemoryHost(0x1000, img)

	if got := host.ReadWord(0x1000); got != 0x04030201 {
		t.Errorf("ReadWord(base) = %#x, want %#x", got, 0x04030201)
	}
	if got := host.ReadWord(0x1004); got != 0xffffffff {
		t.Errorf("ReadWord(base+4) = %#x, want %#x", got, 0xffffffff)
	}
}

func TestMemoryHostOutOfRangeFaults(t *testing.T) {
	host := NewMemoryHost(0x1000, []byte{0, 0, 0, 0})

	if got := host.ReadWord(0x0); got != 0 {
		t.Errorf("ReadWord before base = %#x, want 0", got)
	}
	if host.FaultCount != 1 {
		t.Errorf("FaultCount = %d, want 1", host.FaultCount)
	}

	host.ReadWord(0x1004) // past the end of a 4-byte image
	if host.FaultCount != 2 {
		t.Errorf("FaultCount after second fault = %d, want 2", host.FaultCount)
	}
}

func TestSinkPrintf(t *testing.T) {
	var b strings.Builder
	s := NewSink(&b)

	s.Printf("%s\t%s, %s\n", "add", "x0", "x1")

	if got := b.String(); got != "add\tx0, x1\n" {
		t.Errorf("Sink output = %q, want %q", got, "add\tx0, x1\n")
	}
}
