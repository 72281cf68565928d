// Package hostio provides concrete disasm.Host implementations: a flat
// byte-slice memory image to decode from, and a Printf sink that renders
// onto an io.Writer. Neither type is aware of instruction semantics; they
// exist only to satisfy the decoder's ReadWord/Printf contract the way the
// teacher's vm.Memory and vm.VM.OutputWriter satisfy the VM's.
package hostio

import (
	"fmt"
	"io"
)

// MemoryHost is a read-only, little-endian byte image addressed starting
// at Base. It implements disasm.Host's ReadWord without importing the
// disasm package, so hostio stays usable by anything that wants a flat
// memory image, not only the decoder.
type MemoryHost struct {
	Base  uint32
	Image []byte

	// FaultCount counts out-of-range reads. ReadWord cannot itself report
	// failure — per the decoder's contract a read failure is the host's
	// problem, never the decoder's — so a host that cares checks this
	// counter (or wraps MemoryHost to do so) rather than changing the
	// interface.
	FaultCount uint64
}

// NewMemoryHost returns a MemoryHost reading image starting at address
// base.
func NewMemoryHost(base uint32, image []byte) *MemoryHost {
	return &MemoryHost{Base: base, Image: image}
}

// ReadWord returns the little-endian 32-bit word at addr. An address whose
// four bytes do not all lie inside the image returns zero and increments
// FaultCount rather than panicking. Alignment is not checked: an in-range
// unaligned address reads the four bytes starting there.
func (m *MemoryHost) ReadWord(addr uint32) uint32 {
	if addr < m.Base {
		m.FaultCount++
		return 0
	}
	offset := uint64(addr-m.Base)
	if offset+4 > uint64(len(m.Image)) {
		m.FaultCount++
		return 0
	}
	b := m.Image[offset : offset+4]
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// Faults returns the number of out-of-range reads seen so far, letting a
// caller holding only a disasm.Host report on faults without knowing the
// concrete host type.
func (m *MemoryHost) Faults() uint64 {
	return m.FaultCount
}

// Sink renders a disasm.Host's Printf calls onto w, exactly as written —
// it performs no buffering or line reassembly of its own.
type Sink struct {
	w io.Writer
}

// NewSink wraps w as a Printf sink.
func NewSink(w io.Writer) *Sink {
	return &Sink{w: w}
}

// Printf writes format/args to the underlying writer. Write errors are
// swallowed, matching the teacher's own "ignore write errors" stance on
// its OutputWriter (vm/syscall.go): a disassembly listing going to a
// closed pipe is not a reason to crash the decode loop.
func (s *Sink) Printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.w, format, args...)
}

// Host bundles a MemoryHost and a Sink into a single disasm.Host: ReadWord
// is promoted from MemoryHost, Printf from Sink. It exists so callers that
// just want "decode this image, print to this writer" don't have to define
// their own adapter type.
type Host struct {
	*MemoryHost
	*Sink
}

// NewHost returns a Host reading image starting at base and printing
// through w.
func NewHost(base uint32, image []byte, w io.Writer) *Host {
	return &Host{MemoryHost: NewMemoryHost(base, image), Sink: NewSink(w)}
}
