package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/lookbusy1344/aarch64dis/disasm"
	"github.com/lookbusy1344/aarch64dis/xref"
)

// captureHost decodes through an underlying Host's memory but captures the
// formatted text per instruction instead of writing it straight through,
// so concurrent requests against a shared Server never interleave output.
type captureHost struct {
	disasm.Host
	line string
}

func (c *captureHost) Printf(format string, args ...interface{}) {
	// The decoder emits one instruction as several Printf calls ending in
	// "\n"; a completed line is dropped when the next instruction starts.
	if strings.HasSuffix(c.line, "\n") {
		c.line = ""
	}
	c.line += fmt.Sprintf(format, args...)
}

// faultCounter is implemented by hosts that track out-of-range reads
// (hostio.MemoryHost).
type faultCounter interface {
	Faults() uint64
}

// handleDecode handles POST /api/v1/decode: decode Count instructions
// starting at Address and return each as a formatted line.
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req DisassemblyRequest
	if err := readJSON(r, &req); err != nil {
		debugLog("handleDecode: invalid request body: %v", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	count := req.Count
	if count == 0 {
		count = 1
	}
	debugLog("handleDecode: address=0x%x count=%d", req.Address, count)

	table := xref.NewTable()
	ch := &captureHost{Host: s.host}
	resp := DisassemblyResponse{Instructions: make([]InstructionInfo, 0, count)}

	addr := req.Address
	for i := uint32(0); i < count; i++ {
		word := s.host.ReadWord(addr)
		next := s.dec.Disasm(ch, addr, 0)
		table.Observe(addr, ch.line)

		resp.Instructions = append(resp.Instructions, InstructionInfo{
			Address:     addr,
			MachineCode: word,
			Disassembly: strings.TrimRight(ch.line, "\n"),
		})
		addr = next
	}

	index := make(map[uint32]int, len(resp.Instructions))
	for i, insn := range resp.Instructions {
		index[insn.Address] = i
	}
	for _, tgt := range table.Sorted() {
		for _, ref := range tgt.References {
			resp.Instructions[index[ref.From]].Target = tgt.Address
		}
	}

	if fc, ok := s.host.(faultCounter); ok {
		resp.FaultCount = fc.Faults()
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleDecodeStream handles GET /api/v1/decode/stream?address=..&count=..:
// it decodes the same way as handleDecode but, instead of returning the
// lines, broadcasts each one to WebSocket subscribers of EventTypeLine as it
// goes, for a live listing view to follow along. The HTTP response is only a
// completion message.
func (s *Server) handleDecodeStream(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	addr, err := parseAddressParam(r, "address")
	if err != nil {
		debugLog("handleDecodeStream: %v", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	count := uint32(1)
	if c := r.URL.Query().Get("count"); c != "" {
		n, err := strconv.ParseUint(c, 10, 32)
		if err != nil {
			debugLog("handleDecodeStream: invalid count %q", c)
			writeError(w, http.StatusBadRequest, "invalid count")
			return
		}
		count = uint32(n)
	}
	debugLog("handleDecodeStream: address=0x%x count=%d", addr, count)

	ch := &captureHost{Host: s.host}
	for i := uint32(0); i < count; i++ {
		next := s.dec.Disasm(ch, addr, 0)
		s.broadcaster.BroadcastLine(addr, strings.TrimRight(ch.line, "\n"))
		addr = next
		time.Sleep(time.Millisecond) // pace the stream so slow WS clients can keep up
	}

	writeJSON(w, http.StatusOK, SuccessResponse{Success: true, Message: "stream complete"})
}

func parseAddressParam(r *http.Request, name string) (uint32, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	raw = strings.TrimPrefix(raw, "0x")
	v, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", name, raw)
	}
	return uint32(v), nil
}
