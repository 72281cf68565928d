// Command aarch64dis is a reference front end over the disasm package: it
// loads a flat binary image, decodes a run of instructions from it, and
// either prints a listing, opens the interactive TUI browser, or serves it
// over the HTTP/WebSocket API — grounded on the teacher's main.go flag
// layout and graceful-shutdown handling, cut down to what a stateless
// decoder needs (no VM, no assembler, no breakpoints).
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/lookbusy1344/aarch64dis/api"
	"github.com/lookbusy1344/aarch64dis/config"
	"github.com/lookbusy1344/aarch64dis/disasm"
	"github.com/lookbusy1344/aarch64dis/hostio"
	"github.com/lookbusy1344/aarch64dis/tui"
	"github.com/lookbusy1344/aarch64dis/xref"
)

var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	var (
		file       = flag.String("file", "", "Flat binary image to decode")
		addrFlag   = flag.String("addr", "0x0", "Address of the first byte in -file (read as hex; 0x prefix optional)")
		count      = flag.Uint64("count", 16, "Number of instructions to decode")
		tuiMode    = flag.Bool("tui", false, "Open the interactive listing browser instead of printing")
		apiServer  = flag.Bool("api-server", false, "Start the HTTP/WebSocket API server instead of decoding")
		apiPort    = flag.Int("port", 0, "API server port (used with -api-server; 0 uses the config default)")
		configPath = flag.String("config", "", "Config file path (default: platform config directory)")
		showVer    = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showVer {
		fmt.Printf("aarch64dis %s (%s)\n", Version, Commit)
		os.Exit(0)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Error: -file is required")
		flag.Usage()
		os.Exit(1)
	}

	image, err := os.ReadFile(*file) // #nosec G304 -- user-specified input file
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", *file, err)
		os.Exit(1)
	}

	base, err := parseAddress(*addrFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid -addr: %v\n", err)
		os.Exit(1)
	}

	dec := disasm.NewDecoder()

	if *apiServer {
		port := *apiPort
		if port == 0 {
			port = cfg.API.Port
		}
		runAPIServer(port, dec, hostio.NewHost(base, image, os.Stdout))
		return
	}

	lines := decodeListing(dec, base, image, uint32(*count))

	if *tuiMode {
		if err := tui.Run(cfg, lines); err != nil {
			fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	for i, line := range lines {
		fmt.Printf("%08x: %s\n", base+uint32(i*4), line)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

func parseAddress(s string) (uint32, error) {
	s = strings.TrimPrefix(s, "0x")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		v, err = strconv.ParseUint(s, 10, 32)
		if err != nil {
			return 0, err
		}
	}
	return uint32(v), nil
}

// decodeListing decodes count instructions from image starting at base and
// returns one formatted line per instruction. Each line is also fed to a
// cross-reference table, which is not returned; the lines carry no
// literal-target annotation.
func decodeListing(dec *disasm.Decoder, base uint32, image []byte, count uint32) []string {
	var sb strings.Builder
	host := hostio.NewHost(base, image, &sb)
	table := xref.NewTable()

	lines := make([]string, 0, count)
	addr := base
	for i := uint32(0); i < count; i++ {
		sb.Reset()
		next := dec.Disasm(host, addr, 0)
		line := strings.TrimRight(sb.String(), "\n")
		table.Observe(addr, line)
		lines = append(lines, line)
		addr = next
	}
	return lines
}

func runAPIServer(port int, dec *disasm.Decoder, host disasm.Host) {
	server := api.NewServer(port, dec, host)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	var shutdownOnce sync.Once
	performShutdown := func() {
		shutdownOnce.Do(func() {
			fmt.Println("\nShutting down API server...")
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "Error during shutdown: %v\n", err)
				os.Exit(1)
			}
			fmt.Println("API server stopped")
			os.Exit(0)
		})
	}

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "API server error: %v\n", err)
			os.Exit(1)
		}
	}()

	<-sigChan
	performShutdown()
}
