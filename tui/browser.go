// Package tui implements a scrolling text browser over a decoded
// instruction stream, grounded on the teacher's debugger.TUI: the same
// tview/tcell layout idiom (bordered TextView panels, a status line, a
// command input wired through SetDoneFunc, global key bindings installed
// via SetInputCapture), cut down to what a read-only disassembly listing
// needs — there is no VM, no breakpoints, no register file here.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lookbusy1344/aarch64dis/config"
)

// Browser is a scrollable view over an already-decoded instruction
// listing, one formatted line per instruction.
type Browser struct {
	App    *tview.Application
	Pages  *tview.Pages
	Layout *tview.Flex

	ListingView *tview.TextView
	StatusView  *tview.TextView
	CommandLine *tview.InputField

	cfg    *config.Config
	lines  []string
	cursor int
}

// NewBrowser builds a Browser over lines, a pre-rendered disassembly
// listing (one disasm.Decoder.Disasm call's output per entry).
func NewBrowser(cfg *config.Config, lines []string) *Browser {
	b := &Browser{
		App:   tview.NewApplication(),
		cfg:   cfg,
		lines: lines,
	}

	b.initializeViews()
	b.buildLayout()
	b.setupKeyBindings()
	b.refresh()

	return b
}

func (b *Browser) initializeViews() {
	b.ListingView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	b.ListingView.SetBorder(true).SetTitle(" Disassembly ")

	b.StatusView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(false)
	b.StatusView.SetBorder(true).SetTitle(" Status ")

	b.CommandLine = tview.NewInputField().
		SetLabel("goto> ").
		SetFieldWidth(0)
	b.CommandLine.SetBorder(true).SetTitle(" Command ")
	b.CommandLine.SetDoneFunc(b.handleCommand)
}

func (b *Browser) buildLayout() {
	b.Layout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(b.ListingView, 0, 5, false).
		AddItem(b.StatusView, 3, 0, false).
		AddItem(b.CommandLine, 3, 0, true)

	b.Pages = tview.NewPages().
		AddPage("main", b.Layout, true, true)
}

func (b *Browser) setupKeyBindings() {
	b.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp:
			b.moveCursor(-1)
			return nil
		case tcell.KeyDown:
			b.moveCursor(1)
			return nil
		case tcell.KeyPgUp:
			b.moveCursor(-b.cfg.Browser.HistorySize / 20)
			return nil
		case tcell.KeyPgDn:
			b.moveCursor(b.cfg.Browser.HistorySize / 20)
			return nil
		case tcell.KeyCtrlC:
			b.App.Stop()
			return nil
		}
		switch event.Rune() {
		case 'q':
			b.App.Stop()
			return nil
		case 'g':
			b.App.SetFocus(b.CommandLine)
			return nil
		}
		return event
	})
}

// handleCommand interprets the command line as a line number to jump the
// cursor to: decimal, or hexadecimal with a "0x" prefix. Either way the
// value is a line index, not an instruction address; FollowLiteral is not
// consulted.
func (b *Browser) handleCommand(key tcell.Key) {
	if key != tcell.KeyEnter {
		return
	}
	text := strings.TrimSpace(b.CommandLine.GetText())
	b.CommandLine.SetText("")
	if text == "" {
		return
	}

	base := 10
	if strings.HasPrefix(text, "0x") {
		text = text[2:]
		base = 16
	}
	n, err := strconv.ParseInt(text, base, 64)
	if err != nil {
		b.setStatus(fmt.Sprintf("[red]not a line number or address: %s[white]", text))
		return
	}

	b.cursor = clamp(int(n), 0, len(b.lines)-1)
	b.refresh()
}

func (b *Browser) moveCursor(delta int) {
	b.cursor = clamp(b.cursor+delta, 0, len(b.lines)-1)
	b.refresh()
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (b *Browser) refresh() {
	b.ListingView.Clear()

	context := b.cfg.Disasm.ContextLines
	start := clamp(b.cursor-context, 0, len(b.lines)-1)
	end := clamp(b.cursor+context, 0, len(b.lines)-1)

	var out []string
	for i := start; i <= end; i++ {
		marker := "  "
		color := "white"
		if i == b.cursor {
			marker = "->"
			color = "yellow"
		}
		prefix := ""
		if b.cfg.Browser.ShowAddress {
			prefix = fmt.Sprintf("%04d: ", i)
		}
		out = append(out, fmt.Sprintf("[%s]%s%s%s[white]", color, marker, prefix, b.lines[i]))
	}
	b.ListingView.SetText(strings.Join(out, "\n"))

	b.StatusView.SetText(fmt.Sprintf("line %d/%d — arrows to move, g to goto, q to quit", b.cursor, len(b.lines)-1))
}

// Run starts the interactive browser. It blocks until the user quits.
func (b *Browser) Run() error {
	return b.App.SetRoot(b.Pages, true).SetFocus(b.CommandLine).Run()
}

// Stop stops the browser's event loop, safe to call from another
// goroutine (e.g. a signal handler in the reference CLI).
func (b *Browser) Stop() {
	b.App.Stop()
}

// Run builds a Browser over lines with cfg's display settings and runs it
// to completion, matching the one-shot entry point a CLI flag expects.
func Run(cfg *config.Config, lines []string) error {
	return NewBrowser(cfg, lines).Run()
}
