// Command vtdemo is a minimal PTY-backed host for vtcore: it spawns the
// user's shell behind a pseudo-terminal, puts the controlling terminal into
// raw mode, and bridges bytes between the two while vtcore tracks the
// resulting screen state.
package main

import (
	"io"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/creack/pty"
	"golang.org/x/term"

	"github.com/studentlabs/vtcore"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}
	cmd := exec.Command(shell)

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return err
	}
	defer ptmx.Close()

	vt := vtcore.New(vtcore.WithHostCallbacks(demoCallbacks{}))

	if cols, rows, err := pty.Getsize(ptmx); err == nil {
		vt.Resize(cols, rows)
	}

	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err == nil {
		defer term.Restore(int(os.Stdin.Fd()), oldState)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGWINCH)
	go watchResize(sigCh, ptmx, vt)
	sigCh <- syscall.SIGWINCH // trigger an initial resize

	go pumpStdinToPTY(ptmx)

	return pumpPTYToTerminal(ptmx, vt)
}

// demoCallbacks renders host-visible notifications (the bell to stderr, the
// title as an OSC 0 sequence on stdout) rather than implementing a real window; a full front-end would swap this
// for one that drives an actual display.
type demoCallbacks struct {
	vtcore.NopCallbacks
}

func (demoCallbacks) Bell() {
	os.Stderr.Write([]byte{0x07})
}

func (demoCallbacks) SetTitle(title string) {
	os.Stdout.Write([]byte("\x1b]0;" + title + "\x07"))
}

func watchResize(sigCh <-chan os.Signal, ptmx *os.File, vt *vtcore.Terminal) {
	for range sigCh {
		cols, rows, err := pty.Getsize(os.Stdin)
		if err != nil {
			continue
		}
		pty.Setsize(ptmx, &pty.Winsize{Cols: uint16(cols), Rows: uint16(rows)})
		vt.Resize(cols, rows)
	}
}

func pumpStdinToPTY(ptmx *os.File) {
	buf := make([]byte, 4096)
	for {
		n, err := os.Stdin.Read(buf)
		if n > 0 {
			ptmx.Write(buf[:n])
		}
		if err != nil {
			return
		}
	}
}

// pumpPTYToTerminal feeds the shell's output into the Terminal and flushes
// whatever the core queues in reply (DA/DSR/mouse replies) back to the PTY.
func pumpPTYToTerminal(ptmx *os.File, vt *vtcore.Terminal) error {
	buf := make([]byte, 4096)
	for {
		n, err := ptmx.Read(buf)
		if n > 0 {
			vt.Feed(buf[:n])
			if out := vt.Output(); len(out) > 0 {
				ptmx.Write(out)
			}
			os.Stdout.Write(buf[:n])
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}
