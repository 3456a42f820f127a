// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.

// Package easyterm is a wrapper for "github.com/pkg/term". It puts the
// controlling terminal into cbreak mode so that single key presses can be read
// without waiting for a newline, and restores the terminal when finished.
//
// The IsTerminal() function uses "golang.org/x/term" to decide whether an
// output file is connected to a terminal and so whether it is appropriate to
// write ANSI sequences to it.
package easyterm

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/pkg/term"
	xterm "golang.org/x/term"
)

// the device opened for keyboard input
const ttyDevice = "/dev/tty"

// Terminal is the main container for posix terminals.
type Terminal struct {
	tty    *term.Term
	output io.Writer

	// Close() may be called from a signal handler as well as from the normal
	// flow of the program
	mu     sync.Mutex
	closed bool
}

// Open the controlling terminal in cbreak mode. Output from the Print()
// function will be sent to the output argument.
func Open(output io.Writer) (*Terminal, error) {
	if output == nil {
		return nil, fmt.Errorf("easyterm: terminal requires an output writer")
	}

	tty, err := term.Open(ttyDevice)
	if err != nil {
		return nil, fmt.Errorf("easyterm: %w", err)
	}

	err = tty.SetCbreak()
	if err != nil {
		_ = tty.Close()
		return nil, fmt.Errorf("easyterm: %w", err)
	}

	return &Terminal{
		tty:    tty,
		output: output,
	}, nil
}

// ReadKey blocks until a single key has been pressed.
func (pt *Terminal) ReadKey() (byte, error) {
	b := make([]byte, 1)
	for {
		n, err := pt.tty.Read(b)
		if err != nil {
			return 0, fmt.Errorf("easyterm: %w", err)
		}
		if n == 1 {
			return b[0], nil
		}
	}
}

// Print writes the formatted string to the output
func (pt *Terminal) Print(s string, a ...any) {
	fmt.Fprintf(pt.output, s, a...)
}

// Close restores the terminal to the mode it was in before Open() and releases
// the device. It is safe to call Close() more than once.
func (pt *Terminal) Close() error {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	if pt.closed {
		return nil
	}
	pt.closed = true

	if err := pt.tty.Restore(); err != nil {
		_ = pt.tty.Close()
		return fmt.Errorf("easyterm: %w", err)
	}
	return pt.tty.Close()
}

// IsTerminal returns true if the file is connected to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return xterm.IsTerminal(int(f.Fd()))
}
