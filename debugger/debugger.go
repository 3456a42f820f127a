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

package debugger

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/debugger/conditions"
	"github.com/jetsetilly/gophernes/debugger/dump"
	"github.com/jetsetilly/gophernes/debugger/govern"
	"github.com/jetsetilly/gophernes/debugger/terminal"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/hardware/cpu"
	"github.com/jetsetilly/gophernes/hardware/cpu/execution"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/terminal/easyterm"
	"github.com/jetsetilly/gophernes/tracer"
)

// number of log entries shown by the log command
const logTail = 10

// Options for the debugger.
type Options struct {
	// Lua expression used to stop the continue command
	Break string

	// file to write the CPU state to when an instruction fails. an empty
	// string means no dump is written
	Dump string
}

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	nes  *hardware.NES
	term terminal.Terminal

	tracer *tracer.Tracer
	cond   *conditions.Condition
	opts   Options

	// interrupt signals. only used to stop the continue command
	sig chan os.Signal
}

// NewDebugger creates and initialises everything required for a new debugging
// session. Use the Start() method to actually begin the session.
func NewDebugger(nes *hardware.NES, term terminal.Terminal, opts Options) (*Debugger, error) {
	dbg := &Debugger{
		nes:    nes,
		term:   term,
		tracer: tracer.NewTracer(nes.Debug),
		opts:   opts,
	}
	dbg.tracer.Cycles = nes.Prefs.TraceCycles.Get().(bool)

	if opts.Break != "" {
		var err error
		dbg.cond, err = conditions.NewCondition(opts.Break)
		if err != nil {
			return nil, err
		}
	}

	return dbg, nil
}

// Start the debugging session. The function returns when the user quits or
// when the context is cancelled.
func (dbg *Debugger) Start(ctx context.Context) error {
	if dbg.cond != nil {
		defer dbg.cond.Close()
	}

	if err := dbg.term.Initialise(); err != nil {
		return err
	}
	defer dbg.term.CleanUp()

	dbg.sig = make(chan os.Signal, 1)
	signal.Notify(dbg.sig, os.Interrupt)
	defer signal.Stop(dbg.sig)

	dbg.printRegisters()

	for {
		if ctx.Err() != nil {
			return nil
		}

		k, err := dbg.term.TermReadKey(dbg.prompt())
		if err != nil {
			return err
		}

		switch k {
		case 's', easyterm.KeySpace, easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			err = dbg.step()
		case 'c':
			err = dbg.cont(ctx)
		case 'r':
			dbg.printRegisters()
		case 'l':
			logger.Tail(&logWriter{term: dbg.term}, logTail)
		case 'h', '?':
			dbg.term.TermPrintLine(terminal.StyleHelp, help)
		case 'q', easyterm.KeyEsc, easyterm.KeyInterrupt, easyterm.KeyEndOfFile:
			return nil
		default:
			dbg.printLine(terminal.StyleFeedback, "unknown command (%c). press h for help", k)
		}

		if err != nil {
			return err
		}
	}
}

func (dbg *Debugger) printLine(style terminal.Style, s string, a ...any) {
	dbg.term.TermPrintLine(style, fmt.Sprintf(s, a...))
}

func (dbg *Debugger) printRegisters() {
	dbg.printLine(terminal.StyleInstrument, "%s CYC=%d", dbg.nes.CPU, dbg.nes.CPU.Cycles)
}

// prompt shows the disassembly of the next instruction
func (dbg *Debugger) prompt() terminal.Prompt {
	p := terminal.Prompt{
		Content: dbg.tracer.Disassemble(dbg.nes.Instructions, dbg.nes.Mem, dbg.nes.CPU.PC.Address(), 1)[0],
	}
	if dbg.nes.CPU.Killed {
		p.Type = terminal.PromptTypeJammed
	}
	return p
}

// step executes a single instruction and prints the trace line
func (dbg *Debugger) step() error {
	var line string
	_, err := dbg.nes.StepWithDecode(func(d execution.Decoded) {
		line = dbg.tracer.Line(dbg.nes.CPU, d)
	})
	if err != nil {
		return dbg.fail(err)
	}
	dbg.term.TermPrintLine(terminal.StyleCPUStep, line)
	return nil
}

// cont runs the emulation until the break condition holds, until an error or
// until an interrupt signal is received
func (dbg *Debugger) cont(ctx context.Context) error {
	// discard any interrupt received before the continue command
	select {
	case <-dbg.sig:
	default:
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		select {
		case <-dbg.sig:
			cancel()
		case <-ctx.Done():
		}
	}()

	var steps int
	err := dbg.nes.Run(ctx, 0, func(_ execution.Result) (govern.State, error) {
		steps++
		if dbg.cond == nil {
			return govern.Running, nil
		}
		ok, err := dbg.cond.Check(dbg.nes.CPU, dbg.nes.Mem)
		if err != nil {
			return govern.Ending, err
		}
		if ok {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})

	switch {
	case err == nil:
		dbg.printLine(terminal.StyleFeedback, "break condition (%s) after %d instructions", dbg.cond, steps)
	case curated.Is(err, conditions.EvaluationError):
		dbg.printLine(terminal.StyleError, "%v", err)
	case ctx.Err() != nil:
		dbg.printLine(terminal.StyleFeedback, "interrupted after %d instructions", steps)
	default:
		if err := dbg.fail(err); err != nil {
			return err
		}
	}

	dbg.printRegisters()
	return nil
}

// fail reports an execution error and writes the dump file if required. errors
// that have not been curated are unexpected and are returned so that the
// session can end
func (dbg *Debugger) fail(err error) error {
	if !curated.IsAny(err) {
		return err
	}

	dbg.printLine(terminal.StyleError, "%v", err)
	if curated.Is(err, cpu.Jammed) {
		dbg.printLine(terminal.StyleFeedback, "CPU is jammed. press q to quit")
	}

	if dbg.opts.Dump == "" {
		return nil
	}

	if derr := dump.FromNES(dbg.nes, err).ToFile(dbg.opts.Dump); derr != nil {
		dbg.printLine(terminal.StyleError, "%v", derr)
		return nil
	}
	dbg.printLine(terminal.StyleFeedback, "CPU state written to %s", dbg.opts.Dump)
	return nil
}
