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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/debugger"
	"github.com/jetsetilly/gophernes/debugger/dump"
	"github.com/jetsetilly/gophernes/debugger/govern"
	"github.com/jetsetilly/gophernes/debugger/terminal"
	"github.com/jetsetilly/gophernes/debugger/terminal/colorterm"
	"github.com/jetsetilly/gophernes/debugger/terminal/plainterm"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/hardware/cpu"
	"github.com/jetsetilly/gophernes/hardware/cpu/execution"
	"github.com/jetsetilly/gophernes/hardware/cpu/instructions"
	"github.com/jetsetilly/gophernes/hardware/memory/bus"
	"github.com/jetsetilly/gophernes/hardware/preferences"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/modalflag"
	"github.com/jetsetilly/gophernes/paths"
	"github.com/jetsetilly/gophernes/performance"
	"github.com/jetsetilly/gophernes/prefs"
	"github.com/jetsetilly/gophernes/statsview"
	"github.com/jetsetilly/gophernes/terminal/easyterm"
	"github.com/jetsetilly/gophernes/tracer"
	"github.com/jetsetilly/gophernes/version"
)

// exit values
const (
	exitArgumentError = 10
	exitModeError     = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the arguments and runs the selected mode. returns the value
// to be used with os.Exit()
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "TRACE", "DEBUG", "DISASM", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitArgumentError
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "TRACE":
		err = trace(md)

	case "DEBUG":
		err = debug(md)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitModeError
	}

	return 0
}

// setLog sets the echo of the central logger. output is coloured if it is
// connected to a terminal
func setLog(echo bool) {
	if !echo {
		logger.SetEcho(nil)
		return
	}
	if easyterm.IsTerminal(os.Stdout) {
		logger.SetEcho(logger.NewColorizer(os.Stdout))
	} else {
		logger.SetEcho(os.Stdout)
	}
}

// machineArgs are the flags common to the modes that run the emulation
type machineArgs struct {
	pc      *string
	prefs   *string
	log     *bool
	prefsFn *string
}

func addMachineArgs(md *modalflag.Modes) machineArgs {
	return machineArgs{
		pc:      md.AddString("pc", "", "start execution at address (hex) rather than the reset vector"),
		prefs:   md.AddString("prefs", "", "preferences to apply for this session (key::value; key::value)"),
		log:     md.AddBool("log", false, "echo debugging log to stdout"),
		prefsFn: md.AddString("prefsfile", "", "preferences file to use"),
	}
}

// parseAddress accepts a hex address with an optional $ or 0x prefix
func parseAddress(s string) (uint16, error) {
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid address (%s)", s)
	}
	return uint16(v), nil
}

// newNES creates the NES and attaches the cartridge named by the first
// remaining argument
func newNES(md *modalflag.Modes, args machineArgs) (*hardware.NES, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("NES cartridge required for %s mode", md)
	case 1:
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	setLog(*args.log)

	if *args.prefs != "" {
		prefs.PushCommandLineStack(*args.prefs)
	}

	p, err := preferences.NewPreferences(*args.prefsFn)

	if *args.prefs != "" {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			fmt.Fprintf(md.Output, "! unused preferences: %s\n", unused)
		}
	}

	if err != nil {
		return nil, err
	}

	nes, err := hardware.NewNES(p)
	if err != nil {
		return nil, err
	}

	cl := cartridgeloader.NewLoader(md.GetArg(0))
	if !cl.IsRecognised() {
		logger.Logf(logger.Allow, "gophernes", "unrecognised file extension for %s", cl.Filename)
	}

	err = nes.AttachCartridge(cl)
	if err != nil {
		return nil, err
	}

	if *args.pc != "" {
		pc, err := parseAddress(*args.pc)
		if err != nil {
			return nil, err
		}
		nes.CPU.LoadPC(pc)
	}

	return nes, nil
}

// interruptible returns a context that is cancelled on an interrupt signal
func interruptible() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// endOfRun reports the reasons for a run ending that are not considered to be
// errors. any other error is returned
func endOfRun(output io.Writer, nes *hardware.NES, err error) error {
	switch {
	case err == nil:
		return nil
	case curated.Is(err, hardware.StepLimitReached):
		fmt.Fprintf(output, "! %v\n", err)
		return nil
	case curated.Is(err, cpu.Jammed):
		fmt.Fprintf(output, "! %v\n", err)
		return nil
	case err == context.Canceled:
		fmt.Fprintf(output, "! interrupted at %04X\n", nes.CPU.PC.Address())
		return nil
	}
	return err
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	args := addMachineArgs(md)
	dumpFile := md.AddString("dump", "", "write CPU state to file on failure (AUTO for a unique filename)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	nes, err := newNES(md, args)
	if err != nil {
		return err
	}

	ctx, stop := interruptible()
	defer stop()

	err = nes.Run(ctx, nes.Prefs.StepLimit.Get().(int), nil)
	if err == nil || curated.Is(err, hardware.StepLimitReached) || err == context.Canceled {
		return endOfRun(md.Output, nes, err)
	}

	if *dumpFile != "" {
		fn := *dumpFile
		if strings.ToUpper(fn) == "AUTO" {
			fn = fmt.Sprintf("%s.dot", paths.UniqueFilename("crash", md.GetArg(0)))
		}
		if derr := dump.FromNES(nes, err).ToFile(fn); derr != nil {
			return derr
		}
		fmt.Fprintf(md.Output, "! CPU state written to %s\n", fn)
	}

	return endOfRun(md.Output, nes, err)
}

func trace(md *modalflag.Modes) error {
	md.NewMode()

	args := addMachineArgs(md)
	out := md.AddString("out", "", "write trace to file rather than stdout (AUTO for a unique filename)")
	golden := md.AddString("golden", "", "reference log to compare the trace with")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	nes, err := newNES(md, args)
	if err != nil {
		return err
	}

	w := md.Output
	if *out != "" {
		fn := *out
		if strings.ToUpper(fn) == "AUTO" {
			fn = fmt.Sprintf("%s.log", paths.UniqueFilename("trace", md.GetArg(0)))
		}
		f, err := os.Create(fn)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	var cmp *tracer.Comparison
	if *golden != "" {
		f, err := os.Open(*golden)
		if err != nil {
			return err
		}
		defer f.Close()
		cmp = tracer.NewComparison(f)
	}

	tr := tracer.NewTracer(nes.Debug)
	tr.Cycles = nes.Prefs.TraceCycles.Get().(bool)

	ctx, stop := interruptible()
	defer stop()

	var line string
	err = nes.RunWithDecode(ctx, nes.Prefs.StepLimit.Get().(int),
		func(d execution.Decoded) {
			line = tr.Line(nes.CPU, d)
			fmt.Fprintln(w, line)
		},
		func(_ execution.Result) (govern.State, error) {
			if cmp != nil {
				if err := cmp.Check(line); err != nil {
					return govern.Ending, err
				}
			}
			return govern.Running, nil
		})

	if curated.Is(err, tracer.GoldenFinished) {
		fmt.Fprintf(md.Output, "! trace matches reference log (%d lines)\n", cmp.Lines())
		return nil
	}

	return endOfRun(md.Output, nes, err)
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	args := addMachineArgs(md)
	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	breakCond := md.AddString("break", "", "Lua expression to stop the continue command")
	dumpFile := md.AddString("dump", "", "write CPU state to file on failure (AUTO for a unique filename)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	nes, err := newNES(md, args)
	if err != nil {
		return err
	}

	var term terminal.Terminal
	switch strings.ToUpper(*termType) {
	default:
		fmt.Fprintf(md.Output, "! unknown terminal type (%s) defaulting to plain\n", *termType)
		fallthrough
	case "PLAIN":
		term = plainterm.NewPlainTerminal(os.Stdin, md.Output)
	case "COLOR":
		if easyterm.IsTerminal(os.Stdin) && easyterm.IsTerminal(os.Stdout) {
			term = colorterm.NewColorTerminal(md.Output)
		} else {
			term = plainterm.NewPlainTerminal(os.Stdin, md.Output)
		}
	}

	fn := *dumpFile
	if strings.ToUpper(fn) == "AUTO" {
		fn = fmt.Sprintf("%s.dot", paths.UniqueFilename("crash", md.GetArg(0)))
	}

	dbg, err := debugger.NewDebugger(nes, term, debugger.Options{
		Break: *breakCond,
		Dump:  fn,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(md.Output, version.Banner())

	// interrupt signals are handled by the debugger
	return dbg.Start(context.Background())
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	origin := md.AddString("origin", "", "address (hex) to start disassembly. defaults to the reset vector")
	count := md.AddInt("count", 32, "number of instructions to disassemble")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("NES cartridge required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	cl := cartridgeloader.NewLoader(md.GetArg(0))
	if err := cl.Load(); err != nil {
		return err
	}
	cart, err := cartridgeloader.ParseINES(cl.Data)
	if err != nil {
		return err
	}

	tab, dbg, err := instructions.Default()
	if err != nil {
		return err
	}

	mem := bus.NewBus()
	if err := cart.Install(mem); err != nil {
		return err
	}

	var address uint16
	if *origin == "" {
		address, err = mem.Read16(cpu.ResetVector)
	} else {
		address, err = parseAddress(*origin)
	}
	if err != nil {
		return err
	}

	tr := tracer.NewTracer(dbg)
	for _, l := range tr.Disassemble(tab, mem, address, *count) {
		fmt.Fprintln(md.Output, l)
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	args := addMachineArgs(md)
	steps := md.AddInt("steps", 10000000, "number of instructions to execute")
	profile := md.AddString("profile", "none", "run performance check with profiling: CPU, MEM, ALL (comma separated)")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (available: %v)", statsview.Available()))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	nes, err := newNES(md, args)
	if err != nil {
		return err
	}

	if *stats {
		if !statsview.Available() {
			fmt.Fprintln(md.Output, "! stats server not available in this build")
		} else {
			statsview.Launch(md.Output)
		}
	}

	ctx, stop := interruptible()
	defer stop()

	return performance.Check(ctx, md.Output, prf, nes, *steps)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *revision {
		v, r, _ := version.Version()
		fmt.Fprintf(md.Output, "%s (%s)\n", v, r)
	} else {
		fmt.Fprintln(md.Output, version.Banner())
	}

	return nil
}
