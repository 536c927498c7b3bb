// This file is part of Emucli.
//
// Emucli is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Emucli is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Emucli.  If not, see <https://www.gnu.org/licenses/>.


package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/jetsetilly/emucli/batch"
	"github.com/jetsetilly/emucli/breakpoints"
	"github.com/jetsetilly/emucli/debugger"
	"github.com/jetsetilly/emucli/debugger/govern"
	"github.com/jetsetilly/emucli/debugger/terminal"
	"github.com/jetsetilly/emucli/debugger/terminal/colorterm"
	"github.com/jetsetilly/emucli/debugger/terminal/plainterm"
	"github.com/jetsetilly/emucli/emulation/sim"
	"github.com/jetsetilly/emucli/logger"
	"github.com/jetsetilly/emucli/modalflag"
	"github.com/jetsetilly/emucli/notifications"
	"github.com/jetsetilly/emucli/paths"
	"github.com/jetsetilly/emucli/statsview"
	"github.com/jetsetilly/emucli/version"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

// exit values of the program.
const (
	exitOK    = 0
	exitUsage = 2
)

// number of entries kept by the central logger.
const logEntries = 256

// how long to wait for the emulation to stop on the first instruction after
// the ROM has been loaded.
const initialBreakTimeout = 5 * time.Second

// the prefix of the error returned by the flag package for an undefined flag.
const undefinedFlag = "flag provided but not defined: "

// the values accepted by the --term flag.
const (
	termPlain = "plain"
	termColor = "color"
)

func main() {
	os.Exit(launch(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// options as specified on the command line.
type options struct {
	romPath string

	batch    bool
	json     bool
	headless bool
	dap      bool
	log      bool
	stats    bool
	term     string

	timeout time.Duration

	breaks     []uint32
	assertions []batch.Assertion
	dumps      []modalflag.Pair
}

func usageText(prog string) string {
	s := strings.Builder{}
	s.WriteString("Modes:\n")
	s.WriteString("  <rom_path>              CLI interactive mode (default)\n")
	s.WriteString("  <rom_path> --batch      CLI batch mode\n")
	s.WriteString("  --dap                   DAP mode: speak DAP JSON on stdin/stdout\n")
	s.WriteString("\n")
	s.WriteString("Address formats: $1234, 0x1234, 1234, 00:8000\n")
	s.WriteString("\n")
	s.WriteString("Examples:\n")
	s.WriteString(fmt.Sprintf("  %s game.nes                          Interactive NES debugger\n", prog))
	s.WriteString(fmt.Sprintf("  %s game.sfc --batch --break $8100    Run SNES to address, print state\n", prog))
	s.WriteString(fmt.Sprintf("  %s --dap                             Start DAP server for VSCode", prog))
	return s.String()
}

// mode of operation implied by the options.
func (opts options) mode() govern.Mode {
	switch {
	case opts.dap:
		return govern.ModeAdapter
	case opts.batch:
		return govern.ModeBatch
	}
	return govern.ModeInteractive
}

// parseArgs returns false if the program should exit immediately, in which
// case the exit value is also returned.
func parseArgs(args []string, stdout io.Writer, stderr io.Writer) (options, bool, int) {
	var opts options

	prog := "emucli"
	if len(args) > 0 {
		prog = filepath.Base(args[0])
		args = args[1:]
	}

	md := modalflag.Flags{Output: stdout}
	md.NewArgs(args)
	md.Banner(fmt.Sprintf("Usage: %s [options] <rom_path>", prog))
	md.AdditionalHelp(usageText(prog))

	dap := md.AddBool("dap", false, "DAP mode (for VSCode integration)")
	bat := md.AddBool("batch", false, "Batch mode (non-interactive)")
	json := md.AddBool("json", false, "JSON output (CLI/batch modes)")
	headless := md.AddBool("headless", false, "No frame throttling (max speed)")
	breaks := md.AddStrings("break", "Set initial breakpoint (hex, repeatable)")
	timeout := md.AddInt("timeout", 10000, "Batch timeout in milliseconds")
	checkReg := md.AddStrings("check-reg", "Assert register <R>=<V> (batch)")
	checkMem := md.AddStrings("check-mem", "Assert memory byte <A>=<V> (batch)")
	checkMem16 := md.AddStrings("check-mem16", "Assert memory word <A>=<V> (batch)")
	dumps := md.AddPairs("dump", "Dump memory region <type> <file> (batch)")
	trm := md.AddString("term", "", "Terminal type: plain or color (interactive)")
	lg := md.AddBool("log", false, "Echo log entries to stderr")
	stats := md.AddBool("statsview", false, "Run the runtime statistics server (if available)")
	ver := md.AddBool("version", false, "Print version information")

	usage := func() {
		md.Help(stderr)
	}

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return opts, false, exitOK
	case modalflag.ParseError:
		if opt, ok := strings.CutPrefix(err.Error(), undefinedFlag); ok {
			fmt.Fprintf(stderr, "Unknown option: %s\n", opt)
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		usage()
		return opts, false, exitUsage
	}

	if *ver {
		fmt.Fprintln(stdout, version.String())
		return opts, false, exitOK
	}

	opts.dap = *dap
	opts.batch = *bat
	opts.json = *json
	opts.headless = *headless
	opts.log = *lg
	opts.stats = *stats
	opts.timeout = time.Duration(*timeout) * time.Millisecond
	opts.dumps = *dumps

	switch *trm {
	case "", termPlain, termColor:
		opts.term = *trm
	default:
		fmt.Fprintf(stderr, "Unknown terminal type: %s (expected %s or %s)\n", *trm, termPlain, termColor)
		usage()
		return opts, false, exitUsage
	}

	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		opts.romPath = md.GetArg(0)
	default:
		fmt.Fprintln(stderr, "Multiple ROM paths specified")
		usage()
		return opts, false, exitUsage
	}

	for _, b := range *breaks {
		a, err := breakpoints.ParseAddress(b)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return opts, false, exitUsage
		}
		opts.breaks = append(opts.breaks, a)
	}

	for _, s := range *checkReg {
		a, err := batch.ParseRegisterAssertion(s)
		if err != nil {
			fmt.Fprintf(stderr, "Invalid --check-reg format: %s (expected REG=VALUE)\n", s)
			return opts, false, exitUsage
		}
		opts.assertions = append(opts.assertions, a)
	}

	for _, m := range []struct {
		flag   string
		values []string
		size   int
	}{
		{flag: "--check-mem", values: *checkMem, size: 1},
		{flag: "--check-mem16", values: *checkMem16, size: 2},
	} {
		for _, s := range m.values {
			a, err := batch.ParseMemoryAssertion(s, m.size)
			if err != nil {
				fmt.Fprintf(stderr, "Invalid %s format: %s (expected ADDR=VALUE)\n", m.flag, s)
				return opts, false, exitUsage
			}
			opts.assertions = append(opts.assertions, a)
		}
	}

	if opts.dap {
		return opts, true, exitOK
	}

	if opts.romPath == "" {
		fmt.Fprintln(stderr, "Error: ROM path is required.")
		usage()
		return opts, false, exitUsage
	}

	return opts, true, exitOK
}

// launch is the body of the main() function. it returns the exit value of
// the program.
func launch(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	opts, ok, exitVal := parseArgs(args, stdout, stderr)
	if !ok {
		return exitVal
	}

	mode := opts.mode()
	if mode == govern.ModeAdapter {
		fmt.Fprintln(stderr, "[DAP] DAP mode not yet implemented.")
		return exitOK
	}

	log := logger.NewLogger(logEntries)
	defer log.Close()

	var trm terminal.Terminal
	color := mode == govern.ModeInteractive && (opts.term == termColor || (opts.term == "" && isRealTerminal(stdin, stdout)))
	if color {
		hist, err := paths.ResourcePath("history")
		if err != nil {
			log.Log(logger.Allow, "emucli", err)
		}
		trm = colorterm.NewColorTerminal(hist)
	} else {
		trm = plainterm.NewPlainTerminal(stdin, stdout)
	}

	if opts.log {
		if color {
			log.SetEcho(logger.NewColorizer(stderr))
		} else {
			log.SetEcho(stderr)
		}
	}

	core := sim.NewCore(log, opts.headless)
	bridge := notifications.NewBridge()
	core.RegisterNotificationListener(bridge)

	ctx, cancel := context.WithCancel(context.Background())
	grp, ctx := errgroup.WithContext(ctx)

	grp.Go(func() error {
		return core.Emulate(ctx)
	})

	if opts.stats {
		if statsview.Available() {
			grp.Go(func() error {
				return statsview.Launch(ctx, stderr)
			})
		} else {
			log.Log(logger.Allow, "statsview", "not available in this build")
		}
	}

	defer func() {
		core.UnregisterNotificationListener(bridge)
		cancel()
		if err := grp.Wait(); err != nil {
			log.Log(logger.Allow, "emucli", err)
		}
	}()

	if err := core.Load(opts.romPath); err != nil {
		log.Log(logger.Allow, "emucli", err)
		fmt.Fprintf(stderr, "Failed to load ROM: %s\n", opts.romPath)
		return exitUsage
	}

	if !bridge.WaitForStop(initialBreakTimeout) {
		log.Log(logger.Allow, "emucli", "no initial break")
	}

	desc := core.Console()
	log.Logf(logger.Allow, "emucli", "%s loaded as %s (%s mode)", opts.romPath, desc.Name, mode)

	var dumps []batch.DumpRequest
	for _, p := range opts.dumps {
		d := batch.NewDumpRequest(p.First, p.Second)
		if err := d.Resolve(desc); err != nil {
			fmt.Fprintf(stderr, "Unknown dump type '%s' for %s. Valid types: %s\n",
				p.First, desc.Name, strings.Join(desc.Aliases(), " "))
			continue
		}
		dumps = append(dumps, d)
	}

	bps := breakpoints.NewList()
	if len(opts.breaks) > 0 {
		primary := desc.CPU
		if cpus := core.CPUTypes(); len(cpus) > 0 {
			primary = cpus[0]
		}
		for _, a := range opts.breaks {
			bps.Add(breakpoints.NewExecute(primary, a, a))
		}
		if dbg, err := core.Debugger(); err == nil {
			if err := breakpoints.NewTranslator(dbg).Push(bps); err != nil {
				log.Log(logger.Allow, "emucli", err)
			}
		}
	}

	if mode == govern.ModeBatch {
		return runBatch(opts, core, bridge, log, dumps, stdout, stderr)
	}

	dbg := debugger.NewDebugger(core, bridge, trm, log, debugger.Options{
		JSON:        opts.json,
		Breakpoints: bps,
	})
	if err := dbg.Start(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	return exitOK
}

// runBatch runs the batch runner and returns its exit value. SIGINT and
// SIGTERM interrupt the wait for the emulation to stop.
func runBatch(opts options, core *sim.Core, bridge *notifications.Bridge, log *logger.Logger,
	dumps []batch.DumpRequest, stdout io.Writer, stderr io.Writer) int {

	runner := batch.NewRunner(core, bridge, log, batch.Config{
		JSON:    opts.json,
		Timeout: opts.timeout,
		Stdout:  stdout,
		Stderr:  stderr,
	})

	for _, a := range opts.assertions {
		if err := runner.AddAssertion(a); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return batch.ExitError
		}
	}
	for _, d := range dumps {
		if err := runner.AddDump(d); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return batch.ExitError
		}
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(intChan)

	done := make(chan bool)
	defer close(done)

	go func() {
		select {
		case <-intChan:
			log.Log(logger.Allow, "batch", "interrupted")
			bridge.Interrupt()
		case <-done:
		}
	}()

	return runner.Run()
}

// isRealTerminal returns true if both the input and output are connected to
// a terminal.
func isRealTerminal(stdin io.Reader, stdout io.Writer) bool {
	in, ok := stdin.(*os.File)
	if !ok {
		return false
	}
	out, ok := stdout.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(in.Fd())) && term.IsTerminal(int(out.Fd()))
}
