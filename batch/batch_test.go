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

package batch_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/emucli/batch"
	"github.com/jetsetilly/emucli/breakpoints"
	"github.com/jetsetilly/emucli/console"
	"github.com/jetsetilly/emucli/curated"
	"github.com/jetsetilly/emucli/emulation"
	"github.com/jetsetilly/emucli/emulation/sim"
	"github.com/jetsetilly/emucli/logger"
	"github.com/jetsetilly/emucli/notifications"
	"github.com/jetsetilly/emucli/test"
)

type fixture struct {
	core   *sim.Core
	bridge *notifications.Bridge
	log    *logger.Logger
	stdout *test.CompareWriter
	stderr *test.CompareWriter
}

// newFixture loads a NES ROM into a headless core. if breakAt is not zero an
// execution breakpoint is set at that address.
func newFixture(t *testing.T, breakAt uint32) *fixture {
	t.Helper()

	fn := filepath.Join(t.TempDir(), "test.nes")
	test.DemandSuccess(t, os.WriteFile(fn, make([]byte, 0x8000), 0o644))

	f := &fixture{
		core:   sim.NewCore(logger.NewLogger(100), true),
		bridge: notifications.NewBridge(),
		log:    logger.NewLogger(100),
		stdout: &test.CompareWriter{},
		stderr: &test.CompareWriter{},
	}
	f.core.RegisterNotificationListener(f.bridge)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() {
		done <- f.core.Emulate(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
		f.core.UnregisterNotificationListener(f.bridge)
	})

	test.DemandSuccess(t, f.core.Load(fn))
	test.DemandSuccess(t, f.bridge.WaitForStop(time.Second))

	if breakAt != 0 {
		dbg, err := f.core.Debugger()
		test.DemandSuccess(t, err)
		l := breakpoints.NewList()
		l.Add(breakpoints.NewExecute(console.CPUNes, breakAt, breakAt))
		test.DemandSuccess(t, breakpoints.NewTranslator(dbg).Push(l))
	}

	return f
}

func (f *fixture) runner(json bool, timeout time.Duration) *batch.Runner {
	return batch.NewRunner(f.core, f.bridge, f.log, batch.Config{
		JSON:    json,
		Timeout: timeout,
		Stdout:  f.stdout,
		Stderr:  f.stderr,
	})
}

func TestPass(t *testing.T) {
	f := newFixture(t, 0x8100)
	r := f.runner(false, 2*time.Second)

	a, err := batch.ParseRegisterAssertion("A=$00")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, r.AddAssertion(a))
	a, err = batch.ParseRegisterAssertion("pc=8100")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, r.AddAssertion(a))

	test.ExpectEquality(t, r.State(), batch.Idle)
	test.ExpectEquality(t, r.Run(), batch.ExitPass)
	test.ExpectEquality(t, r.State(), batch.Done)

	test.ExpectEquality(t, f.stdout.String(),
		"PC=$8100  A=$00  X=$00  Y=$00  SP=$FD\nFlags: nv1bdIzc  Cycles: 512\n"+
			"PASS: A = $0000\n"+
			"PASS: pc = $8100\n")
	test.ExpectEquality(t, f.stderr.String(), "")

	test.DemandEquality(t, len(r.Results()), 2)
	test.ExpectSuccess(t, r.Results()[0].Err)

	// no changes are possible after the run
	err = r.AddAssertion(a)
	test.ExpectSuccess(t, curated.Is(err, batch.NotIdle))
	err = r.AddDump(batch.NewDumpRequest("ram", "ram.bin"))
	test.ExpectSuccess(t, curated.Is(err, batch.NotIdle))
	test.ExpectEquality(t, r.Run(), batch.ExitError)
}

func TestJSON(t *testing.T) {
	f := newFixture(t, 0x8100)
	r := f.runner(true, 2*time.Second)

	a, _ := batch.ParseRegisterAssertion("A=$00")
	test.DemandSuccess(t, r.AddAssertion(a))
	a, _ = batch.ParseRegisterAssertion("X=$01")
	test.DemandSuccess(t, r.AddAssertion(a))

	test.ExpectEquality(t, r.Run(), batch.ExitFail)
	test.ExpectSuccess(t, strings.Contains(f.stdout.String(), `"a":"00"`))
	test.ExpectEquality(t, f.stderr.String(), `{"assertion_failed":"X","expected":1,"actual":0}`+"\n")
}

func TestFail(t *testing.T) {
	f := newFixture(t, 0x8100)
	r := f.runner(false, 2*time.Second)

	for _, s := range []string{"A=$12", "Q=0", "y=0"} {
		a, err := batch.ParseRegisterAssertion(s)
		test.DemandSuccess(t, err)
		test.DemandSuccess(t, r.AddAssertion(a))
	}

	test.ExpectEquality(t, r.Run(), batch.ExitFail)
	test.ExpectEquality(t, f.stderr.String(),
		"FAIL: A = $0000 (expected $0012)\n"+
			"Unknown register: Q\n")

	// all assertions are checked even after a failure
	test.ExpectSuccess(t, strings.HasSuffix(f.stdout.String(), "PASS: y = $0000\n"))

	res := r.Results()
	test.DemandEquality(t, len(res), 3)
	test.ExpectSuccess(t, curated.Is(res[0].Err, batch.AssertionMismatch))
	test.ExpectSuccess(t, curated.Is(res[1].Err, batch.UnknownRegister))
	test.ExpectSuccess(t, res[2].Err)
}

func TestTimeout(t *testing.T) {
	f := newFixture(t, 0)
	r := f.runner(false, 200*time.Millisecond)

	test.ExpectEquality(t, r.Run(), batch.ExitError)
	test.ExpectEquality(t, f.stderr.String(), "Error: timeout after 200ms\n")
	test.ExpectEquality(t, f.stdout.String(), "")
}

func TestInterrupted(t *testing.T) {
	f := newFixture(t, 0)
	r := f.runner(false, 10*time.Second)

	// an interrupt delivered before the run starts is not lost
	f.bridge.Interrupt()

	start := time.Now()
	test.ExpectEquality(t, r.Run(), batch.ExitError)
	test.ExpectSuccess(t, time.Since(start) < 5*time.Second)
	test.ExpectEquality(t, f.stderr.String(), "Error: interrupted\n")
	test.ExpectEquality(t, r.State(), batch.Done)
}

func TestDebuggerUnavailable(t *testing.T) {
	core := sim.NewCore(logger.NewLogger(100), true)
	stderr := &test.CompareWriter{}
	r := batch.NewRunner(core, notifications.NewBridge(), logger.NewLogger(100), batch.Config{
		Timeout: time.Second,
		Stdout:  &test.CompareWriter{},
		Stderr:  stderr,
	})
	test.ExpectEquality(t, r.Run(), batch.ExitError)
	test.ExpectEquality(t, stderr.String(), "Error: debugger not initialized\n")
}

func TestMemoryAssertions(t *testing.T) {
	f := newFixture(t, 0x8010)

	dbg, err := f.core.Debugger()
	test.DemandSuccess(t, err)
	dbg.WriteMemory(console.NesMemory, 0x0010, 0x34)
	dbg.WriteMemory(console.NesMemory, 0x0011, 0x12)

	r := f.runner(false, 2*time.Second)
	a, err := batch.ParseMemoryAssertion("$10=$1234", 2)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, r.AddAssertion(a))
	a, err = batch.ParseMemoryAssertion("0x10=34", 1)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, r.AddAssertion(a))
	a, err = batch.ParseMemoryAssertion("00:0011=$ff", 1)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, r.AddAssertion(a))

	test.ExpectEquality(t, r.Run(), batch.ExitFail)
	test.ExpectSuccess(t, strings.HasSuffix(f.stdout.String(),
		"PASS: [$000010] = $1234\nPASS: [$000010] = $0034\n"))
	test.ExpectEquality(t, f.stderr.String(), "FAIL: [$000011] = $0012 (expected $00FF)\n")
}

func TestDumps(t *testing.T) {
	f := newFixture(t, 0x8100)

	dbg, err := f.core.Debugger()
	test.DemandSuccess(t, err)
	dbg.WriteMemory(console.NesInternalRam, 0x0001, 0xaa)

	dir := t.TempDir()
	ram := filepath.Join(dir, "ram.bin")
	sram := filepath.Join(dir, "sram.bin")
	bad := filepath.Join(dir, "missing", "pal.bin")

	r := f.runner(false, 2*time.Second)
	test.DemandSuccess(t, r.AddDump(batch.NewDumpRequest("ram", ram)))
	test.DemandSuccess(t, r.AddDump(batch.NewDumpRequest("sram", sram)))
	test.DemandSuccess(t, r.AddDump(batch.NewDumpRequest("pal", bad)))

	err = r.AddDump(batch.NewDumpRequest("vram", ram))
	test.ExpectSuccess(t, curated.Is(err, console.UnknownMemoryAlias))
	test.ExpectSuccess(t, strings.Contains(err.Error(), "ram rom sram wram chr chrrom oam pal nt"))

	test.ExpectEquality(t, r.Run(), batch.ExitPass)
	test.ExpectEquality(t, f.stderr.String(),
		"Dumped 2048 bytes to "+ram+"\n"+
			"Warning: memory type not available for dump to "+sram+"\n"+
			"Error: could not open "+bad+" for writing\n")

	b, err := os.ReadFile(ram)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(b), 0x800)
	test.ExpectEquality(t, b[1], uint8(0xaa))

	_, err = os.Stat(sram)
	test.ExpectFailure(t, err)
}

func TestParseAssertions(t *testing.T) {
	a, err := batch.ParseRegisterAssertion("a=01:1234")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, a.Expected, uint16(0x1234))
	test.ExpectEquality(t, a.Label(), "a")

	_, err = batch.ParseRegisterAssertion("A")
	test.ExpectSuccess(t, curated.Is(err, batch.MalformedAssertion))
	_, err = batch.ParseRegisterAssertion("=12")
	test.ExpectFailure(t, err)
	_, err = batch.ParseRegisterAssertion("A=zz")
	test.ExpectFailure(t, err)

	a, err = batch.ParseMemoryAssertion("7e:0010=ff", 1)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, a.Address, uint32(0x7e0010))
	test.ExpectEquality(t, a.Label(), "[$7E0010]")

	_, err = batch.ParseMemoryAssertion("10", 1)
	test.ExpectFailure(t, err)
	_, err = batch.ParseMemoryAssertion("10=1", 4)
	test.ExpectFailure(t, err)
}

func TestRegisterValue(t *testing.T) {
	nes := emulation.NesCPUState{A: 0x12}
	for _, n := range []string{"a", "A"} {
		v, err := batch.RegisterValue(nes, n)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, uint16(0x12))
	}

	gba := emulation.GbaCPUState{}
	gba.R[3] = 0x12345678
	gba.R[15] = 0x08000100
	v, err := batch.RegisterValue(gba, "r3")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint16(0x5678))
	v, err = batch.RegisterValue(gba, "PC")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint16(0x0100))
	_, err = batch.RegisterValue(gba, "r16")
	test.ExpectFailure(t, err)
	_, err = batch.RegisterValue(gba, "rx")
	test.ExpectFailure(t, err)

	sms := emulation.SmsCPUState{IXH: 0xab, IXL: 0xcd}
	v, err = batch.RegisterValue(sms, "ix")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint16(0xabcd))

	snes := emulation.SnesCPUState{CPU: console.CPUSa1, K: 0xc0}
	v, err = batch.RegisterValue(snes, "k")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint16(0xc0))

	ws := emulation.WsCPUState{CS: 0xffff}
	v, err = batch.RegisterValue(ws, "Cs")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint16(0xffff))

	_, err = batch.RegisterValue(nil, "A")
	test.ExpectSuccess(t, curated.Is(err, batch.UnknownRegister))
}
