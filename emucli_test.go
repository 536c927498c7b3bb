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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/emucli/test"
)

// writeROM creates an empty NES ROM in a temporary directory.
func writeROM(t *testing.T) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "test.nes")
	test.DemandSuccess(t, os.WriteFile(fn, make([]byte, 0x8000), 0o644))
	return fn
}

func run(args ...string) (int, *test.CompareWriter, *test.CompareWriter) {
	return runWithInput("", args...)
}

func runWithInput(input string, args ...string) (int, *test.CompareWriter, *test.CompareWriter) {
	stdout := &test.CompareWriter{}
	stderr := &test.CompareWriter{}
	v := launch(append([]string{"emucli"}, args...), strings.NewReader(input), stdout, stderr)
	return v, stdout, stderr
}

func firstLine(s string) string {
	l, _, _ := strings.Cut(s, "\n")
	return l
}

func TestHelp(t *testing.T) {
	v, stdout, stderr := run("--help")
	test.ExpectEquality(t, v, exitOK)
	test.ExpectEquality(t, firstLine(stdout.String()), "Usage: emucli [options] <rom_path>")
	test.ExpectSuccess(t, strings.Contains(stdout.String(), "Address formats: $1234, 0x1234, 1234, 00:8000"))
	test.ExpectEquality(t, stderr.String(), "")

	v, stdout, _ = run("-h")
	test.ExpectEquality(t, v, exitOK)
	test.ExpectSuccess(t, strings.Contains(stdout.String(), "-check-mem16"))
}

func TestDAP(t *testing.T) {
	v, stdout, stderr := run("--dap")
	test.ExpectEquality(t, v, exitOK)
	test.ExpectEquality(t, stdout.String(), "")
	test.ExpectEquality(t, stderr.String(), "[DAP] DAP mode not yet implemented.\n")
}

func TestUsageErrors(t *testing.T) {
	v, _, stderr := run()
	test.ExpectEquality(t, v, exitUsage)
	test.ExpectEquality(t, firstLine(stderr.String()), "Error: ROM path is required.")
	test.ExpectSuccess(t, strings.Contains(stderr.String(), "Usage: emucli [options] <rom_path>"))

	v, _, stderr = run("--foo", "game.nes")
	test.ExpectEquality(t, v, exitUsage)
	test.ExpectEquality(t, firstLine(stderr.String()), "Unknown option: -foo")

	v, _, stderr = run("a.nes", "b.nes")
	test.ExpectEquality(t, v, exitUsage)
	test.ExpectEquality(t, firstLine(stderr.String()), "Multiple ROM paths specified")

	v, _, stderr = run("--check-reg", "A12", "game.nes")
	test.ExpectEquality(t, v, exitUsage)
	test.ExpectEquality(t, stderr.String(), "Invalid --check-reg format: A12 (expected REG=VALUE)\n")

	v, _, stderr = run("game.nes", "--check-mem16", "$10")
	test.ExpectEquality(t, v, exitUsage)
	test.ExpectEquality(t, stderr.String(), "Invalid --check-mem16 format: $10 (expected ADDR=VALUE)\n")

	v, _, stderr = run("--dump", "ram")
	test.ExpectEquality(t, v, exitUsage)
	test.ExpectEquality(t, firstLine(stderr.String()), "Error: flag needs two arguments: -dump")

	v, _, stderr = run("--term", "fancy", "game.nes")
	test.ExpectEquality(t, v, exitUsage)
	test.ExpectEquality(t, firstLine(stderr.String()), "Unknown terminal type: fancy (expected plain or color)")
}

func TestLoadFailure(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.xyz")
	test.DemandSuccess(t, os.WriteFile(fn, make([]byte, 16), 0o644))

	v, _, stderr := run("--batch", "--headless", fn)
	test.ExpectEquality(t, v, exitUsage)
	test.ExpectEquality(t, stderr.String(), "Failed to load ROM: "+fn+"\n")
}

func TestBatch(t *testing.T) {
	rom := writeROM(t)

	v, stdout, stderr := run("--batch", "--headless", "--break", "$8100", "--check-reg", "a=$00", "--timeout", "2000", rom)
	test.ExpectEquality(t, v, 0)
	test.ExpectEquality(t, firstLine(stdout.String()), "PC=$8100  A=$00  X=$00  Y=$00  SP=$FD")
	test.ExpectSuccess(t, strings.HasSuffix(stdout.String(), "PASS: a = $0000\n"))
	test.ExpectEquality(t, stderr.String(), "")

	// flags after the positional argument
	v, stdout, _ = run(rom, "--batch", "--headless", "--json", "--break", "$8100", "--check-reg", "A=$00", "--timeout", "2000")
	test.ExpectEquality(t, v, 0)
	test.ExpectSuccess(t, strings.Contains(stdout.String(), `"a":"00"`))

	v, _, stderr = run("--batch", "--headless", "--break", "$8100", "--check-reg", "A=$12", "--check-mem", "$0000=$00", rom)
	test.ExpectEquality(t, v, 1)
	test.ExpectEquality(t, stderr.String(), "FAIL: A = $0000 (expected $0012)\n")

	v, _, stderr = run("--batch", "--headless", "--timeout", "200", rom)
	test.ExpectEquality(t, v, 2)
	test.ExpectEquality(t, stderr.String(), "Error: timeout after 200ms\n")
}

func TestBatchDumps(t *testing.T) {
	rom := writeROM(t)
	dir := t.TempDir()
	ram := filepath.Join(dir, "ram.bin")
	vram := filepath.Join(dir, "vram.bin")

	v, _, stderr := run("--batch", "--headless", "--break", "$8010",
		"--dump", "vram", vram, "--dump", "ram", ram, rom)
	test.ExpectEquality(t, v, 0)

	lines := strings.Split(strings.TrimSpace(stderr.String()), "\n")
	test.DemandEquality(t, len(lines), 2)
	test.ExpectEquality(t, lines[0], "Unknown dump type 'vram' for Nintendo Entertainment System. Valid types: ram rom sram wram chr chrrom oam pal nt")
	test.ExpectEquality(t, lines[1], "Dumped 2048 bytes to "+ram)

	d, err := os.ReadFile(ram)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(d), 2048)

	_, err = os.Stat(vram)
	test.ExpectFailure(t, err)
}

func TestInteractive(t *testing.T) {
	rom := writeROM(t)

	v, stdout, _ := runWithInput("b $8100\nquit\n", "--headless", "--term", "plain", "--break", "$8010", rom)
	test.ExpectEquality(t, v, exitOK)
	test.ExpectEquality(t, firstLine(stdout.String()), "Emucli CLI Debugger [Nintendo Entertainment System / NES 6502]. Type 'help' for commands.")

	// the breakpoint seeded on the command line takes the first ID
	test.ExpectSuccess(t, strings.Contains(stdout.String(), "Breakpoint 2 at $008100"))

	// end of input ends the session in the same way as the quit command
	v, _, _ = runWithInput("", "--headless", "--term", "plain", rom)
	test.ExpectEquality(t, v, exitOK)
}
