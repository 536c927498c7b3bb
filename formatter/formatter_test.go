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

package formatter_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/emucli/console"
	"github.com/jetsetilly/emucli/emulation"
	"github.com/jetsetilly/emucli/formatter"
	"github.com/jetsetilly/emucli/test"
)

func TestNes(t *testing.T) {
	s := emulation.NesCPUState{PC: 0x8100, A: 0x00, X: 0x01, Y: 0x02, SP: 0xfd, PS: 0x24, CycleCount: 7}

	test.ExpectEquality(t, formatter.RegistersText(s),
		"PC=$8100  A=$00  X=$01  Y=$02  SP=$FD\nFlags: nv1bdIzc  Cycles: 7")
	test.ExpectEquality(t, formatter.RegistersJSON(s),
		`{"registers":{"pc":"8100","a":"00","x":"01","y":"02","sp":"fd","ps":"24",`+
			`"flags":{"n":false,"v":false,"d":false,"i":true,"z":false,"c":false}},"cycles":7}`)

	s.PS = emulation.NesFlagNegative | emulation.NesFlagReserved | emulation.NesFlagDecimal | emulation.NesFlagZero
	test.ExpectEquality(t, formatter.RegistersText(s),
		"PC=$8100  A=$00  X=$01  Y=$02  SP=$FD\nFlags: Nv1bDiZc  Cycles: 7")

	s.PS = 0
	test.ExpectEquality(t, formatter.Registers(s, formatter.Text),
		"PC=$8100  A=$00  X=$01  Y=$02  SP=$FD\nFlags: nv0bdizc  Cycles: 7")
}

func TestSnes(t *testing.T) {
	s := emulation.SnesCPUState{CPU: console.CPUSnes, K: 0x00, PC: 0x8000, A: 0x1234, SP: 0x01ff, PS: 0x34}

	test.ExpectEquality(t, formatter.RegistersText(s),
		"PC=$00:8000  A=$1234  X=$0000  Y=$0000  SP=$01FF  D=$0000  DBR=$00\nFlags: nvMXdIzc  [m8 x8]  Cycles: 0")
	test.ExpectEquality(t, formatter.RegistersJSON(s),
		`{"registers":{"pc":"008000","a":"1234","x":"0000","y":"0000","sp":"01ff","d":"0000","dbr":"00","ps":"34",`+
			`"flags":{"n":false,"v":false,"m":true,"x":true,"d":false,"i":true,"z":false,"c":false}},"cycles":0,"stop_state":0}`)

	// the SA-1 uses the same renderers
	s.CPU = console.CPUSa1
	s.K = 0xc0
	s.PS = 0
	s.StopState = 2
	test.ExpectEquality(t, formatter.RegistersText(s),
		"PC=$C0:8000  A=$1234  X=$0000  Y=$0000  SP=$01FF  D=$0000  DBR=$00\nFlags: nvmxdizc  [m16 x16]  Cycles: 0")
	test.ExpectEquality(t, formatter.RegistersJSON(s),
		`{"registers":{"pc":"c08000","a":"1234","x":"0000","y":"0000","sp":"01ff","d":"0000","dbr":"00","ps":"00",`+
			`"flags":{"n":false,"v":false,"m":false,"x":false,"d":false,"i":false,"z":false,"c":false}},"cycles":0,"stop_state":2}`)
}

func TestGameboy(t *testing.T) {
	s := emulation.GbCPUState{PC: 0x0100, SP: 0xfffe, A: 0x01, Flags: 0xb0, B: 0x00, C: 0x13, D: 0x00, E: 0xd8, H: 0x01, L: 0x4d, CycleCount: 12}

	test.ExpectEquality(t, formatter.RegistersText(s),
		"PC=$0100  SP=$FFFE  A=$01  F=$B0  B=$00  C=$13  D=$00  E=$D8  H=$01  L=$4D\nFlags: ZnHC  Cycles: 12")
	test.ExpectEquality(t, formatter.RegistersJSON(s),
		`{"registers":{"pc":"0100","sp":"fffe","a":"01","f":"b0","b":"00","c":"13","d":"00","e":"d8","h":"01","l":"4d",`+
			`"flags":{"z":true,"n":false,"h":true,"c":true}},"cycles":12}`)
}

func TestGba(t *testing.T) {
	s := emulation.GbaCPUState{CycleCount: 10}
	s.R[13] = 0x03007f00
	s.R[15] = 0x08000000
	s.CPSR.Mode = emulation.GbaModeSystem

	test.ExpectEquality(t, formatter.RegistersText(s),
		"R0=$00000000  R1=$00000000  R2=$00000000  R3=$00000000  \n"+
			"R4=$00000000  R5=$00000000  R6=$00000000  R7=$00000000  \n"+
			"R8=$00000000  R9=$00000000  R10=$00000000  R11=$00000000  \n"+
			"R12=$00000000  SP=$03007F00  LR=$00000000  PC=$08000000  \n"+
			"CPSR=$0000001F  [nzcv ARM SYS]  Cycles: 10")

	test.ExpectEquality(t, formatter.RegistersJSON(s),
		`{"registers":{"r0":"00000000","r1":"00000000","r2":"00000000","r3":"00000000",`+
			`"r4":"00000000","r5":"00000000","r6":"00000000","r7":"00000000",`+
			`"r8":"00000000","r9":"00000000","r10":"00000000","r11":"00000000",`+
			`"r12":"00000000","r13":"03007f00","r14":"00000000","r15":"08000000",`+
			`"cpsr":"0000001f","flags":{"n":false,"z":false,"c":false,"v":false,"thumb":false,"mode":"SYS"}},"cycles":10}`)

	s.CPSR.Thumb = true
	s.CPSR.Zero = true
	s.CPSR.Mode = emulation.GbaModeIrq
	test.ExpectSuccess(t, strings.HasSuffix(formatter.RegistersText(s),
		"\nCPSR=$40000032  [nZcv THUMB IRQ]  Cycles: 10"))
}

func TestPce(t *testing.T) {
	s := emulation.PceCPUState{PC: 0xe000, A: 0xff, X: 0x00, Y: 0x00, SP: 0xff, PS: 0x34, CycleCount: 100}

	test.ExpectEquality(t, formatter.RegistersText(s),
		"PC=$E000  A=$FF  X=$00  Y=$00  SP=$FF\nFlags: nvTBdIzc  Cycles: 100")
	test.ExpectEquality(t, formatter.RegistersJSON(s),
		`{"registers":{"pc":"e000","a":"ff","x":"00","y":"00","sp":"ff","ps":"34",`+
			`"flags":{"n":false,"v":false,"t":true,"d":false,"i":true,"z":false,"c":false}},"cycles":100}`)
}

func TestSms(t *testing.T) {
	s := emulation.SmsCPUState{PC: 0x0000, SP: 0xdff0, Flags: 0x68, IXH: 0x12, IXL: 0x34, IYH: 0x56, IYL: 0x78, I: 0x00, R: 0x7f}

	test.ExpectEquality(t, formatter.RegistersText(s),
		"PC=$0000  SP=$DFF0  A=$00  F=$68  B=$00  C=$00  D=$00  E=$00  H=$00  L=$00\n"+
			"IX=$1234  IY=$5678  I=$00  R=$7F\n"+
			"Flags: sZ5h3pnc  Cycles: 0")
	test.ExpectEquality(t, formatter.RegistersJSON(s),
		`{"registers":{"pc":"0000","sp":"dff0","a":"00","f":"68","b":"00","c":"00","d":"00","e":"00","h":"00","l":"00",`+
			`"ix":"1234","iy":"5678","i":"00","r":"7f",`+
			`"flags":{"s":false,"z":true,"h":false,"p":false,"n":false,"c":false}},"cycles":0}`)

	s.Flags = emulation.SmsFlagSign | emulation.SmsFlagCarry
	test.ExpectSuccess(t, strings.HasSuffix(formatter.RegistersText(s),
		"\nFlags: Sz.h.pnC  Cycles: 0"))
}

func TestWs(t *testing.T) {
	s := emulation.WsCPUState{CS: 0xffff, IP: 0x0000, SP: 0x2000}
	s.Flags.Irq = true

	test.ExpectEquality(t, formatter.RegistersText(s),
		"CS:IP=$FFFF:0000  AX=$0000  BX=$0000  CX=$0000  DX=$0000\n"+
			"SP=$2000  BP=$0000  SI=$0000  DI=$0000  DS=$0000  ES=$0000  SS=$0000\n"+
			"Flags=$7202 [odItszapc]  Cycles: 0")
	test.ExpectEquality(t, formatter.RegistersJSON(s),
		`{"registers":{"cs":"ffff","ip":"0000","ax":"0000","bx":"0000","cx":"0000","dx":"0000",`+
			`"sp":"2000","bp":"0000","si":"0000","di":"0000","ds":"0000","es":"0000","ss":"0000",`+
			`"flags":"7202","flag_bits":{"o":false,"d":false,"i":true,"t":false,"s":false,"z":false,"a":false,"p":false,"c":false}},"cycles":0}`)
}

type unsupportedState struct{}

func (unsupportedState) Arch() console.Arch { return console.CPUSpc }

func TestUnsupported(t *testing.T) {
	test.ExpectEquality(t, formatter.RegistersText(unsupportedState{}),
		"[Register display not implemented for this CPU type]")
	test.ExpectEquality(t, formatter.RegistersJSON(unsupportedState{}),
		`{"error":"unsupported cpu type"}`)
	test.ExpectEquality(t, formatter.RegistersJSON(nil), `{"error":"unsupported cpu type"}`)
	test.ExpectFailure(t, formatter.Supported(console.CPUSpc))
	test.ExpectSuccess(t, formatter.Supported(console.CPUSa1))
}

func TestStability(t *testing.T) {
	s := emulation.NesCPUState{PC: 0xc000, A: 0x12, PS: 0xff, CycleCount: 123456789}
	test.ExpectEquality(t, formatter.RegistersText(s), formatter.RegistersText(s))
	test.ExpectEquality(t, formatter.RegistersJSON(s), formatter.RegistersJSON(s))
}

func TestMemoryHex(t *testing.T) {
	test.ExpectEquality(t, formatter.MemoryHex([]byte("Hello\x00"), 0x10),
		"000010: 48 65 6C 6C 6F 00  Hello.\n")

	data := make([]byte, 18)
	data[16] = 0x41
	test.ExpectEquality(t, formatter.MemoryHex(data, 0x7e0000),
		"7E0000: 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00  ................\n"+
			"7E0010: 41 00  A.\n")

	test.ExpectEquality(t, formatter.MemoryHex(nil, 0), "")
}

func TestDisassembly(t *testing.T) {
	lines := []emulation.DisassemblyLine{
		{Address: 0x8000, ByteCode: []byte{0xea}, Text: "NOP"},
		{Address: -1, Text: "skipped"},
		{Address: 0x8001, ByteCode: []byte{0xad, 0x00, 0x20}, Text: "LDA $2000", Comment: "PPUCTRL"},
		{Address: 0x8004, ByteCode: []byte{0x01, 0x02, 0x03, 0x04, 0x05}, Text: "???"},
	}
	test.ExpectEquality(t, formatter.Disassembly(lines),
		"008000: EA          NOP\n"+
			"008001: AD 00 20    LDA $2000  ; PPUCTRL\n"+
			"008004: 01 02 03 04 ???\n")
}

func TestCallstack(t *testing.T) {
	frames := []emulation.StackFrame{
		{Source: 0x8000, Target: 0x9000, Flags: emulation.StackFrameNmi},
		{Source: 0x9010, Target: 0xa000},
		{Source: 0xa010, Target: 0xb000, Flags: emulation.StackFrameIrq},
	}
	test.ExpectEquality(t, formatter.Callstack(frames),
		"#0  $008000 -> $009000 [NMI]\n"+
			"#1  $009010 -> $00A000\n"+
			"#2  $00A010 -> $00B000 [IRQ]\n")
	test.ExpectEquality(t, formatter.Callstack(nil), "")
}
