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

package emulation

import "github.com/jetsetilly/emucli/console"

// CPUState is a snapshot of an architecture's registers. The concrete type
// depends on the architecture.
type CPUState interface {
	Arch() console.Arch
}

// 6502 status register bits. Used by the NES.
const (
	NesFlagCarry     = 0x01
	NesFlagZero      = 0x02
	NesFlagInterrupt = 0x04
	NesFlagDecimal   = 0x08
	NesFlagBreak     = 0x10
	NesFlagReserved  = 0x20
	NesFlagOverflow  = 0x40
	NesFlagNegative  = 0x80
)

// NesCPUState is the state of the NES 6502.
type NesCPUState struct {
	PC         uint16
	A          uint8
	X          uint8
	Y          uint8
	SP         uint8
	PS         uint8
	CycleCount uint64
}

func (NesCPUState) Arch() console.Arch { return console.CPUNes }

// 65816 status register bits. Used by the SNES and the SA-1.
const (
	SnesFlagCarry       = 0x01
	SnesFlagZero        = 0x02
	SnesFlagIrqDisable  = 0x04
	SnesFlagDecimal     = 0x08
	SnesFlagIndexMode8  = 0x10
	SnesFlagMemoryMode8 = 0x20
	SnesFlagOverflow    = 0x40
	SnesFlagNegative    = 0x80
)

// SnesCPUState is the state of the SNES 65816. It is also used for the SA-1.
type SnesCPUState struct {
	// the architecture is one of CPUSnes or CPUSa1
	CPU console.Arch

	K             uint8
	PC            uint16
	A             uint16
	X             uint16
	Y             uint16
	SP            uint16
	D             uint16
	DBR           uint8
	PS            uint8
	EmulationMode bool
	StopState     uint8
	CycleCount    uint64
}

func (s SnesCPUState) Arch() console.Arch { return s.CPU }

// LR35902 flag register bits.
const (
	GbFlagCarry     = 0x10
	GbFlagHalfCarry = 0x20
	GbFlagAddSub    = 0x40
	GbFlagZero      = 0x80
)

// GbCPUState is the state of the Game Boy LR35902.
type GbCPUState struct {
	PC         uint16
	SP         uint16
	A          uint8
	Flags      uint8
	B          uint8
	C          uint8
	D          uint8
	E          uint8
	H          uint8
	L          uint8
	CycleCount uint64
}

func (GbCPUState) Arch() console.Arch { return console.CPUGameboy }

// GbaCPUMode is the operating mode of the ARM7.
type GbaCPUMode uint8

// List of ARM7 modes.
const (
	GbaModeUser       GbaCPUMode = 0x10
	GbaModeFiq        GbaCPUMode = 0x11
	GbaModeIrq        GbaCPUMode = 0x12
	GbaModeSupervisor GbaCPUMode = 0x13
	GbaModeAbort      GbaCPUMode = 0x17
	GbaModeUndefined  GbaCPUMode = 0x1b
	GbaModeSystem     GbaCPUMode = 0x1f
)

func (m GbaCPUMode) String() string {
	switch m {
	case GbaModeUser:
		return "USR"
	case GbaModeFiq:
		return "FIQ"
	case GbaModeIrq:
		return "IRQ"
	case GbaModeSupervisor:
		return "SVC"
	case GbaModeAbort:
		return "ABT"
	case GbaModeUndefined:
		return "UND"
	case GbaModeSystem:
		return "SYS"
	}
	return "???"
}

// GbaCPUFlags is the ARM7 current program status register.
type GbaCPUFlags struct {
	Mode       GbaCPUMode
	Thumb      bool
	FiqDisable bool
	IrqDisable bool
	Overflow   bool
	Carry      bool
	Zero       bool
	Negative   bool
}

// Value returns the register packed into 32 bits.
func (f GbaCPUFlags) Value() uint32 {
	v := uint32(f.Mode)
	if f.Thumb {
		v |= 1 << 5
	}
	if f.FiqDisable {
		v |= 1 << 6
	}
	if f.IrqDisable {
		v |= 1 << 7
	}
	if f.Overflow {
		v |= 1 << 28
	}
	if f.Carry {
		v |= 1 << 29
	}
	if f.Zero {
		v |= 1 << 30
	}
	if f.Negative {
		v |= 1 << 31
	}
	return v
}

// GbaCPUState is the state of the Game Boy Advance ARM7. R[13] is the stack
// pointer, R[14] the link register and R[15] the program counter.
type GbaCPUState struct {
	R          [16]uint32
	CPSR       GbaCPUFlags
	CycleCount uint64
}

func (GbaCPUState) Arch() console.Arch { return console.CPUGba }

// HuC6280 status register bits.
const (
	PceFlagCarry     = 0x01
	PceFlagZero      = 0x02
	PceFlagInterrupt = 0x04
	PceFlagDecimal   = 0x08
	PceFlagBreak     = 0x10
	PceFlagMemory    = 0x20
	PceFlagOverflow  = 0x40
	PceFlagNegative  = 0x80
)

// PceCPUState is the state of the PC Engine HuC6280.
type PceCPUState struct {
	PC         uint16
	A          uint8
	X          uint8
	Y          uint8
	SP         uint8
	PS         uint8
	CycleCount uint64
}

func (PceCPUState) Arch() console.Arch { return console.CPUPce }

// Z80 flag register bits.
const (
	SmsFlagCarry     = 0x01
	SmsFlagAddSub    = 0x02
	SmsFlagParity    = 0x04
	SmsFlagF3        = 0x08
	SmsFlagHalfCarry = 0x10
	SmsFlagF5        = 0x20
	SmsFlagZero      = 0x40
	SmsFlagSign      = 0x80
)

// SmsCPUState is the state of the Master System Z80.
type SmsCPUState struct {
	PC         uint16
	SP         uint16
	A          uint8
	Flags      uint8
	B          uint8
	C          uint8
	D          uint8
	E          uint8
	H          uint8
	L          uint8
	IXH        uint8
	IXL        uint8
	IYH        uint8
	IYL        uint8
	I          uint8
	R          uint8
	CycleCount uint64
}

func (SmsCPUState) Arch() console.Arch { return console.CPUSms }

// IX returns the IX register pair.
func (s SmsCPUState) IX() uint16 {
	return uint16(s.IXH)<<8 | uint16(s.IXL)
}

// IY returns the IY register pair.
func (s SmsCPUState) IY() uint16 {
	return uint16(s.IYH)<<8 | uint16(s.IYL)
}

// WsCPUFlags is the V30MZ flags register.
type WsCPUFlags struct {
	Carry     bool
	Parity    bool
	AuxCarry  bool
	Zero      bool
	Sign      bool
	Trap      bool
	Irq       bool
	Direction bool
	Overflow  bool
	Mode      bool
}

// Value returns the register packed into 16 bits. Bit 1 and bits 12 to 14
// always read as set.
func (f WsCPUFlags) Value() uint16 {
	v := uint16(0x7002)
	bits := []struct {
		set bool
		bit uint
	}{
		{f.Carry, 0}, {f.Parity, 2}, {f.AuxCarry, 4}, {f.Zero, 6}, {f.Sign, 7},
		{f.Trap, 8}, {f.Irq, 9}, {f.Direction, 10}, {f.Overflow, 11}, {f.Mode, 15},
	}
	for _, b := range bits {
		if b.set {
			v |= 1 << b.bit
		}
	}
	return v
}

// WsCPUState is the state of the WonderSwan V30MZ.
type WsCPUState struct {
	CS         uint16
	IP         uint16
	AX         uint16
	BX         uint16
	CX         uint16
	DX         uint16
	SP         uint16
	BP         uint16
	SI         uint16
	DI         uint16
	DS         uint16
	ES         uint16
	SS         uint16
	Flags      WsCPUFlags
	CycleCount uint64
}

func (WsCPUState) Arch() console.Arch { return console.CPUWs }
