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

package sim

import (
	"github.com/jetsetilly/emucli/console"
	"github.com/jetsetilly/emucli/emulation"
)

// a window of the CPU's address space mapped to a memory region.
type window struct {
	region console.MemoryType
	base   uint32
	size   uint32
}

func (w window) contains(address uint32) bool {
	return address >= w.base && address-w.base < w.size
}

// layout of the simulated machine for a console.
type layout struct {
	// additional architectures. the primary architecture is taken from the
	// console descriptor
	coprocessors []console.Arch

	// size of the primary CPU's address space
	space uint32

	// where the ROM is mapped. the size of the window is the maximum number
	// of ROM bytes that can be seen by the CPU
	rom window

	ram []window

	// size of every region other than the ROM. zero for regions that are
	// not fitted
	sizes map[console.MemoryType]int

	// CPU state at power on
	reset func() emulation.CPUState
}

var layouts = map[console.Kind]layout{
	console.NES: {
		space: 0x10000,
		rom:   window{region: console.NesPrgRom, base: 0x8000, size: 0x8000},
		ram: []window{
			{region: console.NesInternalRam, base: 0x0000, size: 0x0800},
			{region: console.NesWorkRam, base: 0x6000, size: 0x2000},
		},
		sizes: map[console.MemoryType]int{
			console.NesInternalRam:  0x0800,
			console.NesSaveRam:      0,
			console.NesWorkRam:      0x2000,
			console.NesChrRam:       0x2000,
			console.NesChrRom:       0,
			console.NesSpriteRam:    0x0100,
			console.NesPaletteRam:   0x0020,
			console.NesNametableRam: 0x0800,
		},
		reset: func() emulation.CPUState {
			return emulation.NesCPUState{
				PC: 0x8000,
				SP: 0xfd,
				PS: emulation.NesFlagReserved | emulation.NesFlagInterrupt,
			}
		},
	},
	console.SNES: {
		coprocessors: []console.Arch{console.CPUSpc},
		space:        0x1000000,
		rom:          window{region: console.SnesPrgRom, base: 0x008000, size: 0x8000},
		ram: []window{
			{region: console.SnesWorkRam, base: 0x7e0000, size: 0x20000},
		},
		sizes: map[console.MemoryType]int{
			console.SnesWorkRam:   0x20000,
			console.SnesVideoRam:  0x10000,
			console.SnesCgRam:     0x0200,
			console.SnesSpriteRam: 0x0220,
			console.SnesSaveRam:   0,
		},
		reset: func() emulation.CPUState {
			return emulation.SnesCPUState{
				CPU:           console.CPUSnes,
				PC:            0x8000,
				SP:            0x01ff,
				PS:            emulation.SnesFlagMemoryMode8 | emulation.SnesFlagIndexMode8 | emulation.SnesFlagIrqDisable,
				EmulationMode: true,
			}
		},
	},
	console.GameBoy: {
		space: 0x10000,
		rom:   window{region: console.GbPrgRom, base: 0x0000, size: 0x8000},
		ram: []window{
			{region: console.GbVideoRam, base: 0x8000, size: 0x2000},
			{region: console.GbWorkRam, base: 0xc000, size: 0x2000},
			{region: console.GbSpriteRam, base: 0xfe00, size: 0x00a0},
			{region: console.GbHighRam, base: 0xff80, size: 0x007f},
		},
		sizes: map[console.MemoryType]int{
			console.GbWorkRam:   0x2000,
			console.GbVideoRam:  0x2000,
			console.GbCartRam:   0,
			console.GbHighRam:   0x007f,
			console.GbSpriteRam: 0x00a0,
		},
		reset: func() emulation.CPUState {
			return emulation.GbCPUState{
				PC:    0x0100,
				SP:    0xfffe,
				A:     0x01,
				Flags: emulation.GbFlagZero | emulation.GbFlagHalfCarry | emulation.GbFlagCarry,
				C:     0x13,
				E:     0xd8,
				H:     0x01,
				L:     0x4d,
			}
		},
	},
	console.GameBoyAdvance: {
		space: 0x10000000,
		rom:   window{region: console.GbaPrgRom, base: 0x08000000, size: 0x02000000},
		ram: []window{
			{region: console.GbaExtWorkRam, base: 0x02000000, size: 0x40000},
			{region: console.GbaIntWorkRam, base: 0x03000000, size: 0x8000},
			{region: console.GbaPaletteRam, base: 0x05000000, size: 0x0400},
			{region: console.GbaVideoRam, base: 0x06000000, size: 0x18000},
			{region: console.GbaSpriteRam, base: 0x07000000, size: 0x0400},
		},
		sizes: map[console.MemoryType]int{
			console.GbaIntWorkRam: 0x8000,
			console.GbaExtWorkRam: 0x40000,
			console.GbaVideoRam:   0x18000,
			console.GbaSpriteRam:  0x0400,
			console.GbaPaletteRam: 0x0400,
			console.GbaSaveRam:    0,
		},
		reset: func() emulation.CPUState {
			s := emulation.GbaCPUState{}
			s.R[13] = 0x03007f00
			s.R[15] = 0x08000000
			s.CPSR.Mode = emulation.GbaModeSystem
			return s
		},
	},
	console.PCEngine: {
		space: 0x10000,
		rom:   window{region: console.PcePrgRom, base: 0xe000, size: 0x2000},
		ram: []window{
			{region: console.PceWorkRam, base: 0x2000, size: 0x2000},
		},
		sizes: map[console.MemoryType]int{
			console.PceWorkRam:    0x2000,
			console.PceVideoRam:   0x10000,
			console.PcePaletteRam: 0x0400,
			console.PceSpriteRam:  0x0200,
			console.PceSaveRam:    0x0800,
			console.PceCdromRam:   0,
			console.PceAdpcmRam:   0,
		},
		reset: func() emulation.CPUState {
			return emulation.PceCPUState{
				PC: 0xe000,
				SP: 0xff,
				PS: emulation.PceFlagInterrupt,
			}
		},
	},
	console.MasterSystem: {
		space: 0x10000,
		rom:   window{region: console.SmsPrgRom, base: 0x0000, size: 0xc000},
		ram: []window{
			{region: console.SmsWorkRam, base: 0xc000, size: 0x2000},
		},
		sizes: map[console.MemoryType]int{
			console.SmsWorkRam:    0x2000,
			console.SmsVideoRam:   0x4000,
			console.SmsPaletteRam: 0x0020,
			console.SmsCartRam:    0,
		},
		reset: func() emulation.CPUState {
			return emulation.SmsCPUState{
				SP: 0xdff0,
			}
		},
	},
	console.WonderSwan: {
		space: 0x100000,
		rom:   window{region: console.WsPrgRom, base: 0xf0000, size: 0x10000},
		ram: []window{
			{region: console.WsWorkRam, base: 0x00000, size: 0x4000},
		},
		sizes: map[console.MemoryType]int{
			console.WsWorkRam:        0x4000,
			console.WsCartRam:        0,
			console.WsBootRom:        0,
			console.WsInternalEeprom: 0x0080,
		},
		reset: func() emulation.CPUState {
			return emulation.WsCPUState{
				CS:    0xffff,
				SP:    0x2000,
				Flags: emulation.WsCPUFlags{Irq: true},
			}
		},
	},
}

// programCounter returns the address of the next instruction.
func programCounter(state emulation.CPUState) uint32 {
	switch s := state.(type) {
	case emulation.NesCPUState:
		return uint32(s.PC)
	case emulation.SnesCPUState:
		return uint32(s.K)<<16 | uint32(s.PC)
	case emulation.GbCPUState:
		return uint32(s.PC)
	case emulation.GbaCPUState:
		return s.R[15]
	case emulation.PceCPUState:
		return uint32(s.PC)
	case emulation.SmsCPUState:
		return uint32(s.PC)
	case emulation.WsCPUState:
		return (uint32(s.CS)<<4 + uint32(s.IP)) & 0xfffff
	}
	return 0
}

// advance returns the state after the execution of a one byte no-op.
func advance(state emulation.CPUState) emulation.CPUState {
	const cycles = 2

	switch s := state.(type) {
	case emulation.NesCPUState:
		s.PC++
		s.CycleCount += cycles
		return s
	case emulation.SnesCPUState:
		// the program counter wraps within the bank
		s.PC++
		s.CycleCount += cycles
		return s
	case emulation.GbCPUState:
		s.PC++
		s.CycleCount += cycles
		return s
	case emulation.GbaCPUState:
		s.R[15]++
		s.CycleCount += cycles
		return s
	case emulation.PceCPUState:
		s.PC++
		s.CycleCount += cycles
		return s
	case emulation.SmsCPUState:
		s.PC++
		s.R = (s.R & 0x80) | ((s.R + 1) & 0x7f)
		s.CycleCount += cycles
		return s
	case emulation.WsCPUState:
		s.IP++
		s.CycleCount += cycles
		return s
	}
	return state
}
