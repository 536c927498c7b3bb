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

package console

// MemoryType identifies a memory space or a memory region in the emulation.
type MemoryType string

// MemoryNone is used when no memory type applies.
const MemoryNone MemoryType = ""

// CPU memory spaces. These are the address spaces as seen by each CPU.
const (
	SnesMemory    MemoryType = "SnesMemory"
	SpcMemory     MemoryType = "SpcMemory"
	NecDspMemory  MemoryType = "NecDspMemory"
	Sa1Memory     MemoryType = "Sa1Memory"
	GsuMemory     MemoryType = "GsuMemory"
	Cx4Memory     MemoryType = "Cx4Memory"
	St018Memory   MemoryType = "St018Memory"
	GameboyMemory MemoryType = "GameboyMemory"
	NesMemory     MemoryType = "NesMemory"
	PceMemory     MemoryType = "PceMemory"
	SmsMemory     MemoryType = "SmsMemory"
	GbaMemory     MemoryType = "GbaMemory"
	WsMemory      MemoryType = "WsMemory"
)

// NES memory regions.
const (
	NesInternalRam  MemoryType = "NesInternalRam"
	NesPrgRom       MemoryType = "NesPrgRom"
	NesSaveRam      MemoryType = "NesSaveRam"
	NesWorkRam      MemoryType = "NesWorkRam"
	NesChrRam       MemoryType = "NesChrRam"
	NesChrRom       MemoryType = "NesChrRom"
	NesSpriteRam    MemoryType = "NesSpriteRam"
	NesPaletteRam   MemoryType = "NesPaletteRam"
	NesNametableRam MemoryType = "NesNametableRam"
)

// SNES memory regions.
const (
	SnesWorkRam   MemoryType = "SnesWorkRam"
	SnesVideoRam  MemoryType = "SnesVideoRam"
	SnesCgRam     MemoryType = "SnesCgRam"
	SnesSpriteRam MemoryType = "SnesSpriteRam"
	SnesPrgRom    MemoryType = "SnesPrgRom"
	SnesSaveRam   MemoryType = "SnesSaveRam"
)

// Game Boy memory regions.
const (
	GbWorkRam   MemoryType = "GbWorkRam"
	GbVideoRam  MemoryType = "GbVideoRam"
	GbCartRam   MemoryType = "GbCartRam"
	GbHighRam   MemoryType = "GbHighRam"
	GbSpriteRam MemoryType = "GbSpriteRam"
	GbPrgRom    MemoryType = "GbPrgRom"
)

// Game Boy Advance memory regions.
const (
	GbaIntWorkRam MemoryType = "GbaIntWorkRam"
	GbaExtWorkRam MemoryType = "GbaExtWorkRam"
	GbaVideoRam   MemoryType = "GbaVideoRam"
	GbaSpriteRam  MemoryType = "GbaSpriteRam"
	GbaPaletteRam MemoryType = "GbaPaletteRam"
	GbaPrgRom     MemoryType = "GbaPrgRom"
	GbaSaveRam    MemoryType = "GbaSaveRam"
)

// PC Engine memory regions.
const (
	PceWorkRam    MemoryType = "PceWorkRam"
	PceVideoRam   MemoryType = "PceVideoRam"
	PcePaletteRam MemoryType = "PcePaletteRam"
	PceSpriteRam  MemoryType = "PceSpriteRam"
	PcePrgRom     MemoryType = "PcePrgRom"
	PceSaveRam    MemoryType = "PceSaveRam"
	PceCdromRam   MemoryType = "PceCdromRam"
	PceAdpcmRam   MemoryType = "PceAdpcmRam"
)

// Master System memory regions.
const (
	SmsWorkRam    MemoryType = "SmsWorkRam"
	SmsVideoRam   MemoryType = "SmsVideoRam"
	SmsPaletteRam MemoryType = "SmsPaletteRam"
	SmsPrgRom     MemoryType = "SmsPrgRom"
	SmsCartRam    MemoryType = "SmsCartRam"
)

// WonderSwan memory regions.
const (
	WsWorkRam        MemoryType = "WsWorkRam"
	WsPrgRom         MemoryType = "WsPrgRom"
	WsCartRam        MemoryType = "WsCartRam"
	WsBootRom        MemoryType = "WsBootRom"
	WsInternalEeprom MemoryType = "WsInternalEeprom"
)

// MemoryRegion is a named region of memory that can be addressed by a short
// alias.
type MemoryRegion struct {
	Type MemoryType

	// display name. for example, "Internal RAM"
	Name string

	// short alias used on the command line. for example, "ram"
	Alias string
}
