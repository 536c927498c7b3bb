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

import (
	"path/filepath"
	"strings"

	"github.com/jetsetilly/emucli/curated"
)

// Sentinal error returned by Descriptor.Region(). The arguments are the
// requested alias, the console name and a space separated list of valid
// aliases.
const (
	UnknownMemoryAlias = "unknown memory type '%s' for %s (valid types: %s)"
)

// Kind identifies a console family.
type Kind int

// List of supported consoles.
const (
	SNES Kind = iota
	GameBoy
	NES
	PCEngine
	MasterSystem
	GameBoyAdvance
	WonderSwan
)

func (k Kind) String() string {
	if d, ok := Lookup(k); ok {
		return d.Name
	}
	return "Unknown"
}

// Descriptor is the identity of a console family.
type Descriptor struct {
	Kind Kind

	// display name. for example, "Nintendo Entertainment System"
	Name string

	// the primary CPU architecture
	CPU Arch

	// memory regions in a fixed order
	Regions []MemoryRegion

	// filename extensions (lowercase, without the leading period)
	Extensions []string
}

var descriptors = []Descriptor{
	{
		Kind: SNES,
		Name: "Super Nintendo",
		CPU:  CPUSnes,
		Regions: []MemoryRegion{
			{Type: SnesWorkRam, Name: "Work RAM", Alias: "wram"},
			{Type: SnesVideoRam, Name: "Video RAM", Alias: "vram"},
			{Type: SnesCgRam, Name: "Palette RAM", Alias: "cgram"},
			{Type: SnesSpriteRam, Name: "Sprite RAM", Alias: "oam"},
			{Type: SnesPrgRom, Name: "PRG ROM", Alias: "rom"},
			{Type: SnesSaveRam, Name: "Save RAM", Alias: "sram"},
		},
		Extensions: []string{"sfc", "smc"},
	},
	{
		Kind: GameBoy,
		Name: "Game Boy",
		CPU:  CPUGameboy,
		Regions: []MemoryRegion{
			{Type: GbWorkRam, Name: "Work RAM", Alias: "wram"},
			{Type: GbVideoRam, Name: "Video RAM", Alias: "vram"},
			{Type: GbCartRam, Name: "Cart RAM", Alias: "cartram"},
			{Type: GbHighRam, Name: "High RAM", Alias: "hram"},
			{Type: GbSpriteRam, Name: "Sprite RAM", Alias: "oam"},
			{Type: GbPrgRom, Name: "PRG ROM", Alias: "rom"},
		},
		Extensions: []string{"gb", "gbc"},
	},
	{
		Kind: NES,
		Name: "Nintendo Entertainment System",
		CPU:  CPUNes,
		Regions: []MemoryRegion{
			{Type: NesInternalRam, Name: "Internal RAM", Alias: "ram"},
			{Type: NesPrgRom, Name: "PRG ROM", Alias: "rom"},
			{Type: NesSaveRam, Name: "Save RAM", Alias: "sram"},
			{Type: NesWorkRam, Name: "Work RAM", Alias: "wram"},
			{Type: NesChrRam, Name: "CHR RAM", Alias: "chr"},
			{Type: NesChrRom, Name: "CHR ROM", Alias: "chrrom"},
			{Type: NesSpriteRam, Name: "Sprite RAM", Alias: "oam"},
			{Type: NesPaletteRam, Name: "Palette RAM", Alias: "pal"},
			{Type: NesNametableRam, Name: "Nametable RAM", Alias: "nt"},
		},
		Extensions: []string{"nes"},
	},
	{
		Kind: PCEngine,
		Name: "PC Engine",
		CPU:  CPUPce,
		Regions: []MemoryRegion{
			{Type: PceWorkRam, Name: "Work RAM", Alias: "wram"},
			{Type: PceVideoRam, Name: "Video RAM", Alias: "vram"},
			{Type: PcePaletteRam, Name: "Palette RAM", Alias: "pal"},
			{Type: PceSpriteRam, Name: "Sprite RAM", Alias: "oam"},
			{Type: PcePrgRom, Name: "PRG ROM", Alias: "rom"},
			{Type: PceSaveRam, Name: "Save RAM", Alias: "sram"},
			{Type: PceCdromRam, Name: "CD-ROM RAM", Alias: "cdram"},
			{Type: PceAdpcmRam, Name: "ADPCM RAM", Alias: "adpcm"},
		},
		Extensions: []string{"pce"},
	},
	{
		Kind: MasterSystem,
		Name: "Sega Master System",
		CPU:  CPUSms,
		Regions: []MemoryRegion{
			{Type: SmsWorkRam, Name: "Work RAM", Alias: "wram"},
			{Type: SmsVideoRam, Name: "Video RAM", Alias: "vram"},
			{Type: SmsPaletteRam, Name: "Palette RAM", Alias: "pal"},
			{Type: SmsPrgRom, Name: "PRG ROM", Alias: "rom"},
			{Type: SmsCartRam, Name: "Cart RAM", Alias: "cartram"},
		},
		Extensions: []string{"sms", "gg"},
	},
	{
		Kind: GameBoyAdvance,
		Name: "Game Boy Advance",
		CPU:  CPUGba,
		Regions: []MemoryRegion{
			{Type: GbaIntWorkRam, Name: "Internal Work RAM", Alias: "iwram"},
			{Type: GbaExtWorkRam, Name: "External Work RAM", Alias: "ewram"},
			{Type: GbaVideoRam, Name: "Video RAM", Alias: "vram"},
			{Type: GbaSpriteRam, Name: "Sprite RAM", Alias: "oam"},
			{Type: GbaPaletteRam, Name: "Palette RAM", Alias: "pal"},
			{Type: GbaPrgRom, Name: "PRG ROM", Alias: "rom"},
			{Type: GbaSaveRam, Name: "Save RAM", Alias: "sram"},
		},
		Extensions: []string{"gba"},
	},
	{
		Kind: WonderSwan,
		Name: "WonderSwan",
		CPU:  CPUWs,
		Regions: []MemoryRegion{
			{Type: WsWorkRam, Name: "Work RAM", Alias: "wram"},
			{Type: WsPrgRom, Name: "PRG ROM", Alias: "rom"},
			{Type: WsCartRam, Name: "Cart RAM", Alias: "cartram"},
			{Type: WsBootRom, Name: "Boot ROM", Alias: "bootrom"},
			{Type: WsInternalEeprom, Name: "Internal EEPROM", Alias: "eeprom"},
		},
		Extensions: []string{"ws", "wsc"},
	},
}

// Lookup returns the Descriptor for the console Kind. The boolean result is
// false if the Kind is not known.
func Lookup(k Kind) (Descriptor, bool) {
	for _, d := range descriptors {
		if d.Kind == k {
			return d, true
		}
	}
	return Descriptor{}, false
}

// FromFilename returns the Descriptor for the console that uses files with
// the same extension as the filename. The comparison is case insensitive.
func FromFilename(filename string) (Descriptor, bool) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if ext == "" {
		return Descriptor{}, false
	}
	for _, d := range descriptors {
		for _, e := range d.Extensions {
			if e == ext {
				return d, true
			}
		}
	}
	return Descriptor{}, false
}

// Descriptors returns all known console descriptors in a fixed order.
func Descriptors() []Descriptor {
	d := make([]Descriptor, len(descriptors))
	copy(d, descriptors)
	return d
}

// Region returns the MemoryRegion with the specified alias. Aliases are case
// sensitive.
func (d Descriptor) Region(alias string) (MemoryRegion, error) {
	for _, r := range d.Regions {
		if r.Alias == alias {
			return r, nil
		}
	}
	return MemoryRegion{}, curated.Errorf(UnknownMemoryAlias, alias, d.Name, strings.Join(d.Aliases(), " "))
}

// Aliases returns the list of region aliases in table order.
func (d Descriptor) Aliases() []string {
	a := make([]string, 0, len(d.Regions))
	for _, r := range d.Regions {
		a = append(a, r.Alias)
	}
	return a
}
