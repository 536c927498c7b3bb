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
)

// memory of the simulated machine. not safe for concurrent use.
type memory struct {
	layout  layout
	primary console.MemoryType

	// every region of the console, including the ROM. regions which are not
	// fitted have a zero length slice
	regions map[console.MemoryType][]byte

	// the parts of the primary address space not covered by a region
	sparse map[uint32]uint8
}

func newMemory(l layout, primary console.MemoryType, rom []byte) *memory {
	m := &memory{
		layout:  l,
		primary: primary,
		regions: make(map[console.MemoryType][]byte),
		sparse:  make(map[uint32]uint8),
	}
	for r, sz := range l.sizes {
		m.regions[r] = make([]byte, sz)
	}
	m.regions[l.rom.region] = rom
	return m
}

// powerOn clears all RAM. the ROM is unchanged.
func (m *memory) powerOn() {
	for r, d := range m.regions {
		if r == m.layout.rom.region {
			continue
		}
		clear(d)
	}
	m.sparse = make(map[uint32]uint8)
}

func (m *memory) size(mem console.MemoryType) int {
	if mem == m.primary {
		return int(m.layout.space)
	}
	return len(m.regions[mem])
}

// mapAddress returns the region and offset for an address in the primary
// address space. the boolean result is false if the address is not in any
// region.
func (m *memory) mapAddress(address uint32) (console.MemoryType, uint32, bool) {
	if m.layout.rom.contains(address) {
		offset := address - m.layout.rom.base
		if int(offset) < len(m.regions[m.layout.rom.region]) {
			return m.layout.rom.region, offset, true
		}
		return console.MemoryNone, 0, false
	}
	for _, w := range m.layout.ram {
		if w.contains(address) {
			return w.region, address - w.base, true
		}
	}
	return console.MemoryNone, 0, false
}

func (m *memory) read(mem console.MemoryType, address uint32) uint8 {
	if mem == m.primary {
		if address >= m.layout.space {
			return 0
		}
		r, offset, ok := m.mapAddress(address)
		if !ok {
			return m.sparse[address]
		}
		return m.regions[r][offset]
	}

	d := m.regions[mem]
	if int(address) >= len(d) {
		return 0
	}
	return d[address]
}

func (m *memory) write(mem console.MemoryType, address uint32, value uint8) {
	if mem == m.primary {
		if address >= m.layout.space {
			return
		}
		r, offset, ok := m.mapAddress(address)
		if !ok {
			if value == 0 {
				delete(m.sparse, address)
			} else {
				m.sparse[address] = value
			}
			return
		}
		m.regions[r][offset] = value
		return
	}

	d := m.regions[mem]
	if int(address) >= len(d) {
		return
	}
	d[address] = value
}

// a copy of the memory contents.
func (m *memory) state(mem console.MemoryType) []byte {
	sz := m.size(mem)
	if sz == 0 {
		return []byte{}
	}

	if mem != m.primary {
		d := make([]byte, sz)
		copy(d, m.regions[mem])
		return d
	}

	d := make([]byte, sz)
	for a, v := range m.sparse {
		d[a] = v
	}
	copy(d[m.layout.rom.base:], m.regions[m.layout.rom.region][:min(len(m.regions[m.layout.rom.region]), int(m.layout.rom.size))])
	for _, w := range m.layout.ram {
		copy(d[w.base:w.base+w.size], m.regions[w.region])
	}
	return d
}
