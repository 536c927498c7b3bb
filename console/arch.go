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

// Arch identifies a CPU architecture.
type Arch int

// List of supported architectures. The SNES has a number of coprocessors,
// each of which is an architecture in its own right.
const (
	CPUSnes Arch = iota
	CPUSpc
	CPUNecDsp
	CPUSa1
	CPUGsu
	CPUCx4
	CPUSt018
	CPUGameboy
	CPUNes
	CPUPce
	CPUSms
	CPUGba
	CPUWs
)

// DebuggerFlag is the emulator setting that enables the debugger for an
// architecture.
type DebuggerFlag string

// List of debugger flags.
const (
	SnesDebuggerEnabled   DebuggerFlag = "SnesDebuggerEnabled"
	SpcDebuggerEnabled    DebuggerFlag = "SpcDebuggerEnabled"
	NecDspDebuggerEnabled DebuggerFlag = "NecDspDebuggerEnabled"
	Sa1DebuggerEnabled    DebuggerFlag = "Sa1DebuggerEnabled"
	GsuDebuggerEnabled    DebuggerFlag = "GsuDebuggerEnabled"
	Cx4DebuggerEnabled    DebuggerFlag = "Cx4DebuggerEnabled"
	St018DebuggerEnabled  DebuggerFlag = "St018DebuggerEnabled"
	GbDebuggerEnabled     DebuggerFlag = "GbDebuggerEnabled"
	NesDebuggerEnabled    DebuggerFlag = "NesDebuggerEnabled"
	PceDebuggerEnabled    DebuggerFlag = "PceDebuggerEnabled"
	SmsDebuggerEnabled    DebuggerFlag = "SmsDebuggerEnabled"
	GbaDebuggerEnabled    DebuggerFlag = "GbaDebuggerEnabled"
	WsDebuggerEnabled     DebuggerFlag = "WsDebuggerEnabled"
)

// Architecture describes a single CPU architecture.
type Architecture struct {
	Arch Arch

	// display name. for example, "NES 6502"
	Name string

	// the debugger flag required for the architecture to be debuggable
	Flag DebuggerFlag

	// the memory space that the CPU sees
	Memory MemoryType
}

var architectures = []Architecture{
	{Arch: CPUSnes, Name: "SNES 65816", Flag: SnesDebuggerEnabled, Memory: SnesMemory},
	{Arch: CPUSpc, Name: "SNES SPC700", Flag: SpcDebuggerEnabled, Memory: SpcMemory},
	{Arch: CPUNecDsp, Name: "SNES NEC DSP", Flag: NecDspDebuggerEnabled, Memory: NecDspMemory},
	{Arch: CPUSa1, Name: "SNES SA-1", Flag: Sa1DebuggerEnabled, Memory: Sa1Memory},
	{Arch: CPUGsu, Name: "SNES GSU", Flag: GsuDebuggerEnabled, Memory: GsuMemory},
	{Arch: CPUCx4, Name: "SNES CX4", Flag: Cx4DebuggerEnabled, Memory: Cx4Memory},
	{Arch: CPUSt018, Name: "SNES ST018", Flag: St018DebuggerEnabled, Memory: St018Memory},
	{Arch: CPUGameboy, Name: "GB LR35902", Flag: GbDebuggerEnabled, Memory: GameboyMemory},
	{Arch: CPUNes, Name: "NES 6502", Flag: NesDebuggerEnabled, Memory: NesMemory},
	{Arch: CPUPce, Name: "PCE HuC6280", Flag: PceDebuggerEnabled, Memory: PceMemory},
	{Arch: CPUSms, Name: "SMS Z80", Flag: SmsDebuggerEnabled, Memory: SmsMemory},
	{Arch: CPUGba, Name: "GBA ARM7", Flag: GbaDebuggerEnabled, Memory: GbaMemory},
	{Arch: CPUWs, Name: "WS V30MZ", Flag: WsDebuggerEnabled, Memory: WsMemory},
}

// Descriptor returns the Architecture description for the Arch. The boolean
// result is false if the Arch is not known.
func (a Arch) Descriptor() (Architecture, bool) {
	if a < 0 || int(a) >= len(architectures) {
		return Architecture{}, false
	}
	return architectures[a], true
}

// Memory returns the memory space used by the architecture. Returns
// MemoryNone if the Arch is not known.
func (a Arch) Memory() MemoryType {
	if d, ok := a.Descriptor(); ok {
		return d.Memory
	}
	return MemoryNone
}

func (a Arch) String() string {
	if d, ok := a.Descriptor(); ok {
		return d.Name
	}
	return "Unknown"
}

// Architectures returns all known architectures, in a fixed order.
func Architectures() []Architecture {
	a := make([]Architecture, len(architectures))
	copy(a, architectures)
	return a
}
