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

package breakpoints

// List is an ordered collection of breakpoints. Breakpoints are kept in the
// order they were added and every breakpoint is given a unique ID. IDs are
// never reused.
//
// The List is not safe for concurrent use. It should only ever be used by
// the debugger's goroutine.
type List struct {
	entries []Breakpoint
	nextID  int
}

// NewList is the preferred method of initialisation for the List type.
func NewList() *List {
	return &List{
		nextID: 1,
	}
}

// Add the breakpoint to the list. Returns the ID assigned to the breakpoint.
func (l *List) Add(bp Breakpoint) int {
	bp.ID = l.nextID
	l.nextID++
	l.entries = append(l.entries, bp)
	return bp.ID
}

func (l *List) find(id int) int {
	for i := range l.entries {
		if l.entries[i].ID == id {
			return i
		}
	}
	return -1
}

// Delete the breakpoint with the ID. Returns false if there is no such
// breakpoint.
func (l *List) Delete(id int) bool {
	i := l.find(id)
	if i == -1 {
		return false
	}
	l.entries = append(l.entries[:i], l.entries[i+1:]...)
	return true
}

// Enable the breakpoint with the ID. Returns false if there is no such
// breakpoint.
func (l *List) Enable(id int) bool {
	return l.setEnabled(id, true)
}

// Disable the breakpoint with the ID. Returns false if there is no such
// breakpoint.
func (l *List) Disable(id int) bool {
	return l.setEnabled(id, false)
}

func (l *List) setEnabled(id int, enabled bool) bool {
	i := l.find(id)
	if i == -1 {
		return false
	}
	l.entries[i].Enabled = enabled
	return true
}

// Get the breakpoint with the ID.
func (l *List) Get(id int) (Breakpoint, bool) {
	i := l.find(id)
	if i == -1 {
		return Breakpoint{}, false
	}
	return l.entries[i], true
}

// Entries returns a copy of all breakpoints in the order they were added.
func (l *List) Entries() []Breakpoint {
	e := make([]Breakpoint, len(l.entries))
	copy(e, l.entries)
	return e
}

// Len returns the number of breakpoints in the list.
func (l *List) Len() int {
	return len(l.entries)
}
