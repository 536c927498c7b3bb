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

package batch

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/emucli/breakpoints"
	"github.com/jetsetilly/emucli/console"
	"github.com/jetsetilly/emucli/curated"
)

// Sentinal errors for assertions.
const (
	MalformedAssertion = "malformed assertion: %s"
	AssertionMismatch  = "%s = $%04X (expected $%04X)"
)

// AssertionKind distinguishes the two types of assertion.
type AssertionKind int

// List of assertion kinds.
const (
	AssertRegister AssertionKind = iota
	AssertMemory
)

// Assertion is a check on the state of the emulation once it has stopped.
type Assertion struct {
	Kind AssertionKind

	// register name. for register assertions only
	Name string

	// address in the primary CPU's memory space and the number of bytes to
	// read (one or two). for memory assertions only
	Address uint32
	Size    int

	Expected uint16
}

// Label is used to identify the assertion in the report.
func (a Assertion) Label() string {
	if a.Kind == AssertMemory {
		return fmt.Sprintf("[$%06X]", a.Address)
	}
	return a.Name
}

// ParseRegisterAssertion parses a register assertion of the form NAME=VALUE.
// The value is parsed with breakpoints.ParseAddress() and truncated to sixteen
// bits.
func ParseRegisterAssertion(s string) (Assertion, error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return Assertion{}, curated.Errorf(MalformedAssertion, s)
	}
	v, err := breakpoints.ParseAddress(value)
	if err != nil {
		return Assertion{}, curated.Errorf(MalformedAssertion, err)
	}
	return Assertion{
		Kind:     AssertRegister,
		Name:     name,
		Expected: uint16(v),
	}, nil
}

// ParseMemoryAssertion parses a memory assertion of the form ADDR=VALUE. The
// size is the number of bytes to compare and should be one or two.
func ParseMemoryAssertion(s string, size int) (Assertion, error) {
	if size != 1 && size != 2 {
		return Assertion{}, curated.Errorf(MalformedAssertion, fmt.Sprintf("unsupported size (%d)", size))
	}
	address, value, ok := strings.Cut(s, "=")
	if !ok {
		return Assertion{}, curated.Errorf(MalformedAssertion, s)
	}
	a, err := breakpoints.ParseAddress(address)
	if err != nil {
		return Assertion{}, curated.Errorf(MalformedAssertion, err)
	}
	v, err := breakpoints.ParseAddress(value)
	if err != nil {
		return Assertion{}, curated.Errorf(MalformedAssertion, err)
	}
	return Assertion{
		Kind:     AssertMemory,
		Address:  a,
		Size:     size,
		Expected: uint16(v),
	}, nil
}

// DumpRequest is a request to write the contents of a memory region to a
// file. The region is identified by its alias and can only be resolved once
// the console is known.
type DumpRequest struct {
	Alias    string
	Filename string

	region   console.MemoryRegion
	resolved bool
}

// NewDumpRequest returns an unresolved DumpRequest.
func NewDumpRequest(alias string, filename string) DumpRequest {
	return DumpRequest{
		Alias:    alias,
		Filename: filename,
	}
}

// Resolve the alias against the console's memory regions. Returns an error
// with the console.UnknownMemoryAlias pattern if the console has no such
// region.
func (d *DumpRequest) Resolve(desc console.Descriptor) error {
	r, err := desc.Region(d.Alias)
	if err != nil {
		return err
	}
	d.region = r
	d.resolved = true
	return nil
}

// Resolved returns true if the request has been successfully resolved.
func (d DumpRequest) Resolved() bool {
	return d.resolved
}

// Region returns the memory region. Only valid if Resolved() is true.
func (d DumpRequest) Region() console.MemoryRegion {
	return d.region
}
