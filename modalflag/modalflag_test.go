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

package modalflag_test

import (
	"io"
	"testing"

	"github.com/jetsetilly/emucli/modalflag"
	"github.com/jetsetilly/emucli/test"
)

func TestNoFlags(t *testing.T) {
	md := modalflag.Flags{Output: io.Discard}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, md.Parsed())
	test.ExpectEquality(t, len(md.RemainingArgs()), 0)
	test.ExpectEquality(t, md.GetArg(0), "")
}

func TestInterleaved(t *testing.T) {
	md := modalflag.Flags{Output: io.Discard}
	md.NewArgs([]string{"-test", "1", "--value", "10", "2", "-name=foo", "3"})
	testFlag := md.AddBool("test", false, "test flag")
	value := md.AddInt("value", 0, "value flag")
	name := md.AddString("name", "", "name flag")

	test.ExpectFailure(t, *testFlag)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)

	test.ExpectSuccess(t, *testFlag)
	test.ExpectEquality(t, *value, 10)
	test.ExpectEquality(t, *name, "foo")

	test.DemandEquality(t, len(md.RemainingArgs()), 3)
	test.ExpectEquality(t, md.GetArg(0), "1")
	test.ExpectEquality(t, md.GetArg(1), "2")
	test.ExpectEquality(t, md.GetArg(2), "3")
}

func TestTerminator(t *testing.T) {
	md := modalflag.Flags{Output: io.Discard}
	md.NewArgs([]string{"-test", "--", "-not-a-flag", "x"})
	testFlag := md.AddBool("test", false, "test flag")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, *testFlag)
	test.DemandEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(0), "-not-a-flag")
}

func TestRepeatable(t *testing.T) {
	md := modalflag.Flags{Output: io.Discard}
	md.NewArgs([]string{"--break", "$8000", "game.nes", "--break", "0x8100"})
	breaks := md.AddStrings("break", "breakpoint")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.DemandEquality(t, len(*breaks), 2)
	test.ExpectEquality(t, (*breaks)[0], "$8000")
	test.ExpectEquality(t, (*breaks)[1], "0x8100")
	test.ExpectEquality(t, md.GetArg(0), "game.nes")
}

func TestPairs(t *testing.T) {
	md := modalflag.Flags{Output: io.Discard}
	md.NewArgs([]string{"game.nes", "--dump", "ram", "ram.bin", "--batch", "--dump", "oam", "oam.bin"})
	dumps := md.AddPairs("dump", "dump memory")
	batch := md.AddBool("batch", false, "batch mode")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, *batch)

	test.DemandEquality(t, len(*dumps), 2)
	test.ExpectEquality(t, (*dumps)[0], modalflag.Pair{First: "ram", Second: "ram.bin"})
	test.ExpectEquality(t, (*dumps)[1], modalflag.Pair{First: "oam", Second: "oam.bin"})

	test.DemandEquality(t, len(md.RemainingArgs()), 1)
	test.ExpectEquality(t, md.GetArg(0), "game.nes")
}

func TestIncompletePair(t *testing.T) {
	md := modalflag.Flags{Output: io.Discard}
	md.NewArgs([]string{"--dump", "ram"})
	md.AddPairs("dump", "dump memory")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestUnknownFlag(t *testing.T) {
	md := modalflag.Flags{Output: io.Discard}
	md.NewArgs([]string{"game.nes", "--bogus"})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Flags{Output: tw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("No help available\n"), tw.String())
}

func TestHelpFlags(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Flags{Output: tw}
	md.NewArgs([]string{"--help"})
	md.AddBool("test", true, "test flag")
	md.Banner("Usage: prog [options] <file>")
	md.AdditionalHelp("Extra help")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage: prog [options] <file>\n" +
		"  -test\n" +
		"    \ttest flag (default true)\n" +
		"\n" +
		"Extra help\n"

	test.ExpectSuccess(t, tw.Compare(expectedHelp), tw.String())

	// explicit request for help produces the same output
	tw.Clear()
	md.Help(tw)
	test.ExpectSuccess(t, tw.Compare(expectedHelp), tw.String())
}
