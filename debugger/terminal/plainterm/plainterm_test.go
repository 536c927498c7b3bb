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

package plainterm_test

import (
	"io"
	"os"
	"strings"
	"syscall"
	"testing"

	"github.com/jetsetilly/emucli/curated"
	"github.com/jetsetilly/emucli/debugger/terminal"
	"github.com/jetsetilly/emucli/debugger/terminal/plainterm"
	"github.com/jetsetilly/emucli/test"
)

func TestRead(t *testing.T) {
	pt := plainterm.NewPlainTerminal(strings.NewReader("step\r\nregs\nquit"), io.Discard)
	test.DemandSuccess(t, pt.Initialise())
	test.ExpectFailure(t, pt.IsInteractive())

	s, err := pt.TermRead(terminal.DefaultPrompt, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "step")

	s, err = pt.TermRead(terminal.DefaultPrompt, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "regs")

	s, err = pt.TermRead(terminal.DefaultPrompt, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "quit")

	_, err = pt.TermRead(terminal.DefaultPrompt, nil)
	test.ExpectEquality(t, err, io.EOF)
}

func TestReadSignal(t *testing.T) {
	pt := plainterm.NewPlainTerminal(strings.NewReader("run\n"), io.Discard)
	test.DemandSuccess(t, pt.Initialise())

	sig := make(chan os.Signal, 1)
	sig <- syscall.SIGINT

	events := &terminal.ReadEvents{
		Signal: sig,
		SignalHandler: func(os.Signal) error {
			return curated.Errorf(terminal.UserInterrupt)
		},
	}

	_, err := pt.TermRead(terminal.DefaultPrompt, events)
	test.ExpectSuccess(t, curated.Is(err, terminal.UserInterrupt))
}

func TestPrintLine(t *testing.T) {
	out := &test.CompareWriter{}
	pt := plainterm.NewPlainTerminal(strings.NewReader(""), out)
	test.DemandSuccess(t, pt.Initialise())

	pt.TermPrintLine(terminal.StyleFeedback, "hello")
	pt.TermPrintLine(terminal.StyleEcho, "not shown")
	pt.TermPrintLine(terminal.StyleError, "bad")
	test.ExpectSuccess(t, out.Compare("hello\n* bad\n"))

	out.Clear()
	pt.Silence(true)
	pt.TermPrintLine(terminal.StyleFeedback, "quiet")
	pt.TermPrintLine(terminal.StyleError, "loud")
	test.ExpectSuccess(t, out.Compare("* loud\n"))
}
