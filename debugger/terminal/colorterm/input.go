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

//go:build !windows

package colorterm

import (
	"fmt"
	"unicode"

	"github.com/jetsetilly/emucli/curated"
	"github.com/jetsetilly/emucli/debugger/terminal"
	"github.com/jetsetilly/emucli/debugger/terminal/colorterm/easyterm"
	"github.com/jetsetilly/emucli/debugger/terminal/colorterm/easyterm/ansi"
)

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt, events *terminal.ReadEvents) (string, error) {
	if ct.silenced {
		return "", nil
	}

	// the terminal is in input mode only for the duration of the read. output
	// from the emulation, and the operating system's handling of CTRL-C,
	// happen in canonical mode
	ct.InputMode()
	defer ct.CanonicalMode()

	if ct.tabCompletion != nil {
		ct.tabCompletion.Reset()
	}

	input := make([]rune, 0, 80)
	cursor := 0
	history := len(ct.history)

	// the input being edited before the user started scrolling through the
	// history. restored when the user scrolls past the newest entry
	var live []rune

	p := prompt.String()

	for {
		// redraw line: clear line, prompt, input and then reposition the
		// cursor
		ct.EasyTerm.TermPrint("\r")
		ct.EasyTerm.TermPrint(ansi.ClearLine)
		ct.EasyTerm.TermPrint(ansi.PenStyles["bold"])
		ct.EasyTerm.TermPrint(p)
		ct.EasyTerm.TermPrint(ansi.NormalPen)
		ct.EasyTerm.TermPrint(string(input))
		ct.EasyTerm.TermPrint(ansi.CursorMove(cursor - len(input)))

		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return "", err
		}

		// check for signals between key presses
		if events != nil && events.Signal != nil {
			select {
			case sig := <-events.Signal:
				ct.EasyTerm.TermPrint("\n")
				return "", events.SignalHandler(sig)
			default:
			}
		}

		switch r {
		case easyterm.KeyInterrupt:
			ct.EasyTerm.TermPrint("\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyEOF:
			if len(input) == 0 {
				ct.EasyTerm.TermPrint("\n")
				return "", curated.Errorf(terminal.UserAbort)
			}

		case easyterm.KeyTab:
			if ct.tabCompletion != nil {
				s := ct.tabCompletion.Complete(string(input[:cursor]))
				tail := input[cursor:]
				input = append([]rune(s), tail...)
				cursor = len([]rune(s))
			}

		case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			ct.EasyTerm.TermPrint("\n")
			s := string(input)
			ct.addHistory(s)
			return s, nil

		case easyterm.KeyBackspace, easyterm.KeyDelete:
			if cursor > 0 {
				input = append(input[:cursor-1], input[cursor:]...)
				cursor--
				history = len(ct.history)
			}

		case easyterm.KeyEsc:
			r, _, err := ct.reader.ReadRune()
			if err != nil {
				return "", err
			}
			if r != easyterm.EscCursor {
				continue
			}

			r, _, err = ct.reader.ReadRune()
			if err != nil {
				return "", err
			}

			switch r {
			case easyterm.CursorUp:
				if history > 0 {
					if history == len(ct.history) {
						live = append(live[:0], input...)
					}
					history--
					input = []rune(ct.history[history])
					cursor = len(input)
				}
			case easyterm.CursorDown:
				if history < len(ct.history)-1 {
					history++
					input = []rune(ct.history[history])
					cursor = len(input)
				} else if history == len(ct.history)-1 {
					history++
					input = append([]rune{}, live...)
					cursor = len(input)
				}
			case easyterm.CursorForward:
				if cursor < len(input) {
					cursor++
				}
			case easyterm.CursorBackward:
				if cursor > 0 {
					cursor--
				}
			case easyterm.CursorHome:
				cursor = 0
			case easyterm.CursorEnd:
				cursor = len(input)
			}

		default:
			if unicode.IsPrint(r) {
				input = append(input[:cursor], append([]rune{r}, input[cursor:]...)...)
				cursor++
				history = len(ct.history)
				if ct.tabCompletion != nil {
					ct.tabCompletion.Reset()
				}
			}
		}
	}
}

// String implements the fmt.Stringer interface.
func (ct *ColorTerminal) String() string {
	g := ct.Geometry()
	return fmt.Sprintf("colorterm (%dx%d)", g.Cols, g.Rows)
}
