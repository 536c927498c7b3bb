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

// Package colorterm implements the Terminal interface for the emucli
// debugger. It supports color output, a command history, and tab completion.
//
// The command history is loaded from, and saved to, the file named in
// NewColorTerminal(). An empty filename disables the persistence of the
// history.
package colorterm

import (
	"bufio"
	"os"
	"strings"

	"github.com/jetsetilly/emucli/debugger/terminal"
	"github.com/jetsetilly/emucli/debugger/terminal/colorterm/easyterm"
)

// the maximum number of entries kept in the command history.
const maxHistory = 500

// ColorTerminal implements debugger UI interface with a basic ANSI terminal.
type ColorTerminal struct {
	easyterm.EasyTerm

	reader        *bufio.Reader
	history       []string
	historyFile   string
	tabCompletion terminal.TabCompletion

	silenced bool
}

// NewColorTerminal is the preferred method of initialisation for the
// ColorTerminal type.
func NewColorTerminal(historyFile string) *ColorTerminal {
	return &ColorTerminal{
		historyFile: historyFile,
	}
}

// Initialise perfoms any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	err := ct.EasyTerm.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	ct.reader = bufio.NewReader(os.Stdin)
	ct.history = loadHistory(ct.historyFile)

	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	ct.EasyTerm.TermPrint("\r")
	_ = ct.Flush()
	ct.EasyTerm.CleanUp()
	_ = saveHistory(ct.historyFile, ct.history)
}

// RegisterTabCompletion adds an implementation of TabCompletion to the
// ColorTerminal.
func (ct *ColorTerminal) RegisterTabCompletion(tc terminal.TabCompletion) {
	ct.tabCompletion = tc
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// Silence implements terminal.Terminal interface.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.silenced = silenced
}

// addHistory appends the input to the history unless it is a repeat of the
// most recent entry.
func (ct *ColorTerminal) addHistory(input string) {
	input = strings.TrimSpace(input)
	if input == "" {
		return
	}
	if len(ct.history) > 0 && ct.history[len(ct.history)-1] == input {
		return
	}
	ct.history = append(ct.history, input)
	if len(ct.history) > maxHistory {
		ct.history = ct.history[len(ct.history)-maxHistory:]
	}
}
