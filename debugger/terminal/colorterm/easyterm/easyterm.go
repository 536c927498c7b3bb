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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It provides
// some features not present in the termios package, such as terminal
// geometry, and switches the terminal between the canonical mode used for
// output and the input mode used when editing a command line.
package easyterm

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// TermGeometry is the dimensions of the terminal in characters.
type TermGeometry struct {
	Rows uint16
	Cols uint16
}

// EasyTerm is the main container for posix terminals. Usually embedded in
// other struct types.
type EasyTerm struct {
	input  *os.File
	output *os.File

	// canonical mode is the mode the terminal was in when Initialise() was
	// called. the input mode is cbreak mode but with interrupt signals
	// disabled, so that CTRL-C can be read as a keypress
	canAttr   unix.Termios
	inputAttr unix.Termios

	mu       sync.Mutex
	geometry TermGeometry

	// sig/ack channels to control the resize handler
	terminateSig chan bool
	terminateAck chan bool
}

// Initialise the fields in the EasyTerm struct.
func (et *EasyTerm) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return fmt.Errorf("easyterm: requires an input file")
	}
	if outputFile == nil {
		return fmt.Errorf("easyterm: requires an output file")
	}

	et.input = inputFile
	et.output = outputFile

	err := termios.Tcgetattr(et.input.Fd(), &et.canAttr)
	if err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}

	et.inputAttr = et.canAttr
	termios.Cfmakecbreak(&et.inputAttr)
	et.inputAttr.Lflag &^= unix.ISIG

	_ = et.UpdateGeometry()

	et.terminateSig = make(chan bool)
	et.terminateAck = make(chan bool)

	go func() {
		sigwinch := make(chan os.Signal, 1)
		signal.Notify(sigwinch, syscall.SIGWINCH)
		defer func() {
			signal.Stop(sigwinch)
			et.terminateAck <- true
		}()

		for {
			select {
			case <-sigwinch:
				_ = et.UpdateGeometry()
			case <-et.terminateSig:
				return
			}
		}
	}()

	return nil
}

// CleanUp closes resources created in the Initialise() function and returns
// the terminal to canonical mode.
func (et *EasyTerm) CleanUp() {
	et.CanonicalMode()
	et.terminateSig <- true
	<-et.terminateAck
}

// TermPrint writes the string to the output file.
func (et *EasyTerm) TermPrint(s string) {
	_, _ = et.output.WriteString(s)
}

// UpdateGeometry gets the current dimensions of the output terminal.
func (et *EasyTerm) UpdateGeometry() error {
	ws, err := unix.IoctlGetWinsize(int(et.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}

	et.mu.Lock()
	defer et.mu.Unlock()
	et.geometry.Rows = ws.Row
	et.geometry.Cols = ws.Col

	return nil
}

// Geometry returns the most recent terminal dimensions.
func (et *EasyTerm) Geometry() TermGeometry {
	et.mu.Lock()
	defer et.mu.Unlock()
	return et.geometry
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (et *EasyTerm) CanonicalMode() {
	_ = termios.Tcsetattr(et.input.Fd(), termios.TCSANOW, &et.canAttr)
}

// InputMode puts the terminal into cbreak mode with signal generation
// disabled.
func (et *EasyTerm) InputMode() {
	_ = termios.Tcsetattr(et.input.Fd(), termios.TCSANOW, &et.inputAttr)
}

// Flush makes sure the terminal's input buffer is empty.
func (et *EasyTerm) Flush() error {
	return termios.Tcflush(et.input.Fd(), termios.TCIFLUSH)
}
