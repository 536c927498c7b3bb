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

package debugger

import (
	"sort"
	"strings"
)

// tabCompletion implements the terminal.TabCompletion interface. Completion
// applies to the last word of the input. Repeated calls with the string
// returned by the previous call cycle through the options.
type tabCompletion struct {
	// completions for the first word of the input
	commands []string

	// completions for the second word, by command verb
	arguments map[string][]string

	options    []string
	lastOption int

	// the last string returned by Complete(). used to decide whether to start
	// a new completion session
	lastGuess string
}

func newTabCompletion(commands []string, arguments map[string][]string) *tabCompletion {
	sort.Strings(commands)
	return &tabCompletion{
		commands:  commands,
		arguments: arguments,
	}
}

// Complete implements the terminal.TabCompletion interface.
func (tc *tabCompletion) Complete(input string) string {
	p := strings.Split(input, " ")

	if input == tc.lastGuess && tc.lastGuess != "" {
		// if there was only one option in the option list then return immediately
		if len(tc.options) <= 1 {
			return input
		}

		// shorten the input by one word (getting rid of the last completion
		// effort and the trailing space) and step to the next option
		p = p[:len(p)-2]
		p = append(p, "")
		tc.lastOption++
		if tc.lastOption >= len(tc.options) {
			tc.lastOption = 0
		}
	} else {
		// this is a new completion session
		tc.options = tc.options[:0]
		tc.lastOption = 0

		var candidates []string
		switch len(p) {
		case 1:
			candidates = tc.commands
		case 2:
			verb := p[0]
			if v, ok := commandAliases[verb]; ok {
				verb = v
			}
			candidates = tc.arguments[verb]
		}

		trigger := p[len(p)-1]
		for _, c := range candidates {
			if strings.HasPrefix(c, trigger) {
				tc.options = append(tc.options, c)
			}
		}

		// no completion options - return input unchanged
		if len(tc.options) == 0 {
			return input
		}
	}

	// change the last word in the supplied input to the chosen option
	p[len(p)-1] = tc.options[tc.lastOption]

	// rejoin all parts of the input along with the altered last word
	tc.lastGuess = strings.Join(p, " ") + " "

	return tc.lastGuess
}

// Reset implements the terminal.TabCompletion interface.
func (tc *tabCompletion) Reset() {
	tc.options = tc.options[:0]
	tc.lastOption = 0
	tc.lastGuess = ""
}

// completions returns the words that can be completed by the tab completion.
// the first result are the command verbs and the memory region commands of
// the loaded console. the second result are the arguments of the commands
// that take a keyword argument.
func (dbg *Debugger) completions() ([]string, map[string][]string) {
	var commands []string
	for _, h := range helps {
		if len(commands) == 0 || commands[len(commands)-1] != h.verb {
			commands = append(commands, h.verb)
		}
	}
	commands = append(commands, dbg.console.Aliases()...)

	arguments := map[string][]string{
		cmdInfo:  {infoBreak, infoCPU, infoRegions},
		cmdDump:  dbg.console.Aliases(),
		cmdTrace: {"off"},
		cmdHelp:  append([]string{}, commands...),
	}
	for k := range watchTypes {
		arguments[cmdWatch] = append(arguments[cmdWatch], k)
	}
	sort.Strings(arguments[cmdWatch])
	sort.Strings(arguments[cmdDump])
	sort.Strings(arguments[cmdHelp])

	return commands, arguments
}
