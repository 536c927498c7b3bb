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

package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// Flags provides an easy way of handling command line arguments. The Output
// field should be specified before calling Parse() or you will not see any
// help messages.
type Flags struct {
	// where to print output (help messages etc)
	Output io.Writer

	// whether Parse() has been called since NewArgs()
	parsed bool

	// the underlying flag structure. a new flagset is created on every call
	// to NewArgs()
	flags *flag.FlagSet

	// the argument list as specified by the NewArgs() function
	args []string

	// the arguments that are not flags or the values of flags
	positional []string

	// pairs that are waiting for their second value
	pending []pendingPair

	// the first line of the help message. if empty the flag package's
	// default of "Usage:" is used
	banner string

	// some programs will benefit from a verbose explanation
	additionalHelp string
}

// NewArgs with a string of arguments (from the command line for example).
// Any flags added previously are forgotten.
func (md *Flags) NewArgs(args []string) {
	md.args = args
	md.positional = md.positional[:0]
	md.pending = md.pending[:0]
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.parsed = false
}

// Banner replaces the first line of the help message.
func (md *Flags) Banner(banner string) {
	md.banner = banner
}

// AdditionalHelp allows you to add extensive help text to be displayed in
// addition to the regular help on available flags.
func (md *Flags) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// Parsed returns false if Parse() has not yet been called since a call to
// NewArgs(). Note that, a Flags struct is considered to be Parsed() even if
// Parse() results in an error.
func (md *Flags) Parsed() bool {
	return md.parsed
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// a list of valid ParseResult values.
const (
	// Continue with command line processing.
	ParseContinue ParseResult = iota

	// Help was requested and has been printed.
	ParseHelp

	// an error has occurred and is returned as the second return value.
	ParseError
)

// Parse the arguments. Returns a value of ParseResult. The idiomatic usage is
// as follows:
//
//	r, err := md.Parse()
//	switch r {
//	case ParseHelp:
//		// help message has already been printed
//		return
//	case ParseError:
//		printError(err)
//		return
//	}
//
// Note that the Output field of the Flags struct *must* be specified in order
// for any help messages to be visible.
func (md *Flags) Parse() (ParseResult, error) {
	md.parsed = true

	// the flag package writes usage and errors to the helpWriter. we only
	// make use of the output when help is requested
	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	args := md.args
	for {
		err := md.flags.Parse(args)
		if err != nil {
			if err == flag.ErrHelp {
				hw.Help(md.Output, md.banner, md.additionalHelp)
				return ParseHelp, nil
			}
			return ParseError, err
		}

		rem := md.flags.Args()
		if len(rem) == 0 {
			break // for loop
		}

		// the flag package stops parsing at a "--" terminator. everything
		// after the terminator is positional
		consumed := len(args) - len(rem)
		if consumed > 0 && args[consumed-1] == "--" {
			for _, a := range rem {
				md.addPositional(a)
			}
			break // for loop
		}

		md.addPositional(rem[0])
		args = rem[1:]
	}

	if len(md.pending) > 0 {
		return ParseError, fmt.Errorf("flag needs two arguments: -%s", md.pending[0].value.name)
	}

	return ParseContinue, nil
}

// addPositional completes the oldest pending pair or, if there are no pending
// pairs, adds the argument to the list of positional arguments.
func (md *Flags) addPositional(arg string) {
	if len(md.pending) > 0 {
		p := md.pending[0]
		md.pending = md.pending[1:]
		(*p.value.values)[p.idx].Second = arg
		return
	}
	md.positional = append(md.positional, arg)
}

// Help prints the help message to the writer.
func (md *Flags) Help(output io.Writer) {
	hw := &helpWriter{}
	md.flags.SetOutput(hw)
	fmt.Fprintln(hw, "Usage:")
	md.flags.PrintDefaults()
	hw.Help(output, md.banner, md.additionalHelp)
}

// RemainingArgs after a call to Parse() ie. arguments that aren't flags or
// the values of flags.
func (md *Flags) RemainingArgs() []string {
	return md.positional
}

// GetArg returns the numbered argument that isn't a flag or the value of a
// flag. Returns the empty string if there is no such argument.
func (md *Flags) GetArg(i int) string {
	if i < 0 || i >= len(md.positional) {
		return ""
	}
	return md.positional[i]
}

// AddBool flag for next call to Parse().
func (md *Flags) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Flags) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Flags) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddStrings adds a flag that can be specified more than once. The values
// are collected in the order they appear.
func (md *Flags) AddStrings(name string, usage string) *[]string {
	v := &stringsValue{values: &[]string{}}
	md.flags.Var(v, name, usage)
	return v.values
}

// AddPairs adds a flag that takes two values and that can be specified more
// than once. The second value of the pair is taken from the next positional
// argument.
func (md *Flags) AddPairs(name string, usage string) *[]Pair {
	v := &pairValue{md: md, name: name, values: &[]Pair{}}
	md.flags.Var(v, name, usage)
	return v.values
}

// Visit visits the flags in lexicographical order, calling fn for each. It
// visits only those flags that have been set.
func (md *Flags) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}

// stringsValue implements the flag.Value interface for repeatable flags.
type stringsValue struct {
	values *[]string
}

func (v *stringsValue) String() string {
	if v.values == nil {
		return ""
	}
	return strings.Join(*v.values, ", ")
}

func (v *stringsValue) Set(s string) error {
	*v.values = append(*v.values, s)
	return nil
}

// Pair is the value of a pair flag.
type Pair struct {
	First  string
	Second string
}

// pairValue implements the flag.Value interface for pair flags.
type pairValue struct {
	md     *Flags
	name   string
	values *[]Pair
}

type pendingPair struct {
	value *pairValue
	idx   int
}

func (v *pairValue) String() string {
	if v.values == nil {
		return ""
	}
	s := make([]string, 0, len(*v.values))
	for _, p := range *v.values {
		s = append(s, fmt.Sprintf("%s %s", p.First, p.Second))
	}
	return strings.Join(s, ", ")
}

func (v *pairValue) Set(s string) error {
	*v.values = append(*v.values, Pair{First: s})
	v.md.pending = append(v.md.pending, pendingPair{value: v, idx: len(*v.values) - 1})
	return nil
}
