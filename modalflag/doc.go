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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It differs from the flag package in how it treats positional
// arguments: flags may appear before, between or after positional arguments.
//
// Usage is similar to the flag package except that the arguments are given
// to NewArgs() and then Parse() is called with no arguments. For example
// (note that no error handling of the Parse() function is shown here):
//
//	md = modalflag.Flags{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	verbose := md.AddBool("verbose", false, "print additional log messages")
//	_, _ = md.Parse()
//
// Once the arguments have been parsed, positional arguments can be retrieved
// with the RemainingArgs() or GetArg() function.
//
// In addition to the flag types of the flag package, the AddStrings()
// function adds a flag that can be specified more than once, and the
// AddPairs() function adds a flag that takes two values. The first value of a
// pair is the value given to the flag in the normal way and the second value
// is the next positional argument. For example, with a pair flag named
// "dump":
//
//	emucli --dump wram ram.bin game.nes
//
// the "dump" flag receives the pair (wram, ram.bin) and the only remaining
// argument is game.nes.
//
// Help is requested with -h, -help or --help. When help is requested,
// Parse() prints a help message to the Output writer and returns ParseHelp.
package modalflag
