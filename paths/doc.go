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

// Package paths contains functions to prepare paths to emucli resources.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate resource directory. For example, the
// following will return the path to the interactive command history.
//
//	pth, err := paths.ResourcePath("history")
//
// The policy of ResourcePath() is: if the EMUCLI_HOME environment variable is
// set then that is the resource directory. Otherwise, if the base resource
// path, ".emucli", is present in the program's current directory then that is
// used. If neither are present then the ".emucli" directory in the user's home
// directory is used.
//
// The resource directory is created if it does not exist.
package paths
