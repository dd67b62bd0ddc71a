// This file is part of GopherST.
//
// GopherST is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherST is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherST.  If not, see <https://www.gnu.org/licenses/>.

// Package modalflag wraps the flag package from the standard library so that
// a command line can be made up of modes, each with its own flags.
//
// Arguments are supplied with NewArgs() and Parse() is called for each mode
// in turn:
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.NewMode()
//	md.AddSubModes("RUN", "KEYTEST")
//
//	p, err := md.Parse()
//	...
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		width := md.AddInt("width", 320, "width of game screen")
//		p, err := md.Parse()
//		...
//	}
//
// The first sub-mode is the default. It is selected when the next argument
// isn't a sub-mode, so the following command lines are equivalent:
//
//	gopherst RUN -width 640
//	gopherst -width 640
//
// Help for the current mode is printed when -help is given. Parse() returns
// ParseHelp in that case and the program should exit without printing
// anything further.
package modalflag
