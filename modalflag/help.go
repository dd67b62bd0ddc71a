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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// writeHelp amends the usage message of the flag package with the mode path
// and the list of sub-modes.
func writeHelp(w io.Writer, usage string, path string, subModes []string, additional string) {
	head, flags, _ := strings.Cut(usage, "\n")

	if flags == "" && len(subModes) == 0 {
		if path == "" {
			fmt.Fprintln(w, "No help available")
		} else {
			fmt.Fprintf(w, "No help available for %s\n", path)
		}
		return
	}

	if path == "" {
		fmt.Fprintln(w, head)
	} else {
		fmt.Fprintf(w, "%s for %s mode\n", head, path)
	}

	io.WriteString(w, flags)

	if len(subModes) > 0 {
		if flags != "" {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "  available sub-modes: %s\n", strings.Join(subModes, ", "))
		fmt.Fprintf(w, "    default: %s\n", subModes[0])
	}

	if additional != "" {
		fmt.Fprintf(w, "\n%s\n", additional)
	}
}
