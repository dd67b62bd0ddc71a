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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/gopherst/prefs"
	"github.com/jetsetilly/gopherst/test"
)

func TestCommandLineParsing(t *testing.T) {
	for _, tc := range []struct {
		prefs  string
		unused string
	}{
		{prefs: "", unused: ""},
		{prefs: "graphics.aspect::false", unused: "graphics.aspect::false"},
		{prefs: "  graphics.aspect ::  false ", unused: "graphics.aspect::false"},
		{prefs: "graphics.aspect::false;events.layout::de", unused: "events.layout::de; graphics.aspect::false"},
		{prefs: "graphics.aspect", unused: ""},
		{prefs: "graphics.aspect:false; events.layout::de;", unused: "events.layout::de"},

		// only the first separator divides the key and value
		{prefs: "events.layout::de::fr", unused: "events.layout::de::fr"},

		// the last of a repeated key wins
		{prefs: "events.layout::de; events.layout::fr", unused: "events.layout::fr"},
	} {
		prefs.PushCommandLineStack(tc.prefs)
		test.ExpectEquality(t, prefs.PopCommandLineStack(), tc.unused, tc.prefs)
	}

	// popping an empty stack is harmless
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestCommandLineConsumption(t *testing.T) {
	prefs.PushCommandLineStack("graphics.waitvbl::false; events.layout::de; graphics.scale::3")

	ok, v := prefs.GetCommandLinePref("events.layout")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "de")

	// a value can only be used once
	ok, _ = prefs.GetCommandLinePref("events.layout")
	test.ExpectFailure(t, ok)

	ok, _ = prefs.GetCommandLinePref("graphics.aspect")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "graphics.scale::3; graphics.waitvbl::false")

	// nothing left to consume
	ok, _ = prefs.GetCommandLinePref("graphics.scale")
	test.ExpectFailure(t, ok)
}

func TestCommandLineGroups(t *testing.T) {
	prefs.PushCommandLineStack("events.layout::de; graphics.aspect::true")
	prefs.PushCommandLineStack("events.layout::fr")

	// only the top group is visible
	ok, v := prefs.GetCommandLinePref("events.layout")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "fr")
	ok, _ = prefs.GetCommandLinePref("graphics.aspect")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// the group underneath is untouched
	ok, v = prefs.GetCommandLinePref("events.layout")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "de")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "graphics.aspect::true")
}
