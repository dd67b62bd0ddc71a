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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherst/prefs"
	"github.com/jetsetilly/gopherst/test"
)

func newDisk(t *testing.T) (*prefs.Disk, string) {
	t.Helper()
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	return dsk, fn
}

// compare the contents of the preferences file with the expected entries
func expectFile(t *testing.T, fn string, entries string) {
	t.Helper()
	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, entries))
}

func TestBool(t *testing.T) {
	dsk, fn := newDisk(t)

	var v, w, x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))
	test.ExpectFailure(t, x.Set(1))

	test.ExpectSuccess(t, dsk.Save())
	expectFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestString(t *testing.T) {
	dsk, fn := newDisk(t)

	var v, w prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, dsk.Add("qux", &w))

	test.ExpectSuccess(t, v.Set("bar"))
	test.ExpectSuccess(t, w.Set(42))
	test.ExpectEquality(t, w.Get().(string), "42")

	test.ExpectSuccess(t, dsk.Save())
	expectFile(t, fn, "foo :: bar\nqux :: 42\n")
}

func TestInt(t *testing.T) {
	dsk, fn := newDisk(t)

	var v, w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, w.Set("99"))

	test.ExpectSuccess(t, dsk.Save())
	expectFile(t, fn, "number :: 10\nnumberB :: 99\n")

	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
	test.ExpectEquality(t, v.Get().(int), 10)
}

func TestFloat(t *testing.T) {
	dsk, fn := newDisk(t)

	var v prefs.Float
	test.ExpectEquality(t, v.String(), "0.000")
	test.ExpectSuccess(t, dsk.Add("fraction", &v))

	test.ExpectSuccess(t, v.Set("0.25"))
	test.ExpectApproximate(t, v.Get().(float64), 0.25, 0.0001)
	test.ExpectSuccess(t, v.Set(2))
	test.ExpectApproximate(t, v.Get().(float64), 2.0, 0.0001)
	test.ExpectFailure(t, v.Set(true))

	test.ExpectSuccess(t, dsk.Save())
	expectFile(t, fn, "fraction :: 2.000\n")
}

func TestHooks(t *testing.T) {
	var v prefs.Int

	var post []int
	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) < 0 {
			return errors.New("negative")
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		post = append(post, nv.(int))
		return nil
	})

	test.ExpectSuccess(t, v.Set(3))
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 3)

	// the hooks are called even if the value doesn't change
	test.ExpectSuccess(t, v.Set("3"))
	test.ExpectEquality(t, len(post), 2)

	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Get().(int), 0)
}

// saving a second Disk instance using the same file doesn't clobber the
// entries of the first
func TestSharedFile(t *testing.T) {
	dsk, fn := newDisk(t)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, dsk.Save())

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.ExpectSuccess(t, dsk.Save())

	expectFile(t, fn, "foo :: bar\ntest :: true\n")
}

// defunct entries already in the file are removed on the next save. entries
// that aren't known to the disk instance are preserved.
func TestDefunctAndUnknown(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	err := os.WriteFile(fn, []byte(fmt.Sprintf("%s\ngraphics.vsync :: true\nzzz :: 1\n", prefs.WarningBoilerPlate)), 0o600)
	test.DemandSuccess(t, err)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("graphics.mode", &v))
	test.ExpectSuccess(t, v.Set(3))
	test.ExpectSuccess(t, dsk.Save())

	expectFile(t, fn, "graphics.mode :: 3\nzzz :: 1\n")
}

func TestLoadAndCommandLine(t *testing.T) {
	dsk, fn := newDisk(t)

	// the file doesn't exist yet so loading with saveOnFail creates it
	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, v.Set(5))
	test.ExpectSuccess(t, dsk.Load(true))
	expectFile(t, fn, "number :: 5\n")

	// a fresh disk instance with a command line override for the key
	prefs.PushCommandLineStack("number::7; unused::1")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &w))
	test.ExpectEquality(t, w.Get().(int), 7)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unused::1")

	// duplicate keys and keys with spaces are rejected
	test.ExpectFailure(t, dsk.Add("number", &w))
	test.ExpectFailure(t, dsk.Add("num ber", &w))
}
