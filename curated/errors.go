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

package curated

import (
	"errors"
	"fmt"
	"strings"
)

// curated is an implementation of the go language error interface. The
// pattern is kept so that errors can be identified without comparing
// formatted strings.
type curated struct {
	pattern string
	values  []any
}

// Errorf creates a new curated error. Formatting is deferred until Error() is
// called.
func Errorf(pattern string, values ...any) error {
	return curated{
		pattern: pattern,
		values:  values,
	}
}

// Error implements the go language error interface. A prefix that is repeated
// immediately is removed, so wrapping an error from the same package doesn't
// stutter.
//
//	prefs: prefs: key (foo bar) contains white space
//
// becomes
//
//	prefs: key (foo bar) contains white space
func (er curated) Error() string {
	s := fmt.Errorf(er.pattern, er.values...).Error()

	head, rest, ok := strings.Cut(s, ": ")
	if ok && (rest == head || strings.HasPrefix(rest, head+": ")) {
		return rest
	}

	return s
}

// Unwrap returns the errors in the list of values. This allows curated errors
// to be used with errors.Is() and errors.As() from the standard library.
func (er curated) Unwrap() []error {
	var errs []error
	for _, v := range er.values {
		if e, ok := v.(error); ok {
			errs = append(errs, e)
		}
	}
	return errs
}

// IsAny returns true if err is, or wraps, a curated error.
func IsAny(err error) bool {
	var c curated
	return errors.As(err, &c)
}

// Is returns true if the first curated error found in err was created with
// the pattern.
func Is(err error, pattern string) bool {
	var c curated
	if !errors.As(err, &c) {
		return false
	}
	return c.pattern == pattern
}

// Has returns true if a curated error created with the pattern is anywhere in
// the error chain.
func Has(err error, pattern string) bool {
	var c curated
	if !errors.As(err, &c) {
		return false
	}
	if c.pattern == pattern {
		return true
	}
	for _, e := range c.Unwrap() {
		if Has(e, pattern) {
			return true
		}
	}
	return false
}
