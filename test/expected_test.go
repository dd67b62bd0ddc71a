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

package test_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jetsetilly/gopherst/test"
)

func TestExpectations(t *testing.T) {
	var nilError error

	for i, v := range []any{true, nilError, nil} {
		test.ExpectEquality(t, test.ExpectSuccess(t, v, i), true, i)
	}
	for i, v := range []any{false, errors.New("failure"), fmt.Errorf("wrapped: %w", errors.ErrUnsupported)} {
		test.ExpectEquality(t, test.ExpectFailure(t, v, i), true, i)
	}
}

func TestComparisons(t *testing.T) {
	type pt struct{ x, y int }

	test.ExpectSuccess(t, test.ExpectEquality(t, pt{1, 2}, pt{1, 2}))
	test.ExpectSuccess(t, test.ExpectInequality(t, pt{1, 2}, pt{2, 1}))
	test.ExpectSuccess(t, test.ExpectEquality(t, "graphics", "graph"+"ics"))
	test.ExpectSuccess(t, test.ExpectInequality(t, uint32(0x80), uint32(0x00)))
}

// the tolerance is a fraction of the expected value
func TestApproximate(t *testing.T) {
	test.ExpectSuccess(t, test.ExpectApproximate(t, 60.0, 59.5, 0.01))
	test.ExpectSuccess(t, test.ExpectApproximate(t, 1050, 1000, 0.05))
	test.ExpectSuccess(t, test.ExpectApproximate(t, 950, 1000, 0.05))
	test.ExpectSuccess(t, test.ExpectApproximate(t, -49.0, -50.0, 0.02))
	test.ExpectSuccess(t, test.ExpectApproximate(t, 0, 0, 0))
}

func TestDemand(t *testing.T) {
	test.DemandSuccess(t, true)
	test.DemandFailure(t, errors.New("failure"))
	test.DemandEquality(t, 50, 100/2)
	test.DemandImplements[fmt.Stringer](t, &test.CompareWriter{}, nil)
}
