// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

package hlife_test

import (
	"os"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/itaibn/hlife"
)

// The instance files pair an input pattern with its expected result after
// a fixed number of generations.
var instances = []struct {
	in, out string
	steps   uint64
}{
	{"testdata/in001.rle", "testdata/out001.rle", 175},
}

func TestInstances(t *testing.T) {
	t.Parallel()

	for _, inst := range instances {
		inBytes, err := os.ReadFile(inst.in)
		qt.Assert(t, qt.IsNil(err))
		outBytes, err := os.ReadFile(inst.out)
		qt.Assert(t, qt.IsNil(err))

		hlife.WithNew(func(hl *hlife.Hashlife) {
			inBlock, err := hl.BlockFromBytes(inBytes)
			qt.Assert(t, qt.IsNil(err))
			outBlock, err := hl.BlockFromBytes(outBytes)
			qt.Assert(t, qt.IsNil(err))

			inPattern, err := hlife.NewPattern(hl, inBlock)
			qt.Assert(t, qt.IsNil(err))
			outPattern, err := hlife.NewPattern(hl, outBlock)
			qt.Assert(t, qt.IsNil(err))

			inPattern.Step(inst.steps)
			qt.Assert(t, qt.IsTrue(inPattern.Equal(outPattern)),
				qt.Commentf("%s stepped %d:\n%s", inst.in, inst.steps,
					hlife.FormatRLE(inPattern.Block())))
		})
	}
}

func TestInstanceRoundTrip(t *testing.T) {
	t.Parallel()

	inBytes, err := os.ReadFile("testdata/in001.rle")
	qt.Assert(t, qt.IsNil(err))

	hlife.WithNew(func(hl *hlife.Hashlife) {
		block, err := hl.BlockFromBytes(inBytes)
		qt.Assert(t, qt.IsNil(err))
		reparsed, err := hl.BlockFromBytes([]byte(hlife.FormatRLE(block)))
		qt.Assert(t, qt.IsNil(err))

		p0, err := hlife.NewPattern(hl, block)
		qt.Assert(t, qt.IsNil(err))
		p1, err := hlife.NewPattern(hl, reparsed)
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.IsTrue(p0.Equal(p1)))
	})
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	hlife.WithNew(func(hl *hlife.Hashlife) {
		for _, bad := range []string{"", "3o", "what is this", "x = 1, y = 1, rule = B3/S23"} {
			_, err := hl.BlockFromBytes([]byte(bad))
			qt.Assert(t, qt.ErrorIs(err, hlife.ErrInvalidPatternEncoding),
				qt.Commentf("input %q", bad))
		}
	})
}
