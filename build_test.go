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

//go:build !leaf4x4

package hlife

import (
	"errors"
	"testing"
)

func TestBuildExamples(t *testing.T) {
	t.Parallel()

	alive := rleToken{run: 1, kind: rleCell, state: aliveCell}
	dead := rleToken{run: 1, kind: rleCell, state: deadCell}
	endLine := rleToken{run: 1, kind: rleEndLine}
	endBlock := rleToken{run: 1, kind: rleEndBlock}

	WithNew(func(hl *Hashlife) {
		got, err := hl.blockFromRLE([]rleToken{dead, alive, endLine, alive, endBlock})
		if err != nil || got != Leaf(0x12) {
			t.Errorf("bo$o! built %v, %v; want leaf 0x12", got, err)
		}

		node := hl.NodeBlock([2][2]Block{
			{Leaf(0x03), Leaf(0x01)},
			{Leaf(0x01), Leaf(0x00)},
		})
		got, err = hl.blockFromRLE([]rleToken{
			{run: 3, kind: rleCell, state: aliveCell}, endLine, endLine, alive, endBlock,
		})
		if err != nil || got != node {
			t.Errorf("3o$$o! built %v, %v; want %v", got, err, node)
		}

		got, err = hl.blockFromRLE([]rleToken{endBlock})
		if err != nil || got != Leaf(0x00) {
			t.Errorf("! built %v, %v; want the dead leaf", got, err)
		}
		got, err = hl.blockFromRLE([]rleToken{endLine, endBlock})
		if err != nil || got != Leaf(0x00) {
			t.Errorf("$! built %v, %v; want the dead leaf", got, err)
		}
		got, err = hl.blockFromRLE([]rleToken{dead, dead, endLine, dead, dead, endBlock})
		if err != nil || got != Leaf(0x00) {
			t.Errorf("bb$bb! built %v, %v; want the dead leaf", got, err)
		}
	})
}

func TestBlockFromBytes(t *testing.T) {
	t.Parallel()

	WithNew(func(hl *Hashlife) {
		if _, err := hl.BlockFromBytes([]byte("bbo$boo$bbo!")); err != nil {
			t.Errorf("plain body: %v", err)
		}
		got, err := hl.BlockFromBytes([]byte("$!"))
		if err != nil || got != Leaf(0) {
			t.Errorf("$! parsed to %v, %v", got, err)
		}
		got, err = hl.BlockFromBytes([]byte("x = 2, y = 2, rule = B3/S23\nbb$bb!"))
		if err != nil || got != Leaf(0) {
			t.Errorf("headed blank parsed to %v, %v", got, err)
		}

		// Missing the end-of-pattern mark.
		if _, err := hl.BlockFromBytes([]byte("3o")); !errors.Is(err, ErrInvalidPatternEncoding) {
			t.Errorf("unterminated body: %v", err)
		}
		doubleHeader := "x=2,y=2,rule=B3/S23\nx=2,y=2,rule=B3/S23\nbb$bb!"
		if _, err := hl.BlockFromBytes([]byte(doubleHeader)); !errors.Is(err, ErrInvalidPatternEncoding) {
			t.Errorf("double header: %v", err)
		}
	})
}

func TestBlockFromMC(t *testing.T) {
	t.Parallel()

	WithNew(func(hl *Hashlife) {
		text := "[M2] (test)\n" +
			"#R B3/S23\n" +
			".*$..*$***$$$$$$\n" +
			"4 1 0 0 1\n"
		got, err := hl.BlockFromBytes([]byte(text))
		if err != nil {
			t.Fatal(err)
		}

		glider := mustParse(t, hl, "bo$2bo$3o!")
		blank2 := hl.Blank(2)
		corner := hl.NodeBlock([2][2]Block{
			{glider, blank2},
			{blank2, blank2},
		})
		blank3 := hl.Blank(3)
		want := hl.NodeBlock([2][2]Block{
			{corner, blank3},
			{blank3, corner},
		})
		if got != want {
			t.Errorf("macrocell build mismatch:\ngot %swant %s",
				FormatRLE(got), FormatRLE(want))
		}
	})
}

func TestBlockFromMCErrors(t *testing.T) {
	t.Parallel()

	WithNew(func(hl *Hashlife) {
		cases := []string{
			"[M2]\n",                       // no body
			"[M2]\n4 1 0 0 1\n",            // forward reference
			"[M2]\n.*$..*$***$$$$$$\n3 1 0 0 0\n", // depth too shallow
			"[M2]\n.*$..*$***$$$$$$\n5 1 0 0 0\n", // child size mismatch
		}
		for _, text := range cases {
			if _, err := hl.BlockFromBytes([]byte(text)); !errors.Is(err, ErrInvalidPatternEncoding) {
				t.Errorf("%q: err = %v, want ErrInvalidPatternEncoding", text, err)
			}
		}
	})
}
