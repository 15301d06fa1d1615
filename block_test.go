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

package hlife

import (
	"testing"
	"testing/quick"
)

func TestInternCanonical(t *testing.T) {
	t.Parallel()

	WithNew(func(hl *Hashlife) {
		check := func(a, b, c, d uint16) bool {
			corners := [2][2]Block{
				{Leaf(a) & leafMask, Leaf(b) & leafMask},
				{Leaf(c) & leafMask, Leaf(d) & leafMask},
			}
			return hl.Node(corners) == hl.Node(corners)
		}
		if err := quick.Check(check, nil); err != nil {
			t.Error(err)
		}
	})
}

func TestInternDeep(t *testing.T) {
	t.Parallel()

	WithNew(func(hl *Hashlife) {
		mk := func() Block {
			leafs := [2][2]Block{
				{Leaf(0x01), Leaf(0x02) & leafMask},
				{Leaf(0x10), Leaf(0x11)},
			}
			inner := hl.NodeBlock(leafs)
			return hl.NodeBlock(make2x2(func(y, x int) Block { return inner }))
		}
		if mk() != mk() {
			t.Error("structurally equal two-level blocks not canonicalized")
		}
	})
}

func TestInternDistinctSlots(t *testing.T) {
	t.Parallel()

	// The same four children in different positions are different nodes.
	WithNew(func(hl *Hashlife) {
		a := Leaf(0x01)
		b := Leaf(0x02) & leafMask
		c := Leaf(0x10)
		d := Leaf(0x30)
		n0 := hl.Node([2][2]Block{{a, c}, {b, d}})
		n1 := hl.Node([2][2]Block{{a, b}, {c, d}})
		if n0 == n1 {
			t.Error("nodes with permuted children interned to one record")
		}
	})
}

func TestTryNode(t *testing.T) {
	t.Parallel()

	WithNew(func(hl *Hashlife) {
		corners := [2][2]Block{
			{Leaf(0x01), Leaf(0x03)},
			{Leaf(0x00), Leaf(0x02) & leafMask},
		}
		n, err := hl.TryNode(corners)
		if err != nil {
			t.Fatalf("TryNode: %v", err)
		}
		if n != hl.Node(corners) {
			t.Error("TryNode and Node disagree on the interned record")
		}
	})
}

func TestInternIllFormed(t *testing.T) {
	t.Parallel()

	WithNew(func(hl *Hashlife) {
		defer func() {
			if recover() == nil {
				t.Error("interning mismatched children did not panic")
			}
		}()
		big := hl.NodeBlock(make2x2(func(y, x int) Block { return Leaf(0) }))
		hl.Node([2][2]Block{
			{big, Leaf(0)},
			{Leaf(0), Leaf(0)},
		})
	})
}

func TestLgSizeVerified(t *testing.T) {
	t.Parallel()

	WithNew(func(hl *Hashlife) {
		blank := hl.Blank(LgLeafSize + 2)
		lg, err := blank.lgSizeVerified()
		if err != nil {
			t.Fatalf("lgSizeVerified: %v", err)
		}
		if lg != LgLeafSize+2 {
			t.Errorf("lgSizeVerified = %d, want %d", lg, LgLeafSize+2)
		}

		// A hand-built record with mismatched children must be caught.
		bad := &Node{corners: [2][2]Block{
			{blank, Leaf(0)},
			{Leaf(0), Leaf(0)},
		}}
		if _, err := bad.lgSizeVerified(); err == nil {
			t.Error("ill-formed node passed verification")
		}
	})
}

func TestNodeAccessors(t *testing.T) {
	t.Parallel()

	WithNew(func(hl *Hashlife) {
		corners := [2][2]Block{
			{Leaf(0x01), Leaf(0x00)},
			{Leaf(0x10), Leaf(0x11)},
		}
		n := hl.Node(corners)
		if n.Corners() != corners {
			t.Error("Corners does not round-trip the interned children")
		}
		if n.LgSize() != LgLeafSize+1 {
			t.Errorf("LgSize = %d, want %d", n.LgSize(), LgLeafSize+1)
		}
	})
}
