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

//go:build leaf4x4

package hlife

const (
	// LgLeafSize is the base-2 logarithm of LeafSize.
	LgLeafSize = 2

	leafMask Leaf = 0xffff

	// quarterLeafMask covers the top-left 2x2 quadrant.
	quarterLeafMask Leaf = 0x33
)

// evolveLeaf is Evolve specialized to a node whose corners are all leaves:
// the 4x4 center of the 8x8 square after two generations, computed by
// composing the 16-bit table over overlapping windows.
func (hl *Hashlife) evolveLeaf(leafs [2][2]Leaf) Leaf {
	board := packBoard(leafs)

	// One generation on the 3x3 grid of 4x4 windows at stride 2. The
	// results cover the interior 6x6, at rows and columns 1 through 6.
	var mid uint64
	for gy := 0; gy < 3; gy++ {
		for gx := 0; gx < 3; gx++ {
			out := hl.lookupWindow(board, 2*gy, 2*gx)
			for r := 0; r < 2; r++ {
				for c := 0; c < 2; c++ {
					bit := uint64(out>>(4*r+c)) & 1
					mid |= bit << (8*(2*gy+1+r) + 2*gx + 1 + c)
				}
			}
		}
	}

	return hl.center4After1(mid)
}

// stepLeaf handles StepPow2 below the big-step cutoff on a node of leaves:
// a single generation on the 8x8 square, returning the center 4x4 leaf.
func (hl *Hashlife) stepLeaf(node *Node, lognsteps int) Block {
	if lognsteps != 0 {
		panic("hlife: step below leaf resolution")
	}
	leafs := make2x2(func(y, x int) Leaf { return node.corners[y][x].(Leaf) })
	return hl.center4After1(packBoard(leafs))
}

// packBoard lays the four leaves out as an 8x8 bitboard with the cell at
// (y, x) in bit 8*y + x.
func packBoard(leafs [2][2]Leaf) uint64 {
	var board uint64
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			shift := (y % 4) * leafYShift
			shift += (x % 4) * leafXShift
			bit := uint64(leafs[y/4][x/4]>>shift) & 1
			board |= bit << (8*y + x)
		}
	}
	return board
}

// lookupWindow evolves the 4x4 window of board with north-west corner
// (y, x) by one generation, returning the 2x2 center packed at bits 0, 1,
// 4 and 5.
func (hl *Hashlife) lookupWindow(board uint64, y, x int) byte {
	hl.leafLookups++
	entry := 0
	for r := 0; r < 4; r++ {
		entry |= int((board>>(8*(y+r)+x))&0xf) << (4 * r)
	}
	return hl.evolveTable[entry]
}

// center4After1 advances board one generation and returns the center 4x4
// (rows and columns 2 through 5) as a leaf.
func (hl *Hashlife) center4After1(board uint64) Leaf {
	var res Leaf
	for gy := 0; gy < 2; gy++ {
		for gx := 0; gx < 2; gx++ {
			out := hl.lookupWindow(board, 1+2*gy, 1+2*gx)
			for r := 0; r < 2; r++ {
				for c := 0; c < 2; c++ {
					bit := Leaf(out>>(4*r+c)) & 1
					shift := (2*gy + r) * leafYShift
					shift += (2*gx + c) * leafXShift
					res |= bit << shift
				}
			}
		}
	}
	return res
}
