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

// Cell layout of a 2x2 leaf:
//
//	01
//	45
const (
	// LgLeafSize is the base-2 logarithm of LeafSize.
	LgLeafSize = 1

	leafMask Leaf = 0x33

	// quarterLeafMask covers the top-left 1x1 quadrant.
	quarterLeafMask Leaf = 0x01
)

// evolveLeaf is Evolve specialized to a node whose corners are all leaves:
// the 2x2 center of the 4x4 square after one generation.
func (hl *Hashlife) evolveLeaf(leafs [2][2]Leaf) Leaf {
	hl.leafLookups++
	entry := int(leafs[0][0]) |
		int(leafs[0][1])<<2 |
		int(leafs[1][0])<<8 |
		int(leafs[1][1])<<10
	return Leaf(hl.evolveTable[entry])
}

// stepLeaf handles StepPow2 below the big-step cutoff on a node of leaves.
// With 2x2 leaves such a node has lg size 2, so every admissible step count
// takes the Evolve path first and this is unreachable.
func (hl *Hashlife) stepLeaf(node *Node, lognsteps int) Block {
	panic("hlife: step below leaf resolution")
}
