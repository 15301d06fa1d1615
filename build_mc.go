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

import "github.com/bits-and-blooms/bitset"

// mcLeafLgSize is the lg size of a macrocell leaf line, which is always an
// 8x8 bitmap regardless of the engine's leaf size.
const mcLeafLgSize = 3

// blockFromMC assembles the blocks listed in a macrocell body. Each line
// may refer to earlier lines by 1-based index, with index 0 a blank block
// of the appropriate size; the last line is the root.
func (hl *Hashlife) blockFromMC(lines []mcLine) (Block, error) {
	table := make([]Block, 0, len(lines))
	for _, line := range lines {
		var b Block
		if line.node == nil {
			b = hl.mcLeafBlock(line.leaf)
		} else {
			n := line.node
			if n.depth <= mcLeafLgSize {
				return nil, ErrInvalidPatternEncoding
			}
			corners, err := tryMake2x2(func(y, x int) (Block, error) {
				var index int
				switch {
				case y == 0 && x == 0:
					index = n.b0
				case y == 0 && x == 1:
					index = n.b1
				case y == 1 && x == 0:
					index = n.b2
				default:
					index = n.b3
				}
				if index == 0 {
					return hl.Blank(n.depth - 1), nil
				}
				if index > len(table) {
					return nil, ErrInvalidPatternEncoding
				}
				child := table[index-1]
				if child.LgSize() != n.depth-1 {
					return nil, ErrInvalidPatternEncoding
				}
				return child, nil
			})
			if err != nil {
				return nil, err
			}
			b = hl.NodeBlock(corners)
		}
		table = append(table, b)
	}
	if len(table) == 0 {
		return nil, ErrInvalidPatternEncoding
	}
	return table[len(table)-1], nil
}

// mcLeafBlock builds the 8x8 block described by a leaf line's dot/star
// rows.
func (hl *Hashlife) mcLeafBlock(leaf [][]cellState) Block {
	side := 1 << mcLeafLgSize
	g := &grid{side: side, rows: make([]*bitset.BitSet, len(leaf))}
	for y, row := range leaf {
		g.rows[y] = bitset.New(uint(side))
		for x, state := range row {
			if state == aliveCell {
				g.set(y, x)
			}
		}
	}
	return hl.blockFromGrid(mcLeafLgSize-LgLeafSize, g, 0, 0)
}
