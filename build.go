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

// grid is a cell matrix backed by one bitset per row. Rows may be shorter
// than side, or missing entirely; cells past a row's populated bits read
// as dead.
type grid struct {
	side int
	rows []*bitset.BitSet
}

func newGrid(side int) *grid {
	rows := make([]*bitset.BitSet, side)
	for i := range rows {
		rows[i] = bitset.New(uint(side))
	}
	return &grid{side: side, rows: rows}
}

func (g *grid) get(y, x int) cellState {
	if y >= len(g.rows) || g.rows[y] == nil {
		return deadCell
	}
	if g.rows[y].Test(uint(x)) {
		return aliveCell
	}
	return deadCell
}

func (g *grid) set(y, x int) {
	g.rows[y].Set(uint(x))
}

// BlockFromBytes parses pattern text, in either the run-length-encoded or
// the macrocell format, into a block of this engine. The block is sized to
// the smallest enclosing power of two with the pattern anchored at the
// north-west corner.
func (hl *Hashlife) BlockFromBytes(data []byte) (Block, error) {
	out, err := parseFile(data)
	if err != nil {
		return nil, err
	}
	if out.mc != nil {
		return hl.blockFromMC(out.mc)
	}
	return hl.blockFromRLE(out.rle)
}

// blockFromRLE expands the token stream into a grid and builds the block.
func (hl *Hashlife) blockFromRLE(tokens []rleToken) (Block, error) {
	rows, widths, err := tokensToRows(tokens)
	if err != nil {
		return nil, err
	}
	maxSide := len(rows)
	for _, w := range widths {
		if w > maxSide {
			maxSide = w
		}
	}
	side := LeafSize
	if maxSide > side {
		side = nextPow2(maxSide)
	}
	g := &grid{side: side, rows: rows}
	depth := 0
	for LeafSize<<depth < side {
		depth++
	}
	return hl.blockFromGrid(depth, g, 0, 0), nil
}

// tokensToRows plays the token stream into per-row bitsets, up to and
// including the end-of-pattern token. A stream with no such token is
// malformed.
func tokensToRows(tokens []rleToken) ([]*bitset.BitSet, []int, error) {
	var rows []*bitset.BitSet
	var widths []int
	cur := bitset.New(8)
	curWidth := 0
	for _, tok := range tokens {
		switch tok.kind {
		case rleCell:
			if tok.state == aliveCell {
				for i := 0; i < tok.run; i++ {
					cur.Set(uint(curWidth + i))
				}
			}
			curWidth += tok.run
		case rleEndLine:
			rows = append(rows, cur)
			widths = append(widths, curWidth)
			cur, curWidth = bitset.New(8), 0
			for i := 1; i < tok.run; i++ {
				rows = append(rows, bitset.New(8))
				widths = append(widths, 0)
			}
		case rleEndBlock:
			rows = append(rows, cur)
			widths = append(widths, curWidth)
			return rows, widths, nil
		}
	}
	return nil, nil, ErrInvalidPatternEncoding
}

// blockFromGrid builds the block of the given depth above the leaves
// whose north-west corner sits at (y0, x0) in the grid.
func (hl *Hashlife) blockFromGrid(depth int, g *grid, y0, x0 int) Block {
	if depth == 0 {
		var leaf Leaf
		for y := 0; y < LeafSize; y++ {
			for x := 0; x < LeafSize; x++ {
				if g.get(y0+y, x0+x) == aliveCell {
					leaf |= 1 << (y*leafYShift + x*leafXShift)
				}
			}
		}
		return leaf
	}
	slen := LeafSize << (depth - 1)
	return hl.NodeBlock(make2x2(func(i, j int) Block {
		return hl.blockFromGrid(depth-1, g, y0+i*slen, x0+j*slen)
	}))
}
