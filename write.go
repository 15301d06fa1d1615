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
	"fmt"
	"strconv"
	"strings"
)

// FormatRLE serializes a block to run-length-encoded text with a size
// header. Trailing dead cells and rows are trimmed, so the output records
// the pattern's position within the block but not the block size; parsing
// it back yields the same pattern up to dead padding. Panics if the block
// is ill-formed.
func FormatRLE(b Block) string {
	if _, err := b.lgSizeVerified(); err != nil {
		panic(err)
	}
	g := newGrid(1 << b.LgSize())
	fillGrid(b, g, 0, 0)
	tokens, xsize, ysize := gridToRLE(g)
	return rleString(tokens, xsize, ysize)
}

func fillGrid(b Block, g *grid, y0, x0 int) {
	switch b := b.(type) {
	case Leaf:
		for y := 0; y < LeafSize; y++ {
			for x := 0; x < LeafSize; x++ {
				if (b>>(y*leafYShift+x*leafXShift))&1 != 0 {
					g.set(y0+y, x0+x)
				}
			}
		}
	case *Node:
		half := 1 << (b.lgSize - 1)
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				fillGrid(b.corners[y][x], g, y0+y*half, x0+x*half)
			}
		}
	}
}

// gridToRLE run-length encodes the grid. Row terminators are deferred
// until the next populated row so that trailing blank rows vanish, and a
// row's trailing dead run is never emitted.
func gridToRLE(g *grid) (tokens []rleToken, xsize, ysize int) {
	blankLines := 0
	ysize = 1
	for y := 0; y < g.side; y++ {
		xlen := 0
		runVal := deadCell
		runLen := 0
		lineBlank := true
		for x := 0; x < g.side; x++ {
			state := g.get(y, x)
			if state == runVal {
				runLen++
				continue
			}
			if lineBlank && blankLines > 0 {
				tokens = append(tokens, rleToken{run: blankLines, kind: rleEndLine})
				ysize += blankLines
				blankLines = 1
				lineBlank = false
			}
			if runLen > 0 {
				tokens = append(tokens, rleToken{run: runLen, kind: rleCell, state: runVal})
				xlen += runLen
			}
			runVal = state
			runLen = 1
		}
		if runVal != deadCell {
			tokens = append(tokens, rleToken{run: runLen, kind: rleCell, state: runVal})
			xlen += runLen
		}
		if lineBlank {
			blankLines++
		}
		if xlen > xsize {
			xsize = xlen
		}
	}
	tokens = append(tokens, rleToken{run: 1, kind: rleEndBlock})
	return tokens, xsize, ysize
}

func rleString(tokens []rleToken, xsize, ysize int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "x = %d, y = %d, rule = B3/S23\n", xsize, ysize)
	lineLen := 0
	for _, tok := range tokens {
		s := tokenString(tok)
		if lineLen+len(s) > 79 {
			sb.WriteByte('\n')
			lineLen = 0
		}
		lineLen += len(s)
		sb.WriteString(s)
	}
	if lineLen > 0 {
		sb.WriteByte('\n')
	}
	return sb.String()
}

func tokenString(tok rleToken) string {
	var s string
	if tok.run != 1 {
		s = strconv.Itoa(tok.run)
	}
	switch {
	case tok.kind == rleCell && tok.state == aliveCell:
		return s + "o"
	case tok.kind == rleCell:
		return s + "b"
	case tok.kind == rleEndLine:
		return s + "$"
	default:
		return s + "!"
	}
}
