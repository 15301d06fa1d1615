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
	"errors"
	"math/big"
)

// ErrPatternTooSmall reports an attempt to build a pattern from a bare
// leaf; a pattern root must be a node.
var ErrPatternTooSmall = errors.New("hlife: pattern root must be a node")

// Pattern is an infinite plane of cells which is dead in all but a finite
// area. It wraps a root block together with deadSpace, a lower bound on
// the all-dead margin inside each side of the root. The root grows on
// demand, so a pattern can be advanced any number of generations.
type Pattern struct {
	hl        *Hashlife
	block     Block
	deadSpace *big.Int
}

// NewPattern wraps a root block from hl into a pattern with no recorded
// dead margin.
func NewPattern(hl *Hashlife, block Block) (*Pattern, error) {
	if _, ok := block.(*Node); !ok {
		return nil, ErrPatternTooSmall
	}
	return &Pattern{hl: hl, block: block, deadSpace: new(big.Int)}, nil
}

// Block returns the current root.
func (p *Pattern) Block() Block {
	return p.block
}

// Step advances the pattern exactly nsteps generations.
func (p *Pattern) Step(nsteps uint64) {
	p.StepBig(new(big.Int).SetUint64(nsteps))
}

// StepBig advances the pattern exactly nsteps generations, decomposing
// nsteps into powers of two from the least significant bit upward.
func (p *Pattern) StepBig(nsteps *big.Int) {
	if nsteps.Sign() < 0 {
		panic("hlife: negative step count")
	}
	for k := 0; k < nsteps.BitLen(); k++ {
		if nsteps.Bit(k) == 1 {
			p.stepPow2(k)
		}
	}
}

// stepPow2 advances the pattern 2^k generations. The root is grown first
// so that the step cannot leak live cells past the recorded dead margin.
func (p *Pattern) stepPow2(k int) {
	newLength := new(big.Int).Lsh(big.NewInt(1), uint(k+1))
	newLength.Add(newLength, p.length())
	lgNeeded := log2Upper(newLength) + 1
	for p.block.LgSize() < lgNeeded {
		p.encase()
	}
	lgSize := p.block.LgSize()
	p.block = p.hl.StepPow2(p.block.(*Node), k)
	// The result is the size-halved center of the old root: each side
	// sheds a quarter of the old side in frame and the live region eats
	// another 2^k of margin.
	p.deadSpace.Sub(p.deadSpace, new(big.Int).Lsh(big.NewInt(1), uint(lgSize-2)))
	p.deadSpace.Sub(p.deadSpace, new(big.Int).Lsh(big.NewInt(1), uint(k)))
}

// length returns the side length of the live region: the root side minus
// the dead margin on both sides.
func (p *Pattern) length() *big.Int {
	l := new(big.Int).Lsh(big.NewInt(1), uint(p.block.LgSize()))
	return l.Sub(l, new(big.Int).Lsh(p.deadSpace, 1))
}

// encase doubles the root, keeping the pattern in place: the old root
// becomes the center of the new one and the margin grows by half the old
// side.
func (p *Pattern) encase() {
	lgSize := p.block.LgSize()
	p.block = encase(p.hl, p.block)
	p.deadSpace.Add(p.deadSpace, new(big.Int).Lsh(big.NewInt(1), uint(lgSize-1)))
}

// Equal reports whether two patterns from the same engine have the same
// cells, ignoring any amount of surrounding dead space.
func (p *Pattern) Equal(other *Pattern) bool {
	a, b := p.block, other.block
	if a.LgSize() > b.LgSize() {
		a, b = b, a
	}
	for a.LgSize() < b.LgSize() {
		a = encase(p.hl, a)
	}
	return a == b
}

// encase embeds a node as the center of a blank block of twice the side:
// a 2x2 of fresh nodes whose middle quadrants are the children of the
// original and whose outer twelve quadrants are blank.
func encase(hl *Hashlife, b Block) Block {
	n := b.(*Node)
	return hl.NodeBlock(make2x2(func(y0, x0 int) Block {
		return hl.NodeBlock(make2x2(func(y1, x1 int) Block {
			x := 2*x0 + x1
			y := 2*y0 + y1
			if 0 < x && x < 3 && 0 < y && y < 3 {
				return n.corners[y-1][x-1]
			}
			return hl.Blank(b.LgSize() - 1)
		}))
	}))
}
