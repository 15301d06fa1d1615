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

// Package hlife evolves two-state outer-totalistic cellular automata with
// the Hashlife algorithm: quadtree blocks are hash-consed into a canonical
// form and each node memoizes the future of its center, so repeated
// structure across space and time is computed once.
package hlife

import "math/rand"

// Hashlife owns all state for one run of the algorithm: the block cache,
// the leaf evolution table and the blank-block cache. It is not safe for
// concurrent use. Create one with WithNew.
type Hashlife struct {
	table       blockCache
	evolveTable *[1 << 16]byte
	blankCache  []Block

	// leafLookups counts leaf-level evolutions, exposing memoization
	// behavior to tests.
	leafLookups uint64
}

// WithNew creates a fresh engine and passes it to f. Blocks and nodes
// obtained from the engine are bound to it: they are only meaningful while
// f runs and must not be retained after it returns.
func WithNew(f func(hl *Hashlife)) {
	hl := &Hashlife{
		table:       blockCache{nodes: make(map[uint64]*Node)},
		evolveTable: smallEvolveTable(),
		blankCache:  []Block{Leaf(0)},
	}
	f(hl)
}

// Node interns a node with the given corners, returning the unique record
// for that corner tuple. All four corners must have equal sizes. Node
// panics on a fingerprint collision; TryNode reports it as an error.
func (hl *Hashlife) Node(corners [2][2]Block) *Node {
	n, err := hl.table.intern(corners)
	if err != nil {
		panic(err)
	}
	return n
}

// TryNode is Node returning ErrHashCollision instead of panicking.
func (hl *Hashlife) TryNode(corners [2][2]Block) (*Node, error) {
	return hl.table.intern(corners)
}

// NodeBlock interns a node with the given corners and returns it as a
// Block.
func (hl *Hashlife) NodeBlock(corners [2][2]Block) Block {
	return hl.Node(corners)
}

// Evolve advances a 2^(n+1)-sided node 2^(n-1) generations and returns the
// 2^n-sided block at its center. This is the main component of the
// Hashlife algorithm; results are memoized on the node, so evolving the
// same node twice does no work the second time.
func (hl *Hashlife) Evolve(node *Node) Block {
	if node.future != nil {
		return node.future
	}
	var res Block
	if node.nodeOfLeafs() {
		res = hl.evolveLeaf(make2x2(func(y, x int) Leaf {
			return node.corners[y][x].(Leaf)
		}))
	} else {
		intermediates := make3x3(func(y, x int) Block {
			return hl.Evolve(hl.Subblock(node, y, x).(*Node))
		})
		res = hl.evolveFinish(intermediates)
	}
	node.future = res
	return res
}

// evolveFinish advances a (3*2^n)-sided square, given as a 3x3 of
// 2^n-sided blocks each already advanced 2^(n-1) generations, another
// 2^(n-1) generations and returns the 2^(n+1)-sided block in the middle.
func (hl *Hashlife) evolveFinish(parts [3][3]Block) Block {
	return hl.NodeBlock(make2x2(func(i, j int) Block {
		return hl.Evolve(hl.Node(make2x2(func(y, x int) Block {
			return parts[i+y][j+x]
		})))
	}))
}

// Subblock returns the 2^n-sided sub-block of a 2^(n+1)-sided node whose
// north-west corner is y*2^(n-1) south and x*2^(n-1) east of the node's
// north-west corner, for y, x in {0, 1, 2}. Even coordinates name a child
// directly; the rest are assembled from pieces of adjacent children.
func (hl *Hashlife) Subblock(node *Node, y, x int) Block {
	if y < 0 || y > 2 || x < 0 || x > 2 {
		panic("hlife: subblock coordinates out of range")
	}
	switch {
	case (y|x)&1 == 0:
		return node.corners[y/2][x/2]
	case node.nodeOfLeafs():
		return hl.subblockLeaf(node, y, x)
	default:
		return hl.subblockNode(node, y, x)
	}
}

func (hl *Hashlife) subblockNode(node *Node, y, x int) Block {
	return hl.NodeBlock(make2x2(func(j, i int) Block {
		yy := j + y
		xx := i + x
		return node.corners[yy/2][xx/2].(*Node).corners[yy&1][xx&1]
	}))
}

func (hl *Hashlife) subblockLeaf(node *Node, y, x int) Block {
	half := LeafSize / 2
	var out Leaf
	for j := 0; j < LeafSize; j++ {
		for i := 0; i < LeafSize; i++ {
			yy := j + y*half
			xx := i + x*half
			corner := node.corners[yy/LeafSize][xx/LeafSize].(Leaf)
			shift := (yy % LeafSize) * leafYShift
			shift += (xx % LeafSize) * leafXShift
			cell := (corner >> shift) & 1
			out |= cell << (j*leafYShift + i*leafXShift)
		}
	}
	return out
}

// StepPow2 advances a 2^(n+1)-sided node exactly 2^lognsteps generations
// and returns the 2^n-sided block at its center, for
// 0 <= lognsteps <= n-1. At the maximum it coincides with Evolve; below it
// the recursion keeps the time slice fixed while halving the block.
func (hl *Hashlife) StepPow2(node *Node, lognsteps int) Block {
	if lognsteps < 0 || lognsteps > node.lgSize-2 {
		panic("hlife: step count out of range for block size")
	}
	if lognsteps == node.lgSize-2 {
		return hl.Evolve(node)
	}
	if node.nodeOfLeafs() {
		return hl.stepLeaf(node, lognsteps)
	}
	parts := make3x3(func(y, x int) Block {
		return hl.Subblock(hl.Subblock(node, y, x).(*Node), 1, 1)
	})
	return hl.NodeBlock(make2x2(func(y, x int) Block {
		around := hl.Node(make2x2(func(i, j int) Block {
			return parts[y+i][x+j]
		}))
		return hl.StepPow2(around, lognsteps)
	}))
}

// Blank returns the all-dead block with the given lg size. Blanks are
// memoized per level, each level a 2x2 of the previous one.
func (hl *Hashlife) Blank(lgSize int) Block {
	depth := lgSize - LgLeafSize
	if depth < len(hl.blankCache) {
		return hl.blankCache[depth]
	}
	blank := hl.blankCache[len(hl.blankCache)-1]
	for len(hl.blankCache) <= depth {
		blank = hl.NodeBlock([2][2]Block{{blank, blank}, {blank, blank}})
		hl.blankCache = append(hl.blankCache, blank)
	}
	return blank
}

// RandomBlock returns a block of the given depth above the leaves with
// every cell set uniformly at random.
func (hl *Hashlife) RandomBlock(rng *rand.Rand, depth int) Block {
	if depth == 0 {
		return Leaf(rng.Uint32()) & leafMask
	}
	return hl.NodeBlock(make2x2(func(y, x int) Block {
		return hl.RandomBlock(rng, depth-1)
	}))
}
