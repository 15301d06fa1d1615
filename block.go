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
	"encoding/binary"
	"errors"

	"github.com/cespare/xxhash/v2"
)

// Every block used in one run of the algorithm is listed in a single hash
// table keyed by a 64-bit fingerprint of its children. The table owns all
// node records; nodes reference one another but never own each other, so a
// record must keep its address for as long as the table lives. Go's heap
// gives that for free: the map holds pointers to individually allocated
// records and map growth never moves them. Nothing is ever deleted, so a
// node reference stays valid until the whole engine is dropped at the end
// of WithNew.

// ErrHashCollision reports that two structurally different nodes hash to
// the same 64-bit fingerprint. Canonical identity is gone at that point,
// so the cache treats it as unrecoverable corruption rather than resolving
// the bucket.
var ErrHashCollision = errors.New("hlife: block fingerprint collision")

var errIllFormedBlock = errors.New("hlife: node children with mismatched sizes")

// Block is a square region of cells with side 2^LgSize: either a Leaf
// bitmap or an interned *Node. Within one engine, blocks with equal cell
// contents and size are equal with ==.
type Block interface {
	// LgSize returns the base-2 logarithm of the side length.
	LgSize() int

	// lgSizeVerified walks the block checking that every node has four
	// equally sized children, sealing the interface along the way.
	lgSizeVerified() (int, error)
}

// Node is a block built from four equally sized child blocks, laid out
// corners[y][x] with the north-west child at corners[0][0]. Nodes are
// created only by interning and are immutable apart from the future slot,
// which is written at most once.
type Node struct {
	corners [2][2]Block
	hash    uint64
	lgSize  int

	// future caches the center block advanced a quarter side of
	// generations, nil until Evolve first computes it.
	future Block
}

// LgSize returns the base-2 logarithm of the node's side length.
func (n *Node) LgSize() int { return n.lgSize }

// Corners returns the four child blocks, row-major.
func (n *Node) Corners() [2][2]Block { return n.corners }

func (n *Node) lgSizeVerified() (int, error) {
	lg, err := n.corners[0][0].lgSizeVerified()
	if err != nil {
		return 0, err
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			sub, err := n.corners[y][x].lgSizeVerified()
			if err != nil {
				return 0, err
			}
			if sub != lg {
				return 0, errIllFormedBlock
			}
		}
	}
	return lg + 1, nil
}

func (n *Node) nodeOfLeafs() bool {
	_, ok := n.corners[0][0].(Leaf)
	return ok
}

// blockCache interns nodes: equal corner tuples map to one stable record.
type blockCache struct {
	nodes map[uint64]*Node
}

func (bc *blockCache) intern(corners [2][2]Block) (*Node, error) {
	hash := fingerprint(corners)
	if n, ok := bc.nodes[hash]; ok {
		if n.corners != corners {
			return nil, ErrHashCollision
		}
		return n, nil
	}
	lgSize := corners[0][0].LgSize() + 1
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if corners[y][x].LgSize() != lgSize-1 {
				panic(errIllFormedBlock)
			}
		}
	}
	n := &Node{corners: corners, hash: hash, lgSize: lgSize}
	bc.nodes[hash] = n
	return n, nil
}

// fingerprint hashes the four children, position-sensitively, to the
// 64-bit key the cache buckets on. A child node contributes its own
// fingerprint, so structurally equal subtrees contribute equal bytes.
func fingerprint(corners [2][2]Block) uint64 {
	var buf [36]byte
	i := 0
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			switch b := corners[y][x].(type) {
			case Leaf:
				buf[i] = 'l'
				binary.LittleEndian.PutUint64(buf[i+1:], uint64(b))
			case *Node:
				buf[i] = 'n'
				binary.LittleEndian.PutUint64(buf[i+1:], b.hash)
			}
			i += 9
		}
	}
	return xxhash.Sum64(buf[:])
}
