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

import "sync"

// Leaf is the base of the block tree. It stores a LeafSize x LeafSize square
// of cells as a bit vector, with 1 for alive and 0 for dead. The bit for the
// cell at (y, x) is the (y*leafYShift + x*leafXShift)th least significant
// bit. LeafSize is a power of two, selected at build time: 2 by default, or
// 4 with the leaf4x4 build tag.
type Leaf uint16

// LeafSize is the side length of a leaf, 1 << LgLeafSize.
const LeafSize = 1 << LgLeafSize

const (
	leafYShift = 4
	leafXShift = 1
)

// LgSize returns the base-2 logarithm of the leaf's side length.
func (Leaf) LgSize() int { return LgLeafSize }

func (Leaf) lgSizeVerified() (int, error) { return LgLeafSize, nil }

var (
	leafTableOnce sync.Once
	leafTable     [1 << 16]byte
)

// smallEvolveTable returns the table with, for every 4x4 block packed as
// four 4-bit rows, the 2x2 center block after one generation packed at bits
// 0, 1, 4 and 5. The table is built on first use and shared by every engine.
func smallEvolveTable() *[1 << 16]byte {
	leafTableOnce.Do(mkSmallEvolveTable)
	return &leafTable
}

func mkSmallEvolveTable() {
	// First pass: for each 3x3 neighborhood packed as three 4-bit rows,
	// whether the center is alive next generation under B3/S23.
	bitcount := [8]byte{0, 1, 1, 2, 1, 2, 2, 3}
	for a := 0; a < 8; a++ {
		for b := 0; b < 8; b++ {
			for c := 0; c < 8; c++ {
				entry := a | b<<4 | c<<8
				count := bitcount[a] + bitcount[b] + bitcount[c]
				living := count == 3 || (count == 4 && b&2 != 0)
				if living {
					leafTable[entry] = 1
				} else {
					leafTable[entry] = 0
				}
			}
		}
	}
	// Second pass: combine the four overlapping neighborhoods of each 4x4
	// block. Entries already rewritten keep bit 0 consistent with their
	// 12-bit reading, so updating in place is sound.
	for x := 0; x < 1<<16; x++ {
		var evolve byte
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				subblock := (x >> (i + 4*j)) & 0x777
				evolve |= (leafTable[subblock] & 1) << (i + 4*j)
			}
		}
		leafTable[x] = evolve
	}
}
