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
	"math/big"
	"math/bits"
)

func make2x2[A any](f func(y, x int) A) [2][2]A {
	return [2][2]A{{f(0, 0), f(0, 1)}, {f(1, 0), f(1, 1)}}
}

func tryMake2x2[A any](f func(y, x int) (A, error)) ([2][2]A, error) {
	var res [2][2]A
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			a, err := f(y, x)
			if err != nil {
				return res, err
			}
			res[y][x] = a
		}
	}
	return res, nil
}

func make3x3[A any](f func(y, x int) A) [3][3]A {
	return [3][3]A{
		{f(0, 0), f(0, 1), f(0, 2)},
		{f(1, 0), f(1, 1), f(1, 2)},
		{f(2, 0), f(2, 1), f(2, 2)},
	}
}

// log2Upper returns ceil(log2(n)) for n >= 1.
func log2Upper(n *big.Int) int {
	return new(big.Int).Sub(n, big.NewInt(1)).BitLen()
}

// nextPow2 returns the smallest power of two >= n, for n >= 1.
func nextPow2(n int) int {
	return 1 << bits.Len(uint(n-1))
}
