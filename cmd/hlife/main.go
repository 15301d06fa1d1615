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

// Command hlife reads a pattern file, advances it a number of
// generations, and prints the result as run-length-encoded text.
package main

import (
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/itaibn/hlife"
)

func main() {
	os.Exit(run())
}

func run() int {
	if len(os.Args) != 3 {
		fmt.Printf("%s input.rle gens\n", os.Args[0])
		return 1
	}
	filename := os.Args[1]
	gens, ok := new(big.Int).SetString(os.Args[2], 10)
	if !ok || gens.Sign() < 0 {
		fmt.Printf("Error: Second argument gens must be a nonnegative integer: %s\n", os.Args[2])
		return 1
	}
	inFile, err := os.Open(filename)
	if err != nil {
		fmt.Printf("Cannot open file %s\n", filename)
		return 1
	}
	defer inFile.Close()
	data, err := io.ReadAll(inFile)
	if err != nil {
		fmt.Printf("Error reading file %s\n", filename)
		return 1
	}

	code := 0
	hlife.WithNew(func(hl *hlife.Hashlife) {
		block, err := hl.BlockFromBytes(data)
		if err != nil {
			fmt.Printf("Badly formatted pattern in %s\n", filename)
			code = 1
			return
		}
		pattern, err := hlife.NewPattern(hl, block)
		if err != nil {
			fmt.Printf("Pattern in %s is too small to step\n", filename)
			code = 1
			return
		}
		pattern.StepBig(gens)
		fmt.Print(hlife.FormatRLE(pattern.Block()))
	})
	return code
}
