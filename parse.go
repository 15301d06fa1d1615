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
	"strings"
)

// ErrInvalidPatternEncoding reports malformed pattern text, in either the
// run-length-encoded or the macrocell format.
var ErrInvalidPatternEncoding = errors.New("hlife: invalid pattern encoding")

type cellState uint8

const (
	deadCell cellState = iota
	aliveCell
)

type rleTokenKind uint8

const (
	rleCell rleTokenKind = iota
	rleEndLine
	rleEndBlock
)

// rleToken is one run-length token: run copies of a cell state, run
// end-of-row marks, or the end of the pattern.
type rleToken struct {
	run   int
	kind  rleTokenKind
	state cellState
}

type mcNode struct {
	depth, b0, b1, b2, b3 int
}

// mcLine is one body line of a macrocell file: either an 8-row leaf
// bitmap or a node referring back to earlier lines by 1-based index.
type mcLine struct {
	leaf [][]cellState
	node *mcNode
}

// parseOut is the result of classifying a whole file: at most one of the
// two bodies is filled in; a file with a header and no body lines leaves
// both empty.
type parseOut struct {
	rle []rleToken
	mc  []mcLine
}

const (
	psStart = iota
	psRLE
	psMC
)

// parseFile splits the input into lines and runs the line classifier:
// comments are dropped anywhere, an optional RLE header or a macrocell
// header picks the format, and every further line must belong to it.
func parseFile(data []byte) (parseOut, error) {
	var out parseOut
	state := psStart
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if isComment(line) {
			continue
		}
		switch state {
		case psStart:
			if isMCHeader(line) {
				state = psMC
				continue
			}
			if isRLEMeta(line) {
				state = psRLE
				continue
			}
			tokens, ok := parseRLELine(line)
			if !ok {
				return parseOut{}, ErrInvalidPatternEncoding
			}
			out.rle = append(out.rle, tokens...)
			state = psRLE
		case psRLE:
			tokens, ok := parseRLELine(line)
			if !ok {
				return parseOut{}, ErrInvalidPatternEncoding
			}
			out.rle = append(out.rle, tokens...)
		case psMC:
			ml, ok := parseMCLine(line)
			if !ok {
				return parseOut{}, ErrInvalidPatternEncoding
			}
			out.mc = append(out.mc, ml)
		}
	}
	if state == psStart {
		return parseOut{}, ErrInvalidPatternEncoding
	}
	return out, nil
}

func isComment(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return trimmed == "" || trimmed[0] == '#'
}

func isMCHeader(line string) bool {
	return strings.HasPrefix(line, "[M2]")
}

type lineScanner struct {
	s   string
	pos int
}

func (sc *lineScanner) space() {
	for sc.pos < len(sc.s) && (sc.s[sc.pos] == ' ' || sc.s[sc.pos] == '\t') {
		sc.pos++
	}
}

func (sc *lineScanner) lit(tok string) bool {
	if strings.HasPrefix(sc.s[sc.pos:], tok) {
		sc.pos += len(tok)
		return true
	}
	return false
}

func (sc *lineScanner) uint() (int, bool) {
	start := sc.pos
	n := 0
	for sc.pos < len(sc.s) && sc.s[sc.pos] >= '0' && sc.s[sc.pos] <= '9' {
		n = n*10 + int(sc.s[sc.pos]-'0')
		if n > 1<<31 {
			return 0, false
		}
		sc.pos++
	}
	return n, sc.pos > start
}

func (sc *lineScanner) eof() bool {
	return sc.pos == len(sc.s)
}

// isRLEMeta recognizes the header line "x = X, y = Y, rule = ...". The
// sizes are advisory and the rule tail is not validated; the pattern body
// determines the block.
func isRLEMeta(line string) bool {
	sc := &lineScanner{s: line}
	sc.space()
	if !sc.lit("x") {
		return false
	}
	sc.space()
	if !sc.lit("=") {
		return false
	}
	sc.space()
	if _, ok := sc.uint(); !ok {
		return false
	}
	sc.space()
	if !sc.lit(",") {
		return false
	}
	sc.space()
	if !sc.lit("y") {
		return false
	}
	sc.space()
	if !sc.lit("=") {
		return false
	}
	sc.space()
	if _, ok := sc.uint(); !ok {
		return false
	}
	sc.space()
	if !sc.lit(",") {
		return false
	}
	sc.space()
	if !sc.lit("rule") {
		return false
	}
	sc.space()
	return sc.lit("=")
}

// parseRLELine lexes one line of run-length tokens: an optional decimal
// count directly followed by 'b', 'o', '$' or '!'. Whitespace between
// tokens is tolerated.
func parseRLELine(line string) ([]rleToken, bool) {
	sc := &lineScanner{s: line}
	var tokens []rleToken
	for {
		sc.space()
		if sc.eof() {
			break
		}
		run, hasRun := sc.uint()
		if !hasRun {
			run = 1
		}
		if sc.eof() {
			return nil, false
		}
		tok := rleToken{run: run}
		switch sc.s[sc.pos] {
		case 'b':
			tok.kind, tok.state = rleCell, deadCell
		case 'o':
			tok.kind, tok.state = rleCell, aliveCell
		case '$':
			tok.kind = rleEndLine
		case '!':
			tok.kind = rleEndBlock
		default:
			return nil, false
		}
		sc.pos++
		tokens = append(tokens, tok)
	}
	if len(tokens) == 0 {
		return nil, false
	}
	return tokens, true
}

// parseMCLine recognizes either a leaf line (eight rows of '.'/'*', each
// closed by '$') or a node line of five whitespace-separated integers.
func parseMCLine(line string) (mcLine, bool) {
	if leaf, ok := parseMCLeaf(line); ok {
		return mcLine{leaf: leaf}, true
	}
	if node, ok := parseMCNode(line); ok {
		return mcLine{node: node}, true
	}
	return mcLine{}, false
}

func parseMCLeaf(line string) ([][]cellState, bool) {
	var rows [][]cellState
	var cur []cellState
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '.':
			cur = append(cur, deadCell)
		case '*':
			cur = append(cur, aliveCell)
		case '$':
			rows = append(rows, cur)
			cur = nil
		default:
			return nil, false
		}
	}
	if len(cur) != 0 || len(rows) != 8 {
		return nil, false
	}
	return rows, true
}

func parseMCNode(line string) (*mcNode, bool) {
	fields := strings.Fields(line)
	if len(fields) != 5 {
		return nil, false
	}
	var nums [5]int
	for i, f := range fields {
		sc := &lineScanner{s: f}
		n, ok := sc.uint()
		if !ok || !sc.eof() {
			return nil, false
		}
		nums[i] = n
	}
	return &mcNode{
		depth: nums[0],
		b0:    nums[1],
		b1:    nums[2],
		b2:    nums[3],
		b3:    nums[4],
	}, true
}
