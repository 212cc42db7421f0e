//
// Corvid - a concurrent UCI chess engine
//
// MIT License
//
// Copyright (c) 2020-2026 Corvid Chess Contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package types

import "fmt"

// Value is a centipawn evaluation or search score, always from white's
// perspective when it comes out of the static evaluator and from the
// moving side's perspective while inside negamax.
type Value int16

// Key is a 64-bit Zobrist position fingerprint.
type Key uint64

// Depth is a search depth in plies, 0..127 (fits the transposition table's
// 7-bit depth field).
type Depth int8

const (
	// ValueNA marks "no value" - used as a sentinel in packed Move values
	// and wherever a Value field has not been computed yet.
	ValueNA Value = 32_001

	// ValueDraw is the score of a drawn position.
	ValueDraw Value = 0

	// ValueMin and ValueMax bound the alpha-beta search window wider than
	// any reachable material or mate score can go.
	ValueMin Value = -32_000
	ValueMax Value = 32_000

	// ValueCheckMate is the score magnitude assigned to "mate right now";
	// scores are adjusted by ply distance so shallower mates are preferred
	// to deeper ones (MATE_SCORE - ply).
	ValueCheckMate Value = 30_000

	// ValueCheckMateThreshold is the boundary above (below, for black)
	// which a value is considered a mate score rather than a material
	// score - used when adjusting mate scores to/from the transposition
	// table and when reporting "mate in N" to the UCI front end.
	ValueCheckMateThreshold Value = ValueCheckMate - 1_000

	// ValueWhite and ValueBlack are convenience signs for the side to move.
	ValueWhite Value = 1
	ValueBlack Value = -1
)

// IsValid reports whether v is within the legal score range (i.e. not the
// ValueNA sentinel and within the search window bounds).
func (v Value) IsValid() bool {
	return v >= ValueMin && v <= ValueMax
}

// IsCheckMateValue reports whether v represents a mate score (in either
// direction) rather than a material/positional score.
func (v Value) IsCheckMateValue() bool {
	return v > ValueCheckMateThreshold || v < -ValueCheckMateThreshold
}

// String formats a Value the way a UCI "info score" line would: "cp N" for
// normal scores, "mate N" for mate scores (N in moves, not plies).
func (v Value) String() string {
	if v.IsCheckMateValue() {
		pliesToMate := int(ValueCheckMate) - int(v)
		sign := 1
		if v < 0 {
			pliesToMate = int(ValueCheckMate) + int(v)
			sign = -1
		}
		movesToMate := sign * ((pliesToMate + 1) / 2)
		return fmt.Sprintf("mate %d", movesToMate)
	}
	return fmt.Sprintf("cp %d", int(v))
}
