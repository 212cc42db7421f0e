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

// Square identifies one of the 64 board squares, A1=0 through H8=63, plus the
// sentinel SqNone=64.
type Square uint8

const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone
)

// IsValid reports whether sq names one of the 64 real board squares.
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// FileOf returns sq's file (the low 3 bits).
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns sq's rank (the high 3 bits).
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// MakeSquare parses a two-character square name such as "e4" and returns
// SqNone if it is not well formed.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	file := File(s[0] - 'a')
	rank := Rank(s[1] - '1')
	if !file.IsValid() || !rank.IsValid() {
		return SqNone
	}
	return SquareOf(file, rank)
}

// SquareOf combines a file and rank into a Square, or SqNone if either is
// out of range.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square(int(r)<<3 + int(f))
}

// String returns sq's algebraic name (e.g. "e5"), or "-" for SqNone.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

// To returns the square one step away from sq in direction d, or SqNone if
// that step would leave the board. Backed by a table built once at
// start-up, since this is called from move generation's hottest loops.
func (sq Square) To(d Direction) Square {
	idx, ok := dirSlot[d]
	if !ok {
		panic(fmt.Sprintf("invalid direction %d", d))
	}
	return sqTo[sq][idx]
}

// ///////////////////////////////////////
// Initialization
// ///////////////////////////////////////

// dirSlot maps each of the eight compass directions to its column in sqTo.
var dirSlot = func() map[Direction]int {
	m := make(map[Direction]int, len(Directions))
	for i, d := range Directions {
		m[d] = i
	}
	return m
}()

// fileDelta reports how a step in direction d changes the file: +1, -1 or 0.
// North/South only change rank, so they are not in this table and are
// treated as zero delta by toPreCompute.
var fileDelta = map[Direction]int{
	East:      1,
	West:      -1,
	Northeast: 1,
	Southeast: 1,
	Southwest: -1,
	Northwest: -1,
}

var sqTo [SqLength][8]Square

func init() {
	for sq := SqA1; sq < SqNone; sq++ {
		for i, dir := range Directions {
			sqTo[sq][i] = sq.toPreCompute(dir)
		}
	}
}

// toPreCompute computes the one-step neighbor of sq in direction d. A
// nonzero file delta that would push off the A or H file is rejected before
// the step is taken; North/South steps are range-checked only by the
// resulting square's validity, since stepping off the top or bottom edge
// naturally lands outside 0..63 (Square being unsigned, stepping south off
// rank 1 wraps to a large value, which IsValid rejects just the same).
func (sq Square) toPreCompute(d Direction) Square {
	if df := fileDelta[d]; df > 0 && sq.FileOf() == FileH {
		return SqNone
	} else if df < 0 && sq.FileOf() == FileA {
		return SqNone
	}
	next := sq + Square(d)
	if !next.IsValid() {
		return SqNone
	}
	return next
}
