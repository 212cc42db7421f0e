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

// Color distinguishes White (0) from Black (1); every per-side lookup table
// in this package is indexed directly by Color.
type Color uint8

const (
	White Color = iota
	Black
	ColorLength
)

// Flip returns the other color.
func (c Color) Flip() Color {
	return c ^ 1
}

// IsValid reports whether c is White or Black.
func (c Color) IsValid() bool {
	return c < Color(ColorLength)
}

func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		panic(fmt.Sprintf("invalid color %d", c))
	}
}

var forwardStep = [ColorLength]int{1, -1}

// Direction returns +1 for White and -1 for Black: the sign pawns, passed
// pawn masks and the like need to walk "forward" for the side in question.
func (c Color) Direction() int {
	return forwardStep[c]
}

var pawnPushDir = [ColorLength]Direction{North, South}

// MoveDirection returns the single-step direction a pawn of color c pushes.
func (c Color) MoveDirection() Direction {
	return pawnPushDir[c]
}

var promotionRank = [ColorLength]Bitboard{Rank8_Bb, Rank1_Bb}

// PromotionRankBb returns the rank on which a color-c pawn promotes.
func (c Color) PromotionRankBb() Bitboard {
	return promotionRank[c]
}

var doublePushRank = [ColorLength]Bitboard{Rank3_Bb, Rank6_Bb}

// PawnDoubleRank returns the rank a color-c pawn must be on to be eligible
// for a two-square opening push.
func (c Color) PawnDoubleRank() Bitboard {
	return doublePushRank[c]
}
