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

// MoveType distinguishes the four ways a Move changes the board beyond a
// plain piece relocation. Packed into the 2-bit move type field of Move.
type MoveType int

const (
	// Normal is a non-special move: a plain relocation or capture.
	Normal MoveType = 0
	// Promotion is a pawn move/capture onto the last rank.
	Promotion MoveType = 1
	// EnPassant is a pawn capture of a pawn that just moved two squares.
	EnPassant MoveType = 2
	// Castling is a king/rook double move, king moves two squares towards the rook.
	Castling MoveType = 3
)

// IsValid reports whether t is one of the four defined move types.
func (t MoveType) IsValid() bool {
	return t >= Normal && t <= Castling
}

// String returns a one-character label used in Move's debug representations.
func (t MoveType) String() string {
	switch t {
	case Normal:
		return "n"
	case Promotion:
		return "p"
	case EnPassant:
		return "e"
	case Castling:
		return "c"
	default:
		return "-"
	}
}
