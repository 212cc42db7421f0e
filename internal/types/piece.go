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

import (
	"strings"
)

// Piece packs a color and a piece type into a single nibble: bit 3 holds
// the color (0 White, 1 Black), bits 0-2 hold the PieceType. ColorOf and
// TypeOf unpack it; MakePiece builds one.
type Piece int8

const (
	PieceNone   Piece = 0
	WhiteKing   Piece = 1
	WhitePawn   Piece = 2
	WhiteKnight Piece = 3
	WhiteBishop Piece = 4
	WhiteRook   Piece = 5
	WhiteQueen  Piece = 6
	BlackKing   Piece = 9
	BlackPawn   Piece = 10
	BlackKnight Piece = 11
	BlackBishop Piece = 12
	BlackRook   Piece = 13
	BlackQueen  Piece = 14
	PieceLength Piece = 16
)

// MakePiece combines a color and piece type into a Piece.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int(c)<<3 + int(pt))
}

// ColorOf extracts the color bit.
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// TypeOf extracts the piece type bits.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 7)
}

// ValueOf returns the game-phase weight of p's piece type (see
// PieceType.GamePhaseValue).
func (p Piece) ValueOf() Value {
	return pieceTypeValue[p.TypeOf()]
}

// pieceLetters indexes every Piece value (0..15) to its FEN letter; the
// unused slots (7 and 15) hold "-" and are never produced by String.
const pieceLetters = " KPNBRQ- kpnbrq-"

// PieceFromChar parses a single FEN piece letter, returning PieceNone if s
// is not exactly one recognized letter.
func PieceFromChar(s string) Piece {
	if len(s) != 1 || s == "-" {
		return PieceNone
	}
	index := strings.IndexByte(pieceLetters, s[0])
	if index == -1 {
		return PieceNone
	}
	return Piece(index)
}

// String returns p's FEN letter ("K", "p", ...).
func (p Piece) String() string {
	return string(pieceLetters[p])
}

// pieceGlyphs mirrors pieceLetters but spells pawns as "O"/"*" instead of
// "P"/"p", for board printouts that want every piece on a single glyph row.
const pieceGlyphs = " KONBRQ- k*nbrq-"

// Char returns p's display glyph, using O/* for pawns instead of P/p.
func (p Piece) Char() string {
	return string(pieceGlyphs[p])
}

var pieceUnicode = [...]string{" ", "♔", "♙", "♘", "♗", "♖", "♕", "-", " ", "♚", "♟", "♞", "♝", "♜", "♛", "-"}

// UniChar returns p's Unicode chess symbol.
func (p Piece) UniChar() string {
	return pieceUnicode[p]
}
