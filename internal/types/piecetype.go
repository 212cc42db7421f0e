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

// PieceType identifies a kind of piece independent of color. Bit 2 (0b100)
// distinguishes the sliders (Bishop, Rook, Queen) from everything else.
type PieceType uint8

const (
	PtNone PieceType = iota
	King
	Pawn
	Knight
	Bishop
	Rook
	Queen
	PtLength
)

// IsValid reports whether pt is one of the six real piece types.
func (pt PieceType) IsValid() bool {
	return pt < PtLength
}

var gamePhaseWeight = [PtLength]int{0, 0, 0, 1, 1, 2, 4}

// GamePhaseValue returns pt's weight toward the midgame/endgame phase
// blend: the evaluator sums these over the pieces left on the board.
func (pt PieceType) GamePhaseValue() int {
	return gamePhaseWeight[pt]
}

var pieceTypeValue = [PtLength]Value{0, 2000, 100, 320, 330, 500, 900}

// ValueOf returns pt's static material value in centipawns.
func (pt PieceType) ValueOf() Value {
	return pieceTypeValue[pt]
}

var pieceTypeNames = [PtLength]string{"NOPIECE", "King", "Pawn", "Knight", "Bishop", "Rook", "Queen"}

// String returns pt's full name.
func (pt PieceType) String() string {
	return pieceTypeNames[pt]
}

const pieceTypeLetters = "-KPNBRQ"

// Char returns pt's single-letter FEN abbreviation.
func (pt PieceType) Char() string {
	return string(pieceTypeLetters[pt])
}
