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

// Package types holds the board-representation primitives shared by every
// other package: squares, bitboards, pieces, moves and the lookup tables
// that back them. Most of these would be enums in a language that had them.
package types

import (
	myLogging "github.com/corvidchess/corvid/internal/logging"
	"github.com/op/go-logging"
)

var log *logging.Logger

const (
	// SqLength is the number of squares on a board.
	SqLength int = 64

	// MaxDepth bounds search depth in plies.
	MaxDepth = 128

	// MaxMoves bounds the number of moves a single position's move list
	// (and a game's move history) ever needs to hold.
	MaxMoves = 512

	KB uint64 = 1024
	MB uint64 = KB * KB
	GB uint64 = KB * MB

	// GamePhaseMax is the game-phase value of the opening position, used
	// to blend midgame and endgame evaluation terms as material comes off
	// the board.
	GamePhaseMax = 24
)

var initialized = false

// init pre-computes the bitboard and piece-square lookup tables every other
// function in this package relies on, running once when the package is
// first imported.
func init() {
	if initialized {
		return
	}
	log = myLogging.GetLog()
	log.Debug("initializing board representation tables")
	initBb()
	initPosValues()
	initialized = true
}
