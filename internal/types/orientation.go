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

// Orientation indexes the eight ray directions used to index the rays,
// pseudo-attack and intermediate-squares tables in bitboard.go. Unlike
// Direction, its values are plain 0..7 slots, not board-offset deltas.
type Orientation uint8

const (
	NW Orientation = iota
	N
	NE
	E
	SE
	S
	SW
	W
	orientationLength
)

// IsValid reports whether o is one of the eight named orientations.
func (o Orientation) IsValid() bool {
	return o < orientationLength
}

var orientationNames = [orientationLength]string{"NW", "N", "NE", "E", "SE", "S", "SW", "W"}

// String returns o's compass abbreviation.
func (o Orientation) String() string {
	if !o.IsValid() {
		panic(fmt.Sprintf("invalid orientation %d", o))
	}
	return orientationNames[o]
}
