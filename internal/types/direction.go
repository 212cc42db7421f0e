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

// Direction is a signed square-index delta: adding it to a Square steps one
// square in a compass direction. The eight values are built from North (one
// rank) and East (one file) so arithmetic combinations like Northeast stay
// self-consistent.
type Direction int8

const (
	North     Direction = 8
	East      Direction = 1
	South               = -North
	West                = -East
	Northeast           = North + East
	Southeast           = South + East
	Southwest           = South + West
	Northwest           = North + West
)

// Directions lists the eight compass directions in a fixed order shared by
// every table indexed by direction (see Square.To's dirSlot).
var Directions = [8]Direction{North, East, South, West, Northeast, Southeast, Southwest, Northwest}

var directionNames = map[Direction]string{
	North:     "N",
	East:      "E",
	South:     "S",
	West:      "W",
	Northeast: "NE",
	Southeast: "SE",
	Southwest: "SW",
	Northwest: "NW",
}

// String returns the compass abbreviation for d (e.g. "NE"); it panics if d
// is not one of the eight named directions.
func (d Direction) String() string {
	name, ok := directionNames[d]
	if !ok {
		panic(fmt.Sprintf("invalid direction %d", d))
	}
	return name
}
