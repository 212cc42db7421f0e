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

package search

import (
	"time"

	"github.com/corvidchess/corvid/internal/moveslice"
	. "github.com/corvidchess/corvid/internal/types"
)

// Result holds everything the facade and the UCI front end need to know
// about a finished (or aborted) iterative deepening run: the move to play,
// its score, a ponder move, and the depth actually completed.
type Result struct {
	BestMove   Move
	PonderMove Move
	BestValue  Value

	SearchDepth int
	ExtraDepth  int
	SearchTime  time.Duration
	Nodes       uint64

	// Pv is the principal variation from the root as found by the last
	// completed iteration.
	Pv moveslice.MoveSlice

	// BookMove is true if BestMove came from the opening book rather than
	// from the tree search.
	BookMove bool
}

// String returns a short human readable summary of the result.
func (r *Result) String() string {
	return out.Sprintf("move %s ponder %s value %s depth %d(%d) nodes %d time %s pv %s",
		r.BestMove.StringUci(), r.PonderMove.StringUci(), r.BestValue.String(), r.SearchDepth, r.ExtraDepth,
		r.Nodes, r.SearchTime, r.Pv.StringUci())
}
