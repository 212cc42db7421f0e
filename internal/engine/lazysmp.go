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

package engine

import (
	"sync"

	"github.com/corvidchess/corvid/internal/position"
	"github.com/corvidchess/corvid/internal/search"
	"github.com/corvidchess/corvid/internal/transpositiontable"
	. "github.com/corvidchess/corvid/internal/types"
)

// jitterStep is the aspiration-window offset, in centipawns, between
// successive Lazy-SMP helper threads. Helper i gets a window centered
// jitterStep*i away from the main thread's, which is enough to make its
// alpha-beta cuts diverge without biasing it so far that it stops doing
// useful work for the shared table. Chosen empirically; see the open
// question on parallel scaling in the search package.
const jitterStep = 12

// runLazySMP drives a Lazy-SMP search: one main-thread Search plus
// threads-1 helper Searches, all sharing tt. Each Search runs its own
// iterative-deepening loop on its own copy of pos - Position is plain
// value data, so copying it per goroutine is correct and cheap - and all
// of them probe and store into the same transposition table. Helpers
// never drive the result; they exist only to populate tt with
// transpositions the main thread has not reached yet. The main thread's
// completed-depth result is authoritative and is returned once it
// finishes; helpers are then stopped and reaped before returning, per the
// "workers terminate when the main thread signals completion" contract.
func runLazySMP(tt *transpositiontable.TtTable, pos position.Position, sl search.Limits, threads int) *search.Result {
	if threads < 1 {
		threads = 1
	}

	main := search.NewSearch()
	main.SetSharedTT(tt)

	helpers := make([]*search.Search, 0, threads-1)
	var wg sync.WaitGroup
	for i := 1; i < threads; i++ {
		h := search.NewSearch()
		h.SetSharedTT(tt)
		// Alternate the sign so helpers fan out on both sides of the main
		// thread's window instead of all drifting the same direction.
		sign := Value(1)
		if i%2 == 0 {
			sign = -1
		}
		h.SetHelperJitter(sign * Value(jitterStep*((i+1)/2)))
		helpers = append(helpers, h)

		wg.Add(1)
		go func(h *search.Search, helperPos position.Position, helperLimits search.Limits) {
			defer wg.Done()
			h.StartSearch(helperPos, helperLimits)
			h.WaitWhileSearching()
		}(h, pos, sl)
	}

	main.StartSearch(pos, sl)
	main.WaitWhileSearching()
	result := main.LastSearchResult()

	for _, h := range helpers {
		h.StopSearch()
	}
	wg.Wait()

	return &result
}
