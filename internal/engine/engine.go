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

// Package engine is the programmatic search facade: FEN in, move (or score,
// or PV) out. It is the surface a UCI front end, a benchmark harness or a
// test suite calls instead of driving internal/search directly. It owns the
// transposition table so that it survives across calls the way the UCI
// front end's "ucinewgame"/"position"/"go" sequence expects, and it is the
// only place that turns FEN and move-string parse failures into the typed
// errors described by the error-handling design (InvalidFenError,
// InvalidMoveError) - the search core itself never aborts on bad input
// because by the time a position reaches it, the facade has already
// validated it.
package engine

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/evaluator"
	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/position"
	"github.com/corvidchess/corvid/internal/search"
	"github.com/corvidchess/corvid/internal/transpositiontable"
	. "github.com/corvidchess/corvid/internal/types"
)

var setupOnce sync.Once

const (
	minHashMB = 1
	maxHashMB = 1024
	// MaxDepth caps the depth parameter accepted by the facade. It matches
	// the ply budget internal/search reserves for its per-ply move and
	// PV tables.
	MaxDepth = 64
)

// Engine is the long-lived facade object. One Engine owns one transposition
// table which is shared by every search it runs, single-threaded or
// Lazy-SMP, so that a later search benefits from an earlier one's TT
// entries the way a real game (a sequence of "position ... go" calls)
// would. An Engine is safe for sequential use; concurrent BestMove-family
// calls on the same Engine are serialized against SetHashSize by ttGuard,
// since resizing the table is only well defined between searches.
type Engine struct {
	ttGuard sync.RWMutex
	tt      *transpositiontable.TtTable
	hashMB  int
}

// NewEngine creates a facade with a default-sized transposition table and
// makes sure the process-wide configuration, attack tables and Zobrist
// constants are initialized exactly once no matter how many Engines exist.
func NewEngine() *Engine {
	setupOnce.Do(config.Setup)
	hashMB := config.Settings.Search.TTSize
	if hashMB <= 0 {
		hashMB = 64
	}
	return &Engine{
		tt:     transpositiontable.NewTtTable(hashMB),
		hashMB: hashMB,
	}
}

// SetHashSize resizes (and clears) the transposition table. Per the
// lifecycle contract the table may be resized between searches but never
// during one; SetHashSize takes the write side of ttGuard so it blocks
// until any in-flight search on this Engine has returned.
func (e *Engine) SetHashSize(mb int) error {
	if mb < minHashMB || mb > maxHashMB {
		return fmt.Errorf("hash size %d MB out of range [%d, %d]", mb, minHashMB, maxHashMB)
	}
	e.ttGuard.Lock()
	defer e.ttGuard.Unlock()
	e.tt.Resize(mb)
	e.hashMB = mb
	return nil
}

// CPUCores reports the number of logical CPUs available to this process,
// the natural upper bound for a BestMoveParallel thread count.
func (e *Engine) CPUCores() int {
	return runtime.NumCPU()
}

// Evaluate returns the static evaluation of fen in centipawns from white's
// perspective, positive meaning white is better.
func (e *Engine) Evaluate(fen string) (Value, error) {
	pos, err := e.parseFen(fen)
	if err != nil {
		return 0, err
	}
	ev := evaluator.NewEvaluator()
	// Evaluate() returns the score from the moving side's perspective;
	// multiplying by the mover's direction (+1 white, -1 black) flips it
	// back to white's perspective, since direction squared is 1.
	fromMover := ev.Evaluate(pos)
	return fromMover * Value(pos.NextPlayer().Direction()), nil
}

// BestMove runs a fixed-depth single-thread search and returns the chosen
// move in long algebraic ("UCI") notation.
func (e *Engine) BestMove(fen string, depth int) (string, error) {
	result, err := e.searchDepth(fen, depth)
	if err != nil {
		return "", err
	}
	return e.resolveMove(fen, result)
}

// BestMoveTimed runs a single-thread search bounded by a wall-clock budget
// and returns the chosen move, the depth actually completed and the
// elapsed wall time.
func (e *Engine) BestMoveTimed(fen string, ms int) (move string, depthReached int, msSpent int64, err error) {
	start := time.Now()
	result, err := e.searchTimed(fen, ms)
	if err != nil {
		return "", 0, 0, err
	}
	move, err = e.resolveMove(fen, result)
	if err != nil {
		return "", 0, 0, err
	}
	return move, result.SearchDepth, time.Since(start).Milliseconds(), nil
}

// SearchInfo runs a fixed-depth search and formats its result the way a
// benchmark harness wants it: "depth score pv_move".
func (e *Engine) SearchInfo(fen string, depth int) (string, error) {
	result, err := e.searchDepth(fen, depth)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d %d %s", result.SearchDepth, int(result.BestValue), result.BestMove.StringUci()), nil
}

// BestMoveParallel runs a Lazy-SMP search with the given thread count to a
// fixed depth and returns the main thread's move.
func (e *Engine) BestMoveParallel(fen string, depth int, threads int) (string, error) {
	result, err := e.searchDepthParallel(fen, depth, threads)
	if err != nil {
		return "", err
	}
	return e.resolveMove(fen, result)
}

// BestMoveParallelTimed runs a Lazy-SMP search bounded by a wall-clock
// budget and returns the main thread's move, the depth it completed and
// the elapsed wall time.
func (e *Engine) BestMoveParallelTimed(fen string, ms int, threads int) (move string, depthReached int, msSpent int64, err error) {
	start := time.Now()
	result, err := e.searchTimedParallel(fen, ms, threads)
	if err != nil {
		return "", 0, 0, err
	}
	move, err = e.resolveMove(fen, result)
	if err != nil {
		return "", 0, 0, err
	}
	return move, result.SearchDepth, time.Since(start).Milliseconds(), nil
}

// ApplyMoves parses fen, applies each long-algebraic move in moves in order
// and returns the resulting position's FEN. It is the facade's equivalent
// of the UCI "position fen ... moves m1 m2 ..." command, exposed so a
// caller can build up a position the same way without going through the
// text protocol. The first move that does not parse or is not legal in the
// position reached so far aborts with InvalidMoveError.
func (e *Engine) ApplyMoves(fen string, moves []string) (string, error) {
	pos, err := e.parseFen(fen)
	if err != nil {
		return "", err
	}
	mg := movegen.NewMoveGen()
	for _, uciMove := range moves {
		move := mg.GetMoveFromUci(pos, uciMove)
		if !move.IsValid() {
			return "", &InvalidMoveError{MoveStr: uciMove, Reason: "not a legal move in the current position"}
		}
		pos.DoMove(move)
	}
	return pos.StringFen(), nil
}

// //////////////////////////////////////////////////////
// Private
// //////////////////////////////////////////////////////

func (e *Engine) parseFen(fen string) (*position.Position, error) {
	pos, err := position.NewPositionFen(fen)
	if err != nil {
		return nil, &InvalidFenError{Fen: fen, Reason: err.Error()}
	}
	return pos, nil
}

func (e *Engine) searchDepth(fen string, depth int) (*search.Result, error) {
	pos, err := e.parseFen(fen)
	if err != nil {
		return nil, err
	}
	if depth < 1 {
		depth = 1
	}
	if depth > MaxDepth {
		depth = MaxDepth
	}
	sl := search.NewSearchLimits()
	sl.Depth = depth

	e.ttGuard.RLock()
	defer e.ttGuard.RUnlock()

	s := search.NewSearch()
	s.SetSharedTT(e.tt)
	s.StartSearch(*pos, *sl)
	s.WaitWhileSearching()
	result := s.LastSearchResult()
	return &result, nil
}

func (e *Engine) searchTimed(fen string, ms int) (*search.Result, error) {
	pos, err := e.parseFen(fen)
	if err != nil {
		return nil, err
	}
	if ms < 1 {
		ms = 1
	}
	sl := search.NewSearchLimits()
	sl.TimeControl = true
	sl.MoveTime = time.Duration(ms) * time.Millisecond

	e.ttGuard.RLock()
	defer e.ttGuard.RUnlock()

	s := search.NewSearch()
	s.SetSharedTT(e.tt)
	s.StartSearch(*pos, *sl)
	s.WaitWhileSearching()
	result := s.LastSearchResult()
	return &result, nil
}

func (e *Engine) searchDepthParallel(fen string, depth int, threads int) (*search.Result, error) {
	pos, err := e.parseFen(fen)
	if err != nil {
		return nil, err
	}
	if depth < 1 {
		depth = 1
	}
	if depth > MaxDepth {
		depth = MaxDepth
	}
	sl := search.NewSearchLimits()
	sl.Depth = depth

	e.ttGuard.RLock()
	defer e.ttGuard.RUnlock()

	return runLazySMP(e.tt, *pos, *sl, threads), nil
}

func (e *Engine) searchTimedParallel(fen string, ms int, threads int) (*search.Result, error) {
	pos, err := e.parseFen(fen)
	if err != nil {
		return nil, err
	}
	if ms < 1 {
		ms = 1
	}
	sl := search.NewSearchLimits()
	sl.TimeControl = true
	sl.MoveTime = time.Duration(ms) * time.Millisecond

	e.ttGuard.RLock()
	defer e.ttGuard.RUnlock()

	return runLazySMP(e.tt, *pos, *sl, threads), nil
}

// resolveMove turns a search result into a UCI move string. A finished
// search on a non-terminal position always has a root move (rootSearch
// completes at least one full depth-1 iteration before honoring an abort),
// so MoveNone here means the position itself is checkmate or stalemate -
// reported as the UCI null move "0000" - or, defensively, that the search
// returned early for some other reason, in which case the first legal
// move is an acceptable fallback per the facade's error contract.
func (e *Engine) resolveMove(fen string, result *search.Result) (string, error) {
	if result.BestMove != MoveNone {
		return result.BestMove.StringUci(), nil
	}
	pos, err := e.parseFen(fen)
	if err != nil {
		return "", err
	}
	mg := movegen.NewMoveGen()
	moves := mg.GenerateLegalMoves(pos, movegen.GenAll)
	if moves.Len() == 0 {
		return MoveNone.StringUci(), nil
	}
	return moves.At(0).MoveOf().StringUci(), nil
}
