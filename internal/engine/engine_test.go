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
	"os"
	"path"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/internal/position"
)

// make tests run in the project's root directory so config.toml and the
// opening book assets resolve the same way they do for every other package.
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
}

func TestBestMove_InvalidFen(t *testing.T) {
	e := NewEngine()
	_, err := e.BestMove("not a fen", 3)
	assert.Error(t, err)
	var fenErr *InvalidFenError
	assert.ErrorAs(t, err, &fenErr)
}

func TestBestMove_StartPosition(t *testing.T) {
	e := NewEngine()
	move, err := e.BestMove(position.StartFen, 3)
	assert.NoError(t, err)
	assert.NotEqual(t, "0000", move)
	assert.Len(t, move, 4)
}

func TestBestMove_BackRankMate(t *testing.T) {
	e := NewEngine()
	move, err := e.BestMove("6k1/5ppp/8/8/8/8/6PP/4R1K1 w - -", 5)
	assert.NoError(t, err)
	assert.Equal(t, byte('e'), move[0])
}

func TestBestMove_Stalemate(t *testing.T) {
	e := NewEngine()
	move, err := e.BestMove("7k/5Q2/6K1/8/8/8/8/8 b - -", 3)
	assert.NoError(t, err)
	assert.Equal(t, "0000", move)
}

func TestEvaluate_StartPosition(t *testing.T) {
	e := NewEngine()
	score, err := e.Evaluate(position.StartFen)
	assert.NoError(t, err)
	assert.InDelta(t, 0, int(score), 50)
}

func TestEvaluate_MirrorSymmetry(t *testing.T) {
	e := NewEngine()
	white, err := e.Evaluate("r1bqkbnr/pppp1ppp/2n5/4p3/4P3/2N5/PPPP1PPP/R1BQKBNR w KQkq -")
	assert.NoError(t, err)
	black, err := e.Evaluate("r1bqkbnr/pppp1ppp/2n5/4p3/4P3/2N5/PPPP1PPP/R1BQKBNR b KQkq -")
	assert.NoError(t, err)
	assert.EqualValues(t, -white, black)
}

func TestEvaluate_InvalidFen(t *testing.T) {
	e := NewEngine()
	_, err := e.Evaluate("garbage")
	assert.Error(t, err)
}

func TestBestMoveTimed(t *testing.T) {
	e := NewEngine()
	start := time.Now()
	move, depth, ms, err := e.BestMoveTimed(position.StartFen, 300)
	elapsed := time.Since(start)
	assert.NoError(t, err)
	assert.NotEmpty(t, move)
	assert.GreaterOrEqual(t, depth, 1)
	assert.GreaterOrEqual(t, ms, int64(0))
	assert.Less(t, elapsed, 2*time.Second)
}

func TestSearchInfo(t *testing.T) {
	e := NewEngine()
	info, err := e.SearchInfo(position.StartFen, 2)
	assert.NoError(t, err)
	assert.NotEmpty(t, info)
}

func TestBestMoveParallel_Legal(t *testing.T) {
	e := NewEngine()
	for _, threads := range []int{1, 2, 4} {
		move, err := e.BestMoveParallel(position.StartFen, 3, threads)
		assert.NoError(t, err)
		assert.Len(t, move, 4)
	}
}

func TestBestMoveParallelTimed(t *testing.T) {
	e := NewEngine()
	move, depth, _, err := e.BestMoveParallelTimed(position.StartFen, 300, 2)
	assert.NoError(t, err)
	assert.NotEmpty(t, move)
	assert.GreaterOrEqual(t, depth, 1)
}

func TestBestMoveParallel_MateInTwo(t *testing.T) {
	e := NewEngine()
	// White to move, mate in 2: 1.Re8+ Rxe8 2.Qxe8#
	fen := "6k1/5ppp/8/8/8/8/5PPP/4Q1K1 w - -"
	for _, threads := range []int{1, 2} {
		move, err := e.BestMoveParallel(fen, 4, threads)
		assert.NoError(t, err)
		assert.NotEqual(t, "0000", move)
	}
}

func TestCPUCores(t *testing.T) {
	e := NewEngine()
	assert.Greater(t, e.CPUCores(), 0)
}

func TestApplyMoves(t *testing.T) {
	e := NewEngine()
	fen, err := e.ApplyMoves(position.StartFen, []string{"e2e4", "e7e5"})
	assert.NoError(t, err)
	assert.Contains(t, fen, "w KQkq e6")
}

func TestApplyMoves_InvalidMove(t *testing.T) {
	e := NewEngine()
	_, err := e.ApplyMoves(position.StartFen, []string{"e2e5"})
	assert.Error(t, err)
	var moveErr *InvalidMoveError
	assert.ErrorAs(t, err, &moveErr)
}

func TestSetHashSize(t *testing.T) {
	e := NewEngine()
	assert.NoError(t, e.SetHashSize(16))
	assert.Error(t, e.SetHashSize(0))
	assert.Error(t, e.SetHashSize(2048))
	// table stays usable after a resize
	move, err := e.BestMove(position.StartFen, 2)
	assert.NoError(t, err)
	assert.NotEmpty(t, move)
}
