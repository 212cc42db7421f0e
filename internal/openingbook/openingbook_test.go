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

package openingbook

import (
	"os"
	"path"
	"path/filepath"
	"runtime"
	"testing"

	logging2 "github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
	"github.com/corvidchess/corvid/internal/util"
)

var logTest *logging2.Logger

// make tests run in the project's root directory so relative asset paths resolve
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	config.Setup()
	logTest = logging.GetTestLog()
	os.Exit(m.Run())
}

func TestReadingNonExistingFile(t *testing.T) {
	b := NewBook()
	folder, _ := util.ResolveFolder(config.Settings.Search.BookPath)
	file := filepath.Join(folder, "abc.pgn")
	_, err := b.readFile(file)
	assert.Error(t, err, "reading a nonexistent file should error")
}

func TestProcessingEmpty(t *testing.T) {
	book := NewBook()
	err := book.Initialize(config.Settings.Search.BookPath, "empty.txt", Simple, false, false)
	assert.NoError(t, err)
	assert.Equal(t, 1, book.NumberOfEntries())

	startPos := position.NewPosition()
	entry, ok := book.GetEntry(startPos.ZobristKey())
	assert.True(t, ok)
	assert.EqualValues(t, entry.ZobristKey, startPos.ZobristKey())

	entry, ok = book.GetEntry(Key(1234))
	assert.False(t, ok)
	assert.True(t, entry.ZobristKey == 0)
}

func TestProcessingSimpleTiny(t *testing.T) {
	book := NewBook()
	err := book.Initialize(config.Settings.Search.BookPath, "tiny_simple.txt", Simple, false, false)
	assert.NoError(t, err)
	assert.Equal(t, 7, book.NumberOfEntries())

	pos := position.NewPosition()
	entry, found := book.GetEntry(pos.ZobristKey())
	assert.True(t, found)
	assert.Equal(t, book.rootEntry, entry.ZobristKey)
	assert.Equal(t, 3, entry.Counter)
	assert.Equal(t, 2, len(entry.Moves))

	pos.DoMove(CreateMove(SqE2, SqE4, Normal, PtNone))
	entry, found = book.GetEntry(pos.ZobristKey())
	assert.True(t, found)
	assert.Equal(t, 2, entry.Counter)
	assert.Equal(t, 2, len(entry.Moves))

	for _, p := range entry.Moves {
		ne, ok := book.GetEntry(Key(p.NextEntry))
		assert.True(t, ok)
		logTest.Infof("%s ==> counter %d", Move(p.Move).StringUci(), ne.Counter)
	}
}

func TestProcessingSanTiny(t *testing.T) {
	book := NewBook()
	err := book.Initialize(config.Settings.Search.BookPath, "tiny_san.txt", San, false, false)
	assert.NoError(t, err)
	assert.Equal(t, 7, book.NumberOfEntries())

	pos := position.NewPosition()
	entry, found := book.GetEntry(pos.ZobristKey())
	assert.True(t, found)
	assert.Equal(t, 3, entry.Counter)
	assert.Equal(t, 2, len(entry.Moves))
}

func TestProcessingPgnTiny(t *testing.T) {
	book := NewBook()
	err := book.Initialize(config.Settings.Search.BookPath, "tiny.pgn", Pgn, false, false)
	assert.NoError(t, err)
	assert.Equal(t, 7, book.NumberOfEntries())

	pos := position.NewPosition()
	entry, found := book.GetEntry(pos.ZobristKey())
	assert.True(t, found)
	assert.Equal(t, 3, entry.Counter)
	assert.Equal(t, 2, len(entry.Moves))
}

func TestProcessingWithBadgerCache(t *testing.T) {
	book := NewBook()
	err := book.Initialize(config.Settings.Search.BookPath, "tiny.pgn", Pgn, true, true)
	assert.NoError(t, err)
	numberOfEntries := book.NumberOfEntries()
	assert.Equal(t, 7, numberOfEntries)

	book.Reset()
	assert.Equal(t, 0, book.NumberOfEntries())

	err = book.Initialize(config.Settings.Search.BookPath, "tiny.pgn", Pgn, true, false)
	assert.NoError(t, err)
	assert.Equal(t, numberOfEntries, book.NumberOfEntries())

	pos := position.NewPosition()
	entry, found := book.GetEntry(pos.ZobristKey())
	assert.True(t, found)
	assert.Equal(t, book.rootEntry, entry.ZobristKey)
	assert.Equal(t, 3, entry.Counter)

	cacheDir := filepath.Join(config.Settings.Search.BookPath, "tiny.pgn.bookcache")
	_ = os.RemoveAll(cacheDir)
}
