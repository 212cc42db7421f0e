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

// Package openingbook reads game databases of different formats into an
// internal data structure keyed by Zobrist key. It can then be queried for
// known moves on a given position.
//
// Supported formats are currently:
//
// Simple - one game per line as a sequence of from-square/to-square moves
//
// San - one game per line in SAN notation, optionally with move numbers
//
// Pgn - full PGN game records, tag pairs and comments are stripped
package openingbook

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

var out = message.NewPrinter(language.German)
var log *logging.Logger

// parallel enables per-line/per-game goroutine fan-out while processing a
// book file. Kept as a switch, useful to turn off while debugging a bad book.
const parallel = true

// BookFormat identifies the notation a book file is written in.
type BookFormat uint8

// Supported book formats.
const (
	Simple BookFormat = iota
	San
	Pgn
)

// FormatFromString maps the textual format names accepted in the config
// file and on the command line to their BookFormat constant.
var FormatFromString = map[string]BookFormat{
	"Simple": Simple,
	"San":    San,
	"Pgn":    Pgn,
}

// Successor ties a move played from a BookEntry's position to the Zobrist
// key of the position it leads to.
type Successor struct {
	Move      uint32
	NextEntry uint64
}

// BookEntry describes exactly one position reached while reading a book:
// how many times it was reached (Counter) and which moves were played from
// it towards which follow-up positions (Moves).
type BookEntry struct {
	ZobristKey uint64
	Counter    int
	Moves      []Successor
}

// Book is an in-memory opening book built from one or more game files. A
// Book is safe to read from multiple goroutines once Initialize returns;
// Initialize itself may run many lines/games concurrently internally.
type Book struct {
	bookMap     map[uint64]BookEntry
	rootEntry   uint64
	initialized bool
	mu          sync.RWMutex
}

// bookLock serializes writes into bookMap while processing a file - the book
// itself is read concurrently by many goroutines during parsing, each of
// which owns its own position.Position and movegen.Movegen.
var bookLock sync.Mutex

// NewBook creates an empty, uninitialized opening book.
func NewBook() *Book {
	if log == nil {
		log = myLogging.GetLog()
	}
	return &Book{
		bookMap: make(map[uint64]BookEntry),
	}
}

// Initialize reads the book at filepath.Join(path, filename) - or just path
// when filename is empty - in the given format. When useCache is true and
// save is false, Initialize first tries to load a previously saved cache of
// the parsed entries from an embedded key/value store; on a cache hit the
// source file is never read. When useCache is true and save is true (or no
// usable cache exists), the file is parsed and, if useCache, the result is
// persisted to the cache for the next run.
func (b *Book) Initialize(path string, filename string, format BookFormat, useCache bool, save bool) error {
	if b.initialized {
		return nil
	}

	bookPath := path
	if filename != "" {
		bookPath = filepath.Join(path, filename)
	}

	log.Infof("Initializing opening book from %s", bookPath)
	startTotal := time.Now()

	if _, err := os.Stat(bookPath); err != nil {
		log.Errorf("File %q does not exist\n", bookPath)
		return err
	}

	if useCache && !save {
		startReading := time.Now()
		hasCache, err := b.loadFromCache(bookPath)
		elapsedReading := time.Since(startReading)
		if err != nil {
			log.Warningf("Cache could not be loaded, reading original data from %q: %s", bookPath, err)
		}
		if hasCache {
			log.Infof("Finished reading cache in %d ms, %d entries\n", elapsedReading.Milliseconds(), len(b.bookMap))
			b.initialized = true
			return nil
		}
	}

	startReading := time.Now()
	lines, err := b.readFile(bookPath)
	if err != nil {
		log.Errorf("File %q could not be read: %s\n", bookPath, err)
		return err
	}
	elapsedReading := time.Since(startReading)
	log.Infof("Finished reading %d lines from file in %d ms\n", len(*lines), elapsedReading.Milliseconds())

	startPosition := position.NewPosition()
	b.bookMap = make(map[uint64]BookEntry)
	b.rootEntry = uint64(startPosition.ZobristKey())
	b.bookMap[b.rootEntry] = BookEntry{ZobristKey: b.rootEntry}

	startProcessing := time.Now()
	b.process(lines, format)
	elapsedProcessing := time.Since(startProcessing)
	log.Infof("Finished processing %d lines in %d ms, %d entries\n",
		len(*lines), elapsedProcessing.Milliseconds(), len(b.bookMap))

	if useCache {
		startSave := time.Now()
		cacheDir, nBytes, err := b.saveToCache(bookPath)
		elapsedSave := time.Since(startSave)
		if err != nil {
			log.Errorf("Error while saving to cache: %s\n", err)
		} else {
			log.Infof("Saved %s to cache %s in %d ms\n", out.Sprintf("%d kB", nBytes/1_024), cacheDir, elapsedSave.Milliseconds())
		}
	}

	log.Infof("Book initialization took %d ms\n", time.Since(startTotal).Milliseconds())
	b.initialized = true
	return nil
}

// NumberOfEntries returns the number of positions stored in the book.
func (b *Book) NumberOfEntries() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.bookMap)
}

// GetEntry returns a copy of the entry for the given Zobrist key. The
// second return value is false and the entry is the zero value when the
// position is not part of the book.
func (b *Book) GetEntry(key Key) (BookEntry, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	e, ok := b.bookMap[uint64(key)]
	return e, ok
}

// Reset empties the book so it can be re-initialized from scratch.
func (b *Book) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.bookMap = map[uint64]BookEntry{}
	b.rootEntry = 0
	b.initialized = false
}

// //////////////////////////////////////////////////////
// Private
// //////////////////////////////////////////////////////

// readFile reads a book file into a slice of lines, one entry per line
// including blank lines - callers that care filter those out themselves.
func (b *Book) readFile(bookPath string) (*[]string, error) {
	f, err := os.Open(bookPath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.Errorf("File %q could not be closed: %s\n", bookPath, cerr)
		}
	}()
	var lines []string
	s := bufio.NewScanner(f)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return &lines, nil
}

func (b *Book) process(lines *[]string, format BookFormat) {
	switch format {
	case Simple:
		b.processSimple(lines)
	case San:
		b.processSan(lines)
	case Pgn:
		b.processPgn(lines)
	}
}

func (b *Book) processSimple(lines *[]string) {
	if parallel {
		var wg sync.WaitGroup
		wg.Add(len(*lines))
		for _, line := range *lines {
			go func(line string) {
				defer wg.Done()
				b.processSimpleLine(line)
			}(line)
		}
		wg.Wait()
	} else {
		for _, line := range *lines {
			b.processSimpleLine(line)
		}
	}
}

var regexSimpleUciMove = regexp.MustCompile("([a-h][1-8][a-h][1-8][nbrqNBRQ]?)")

func (b *Book) processSimpleLine(line string) {
	line = strings.TrimSpace(line)
	matches := regexSimpleUciMove.FindAllString(line, -1)
	if len(matches) == 0 {
		return
	}
	b.bumpRootCounter()
	pos := position.NewPosition()
	mg := movegen.NewMoveGen()
	for _, moveString := range matches {
		if err := b.processSingleMove(moveString, mg, pos); err != nil {
			break
		}
	}
}

func (b *Book) processSan(lines *[]string) {
	if parallel {
		var wg sync.WaitGroup
		wg.Add(len(*lines))
		for _, line := range *lines {
			go func(line string) {
				defer wg.Done()
				b.processSanLine(line)
			}(line)
		}
		wg.Wait()
	} else {
		for _, line := range *lines {
			b.processSanLine(line)
		}
	}
}

var regexResult = regexp.MustCompile(`((1-0)|(0-1)|(1/2-1/2)|(\*))\s*$`)

// processPgn splits the file into per-game chunks of lines (a game ends at
// its result token) and processes each chunk as a SAN line after stripping
// PGN-specific markup.
func (b *Book) processPgn(lines *[]string) {
	var games [][]string
	start := 0
	for i, l := range *lines {
		if regexResult.MatchString(strings.TrimSpace(l)) {
			games = append(games, (*lines)[start:i+1])
			start = i + 1
		}
	}
	if parallel {
		var wg sync.WaitGroup
		wg.Add(len(games))
		for _, g := range games {
			go func(g []string) {
				defer wg.Done()
				b.processPgnGame(g)
			}(g)
		}
		wg.Wait()
	} else {
		for _, g := range games {
			b.processPgnGame(g)
		}
	}
}

var (
	regexTrailingComments = regexp.MustCompile(`;.*$`)
	regexTagPairs         = regexp.MustCompile(`\[\w+ +".*?"\]`)
	regexNagAnnotation    = regexp.MustCompile(`(\$\d{1,3})`)
	regexBracketComments  = regexp.MustCompile(`\{[^{}]*\}`)
	regexReservedSymbols  = regexp.MustCompile(`<[^<>]*>`)
	regexRavVariants      = regexp.MustCompile(`\([^()]*\)`)
)

func (b *Book) processPgnGame(gameSlice []string) {
	var moveLine strings.Builder
	for _, l := range gameSlice {
		l = strings.TrimSpace(l)
		if strings.HasPrefix(l, "%") {
			continue
		}
		l = regexTagPairs.ReplaceAllString(l, "")
		l = regexResult.ReplaceAllString(l, "")
		l = regexTrailingComments.ReplaceAllString(l, "")
		l = strings.TrimSpace(l)
		if len(l) == 0 {
			continue
		}
		moveLine.WriteString(" ")
		moveLine.WriteString(l)
	}
	line := moveLine.String()
	line = regexNagAnnotation.ReplaceAllString(line, " ")
	line = regexBracketComments.ReplaceAllString(line, " ")
	line = regexReservedSymbols.ReplaceAllString(line, " ")
	for regexRavVariants.MatchString(line) {
		line = regexRavVariants.ReplaceAllString(line, " ")
	}
	b.processSanLine(line)
}

var (
	regexSanLineStart           = regexp.MustCompile(`^\s*\d+\.`)
	regexSanLineCleanUpNumbers  = regexp.MustCompile(`(\d+\.{1,3} ?)`)
	regexSanLineCleanUpResults  = regexp.MustCompile(`(1/2|1|0)-(1/2|1|0)`)
	regexWhiteSpace             = regexp.MustCompile(`\s+`)
)

func (b *Book) processSanLine(line string) {
	line = strings.TrimSpace(line)
	if !regexSanLineStart.MatchString(line) {
		return
	}

	line = regexSanLineCleanUpNumbers.ReplaceAllString(line, "")
	line = regexSanLineCleanUpResults.ReplaceAllString(line, "")
	line = strings.TrimSpace(line)

	moveStrings := regexWhiteSpace.Split(line, -1)
	if len(moveStrings) == 0 {
		return
	}

	b.bumpRootCounter()
	pos := position.NewPosition()
	mg := movegen.NewMoveGen()
	for _, moveString := range moveStrings {
		if err := b.processSingleMove(moveString, mg, pos); err != nil {
			log.Warningf("Move not valid %s on %s", moveString, pos.StringFen())
			break
		}
	}
}

func (b *Book) bumpRootCounter() {
	bookLock.Lock()
	defer bookLock.Unlock()
	e, found := b.bookMap[b.rootEntry]
	if !found {
		panic("root entry of book map not found")
	}
	e.Counter++
	b.bookMap[b.rootEntry] = e
}

var (
	regexUciMove = regexp.MustCompile("([a-h][1-8][a-h][1-8])([NBRQnbrq])?")
	regexSanMove = regexp.MustCompile("([NBRQK])?([a-h])?([1-8])?x?([a-h][1-8]|O-O-O|O-O)(=?([NBRQ]))?([!?+#]*)?")
)

// processSingleMove resolves one move token in either UCI or SAN notation
// against the current position, plays it and records the resulting
// transition in the book.
func (b *Book) processSingleMove(s string, mg *movegen.Movegen, pos *position.Position) error {
	move := MoveNone
	switch {
	case regexUciMove.MatchString(s):
		move = mg.GetMoveFromUci(pos, s)
	case regexSanMove.MatchString(s):
		move = mg.GetMoveFromSan(pos, s)
	}
	if !move.IsValid() {
		return errors.New("invalid move " + s)
	}
	curKey := uint64(pos.ZobristKey())
	pos.DoMove(move)
	nextKey := uint64(pos.ZobristKey())
	b.addToBook(curKey, nextKey, uint32(move.MoveOf()))
	return nil
}

// addToBook is safe to call from many goroutines concurrently while a book
// file is being parsed.
func (b *Book) addToBook(curKey uint64, nextKey uint64, move uint32) {
	bookLock.Lock()
	defer bookLock.Unlock()

	curEntry, found := b.bookMap[curKey]
	if !found {
		log.Error("Could not find current position in book.")
		return
	}

	nextEntry, found := b.bookMap[nextKey]
	if found {
		nextEntry.Counter++
		b.bookMap[nextKey] = nextEntry
		return
	}

	b.bookMap[nextKey] = BookEntry{ZobristKey: nextKey, Counter: 1}
	for _, mv := range curEntry.Moves {
		if mv.Move == move {
			return
		}
	}
	curEntry.Moves = append(curEntry.Moves, Successor{Move: move, NextEntry: nextKey})
	b.bookMap[curKey] = curEntry
}

// //////////////////////////////////////////////////////
// Persisted cache (badger)
// //////////////////////////////////////////////////////

// cacheDir derives the on-disk location of the badger-backed cache for a
// given source book file - one embedded key/value store per book file, kept
// next to it.
func (b *Book) cacheDir(bookPath string) string {
	return bookPath + ".bookcache"
}

func (b *Book) loadFromCache(bookPath string) (bool, error) {
	dir := b.cacheDir(bookPath)
	if _, err := os.Stat(dir); err != nil {
		return false, err
	}

	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return false, err
	}
	defer func() { _ = db.Close() }()

	entries := make(map[uint64]BookEntry)
	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			key := binary.BigEndian.Uint64(item.KeyCopy(nil))
			err := item.Value(func(val []byte) error {
				var e BookEntry
				dec := gob.NewDecoder(bytes.NewReader(val))
				if err := dec.Decode(&e); err != nil {
					return err
				}
				entries[key] = e
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	if len(entries) == 0 {
		return false, nil
	}

	b.mu.Lock()
	b.bookMap = entries
	startPosition := position.NewPosition()
	b.rootEntry = uint64(startPosition.ZobristKey())
	b.mu.Unlock()
	return true, nil
}

func (b *Book) saveToCache(bookPath string) (string, int64, error) {
	dir := b.cacheDir(bookPath)
	if err := os.RemoveAll(dir); err != nil {
		return dir, 0, err
	}

	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return dir, 0, err
	}
	defer func() { _ = db.Close() }()

	var nBytes int64
	err = db.Update(func(txn *badger.Txn) error {
		for k, v := range b.bookMap {
			var buf bytes.Buffer
			if err := gob.NewEncoder(&buf).Encode(v); err != nil {
				return err
			}
			keyBytes := make([]byte, 8)
			binary.BigEndian.PutUint64(keyBytes, k)
			nBytes += int64(buf.Len())
			if err := txn.Set(keyBytes, buf.Bytes()); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return dir, 0, err
	}
	return dir, nBytes, nil
}
