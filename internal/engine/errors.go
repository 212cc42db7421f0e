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

import "fmt"

// InvalidFenError is returned by every facade operation that takes a FEN
// string when that string fails to parse into a legal position setup.
type InvalidFenError struct {
	Fen    string
	Reason string
}

func (e *InvalidFenError) Error() string {
	return fmt.Sprintf("invalid fen %q: %s", e.Fen, e.Reason)
}

// InvalidMoveError is returned when a move string handed to the facade is
// either not parseable as long algebraic notation or is not legal in the
// position it was given against.
type InvalidMoveError struct {
	MoveStr string
	Reason  string
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("invalid move %q: %s", e.MoveStr, e.Reason)
}
