/*
 * Corvid - a concurrent UCI chess engine
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Corvid Chess Contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package types

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/corvidchess/corvid/internal/util"
)

// Bitboard is a set of squares packed into a 64 bit word, one bit per square.
type Bitboard uint64

// Bb looks up the single-bit Bitboard for sq from the pre-computed table.
func (sq Square) Bb() Bitboard {
	return sqBb[sq]
}

// PushSquare returns b with the bit for s set.
func PushSquare(b Bitboard, s Square) Bitboard {
	return b | s.Bb()
}

// PushSquare sets the bit for s on the receiver in place.
func (b *Bitboard) PushSquare(s Square) Bitboard {
	*b |= s.Bb()
	return *b
}

// PopSquare returns b with the bit for s cleared.
func PopSquare(b Bitboard, s Square) Bitboard {
	return b &^ s.Bb()
}

// PopSquare clears the bit for s on the receiver in place.
func (b *Bitboard) PopSquare(s Square) Bitboard {
	*b = *b &^ s.Bb()
	return *b
}

// Has reports whether s is a member of b.
func (b Bitboard) Has(s Square) bool {
	return b&sqBb[s] != 0
}

// ShiftBitboard slides every bit of b one square in direction d, guarding
// against bits wrapping around the A/H file or the 1st/8th rank edge.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return (b & Rank8Mask) << 8
	case South:
		return b >> 8
	case East:
		return (b & MsbMask) << 1 & FileAMask
	case West:
		return (b >> 1) & FileHMask
	case Northeast:
		return (b & Rank8Mask) << 9 & FileAMask
	case Southeast:
		return (b >> 7) & FileAMask
	case Northwest:
		return (b << 7) & FileHMask
	case Southwest:
		return (b >> 9) & FileHMask
	default:
		return b
	}
}

// Lsb returns the square of the least significant set bit, or SqNone if b is
// empty. Bit 0 corresponds to SqA1.
func (b Bitboard) Lsb() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the square of the most significant set bit, or SqNone if b is
// empty. Bit 63 corresponds to SqH8.
func (b Bitboard) Msb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb clears and returns the least significant set bit's square.
func (b *Bitboard) PopLsb() Square {
	if *b == BbZero {
		return SqNone
	}
	lsb := b.Lsb()
	*b &= *b - 1
	return lsb
}

// PopCount returns the number of set bits (occupied squares) in b.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// String renders b as a raw 64-character binary string.
func (b Bitboard) String() string {
	return fmt.Sprintf("%-0.64b", b)
}

// StringBoard renders b as an 8x8 ASCII board, rank 8 at the top.
func (b Bitboard) StringBoard() string {
	var sb strings.Builder
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank1; r <= Rank8; r++ {
		for f := FileA; f <= FileH; f++ {
			if b.Has(SquareOf(f, Rank8-r)) {
				sb.WriteString("| X ")
			} else {
				sb.WriteString("|   ")
			}
		}
		sb.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return sb.String()
}

// StringGrouped renders b as 8 dot-separated groups of 8 bits, LSB first
// (A1..H1.A2..H2...A8..H8), followed by the decimal value in parentheses.
func (b Bitboard) StringGrouped() string {
	var sb strings.Builder
	for i := 0; i < 64; i++ {
		if i > 0 && i%8 == 0 {
			sb.WriteByte('.')
		}
		if b&(BbOne<<i) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	fmt.Fprintf(&sb, " (%d)", b)
	return sb.String()
}

// FileDistance returns the absolute file distance between f1 and f2.
func FileDistance(f1 File, f2 File) int {
	return util.Abs(int(f2) - int(f1))
}

// RankDistance returns the absolute rank distance between r1 and r2.
func RankDistance(r1 Rank, r2 Rank) int {
	return util.Abs(int(r2) - int(r1))
}

// SquareDistance returns the Chebyshev distance (king moves) between two
// squares, or 0 if either square is invalid or they are equal.
func SquareDistance(s1 Square, s2 Square) int {
	if !s1.IsValid() || !s2.IsValid() || s1 == s2 {
		return 0
	}
	return squareDistance[s1][s2]
}

// CenterDistance returns sq's distance to the nearest of the four center
// squares.
func (sq Square) CenterDistance() int {
	return centerDistance[sq]
}

// GetAttacksBb returns every square attacked by a piece of type pt (pawns
// excluded - use GetPawnAttacks) standing on sq, given the current board
// occupancy. Sliding pieces consult the magic bitboard tables; knights and
// kings ignore occupied and return their fixed pseudo-attack set.
func GetAttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Bishop:
		return bishopMagics[sq].Attacks[bishopMagics[sq].index(occupied)]
	case Rook:
		return rookMagics[sq].Attacks[rookMagics[sq].index(occupied)]
	case Queen:
		return bishopMagics[sq].Attacks[bishopMagics[sq].index(occupied)] | rookMagics[sq].Attacks[rookMagics[sq].index(occupied)]
	case Pawn:
		panic("GetAttacksBb does not support PieceType Pawn; use GetPawnAttacks")
	default:
		return pseudoAttacks[pt][sq]
	}
}

// GetPseudoAttacks returns the attack set of a piece of type pt on sq as if
// the rest of the board were empty.
func GetPseudoAttacks(pt PieceType, sq Square) Bitboard {
	return pseudoAttacks[pt][sq]
}

// GetPawnAttacks returns the squares a pawn of color c on sq attacks.
func GetPawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// FilesWestMask returns the files strictly west of sq's file.
func (sq Square) FilesWestMask() Bitboard {
	return filesWestMask[sq]
}

// FilesEastMask returns the files strictly east of sq's file.
func (sq Square) FilesEastMask() Bitboard {
	return filesEastMask[sq]
}

// FileWestMask returns the single file immediately west of sq, if any.
func (sq Square) FileWestMask() Bitboard {
	return fileWestMask[sq]
}

// FileEastMask returns the single file immediately east of sq, if any.
func (sq Square) FileEastMask() Bitboard {
	return fileEastMask[sq]
}

// RanksNorthMask returns the ranks strictly north of sq's rank.
func (sq Square) RanksNorthMask() Bitboard {
	return ranksNorthMask[sq]
}

// RanksSouthMask returns the ranks strictly south of sq's rank.
func (sq Square) RanksSouthMask() Bitboard {
	return ranksSouthMask[sq]
}

// NeighbourFilesMask returns the files immediately east and west of sq.
func (sq Square) NeighbourFilesMask() Bitboard {
	return neighbourFilesMask[sq]
}

// Ray returns the squares reachable from sq walking in direction o until the
// board edge, exclusive of sq itself.
func (sq Square) Ray(o Orientation) Bitboard {
	return rays[o][sq]
}

// Intermediate returns the squares strictly between sq1 and sq2 if they lie
// on a shared rank, file or diagonal, else BbZero.
func Intermediate(sq1 Square, sq2 Square) Bitboard {
	return intermediate[sq1][sq2]
}

// Intermediate returns the squares strictly between sq and sqTo.
func (sq Square) Intermediate(sqTo Square) Bitboard {
	return intermediate[sq][sqTo]
}

// PassedPawnMask returns the squares on sq's file and the two neighbouring
// files, ahead of sq from color c's perspective - the squares an enemy pawn
// would need to occupy to stop a c pawn on sq from becoming passed.
func (sq Square) PassedPawnMask(c Color) Bitboard {
	return passedPawnMask[c][sq]
}

// KingSideCastleMask returns the non-king squares a kingside castle for
// color c passes through or lands on.
func KingSideCastleMask(c Color) Bitboard {
	return kingSideCastleMask[c]
}

// QueenSideCastMask returns the non-king squares a queenside castle for
// color c passes through or lands on.
func QueenSideCastMask(c Color) Bitboard {
	return queenSideCastleMask[c]
}

// GetCastlingRights returns which castling rights are lost when sq changes
// occupant (a king or rook moving from, or a rook being captured on, sq).
func GetCastlingRights(sq Square) CastlingRights {
	return castlingRights[sq]
}

// SquaresBb returns every square of color c (light or dark), useful for
// opposite/same-colored-bishop draw heuristics.
func SquaresBb(c Color) Bitboard {
	return squaresBb[c]
}

// Well-known constant bitboards.
const (
	BbZero Bitboard = Bitboard(0)
	BbAll  Bitboard = ^BbZero
	BbOne  Bitboard = Bitboard(1)

	FileA_Bb Bitboard = 0x0101010101010101
	FileB_Bb Bitboard = FileA_Bb << 1
	FileC_Bb Bitboard = FileA_Bb << 2
	FileD_Bb Bitboard = FileA_Bb << 3
	FileE_Bb Bitboard = FileA_Bb << 4
	FileF_Bb Bitboard = FileA_Bb << 5
	FileG_Bb Bitboard = FileA_Bb << 6
	FileH_Bb Bitboard = FileA_Bb << 7

	Rank1_Bb Bitboard = 0xFF
	Rank2_Bb Bitboard = Rank1_Bb << (8 * 1)
	Rank3_Bb Bitboard = Rank1_Bb << (8 * 2)
	Rank4_Bb Bitboard = Rank1_Bb << (8 * 3)
	Rank5_Bb Bitboard = Rank1_Bb << (8 * 4)
	Rank6_Bb Bitboard = Rank1_Bb << (8 * 5)
	Rank7_Bb Bitboard = Rank1_Bb << (8 * 6)
	Rank8_Bb Bitboard = Rank1_Bb << (8 * 7)

	MsbMask   Bitboard = ^(Bitboard(1) << 63)
	Rank8Mask Bitboard = ^Rank8_Bb
	FileAMask Bitboard = ^FileA_Bb
	FileHMask Bitboard = ^FileH_Bb

	DiagUpA1 Bitboard = 0b10000000_01000000_00100000_00010000_00001000_00000100_00000010_00000001
	DiagUpB1 Bitboard = (MsbMask & DiagUpA1) << 1 & FileAMask // shift east
	DiagUpC1 Bitboard = (MsbMask & DiagUpB1) << 1 & FileAMask
	DiagUpD1 Bitboard = (MsbMask & DiagUpC1) << 1 & FileAMask
	DiagUpE1 Bitboard = (MsbMask & DiagUpD1) << 1 & FileAMask
	DiagUpF1 Bitboard = (MsbMask & DiagUpE1) << 1 & FileAMask
	DiagUpG1 Bitboard = (MsbMask & DiagUpF1) << 1 & FileAMask
	DiagUpH1 Bitboard = (MsbMask & DiagUpG1) << 1 & FileAMask
	DiagUpA2 Bitboard = (Rank8Mask & DiagUpA1) << 8 // shift north
	DiagUpA3 Bitboard = (Rank8Mask & DiagUpA2) << 8
	DiagUpA4 Bitboard = (Rank8Mask & DiagUpA3) << 8
	DiagUpA5 Bitboard = (Rank8Mask & DiagUpA4) << 8
	DiagUpA6 Bitboard = (Rank8Mask & DiagUpA5) << 8
	DiagUpA7 Bitboard = (Rank8Mask & DiagUpA6) << 8
	DiagUpA8 Bitboard = (Rank8Mask & DiagUpA7) << 8

	DiagDownH1 Bitboard = 0b0000000100000010000001000000100000010000001000000100000010000000
	DiagDownH2 Bitboard = (Rank8Mask & DiagDownH1) << 8 // shift north
	DiagDownH3 Bitboard = (Rank8Mask & DiagDownH2) << 8
	DiagDownH4 Bitboard = (Rank8Mask & DiagDownH3) << 8
	DiagDownH5 Bitboard = (Rank8Mask & DiagDownH4) << 8
	DiagDownH6 Bitboard = (Rank8Mask & DiagDownH5) << 8
	DiagDownH7 Bitboard = (Rank8Mask & DiagDownH6) << 8
	DiagDownH8 Bitboard = (Rank8Mask & DiagDownH7) << 8
	DiagDownG1 Bitboard = (DiagDownH1 >> 1) & FileHMask // shift west
	DiagDownF1 Bitboard = (DiagDownG1 >> 1) & FileHMask
	DiagDownE1 Bitboard = (DiagDownF1 >> 1) & FileHMask
	DiagDownD1 Bitboard = (DiagDownE1 >> 1) & FileHMask
	DiagDownC1 Bitboard = (DiagDownD1 >> 1) & FileHMask
	DiagDownB1 Bitboard = (DiagDownC1 >> 1) & FileHMask
	DiagDownA1 Bitboard = (DiagDownB1 >> 1) & FileHMask

	CenterFiles   Bitboard = FileD_Bb | FileE_Bb
	CenterRanks   Bitboard = Rank4_Bb | Rank5_Bb
	CenterSquares Bitboard = CenterFiles & CenterRanks
)

// ////////////////////
// Private
// ////////////////////

// bitboard returns the single-bit Bitboard for sq computed directly, without
// going through the sqBb cache - used only while that cache is still being
// built.
func (sq Square) bitboard() Bitboard {
	return Bitboard(uint64(1) << sq)
}

// walkRay accumulates every square reached by repeatedly stepping from sq in
// direction d until falling off the board. This replaces a table-driven
// rotated-bitboard lookup with a direct walk since it only runs once, at
// start-up, to seed the sliding-piece pseudo-attack tables that GetAttacksBb
// falls back on for knights and kings (and that the magic bitboard build in
// magic.go consults for rook/bishop blocker masks).
func walkRay(sq Square, d Direction) Bitboard {
	var bb Bitboard
	for cur := sq.To(d); cur.IsValid(); cur = cur.To(d) {
		bb |= sqBb[cur]
	}
	return bb
}

var (
	// sqBb is the square-to-single-bit-bitboard cache, built by initBb.
	sqBb [SqLength]Bitboard

	// fileBb[f] and rankBb[r] back File.Bb and Rank.Bb.
	fileBb [8]Bitboard
	rankBb [8]Bitboard

	// squareDistance[a][b] is the Chebyshev distance between a and b.
	squareDistance [SqLength][SqLength]int

	// pawnAttacks[c][sq] is the set of squares a color-c pawn on sq attacks.
	pawnAttacks [2][SqLength]Bitboard

	// pseudoAttacks[pt][sq] is the attack set of piece type pt on sq on an
	// otherwise empty board.
	pseudoAttacks [PtLength][SqLength]Bitboard

	// magic bitboards - rook attacks
	rookTable  []Bitboard
	rookMagics [SqLength]Magic

	// magic bitboards - bishop attacks
	bishopTable  []Bitboard
	bishopMagics [SqLength]Magic

	filesWestMask      [SqLength]Bitboard
	filesEastMask      [SqLength]Bitboard
	ranksNorthMask     [SqLength]Bitboard
	ranksSouthMask     [SqLength]Bitboard
	fileWestMask       [SqLength]Bitboard
	fileEastMask       [SqLength]Bitboard
	neighbourFilesMask [SqLength]Bitboard

	// rays[o][sq] holds the ray cast from sq in orientation o to the edge.
	rays [8][SqLength]Bitboard

	// intermediate[a][b] holds the squares strictly between a and b.
	intermediate [SqLength][SqLength]Bitboard

	// passedPawnMask[c][sq]: squares an enemy pawn must clear for a c pawn
	// on sq to be passed.
	passedPawnMask [2][SqLength]Bitboard

	kingSideCastleMask  [2]Bitboard
	queenSideCastleMask [2]Bitboard

	// castlingRights[sq] is the castling right(s) forfeited when sq's
	// occupant changes.
	castlingRights [SqLength]CastlingRights

	// squaresBb[c] is every light (White) or dark (Black) square.
	squaresBb [2]Bitboard

	// centerDistance[sq] is sq's distance to the nearest center square.
	centerDistance [SqLength]int
)

// ///////////////////////////////////////
// Initialization
// ///////////////////////////////////////

// initBb pre-computes every lookup table this package relies on, in
// dependency order (later steps read tables earlier steps fill in).
func initBb() {
	squareBitboardsPreCompute()
	fileRankBbPreCompute()
	castleMasksPreCompute()
	squareDistancePreCompute()
	neighbourMasksPreCompute()
	pseudoAttacksPreCompute()
	raysPreCompute()
	intermediatePreCompute()
	maskPassedPawnsPreCompute()
	squareColorsPreCompute()
	centerDistancePreCompute()
	initMagicBitboards()
}

// initMagicBitboards builds the rook and bishop magic attack tables. See
// magic.go; approach per https://www.chessprogramming.org/Magic_Bitboards.
func initMagicBitboards() {
	rookDirections := [4]Direction{North, East, South, West}
	bishopDirections := [4]Direction{Northeast, Southeast, Southwest, Northwest}

	rookTable = make([]Bitboard, 0x19000)
	bishopTable = make([]Bitboard, 0x1480)

	initMagics(&rookTable, &rookMagics, &rookDirections)
	initMagics(&bishopTable, &bishopMagics, &bishopDirections)
}

func castleMasksPreCompute() {
	kingSideCastleMask[White] = sqBb[SqF1] | sqBb[SqG1] | sqBb[SqH1]
	kingSideCastleMask[Black] = sqBb[SqF8] | sqBb[SqG8] | sqBb[SqH8]
	queenSideCastleMask[White] = sqBb[SqD1] | sqBb[SqC1] | sqBb[SqB1] | sqBb[SqA1]
	queenSideCastleMask[Black] = sqBb[SqD8] | sqBb[SqC8] | sqBb[SqB8] | sqBb[SqA8]
	castlingRights[SqE1] = CastlingWhite
	castlingRights[SqA1] = CastlingWhiteOOO
	castlingRights[SqH1] = CastlingWhiteOO
	castlingRights[SqE8] = CastlingBlack
	castlingRights[SqA8] = CastlingBlackOOO
	castlingRights[SqH8] = CastlingBlackOO
}

func squareBitboardsPreCompute() {
	for sq := SqA1; sq < SqNone; sq++ {
		sqBb[sq] = sq.bitboard()
	}
}

// fileRankBbPreCompute fills the per-file and per-rank bitboard lookups
// backing File.Bb and Rank.Bb.
func fileRankBbPreCompute() {
	for f := FileA; f <= FileH; f++ {
		fileBb[f] = FileA_Bb << int(f)
	}
	for r := Rank1; r <= Rank8; r++ {
		rankBb[r] = Rank1_Bb << (8 * int(r))
	}
}

// centerDistancePreCompute finds, for each square, the nearest of the four
// center squares by checking which quadrant of the board the square falls
// in.
func centerDistancePreCompute() {
	for sq := SqA1; sq <= SqH8; sq++ {
		switch {
		case (sqBb[sq] & ranksNorthMask[27] & filesWestMask[36]) != 0: // upper-left quadrant
			centerDistance[sq] = squareDistance[sq][SqD5]
		case (sqBb[sq] & ranksNorthMask[28] & filesEastMask[35]) != 0: // upper-right quadrant
			centerDistance[sq] = squareDistance[sq][SqE5]
		case (sqBb[sq] & ranksSouthMask[35] & filesWestMask[28]) != 0: // lower-left quadrant
			centerDistance[sq] = squareDistance[sq][SqD4]
		case (sqBb[sq] & ranksSouthMask[36] & filesEastMask[27]) != 0: // lower-right quadrant
			centerDistance[sq] = squareDistance[sq][SqE4]
		}
	}
}

// squareColorsPreCompute classifies every square as light or dark.
func squareColorsPreCompute() {
	for sq := SqA1; sq <= SqH8; sq++ {
		if (int(sq.FileOf())+int(sq.RankOf()))%2 == 0 {
			squaresBb[Black] |= sqBb[sq]
		} else {
			squaresBb[White] |= sqBb[sq]
		}
	}
}

// maskPassedPawnsPreCompute builds, for each color and square, the mask of
// squares an enemy pawn needs to be clear of for a pawn there to be passed:
// the whole forward ray on its own file plus the two neighbouring files.
func maskPassedPawnsPreCompute() {
	for sq := SqA1; sq <= SqH8; sq++ {
		f, r := sq.FileOf(), sq.RankOf()

		passedPawnMask[White][sq] |= rays[N][sq]
		if f < FileH && r < Rank8 {
			passedPawnMask[White][sq] |= rays[N][sq.To(East)]
		}
		if f > FileA && r < Rank8 {
			passedPawnMask[White][sq] |= rays[N][sq.To(West)]
		}

		passedPawnMask[Black][sq] |= rays[S][sq]
		if f < FileH && r > Rank1 {
			passedPawnMask[Black][sq] |= rays[S][sq.To(East)]
		}
		if f > FileA && r > Rank1 {
			passedPawnMask[Black][sq] |= rays[S][sq.To(West)]
		}
	}
}

// intermediatePreCompute fills intermediate[a][b] by checking, for every ray
// cast from a, whether it passes through b; if so the squares strictly
// between them are the part of that ray not also reachable from b.
func intermediatePreCompute() {
	for from := SqA1; from <= SqH8; from++ {
		for to := SqA1; to <= SqH8; to++ {
			toBb := sqBb[to]
			for o := Orientation(0); o < orientationLength; o++ {
				if rays[o][from]&toBb != BbZero {
					intermediate[from][to] |= rays[o][from] &^ rays[o][to] &^ toBb
				}
			}
		}
	}
}

// raysPreCompute derives the eight per-square directional rays from the
// already-computed rook/bishop pseudo-attacks, masked to one side of the
// square.
func raysPreCompute() {
	for sq := SqA1; sq <= SqH8; sq++ {
		rays[N][sq] = pseudoAttacks[Rook][sq] & ranksNorthMask[sq]
		rays[E][sq] = pseudoAttacks[Rook][sq] & filesEastMask[sq]
		rays[S][sq] = pseudoAttacks[Rook][sq] & ranksSouthMask[sq]
		rays[W][sq] = pseudoAttacks[Rook][sq] & filesWestMask[sq]

		rays[NW][sq] = pseudoAttacks[Bishop][sq] & filesWestMask[sq] & ranksNorthMask[sq]
		rays[NE][sq] = pseudoAttacks[Bishop][sq] & filesEastMask[sq] & ranksNorthMask[sq]
		rays[SE][sq] = pseudoAttacks[Bishop][sq] & filesEastMask[sq] & ranksSouthMask[sq]
		rays[SW][sq] = pseudoAttacks[Bishop][sq] & filesWestMask[sq] & ranksSouthMask[sq]
	}
}

// neighbourMasksPreCompute builds the file/rank-relative masks (everything
// west, everything east, the single neighbouring file, etc.) used by pawn
// structure and king safety evaluation.
func neighbourMasksPreCompute() {
	for sq := SqA1; sq <= SqH8; sq++ {
		f, r := int(sq.FileOf()), int(sq.RankOf())
		for file := 0; file < 8; file++ {
			if file < f {
				filesWestMask[sq] |= FileA_Bb << file
			}
			if file > f {
				filesEastMask[sq] |= FileA_Bb << file
			}
		}
		for rank := 0; rank < 8; rank++ {
			if rank > r {
				ranksNorthMask[sq] |= Rank1_Bb << (8 * rank)
			}
			if rank < r {
				ranksSouthMask[sq] |= Rank1_Bb << (8 * rank)
			}
		}
		if f > 0 {
			fileWestMask[sq] = FileA_Bb << (f - 1)
		}
		if f < 7 {
			fileEastMask[sq] = FileA_Bb << (f + 1)
		}
		neighbourFilesMask[sq] = fileEastMask[sq] | fileWestMask[sq]
	}
}

// squareDistancePreCompute fills the Chebyshev-distance lookup table used by
// SquareDistance.
func squareDistancePreCompute() {
	for sq1 := SqA1; sq1 <= SqH8; sq1++ {
		for sq2 := SqA1; sq2 <= SqH8; sq2++ {
			if sq1 != sq2 {
				squareDistance[sq1][sq2] = util.Max(
					FileDistance(sq1.FileOf(), sq2.FileOf()),
					RankDistance(sq1.RankOf(), sq2.RankOf()))
			}
		}
	}
}

// pseudoAttacksPreCompute fills pawnAttacks and pseudoAttacks: the attack
// set of every piece type on every square as if the rest of the board were
// empty. Non-sliders are built from fixed step tables; sliders are built by
// walking each of their four ray directions to the board edge.
func pseudoAttacksPreCompute() {
	kingSteps := []Direction{Northwest, North, Northeast, East, Southeast, South, Southwest, West}
	pawnSteps := []Direction{Northwest, Northeast}
	knightSteps := []Direction{West + Northwest, East + Northeast, North + Northwest, North + Northeast,
		South + Southwest, South + Southeast, West + Southwest, East + Southeast}

	for c := White; c <= Black; c++ {
		for sq := SqA1; sq <= SqH8; sq++ {
			addSteps(sq, c, pawnSteps, &pawnAttacks[c][sq])
			if c == White {
				addSteps(sq, c, kingSteps, &pseudoAttacks[King][sq])
				addSteps(sq, c, knightSteps, &pseudoAttacks[Knight][sq])
			}
		}
	}

	rookDirs := []Direction{North, East, South, West}
	bishopDirs := []Direction{Northeast, Southeast, Southwest, Northwest}
	for sq := SqA1; sq <= SqH8; sq++ {
		for _, d := range rookDirs {
			pseudoAttacks[Rook][sq] |= walkRay(sq, d)
		}
		for _, d := range bishopDirs {
			pseudoAttacks[Bishop][sq] |= walkRay(sq, d)
		}
		pseudoAttacks[Queen][sq] = pseudoAttacks[Rook][sq] | pseudoAttacks[Bishop][sq]
	}
}

// addSteps ORs the squares reached from sq by each single step in steps
// (mirrored for Black via c.Direction()) into *dst, rejecting any step that
// would wrap across a board edge.
func addSteps(sq Square, c Color, steps []Direction, dst *Bitboard) {
	for _, step := range steps {
		to := Square(int(sq) + c.Direction()*int(step))
		if to.IsValid() && squareDistance[sq][to] < 3 {
			*dst |= sqBb[to]
		}
	}
}
