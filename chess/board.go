// Package chess is the example consumer of the zobrist package: a
// board that owns per-square pieces and keeps an incremental
// fingerprint of the whole position. Every placement change costs one
// XOR; equal fingerprints mean (up to hash collisions) equal positions,
// which is the cheap repetition check Zobrist hashing exists for.
package chess

import (
	"github.com/higumachan/zobristhash-set/internal/collections"
	"github.com/higumachan/zobristhash-set/zobrist"
)

const BoardSize = 8

// Placement pins a piece to a square. It is the element type of the
// board's fingerprint: moving a piece removes one placement and adds
// another.
type Placement struct {
	X, Y  int
	Piece Piece
}

func placementKey(pl Placement) uint64 {
	return zobrist.BytesKey([]byte{byte(pl.X), byte(pl.Y), byte(pl.Piece)})
}

type Board struct {
	squares     [BoardSize][BoardSize]Piece
	placements  collections.Set[Placement]
	fingerprint zobrist.Set[Placement]
}

func NewBoard() *Board {
	return &Board{
		placements:  collections.NewProbeSet(placementKey),
		fingerprint: zobrist.Empty(placementKey),
	}
}

// Place puts p on square (x, y), replacing whatever occupied it.
func (b *Board) Place(x, y int, p Piece) {
	b.set(x, y, p)
}

// Clear empties square (x, y).
func (b *Board) Clear(x, y int) {
	b.set(x, y, NoPiece)
}

func (b *Board) set(x, y int, p Piece) {
	if old := b.squares[x][y]; old != NoPiece {
		b.fingerprint.Remove(Placement{x, y, old})
		_ = b.placements.Remove(Placement{x, y, old})
	}
	if p != NoPiece {
		b.fingerprint.Add(Placement{x, y, p})
		_ = b.placements.Add(Placement{x, y, p})
	}
	b.squares[x][y] = p
}

// At returns the piece on square (x, y), NoPiece if empty.
func (b *Board) At(x, y int) Piece {
	return b.squares[x][y]
}

// Placements returns every occupied square, in no particular order.
func (b *Board) Placements() []Placement {
	return b.placements.Entries()
}

// Hash returns the position fingerprint.
func (b *Board) Hash() uint64 {
	return b.fingerprint.Uint64()
}

var (
	whiteBackRank = [BoardSize]Piece{
		WhiteRook, WhiteKnight, WhiteBishop, WhiteQueen,
		WhiteKing, WhiteBishop, WhiteKnight, WhiteRook,
	}
	blackBackRank = [BoardSize]Piece{
		BlackRook, BlackKnight, BlackBishop, BlackQueen,
		BlackKing, BlackBishop, BlackKnight, BlackRook,
	}
)

// Setup places the standard initial position: back ranks on rows 0 and
// 7, pawns on rows 1 and 6.
func (b *Board) Setup() {
	for i := 0; i < BoardSize; i++ {
		b.Place(0, i, whiteBackRank[i])
		b.Place(1, i, WhitePawn)
		b.Place(6, i, BlackPawn)
		b.Place(7, i, blackBackRank[i])
	}
}
