package main

import (
	"fmt"

	"github.com/higumachan/zobristhash-set/chess"
	"github.com/higumachan/zobristhash-set/zobrist"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	logger := log.WithFields(log.Fields{"demo": "chess"})

	board := chess.NewBoard()
	board.Setup()
	initial := board.Hash()
	logger.WithField("hash", hex(initial)).Info("initial position")

	board.Clear(1, 0)
	logger.WithField("hash", hex(board.Hash())).Info("removed white pawn from a2")

	board.Place(1, 0, chess.WhitePawn)
	logger.WithFields(log.Fields{
		"hash":     hex(board.Hash()),
		"restored": board.Hash() == initial,
	}).Info("put the pawn back")

	logger.WithField("pieces", len(board.Placements())).Info("pieces on board")

	// A fingerprint is a plain uint64; it can be stored and picked
	// back up later.
	tags := zobrist.Empty(zobrist.StringKey)
	tags.Add("alpha")
	tags.Add("beta")
	raw := tags.Uint64()

	resumed := zobrist.FromUint64(zobrist.StringKey, raw)
	resumed.Remove("beta")
	resumed.Remove("alpha")
	log.WithFields(log.Fields{
		"raw":   hex(raw),
		"final": hex(resumed.Uint64()),
	}).Info("resumed fingerprint drained back to zero")
}

func hex(v uint64) string {
	return fmt.Sprintf("%016x", v)
}
