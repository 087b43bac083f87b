package chess

// Piece identifies a chess piece by color and kind. The zero value
// NoPiece marks an empty square.
type Piece uint8

const (
	NoPiece Piece = iota
	WhitePawn
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
)

var pieceNames = map[Piece]string{
	NoPiece:     "none",
	WhitePawn:   "white pawn",
	WhiteKnight: "white knight",
	WhiteBishop: "white bishop",
	WhiteRook:   "white rook",
	WhiteQueen:  "white queen",
	WhiteKing:   "white king",
	BlackPawn:   "black pawn",
	BlackKnight: "black knight",
	BlackBishop: "black bishop",
	BlackRook:   "black rook",
	BlackQueen:  "black queen",
	BlackKing:   "black king",
}

func (p Piece) String() string {
	if name, ok := pieceNames[p]; ok {
		return name
	}
	return "invalid piece"
}
