//
// Corvid - a UCI chess engine written in Go
//
// MIT License
//
// Copyright (c) 2020-2026 D. Shearer
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

package types

// Piece represents a colored chess piece as encoded in the board array.
// The color is stored in bit 3, the piece type in bits 0-2.
type Piece int8

// all pieces for both colors plus a none value
const (
	PieceNone   Piece = 0
	WhiteKing   Piece = 1
	WhitePawn   Piece = 2
	WhiteKnight Piece = 3
	WhiteBishop Piece = 4
	WhiteRook   Piece = 5
	WhiteQueen  Piece = 6
	BlackKing   Piece = 9
	BlackPawn   Piece = 10
	BlackKnight Piece = 11
	BlackBishop Piece = 12
	BlackRook   Piece = 13
	BlackQueen  Piece = 14
	PieceLength Piece = 16
)

// pieceToString is indexed with Piece values 0-15. Unused slots hold "-".
const pieceToString = " KPNBRQ- kpnbrq-"

// pieceToUniChar holds the unicode chess glyphs indexed as pieceToString
var pieceToUniChar = [16]string{
	"-", "♔", "♙", "♘", "♗", "♖", "♕", "-",
	"-", "♚", "♟", "♞", "♝", "♜", "♛", "-",
}

// MakePiece creates a piece from a color and a piece type
func MakePiece(c Color, pt PieceType) Piece {
	return Piece((int(c) << 3) + int(pt))
}

// ColorOf returns the color of the piece
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// TypeOf returns the piece type regardless of color
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 7)
}

// ValueOf returns the material value of the piece
func (p Piece) ValueOf() Value {
	return p.TypeOf().ValueOf()
}

// PieceFromChar parses a single character FEN piece letter into a Piece.
// Returns PieceNone for an empty string, a multi-character string, "-" or
// any character not found in the piece alphabet.
func PieceFromChar(s string) Piece {
	if len(s) != 1 {
		return PieceNone
	}
	idx := indexByte(pieceToString, s[0])
	if idx < 0 {
		return PieceNone
	}
	switch Piece(idx) {
	case 0, 7, 8, 15:
		return PieceNone
	default:
		return Piece(idx)
	}
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

// Char returns the lower case letter of the piece as used on a text board
// ("o" for pawns, "*" for the empty square)
func (p Piece) Char() string {
	switch p.TypeOf() {
	case PtNone:
		return "*"
	case Pawn:
		return "o"
	default:
		return p.TypeOf().Char()
	}
}

// UniChar returns the unicode chess glyph for the piece
func (p Piece) UniChar() string {
	return pieceToUniChar[p]
}

func (p Piece) String() string {
	return string(pieceToString[p])
}
