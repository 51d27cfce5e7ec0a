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

// PieceType represents the type of a piece regardless of color
type PieceType uint8

// the six piece types plus a none value
const (
	PtNone PieceType = iota
	King
	Pawn
	Knight
	Bishop
	Rook
	Queen
	PtLength
)

var pieceTypeGamePhase = [PtLength]int{0, 0, 0, 1, 1, 2, 4}
var pieceTypeValue = [PtLength]Value{0, 2000, 100, 320, 330, 500, 900}
var pieceTypeString = [PtLength]string{"-", "K", "P", "N", "B", "R", "Q"}
var pieceTypeChar = [PtLength]string{"-", "k", "p", "n", "b", "r", "q"}

// IsValid checks if the piece type is one of the six valid types
func (pt PieceType) IsValid() bool {
	return pt < PtLength
}

// GamePhaseValue returns the weight of this piece type for game phase
// calculation
func (pt PieceType) GamePhaseValue() int {
	return pieceTypeGamePhase[pt]
}

// ValueOf returns the material value of this piece type
func (pt PieceType) ValueOf() Value {
	return pieceTypeValue[pt]
}

// Char returns the lower case algebraic letter for this piece type
func (pt PieceType) Char() string {
	return pieceTypeChar[pt]
}

func (pt PieceType) String() string {
	return pieceTypeString[pt]
}
