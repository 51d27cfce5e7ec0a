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

// Color represents one of the two sides of the board
type Color uint8

// the two colors
const (
	White Color = iota
	Black
	ColorLength int = 2
)

var colorDirection = [2]int{1, -1}
var colorMoveDirection = [2]Direction{North, South}
var colorPromotionRank = [2]Bitboard{Rank8_Bb, Rank1_Bb}
var colorPawnDoubleRank = [2]Bitboard{Rank3_Bb, Rank6_Bb}

// Flip returns the opposite color
func (c Color) Flip() Color {
	return c ^ 1
}

// IsValid checks if the color is either White or Black
func (c Color) IsValid() bool {
	return c < 2
}

// Direction returns +1 for White and -1 for Black. Used for square index
// arithmetic that is relative to a color's forward direction.
func (c Color) Direction() int {
	return colorDirection[c]
}

// MoveDirection returns North for White and South for Black
func (c Color) MoveDirection() Direction {
	return colorMoveDirection[c]
}

// PromotionRankBb returns the rank on which a pawn of this color promotes
func (c Color) PromotionRankBb() Bitboard {
	return colorPromotionRank[c]
}

// PawnDoubleRank returns the rank a pawn of this color reaches with a
// single step from its starting rank (rank 3 for White, rank 6 for Black),
// from where the second step of a double push is made
func (c Color) PawnDoubleRank() Bitboard {
	return colorPawnDoubleRank[c]
}

func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		panic("Invalid color")
	}
}
