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

import "fmt"

// Square represents one of the 64 squares of the board, a1=0 .. h8=63
type Square uint8

// the 64 squares plus a none value
const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone
)

// sqTo holds precomputed destination squares for each square/direction
// combination, avoiding file-wraparound checks at lookup time.
var sqTo [SqLength][8]Square

func init() {
	for sq := SqA1; sq < SqNone; sq++ {
		for i, d := range Directions {
			sqTo[sq][i] = toPreCompute(sq, d)
		}
	}
}

// IsValid checks if the square is one of the 64 valid board squares
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// FileOf returns the file the square is on
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank the square is on
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// SquareOf returns the square for the given file and rank, or SqNone if
// either is invalid
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square((int(r) << 3) + int(f))
}

// MakeSquare parses a two character algebraic square name (e.g. "e4") and
// returns SqNone if it is not a valid square
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := s[0] - 'a'
	r := s[1] - '1'
	if f > 7 || r > 7 {
		return SqNone
	}
	return SquareOf(File(f), Rank(r))
}

// To returns the square reached by moving one step in the given direction,
// or SqNone if that step would leave the board.
func (sq Square) To(d Direction) Square {
	for i, dir := range Directions {
		if dir == d {
			return sqTo[sq][i]
		}
	}
	return SqNone
}

// toPreCompute computes the destination square for a single step in the
// given direction, checking for file wraparound at the board edges.
func toPreCompute(sq Square, d Direction) Square {
	switch d {
	case East, Northeast, Southeast:
		if sq.FileOf() == FileH {
			return SqNone
		}
	case West, Northwest, Southwest:
		if sq.FileOf() == FileA {
			return SqNone
		}
	}
	to := int(sq) + int(d)
	if to < 0 || to >= int(SqNone) {
		return SqNone
	}
	return Square(to)
}

func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%s%s", sq.FileOf().String(), sq.RankOf().String())
}
