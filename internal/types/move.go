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

import (
	"fmt"
	"strings"

	"github.com/dshearer/corvid/internal/assert"
)

// Move is a packed 32 bit representation of a chess move.
//
//  Bits  0- 5: to square
//  Bits  6-11: from square
//  Bits 12-13: promotion piece type (Knight=0 .. Queen=3)
//  Bits 14-15: move type
//  Bits 16-31: sort value (biased by -ValueNA so it is always non negative)
type Move uint32

// MoveNone represents the absence of a move
const MoveNone Move = 0

const (
	squareMask    = 0x3F
	fromShift     = 6
	promTypeShift = 12
	typeShift     = 14
	valueShift    = 16

	toMask       = squareMask
	fromMask     = squareMask << fromShift
	promTypeMask = 3 << promTypeShift
	moveTypeMask = 3 << typeShift
	moveMask     = 0xFFFF
	valueMask    = 0xFFFF << valueShift
)

// CreateMove packs a move without an associated sort value
func CreateMove(from Square, to Square, t MoveType, promType PieceType) Move {
	if assert.DEBUG {
		assert.Assert(from.IsValid(), "CreateMove: invalid from square")
		assert.Assert(to.IsValid(), "CreateMove: invalid to square")
		assert.Assert(t.IsValid(), "CreateMove: invalid move type")
	}
	m := Move(to) | Move(from)<<fromShift | Move(t)<<typeShift
	if t == Promotion {
		m |= Move(promType-Knight) << promTypeShift
	}
	return m
}

// CreateMoveValue packs a move together with a sort value
func CreateMoveValue(from Square, to Square, t MoveType, promType PieceType, value Value) Move {
	m := CreateMove(from, to, t, promType)
	return m.SetValue(value)
}

// MoveType returns the type of the move
func (m Move) MoveType() MoveType {
	return MoveType((m & moveTypeMask) >> typeShift)
}

// PromotionType returns the piece type a pawn promotes to. Only meaningful
// for moves of type Promotion.
func (m Move) PromotionType() PieceType {
	return PieceType((m&promTypeMask)>>promTypeShift) + Knight
}

// To returns the destination square of the move
func (m Move) To() Square {
	return Square(m & toMask)
}

// From returns the origin square of the move
func (m Move) From() Square {
	return Square((m & fromMask) >> fromShift)
}

// MoveOf strips the sort value from the move, leaving only from/to/type/
// promotion information
func (m Move) MoveOf() Move {
	return m & moveMask
}

// ValueOf returns the sort value that was attached to the move via
// SetValue, or ValueNA if none was ever set
func (m Move) ValueOf() Value {
	return Value((m&valueMask)>>valueShift) + ValueNA
}

// SetValue attaches a sort value to the move. It is a no-op on MoveNone.
func (m Move) SetValue(v Value) Move {
	if m == MoveNone {
		return m
	}
	return m.MoveOf() | Move(v-ValueNA)<<valueShift
}

// IsValid checks that the move's squares and move type are all valid and
// that it is not MoveNone
func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid() && m.MoveType().IsValid()
}

func (m Move) String() string {
	if m == MoveNone {
		return "no move"
	}
	var sb strings.Builder
	sb.WriteString(m.From().String())
	sb.WriteString(m.To().String())
	if m.MoveType() == Promotion {
		sb.WriteString(strings.ToLower(m.PromotionType().String()))
	}
	if m.ValueOf() != ValueNA {
		sb.WriteString(fmt.Sprintf(" (%s)", m.ValueOf().String()))
	}
	return sb.String()
}

// StringUci formats the move the way the UCI protocol expects ("e2e4",
// "e7e8q")
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.MoveType() == Promotion {
		s += strings.ToLower(m.PromotionType().String())
	}
	return s
}

// StringBits returns the raw move bits formatted for debugging
func (m Move) StringBits() string {
	return fmt.Sprintf("%032b", uint32(m))
}
