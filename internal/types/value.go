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

// Value is a centipawn evaluation score, also used to encode mate distances
type Value int16

// well known evaluation values
const (
	ValueZero                Value = 0
	ValueDraw                Value = 0
	ValueOne                 Value = 1
	ValueInf                 Value = 15_000
	ValueNA                  Value = -ValueInf - 1
	ValueMax                 Value = 10_000
	ValueMin                       = -ValueMax
	ValueCheckMate           Value = ValueMax
	ValueCheckMateThreshold        = ValueCheckMate - Value(MaxDepth) - 1
)

// IsValid checks if the value is within the representable evaluation range
func (v Value) IsValid() bool {
	return v >= ValueMin && v <= ValueMax
}

// IsCheckMateValue checks if the value encodes a forced mate score
func (v Value) IsCheckMateValue() bool {
	a := v
	if a < 0 {
		a = -a
	}
	return a > ValueCheckMateThreshold && a <= ValueCheckMate
}

// String formats the value the way the UCI protocol expects a score to be
// reported ("cp <n>" or "mate <n>")
func (v Value) String() string {
	switch {
	case v == ValueNA:
		return "N/A"
	case v.IsCheckMateValue():
		var plies int
		if v > 0 {
			plies = int(ValueCheckMate - v)
		} else {
			plies = int(ValueCheckMate + v)
		}
		moves := (plies + 1) / 2
		if v < 0 {
			moves = -moves
		}
		return fmt.Sprintf("mate %d", moves)
	default:
		return fmt.Sprintf("cp %d", v)
	}
}
