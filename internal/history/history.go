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

// Package history provides data structures and functionality to manage
// history driven move tables (e.g. history counter, counter moves, etc.)
package history

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/dshearer/corvid/internal/types"
)

var out = message.NewPrinter(language.German)

// historyCap bounds the magnitude a from/to history score can reach, so that
// a move that keeps causing beta cuts deep in the tree cannot overflow the
// score field move ordering packs it into.
const historyCap int64 = 1 << 20

// History is a data structure updated during search to provide the move
// generator with valuable information for move sorting: a from/to counter
// per color that grows when a quiet move causes a beta cutoff, and a table
// of the move that most recently refuted each opponent move.
type History struct {
	HistoryCount [2][64][64]int64
	CounterMoves [64][64]Move
}

// NewHistory creates a new History instance.
func NewHistory() *History {
	return &History{}
}

// Reward credits a quiet move that caused a beta cutoff. The increment grows
// with depth so that cutoffs found deep in the tree - more expensive to
// reproduce - are weighted more heavily than shallow ones, and the running
// total is pulled back towards zero in proportion to its own size so a move
// that stops cutting off decays instead of keeping a permanently inflated
// score (the same "gravity" scheme the teacher's killer-move table uses for
// slot aging, applied here to a magnitude instead of a slot index).
func (h *History) Reward(us Color, from, to Square, depth int) {
	bonus := int64(1) << depth
	h.update(us, from, to, bonus)
}

// Penalize debits a quiet move that was searched but did not cause a
// cutoff, at half the rate Reward credits one, and never lets the count go
// negative.
func (h *History) Penalize(us Color, from, to Square, depth int) {
	bonus := int64(1) << depth
	h.update(us, from, to, -bonus/2)
	if h.HistoryCount[us][from][to] < 0 {
		h.HistoryCount[us][from][to] = 0
	}
}

func (h *History) update(us Color, from, to Square, bonus int64) {
	current := h.HistoryCount[us][from][to]
	current += bonus - (current*abs64(bonus))/historyCap
	h.HistoryCount[us][from][to] = current
}

// RecordCounterMove remembers move as the reply that refuted lastMove.
func (h *History) RecordCounterMove(lastMove, move Move) {
	if lastMove != MoveNone {
		h.CounterMoves[lastMove.From()][lastMove.To()] = move
	}
}

// Clear resets all history counters and counter moves, e.g. at the start of
// a new game so stale scores from a previous position do not bias ordering.
func (h *History) Clear() {
	*h = History{}
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func (h History) String() string {
	sb := strings.Builder{}
	for sf := SqA1; sf < SqNone; sf++ {
		for st := SqA1; st < SqNone; st++ {
			sb.WriteString(out.Sprintf("Move=%s%s: ", sf.String(), st.String()))
			for c := White; c <= 1; c++ {
				count := h.HistoryCount[c][sf][st]
				sb.WriteString(out.Sprintf("%s=%-7d ", c.String(), count))
			}
			m := h.CounterMoves[sf][st]
			sb.WriteString(out.Sprintf("cm=%s\n", m.StringUci()))
		}
	}
	return sb.String()
}
