/*
 * Corvid - a UCI chess engine written in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 D. Shearer
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package search

import (
	"github.com/dshearer/corvid/internal/attacks"
	"github.com/dshearer/corvid/internal/position"
	. "github.com/dshearer/corvid/internal/types"
)

// maxAttackers bounds the swap-off array: 32 is the most pieces that can
// ever stand on a board, so it can never be exceeded regardless of position.
const maxAttackers = 32

// see runs a static exchange evaluation on a capturing move: it replays the
// sequence of captures both sides would make on move.To() in ascending
// value order (least valuable attacker first) and negamaxes the resulting
// gain/loss chain back to the root, the same swap-list technique the
// quiescence search uses to decide whether a capture is worth searching.
func see(p *position.Position, move Move) Value {
	if move.MoveType() == EnPassant {
		// the move preceding an en passant capture is never itself a
		// capture, so there is nothing upstream to swap off against
		return 100
	}

	var gain [maxAttackers]Value
	ply := 0
	toSquare := move.To()
	fromSquare := move.From()
	movedPiece := p.GetPiece(fromSquare)
	nextPlayer := p.NextPlayer()

	// shrinking copy of the occupancy, used to reveal x-ray attacks as
	// pieces are swapped off one at a time
	occupied := p.OccupiedAll()

	attackers := attacks.AttacksTo(p, toSquare, White) | attacks.AttacksTo(p, toSquare, Black)

	gain[ply] = p.GetPiece(toSquare).ValueOf()

	for {
		ply++
		nextPlayer = nextPlayer.Flip()

		if move.MoveType() == Promotion {
			gain[ply] = move.PromotionType().ValueOf() - Pawn.ValueOf() - gain[ply-1]
		} else {
			gain[ply] = movedPiece.ValueOf() - gain[ply-1]
		}

		// standing pat here would not change the final score, so stop early
		if max(-gain[ply-1], gain[ply]) < 0 {
			break
		}

		attackers.PopSquare(fromSquare)
		occupied.PopSquare(fromSquare)
		attackers |= attacks.RevealedAttacks(p, toSquare, occupied, White) |
			attacks.RevealedAttacks(p, toSquare, occupied, Black)

		fromSquare = leastValuableAttacker(p, attackers, nextPlayer)
		if fromSquare == SqNone {
			break
		}
		movedPiece = p.GetPiece(fromSquare)
	}

	for ply--; ply > 0; ply-- {
		gain[ply-1] = -max(-gain[ply-1], gain[ply])
	}

	return gain[0]
}

// ascendingValue lists the piece types in increasing material value; King is
// not a legal SEE participant in the middle of the chain but is included
// last since a king recapture is still possible in rare positions.
var ascendingValue = [...]PieceType{Pawn, Knight, Bishop, Rook, Queen, King}

// leastValuableAttacker picks the cheapest attacker in bitboard among
// color's pieces, trying piece types in ascending value order and settling
// ties with the lowest square index.
func leastValuableAttacker(p *position.Position, bitboard Bitboard, color Color) Square {
	for _, pt := range ascendingValue {
		if attackersOfType := bitboard & p.PiecesBb(color, pt); attackersOfType != 0 {
			return attackersOfType.Lsb()
		}
	}
	return SqNone
}

func max(x, y Value) Value {
	if x > y {
		return x
	}
	return y
}
