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

package movegen

import (
	"github.com/dshearer/corvid/internal/attacks"
	"github.com/dshearer/corvid/internal/position"
	. "github.com/dshearer/corvid/internal/types"
)

// legalityMasks bundles the precomputed bitboards a single pass of move
// generation needs in order to emit only legal moves: where the king may
// step, which own pieces are pinned and along which ray, and which squares
// a non-king move must land on to resolve an existing check.
//
// Every non-king move must land inside checkMask. Every king move must
// avoid ownPieces and kingThreats. A piece on a square with pinned.Has(sq)
// true may only move within pinRay[sq] (which already includes the pinning
// piece's square, for the capture that removes the pin).
type legalityMasks struct {
	kingSq      Square
	numCheckers int
	checkMask   Bitboard // squares a non-king move must land on
	kingThreats Bitboard // squares the king may not step onto (king removed from occupancy)
	diagPins    Bitboard // union of all diagonal pin rays, king included
	hvPins      Bitboard // union of all file/rank pin rays, king included
	pinned      Bitboard // own pieces restricted by a pin
	pinRay      [SqLength]Bitboard
}

// diagonal returns true if the orientation lies on a bishop ray rather
// than a rook ray. NW, NE, SE and SW are the even-valued constants.
func diagonal(o Orientation) bool {
	return o%2 == 0
}

// rayIncreases is true for the four orientations whose square index grows
// as the ray extends away from the origin (NW, N, NE, E), matching the
// Direction deltas in direction.go (+7, +8, +9, +1).
func rayIncreases(o Orientation) bool {
	return o < 4
}

// nearestOnRay returns the square of the first occupied bit of ray when
// walking away from the ray's origin.
func nearestOnRay(ray Bitboard, o Orientation) Square {
	if rayIncreases(o) {
		return ray.Lsb()
	}
	return ray.Msb()
}

// attackedBy reports whether sq is attacked by a piece of color by, using
// the given occupancy instead of the position's actual occupancy. This is
// the same reverse-attack technique as position.Position.IsAttacked and
// attacks.AttacksTo - fire each piece type's attack pattern from sq and
// intersect with by's pieces - but parameterized on occupancy so that
// callers can ask "attacked after this piece is removed" without mutating
// the position.
func attackedBy(p *position.Position, sq Square, by Color, occupied Bitboard) bool {
	if GetPawnAttacks(by.Flip(), sq)&p.PiecesBb(by, Pawn) != 0 {
		return true
	}
	if GetPseudoAttacks(Knight, sq)&p.PiecesBb(by, Knight) != 0 {
		return true
	}
	if GetPseudoAttacks(King, sq)&p.PiecesBb(by, King) != 0 {
		return true
	}
	if GetAttacksBb(Bishop, sq, occupied)&(p.PiecesBb(by, Bishop)|p.PiecesBb(by, Queen)) != 0 {
		return true
	}
	if GetAttacksBb(Rook, sq, occupied)&(p.PiecesBb(by, Rook)|p.PiecesBb(by, Queen)) != 0 {
		return true
	}
	return false
}

// computeLegalityMasks is the one-pass analysis step that makes the rest of
// move generation correct by construction instead of generate-then-verify:
// it locates checkers, builds the blocker/capture mask a check forces on
// every other piece, removes the king from the occupancy to see which
// squares it may not step onto, and walks the eight rays out of the king
// square to find pins.
//
// hasCheck is position.Position.HasCheck()'s cached flag - when the king is
// not in check we can skip the attacker search entirely and hand back the
// universal check mask.
func computeLegalityMasks(p *position.Position, nextPlayer Color, hasCheck bool) legalityMasks {
	kingSq := p.KingSquare(nextPlayer)
	opp := nextPlayer.Flip()
	occupiedAll := p.OccupiedAll()
	ownBb := p.OccupiedBb(nextPlayer)

	m := legalityMasks{
		kingSq:    kingSq,
		checkMask: BbAll,
	}

	// King attackers: fire every attack pattern from the king square and
	// intersect with the opponent's pieces of the matching type - the
	// reverse-attack technique already used by attacks.AttacksTo.
	if hasCheck {
		checkers := attacks.AttacksTo(p, kingSq, opp)
		m.numCheckers = checkers.PopCount()
		switch {
		case m.numCheckers >= 2:
			// double check: only the king can move
			m.checkMask = BbZero
		case m.numCheckers == 1:
			checkerSq := checkers.Lsb()
			blockerMask := Intermediate(kingSq, checkerSq)
			m.checkMask = checkers | blockerMask
		}
	}

	// King threats: squares attacked by the opponent with the king itself
	// removed from the occupancy, so that a slider the king is currently
	// blocking still "sees" the square behind it.
	occupiedNoKing := occupiedAll &^ kingSq.Bb()
	for candidates := GetPseudoAttacks(King, kingSq) &^ ownBb; candidates != BbZero; {
		sq := candidates.PopLsb()
		if attackedBy(p, sq, opp, occupiedNoKing) {
			m.kingThreats.PushSquare(sq)
		}
	}

	// Pins: walk all eight rays out from the king. The first occupied
	// square on a ray is either nothing (no pin), an enemy piece (no pin -
	// that's just a checker, already handled above), or one of our own
	// pieces - in which case we keep looking further out on the same ray
	// for an enemy slider that matches the ray's orientation (diagonal ->
	// bishop/queen, orthogonal -> rook/queen). If we find one, the first
	// piece is pinned and may only move within the ray between the king
	// and the pinning piece (inclusive of the pinner, for the capture that
	// removes the pin).
	for o := Orientation(0); o < 8; o++ {
		ray := kingSq.Ray(o)
		blockers := ray & occupiedAll
		if blockers == BbZero {
			continue
		}
		nearSq := nearestOnRay(blockers, o)
		if !ownBb.Has(nearSq) {
			continue
		}
		beyond := nearSq.Ray(o) & occupiedAll
		if beyond == BbZero {
			continue
		}
		pinnerSq := nearestOnRay(beyond, o)
		pinner := p.GetPiece(pinnerSq)
		if pinner.ColorOf() != opp {
			continue
		}
		isDiag := diagonal(o)
		pt := pinner.TypeOf()
		if pt != Queen && !(isDiag && pt == Bishop) && !(!isDiag && pt == Rook) {
			continue
		}
		pinRay := Intermediate(kingSq, pinnerSq) | pinnerSq.Bb()
		m.pinned.PushSquare(nearSq)
		m.pinRay[nearSq] = pinRay
		if isDiag {
			m.diagPins |= pinRay | kingSq.Bb()
		} else {
			m.hvPins |= pinRay | kingSq.Bb()
		}
	}

	return m
}

// restrict returns the set of squares a piece on fromSquare may legally
// move to, given the targets it pseudo-attacks: pinned pieces are confined
// to their pin ray and every move (but the king's own) must land in the
// check mask.
func (m *legalityMasks) restrict(fromSquare Square, targets Bitboard) Bitboard {
	targets &= m.checkMask
	if m.pinned.Has(fromSquare) {
		targets &= m.pinRay[fromSquare]
	}
	return targets
}

// enPassantRevealsCheck simulates the removal of both the capturing and the
// captured pawn - the two squares an en passant capture vacates - and asks
// whether that exposes the king to a rook or queen sliding along the rank.
// This is the discovered-check special case en passant has and no other
// move does: a normal capture removes one piece, en passant removes two
// pieces that usually share a rank with the king.
func enPassantRevealsCheck(p *position.Position, nextPlayer Color, kingSq, fromSquare, capturedPawnSquare Square) bool {
	if kingSq.RankOf() != fromSquare.RankOf() {
		return false
	}
	occupied := p.OccupiedAll() &^ fromSquare.Bb() &^ capturedPawnSquare.Bb()
	opp := nextPlayer.Flip()
	return GetAttacksBb(Rook, kingSq, occupied)&(p.PiecesBb(opp, Rook)|p.PiecesBb(opp, Queen)) != 0
}
