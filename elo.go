package elo

import "math"

// Ranking computes Elo rating updates for pairs of participants. Its only
// state is the K-factor, which scales how many rating points are at stake
// per contest; a single Ranking can be reused across any number of outcome
// calls and participant pairs.
type Ranking struct {
	kFactor int
}

// New returns a Ranking with the given K-factor. The value is not
// validated: zero or degenerate K-factors are accepted and simply flow
// through the arithmetic.
func New(kFactor int) *Ranking {
	return &Ranking{kFactor: kFactor}
}

// KFactor returns the current K-factor.
func (r *Ranking) KFactor() int {
	return r.kFactor
}

// SetKFactor replaces the K-factor.
func (r *Ranking) SetKFactor(kFactor int) {
	r.kFactor = kFactor
}

// expectedScore returns the logistic expected score for playerOne against
// playerTwo: a 400-point rating advantage implies a 10:1 expected win
// probability.
func expectedScore(playerOne, playerTwo Rated) float32 {
	exponent := (playerTwo.Rating() - playerOne.Rating()) / 400
	return 1 / (1 + float32(math.Pow(10, float64(exponent))))
}

// applyOutcome adjusts both participants' ratings given playerOne's actual
// score (1 for a win, 0.5 for a tie). A single change is computed and
// playerTwo receives its exact negation, so every outcome is zero-sum.
func (r *Ranking) applyOutcome(playerOne, playerTwo Rated, score float32) {
	change := float32(r.kFactor) * (score - expectedScore(playerOne, playerTwo))
	playerOne.ChangeRating(change)
	playerTwo.ChangeRating(-change)
}

// Win records a win for winner over loser. An already-favored winner gains
// little; an underdog winner gains close to the full K-factor.
func (r *Ranking) Win(winner, loser Rated) {
	r.applyOutcome(winner, loser, 1)
}

// Tie records a draw. Equal ratings are left unchanged; otherwise the
// lower-rated participant gains a small amount from the higher-rated one.
func (r *Ranking) Tie(playerOne, playerTwo Rated) {
	r.applyOutcome(playerOne, playerTwo, 0.5)
}

// Loss records a loss for loser against winner. It is Win with the
// arguments reversed.
func (r *Ranking) Loss(loser, winner Rated) {
	r.Win(winner, loser)
}
