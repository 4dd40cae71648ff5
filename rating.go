package elo

// Rated is the capability a participant type must provide to have its
// rating adjusted by a Ranking. Any conforming type works identically; the
// engine never inspects the concrete type and never touches anything beyond
// the rating value.
type Rated interface {
	// Rating returns the participant's current rating. It must be a pure
	// read with no side effects.
	Rating() float32

	// ChangeRating adds delta to the participant's current rating. It is
	// the only mutation a Ranking ever performs.
	ChangeRating(delta float32)
}

// Player is a minimal in-memory participant for callers that do not have
// their own rating-bearing type.
type Player struct {
	rating float32
}

// NewPlayer returns a Player with the given starting rating.
func NewPlayer(rating float32) *Player {
	return &Player{rating: rating}
}

// Rating returns the player's current rating.
func (p *Player) Rating() float32 {
	return p.rating
}

// ChangeRating adds delta to the player's rating.
func (p *Player) ChangeRating(delta float32) {
	p.rating += delta
}
