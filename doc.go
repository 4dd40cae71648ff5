// Package elo implements the Elo pairwise rating system: given two
// participants and a contest outcome (win, tie, or loss), it computes and
// applies symmetric rating adjustments based on the difference between the
// participants' current ratings and a configurable K-factor.
//
// The package is a pure computation library. It performs no I/O, stores no
// participants, and keeps no state beyond the K-factor on a Ranking
// instance. Participants are supplied by the caller as any type satisfying
// the Rated interface; how a rating is stored (struct field, database row)
// is entirely the caller's concern, as is serializing access to a shared
// participant or Ranking across goroutines.
//
// Arithmetic is single precision. Ratings, deltas, and expected scores are
// float32 throughout, matching the reference behavior this package
// reproduces. The K-factor is a whole number; it is converted to float32 at
// the point of use, so fractional sensitivities are not representable.
package elo
