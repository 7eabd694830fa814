package domain

import "math/rand"

// CardLabel identifies the face value printed on a board cell.
type CardLabel string

const (
	CardAce        CardLabel = "ace"
	CardTwo        CardLabel = "two"
	CardThree      CardLabel = "three"
	CardFour       CardLabel = "four"
	CardRedJoker   CardLabel = "red_joker"
	CardBlackJoker CardLabel = "black_joker"
)

// MovementSpec describes how far a card lets its occupant travel in one turn.
// Numbered cards mandate an exact distance; jokers allow any distance in
// [Min, Max], chosen stepwise through the joker move state machine.
type MovementSpec struct {
	Flexible bool
	Distance int // exact distance when !Flexible
	Min      int // inclusive bounds when Flexible
	Max      int
}

var movementSpecs = map[CardLabel]MovementSpec{
	CardAce:        {Distance: 1},
	CardTwo:        {Distance: 2},
	CardThree:      {Distance: 3},
	CardFour:       {Distance: 4},
	CardRedJoker:   {Flexible: true, Min: 1, Max: 4},
	CardBlackJoker: {Flexible: true, Min: 1, Max: 4},
}

// MovementSpecFor returns the movement rule attached to a card label.
func MovementSpecFor(label CardLabel) (MovementSpec, error) {
	spec, ok := movementSpecs[label]
	if !ok {
		return MovementSpec{}, ErrUnknownCardLabel
	}
	return spec, nil
}

// Allows reports whether the spec permits a move of the given distance.
func (s MovementSpec) Allows(distance int) bool {
	if s.Flexible {
		return distance >= s.Min && distance <= s.Max
	}
	return distance == s.Distance
}

// IsJoker reports whether the label is one of the two flexible-movement cards.
func (l CardLabel) IsJoker() bool {
	return l == CardRedJoker || l == CardBlackJoker
}

// requiredCounts is the only legal card distribution for a 16-cell board.
var requiredCounts = map[CardLabel]int{
	CardRedJoker:   1,
	CardBlackJoker: 1,
	CardAce:        4,
	CardTwo:        4,
	CardThree:      4,
	CardFour:       2,
}

// NewDeck returns the canonical 16-card deck in a fixed order.
func NewDeck() []CardLabel {
	deck := make([]CardLabel, 0, DeckSize)
	deck = append(deck, CardRedJoker, CardBlackJoker)
	for i := 0; i < 4; i++ {
		deck = append(deck, CardAce, CardTwo, CardThree)
	}
	deck = append(deck, CardFour, CardFour)
	return deck
}

// ShuffleDeck returns a shuffled copy of the given deck.
func ShuffleDeck(rng *rand.Rand, deck []CardLabel) []CardLabel {
	out := make([]CardLabel, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
