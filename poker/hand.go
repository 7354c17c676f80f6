package poker

import (
	"fmt"
	"strings"
)

// HandSize is the number of cards in a hand.
const HandSize = 5

// Hand is five cards in the order they were written.
type Hand [HandSize]Card

// ParseError reports a hand string that does not follow the hand grammar.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid hand %q: %s", e.Input, e.Reason)
}

// ParseHand parses five space-separated card tokens, e.g. "4S 5S 6S 7S 10S".
// Tokens are separated by exactly one space.
func ParseHand(s string) (Hand, error) {
	var h Hand

	tokens := strings.Split(s, " ")
	if len(tokens) != HandSize {
		return h, &ParseError{
			Input:  s,
			Reason: fmt.Sprintf("want %d cards, got %d", HandSize, len(tokens)),
		}
	}

	for i, token := range tokens {
		card, err := ParseCard(token)
		if err != nil {
			return h, &ParseError{Input: s, Reason: err.Error()}
		}
		h[i] = card
	}

	return h, nil
}

// MustParseHand parses a hand and panics on error (for tests)
func MustParseHand(s string) Hand {
	h, err := ParseHand(s)
	if err != nil {
		panic(err)
	}
	return h
}

// String returns the cards joined by spaces in canonical notation.
func (h Hand) String() string {
	cardStrs := make([]string, 0, HandSize)
	for _, card := range h {
		cardStrs = append(cardStrs, card.String())
	}
	return strings.Join(cardStrs, " ")
}
