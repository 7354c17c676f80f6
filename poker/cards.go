package poker

import (
	"fmt"
	"strings"
)

// Rank is a card face value as an ordinal, 0 for a deuce up to 12 for an ace.
type Rank uint8

// Suit identifies one of the four suits. Suits have no order.
type Suit uint8

// Rank constants (0-12 for 2-A)
const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Suit constants
const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

const (
	rankSymbols = "23456789TJQKA"
	suitSymbols = "cdhs"
)

// String returns the rank symbol ("2".."9", "T", "J", "Q", "K", "A").
func (r Rank) String() string {
	if r > Ace {
		return "?"
	}
	return string(rankSymbols[r])
}

// String returns the suit symbol (c, d, h, s).
func (s Suit) String() string {
	if s > Spades {
		return "?"
	}
	return string(suitSymbols[s])
}

// Card is a single playing card.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a card from rank and suit
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the string representation (e.g., "As", "Th")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// ParseCard parses a card token such as "As", "th" or "10d".
// A leading "10" is read as a ten; ranks and suits are case-insensitive.
func ParseCard(s string) (Card, error) {
	token := s
	if rest, ok := strings.CutPrefix(token, "10"); ok {
		token = "T" + rest
	}
	if len(token) != 2 {
		return Card{}, fmt.Errorf("invalid card %q: want rank and suit", s)
	}

	rank, ok := parseRank(token[0])
	if !ok {
		return Card{}, fmt.Errorf("invalid rank %q in card %q", token[0], s)
	}
	suit, ok := parseSuit(token[1])
	if !ok {
		return Card{}, fmt.Errorf("invalid suit %q in card %q", token[1], s)
	}

	return NewCard(rank, suit), nil
}

func parseRank(c byte) (Rank, bool) {
	switch c {
	case '2':
		return Two, true
	case '3':
		return Three, true
	case '4':
		return Four, true
	case '5':
		return Five, true
	case '6':
		return Six, true
	case '7':
		return Seven, true
	case '8':
		return Eight, true
	case '9':
		return Nine, true
	case 'T', 't':
		return Ten, true
	case 'J', 'j':
		return Jack, true
	case 'Q', 'q':
		return Queen, true
	case 'K', 'k':
		return King, true
	case 'A', 'a':
		return Ace, true
	default:
		return 0, false
	}
}

func parseSuit(c byte) (Suit, bool) {
	switch c {
	case 'c', 'C':
		return Clubs, true
	case 'd', 'D':
		return Diamonds, true
	case 'h', 'H':
		return Hearts, true
	case 's', 'S':
		return Spades, true
	default:
		return 0, false
	}
}
