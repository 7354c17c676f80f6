package poker

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "As", NewCard(Ace, Spades).String())
	assert.Equal(t, "2c", NewCard(Two, Clubs).String())
	assert.Equal(t, "Th", NewCard(Ten, Hearts).String())
	assert.Equal(t, "?", Rank(13).String())
	assert.Equal(t, "?", Suit(4).String())
}

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		wantCard Card
		wantErr  bool
	}{
		{name: "ace of spades", input: "As", wantCard: NewCard(Ace, Spades)},
		{name: "upper case suit", input: "AS", wantCard: NewCard(Ace, Spades)},
		{name: "lower case rank", input: "kd", wantCard: NewCard(King, Diamonds)},
		{name: "two of hearts", input: "2h", wantCard: NewCard(Two, Hearts)},
		{name: "ten with T notation", input: "Tc", wantCard: NewCard(Ten, Clubs)},
		{name: "ten with 10 notation", input: "10c", wantCard: NewCard(Ten, Clubs)},
		{name: "invalid rank", input: "Xs", wantErr: true},
		{name: "one is not a rank", input: "1s", wantErr: true},
		{name: "invalid suit", input: "Ax", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "too short", input: "A", wantErr: true},
		{name: "too long", input: "Asd", wantErr: true},
		{name: "ten missing suit", input: "10", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			card, err := ParseCard(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantCard, card)
		})
	}
}

func TestParseHand(t *testing.T) {
	t.Parallel()

	h, err := ParseHand("4S 5H 6D 10C AS")
	require.NoError(t, err)
	assert.Equal(t, Hand{
		NewCard(Four, Spades),
		NewCard(Five, Hearts),
		NewCard(Six, Diamonds),
		NewCard(Ten, Clubs),
		NewCard(Ace, Spades),
	}, h)
	assert.Equal(t, "4s 5h 6d Tc As", h.String())
}

func TestParseHandErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "four cards", input: "4S 5S 6S 7S"},
		{name: "six cards", input: "4S 5S 6S 7S 8S 9S"},
		{name: "double space", input: "4S  5S 6S 7S 8S"},
		{name: "trailing space", input: "4S 5S 6S 7S 8S "},
		{name: "bad rank", input: "4S 5S 6S 7S ZS"},
		{name: "bad suit", input: "4S 5S 6S 7S 8X"},
		{name: "long token", input: "4S 5S 6S 7S 8SS"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseHand(tc.input)
			require.Error(t, err)

			var perr *ParseError
			require.True(t, errors.As(err, &perr), "expected *ParseError, got %T", err)
			assert.Equal(t, tc.input, perr.Input)
			assert.NotEmpty(t, perr.Reason)
		})
	}
}

func TestMustParseHandPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { MustParseHand("not a hand") })
	assert.NotPanics(t, func() { MustParseHand("2c 3c 4c 5c 7d") })
}
