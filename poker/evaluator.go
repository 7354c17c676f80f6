package poker

import (
	"fmt"
	"slices"
	"strings"
)

// Category enumerates the classes of poker hands ordered from weakest to strongest.
type Category uint8

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// RankKey totally orders hands: category first, then the tie-break ranks
// compared position by position. The zero value is the weakest possible key.
type RankKey struct {
	Category Category
	TieBreak []Rank
}

// Compare returns 1 if a beats b, -1 if b beats a and 0 for a tie.
func Compare(a, b RankKey) int {
	if a.Category != b.Category {
		if a.Category > b.Category {
			return 1
		}
		return -1
	}
	return slices.Compare(a.TieBreak, b.TieBreak)
}

// Compare compares k against other, see Compare.
func (k RankKey) Compare(other RankKey) int {
	return Compare(k, other)
}

// Less reports whether k loses to other.
func (k RankKey) Less(other RankKey) bool {
	return Compare(k, other) < 0
}

// Equal reports whether k and other tie.
func (k RankKey) Equal(other RankKey) bool {
	return Compare(k, other) == 0
}

// String renders the key, e.g. "Two Pair [4 4 2 2 9]".
func (k RankKey) String() string {
	ranks := make([]string, len(k.TieBreak))
	for i, r := range k.TieBreak {
		ranks[i] = r.String()
	}
	return fmt.Sprintf("%s [%s]", k.Category, strings.Join(ranks, " "))
}

// group is a set of equal-rank cards within a hand.
type group struct {
	rank  Rank
	count int
}

// Classify computes the rank key of a hand. Aces only play high, so
// A-2-3-4-5 is not a straight.
func Classify(h Hand) RankKey {
	groups := groupRanks(h)

	flush := isFlush(h)
	straight := len(groups) == HandSize && isStraight(groups)

	var category Category
	switch {
	case straight && flush:
		category = StraightFlush
	case groups[0].count == 4:
		category = FourOfAKind
	case groups[0].count == 3 && groups[1].count == 2:
		category = FullHouse
	case flush:
		category = Flush
	case straight:
		category = Straight
	case groups[0].count == 3:
		category = ThreeOfAKind
	case groups[0].count == 2 && groups[1].count == 2:
		category = TwoPair
	case groups[0].count == 2:
		category = OnePair
	default:
		category = HighCard
	}

	tieBreak := make([]Rank, 0, HandSize)
	for _, g := range groups {
		for range g.count {
			tieBreak = append(tieBreak, g.rank)
		}
	}

	return RankKey{Category: category, TieBreak: tieBreak}
}

// groupRanks counts cards per rank and orders the groups by size, then rank,
// both descending.
func groupRanks(h Hand) []group {
	var counts [13]int
	for _, card := range h {
		counts[card.Rank]++
	}

	groups := make([]group, 0, HandSize)
	for r := Ace; ; r-- {
		if counts[r] > 0 {
			groups = append(groups, group{rank: r, count: counts[r]})
		}
		if r == Two {
			break
		}
	}

	// Ranks are already descending, so a stable sort on count keeps them that way.
	slices.SortStableFunc(groups, func(a, b group) int {
		return b.count - a.count
	})
	return groups
}

func isFlush(h Hand) bool {
	for _, card := range h[1:] {
		if card.Suit != h[0].Suit {
			return false
		}
	}
	return true
}

// isStraight expects five singleton groups in descending rank order.
func isStraight(groups []group) bool {
	for i := 1; i < len(groups); i++ {
		if groups[i-1].rank != groups[i].rank+1 {
			return false
		}
	}
	return true
}
