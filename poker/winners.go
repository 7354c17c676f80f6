package poker

import "fmt"

// standings is the running result of a showdown: the best key seen so far and
// every hand that reached it, in input order.
type standings struct {
	best    RankKey
	winners []string
}

// add folds one classified hand into the standings.
func (s standings) add(hand string, key RankKey) standings {
	switch Compare(key, s.best) {
	case 1:
		return standings{best: key, winners: []string{hand}}
	case 0:
		s.winners = append(s.winners, hand)
	}
	return s
}

// merge folds standings computed over a later part of the input into s.
func (s standings) merge(later standings) standings {
	if len(later.winners) == 0 {
		return s
	}
	if len(s.winners) == 0 {
		return later
	}
	switch Compare(later.best, s.best) {
	case 1:
		return later
	case 0:
		s.winners = append(s.winners, later.winners...)
	}
	return s
}

func foldHands(hands []string, offset int) (standings, error) {
	var s standings
	for i, text := range hands {
		h, err := ParseHand(text)
		if err != nil {
			return standings{}, fmt.Errorf("hand %d: %w", offset+i+1, err)
		}
		s = s.add(text, Classify(h))
	}
	return s, nil
}

// WinningHands returns every hand that ties for the best rank, in the order
// they appear in hands. A single hand is returned as-is without being parsed.
// The input slice is never modified.
func WinningHands(hands []string) ([]string, error) {
	if len(hands) == 1 {
		return []string{hands[0]}, nil
	}

	s, err := foldHands(hands, 0)
	if err != nil {
		return nil, err
	}
	return s.winners, nil
}
