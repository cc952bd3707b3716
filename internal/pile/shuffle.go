package pile

import "fmt"

// Source produces uniformly distributed integers in [low, high)
type Source interface {
	IntRange(low, high int) int
}

// InvariantError is the panic value raised when the shuffle arithmetic or the
// random source breaks an invariant. It signals a bug, not a runtime condition.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return "pile: invariant violated: " + e.Msg
}

func invariant(format string, args ...any) {
	panic(&InvariantError{Msg: fmt.Sprintf(format, args...)})
}

// CutRange returns the half-open range a cut point is drawn from for a pile of
// n >= 2 cards: within a sixth of the middle, never leaving a half empty.
func CutRange(n int) (low, high int) {
	return max(n/2-n/6, 1), min(n/2+n/6+1, n)
}

// Shuffle riffles the pile in place, the way a person would: cut near the
// middle, then let chunks of two or three cards fall alternately from each
// half, right half first.
//
// Piles of fewer than two cards are left alone and src is not consulted.
// Otherwise src is drawn from exactly twice, for the cut and the chunk size.
func (p *Pile[C]) Shuffle(src Source) {
	n := len(p.cards)
	if n < 2 {
		return
	}
	low, high := CutRange(n)
	cut := src.IntRange(low, high)
	if cut < low || cut >= high {
		invariant("cut point %d outside [%d, %d) for %d cards", cut, low, high, n)
	}
	// The number of cards that fall at a time. Varying it per chunk would be
	// more realistic.
	chunk := src.IntRange(2, 4)
	p.cards = Riffle(p.cards, cut, chunk)
}

// Riffles shuffles the pile the given number of times
func (p *Pile[C]) Riffles(src Source, times int) {
	for i := 0; i < times; i++ {
		p.Shuffle(src)
	}
}

// Riffle splits cards at cut, breaks both halves into chunks of chunk cards
// (the last chunk of a half may be short), and interleaves the chunks starting
// with the right half. When one half runs out, the rest of the other follows.
// cards is not modified.
func Riffle[C any](cards []C, cut, chunk int) []C {
	if cut < 1 || cut >= len(cards) {
		invariant("cut point %d leaves an empty half of %d cards", cut, len(cards))
	}
	if chunk < 1 {
		invariant("chunk size %d", chunk)
	}
	left, right := cards[:cut], cards[cut:]
	out := make([]C, 0, len(cards))
	for len(left) > 0 || len(right) > 0 {
		var fell []C
		fell, right = take(right, chunk)
		out = append(out, fell...)
		fell, left = take(left, chunk)
		out = append(out, fell...)
	}
	return out
}

func take[C any](s []C, n int) (head, rest []C) {
	n = min(n, len(s))
	return s[:n], s[n:]
}
