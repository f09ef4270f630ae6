package money

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

var ErrInsufficientDenominations = errors.New("insufficient denominations or inventory")

// Denominations is a ladder of coin/note values in minor units, largest first.
type Denominations []Amount

// DefaultDenominations is 1 FC, 0.50, 0.10, 0.05 and 0.01.
var DefaultDenominations = Denominations{100, 50, 10, 5, 1}

// Inventory caps how many units of each denomination may be handed out.
// A denomination missing from a non-nil inventory is unavailable.
type Inventory map[Amount]int64

// Breakdown is the result of a decomposition.
type Breakdown struct {
	Total  Amount
	Counts map[Amount]int64
}

// Sum recomputes the value represented by the counts.
func (b Breakdown) Sum() Amount {
	var sum Amount
	for d, n := range b.Counts {
		sum += d * Amount(n)
	}
	return sum
}

// ParseDenominations reads a comma separated ladder such as "100,50,10,5,1".
func ParseDenominations(s string) (Denominations, error) {
	parts := strings.Split(s, ",")
	ladder := make(Denominations, 0, len(parts))
	seen := make(map[Amount]struct{}, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil || v <= 0 || Amount(v) > Max {
			return nil, fmt.Errorf("invalid denomination %q", p)
		}
		if _, ok := seen[Amount(v)]; ok {
			return nil, fmt.Errorf("duplicate denomination %d", v)
		}
		seen[Amount(v)] = struct{}{}
		ladder = append(ladder, Amount(v))
	}
	return ladder.sorted(), nil
}

func (d Denominations) sorted() Denominations {
	out := make(Denominations, len(d))
	copy(out, d)
	sort.Slice(out, func(i, j int) bool { return out[i] > out[j] })
	return out
}

// Decompose splits a into denomination counts with a single greedy pass from
// the largest denomination down. When inventory is non-nil each count is capped
// by the units on hand.
//
// Greedy is exact for canonical ladders like 100/50/10/5/1 only. For arbitrary
// ladders it may fail on amounts a smarter search could represent.
func Decompose(a Amount, ladder Denominations, inventory Inventory) (Breakdown, error) {
	if !a.Valid() {
		return Breakdown{}, fmt.Errorf("%w: %d minor units", ErrInvalidAmount, int64(a))
	}
	if len(ladder) == 0 {
		ladder = DefaultDenominations
	}

	out := Breakdown{Total: a, Counts: make(map[Amount]int64)}
	remaining := a
	for _, d := range ladder.sorted() {
		if remaining == 0 {
			break
		}
		take := int64(remaining / d)
		if inventory != nil {
			take = min(take, max(inventory[d], 0))
		}
		if take > 0 {
			out.Counts[d] = take
			remaining -= d * Amount(take)
		}
	}
	if remaining != 0 {
		return Breakdown{}, fmt.Errorf("%w: %s left over from %s", ErrInsufficientDenominations, remaining, a)
	}
	return out, nil
}

// IsAllowed reports whether a can be paid out exactly with the default ladder.
func IsAllowed(a Amount) bool {
	_, err := Decompose(a, DefaultDenominations, nil)
	return err == nil
}
