package split

import "errors"

// RemainderPolicy selects who carries the indivisible part of an even split.
type RemainderPolicy int

const (
	// CreatorAbsorbs assigns the whole remainder to the creator (index 0).
	CreatorAbsorbs RemainderPolicy = iota
	// DistributeInOrder hands the remainder out one unit at a time to the
	// non-creator participants in list order.
	DistributeInOrder
)

var (
	ErrNonPositiveTotal = errors.New("total amount must be positive")
	ErrNoParticipants   = errors.New("at least one participant besides the creator is required")
)

// Even divides total among the creator and `participants` other people.
// The returned slice has participants+1 entries; index 0 is the creator's
// share. The shares always sum to total exactly.
func Even(total int64, participants int, policy RemainderPolicy) ([]int64, error) {
	if total <= 0 {
		return nil, ErrNonPositiveTotal
	}
	if participants < 1 {
		return nil, ErrNoParticipants
	}

	n := int64(participants) + 1
	base := total / n
	remainder := total % n

	shares := make([]int64, n)
	for i := range shares {
		shares[i] = base
	}

	switch policy {
	case DistributeInOrder:
		// remainder < n, so index 1..remainder is always in range.
		for i := int64(0); i < remainder; i++ {
			shares[i+1]++
		}
	default:
		shares[0] += remainder
	}

	return shares, nil
}

// RoundUpTo100 rounds amount up to the next multiple of 100 and returns the
// rounded value together with the top-up ("tiggle") needed to reach it.
// Non-positive amounts round to zero.
func RoundUpTo100(amount int64) (rounded, tiggle int64) {
	if amount <= 0 {
		return 0, 0
	}
	rounded = (amount + 99) / 100 * 100
	return rounded, rounded - amount
}
