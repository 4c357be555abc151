package attack

import "math/big"

// Interval is a closed integer range [Lo, Hi] of candidate plaintext values.
type Interval struct {
	Lo *big.Int
	Hi *big.Int
}

// NewInterval returns an interval holding copies of lo and hi.
func NewInterval(lo, hi *big.Int) Interval {
	return Interval{new(big.Int).Set(lo), new(big.Int).Set(hi)}
}

// Equal reports whether both endpoints match exactly.
func (iv Interval) Equal(other Interval) bool {
	return iv.Lo.Cmp(other.Lo) == 0 && iv.Hi.Cmp(other.Hi) == 0
}

// IsPoint reports whether the interval has degenerated to a single value.
func (iv Interval) IsPoint() bool {
	return iv.Lo.Cmp(iv.Hi) == 0
}

// IntervalSet is the current uncertainty about the plaintext. The true value
// is contained in the union of its members after every narrowing step.
type IntervalSet []Interval

// InitialSet returns {[2B, 3B-1]}, the full conformance band for boundary b.
func InitialSet(b *big.Int) IntervalSet {
	lo := new(big.Int).Mul(two, b)
	hi := new(big.Int).Mul(three, b)
	hi.Sub(hi, one)
	return IntervalSet{Interval{lo, hi}}
}

// Contains reports whether m lies in the union of the set's intervals.
func (set IntervalSet) Contains(m *big.Int) bool {
	for _, iv := range set {
		if m.Cmp(iv.Lo) >= 0 && m.Cmp(iv.Hi) <= 0 {
			return true
		}
	}
	return false
}

func (set IntervalSet) has(iv Interval) bool {
	for _, existing := range set {
		if existing.Equal(iv) {
			return true
		}
	}
	return false
}

// Narrow computes the refined interval set after the oracle accepted the
// multiplier s for modulus n and boundary b. For every interval [a, hi] and
// every residue r in [ceil((a*s - 3B + 1)/n), (hi*s - 2B)/n] the candidate
//
//	[max(a, ceil((2B + r*n)/s)), min(hi, (3B - 1 + r*n)/s)]
//
// survives when non-empty. Identical pairs are inserted once. The r range is
// exactly the set of residues mapping some multiple of s into the validity
// band, so no interval containing the true plaintext is ever dropped.
func (set IntervalSet) Narrow(s, n, b *big.Int) IntervalSet {
	twoB := new(big.Int).Mul(two, b)
	threeB := new(big.Int).Mul(three, b)

	var next IntervalSet
	for _, iv := range set {
		rLo := new(big.Int).Mul(iv.Lo, s)
		rLo.Sub(rLo, threeB)
		rLo.Add(rLo, one)
		rLo = CeilDiv(rLo, n)

		rHi := new(big.Int).Mul(iv.Hi, s)
		rHi.Sub(rHi, twoB)
		rHi.Div(rHi, n)

		for r := new(big.Int).Set(rLo); r.Cmp(rHi) <= 0; r.Add(r, one) {
			rn := new(big.Int).Mul(r, n)

			lo := CeilDiv(new(big.Int).Add(twoB, rn), s)
			if lo.Cmp(iv.Lo) < 0 {
				lo.Set(iv.Lo)
			}

			hi := new(big.Int).Add(threeB, rn)
			hi.Sub(hi, one)
			hi.Div(hi, s)
			if hi.Cmp(iv.Hi) > 0 {
				hi.Set(iv.Hi)
			}

			if hi.Cmp(lo) < 0 {
				continue
			}
			refined := Interval{lo, hi}
			if !next.has(refined) {
				next = append(next, refined)
			}
		}
	}
	return next
}
