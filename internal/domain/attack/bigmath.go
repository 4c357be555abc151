package attack

import "math/big"

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// CeilDiv returns ceil(x/y) for positive y. The attack's interval boundaries
// depend on exact rounding, so this must stay in integer arithmetic.
func CeilDiv(x, y *big.Int) *big.Int {
	q, m := new(big.Int).DivMod(x, y, new(big.Int))
	if m.Sign() != 0 {
		q.Add(q, one)
	}
	return q
}

// BoundaryB returns B = 2^(8*(k-2)) for a modulus of k bytes. A plaintext
// with the 0x00 0x02 prefix satisfies 2B <= m < 3B.
func BoundaryB(k int) *big.Int {
	return new(big.Int).Lsh(one, uint(8*(k-2)))
}
