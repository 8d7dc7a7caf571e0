// Package selfcheck runs the algebraic properties of the ntt package over
// deterministic sample polynomials and records the magnitudes each stage
// reaches.
package selfcheck

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/sha3"

	"github.com/Rohith04MVK/kyberntt/internal/negacyclic"
	"github.com/Rohith04MVK/kyberntt/internal/polysample"
	"github.com/Rohith04MVK/kyberntt/ntt"
)

const (
	DefaultRounds = 64
	DefaultSeed   = "kyberntt-selftest"

	// ZetaDigest is the SHA3-256 of the zeta table, coefficients encoded as
	// little-endian 16-bit words.
	ZetaDigest = "52014f0e564d6b16ff464750da82580d3bf5b15ea93cb78433101df083b9a6fd"
)

var ErrPropertyFailed = errors.New("selfcheck: property failed")

// Property names one checked identity.
type Property string

const (
	RoundTrip    Property = "round-trip"
	Linearity    Property = "linearity"
	Homomorphism Property = "homomorphism"
	LiftedRing   Property = "lattigo-product"
	Bound        Property = "ntt-bound"
)

// Properties lists every per-round property in the order Run checks them.
var Properties = []Property{RoundTrip, Linearity, Homomorphism, LiftedRing, Bound}

// Stage names a transform whose output magnitude is tracked.
type Stage string

const (
	StageNTT     Stage = "ntt"
	StageInvNTT  Stage = "invntt"
	StageBaseMul Stage = "basemul"
)

var Stages = []Stage{StageNTT, StageInvNTT, StageBaseMul}

// Bound is the documented exclusive bound on |coefficient| after s.
func (s Stage) Bound() int {
	switch s {
	case StageNTT:
		return ntt.NTTBound
	case StageInvNTT:
		return ntt.Q
	case StageBaseMul:
		return ntt.BaseMulBound
	}
	return 0
}

type Config struct {
	Seed   []byte
	Rounds int
}

func (c Config) withDefaults() Config {
	if len(c.Seed) == 0 {
		c.Seed = []byte(DefaultSeed)
	}
	if c.Rounds <= 0 {
		c.Rounds = DefaultRounds
	}
	return c
}

// Report is the outcome of Run. On failure it holds the counts reached
// before the failing round.
type Report struct {
	Rounds     int
	Passed     map[Property]int
	Max        map[Stage]int
	ZetaDigest string
}

func newReport() Report {
	return Report{
		Passed: make(map[Property]int, len(Properties)),
		Max:    make(map[Stage]int, len(Stages)),
	}
}

func (r *Report) observe(s Stage, p *ntt.Poly) {
	m := r.Max[s]
	for _, c := range p {
		v := int(c)
		if v < 0 {
			v = -v
		}
		if v > m {
			m = v
		}
	}
	r.Max[s] = m
}

// Run checks the zeta table digest and then every property for cfg.Rounds
// pairs of sampled polynomials. It stops at the first violation and returns
// an error wrapping ErrPropertyFailed.
func Run(cfg Config, log *zerolog.Logger) (Report, error) {
	cfg = cfg.withDefaults()
	report := newReport()

	report.ZetaDigest = zetaDigest()
	if report.ZetaDigest != ZetaDigest {
		return report, errors.Wrapf(ErrPropertyFailed, "zeta table digest %s", report.ZetaDigest)
	}

	rg, err := negacyclic.NewRing()
	if err != nil {
		return report, err
	}

	for round := 0; round < cfg.Rounds; round++ {
		seed := roundSeed(cfg.Seed, round)
		a := polysample.Centered(seed, 0)
		b := polysample.Centered(seed, 1)

		if prop := checkRound(&report, rg, &a, &b); prop != "" {
			log.Error().Int("round", round).Str("property", string(prop)).Msg("Property violated")
			return report, errors.Wrapf(ErrPropertyFailed, "%s in round %d", prop, round)
		}
		report.Rounds++
		log.Debug().Int("round", round).
			Int("maxNTT", report.Max[StageNTT]).
			Int("maxBaseMul", report.Max[StageBaseMul]).
			Msg("Round passed")
	}

	log.Info().
		Int("rounds", report.Rounds).
		Int("maxNTT", report.Max[StageNTT]).
		Int("maxInvNTT", report.Max[StageInvNTT]).
		Int("maxBaseMul", report.Max[StageBaseMul]).
		Msg("Self check passed")
	return report, nil
}

// checkRound returns the first property a and b violate, or "".
func checkRound(report *Report, rg *negacyclic.Ring, a, b *ntt.Poly) Property {
	fa, fb := *a, *b
	ntt.NTT(&fa)
	ntt.NTT(&fb)
	report.observe(StageNTT, &fa)
	report.observe(StageNTT, &fb)

	rt := fa
	ntt.InvNTT(&rt)
	report.observe(StageInvNTT, &rt)
	if !rt.Equal(a) {
		return RoundTrip
	}
	report.Passed[RoundTrip]++

	sum := *a
	sum.Add(b)
	ntt.NTT(&sum)
	lin := fa
	lin.Reduce()
	rb := fb
	rb.Reduce()
	lin.Add(&rb)
	if !sum.Equal(&lin) {
		return Linearity
	}
	report.Passed[Linearity]++

	prod := ntt.BaseMul(&fa, &fb)
	report.observe(StageBaseMul, &prod)
	ntt.InvNTTToMont(&prod)
	want := negacyclic.Schoolbook(a, b)
	if !prod.Equal(&want) {
		return Homomorphism
	}
	report.Passed[Homomorphism]++

	lifted := rg.Mul(a, b)
	if !prod.Equal(&lifted) {
		return LiftedRing
	}
	report.Passed[LiftedRing]++

	if report.Max[StageNTT] >= StageNTT.Bound() || report.Max[StageBaseMul] >= StageBaseMul.Bound() {
		return Bound
	}
	report.Passed[Bound]++
	return ""
}

func roundSeed(seed []byte, round int) []byte {
	s := make([]byte, len(seed)+4)
	copy(s, seed)
	binary.LittleEndian.PutUint32(s[len(seed):], uint32(round))
	return s
}

func zetaDigest() string {
	z := ntt.Zetas()
	buf := make([]byte, 2*len(z))
	for i, c := range z {
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(c))
	}
	sum := sha3.Sum256(buf)
	return hex.EncodeToString(sum[:])
}
