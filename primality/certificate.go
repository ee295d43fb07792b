package primality

import (
	"encoding/binary"
	"math/big"
	"sync"

	"golang.org/x/crypto/sha3"
)

// CertificateLog records the (l, f, bound) transcript of every round an
// IsPrime call accepts, and exposes a stable SHAKE-256 fingerprint of
// that transcript. It is purely an audit/logging aid: the decision loop
// never consults it, so attaching one cannot change the verdict it
// produces.
//
// This is not a machine-checkable proof object (spec.md's Non-goals
// still exclude those) — it is a short identifier a human or test
// fixture can use to refer to "the same accepted run" without
// reprinting the whole per-l transcript, hashed SHAKE-256 style as
// Fiat-Shamir transcripts are (label first, then the parts in order).
type CertificateLog struct {
	mu     sync.Mutex
	rounds []round
}

type round struct {
	l     uint
	f     uint
	bound *big.Int
}

// NewCertificateLog returns an empty certificate log.
func NewCertificateLog() *CertificateLog {
	return &CertificateLog{}
}

func (c *CertificateLog) record(l, f uint, bound *big.Int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rounds = append(c.rounds, round{l: l, f: f, bound: new(big.Int).Set(bound)})
}

// Rounds returns the recorded (l, f, bound) triples in the order they
// were accepted.
func (c *CertificateLog) Rounds() []struct {
	L     uint
	F     uint
	Bound *big.Int
} {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]struct {
		L     uint
		F     uint
		Bound *big.Int
	}, len(c.rounds))
	for i, r := range c.rounds {
		out[i] = struct {
			L     uint
			F     uint
			Bound *big.Int
		}{L: r.l, F: r.f, Bound: new(big.Int).Set(r.bound)}
	}
	return out
}

// Digest returns a 32-byte SHAKE-256 fingerprint of the recorded
// transcript: the label "cycloprime-certificate" followed by each
// round's l and f (each a big-endian uint64) and bound (its decimal
// string).
func (c *CertificateLog) Digest() [32]byte {
	c.mu.Lock()
	defer c.mu.Unlock()

	h := sha3.NewShake256()
	_, _ = h.Write([]byte("cycloprime-certificate"))
	var lBuf [8]byte
	for _, r := range c.rounds {
		binary.BigEndian.PutUint64(lBuf[:], uint64(r.l))
		_, _ = h.Write(lBuf[:])
		binary.BigEndian.PutUint64(lBuf[:], uint64(r.f))
		_, _ = h.Write(lBuf[:])
		_, _ = h.Write([]byte(r.bound.String()))
	}

	var out [32]byte
	_, _ = h.Read(out[:])
	return out
}
