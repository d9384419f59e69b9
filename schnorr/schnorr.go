// Copyright (c) 2024 The schnorrkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schnorr

import (
	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/marrowgate/schnorrkit/internal/core"
)

// PrivateKey is a Schnorr private key: a uniformly random scalar a in
// [1, n-1].
type PrivateKey struct {
	a secp256k1.ModNScalar
}

// PublicKey is a Schnorr public key: the point A = a*G.
type PublicKey struct {
	A secp256k1.PublicKey
}

// Signature is a Schnorr signature (r, s): r is the 32-byte X-coordinate of
// a commitment point R with even Y, and s is a scalar mod n.
type Signature struct {
	r [core.ScalarSize]byte
	s [core.ScalarSize]byte
}

// R returns the signature's commitment X-coordinate.
func (sig *Signature) R() [core.ScalarSize]byte { return sig.r }

// S returns the signature's scalar as raw big-endian bytes. It is not
// reduced mod n by this accessor; VerifyRS performs that check itself so
// that an out-of-range s is reported as an invalid signature rather than
// silently normalized.
func (sig *Signature) S() [core.ScalarSize]byte { return sig.s }

// GenerateKey samples a new Schnorr keypair.
func GenerateKey() (*PrivateKey, *PublicKey, error) {
	a, err := core.RandomScalar()
	if err != nil {
		return nil, nil, err
	}
	priv := NewPrivateKeyFromScalar(a)
	return priv, priv.Public(), nil
}

// NewPrivateKeyFromScalar wraps an existing scalar as a Schnorr private key
// without re-randomizing it. This is how a scalar recovered by
// committedr.Recover (read out with committedr.PrivateKey.Scalar) becomes an
// ordinary Schnorr key (spec §8 scenario S3).
func NewPrivateKeyFromScalar(a *secp256k1.ModNScalar) *PrivateKey {
	return &PrivateKey{a: *a}
}

// Public derives the public key A = a*G corresponding to priv.
func (priv *PrivateKey) Public() *PublicKey {
	return &PublicKey{A: *derivePubPoint(&priv.a)}
}

// Zero overwrites the private scalar with zero. Callers that hold a
// PrivateKey past its useful lifetime should call this before letting it go.
func (priv *PrivateKey) Zero() {
	core.Zero(&priv.a)
}

func derivePubPoint(a *secp256k1.ModNScalar) *secp256k1.PublicKey {
	var j secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(a, &j)
	j.ToAffine()
	return secp256k1.NewPublicKey(&j.X, &j.Y)
}

// Sign produces a Schnorr signature over msg under priv.
func Sign(priv *PrivateKey, msg []byte) (*Signature, error) {
	k, err := core.RandomScalar()
	if err != nil {
		return nil, err
	}
	defer core.Zero(k)

	r, kPrime, err := core.DeriveR(k)
	if err != nil {
		return nil, err
	}
	defer core.Zero(&kPrime)

	h, err := core.Hash(msg, r)
	if err != nil {
		return nil, err
	}

	s := computeS(h, &priv.a, &kPrime)

	sig := &Signature{r: r, s: s.Bytes()}
	return sig, nil
}

// computeS returns k - h*a mod n.
func computeS(h, a, k *secp256k1.ModNScalar) *secp256k1.ModNScalar {
	ha := *h
	ha.Mul(a)
	s := core.Sub(k, &ha)
	return s
}

// Verify reports whether sig is a valid Schnorr signature over msg under
// pub. A non-nil error indicates a hard failure unrelated to whether the
// signature is cryptographically valid; none of the current failure modes
// produce one; every failure described in spec §4.5 is surfaced as
// (false, nil).
func Verify(sig *Signature, pub *PublicKey, msg []byte) (bool, error) {
	return core.VerifyRS(sig.r, sig.s, &pub.A, msg)
}
