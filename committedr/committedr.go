// Copyright (c) 2024 The schnorrkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package committedr

import (
	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/marrowgate/schnorrkit/internal/core"
)

// PrivateKey is a committed-R private key: the scalars a and k are fixed
// together at generation time, and the PublicKey derived from them
// (including r = (k·G).x) is published alongside them.
type PrivateKey struct {
	a   secp256k1.ModNScalar
	k   secp256k1.ModNScalar
	pub PublicKey
}

// PublicKey is a committed-R public key: the point A = a*G plus the
// pre-committed nonce point's X-coordinate r = (k·G).x.
type PublicKey struct {
	A secp256k1.PublicKey
	r [core.ScalarSize]byte
}

// Signature is a committed-R signature. Unlike schnorr.Signature it carries
// only s; r is fixed by the key and is not repeated per signature.
type Signature struct {
	s [core.ScalarSize]byte
}

// S returns the signature's scalar as raw big-endian bytes, unreduced.
func (sig *Signature) S() [core.ScalarSize]byte { return sig.s }

// GenerateKey samples a new committed-R keypair, fixing both the signing
// scalar a and the nonce scalar k for the lifetime of the key.
func GenerateKey() (*PrivateKey, error) {
	a, err := core.RandomScalar()
	if err != nil {
		return nil, err
	}
	k, err := core.RandomScalar()
	if err != nil {
		return nil, err
	}

	r, kPrime, err := core.DeriveR(k)
	if err != nil {
		return nil, err
	}

	var j secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(a, &j)
	j.ToAffine()
	A := secp256k1.NewPublicKey(&j.X, &j.Y)

	priv := &PrivateKey{
		a: *a,
		k: kPrime,
		pub: PublicKey{
			A: *A,
			r: r,
		},
	}
	return priv, nil
}

// Public returns the key's public half.
func (priv *PrivateKey) Public() *PublicKey { return &priv.pub }

// Scalar returns a copy of priv's signing scalar a, independent of the
// committed nonce k. It exists so a recovered committedr key can be
// converted into an ordinary schnorr.PrivateKey via
// schnorr.NewPrivateKeyFromScalar, the same way the original program
// copies the recovered key's a field into a plain schnorr key.
func (priv *PrivateKey) Scalar() *secp256k1.ModNScalar {
	a := priv.a
	return &a
}

// Zero overwrites both private scalars with zero.
func (priv *PrivateKey) Zero() {
	core.Zero(&priv.a)
	core.Zero(&priv.k)
}

// Sign produces a committed-R signature over msg under priv. The r value in
// the resulting verification equation is priv.pub.r, fixed at keygen; only s
// varies with msg.
//
// Signing the same key over two distinct messages is the documented misuse
// that Recover exploits; see the package doc comment.
func Sign(priv *PrivateKey, msg []byte) (*Signature, error) {
	h, err := core.Hash(msg, priv.pub.r)
	if err != nil {
		return nil, err
	}

	ha := *h
	ha.Mul(&priv.a)
	s := core.Sub(&priv.k, &ha)

	return &Signature{s: s.Bytes()}, nil
}

// Verify reports whether sig is a valid committed-R signature over msg under
// pub. A non-nil error indicates a hard failure unrelated to the
// signature's validity.
func Verify(sig *Signature, pub *PublicKey, msg []byte) (bool, error) {
	return core.VerifyRS(pub.r, sig.s, &pub.A, msg)
}

// Recover reconstructs the private key from two signatures produced by the
// same committed-R key over two distinct messages. This is the documented
// nonce-reuse break: publishing sig1 over msg1 and sig2 over msg2 under the
// same key leaks a and k entirely.
//
// Recover re-derives A and r from the recovered scalars and checks them
// against pub before returning, so a caller handed two signatures that did
// not in fact come from the same committed-R key gets an error instead of a
// silently wrong key.
func Recover(sig1 *Signature, msg1 []byte, sig2 *Signature, msg2 []byte, pub *PublicKey) (*PrivateKey, error) {
	h1, err := core.Hash(msg1, pub.r)
	if err != nil {
		return nil, err
	}
	h2, err := core.Hash(msg2, pub.r)
	if err != nil {
		return nil, err
	}

	if core.ScalarEqual(h1, h2) {
		return nil, core.NewError(core.ErrRecoveryInfeasible,
			"msg1 and msg2 hash to the same challenge; recovery is underdetermined")
	}

	var s1, s2 secp256k1.ModNScalar
	if s1.SetByteSlice(sig1.s[:]) {
		return nil, core.NewError(core.ErrArithmetic, "sig1.s is not a valid scalar")
	}
	if s2.SetByteSlice(sig2.s[:]) {
		return nil, core.NewError(core.ErrArithmetic, "sig2.s is not a valid scalar")
	}

	// a = (s2 - s1) * (h1 - h2)^-1 mod n
	num := core.Sub(&s2, &s1)
	den := core.Sub(h1, h2)
	denInv := den.InverseNonConst()
	a := *num
	a.Mul(denInv)

	// k = s1 + h1*a mod n
	h1a := *h1
	h1a.Mul(&a)
	k := s1
	k.Add(&h1a)

	r, kPrime, err := core.DeriveR(&k)
	if err != nil {
		return nil, core.NewError(core.ErrArithmetic, "recovered k derives to the point at infinity")
	}
	if r != pub.r {
		return nil, core.NewError(core.ErrArithmetic, "recovered nonce does not reproduce the committed r")
	}

	var j secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&a, &j)
	j.ToAffine()
	APrime := secp256k1.NewPublicKey(&j.X, &j.Y)
	if !APrime.IsEqual(&pub.A) {
		return nil, core.NewError(core.ErrArithmetic, "recovered key does not reproduce the committed public key")
	}

	priv := &PrivateKey{
		a: a,
		k: kPrime,
		pub: PublicKey{
			A: *APrime,
			r: r,
		},
	}
	return priv, nil
}
