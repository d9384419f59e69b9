// Copyright (c) 2024 The schnorrkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package musig

import (
	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/marrowgate/schnorrkit/internal/core"
)

// PrivateKey is one party's half of a two-party MuSig key: a is the signing
// scalar, k is the nonce scalar committed to at generation time. Both scalars
// are fixed for the life of the key, the same way a committedr key fixes its
// nonce; a fresh nonce per aggregate signature would require an interactive
// commit-reveal round this package does not implement.
type PrivateKey struct {
	a   secp256k1.ModNScalar
	k   secp256k1.ModNScalar
	pub PublicKey
}

// PublicKey is the public half a party publishes before aggregation: the
// signing point A = a*G and the nonce commitment point R = k*G. Unlike
// schnorr and committedr, musig needs the full nonce point, not just its
// X-coordinate, so the two parties' R points can be summed.
type PublicKey struct {
	A secp256k1.PublicKey
	R secp256k1.PublicKey
}

// CombinedKey is the result of aggregating two parties' public keys: the
// combined signing point A*, the combined nonce commitment's X-coordinate
// r*, and whether R* = R_1 + R_2 came out with odd Y.
//
// Each individual R_i was already normalized to even Y independently at its
// owner's GenerateKey time, but that normalization has no way to anticipate
// the other party's R_j, so the sum can still land on odd Y. Renegotiating
// either party's nonce at that point would mean re-publishing a new public
// key, so instead both signers negate their own nonce scalar's contribution
// to s when negate is set; see PartialSign.
type CombinedKey struct {
	A      secp256k1.PublicKey
	r      [core.ScalarSize]byte
	negate bool
}

// PartialSignature is one signer's contribution to an aggregate signature.
type PartialSignature struct {
	s [core.ScalarSize]byte
}

// Signature is a completed two-party MuSig signature. It verifies under
// CombinedKey with the same equation a single-signer Schnorr signature does.
type Signature struct {
	s [core.ScalarSize]byte
}

// S returns the signature's scalar as raw big-endian bytes, unreduced.
func (sig *Signature) S() [core.ScalarSize]byte { return sig.s }

// GenerateKey samples a new MuSig party key: a signing scalar and a
// committed nonce scalar, each fixed for the key's lifetime.
func GenerateKey() (*PrivateKey, error) {
	a, err := core.RandomScalar()
	if err != nil {
		return nil, err
	}
	k, err := core.RandomScalar()
	if err != nil {
		return nil, err
	}
	_, kOut, err := core.DeriveR(k)
	if err != nil {
		return nil, err
	}

	A := pointFromScalar(a)
	R := pointFromScalar(&kOut)

	priv := &PrivateKey{
		a: *a,
		k: kOut,
		pub: PublicKey{
			A: *A,
			R: *R,
		},
	}
	return priv, nil
}

// Public returns the key's public half.
func (priv *PrivateKey) Public() *PublicKey { return &priv.pub }

// Zero overwrites both private scalars with zero.
func (priv *PrivateKey) Zero() {
	core.Zero(&priv.a)
	core.Zero(&priv.k)
}

func pointFromScalar(s *secp256k1.ModNScalar) *secp256k1.PublicKey {
	var j secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(s, &j)
	j.ToAffine()
	return secp256k1.NewPublicKey(&j.X, &j.Y)
}

// listL concatenates the two parties' compressed signing keys in the exact
// order given: L = A_1 || A_2, not a canonicalized order. Swapping the
// argument order changes L, and therefore the per-signer coefficients and
// the combined key — callers on both sides of an aggregation must agree on
// and pass the same pubkey order.
func listL(pubA, pubB *PublicKey) []byte {
	ca := pubA.A.SerializeCompressed()
	cb := pubB.A.SerializeCompressed()
	l := make([]byte, 0, len(ca)+len(cb))
	return append(append(l, ca...), cb...)
}

func coefficient(l []byte, pub *PublicKey) (*secp256k1.ModNScalar, error) {
	return core.HashAgg(l, pub.A.SerializeCompressed())
}

// Combine aggregates two parties' public keys, in the given order, into a
// CombinedKey. Both parties and the verifier must call it with the same
// (pubA, pubB) order: L = pubA.A || pubB.A, so swapping the order changes L,
// the per-signer coefficients, and the combined key itself.
func Combine(pubA, pubB *PublicKey) (*CombinedKey, error) {
	l := listL(pubA, pubB)

	aCoef, err := coefficient(l, pubA)
	if err != nil {
		return nil, err
	}
	bCoef, err := coefficient(l, pubB)
	if err != nil {
		return nil, err
	}

	var aJ, bJ, aTerm, bTerm, sumJ secp256k1.JacobianPoint
	pubA.A.AsJacobian(&aJ)
	pubB.A.AsJacobian(&bJ)
	secp256k1.ScalarMultNonConst(aCoef, &aJ, &aTerm)
	secp256k1.ScalarMultNonConst(bCoef, &bJ, &bTerm)
	secp256k1.AddNonConst(&aTerm, &bTerm, &sumJ)
	if sumJ.Z.IsZero() {
		return nil, core.NewError(core.ErrArithmetic, "combined public key is the point at infinity")
	}
	sumJ.ToAffine()
	A := secp256k1.NewPublicKey(&sumJ.X, &sumJ.Y)

	var rAJ, rBJ, rSumJ secp256k1.JacobianPoint
	pubA.R.AsJacobian(&rAJ)
	pubB.R.AsJacobian(&rBJ)
	secp256k1.AddNonConst(&rAJ, &rBJ, &rSumJ)
	if rSumJ.Z.IsZero() {
		return nil, core.NewError(core.ErrArithmetic, "combined nonce point is the point at infinity")
	}
	rSumJ.ToAffine()

	return &CombinedKey{
		A:      *A,
		r:      *rSumJ.X.Bytes(),
		negate: rSumJ.Y.Normalize().IsOdd(),
	}, nil
}

// PartialSign produces priv's contribution to an aggregate signature over
// msg under combined. pubA and pubB must be passed in the exact order given
// to the Combine call that produced combined — PartialSign derives L the
// same way Combine did and identifies priv's own coefficient by matching
// priv's public key against pubA and pubB, so it is an error for neither to
// match.
func PartialSign(priv *PrivateKey, pubA, pubB *PublicKey, combined *CombinedKey, msg []byte) (*PartialSignature, error) {
	l := listL(pubA, pubB)

	var ownPub *PublicKey
	switch {
	case priv.pub.A.IsEqual(&pubA.A):
		ownPub = pubA
	case priv.pub.A.IsEqual(&pubB.A):
		ownPub = pubB
	default:
		return nil, core.NewError(core.ErrArithmetic, "priv's public key is neither pubA nor pubB")
	}

	aOwn, err := coefficient(l, ownPub)
	if err != nil {
		return nil, err
	}

	h, err := core.Hash(msg, combined.r)
	if err != nil {
		return nil, err
	}

	coeffA := *aOwn
	coeffA.Mul(&priv.a)
	ha := *h
	ha.Mul(&coeffA)

	k := priv.k
	if combined.negate {
		k.Negate()
	}
	s := core.Sub(&k, &ha)

	return &PartialSignature{s: s.Bytes()}, nil
}

// Aggregate sums two partial signatures into a completed Signature.
func Aggregate(sig1, sig2 *PartialSignature) (*Signature, error) {
	var s1, s2 secp256k1.ModNScalar
	if overflow := s1.SetByteSlice(sig1.s[:]); overflow {
		return nil, core.NewError(core.ErrArithmetic, "partial signature s1 is not a valid scalar")
	}
	if overflow := s2.SetByteSlice(sig2.s[:]); overflow {
		return nil, core.NewError(core.ErrArithmetic, "partial signature s2 is not a valid scalar")
	}

	s := s1
	s.Add(&s2)
	return &Signature{s: s.Bytes()}, nil
}

// Verify reports whether sig is a valid aggregate signature over msg under
// combined. A non-nil error indicates a hard failure unrelated to the
// signature's validity.
func Verify(sig *Signature, combined *CombinedKey, msg []byte) (bool, error) {
	return core.VerifyRS(combined.r, sig.s, &combined.A, msg)
}
