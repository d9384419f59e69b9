// Copyright (c) 2024 The schnorrkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package core holds the nonce and point utilities shared by the schnorr,
// committedr, and musig packages: random scalar generation, R derivation with
// Y-parity normalization, the hash-to-scalar construction and its MuSig
// variant, and the scalar helpers the nonce-reuse recovery algebra needs.
// None of it reimplements curve or field arithmetic; all of that is
// delegated to github.com/decred/dcrd/dcrec/secp256k1/v4, the trusted
// dependency this construction is built on.
package core

import (
	"crypto/rand"
	"crypto/sha256"

	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// ScalarSize is the length in bytes of a scalar or field element encoded as
// defined in the external interface: 32-byte big-endian, zero-padded.
const ScalarSize = 32

// RandomScalar draws a scalar uniformly from [1, n-1], where n is the order
// of the secp256k1 generator subgroup.
func RandomScalar() (*secp256k1.ModNScalar, error) {
	for {
		var buf [ScalarSize]byte
		if _, err := rand.Read(buf[:]); err != nil {
			return nil, NewError(ErrRandomSource,
				"failed to read random bytes: "+err.Error())
		}

		var k secp256k1.ModNScalar
		overflow := k.SetByteSlice(buf[:])
		if overflow || k.IsZero() {
			// Rejection sampling: redraw rather than reduce, so every
			// value in [1, n-1] remains equally likely.
			continue
		}
		return &k, nil
	}
}

// DeriveR computes R = k*G in affine coordinates, normalizes the sign of k so
// that R.Y is even, and returns R.X encoded as 32 bytes big-endian alongside
// the (possibly negated) k that produced it. Callers must use the returned
// kOut, not the original k, in any subsequent scalar arithmetic that needs to
// stay consistent with the emitted r — see spec §9's off-by-one-sign note.
func DeriveR(k *secp256k1.ModNScalar) (r [ScalarSize]byte, kOut secp256k1.ModNScalar, err error) {
	if k.IsZero() {
		err = NewError(ErrArithmetic, "nonce scalar is zero")
		return
	}

	kOut = *k
	var R secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&kOut, &R)
	if R.Z.IsZero() {
		err = NewError(ErrArithmetic, "R is the point at infinity")
		return
	}
	R.ToAffine()

	if R.Y.Normalize().IsOdd() {
		kOut.Negate()
		secp256k1.ScalarBaseMultNonConst(&kOut, &R)
		if R.Z.IsZero() {
			err = NewError(ErrArithmetic, "R is the point at infinity")
			return
		}
		R.ToAffine()
	}

	r = *R.X.Bytes()
	return r, kOut, nil
}

// Hash computes H(msg, r) = SHA256(r || SHA256(msg)), reduces it to a scalar
// mod n, and rejects a zero or out-of-range result. This derivation has no
// BIP-340 domain tag and is not wire-compatible with it; it must be
// reproduced bit-exact.
func Hash(msg []byte, r [ScalarSize]byte) (*secp256k1.ModNScalar, error) {
	msgHash := sha256.Sum256(msg)

	var payload [2 * ScalarSize]byte
	copy(payload[:ScalarSize], r[:])
	copy(payload[ScalarSize:], msgHash[:])
	digest := sha256.Sum256(payload[:])

	return scalarFromDigestRejectDegenerate(digest[:])
}

// HashAgg computes the MuSig per-signer coefficient a_i = H_agg(L, A_i) =
// SHA256(L || A_i) reduced mod n, with the same zero/out-of-range rejection
// as Hash. L and A_i must use a fixed canonical encoding across every signer
// and the verifier (musig.Combine uses compressed point serialization).
func HashAgg(l []byte, compressedA []byte) (*secp256k1.ModNScalar, error) {
	payload := make([]byte, 0, len(l)+len(compressedA))
	payload = append(payload, l...)
	payload = append(payload, compressedA...)
	digest := sha256.Sum256(payload)

	return scalarFromDigestRejectDegenerate(digest[:])
}

func scalarFromDigestRejectDegenerate(digest []byte) (*secp256k1.ModNScalar, error) {
	var h secp256k1.ModNScalar
	overflow := h.SetByteSlice(digest)
	if overflow || h.IsZero() {
		return nil, NewError(ErrDegenerateHash,
			"hash-to-scalar produced zero or a value at or above the group order")
	}
	return &h, nil
}

// Sub returns a - b mod n as a freshly allocated scalar, leaving both inputs
// untouched.
func Sub(a, b *secp256k1.ModNScalar) *secp256k1.ModNScalar {
	neg := *b
	neg.Negate()

	out := *a
	out.Add(&neg)
	return &out
}

// ScalarEqual reports whether a and b are the same scalar mod n.
func ScalarEqual(a, b *secp256k1.ModNScalar) bool {
	return Sub(a, b).IsZero()
}

// Zero overwrites a secret scalar with zero before it is released, per the
// zeroization requirement in spec §5/§9.
func Zero(s *secp256k1.ModNScalar) {
	s.Zero()
}
