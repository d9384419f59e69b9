// Copyright (c) 2024 The schnorrkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package core

import (
	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// VerifyRS is the canonical Schnorr verification algorithm (spec §4.5),
// shared by schnorr.Verify, committedr.Verify, and musig.Verify. It is
// tri-valued in spirit: a non-nil error means the inputs themselves were
// malformed in a way that isn't a cryptographic question (none of the
// current callers produce one, since the only hash failure mode,
// DegenerateHash, is treated as an ordinary invalid signature here per
// spec §7); otherwise the bool reports whether the signature is valid.
//
// rawS is the would-be s scalar as raw big-endian bytes, not yet reduced mod
// n, so that an out-of-range s (spec's S5 scenario) can be rejected as
// invalid rather than silently wrapped.
func VerifyRS(r [ScalarSize]byte, rawS [ScalarSize]byte, pub *secp256k1.PublicKey, msg []byte) (bool, error) {
	var s secp256k1.ModNScalar
	if overflow := s.SetByteSlice(rawS[:]); overflow {
		return false, nil
	}

	h, err := Hash(msg, r)
	if err != nil {
		// DegenerateHash can't be caused by a signature over this exact
		// message unless the signer already failed to produce one, so a
		// verifier simply rejects rather than erroring.
		return false, nil
	}

	var pubJ secp256k1.JacobianPoint
	pub.AsJacobian(&pubJ)

	var hA, sG, rPrime secp256k1.JacobianPoint
	secp256k1.ScalarMultNonConst(h, &pubJ, &hA)
	secp256k1.ScalarBaseMultNonConst(&s, &sG)
	secp256k1.AddNonConst(&sG, &hA, &rPrime)

	if rPrime.Z.IsZero() {
		return false, nil
	}
	rPrime.ToAffine()

	if rPrime.Y.Normalize().IsOdd() {
		return false, nil
	}

	gotX := *rPrime.X.Bytes()
	return gotX == r, nil
}
