// Copyright (c) 2024 The schnorrkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package schnorr implements the classic Schnorr signature scheme over
secp256k1: a fresh random nonce per signature, r = (k·G).x with even Y,
s = k - H(m, r)·a mod n.

This is not BIP-340: the hash-to-scalar construction and the absence of a
domain-separation tag are both intentional deviations documented in the
parent module's specification.
*/
package schnorr
