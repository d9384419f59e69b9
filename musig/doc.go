// Copyright (c) 2024 The schnorrkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package musig implements two-party MuSig key aggregation and cooperative
signing over secp256k1: two independently generated keys combine into a
single aggregate public key, each signer contributes a partial signature
over the aggregate's fixed-at-Combine-time nonce commitment, and the two
partial signatures sum to a single signature that verifies under the
aggregate key with the ordinary single-signer verification algorithm.

This is a restricted two-party construction, not a general N-party MuSig
protocol: it omits the interactive nonce-commitment round a secure N-party
scheme requires and is vulnerable to rogue-key and Wagner-style attacks a
production aggregation scheme defends against. It exists to demonstrate
the aggregation algebra and the even-Y renegotiation problem it creates,
not as a hardened multi-party signing protocol.
*/
package musig
