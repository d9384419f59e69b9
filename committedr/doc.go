// Copyright (c) 2024 The schnorrkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package committedr implements the pre-committed-R Schnorr variant: the
nonce k (and therefore R) is fixed at key-generation time and published
alongside the public key, instead of being freshly sampled per signature.

This is intentionally insecure under reuse: publishing two signatures
produced under the same committed-R key over two distinct messages leaks
the private scalar (Recover implements the exact recovery algebra). This
package exists to demonstrate that property for adaptor-signature-style
protocols and as a nonce-reuse teaching example — callers must never
publish more than one committedr signature per key in any other context.
*/
package committedr
