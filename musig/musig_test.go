// Copyright (c) 2024 The schnorrkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package musig

import "testing"

// sign runs the full two-party protocol once, with both parties agreeing on
// the (pub1, pub2) order, and returns the aggregate signature together with
// the combined key it should verify under.
func sign(t *testing.T, msg []byte) (*Signature, *CombinedKey) {
	t.Helper()

	priv1, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	priv2, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	pub1 := priv1.Public()
	pub2 := priv2.Public()

	combined, err := Combine(pub1, pub2)
	if err != nil {
		t.Fatalf("Combine: %v", err)
	}

	part1, err := PartialSign(priv1, pub1, pub2, combined, msg)
	if err != nil {
		t.Fatalf("PartialSign (party 1): %v", err)
	}
	part2, err := PartialSign(priv2, pub1, pub2, combined, msg)
	if err != nil {
		t.Fatalf("PartialSign (party 2): %v", err)
	}

	sig, err := Aggregate(part1, part2)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	return sig, combined
}

// TestRoundTrip: a two-party aggregate signature verifies under the combined
// key, regardless of whether the combined nonce's Y happened to come out
// even or odd — this is run repeatedly since which case occurs depends on
// the random keys drawn.
func TestRoundTrip(t *testing.T) {
	for i := 0; i < 16; i++ {
		msg := []byte("hello musig")
		sig, combined := sign(t, msg)

		valid, err := Verify(sig, combined, msg)
		if err != nil {
			t.Fatalf("Verify: %v", err)
		}
		if !valid {
			t.Fatalf("round %d: aggregate signature did not verify (negate=%v)", i, combined.negate)
		}
	}
}

// TestWrongMessageFails ensures the aggregate signature is bound to the
// message it was produced over.
func TestWrongMessageFails(t *testing.T) {
	sig, combined := sign(t, []byte("hello"))

	valid, err := Verify(sig, combined, []byte("goodbye"))
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if valid {
		t.Fatal("aggregate signature verified against a different message")
	}
}

// TestCombineOrderSensitive covers spec.md §8 invariant 8: combining the
// same two keys in the opposite order must yield a different combined key
// (different L changes every per-signer coefficient), and an aggregate
// signature produced under one order must not verify under the other. The
// combined nonce r* = (R_1 + R_2).x does not depend on L, so it is the same
// in both orders.
func TestCombineOrderSensitive(t *testing.T) {
	priv1, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	priv2, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	pub1 := priv1.Public()
	pub2 := priv2.Public()

	combinedAB, err := Combine(pub1, pub2)
	if err != nil {
		t.Fatalf("Combine(pub1, pub2): %v", err)
	}
	combinedBA, err := Combine(pub2, pub1)
	if err != nil {
		t.Fatalf("Combine(pub2, pub1): %v", err)
	}

	if combinedAB.A.IsEqual(&combinedBA.A) {
		t.Fatal("combined public key did not change when the pubkey order was swapped")
	}
	if combinedAB.r != combinedBA.r {
		t.Fatal("combined r changed when the pubkey order was swapped")
	}

	msg := []byte("hello")
	part1, err := PartialSign(priv1, pub1, pub2, combinedAB, msg)
	if err != nil {
		t.Fatalf("PartialSign: %v", err)
	}
	part2, err := PartialSign(priv2, pub1, pub2, combinedAB, msg)
	if err != nil {
		t.Fatalf("PartialSign: %v", err)
	}
	sigAB, err := Aggregate(part1, part2)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	valid, err := Verify(sigAB, combinedAB, msg)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !valid {
		t.Fatal("aggregate signature did not verify under its own order's combined key")
	}

	valid, err = Verify(sigAB, combinedBA, msg)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if valid {
		t.Fatal("aggregate signature produced under [pub1, pub2] verified under the [pub2, pub1] combined key")
	}
}

// TestPartialSignRejectsUnrelatedKey ensures PartialSign refuses to produce
// a share for a private key that is neither of the two public keys the
// combined key was derived from.
func TestPartialSignRejectsUnrelatedKey(t *testing.T) {
	priv1, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	priv2, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	priv3, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	pub1, pub2 := priv1.Public(), priv2.Public()

	combined, err := Combine(pub1, pub2)
	if err != nil {
		t.Fatalf("Combine: %v", err)
	}

	if _, err := PartialSign(priv3, pub1, pub2, combined, []byte("hello")); err == nil {
		t.Fatal("expected PartialSign to reject a key that is not part of the combined pair")
	}
}

// TestPartialSignaturesDoNotMix covers spec.md §8 invariant 8's broader
// statement that partial signatures are bound to the specific combined key
// they were produced for: a share computed against one combined key must
// not complete into a signature valid under a different combined key, even
// when one of the underlying private keys is shared between both.
func TestPartialSignaturesDoNotMix(t *testing.T) {
	priv1, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	priv2, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	priv3, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	pub1, pub2, pub3 := priv1.Public(), priv2.Public(), priv3.Public()

	combined12, err := Combine(pub1, pub2)
	if err != nil {
		t.Fatalf("Combine(pub1, pub2): %v", err)
	}
	combined13, err := Combine(pub1, pub3)
	if err != nil {
		t.Fatalf("Combine(pub1, pub3): %v", err)
	}

	msg := []byte("hello")
	part1For13, err := PartialSign(priv1, pub1, pub3, combined13, msg)
	if err != nil {
		t.Fatalf("PartialSign: %v", err)
	}
	part2For12, err := PartialSign(priv2, pub1, pub2, combined12, msg)
	if err != nil {
		t.Fatalf("PartialSign: %v", err)
	}

	sig, err := Aggregate(part1For13, part2For12)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	valid, err := Verify(sig, combined12, msg)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if valid {
		t.Fatal("a share produced for a different combined key verified after mixing")
	}
}
