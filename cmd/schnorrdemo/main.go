// Copyright (c) 2024 The schnorrkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command schnorrdemo walks through every operation the schnorrkit module
// offers: classic Schnorr sign/verify, a committed-R round trip, recovering
// a committed-R private key from two signatures over distinct messages and
// reusing it as an ordinary Schnorr key, and a two-party MuSig aggregate
// signature.
package main

import (
	"fmt"
	"os"

	"github.com/marrowgate/schnorrkit"
	"github.com/marrowgate/schnorrkit/committedr"
	"github.com/marrowgate/schnorrkit/musig"
	"github.com/marrowgate/schnorrkit/schnorr"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "schnorrdemo:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := schnorrkit.NewContext()
	defer ctx.Close()

	if err := runSchnorr(); err != nil {
		return fmt.Errorf("schnorr: %w", err)
	}

	recoveredPriv, err := runCommittedR()
	if err != nil {
		return fmt.Errorf("committedr: %w", err)
	}

	if err := runRecoveredReSign(recoveredPriv); err != nil {
		return fmt.Errorf("re-sign with recovered key: %w", err)
	}

	if err := runMusig(); err != nil {
		return fmt.Errorf("musig: %w", err)
	}

	fmt.Println("all operations completed successfully")
	return nil
}

func runSchnorr() error {
	priv, pub, err := schnorr.GenerateKey()
	if err != nil {
		return err
	}
	defer priv.Zero()

	msg := []byte("hello")
	sig, err := schnorr.Sign(priv, msg)
	if err != nil {
		return err
	}

	valid, err := schnorr.Verify(sig, pub, msg)
	if err != nil {
		return err
	}
	if !valid {
		return fmt.Errorf("freshly produced signature did not verify")
	}
	fmt.Println("schnorr: sign + verify ok")
	return nil
}

// runCommittedR signs two distinct messages under one committed-R key,
// recovers the private key from the resulting pair of signatures, and
// returns the recovered private scalar wrapped as an ordinary schnorr key.
func runCommittedR() (*schnorr.PrivateKey, error) {
	rkey, err := committedr.GenerateKey()
	if err != nil {
		return nil, err
	}
	pub := rkey.Public()

	msg := []byte("hello")
	sig, err := committedr.Sign(rkey, msg)
	if err != nil {
		return nil, err
	}

	valid, err := committedr.Verify(sig, pub, msg)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, fmt.Errorf("freshly produced committed-R signature did not verify")
	}
	fmt.Println("committedr: sign + verify ok")

	msg2 := []byte("hellO")
	sig2, err := committedr.Sign(rkey, msg2)
	if err != nil {
		return nil, err
	}

	recovered, err := committedr.Recover(sig, msg, sig2, msg2, pub)
	if err != nil {
		return nil, err
	}
	fmt.Println("committedr: recovered private key from nonce reuse")

	return schnorr.NewPrivateKeyFromScalar(recovered.Scalar()), nil
}

func runRecoveredReSign(priv *schnorr.PrivateKey) error {
	pub := priv.Public()

	msg := []byte("random")
	sig, err := schnorr.Sign(priv, msg)
	if err != nil {
		return err
	}

	valid, err := schnorr.Verify(sig, pub, msg)
	if err != nil {
		return err
	}
	if !valid {
		return fmt.Errorf("signature from recovered key did not verify")
	}
	fmt.Println("schnorr: re-signed and verified with the recovered key")
	return nil
}

func runMusig() error {
	priv1, err := musig.GenerateKey()
	if err != nil {
		return err
	}
	priv2, err := musig.GenerateKey()
	if err != nil {
		return err
	}
	pub1, pub2 := priv1.Public(), priv2.Public()

	combined, err := musig.Combine(pub1, pub2)
	if err != nil {
		return err
	}

	msg := []byte("hello")
	part1, err := musig.PartialSign(priv1, pub1, pub2, combined, msg)
	if err != nil {
		return err
	}
	part2, err := musig.PartialSign(priv2, pub1, pub2, combined, msg)
	if err != nil {
		return err
	}

	sig, err := musig.Aggregate(part1, part2)
	if err != nil {
		return err
	}

	valid, err := musig.Verify(sig, combined, msg)
	if err != nil {
		return err
	}
	if !valid {
		return fmt.Errorf("aggregate signature did not verify")
	}
	fmt.Println("musig: two-party aggregate sign + verify ok")
	return nil
}
