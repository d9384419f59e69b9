// Copyright (c) 2024 The schnorrkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package schnorrkit is the root of the Schnorr / committed-R / MuSig
// signature library; the cryptographic work lives in its schnorr,
// committedr, and musig subpackages.
package schnorrkit

// Context is a handle callers thread through a sequence of signing and
// verification calls. It carries no state of its own — every operation in
// this module is a pure function of its explicit arguments — and exists for
// API symmetry with callers migrating code structured around an explicit
// context value. Close is a no-op.
type Context struct{}

// NewContext returns a new Context.
func NewContext() *Context {
	return &Context{}
}

// Close releases any resources held by ctx. It is a no-op.
func (ctx *Context) Close() {}
