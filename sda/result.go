/*
 * Copyright 2026 Guardtime, Inc.
 *
 * This file is part of the Guardtime EMV toolkit.
 *
 * Licensed under the Apache License, Version 2.0 (the "License").
 * You may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *     http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES, CONDITIONS, OR OTHER LICENSES OF ANY KIND, either
 * express or implied. See the License for the specific language governing
 * permissions and limitations under the License.
 * "Guardtime" is a trademark or registered trademark of Guardtime, Inc.,
 * and no license to trademarks is granted; Guardtime reserves and retains
 * all trademark rights.
 */

package sda

// Result is the immutable outcome of an authentication attempt. On success it
// retains the trust chain keys for later inspection; a failed attempt yields a
// result with no key material and Authenticated() reporting false.
type Result struct {
	authenticated bool
	caKey         *KeyMaterial
	issuerKey     *KeyMaterial
	dac           []byte
}

// Authenticated reports whether the card's static data was authenticated.
func (r *Result) Authenticated() bool {
	if r == nil {
		return false
	}
	return r.authenticated
}

// CAKey returns the Certification Authority key the trust chain was anchored
// to, or nil in case the attempt failed before or at key acquisition.
func (r *Result) CAKey() *KeyMaterial {
	if r == nil {
		return nil
	}
	return r.caKey
}

// IssuerKey returns the issuer public key recovered from the certificate, or
// nil in case the attempt did not reach or complete certificate validation.
func (r *Result) IssuerKey() *KeyMaterial {
	if r == nil {
		return nil
	}
	return r.issuerKey
}

// DataAuthenticationCode returns the two byte code the issuer embedded into
// the signed static data, or nil in case the attempt did not succeed.
func (r *Result) DataAuthenticationCode() []byte {
	if r == nil {
		return nil
	}
	return r.dac
}
