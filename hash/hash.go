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

// Package hash implements the hash algorithm indicators used within EMV signed structures
// (see Algorithm) and hash computation functions.
//
// The indicator values are the one-byte identifiers the card embeds into its signed
// certificate and static data blocks. Current payment scheme specifications mandate
// SHA-1 for Static Data Authentication, which is the only algorithm registered by
// default; additional indicator values can be registered with RegisterHash().
package hash

import (
	"crypto"
	"fmt"
	"hash"

	// Indirectly import packages from std library.
	// Additional packages can be imported by the user.
	_ "crypto/sha1"

	"github.com/guardtime/goemv/errors"
)

// Algorithm is the EMV hash algorithm indicator.
type Algorithm int

const (
	// SHA1 is SHA-1 algorithm, indicator value '01' (EMV Book 2, Annex B3).
	SHA1 Algorithm = 0x01

	// SHA_NA defines an invalid algorithm.
	SHA_NA Algorithm = 0x100
)

// Default is the algorithm indicator mandated for Static Data Authentication.
const Default = SHA1

type hashFuncInfo struct {
	// Algorithm ID as defined in the crypto package.
	cryptoId crypto.Hash
	// User registered hasher constructor.
	newHash func() hash.Hash
	// Digest byte count.
	size int
	// Printable name.
	name string
}

var hashFuncLookup = map[Algorithm]*hashFuncInfo{
	SHA1: {cryptoId: crypto.SHA1, size: crypto.SHA1.Size(), name: "SHA-1"},
}

// RegisterHash registers a hash function constructor for the given algorithm indicator.
// Registering a constructor for an already defined algorithm overrides the default
// implementation.
func RegisterHash(alg Algorithm, size int, name string, newHash func() hash.Hash) error {
	if newHash == nil || size <= 0 {
		return errors.New(errors.EmvInvalidArgumentError)
	}
	hashFuncLookup[alg] = &hashFuncInfo{
		newHash: newHash,
		size:    size,
		name:    name,
	}
	return nil
}

// ByIndicator converts the indicator byte of a signed structure into an Algorithm.
// SHA_NA is returned in case the value is not defined.
func ByIndicator(b byte) Algorithm {
	if _, ok := hashFuncLookup[Algorithm(b)]; !ok {
		return SHA_NA
	}
	return Algorithm(b)
}

// Defined reports whether the algorithm indicator value is known to the API.
func (a Algorithm) Defined() bool {
	_, ok := hashFuncLookup[a]
	return ok
}

// Registered reports whether an implementation of the algorithm is available
// for hash computation.
func (a Algorithm) Registered() bool {
	info, ok := hashFuncLookup[a]
	if !ok {
		return false
	}
	return info.newHash != nil || info.cryptoId.Available()
}

// Size returns the resulting digest length in bytes for the given algorithm.
// In case the algorithm is not defined, a negative value is returned.
func (a Algorithm) Size() int {
	info, ok := hashFuncLookup[a]
	if !ok {
		return -1
	}
	return info.size
}

// HashFunc returns a new initialized hash function instance,
// or error in case the algorithm is not defined or not registered.
func (a Algorithm) HashFunc() (hash.Hash, error) {
	info, ok := hashFuncLookup[a]
	if !ok {
		return nil, errors.New(errors.EmvUnknownHashAlgorithm).
			AppendMessage(fmt.Sprintf("Hash algorithm indicator is not defined: %x.", int(a)))
	}
	if info.newHash != nil {
		return info.newHash(), nil
	}
	if !info.cryptoId.Available() {
		return nil, errors.New(errors.EmvUnknownHashAlgorithm).
			AppendMessage(fmt.Sprintf("%s hash function is not linked into the binary.", info.name))
	}
	return info.cryptoId.New(), nil
}

// String implements fmt.Stringer interface.
func (a Algorithm) String() string {
	info, ok := hashFuncLookup[a]
	if !ok {
		return fmt.Sprintf("Unknown hash algorithm '%x'", int(a))
	}
	return info.name
}
