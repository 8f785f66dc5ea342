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

package hash

import (
	"hash"

	"github.com/guardtime/goemv/errors"
)

// DataHasher is the data hash computation object.
type DataHasher struct {
	algo Algorithm
	hsr  hash.Hash
}

// New returns new hasher for the given hash algo.
// Returns error if the hash function is not linked into the binary.
func (a Algorithm) New() (*DataHasher, error) {
	hFunc, err := a.HashFunc()
	if err != nil {
		return nil, err
	}

	return &DataHasher{
		algo: a,
		hsr:  hFunc,
	}, nil
}

// Write (via the embedded io.Writer interface) adds more data to the running hash.
// In case of EmvInvalidArgumentError error (e.g. h is nil), function returns non
// standard -1 as count of bytes written.
func (h *DataHasher) Write(p []byte) (int, error) {
	if h == nil || h.hsr == nil {
		return -1, errors.New(errors.EmvInvalidArgumentError)
	}
	n, err := h.hsr.Write(p)
	if err != nil {
		return n, errors.New(errors.EmvCryptoFailure).SetExtError(err)
	}
	return n, nil
}

// Digest returns the hash value for the current computation. It does not change
// the underlying hash state.
func (h *DataHasher) Digest() ([]byte, error) {
	if h == nil || h.hsr == nil {
		return nil, errors.New(errors.EmvInvalidArgumentError)
	}
	return h.hsr.Sum(nil), nil
}

// Reset resets the hasher to its initial state.
func (h *DataHasher) Reset() {
	if h == nil || h.hsr == nil {
		return
	}
	h.hsr.Reset()
}

// Size returns the resulting digest length in bytes for the given hash function.
// In case of an error, a negative value is returned.
func (h *DataHasher) Size() int {
	if h == nil || h.hsr == nil {
		return -1
	}
	return h.algo.Size()
}

// Algorithm returns the algorithm the hasher was initialized with.
func (h *DataHasher) Algorithm() Algorithm {
	if h == nil {
		return SHA_NA
	}
	return h.algo
}
