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

// Package cakeys implements the Certification Authority public key store
// consulted during static data authentication.
//
// Payment scheme CA keys are distributed out of band and selected by the one
// byte public key index the card presents. The store loads key sets from YAML
// key files, optionally validated against a detached PKCS#7 signature, and
// serves them through the sda.CAKeyResolver interface.
package cakeys

import (
	"fmt"

	"github.com/guardtime/goemv/errors"
	"github.com/guardtime/goemv/sda"
)

// Store is an in-memory CA public key set keyed by public key index.
// It implements sda.CAKeyResolver. The store is immutable after construction
// and safe for concurrent lookups.
type Store struct {
	keys map[uint8]*sda.KeyMaterial

	// PKI trust anchors for verified key file loading.
	trust trustStore
}

// NewStore returns a new CA key store instance, or error in case any input
// settings are not valid. Settings are applied in order: trust anchors must be
// configured before any StoreVerifiedFile setting that relies on them.
func NewStore(settings ...StoreSetting) (*Store, error) {
	tmp := store{obj: Store{
		keys: make(map[uint8]*sda.KeyMaterial),
	}}
	for _, setter := range settings {
		if setter == nil {
			return nil, errors.New(errors.EmvInvalidArgumentError).AppendMessage("Setting is a nil pointer.")
		}
		if err := setter(&tmp); err != nil {
			return nil, err
		}
	}
	return &tmp.obj, nil
}

// StoreSetting is store initialization option.
type (
	StoreSetting func(*store) error
	store        struct {
		obj Store
	}
)

// StoreSetKey is configuration method that adds a single CA key under the
// given public key index. A duplicate index is rejected.
func StoreSetKey(index uint8, modulus, exponent []byte) StoreSetting {
	return func(s *store) error {
		if s == nil {
			return errors.New(errors.EmvInvalidArgumentError).AppendMessage("Missing store base object.")
		}

		key, err := sda.NewKeyMaterial(modulus, exponent)
		if err != nil {
			return errors.EmvErr(err).
				AppendMessage(fmt.Sprintf("Unable to construct CA key for index %d.", index))
		}
		return s.obj.add(index, key)
	}
}

func (s *Store) add(index uint8, key *sda.KeyMaterial) error {
	if _, ok := s.keys[index]; ok {
		return errors.New(errors.EmvInvalidFormatError).
			AppendMessage(fmt.Sprintf("Duplicate CA public key index %d.", index))
	}
	s.keys[index] = key
	return nil
}

// CAKey implements sda.CAKeyResolver. An unknown index returns (nil, nil).
func (s *Store) CAKey(index uint8) (*sda.KeyMaterial, error) {
	if s == nil {
		return nil, errors.New(errors.EmvInvalidArgumentError)
	}
	return s.keys[index], nil
}

// Len returns the count of stored CA keys.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}
