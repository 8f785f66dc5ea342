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

import (
	"math/big"

	"github.com/guardtime/goemv/errors"
)

// CAKeyResolver provides the Certification Authority public key for a given
// public key index. A (nil, nil) return means no key is known for the index;
// both key fields are resolved atomically so a mismatched modulus and exponent
// pair can not be observed.
type CAKeyResolver interface {
	CAKey(index uint8) (*KeyMaterial, error)
}

// KeyMaterial is an RSA public key in the raw byte representation EMV
// structures carry. The modulus byte length doubles as the block size of every
// recovery operation performed under the key.
type KeyMaterial struct {
	modulus  []byte
	exponent []byte

	n *big.Int
	e *big.Int
}

// NewKeyMaterial assembles public key material from raw modulus and exponent
// bytes. Empty or zero valued input fails with EmvKeyConstructionError.
func NewKeyMaterial(modulus, exponent []byte) (*KeyMaterial, error) {
	if len(modulus) == 0 {
		return nil, errors.New(errors.EmvKeyConstructionError).AppendMessage("Modulus is empty.")
	}
	if len(exponent) == 0 {
		return nil, errors.New(errors.EmvKeyConstructionError).AppendMessage("Exponent is empty.")
	}

	n := new(big.Int).SetBytes(modulus)
	if n.Sign() == 0 {
		return nil, errors.New(errors.EmvKeyConstructionError).AppendMessage("Modulus is zero.")
	}
	e := new(big.Int).SetBytes(exponent)
	if e.Sign() == 0 {
		return nil, errors.New(errors.EmvKeyConstructionError).AppendMessage("Exponent is zero.")
	}

	return &KeyMaterial{
		modulus:  modulus,
		exponent: exponent,
		n:        n,
		e:        e,
	}, nil
}

// Modulus returns the raw modulus bytes. The returned slice must not be modified.
func (k *KeyMaterial) Modulus() []byte {
	if k == nil {
		return nil
	}
	return k.modulus
}

// Exponent returns the raw exponent bytes. The returned slice must not be modified.
func (k *KeyMaterial) Exponent() []byte {
	if k == nil {
		return nil
	}
	return k.exponent
}

// KeyLength returns the modulus byte length.
func (k *KeyMaterial) KeyLength() int {
	if k == nil {
		return 0
	}
	return len(k.modulus)
}

// Recover applies the raw RSA public transform to the given block, yielding
// the data embedded into a signature made under the corresponding private key.
// No padding scheme is applied or removed.
//
// The input must be exactly KeyLength() bytes; the recovered data is returned
// in a newly allocated buffer of the same length and the input is never
// modified. A transform that can not reproduce the block length fails with
// EmvLengthMismatchError.
func (k *KeyMaterial) Recover(block []byte) ([]byte, error) {
	if k == nil || block == nil {
		return nil, errors.New(errors.EmvInvalidArgumentError)
	}
	if len(block) != k.KeyLength() {
		return nil, errors.New(errors.EmvLengthMismatchError).
			AppendMessage("Input block length does not match the key modulus length.")
	}

	m := new(big.Int).SetBytes(block)
	if m.Cmp(k.n) >= 0 {
		return nil, errors.New(errors.EmvCryptoFailure).
			AppendMessage("Input block is not reducible modulo the key.")
	}

	r := new(big.Int).Exp(m, k.e, k.n)

	scratch := make([]byte, len(block))
	if (r.BitLen()+7)/8 > len(scratch) {
		return nil, errors.New(errors.EmvLengthMismatchError).
			AppendMessage("Recovered data does not preserve the block length.")
	}
	r.FillBytes(scratch)
	return scratch, nil
}
