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
	"bytes"
	"testing"

	"github.com/guardtime/goemv/test/utils"
)

func TestUnitHashAlgorithmIndicator(t *testing.T) {
	if SHA1 != Algorithm(0x01) {
		t.Errorf("Wrong EMV indicator for SHA-1: %x.", int(SHA1))
	}
	if ByIndicator(0x01) != SHA1 {
		t.Error("Indicator 0x01 must resolve to SHA-1.")
	}
	if ByIndicator(0x55) != SHA_NA {
		t.Error("Undefined indicator must resolve to SHA_NA.")
	}
}

func TestUnitHashAlgorithmProperties(t *testing.T) {
	if !SHA1.Defined() || !SHA1.Registered() {
		t.Error("SHA-1 must be defined and registered by default.")
	}
	if SHA1.Size() != 20 {
		t.Error("SHA-1 digest must be 20 bytes, got: ", SHA1.Size())
	}
	if SHA_NA.Defined() || SHA_NA.Registered() {
		t.Error("SHA_NA must not be defined nor registered.")
	}
	if !(SHA_NA.Size() < 0) {
		t.Error("Undefined algorithm size must be negative.")
	}
}

func TestUnitHasherCreateError(t *testing.T) {
	if _, err := SHA_NA.New(); err == nil {
		t.Fatal("Must return error. SHA_NA is not supported by API.")
	}
}

func TestUnitHasherComputation(t *testing.T) {
	hasher, err := SHA1.New()
	if err != nil {
		t.Fatal("Failed to create data hasher: ", err)
	}
	if _, err := hasher.Write([]byte("abc")); err != nil {
		t.Fatal("Failed to write to data hasher: ", err)
	}
	digest, err := hasher.Digest()
	if err != nil {
		t.Fatal("Failed to get digest: ", err)
	}
	// SHA-1 test vector from FIPS 180-1.
	expected := utils.StringToBin("a9993e364706816aba3e25717850c26c9cd0d89d")
	if !bytes.Equal(digest, expected) {
		t.Errorf("Digest mismatch: %x.", digest)
	}
}

func TestUnitHasherDigestDoesNotResetState(t *testing.T) {
	hasher, err := SHA1.New()
	if err != nil {
		t.Fatal("Failed to create data hasher: ", err)
	}
	if _, err := hasher.Write([]byte("ab")); err != nil {
		t.Fatal("Failed to write to data hasher: ", err)
	}
	if _, err = hasher.Digest(); err != nil {
		t.Fatal("Failed to get digest: ", err)
	}
	if _, err := hasher.Write([]byte("c")); err != nil {
		t.Fatal("Failed to write to data hasher: ", err)
	}
	digest, err := hasher.Digest()
	if err != nil {
		t.Fatal("Failed to get digest: ", err)
	}
	if !bytes.Equal(digest, utils.StringToBin("a9993e364706816aba3e25717850c26c9cd0d89d")) {
		t.Errorf("Digest mismatch after incremental write: %x.", digest)
	}
}

func TestWriteToNilDataHasher(t *testing.T) {
	var hasher *DataHasher
	written, err := hasher.Write([]byte{0x32})
	if err == nil || written != -1 {
		t.Fatal("Should not be possible to write to nil data hasher.")
	}
}

func TestWriteToNotInitializedDataHasher(t *testing.T) {
	var hasher DataHasher
	written, err := hasher.Write([]byte{0x32})
	if err == nil || written != -1 {
		t.Fatal("Should not be possible to write to not initialized data hasher.")
	}
}

func TestGetDigestFromNilDataHasher(t *testing.T) {
	var hasher *DataHasher
	if _, err := hasher.Digest(); err == nil {
		t.Fatal("Should not be possible to get digest from nil data hasher.")
	}
}

func TestResetNilDataHasher(t *testing.T) {
	var hasher *DataHasher
	hasher.Reset()
}

func TestGetSizeFromNilDataHasher(t *testing.T) {
	var hasher *DataHasher
	if !(hasher.Size() < 0) {
		t.Fatal("Unexpected hasher size from nil data hasher.")
	}
}

func TestGetAlgorithmFromNilDataHasher(t *testing.T) {
	var hasher *DataHasher
	if hasher.Algorithm() != SHA_NA {
		t.Fatal("Nil data hasher must report SHA_NA.")
	}
}
