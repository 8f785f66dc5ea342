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

package cakeys

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/guardtime/goemv/errors"
)

var testKeyFileYaml = []byte(`keys:
  - index: 5
    modulus: "bb1325b8cf49d7ea225c3e71c28a66a22ab1dc997c42e84f2e47c279bd98c7c1"
    exponent: "03"
  - index: 9
    modulus: "c9f4d37f90a1b2c3d4e5f60718293a4b5c6d7e8f9aabbccddeeff00112233445"
    exponent: "010001"
`)

func writeTestFile(t *testing.T, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal("Failed to write test file: ", err)
	}
	return path
}

func TestUnitStoreSetKey(t *testing.T) {
	store, err := NewStore(
		StoreSetKey(0x05, []byte{0xbb, 0x13}, []byte{0x03}),
		StoreSetKey(0x09, []byte{0xc9, 0xf4}, []byte{0x01, 0x00, 0x01}),
	)
	if err != nil {
		t.Fatal("Failed to create key store: ", err)
	}
	if store.Len() != 2 {
		t.Fatal("Unexpected key count: ", store.Len())
	}

	key, err := store.CAKey(0x05)
	if err != nil || key == nil {
		t.Fatal("Lookup of a known index must succeed: ", err)
	}
	if !bytes.Equal(key.Modulus(), []byte{0xbb, 0x13}) {
		t.Error("Unexpected modulus: ", key.Modulus())
	}

	key, err = store.CAKey(0x42)
	if err != nil || key != nil {
		t.Fatal("Lookup of an unknown index must return no key and no error.")
	}
}

func TestUnitStoreSetKeyDuplicateIndex(t *testing.T) {
	_, err := NewStore(
		StoreSetKey(0x05, []byte{0xbb, 0x13}, []byte{0x03}),
		StoreSetKey(0x05, []byte{0xc9, 0xf4}, []byte{0x03}),
	)
	if errors.EmvErr(err).Code() != errors.EmvInvalidFormatError {
		t.Fatal("Duplicate index must be rejected, got: ", err)
	}
}

func TestUnitStoreSetKeyInvalidMaterial(t *testing.T) {
	_, err := NewStore(StoreSetKey(0x05, nil, []byte{0x03}))
	if errors.EmvErr(err).Code() != errors.EmvKeyConstructionError {
		t.Fatal("Empty modulus must be rejected, got: ", err)
	}
}

func TestUnitStoreNilSetting(t *testing.T) {
	if _, err := NewStore(nil); errors.EmvErr(err).Code() != errors.EmvInvalidArgumentError {
		t.Fatal("Nil setting must be rejected, got: ", err)
	}
}

func TestUnitStoreFromFile(t *testing.T) {
	path := writeTestFile(t, "cakeys.yaml", testKeyFileYaml)

	store, err := NewStore(StoreFromFile(path))
	if err != nil {
		t.Fatal("Failed to load key file: ", err)
	}
	if store.Len() != 2 {
		t.Fatal("Unexpected key count: ", store.Len())
	}

	key, err := store.CAKey(0x09)
	if err != nil || key == nil {
		t.Fatal("Lookup of a loaded index must succeed: ", err)
	}
	if !bytes.Equal(key.Exponent(), []byte{0x01, 0x00, 0x01}) {
		t.Error("Unexpected exponent: ", key.Exponent())
	}
}

func TestUnitStoreFromFileNotFound(t *testing.T) {
	_, err := NewStore(StoreFromFile(filepath.Join(t.TempDir(), "missing.yaml")))
	if errors.EmvErr(err).Code() != errors.EmvIoError {
		t.Fatal("Missing key file must fail with IO error, got: ", err)
	}
}

func TestUnitStoreFromFileMalformed(t *testing.T) {
	var testData = []struct {
		name    string
		content []byte
	}{
		{"syntax.yaml", []byte("keys: [")},
		{"unknown-field.yaml", []byte("keys:\n  - index: 5\n    modulus: \"bb\"\n    exponent: \"03\"\n    comment: \"x\"\n")},
		{"bad-hex.yaml", []byte("keys:\n  - index: 5\n    modulus: \"zz\"\n    exponent: \"03\"\n")},
		{"empty.yaml", []byte("keys: []\n")},
		{"duplicate.yaml", []byte("keys:\n  - index: 5\n    modulus: \"bb\"\n    exponent: \"03\"\n  - index: 5\n    modulus: \"cc\"\n    exponent: \"03\"\n")},
	}

	for _, td := range testData {
		path := writeTestFile(t, td.name, td.content)
		if _, err := NewStore(StoreFromFile(path)); errors.EmvErr(err).Code() != errors.EmvInvalidFormatError {
			t.Errorf("Loading %s must fail with invalid format, got: %v.", td.name, err)
		}
	}
}

func TestUnitStoreTrustedCertificateFromMissingPem(t *testing.T) {
	_, err := NewStore(StoreSetTrustedCertificateFromFilePem(filepath.Join(t.TempDir(), "missing.pem")))
	if errors.EmvErr(err).Code() != errors.EmvIoError {
		t.Fatal("Missing PEM file must fail with IO error, got: ", err)
	}
}

func TestUnitStoreTrustedCertificateFromGarbagePem(t *testing.T) {
	path := writeTestFile(t, "garbage.pem", []byte("not a certificate"))
	_, err := NewStore(StoreSetTrustedCertificateFromFilePem(path))
	if errors.EmvErr(err).Code() != errors.EmvInvalidFormatError {
		t.Fatal("Garbage PEM file must fail with invalid format, got: ", err)
	}
}

func TestUnitStoreVerifiedFileGarbageSignature(t *testing.T) {
	keyPath := writeTestFile(t, "cakeys.yaml", testKeyFileYaml)
	sigPath := writeTestFile(t, "cakeys.yaml.p7s", []byte("not a signature"))

	_, err := NewStore(StoreVerifiedFile(keyPath, sigPath))
	if errors.EmvErr(err).Code() != errors.EmvInvalidPkiSignature {
		t.Fatal("Garbage signature must fail with invalid PKI signature, got: ", err)
	}
}

func TestUnitStoreNilReceiver(t *testing.T) {
	var s *Store
	if s.Len() != 0 {
		t.Error("Nil store must be empty.")
	}
	if _, err := s.CAKey(0x05); errors.EmvErr(err).Code() != errors.EmvInvalidArgumentError {
		t.Error("Lookup on nil store must fail, got: ", err)
	}
}
