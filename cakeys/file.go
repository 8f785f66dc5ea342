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
	"encoding/hex"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/guardtime/goemv/errors"
	"github.com/guardtime/goemv/log"
	"github.com/guardtime/goemv/sda"
)

// keyFile is the YAML key file layout.
type keyFile struct {
	Keys []keyEntry `yaml:"keys"`
}

// keyEntry is one CA key record of a key file. Modulus and exponent are hex
// encoded big endian byte strings.
type keyEntry struct {
	Index    uint8  `yaml:"index"`
	Modulus  string `yaml:"modulus"`
	Exponent string `yaml:"exponent"`
}

// StoreFromFile is configuration method that loads CA keys from a YAML key
// file. Unknown fields, undecodable hex and duplicate indexes are rejected.
func StoreFromFile(fname string) StoreSetting {
	return func(s *store) error {
		if s == nil {
			return errors.New(errors.EmvInvalidArgumentError).AppendMessage("Missing store base object.")
		}

		dat, err := os.ReadFile(fname)
		if err != nil {
			return errors.New(errors.EmvIoError).SetExtError(err).
				AppendMessage(fmt.Sprintf("Unable to open key file '%s'.", fname))
		}
		return loadKeys(&s.obj, fname, dat)
	}
}

// StoreVerifiedFile is configuration method that loads CA keys from a YAML key
// file accompanied by a detached PKCS#7 signature over the raw file bytes.
// The trust anchors must have been configured by a preceding setting.
func StoreVerifiedFile(fname, signatureFname string) StoreSetting {
	return func(s *store) error {
		if s == nil {
			return errors.New(errors.EmvInvalidArgumentError).AppendMessage("Missing store base object.")
		}

		dat, err := os.ReadFile(fname)
		if err != nil {
			return errors.New(errors.EmvIoError).SetExtError(err).
				AppendMessage(fmt.Sprintf("Unable to open key file '%s'.", fname))
		}
		sig, err := os.ReadFile(signatureFname)
		if err != nil {
			return errors.New(errors.EmvIoError).SetExtError(err).
				AppendMessage(fmt.Sprintf("Unable to open key file signature '%s'.", signatureFname))
		}

		if err := s.obj.trust.verify(dat, sig); err != nil {
			return errors.EmvErr(err).
				AppendMessage(fmt.Sprintf("Key file '%s' did not pass signature verification.", fname))
		}
		log.Debug("Key file signature verified: ", fname)

		return loadKeys(&s.obj, fname, dat)
	}
}

func loadKeys(s *Store, fname string, dat []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(dat))
	dec.KnownFields(true)

	var file keyFile
	if err := dec.Decode(&file); err != nil {
		return errors.New(errors.EmvInvalidFormatError).SetExtError(err).
			AppendMessage(fmt.Sprintf("Unable to parse key file '%s'.", fname))
	}
	if len(file.Keys) == 0 {
		return errors.New(errors.EmvInvalidFormatError).
			AppendMessage(fmt.Sprintf("Key file '%s' contains no keys.", fname))
	}

	for _, entry := range file.Keys {
		modulus, err := hex.DecodeString(entry.Modulus)
		if err != nil {
			return errors.New(errors.EmvInvalidFormatError).SetExtError(err).
				AppendMessage(fmt.Sprintf("Undecodable modulus for index %d in key file '%s'.", entry.Index, fname))
		}
		exponent, err := hex.DecodeString(entry.Exponent)
		if err != nil {
			return errors.New(errors.EmvInvalidFormatError).SetExtError(err).
				AppendMessage(fmt.Sprintf("Undecodable exponent for index %d in key file '%s'.", entry.Index, fname))
		}

		key, err := sda.NewKeyMaterial(modulus, exponent)
		if err != nil {
			return errors.EmvErr(err).
				AppendMessage(fmt.Sprintf("Unusable CA key for index %d in key file '%s'.", entry.Index, fname))
		}
		if err := s.add(entry.Index, key); err != nil {
			return errors.EmvErr(err).
				AppendMessage(fmt.Sprintf("Unable to add key from file '%s'.", fname))
		}
	}
	log.Info(fmt.Sprintf("Loaded %d CA keys from '%s'.", len(file.Keys), fname))
	return nil
}
