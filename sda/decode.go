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
	"bytes"

	"github.com/guardtime/goemv/errors"
	"github.com/guardtime/goemv/hash"
)

// trailerByte is the sentinel terminating every validly encoded recovered block
// (ISO/IEC 9796-2 'BC' trailer).
const trailerByte = byte(0xbc)

// decodeSignedBlock validates a recovered block against the message it signs:
// the block must end with the trailer sentinel and embed the digest of the
// message right before it. This is the sole correctness gate of both the
// issuer certificate and the signed static data validation.
func decodeSignedBlock(algo hash.Algorithm, message, block []byte) error {
	hsr, err := algo.New()
	if err != nil {
		return err
	}
	if _, err := hsr.Write(message); err != nil {
		return err
	}
	digest, err := hsr.Digest()
	if err != nil {
		return err
	}

	if len(block) < len(digest)+2 {
		return errors.New(errors.EmvInvalidFormatError).
			AppendMessage("Recovered block is too short to embed a digest.")
	}

	if block[len(block)-1] != trailerByte {
		return errors.New(errors.EmvBadTrailerError)
	}

	bodyLen := len(block) - len(digest) - 1
	if !bytes.Equal(block[bodyLen:bodyLen+len(digest)], digest) {
		return errors.New(errors.EmvHashMismatchError)
	}

	return nil
}
