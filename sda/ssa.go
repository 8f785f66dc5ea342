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
	"fmt"

	"github.com/guardtime/goemv/errors"
	"github.com/guardtime/goemv/hash"
)

// Recovered signed static application data layout (EMV Book 2, table 7).
const (
	// ssaFormat is the signed data format value of a static application data block.
	ssaFormat = byte(0x03)

	ssaFormatOffset  = 1
	ssaHashAlgOffset = 2
	ssaDACOffset     = 3
	ssaDACLen        = 2
	// ssaTrailerLen is the digest and trailer region terminating the block.
	ssaTrailerLen = 20 + 1
)

// staticData is a recovered signed static application data block.
type staticData struct {
	data []byte
	algo hash.Algorithm
}

// parseStaticData validates the structural header of a recovered signed static
// application data block. Layout violations fail with EmvInvalidFormatError.
func parseStaticData(recovered []byte) (*staticData, error) {
	if len(recovered) <= ssaDACOffset+ssaDACLen+ssaTrailerLen {
		return nil, errors.New(errors.EmvInvalidFormatError).
			AppendMessage(fmt.Sprintf("Signed static data of %d bytes can not hold the mandatory fields.", len(recovered)))
	}

	if recovered[0] != recoveredDataHeader {
		return nil, errors.New(errors.EmvInvalidFormatError).
			AppendMessage(fmt.Sprintf("Bad signed data header: %x.", recovered[0]))
	}
	if recovered[ssaFormatOffset] != ssaFormat {
		return nil, errors.New(errors.EmvInvalidFormatError).
			AppendMessage(fmt.Sprintf("Bad signed data format: %x.", recovered[ssaFormatOffset]))
	}

	algo := hash.ByIndicator(recovered[ssaHashAlgOffset])
	if algo != hash.SHA1 {
		return nil, errors.New(errors.EmvInvalidFormatError).
			AppendMessage(fmt.Sprintf("Unexpected hash algorithm indicator: %x.", recovered[ssaHashAlgOffset]))
	}

	return &staticData{data: recovered, algo: algo}, nil
}

// message reconstructs the byte sequence the issuer hashed when signing the
// card's static data: the recovered block from the format byte up to the
// digest region, the raw bytes of every static record in original parse order,
// and the two byte application interchange profile.
func (s *staticData) message(records [][]byte, aip []byte) []byte {
	body := s.data[ssaFormatOffset : len(s.data)-(s.algo.Size()+1)]

	msgLen := len(body) + len(aip)
	for _, rec := range records {
		msgLen += len(rec)
	}

	msg := make([]byte, 0, msgLen)
	msg = append(msg, body...)
	for _, rec := range records {
		msg = append(msg, rec...)
	}
	msg = append(msg, aip...)
	return msg
}

// dac returns the Data Authentication Code the issuer embedded into the block.
func (s *staticData) dac() []byte {
	tmp := make([]byte, ssaDACLen)
	copy(tmp, s.data[ssaDACOffset:ssaDACOffset+ssaDACLen])
	return tmp
}
