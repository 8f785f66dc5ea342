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

// Recovered issuer public key certificate layout (EMV Book 2, table 6).
// Every offset is validated against the certificate length before slicing.
const (
	// recoveredDataHeader is the value of the leading byte of every recovered block.
	recoveredDataHeader = byte(0x6a)
	// certFormatIssuer is the certificate format value of an issuer PK certificate.
	certFormatIssuer = byte(0x02)

	certFormatOffset    = 1
	certIssuerIDOffset  = 2
	certExpiryOffset    = 6
	certSerialOffset    = 8
	certHashAlgOffset   = 11
	certPKAlgOffset     = 12
	certPKLenOffset     = 13
	certExpLenOffset    = 14
	certKeyOffset       = 15
	// certTrailerLen is the digest and trailer region terminating the certificate.
	certTrailerLen = 20 + 1
)

// issuerCertificate is a recovered issuer public key certificate.
type issuerCertificate struct {
	data []byte
	algo hash.Algorithm
}

// parseIssuerCertificate validates the structural header of a recovered issuer
// PK certificate. Layout violations fail with EmvInvalidFormatError.
func parseIssuerCertificate(recovered []byte) (*issuerCertificate, error) {
	if len(recovered) <= certKeyOffset+certTrailerLen {
		return nil, errors.New(errors.EmvInvalidFormatError).
			AppendMessage(fmt.Sprintf("Certificate of %d bytes can not hold the mandatory fields.", len(recovered)))
	}

	if recovered[0] != recoveredDataHeader {
		return nil, errors.New(errors.EmvInvalidFormatError).
			AppendMessage(fmt.Sprintf("Bad certificate header: %x.", recovered[0]))
	}
	if recovered[certFormatOffset] != certFormatIssuer {
		return nil, errors.New(errors.EmvInvalidFormatError).
			AppendMessage(fmt.Sprintf("Bad certificate format: %x.", recovered[certFormatOffset]))
	}

	algo := hash.ByIndicator(recovered[certHashAlgOffset])
	if algo != hash.SHA1 {
		return nil, errors.New(errors.EmvInvalidFormatError).
			AppendMessage(fmt.Sprintf("Unexpected hash algorithm indicator: %x.", recovered[certHashAlgOffset]))
	}

	return &issuerCertificate{data: recovered, algo: algo}, nil
}

// message reconstructs the byte sequence the certification authority hashed
// when issuing the certificate: the recovered certificate from the format byte
// up to the digest region, followed by the modulus remainder and the exponent.
func (c *issuerCertificate) message(remainder, exponent []byte) []byte {
	body := c.data[certFormatOffset : len(c.data)-(c.algo.Size()+1)]

	msg := make([]byte, 0, len(body)+len(remainder)+len(exponent))
	msg = append(msg, body...)
	msg = append(msg, remainder...)
	msg = append(msg, exponent...)
	return msg
}

// issuerKey reconstructs the issuer public key certified by the block: the
// modulus is the certificate key field with the remainder appended, the
// exponent is carried beside the certificate on the card.
func (c *issuerCertificate) issuerKey(remainder, exponent []byte) (*KeyMaterial, error) {
	keyField := c.data[certKeyOffset : len(c.data)-certTrailerLen]

	modulus := make([]byte, 0, len(keyField)+len(remainder))
	modulus = append(modulus, keyField...)
	modulus = append(modulus, remainder...)

	// The recovered key length is tied to the certificate length: the key field
	// plus the remainder must fill the certificate block exactly, as the issuer
	// key signs blocks of the same size as its own certificate.
	if len(modulus) != len(c.data) {
		return nil, errors.New(errors.EmvKeyConstructionError).
			AppendMessage(fmt.Sprintf("Issuer modulus of %d bytes does not fill the %d byte certificate.",
				len(modulus), len(c.data)))
	}

	return NewKeyMaterial(modulus, exponent)
}
