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

package errors

// ErrorCode represent the error code value.
type ErrorCode uint16

const (
	// EmvNoError represent a successful result.
	EmvNoError = ErrorCode(0)

	/*
		Syntax errors
	*/

	// EmvInvalidArgumentError is in case of invalid function input argument (eg. nil pointer).
	EmvInvalidArgumentError = ErrorCode(0x100)
	// EmvInvalidFormatError is set in case a parsed structure does not have the mandated layout
	// (eg. wrong certificate type marker, format version or hash algorithm indicator).
	EmvInvalidFormatError = ErrorCode(0x101)
	// EmvInvalidStateError is set in case the objects used are in an invalid state (eg. missing mandatory member value).
	EmvInvalidStateError = ErrorCode(0x102)
	// EmvDataMissingError is set in case a mandatory data element is absent from the tag store,
	// or can not be decoded into the expected representation.
	EmvDataMissingError = ErrorCode(0x103)
	// EmvLengthMismatchError is set in case a buffer does not have the exact byte length the
	// operation mandates (eg. certificate length vs. key modulus length, recovery output length).
	EmvLengthMismatchError = ErrorCode(0x104)
	// EmvUnknownHashAlgorithm is set in case the hash algorithm ID is invalid or unknown to the API.
	EmvUnknownHashAlgorithm = ErrorCode(0x105)

	/*
		Trust chain errors
	*/

	// EmvUnsupportedMethodError is set in case the card's application interchange profile does not
	// advertise the requested offline authentication method.
	EmvUnsupportedMethodError = ErrorCode(0x200)
	// EmvKeyNotFoundError is set in case no Certification Authority key is known for the requested index.
	EmvKeyNotFoundError = ErrorCode(0x201)
	// EmvKeyConstructionError is set in case public key material can not be assembled into a usable key.
	EmvKeyConstructionError = ErrorCode(0x202)
	// EmvBadTrailerError is set in case a recovered block is not terminated by the mandatory trailer byte.
	EmvBadTrailerError = ErrorCode(0x203)
	// EmvHashMismatchError is set in case the digest embedded into a recovered block does not match
	// the freshly computed digest of the associated message.
	EmvHashMismatchError = ErrorCode(0x204)
	// EmvInvalidPkiSignature is set in case of invalid PKI signature.
	EmvInvalidPkiSignature = ErrorCode(0x205)
	// EmvPkiCertificateNotTrusted is set in case the PKI signature is not trusted by the API.
	EmvPkiCertificateNotTrusted = ErrorCode(0x206)

	/*
		System errors
	*/

	// EmvIoError is set in case IO error occurred.
	EmvIoError = ErrorCode(0x300)
	// EmvCryptoFailure is set in case cryptographic operation could not be performed. Likely causes are unsupported
	// cryptographic algorithms, invalid keys and lack of resources.
	EmvCryptoFailure = ErrorCode(0x301)
	// EmvExternalError is set in case external error from 3rd party API (eg std library) is returned and wrapped automatically inside EmvError.
	EmvExternalError = ErrorCode(0x302)
	// EmvNotImplemented is set in case a called feature is not implemented.
	EmvNotImplemented = ErrorCode(0x3ff)
)

var errStrings = map[ErrorCode]string{
	EmvNoError: "No Error",

	EmvInvalidArgumentError: "Invalid Argument",
	EmvInvalidFormatError:   "Invalid Format",
	EmvInvalidStateError:    "Invalid State",
	EmvDataMissingError:     "Mandatory data element is missing",
	EmvLengthMismatchError:  "Length mismatch",
	EmvUnknownHashAlgorithm: "Unknown Hash Algorithm",

	EmvUnsupportedMethodError:   "Authentication method not supported by the card",
	EmvKeyNotFoundError:         "Certification Authority key not found",
	EmvKeyConstructionError:     "Unable to construct public key",
	EmvBadTrailerError:          "Bad recovered block trailer",
	EmvHashMismatchError:        "Recovered digest mismatch",
	EmvInvalidPkiSignature:      "Invalid PKI signature",
	EmvPkiCertificateNotTrusted: "The PKI certificate is not trusted",

	EmvIoError:        "IO Error",
	EmvCryptoFailure:  "Cryptographic failure",
	EmvExternalError:  "Common external error from 3rd party API",
	EmvNotImplemented: "Not Implemented",
}

func (c ErrorCode) String() string {
	return errStrings[c]
}
