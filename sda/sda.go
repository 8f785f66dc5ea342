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

// Package sda implements offline Static Data Authentication of EMV payment
// cards (EMV Book 2, section 5).
//
// The card presents an issuer public key certificate signed by a payment
// scheme Certification Authority, and a static data block signed by the
// issuer. Authentication recovers the issuer key from the certificate under a
// pre-shared CA key, validates the recovery, then recovers and validates the
// signed static data under the issuer key. Every stage is fail-fast: the first
// failing check aborts the attempt with a typed error and the card remains
// not authenticated.
package sda

import (
	"fmt"

	"github.com/guardtime/goemv/ber"
	"github.com/guardtime/goemv/errors"
	"github.com/guardtime/goemv/log"
)

// AIPSDASupported is the Application Interchange Profile first byte flag
// advertising static data authentication support.
const AIPSDASupported = byte(0x40)

// sdaRequest holds the mandatory data elements of one authentication attempt.
// All byte fields are borrowed views into store owned records and are never
// modified by the engine.
type sdaRequest struct {
	caPKIndex  uint8
	cert       []byte
	remainder  []byte
	exponent   []byte
	signedData []byte
}

// collectRequiredData gathers the five mandatory data elements from the card
// data store. Any absent or undecodable element fails with EmvDataMissingError.
func collectRequiredData(store *ber.Store) (*sdaRequest, error) {
	var req sdaRequest

	idx, err := store.Uint(ber.TagCAPublicKeyIndex)
	if err != nil || idx > 0xff {
		return nil, errors.New(errors.EmvDataMissingError).
			AppendMessage(fmt.Sprintf("Unusable CA public key index %s.", ber.TagCAPublicKeyIndex)).
			SetExtError(err)
	}
	req.caPKIndex = uint8(idx)

	for _, el := range []struct {
		tag  ber.Tag
		dest *[]byte
	}{
		{ber.TagIssuerPKCertificate, &req.cert},
		{ber.TagIssuerPKRemainder, &req.remainder},
		{ber.TagIssuerPKExponent, &req.exponent},
		{ber.TagSignedStaticAppData, &req.signedData},
	} {
		value, err := store.Bytes(el.tag)
		if err != nil {
			return nil, errors.EmvErr(err, errors.EmvDataMissingError)
		}
		*el.dest = value
	}

	return &req, nil
}

// Authenticate performs static data authentication with the card data gathered
// into the context. The returned Result is an immutable value owned by the
// caller; it is also retained on the context for later Result() queries.
//
// Failures are terminal for the attempt and are reported with the error code
// of the first failed stage. A failed attempt leaves a not authenticated
// result on the context.
func (ctx *VerificationContext) Authenticate() (*Result, error) {
	if ctx == nil {
		return nil, errors.New(errors.EmvInvalidArgumentError)
	}

	res, err := ctx.authenticate()
	if err != nil {
		log.Info("Static data authentication failed: ", errors.EmvErr(err).Code())
		ctx.result = &Result{}
		return nil, err
	}
	log.Info("Static data authenticated.")
	ctx.result = res
	return res, nil
}

func (ctx *VerificationContext) authenticate() (*Result, error) {
	// The profile gate runs before any data store access.
	if len(ctx.aip) != 2 {
		return nil, errors.New(errors.EmvInvalidStateError).AppendMessage("AIP has not been set.")
	}
	if ctx.aip[0]&AIPSDASupported == 0 {
		return nil, errors.New(errors.EmvUnsupportedMethodError).
			AppendMessage("Card does not support static data authentication.")
	}

	if ctx.store == nil {
		return nil, errors.New(errors.EmvInvalidStateError).AppendMessage("Data store has not been set.")
	}
	if ctx.resolver == nil {
		return nil, errors.New(errors.EmvInvalidStateError).AppendMessage("CA key resolver has not been set.")
	}

	req, err := collectRequiredData(ctx.store)
	if err != nil {
		return nil, errors.EmvErr(err).AppendMessage("Required data elements not present.")
	}
	log.Debug("SDA request assembled, CA public key index: ", req.caPKIndex)

	caKey, err := ctx.resolver.CAKey(req.caPKIndex)
	if err != nil {
		return nil, errors.EmvErr(err).
			AppendMessage(fmt.Sprintf("Unable to resolve CA key %d.", req.caPKIndex))
	}
	if caKey == nil {
		return nil, errors.New(errors.EmvKeyNotFoundError).
			AppendMessage(fmt.Sprintf("No CA key known for index %d.", req.caPKIndex))
	}

	issuerKey, err := verifyIssuerCertificate(req, caKey)
	if err != nil {
		return nil, errors.EmvErr(err).AppendMessage("Issuer certificate validation failed.")
	}
	log.Debug("Issuer public key recovered, key length: ", issuerKey.KeyLength())

	static, err := verifyStaticData(req, issuerKey, ctx.staticRecords, ctx.aip)
	if err != nil {
		return nil, errors.EmvErr(err).AppendMessage("Signed static data validation failed.")
	}

	return &Result{
		authenticated: true,
		caKey:         caKey,
		issuerKey:     issuerKey,
		dac:           static.dac(),
	}, nil
}

// verifyIssuerCertificate recovers the issuer PK certificate under the CA key,
// validates the recovery and reconstructs the certified issuer public key.
func verifyIssuerCertificate(req *sdaRequest, caKey *KeyMaterial) (*KeyMaterial, error) {
	if len(req.cert) != caKey.KeyLength() {
		return nil, errors.New(errors.EmvLengthMismatchError).
			AppendMessage(fmt.Sprintf("Certificate of %d bytes does not match the %d byte CA key.",
				len(req.cert), caKey.KeyLength()))
	}

	recovered, err := caKey.Recover(req.cert)
	if err != nil {
		return nil, errors.EmvErr(err).AppendMessage("RSA recovery failed on issuer PK certificate.")
	}

	cert, err := parseIssuerCertificate(recovered)
	if err != nil {
		return nil, err
	}

	if err := decodeSignedBlock(cert.algo, cert.message(req.remainder, req.exponent), recovered); err != nil {
		return nil, err
	}

	return cert.issuerKey(req.remainder, req.exponent)
}

// verifyStaticData recovers the signed static application data block under the
// issuer key and validates it against the card records and the AIP.
func verifyStaticData(req *sdaRequest, issuerKey *KeyMaterial, records [][]byte, aip []byte) (*staticData, error) {
	if len(req.signedData) != issuerKey.KeyLength() {
		return nil, errors.New(errors.EmvLengthMismatchError).
			AppendMessage(fmt.Sprintf("Signed static data of %d bytes does not match the %d byte issuer key.",
				len(req.signedData), issuerKey.KeyLength()))
	}

	recovered, err := issuerKey.Recover(req.signedData)
	if err != nil {
		return nil, errors.EmvErr(err).AppendMessage("RSA recovery failed on signed static data.")
	}

	static, err := parseStaticData(recovered)
	if err != nil {
		return nil, err
	}

	if err := decodeSignedBlock(static.algo, static.message(records, aip), recovered); err != nil {
		return nil, err
	}

	return static, nil
}
