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
	"crypto/x509"
	"fmt"
	"os"

	"github.com/fullsailor/pkcs7"

	"github.com/guardtime/goemv/errors"
)

// trustStore holds the PKI trust anchors key file signatures are verified
// against.
type trustStore struct {
	certificates *x509.CertPool
}

// StoreUseSystemCertStore initializes the trust anchors with a copy of the
// system cert pool.
func StoreUseSystemCertStore() StoreSetting {
	return func(s *store) error {
		if s == nil {
			return errors.New(errors.EmvInvalidArgumentError).AppendMessage("Missing store base object.")
		}

		pool, err := x509.SystemCertPool()
		if err != nil {
			return errors.New(errors.EmvCryptoFailure).SetExtError(err).
				AppendMessage("Unable to set system cert pool.")
		}
		s.obj.trust.certificates = pool
		return nil
	}
}

// StoreSetTrustedCertificate is configuration method that appends a
// certificate to the trust anchors.
func StoreSetTrustedCertificate(certificate *x509.Certificate) StoreSetting {
	return func(s *store) error {
		if s == nil {
			return errors.New(errors.EmvInvalidArgumentError).AppendMessage("Missing store base object.")
		}
		if certificate == nil {
			return errors.New(errors.EmvInvalidArgumentError)
		}

		if s.obj.trust.certificates == nil {
			s.obj.trust.certificates = x509.NewCertPool()
		}
		s.obj.trust.certificates.AddCert(certificate)
		return nil
	}
}

// StoreSetTrustedCertificateFromFilePem is configuration method that appends
// certificate(s) from a PEM encoded file to the trust anchors.
func StoreSetTrustedCertificateFromFilePem(fname string) StoreSetting {
	return func(s *store) error {
		if s == nil {
			return errors.New(errors.EmvInvalidArgumentError).AppendMessage("Missing store base object.")
		}

		dat, err := os.ReadFile(fname)
		if err != nil {
			return errors.New(errors.EmvIoError).SetExtError(err).
				AppendMessage(fmt.Sprintf("Unable to open file '%s'!", fname))
		}

		if s.obj.trust.certificates == nil {
			s.obj.trust.certificates = x509.NewCertPool()
		}
		if !s.obj.trust.certificates.AppendCertsFromPEM(dat) {
			return errors.New(errors.EmvInvalidFormatError).
				AppendMessage(fmt.Sprintf("Unable to append certificates from file '%s'!", fname))
		}
		return nil
	}
}

// verify checks the detached PKCS#7 signature over the raw key file content
// and validates the signing certificate against the trust anchors.
func (t *trustStore) verify(content, signature []byte) error {
	pkcs7Sig, err := pkcs7.Parse(signature)
	if err != nil {
		return errors.New(errors.EmvInvalidPkiSignature).SetExtError(err).
			AppendMessage("Unable to parse key file PKCS7 signature.")
	}

	// The signature is detached, attach the signed content for verification.
	pkcs7Sig.Content = content

	if err = pkcs7Sig.Verify(); err != nil {
		return errors.New(errors.EmvInvalidPkiSignature).SetExtError(err).
			AppendMessage("Unable to verify key file signature.")
	}

	if len(pkcs7Sig.Signers) == 0 {
		return errors.New(errors.EmvInvalidPkiSignature).
			AppendMessage("There is no signer info embedded into PKCS7 signature.")
	}
	// Nil is returned in case there is more than one signer.
	signerCertificate := pkcs7Sig.GetOnlySigner()
	if signerCertificate == nil {
		return errors.New(errors.EmvInvalidPkiSignature).
			AppendMessage(fmt.Sprintf("There are %v signer certificates for PKCS7 signature but only 1 is expected.", len(pkcs7Sig.Signers)))
	}

	if t.certificates == nil {
		return errors.New(errors.EmvPkiCertificateNotTrusted).
			AppendMessage("No trust anchors have been configured.")
	}

	verifyOp := x509.VerifyOptions{
		Intermediates: x509.NewCertPool(),
		Roots:         t.certificates,
		KeyUsages: []x509.ExtKeyUsage{
			x509.ExtKeyUsageAny,
		},
	}
	// Certificates embedded into the signature may link the signer to an anchor.
	for _, interCert := range pkcs7Sig.Certificates {
		verifyOp.Intermediates.AddCert(interCert)
	}

	if _, err := signerCertificate.Verify(verifyOp); err != nil {
		return errors.New(errors.EmvPkiCertificateNotTrusted).SetExtError(err).
			AppendMessage("Unable to verify PKCS7 signatures signing certificate.")
	}
	return nil
}
