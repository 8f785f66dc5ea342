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
	"crypto/rand"
	"crypto/sha1"
	"math/big"
	"testing"

	"github.com/guardtime/goemv/ber"
)

// fixtureKey is an RSA key pair the reference signer uses to issue test
// certificates and static data blocks, inverse to the verification engine.
type fixtureKey struct {
	n *big.Int
	e *big.Int
	d *big.Int

	byteLen int
}

// generateFixtureKey produces an RSA key pair of exactly the given modulus bit
// count with the requested public exponent.
func generateFixtureKey(t *testing.T, bits int, exponent int64) *fixtureKey {
	t.Helper()

	var (
		one = big.NewInt(1)
		e   = big.NewInt(exponent)
	)
	for {
		p, err := rand.Prime(rand.Reader, bits/2)
		if err != nil {
			t.Fatal("Failed to generate prime: ", err)
		}
		q, err := rand.Prime(rand.Reader, bits/2)
		if err != nil {
			t.Fatal("Failed to generate prime: ", err)
		}
		if p.Cmp(q) == 0 {
			continue
		}

		n := new(big.Int).Mul(p, q)
		// A full length modulus guarantees that any block with the 0x6a header
		// byte is reducible.
		if n.BitLen() != bits {
			continue
		}

		phi := new(big.Int).Mul(new(big.Int).Sub(p, one), new(big.Int).Sub(q, one))
		if new(big.Int).GCD(nil, nil, e, phi).Cmp(one) != 0 {
			continue
		}

		return &fixtureKey{
			n:       n,
			e:       e,
			d:       new(big.Int).ModInverse(e, phi),
			byteLen: bits / 8,
		}
	}
}

// modulus returns the fixed width big endian modulus bytes.
func (k *fixtureKey) modulus() []byte {
	return k.n.FillBytes(make([]byte, k.byteLen))
}

// exponentBytes returns the minimal big endian exponent encoding.
func (k *fixtureKey) exponentBytes() []byte {
	return k.e.Bytes()
}

// sign applies the raw RSA private transform to the plaintext block.
func (k *fixtureKey) sign(t *testing.T, plain []byte) []byte {
	t.Helper()

	m := new(big.Int).SetBytes(plain)
	if m.Cmp(k.n) >= 0 {
		t.Fatal("Fixture plaintext is not reducible modulo the signing key.")
	}
	return new(big.Int).Exp(m, k.d, k.n).FillBytes(make([]byte, len(plain)))
}

// buildIssuerCert issues an issuer PK certificate under the CA key, embedding
// as much of the issuer modulus as the certificate holds. Returns the
// certificate and the modulus remainder that did not fit.
func buildIssuerCert(t *testing.T, ca, issuer *fixtureKey) (cert, remainder []byte) {
	t.Helper()

	var (
		certLen     = ca.byteLen
		keyFieldLen = certLen - (certKeyOffset + certTrailerLen)
		issuerMod   = issuer.modulus()
		exponent    = issuer.exponentBytes()
	)
	if len(issuerMod) < keyFieldLen {
		t.Fatal("Issuer modulus does not fill the certificate key field.")
	}
	remainder = issuerMod[keyFieldLen:]

	plain := make([]byte, certLen)
	plain[0] = recoveredDataHeader
	plain[certFormatOffset] = certFormatIssuer
	copy(plain[certIssuerIDOffset:], []byte{0x42, 0x01, 0x23, 0xff})
	copy(plain[certExpiryOffset:], []byte{0x12, 0x49})
	copy(plain[certSerialOffset:], []byte{0x00, 0x00, 0x07})
	plain[certHashAlgOffset] = 0x01
	plain[certPKAlgOffset] = 0x01
	plain[certPKLenOffset] = byte(len(issuerMod))
	plain[certExpLenOffset] = byte(len(exponent))
	copy(plain[certKeyOffset:], issuerMod[:keyFieldLen])

	msg := append([]byte{}, plain[certFormatOffset:certLen-certTrailerLen]...)
	msg = append(msg, remainder...)
	msg = append(msg, exponent...)
	digest := sha1.Sum(msg)

	copy(plain[certLen-certTrailerLen:], digest[:])
	plain[certLen-1] = trailerByte

	return ca.sign(t, plain), remainder
}

// buildSignedStaticData issues a signed static application data block under
// the issuer key, covering the given records and AIP.
func buildSignedStaticData(t *testing.T, issuer *fixtureKey, records [][]byte, aip []byte) []byte {
	t.Helper()

	blockLen := issuer.byteLen
	plain := make([]byte, blockLen)
	plain[0] = recoveredDataHeader
	plain[ssaFormatOffset] = ssaFormat
	plain[ssaHashAlgOffset] = 0x01
	copy(plain[ssaDACOffset:], []byte{0xde, 0xad})
	for i := ssaDACOffset + ssaDACLen; i < blockLen-ssaTrailerLen; i++ {
		plain[i] = 0xbb
	}

	msg := append([]byte{}, plain[ssaFormatOffset:blockLen-ssaTrailerLen]...)
	for _, rec := range records {
		msg = append(msg, rec...)
	}
	msg = append(msg, aip...)
	digest := sha1.Sum(msg)

	copy(plain[blockLen-ssaTrailerLen:], digest[:])
	plain[blockLen-1] = trailerByte

	return issuer.sign(t, plain)
}

// mapResolver is a CAKeyResolver test double.
type mapResolver map[uint8]*KeyMaterial

func (m mapResolver) CAKey(index uint8) (*KeyMaterial, error) {
	return m[index], nil
}

// fixture bundles a complete well-formed three-tier authentication setup.
type fixture struct {
	ca     *fixtureKey
	issuer *fixtureKey

	caIndex   uint8
	cert      []byte
	remainder []byte
	exponent  []byte
	signed    []byte

	records [][]byte
	aip     []byte
}

// newFixture builds a three-tier fixture with the given key size and CA public
// exponent. The issuer key matches the CA key size, as the certificate key
// field plus remainder must fill the certificate exactly.
func newFixture(t *testing.T, bits int, caExponent int64) *fixture {
	t.Helper()

	f := &fixture{
		ca:      generateFixtureKey(t, bits, caExponent),
		issuer:  generateFixtureKey(t, bits, 65537),
		caIndex: 0x05,
		records: [][]byte{
			{0x9f, 0x10, 0x07, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07},
			{0x5a, 0x04, 0x12, 0x34, 0x56, 0x78},
		},
		aip: []byte{AIPSDASupported | 0x18, 0x00},
	}
	f.exponent = f.issuer.exponentBytes()
	f.cert, f.remainder = buildIssuerCert(t, f.ca, f.issuer)
	f.signed = buildSignedStaticData(t, f.issuer, f.records, f.aip)
	return f
}

// store assembles the card data element store of the fixture.
func (f *fixture) store() *ber.Store {
	store := ber.NewStore()
	store.Add(ber.TagCAPublicKeyIndex, []byte{f.caIndex})
	store.Add(ber.TagIssuerPKCertificate, f.cert)
	store.Add(ber.TagIssuerPKRemainder, f.remainder)
	store.Add(ber.TagIssuerPKExponent, f.exponent)
	store.Add(ber.TagSignedStaticAppData, f.signed)
	return store
}

// resolver returns a CA key resolver knowing the fixture CA key.
func (f *fixture) resolver(t *testing.T) mapResolver {
	t.Helper()

	caKey, err := NewKeyMaterial(f.ca.modulus(), f.ca.exponentBytes())
	if err != nil {
		t.Fatal("Failed to construct CA key material: ", err)
	}
	return mapResolver{f.caIndex: caKey}
}

// context assembles a ready to use verification context for the fixture.
func (f *fixture) context(t *testing.T) *VerificationContext {
	t.Helper()

	ctx, err := NewVerificationContext(
		VerCtxOptDataStore(f.store()),
		VerCtxOptAIP(f.aip),
		VerCtxOptStaticRecords(f.records),
		VerCtxOptCAKeyResolver(f.resolver(t)),
	)
	if err != nil {
		t.Fatal("Failed to create verification context: ", err)
	}
	return ctx
}
