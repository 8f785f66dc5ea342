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

package ber

import "fmt"

// Tag is an EMV data element tag in its packed byte form, e.g. the two-byte
// tag '9F32' is Tag(0x9f32).
type Tag uint32

// EMV data element tags consumed or produced by the offline authentication flow
// (EMV Book 3, Annex A).
const (
	// TagApplicationLabel is the mnemonic associated with the AID.
	TagApplicationLabel Tag = 0x50
	// TagPAN is the primary account number.
	TagPAN Tag = 0x5a
	// TagExpirationDate is the application expiration date.
	TagExpirationDate Tag = 0x5f24
	// TagAIP is the Application Interchange Profile.
	TagAIP Tag = 0x82
	// TagDFName is the dedicated file name of the selected application.
	TagDFName Tag = 0x84
	// TagCDOL1 is the first Card Risk Management Data Object List.
	TagCDOL1 Tag = 0x8c
	// TagCDOL2 is the second Card Risk Management Data Object List.
	TagCDOL2 Tag = 0x8d
	// TagCVMList is the Cardholder Verification Method list.
	TagCVMList Tag = 0x8e
	// TagCAPublicKeyIndex identifies the Certification Authority public key to
	// be used for offline authentication.
	TagCAPublicKeyIndex Tag = 0x8f
	// TagIssuerPKCertificate is the issuer public key certified by the
	// Certification Authority.
	TagIssuerPKCertificate Tag = 0x90
	// TagIssuerPKRemainder holds the issuer public key modulus bytes that did
	// not fit into the certificate. May be absent.
	TagIssuerPKRemainder Tag = 0x92
	// TagSignedStaticAppData is the Signed Static Application Data block.
	TagSignedStaticAppData Tag = 0x93
	// TagAFL is the Application File Locator.
	TagAFL Tag = 0x94
	// TagIssuerPKExponent is the issuer public key exponent.
	TagIssuerPKExponent Tag = 0x9f32
	// TagIssuerAppData is the Issuer Application Data.
	TagIssuerAppData Tag = 0x9f10
	// TagRecordTemplate wraps the data elements of an application record.
	TagRecordTemplate Tag = 0x70
	// TagFCITemplate is the File Control Information template returned by SELECT.
	TagFCITemplate Tag = 0x6f
	// TagResponseTemplate wraps GET PROCESSING OPTIONS format 2 responses.
	TagResponseTemplate Tag = 0x77
)

var tagNames = map[Tag]string{
	TagApplicationLabel:    "Application Label",
	TagPAN:                 "Application PAN",
	TagExpirationDate:      "Application Expiration Date",
	TagAIP:                 "Application Interchange Profile",
	TagDFName:              "DF Name",
	TagCDOL1:               "CDOL1",
	TagCDOL2:               "CDOL2",
	TagCVMList:             "CVM List",
	TagCAPublicKeyIndex:    "CA Public Key Index",
	TagIssuerPKCertificate: "Issuer PK Certificate",
	TagIssuerPKRemainder:   "Issuer PK Remainder",
	TagSignedStaticAppData: "Signed Static Application Data",
	TagAFL:                 "Application File Locator",
	TagIssuerPKExponent:    "Issuer PK Exponent",
	TagIssuerAppData:       "Issuer Application Data",
	TagRecordTemplate:      "Record Template",
	TagFCITemplate:         "FCI Template",
	TagResponseTemplate:    "Response Template",
}

// String implements fmt.Stringer interface.
func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return fmt.Sprintf("'%x' (%s)", uint32(t), name)
	}
	return fmt.Sprintf("'%x'", uint32(t))
}
