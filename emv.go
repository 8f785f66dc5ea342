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

/*

Package emv implements offline Static Data Authentication (SDA) of EMV payment
cards: recovery of the issuer public key from a scheme certificate and
validation of the card's signed static application data.

Note that the following tutorial is incremental, meaning the parameter names used in example code blocks are defined
in previous example blocks.


Logging

The subpackage log defines logging interface type log.Logger and a basic logger implementation for writing lines
to file.

By default logging is disabled. In order to enable logging of the API internals, an implementation to a logger has
to be registered in the log package, e.g. setting default logger:

	// Create an instance of default logger. Write log output to stdout.
	logger, err = log.New(level, nil)
	if err != nil {
		return
	}
	// Register the logger
	log.SetLogger(logger)

In order to disable logging, set logger to nil.



Errors

Almost every method of the API returns an error parameter alongside with a value (if applicable). All returned errors
are of type errors.EmvError. For troubleshooting, the EmvError provides following information:
	error code     - for error verification and recovery logic;
	error message  - a stack of human readable descriptive messages;
	stack trace    - the stack trace of the error registration;
	extended error - an error code, or error from e.g. std library.

Example usage of the EmvError:
	func func1() (byte, error) {
		return 0, errors.New(errors.EmvNotImplemented).AppendMessage("Missing implementation.")
	}

	func main() {
		...

		if _, err := func1(); err != nil {
			err := errors.EmvErr(err)

			// Add additional message to the error.
			err.AppendMessage("Fatal error in main.")

			// Push the received error into the log.
			log.Error(err)

			// Exit with the error code set in the EmvError.
			os.Exit(int(err.Code()))
		}
		os.Exit(0)
	}

It is strongly advised to verify the returned error. In case it is not nil, most probably, it is indicating
fatal state and requires some sort of recovery logic.



Card data elements

The card returns its data elements BER-TLV encoded. The subpackage ber decodes the records read from the card and
flattens the primitive elements into a ber.Store, preserving the original encounter order:
	store := ber.NewStore()
	for _, record := range records {
		if err := ber.ParseInto(store, record); err != nil {
			return err
		}
	}
Individual elements are addressed by their EMV tag:
	cert, err := store.Bytes(ber.TagIssuerPKCertificate)



Certification Authority keys

The scheme CA public keys are distributed out of band and selected by the one byte index the card presents
(ber.TagCAPublicKeyIndex). The subpackage cakeys implements a key store loaded with setting functions:
	caStore, err := cakeys.NewStore(
		cakeys.StoreFromFile("cakeys.yaml"),
	)
A key file accompanied by a detached PKCS#7 signature can be validated against a set of PKI trust anchors before
any key in it is trusted:
	caStore, err := cakeys.NewStore(
		cakeys.StoreSetTrustedCertificateFromFilePem("scheme.pem"),
		cakeys.StoreVerifiedFile("cakeys.yaml", "cakeys.yaml.p7s"),
	)
Any implementation of sda.CAKeyResolver can be used in place of the provided store.



Authenticating static data

Authentication parameters are gathered into a verification context. The static records are the raw record bodies
covered by the issuer signature, in the order they were read from the card:
	verCtx, err := sda.NewVerificationContext(
		sda.VerCtxOptDataStore(store),
		sda.VerCtxOptAIP(aip),
		sda.VerCtxOptStaticRecords(staticRecords),
		sda.VerCtxOptCAKeyResolver(caStore),
	)
	res, err := verCtx.Authenticate()
The returned sda.Result reports the outcome and retains the validated trust chain:
	if res.Authenticated() {
		fmt.Printf("DAC: %x\n", res.DataAuthenticationCode())
		fmt.Printf("Issuer key: %x\n", res.IssuerKey().Modulus())
	}
Authentication is fail-fast: the first failing check aborts the attempt with a typed error and the card remains
not authenticated. The outcome of the last completed attempt can later be read back without recomputation:
	res = verCtx.Result()



Chip card transport

The subpackage card implements the PC/SC transport the card data is read over. It carries no EMV flow logic;
application selection and record reading are driven by the caller:
	reader, err := card.Open("")
	defer reader.Close()

	err = reader.WaitForCard(-1)
	atr, err := reader.Connect()

	resp, err := reader.Transact(apdu)
	if !resp.Ok() {
		return fmt.Errorf("card error %04x", resp.SW())
	}



Acknowledgments

This product includes package github.com/fullsailor/pkcs7.

*/
package emv

import (
	_ "github.com/guardtime/goemv/ber"
	_ "github.com/guardtime/goemv/cakeys"
	_ "github.com/guardtime/goemv/card"
	_ "github.com/guardtime/goemv/errors"
	_ "github.com/guardtime/goemv/hash"
	_ "github.com/guardtime/goemv/log"
	_ "github.com/guardtime/goemv/sda"
)
