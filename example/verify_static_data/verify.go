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

package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/guardtime/goemv/ber"
	"github.com/guardtime/goemv/cakeys"
	"github.com/guardtime/goemv/errors"
	"github.com/guardtime/goemv/log"
	"github.com/guardtime/goemv/sda"
)

type argVal int

const (
	argProgName argVal = iota
	argKeyFile
	argAipHex
	argFirstRecord
	minArgs
)

func main() {

	// Handle exit code.
	exit := 0xff
	defer func() { os.Exit(exit) }()

	/* Handle command line parameters. */
	if len(os.Args) < int(minArgs) {
		fmt.Printf("Usage:\n")
		fmt.Printf("  %s <cakeys-yaml> <aip-hex> <record-file>...\n", os.Args[argProgName])
		fmt.Printf("\n")
		fmt.Printf("Each record file holds one raw BER-TLV record read from the card,\n")
		fmt.Printf("in the order the card returned them.\n")
		exit = 1
		return
	}

	// Create log file.
	logFile, err := os.Create(strings.Join([]string{filepath.Base(os.Args[argProgName]), "log"}, "."))
	if err != nil {
		fmt.Println("Failed to create log file: ", err)
		exit = 1
		return
	}
	defer logFile.Close()
	// Initialize logger.
	logger, err := log.New(log.DEBUG, logFile)
	if err != nil {
		fmt.Println("Failed to initialize logger: ", err)
		exit = 1
		return
	}
	// Apply logger.
	log.SetLogger(logger)

	aip, err := hex.DecodeString(os.Args[argAipHex])
	if err != nil {
		fmt.Println("Failed to decode AIP: ", err)
		exit = 1
		return
	}

	caStore, err := cakeys.NewStore(
		cakeys.StoreFromFile(os.Args[argKeyFile]),
	)
	if err != nil {
		fmt.Println("Failed to load CA key file: ", err)
		exit = int(errors.EmvErr(err).Code())
		return
	}

	// Parse every record into the data element store. The raw record bytes
	// double as the static data covered by the issuer signature.
	var (
		store   = ber.NewStore()
		records [][]byte
	)
	for _, fname := range os.Args[argFirstRecord:] {
		record, err := os.ReadFile(fname)
		if err != nil {
			fmt.Println("Failed to read record file: ", err)
			exit = 1
			return
		}
		if err := ber.ParseInto(store, record); err != nil {
			fmt.Println("Failed to parse record file: ", err)
			exit = int(errors.EmvErr(err).Code())
			return
		}
		records = append(records, record)
	}

	verCtx, err := sda.NewVerificationContext(
		sda.VerCtxOptDataStore(store),
		sda.VerCtxOptAIP(aip),
		sda.VerCtxOptStaticRecords(records),
		sda.VerCtxOptCAKeyResolver(caStore),
	)
	if err != nil {
		fmt.Println("Failed to initialize verification context: ", err)
		exit = int(errors.EmvErr(err).Code())
		return
	}

	res, err := verCtx.Authenticate()
	if err != nil {
		emvErr := errors.EmvErr(err)
		fmt.Println("Static data authentication failed.")
		fmt.Println("Error code: ", emvErr.Code())
		fmt.Println(emvErr)
		exit = int(emvErr.Code())
		return
	}

	fmt.Println("Static data authenticated.")
	fmt.Printf("Data authentication code: %x\n", res.DataAuthenticationCode())
	fmt.Printf("Issuer key length:        %d bytes\n", res.IssuerKey().KeyLength())
	exit = 0
}
