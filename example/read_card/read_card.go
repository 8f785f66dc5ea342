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
	"fmt"
	"os"

	"github.com/guardtime/goemv/card"
	"github.com/guardtime/goemv/errors"
	"github.com/guardtime/goemv/log"
)

func main() {

	// Handle exit code.
	exit := 0xff
	defer func() { os.Exit(exit) }()

	/* Handle command line parameters. */
	if len(os.Args) > 2 {
		fmt.Printf("Usage:\n")
		fmt.Printf("  %s [reader-name]\n", os.Args[0])
		exit = 1
		return
	}
	readerName := ""
	if len(os.Args) == 2 {
		readerName = os.Args[1]
	}

	// Initialize logger.
	logger, err := log.New(log.INFO, nil)
	if err != nil {
		fmt.Println("Failed to initialize logger: ", err)
		exit = 1
		return
	}
	// Apply logger.
	log.SetLogger(logger)

	readers, err := card.Readers()
	if err != nil {
		fmt.Println("Failed to enumerate readers: ", err)
		exit = int(errors.EmvErr(err).Code())
		return
	}
	fmt.Println("Attached readers:")
	for _, r := range readers {
		fmt.Println("  ", r)
	}

	reader, err := card.Open(readerName)
	if err != nil {
		fmt.Println("Failed to open reader: ", err)
		exit = int(errors.EmvErr(err).Code())
		return
	}
	defer func() { _ = reader.Close() }()

	status, err := reader.Status()
	if err != nil {
		fmt.Println("Failed to query slot status: ", err)
		exit = int(errors.EmvErr(err).Code())
		return
	}
	fmt.Printf("Slot status of '%s': %s\n", reader.Name(), status)

	if status == card.SlotEmpty {
		fmt.Println("Waiting for card...")
		if err := reader.WaitForCard(-1); err != nil {
			fmt.Println("Failed to wait for card: ", err)
			exit = int(errors.EmvErr(err).Code())
			return
		}
	}

	atr, err := reader.Connect()
	if err != nil {
		fmt.Println("Failed to connect to card: ", err)
		exit = int(errors.EmvErr(err).Code())
		return
	}
	fmt.Printf("Card ATR: %x\n", atr)

	if err := reader.Disconnect(); err != nil {
		fmt.Println("Failed to disconnect card: ", err)
		exit = int(errors.EmvErr(err).Code())
		return
	}
	exit = 0
}
