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

package card

import (
	"fmt"

	"github.com/guardtime/goemv/errors"
)

// Command is a short form APDU command (ISO/IEC 7816-4).
type Command struct {
	Cla, Ins, P1, P2 byte
	// Command data, at most 255 bytes. Nil for a case 1/2 command.
	Data []byte
	// Expected response byte count, 0..256. A negative value omits the Le field.
	Le int
}

// Bytes encodes the command into its short form wire representation.
func (c Command) Bytes() ([]byte, error) {
	if len(c.Data) > 0xff {
		return nil, errors.New(errors.EmvInvalidArgumentError).
			AppendMessage(fmt.Sprintf("Command data of %d bytes does not fit a short APDU.", len(c.Data)))
	}
	if c.Le > 256 {
		return nil, errors.New(errors.EmvInvalidArgumentError).
			AppendMessage(fmt.Sprintf("Expected length %d does not fit a short APDU.", c.Le))
	}

	apdu := []byte{c.Cla, c.Ins, c.P1, c.P2}
	if len(c.Data) > 0 {
		apdu = append(apdu, byte(len(c.Data)))
		apdu = append(apdu, c.Data...)
	}
	if c.Le >= 0 {
		// Le of 256 is encoded as zero.
		apdu = append(apdu, byte(c.Le))
	}
	return apdu, nil
}

// Response is a split APDU response.
type Response struct {
	// Response payload without the trailing status words.
	Data []byte
	// Status words.
	SW1, SW2 byte
}

// ParseResponse splits a raw card response into payload and status words.
// A response shorter than the two mandatory status bytes fails with
// EmvInvalidFormatError.
func ParseResponse(raw []byte) (*Response, error) {
	if len(raw) < 2 {
		return nil, errors.New(errors.EmvInvalidFormatError).
			AppendMessage(fmt.Sprintf("Card response of %d bytes can not hold the status words.", len(raw)))
	}
	return &Response{
		Data: raw[:len(raw)-2],
		SW1:  raw[len(raw)-2],
		SW2:  raw[len(raw)-1],
	}, nil
}

// SW returns the combined status word.
func (r *Response) SW() uint16 {
	if r == nil {
		return 0
	}
	return uint16(r.SW1)<<8 | uint16(r.SW2)
}

// Ok reports whether the card returned the normal completion status 9000.
func (r *Response) Ok() bool {
	return r.SW() == 0x9000
}
