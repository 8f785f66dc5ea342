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

// Package ber implements the BER-TLV encoding rules EMV cards use to return
// application data (EMV Book 3, Annex B), and a keyed store for the decoded
// data elements.
//
// Parse flattens the TLV structure: constructed data objects are descended
// into and only primitive data elements are recorded, in the exact order they
// are encountered. That order is significant, as the Static Data Authentication
// digest covers the card records in original parse order.
package ber

import (
	"fmt"

	"github.com/guardtime/goemv/errors"
)

const (
	// tagConstructed is the constructed encoding flag of the leading tag byte.
	tagConstructed = byte(0x20)
	// tagMultiByte marks that the tag number continues in subsequent bytes.
	tagMultiByte = byte(0x1f)
	// tagMoreBytes is set in a subsequent tag byte when more bytes follow.
	tagMoreBytes = byte(0x80)

	// maxTagLen limits a packed tag to the three bytes EMV defines.
	maxTagLen = 3
)

// Parse decodes the given BER-TLV encoded buffer into a new Store.
// Interleaving '00' and 'ff' padding bytes are ignored.
func Parse(data []byte) (*Store, error) {
	store := NewStore()
	if err := ParseInto(store, data); err != nil {
		return nil, err
	}
	return store, nil
}

// ParseInto decodes the given BER-TLV encoded buffer appending the primitive
// data elements to an existing store. Malformed input fails with
// EmvInvalidFormatError and may leave elements decoded so far in the store.
func ParseInto(store *Store, data []byte) error {
	if store == nil || data == nil {
		return errors.New(errors.EmvInvalidArgumentError)
	}

	pos := 0
	for pos < len(data) {
		// Skip inter-object padding.
		if data[pos] == 0x00 || data[pos] == 0xff {
			pos++
			continue
		}

		tag, constructed, n, err := decodeTag(data[pos:])
		if err != nil {
			return err
		}
		pos += n

		length, n, err := decodeLength(data[pos:])
		if err != nil {
			return errors.EmvErr(err).AppendMessage(fmt.Sprintf("Broken length of tag %s.", tag))
		}
		pos += n

		if length > len(data)-pos {
			return errors.New(errors.EmvInvalidFormatError).
				AppendMessage(fmt.Sprintf("Value of tag %s overruns the buffer.", tag))
		}
		value := data[pos : pos+length]
		pos += length

		if constructed {
			if err := ParseInto(store, value); err != nil {
				return err
			}
			continue
		}
		store.Add(tag, value)
	}
	return nil
}

// decodeTag reads a packed tag from the buffer head. Reports the tag, its
// constructed flag and the consumed byte count.
func decodeTag(data []byte) (Tag, bool, int, error) {
	if len(data) == 0 {
		return 0, false, 0, errors.New(errors.EmvInvalidFormatError).AppendMessage("Missing tag byte.")
	}

	var (
		constructed = data[0]&tagConstructed != 0
		tag         = Tag(data[0])
		n           = 1
	)
	if data[0]&tagMultiByte == tagMultiByte {
		for {
			if n >= len(data) {
				return 0, false, 0, errors.New(errors.EmvInvalidFormatError).AppendMessage("Truncated multi-byte tag.")
			}
			if n >= maxTagLen {
				return 0, false, 0, errors.New(errors.EmvInvalidFormatError).
					AppendMessage(fmt.Sprintf("Tag is longer than %d bytes.", maxTagLen))
			}
			tag = tag<<8 | Tag(data[n])
			more := data[n]&tagMoreBytes != 0
			n++
			if !more {
				break
			}
		}
	}
	return tag, constructed, n, nil
}

// decodeLength reads a short or long form length from the buffer head.
// EMV restricts the long form to at most two length bytes.
func decodeLength(data []byte) (int, int, error) {
	if len(data) == 0 {
		return 0, 0, errors.New(errors.EmvInvalidFormatError).AppendMessage("Missing length byte.")
	}

	b := data[0]
	switch {
	case b < 0x80:
		return int(b), 1, nil
	case b == 0x81:
		if len(data) < 2 {
			return 0, 0, errors.New(errors.EmvInvalidFormatError).AppendMessage("Truncated long form length.")
		}
		return int(data[1]), 2, nil
	case b == 0x82:
		if len(data) < 3 {
			return 0, 0, errors.New(errors.EmvInvalidFormatError).AppendMessage("Truncated long form length.")
		}
		return int(data[1])<<8 | int(data[2]), 3, nil
	default:
		return 0, 0, errors.New(errors.EmvInvalidFormatError).
			AppendMessage(fmt.Sprintf("Unsupported length form %x.", b))
	}
}
