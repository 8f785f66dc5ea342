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

// Package card implements the PC/SC chip card transport the authentication
// data is gathered over.
//
// The package carries no EMV flow logic: it enumerates readers, waits for a
// card, powers it on and exchanges raw APDUs. Higher layers parse the returned
// records with the ber package and feed them into the sda engine.
package card

import (
	"fmt"
	"time"

	"github.com/ebfe/scard"

	"github.com/guardtime/goemv/errors"
	"github.com/guardtime/goemv/log"
)

// SlotStatus is the chip card slot state.
type SlotStatus int

const (
	// SlotEmpty means no card is present in the reader.
	SlotEmpty SlotStatus = iota
	// SlotPresent means a card is present but not powered on.
	SlotPresent
	// SlotConnected means a card is present and a connection is established.
	SlotConnected
)

// String implements fmt.Stringer interface.
func (s SlotStatus) String() string {
	switch s {
	case SlotEmpty:
		return "empty"
	case SlotPresent:
		return "present"
	case SlotConnected:
		return "connected"
	default:
		return fmt.Sprintf("unknown slot status '%d'", int(s))
	}
}

// Readers enumerates the PC/SC readers attached to the system.
func Readers() ([]string, error) {
	ctx, err := scard.EstablishContext()
	if err != nil {
		return nil, errors.New(errors.EmvIoError).SetExtError(err).
			AppendMessage("Unable to establish PC/SC context.")
	}
	defer func() { _ = ctx.Release() }()

	readers, err := ctx.ListReaders()
	if err != nil {
		return nil, errors.New(errors.EmvIoError).SetExtError(err).
			AppendMessage("Unable to enumerate readers.")
	}
	return readers, nil
}

// Reader is a single PC/SC reader slot. Not safe for concurrent use.
type Reader struct {
	ctx  *scard.Context
	name string
	card *scard.Card
}

// Open attaches to the named reader. An empty name selects the first reader
// found on the system.
func Open(name string) (*Reader, error) {
	ctx, err := scard.EstablishContext()
	if err != nil {
		return nil, errors.New(errors.EmvIoError).SetExtError(err).
			AppendMessage("Unable to establish PC/SC context.")
	}

	if name == "" {
		readers, err := ctx.ListReaders()
		if err != nil || len(readers) == 0 {
			_ = ctx.Release()
			return nil, errors.New(errors.EmvIoError).SetExtError(err).
				AppendMessage("No PC/SC readers found.")
		}
		name = readers[0]
	}
	log.Debug("Attached to reader: ", name)

	return &Reader{ctx: ctx, name: name}, nil
}

// Name returns the PC/SC reader name.
func (r *Reader) Name() string {
	if r == nil {
		return ""
	}
	return r.name
}

// Status reports the reader slot state.
func (r *Reader) Status() (SlotStatus, error) {
	if r == nil || r.ctx == nil {
		return SlotEmpty, errors.New(errors.EmvInvalidArgumentError)
	}
	if r.card != nil {
		return SlotConnected, nil
	}

	states := []scard.ReaderState{{
		Reader:       r.name,
		CurrentState: scard.StateUnaware,
	}}
	if err := r.ctx.GetStatusChange(states, 0); err != nil {
		return SlotEmpty, errors.New(errors.EmvIoError).SetExtError(err).
			AppendMessage("Unable to query reader status.")
	}
	if states[0].EventState&scard.StatePresent != 0 {
		return SlotPresent, nil
	}
	return SlotEmpty, nil
}

// WaitForCard blocks until a card is presented to the reader or the timeout
// expires. A negative timeout waits indefinitely.
func (r *Reader) WaitForCard(timeout time.Duration) error {
	if r == nil || r.ctx == nil {
		return errors.New(errors.EmvInvalidArgumentError)
	}

	states := []scard.ReaderState{{
		Reader:       r.name,
		CurrentState: scard.StateUnaware,
	}}
	for {
		if err := r.ctx.GetStatusChange(states, timeout); err != nil {
			return errors.New(errors.EmvIoError).SetExtError(err).
				AppendMessage("Wait for card failed.")
		}
		if states[0].EventState&scard.StatePresent != 0 {
			log.Debug("Card presented to reader: ", r.name)
			return nil
		}
		states[0].CurrentState = states[0].EventState
	}
}

// Connect powers the card on and returns its Answer To Reset.
func (r *Reader) Connect() ([]byte, error) {
	if r == nil || r.ctx == nil {
		return nil, errors.New(errors.EmvInvalidArgumentError)
	}
	if r.card != nil {
		return nil, errors.New(errors.EmvInvalidStateError).AppendMessage("Card is already connected.")
	}

	card, err := r.ctx.Connect(r.name, scard.ShareShared, scard.ProtocolAny)
	if err != nil {
		return nil, errors.New(errors.EmvIoError).SetExtError(err).
			AppendMessage("Unable to connect to card.")
	}

	status, err := card.Status()
	if err != nil {
		_ = card.Disconnect(scard.LeaveCard)
		return nil, errors.New(errors.EmvIoError).SetExtError(err).
			AppendMessage("Unable to read card status.")
	}

	r.card = card
	log.Info(fmt.Sprintf("Card connected, ATR: %x.", status.Atr))
	return status.Atr, nil
}

// Transact sends a raw APDU to the card and splits the response into payload
// and status words.
func (r *Reader) Transact(apdu []byte) (*Response, error) {
	if r == nil {
		return nil, errors.New(errors.EmvInvalidArgumentError)
	}
	if r.card == nil {
		return nil, errors.New(errors.EmvInvalidStateError).AppendMessage("Card is not connected.")
	}

	raw, err := r.card.Transmit(apdu)
	if err != nil {
		return nil, errors.New(errors.EmvIoError).SetExtError(err).
			AppendMessage("APDU transmission failed.")
	}
	return ParseResponse(raw)
}

// Disconnect powers the card off, leaving the reader attached.
func (r *Reader) Disconnect() error {
	if r == nil {
		return errors.New(errors.EmvInvalidArgumentError)
	}
	if r.card == nil {
		return nil
	}

	err := r.card.Disconnect(scard.UnpowerCard)
	r.card = nil
	if err != nil {
		return errors.New(errors.EmvIoError).SetExtError(err).
			AppendMessage("Unable to disconnect card.")
	}
	return nil
}

// Close disconnects any connected card and releases the PC/SC context.
func (r *Reader) Close() error {
	if r == nil {
		return errors.New(errors.EmvInvalidArgumentError)
	}
	if err := r.Disconnect(); err != nil {
		log.Warning("Card disconnect on close failed: ", err)
	}
	if r.ctx == nil {
		return nil
	}

	err := r.ctx.Release()
	r.ctx = nil
	if err != nil {
		return errors.New(errors.EmvIoError).SetExtError(err).
			AppendMessage("Unable to release PC/SC context.")
	}
	return nil
}
