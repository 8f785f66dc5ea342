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
	"fmt"

	"github.com/guardtime/goemv/ber"
	"github.com/guardtime/goemv/errors"
)

// VerificationContext is a set of static data authentication parameters
// gathered from one card session. The context is not safe for concurrent use;
// authentication attempts on the same context must be serialized by the caller.
type VerificationContext struct {
	/*
	   User input.
	*/
	// Parsed card data elements.
	store *ber.Store
	// Application Interchange Profile, 2 bytes.
	aip []byte
	// Card records covered by the static signature, in original parse order.
	staticRecords [][]byte
	// Certification Authority key source.
	resolver CAKeyResolver

	/*
		Outcome of the last completed attempt.
	*/
	result *Result
}

// NewVerificationContext returns new VerificationContext instance, or error in
// case any input parameters are not valid. The context inputs are provided via
// parameter opts.
func NewVerificationContext(opts ...VerCtxOption) (*VerificationContext, error) {
	tmp := context{obj: VerificationContext{}}
	for _, optSetter := range opts {
		if optSetter == nil {
			return nil, errors.New(errors.EmvInvalidArgumentError).AppendMessage("Provided option is nil.")
		}
		if err := optSetter(&tmp); err != nil {
			return nil, errors.EmvErr(err).AppendMessage("Unable to setup verification context.")
		}
	}
	return &tmp.obj, nil
}

// VerCtxOption is verification context option to be used when initializing VerificationContext.
type VerCtxOption func(*context) error
type context struct {
	obj VerificationContext
}

// VerCtxOptDataStore is for setting the parsed card data elements the
// authentication data is gathered from.
func VerCtxOptDataStore(store *ber.Store) VerCtxOption {
	return func(c *context) error {
		if c == nil {
			return errors.New(errors.EmvInvalidArgumentError).AppendMessage("Missing verification context base object.")
		}
		if store == nil {
			return errors.New(errors.EmvInvalidArgumentError).AppendMessage("Data store is nil.")
		}
		c.obj.store = store
		return nil
	}
}

// VerCtxOptAIP is for setting the two byte Application Interchange Profile
// returned by the card.
func VerCtxOptAIP(aip []byte) VerCtxOption {
	return func(c *context) error {
		if c == nil {
			return errors.New(errors.EmvInvalidArgumentError).AppendMessage("Missing verification context base object.")
		}
		if len(aip) != 2 {
			return errors.New(errors.EmvInvalidArgumentError).
				AppendMessage(fmt.Sprintf("AIP must be 2 bytes, got %d.", len(aip)))
		}
		c.obj.aip = aip
		return nil
	}
}

// VerCtxOptStaticRecords is for setting the card records covered by the static
// signature. The provided order must be the original record parse order, as it
// affects the signed digest byte for byte.
func VerCtxOptStaticRecords(records [][]byte) VerCtxOption {
	return func(c *context) error {
		if c == nil {
			return errors.New(errors.EmvInvalidArgumentError).AppendMessage("Missing verification context base object.")
		}
		c.obj.staticRecords = records
		return nil
	}
}

// VerCtxOptCAKeyResolver is for setting the Certification Authority key source.
func VerCtxOptCAKeyResolver(resolver CAKeyResolver) VerCtxOption {
	return func(c *context) error {
		if c == nil {
			return errors.New(errors.EmvInvalidArgumentError).AppendMessage("Missing verification context base object.")
		}
		if resolver == nil {
			return errors.New(errors.EmvInvalidArgumentError).AppendMessage("CA key resolver is nil.")
		}
		c.obj.resolver = resolver
		return nil
	}
}

// Result returns the outcome of the last completed authentication attempt
// without performing any computation. Returns nil in case no attempt has been
// completed on the context.
func (ctx *VerificationContext) Result() *Result {
	if ctx == nil {
		return nil
	}
	return ctx.result
}
