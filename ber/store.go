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

import (
	"fmt"

	"github.com/guardtime/goemv/errors"
)

// Store holds decoded primitive data elements keyed by tag, preserving the
// order in which they were added. Stored values are immutable borrowed views;
// neither the store nor its consumers may modify them.
type Store struct {
	elements []element
}

type element struct {
	tag   Tag
	value []byte
}

// NewStore returns a new empty data element store.
func NewStore() *Store {
	return &Store{}
}

// Add appends a data element to the store. Duplicate tags are retained,
// lookups return the first occurrence.
func (s *Store) Add(tag Tag, value []byte) {
	if s == nil {
		return
	}
	s.elements = append(s.elements, element{tag: tag, value: value})
}

// Get returns the value of the first element with the given tag.
func (s *Store) Get(tag Tag) ([]byte, bool) {
	if s == nil {
		return nil, false
	}
	for _, e := range s.elements {
		if e.tag == tag {
			return e.value, true
		}
	}
	return nil, false
}

// Bytes returns the value of the first element with the given tag, or
// EmvDataMissingError in case the tag is not present.
func (s *Store) Bytes(tag Tag) ([]byte, error) {
	value, ok := s.Get(tag)
	if !ok {
		return nil, errors.New(errors.EmvDataMissingError).
			AppendMessage(fmt.Sprintf("Data element %s is not present.", tag))
	}
	return value, nil
}

// Uint decodes the value of the first element with the given tag as a big
// endian unsigned integer. An empty or more than 8 byte value fails with
// EmvInvalidFormatError.
func (s *Store) Uint(tag Tag) (uint64, error) {
	value, err := s.Bytes(tag)
	if err != nil {
		return 0, err
	}

	valueLen := len(value)
	if valueLen == 0 {
		return 0, errors.New(errors.EmvInvalidFormatError).
			AppendMessage(fmt.Sprintf("Value of tag %s is empty.", tag))
	} else if valueLen > 8 {
		return 0, errors.New(errors.EmvInvalidFormatError).
			AppendMessage(fmt.Sprintf("Value of tag %s is too large for an integer (%v).", tag, value))
	}

	var tmp uint64
	for _, b := range value {
		tmp <<= 8
		tmp += uint64(b)
	}
	return tmp, nil
}

// Len returns the count of stored data elements.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.elements)
}
