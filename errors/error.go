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

// Package errors implements functions to manipulate EMV toolkit errors.
//
//
package errors

import (
	"fmt"
	"runtime"
	"strings"
)

// EmvError ...
type EmvError struct {
	errorCode    ErrorCode
	message      []string
	extError     error
	extErrorCode int
	errorStack   string
}

// New construct a new EmvError.
func New(code ErrorCode) *EmvError {
	return &EmvError{
		errorCode:  code,
		errorStack: stack(),
	}
}

// EmvErr wraps the provided error into EmvError, if the input is not EmvError. By default the error code is set to
// EmvExternalError. In case the 'err' parameter is of type EmvError, the original error is returned without any modification.
//
// Optionally an error code can be provided, which will be applied in case of external error. Note, despite the fact
// that 'code' parameter is a variadic value, only one error code should be provided.
func EmvErr(err error, code ...ErrorCode) *EmvError {
	if err == nil {
		return nil
	}

	errCode := EmvExternalError
	if len(code) != 0 {
		errCode = code[0]
	}

	emvErr, ok := err.(*EmvError)
	if !ok {
		emvErr = New(errCode).SetExtError(err)
	}
	return emvErr
}

func stack() string {
	buf := make([]byte, 1024)
	n := 0
	for {
		n = runtime.Stack(buf, false)
		if n < len(buf) {
			break
		}
		buf = make([]byte, 2*len(buf))
	}

	return string(buf[:n])
}

// Error implements error interface.
func (e *EmvError) Error() string {
	if e == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%04x/%d] %s.\n", uint16(e.errorCode), e.extErrorCode, e.errorCode.String()))

	if len(e.message) > 0 {
		b.WriteString("Error message:")
		for i := len(e.message); i > 0; i-- {
			b.WriteString(fmt.Sprintf("\n  %d: %s", i, e.message[i-1]))
		}
		b.WriteString("\n")
	}

	if e.extError != nil {
		b.WriteString(fmt.Sprintf("Extended error: %s\n", e.extError))
	}

	if len(e.errorStack) != 0 {
		b.WriteString(fmt.Sprintf("%s", e.errorStack))
	}

	b.WriteString("\n")
	return b.String()
}

// AppendMessage allows to add an additional descriptive message to the error.
// Returns an updated reference of the receiver EmvError.
func (e *EmvError) AppendMessage(msg string) *EmvError {
	if e == nil {
		return nil
	}
	e.message = append(e.message, msg)
	return e
}

// SetExtError allows to set an additional low-level error.
// Returns an updated reference of the receiver EmvError.
func (e *EmvError) SetExtError(err error) *EmvError {
	if e == nil {
		return nil
	}
	e.extError = err
	return e
}

// SetExtErrorCode allows to set an additional low-level error code.
// Returns an updated reference of the receiver EmvError.
func (e *EmvError) SetExtErrorCode(c int) *EmvError {
	if e == nil {
		return nil
	}
	e.extErrorCode = c
	return e
}

// Code returns the error code.
func (e *EmvError) Code() ErrorCode {
	if e == nil {
		return EmvNoError
	}
	return e.errorCode
}

// Stack returns the stack trace where the error occurred.
func (e *EmvError) Stack() string {
	if e == nil {
		return ""
	}
	return e.errorStack
}

// ExtCode returns extended error code.
func (e *EmvError) ExtCode() int {
	if e == nil {
		return 0
	}
	return e.extErrorCode
}

// ExtError returns extended error.
func (e *EmvError) ExtError() error {
	if e == nil {
		return nil
	}
	return e.extError
}

// Message returns additional appended messages.
func (e *EmvError) Message() []string {
	if e == nil {
		return nil
	}
	return e.message
}
