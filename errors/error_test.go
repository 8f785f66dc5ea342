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

package errors

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

func TestUnitNewError(t *testing.T) {
	e := New(EmvHashMismatchError)
	if e.errorCode != EmvHashMismatchError {
		t.Error("Error code mismatch.")
	}
	if !strings.Contains(e.Error(), EmvHashMismatchError.String()) {
		t.Error("Error() output must contain error string.")
	}
}

func TestUnitErrorStack(t *testing.T) {
	e := New(EmvNotImplemented).AppendMessage("Static").AppendMessage("Data")
	if e.Stack() == "" {
		t.Error("Error stack must be returned.")
	}
}

func TestUnitErrorSetters(t *testing.T) {
	const (
		errCode        = EmvNotImplemented
		msg            = "This is custom error message"
		extErrMsg      = "this is ext error"
		extErrCode int = 12345
	)
	e := New(errCode).AppendMessage(msg).SetExtError(errors.New(extErrMsg)).SetExtErrorCode(extErrCode)

	eString := e.Error()
	if !strings.Contains(eString, errCode.String()) {
		t.Error("Error() output must contain error string.")
	}
	if !strings.Contains(eString, msg) {
		t.Error("Error() output must contain message string.")
	}
	if !strings.Contains(eString, extErrMsg) {
		t.Error("Error() output must contain ext error string.")
	}
	if !strings.Contains(eString, strconv.Itoa(extErrCode)) {
		t.Error("Error() output must contain ext error code.")
	}
}

func TestUnitErrorAppendMessage(t *testing.T) {
	e := New(EmvNotImplemented).AppendMessage("Static").AppendMessage("Data")
	eString := e.Error()
	if !(strings.Contains(eString, "1: Static") && strings.Contains(eString, "2: Data")) {
		t.Error("Error() output error message mismatch.")
	}
}

func TestUnitErrorConvertEmvError(t *testing.T) {
	original := New(EmvInvalidArgumentError).AppendMessage("Dummy")
	processed := EmvErr(original)

	if original != processed {
		t.Error("EmvError pumped through EmvErr function must be exactly the same object but pointer values are different!")
	}

	messageListLen := len(processed.Message())
	if messageListLen != 1 {
		t.Fatal("Size of the message list is altered! Expected size is 1 but got ", messageListLen)
	}

	if processed.Code() != EmvInvalidArgumentError {
		t.Fatal("Error code is altered. Expecting ", int(EmvInvalidArgumentError), " but got ", int(processed.Code()))
	}

	if processed.ExtError() != nil {
		t.Fatal("It should have no external error appended but got: ", processed.ExtError())
	}
}

func TestUnitErrorConvertExternalError(t *testing.T) {
	ext := errors.New("some io failure")
	wrapped := EmvErr(ext, EmvIoError)

	if wrapped.Code() != EmvIoError {
		t.Error("Wrapped external error must carry the provided code.")
	}
	if wrapped.ExtError() != ext {
		t.Error("Wrapped external error must retain the original error.")
	}
}

func TestUnitErrorConvertNil(t *testing.T) {
	if EmvErr(nil) != nil {
		t.Error("Nil error must convert to nil.")
	}
}

func TestUnitNilErrorAccessors(t *testing.T) {
	var e *EmvError
	if e.Error() != "" || e.Code() != EmvNoError || e.Stack() != "" ||
		e.ExtCode() != 0 || e.ExtError() != nil || e.Message() != nil {
		t.Error("Nil error accessors must return zero values.")
	}
	if e.AppendMessage("msg") != nil || e.SetExtError(errors.New("x")) != nil || e.SetExtErrorCode(1) != nil {
		t.Error("Nil error setters must return nil.")
	}
}
