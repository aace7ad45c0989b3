// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"errors"
	"fmt"
	"net/http"
	"runtime"

	"github.com/diffeo/go-lists/lists"
)

// ErrorStatus describes errors that correspond to specific HTTP status
// codes.
type ErrorStatus interface {
	// HTTPStatus returns the HTTP status code for this error.
	HTTPStatus() int
}

// ErrUnsupportedMediaType is returned from Decode() if the provided
// Content-Type: is unrecognized.  This translates directly into the
// equivalent HTTP 415 error.
type ErrUnsupportedMediaType struct {
	Type string
}

func (e ErrUnsupportedMediaType) Error() string {
	return fmt.Sprintf("Unsupported media type %q", e.Type)
}

// HTTPStatus returns a fixed 415 Unsupported Media Type error code.
func (e ErrUnsupportedMediaType) HTTPStatus() int {
	return http.StatusUnsupportedMediaType
}

// ErrNotFound is a wrapper error that indicates that, due to the
// embedded error, a REST service should return a 404 Not Found error.
type ErrNotFound struct {
	Err error
}

func (e ErrNotFound) Error() string {
	return e.Err.Error()
}

// HTTPStatus returns a fixed 404 Not Found error code.
func (e ErrNotFound) HTTPStatus() int {
	return http.StatusNotFound
}

// ErrBadRequest is returned as an error when there is an error decoding
// HTTP headers or the request body, or when the request body is not
// acceptable.
type ErrBadRequest struct {
	Err error
}

func (e ErrBadRequest) Error() string {
	return e.Err.Error()
}

// HTTPStatus returns a fixed 400 Bad Request HTTP status code.
func (e ErrBadRequest) HTTPStatus() int {
	return http.StatusBadRequest
}

// FromError populates an ErrorResponse to fill in its fields based
// on an error value.  This remaps the well-known lists errors to
// specific e.Error codes.
func (e *ErrorResponse) FromError(err error) {
	switch err {
	case lists.ErrMissingParentReference:
		e.Error = "ErrMissingParentReference"
	case lists.ErrEmptyContent:
		e.Error = "ErrEmptyContent"
	}
	switch et := err.(type) {
	case lists.ErrNoSuchList:
		e.Error = "ErrNoSuchList"
		e.Value = et.ID
	case lists.ErrNoSuchItem:
		e.Error = "ErrNoSuchItem"
		e.Value = et.ListID
		e.Value2 = et.ID
	case lists.ErrInvalidRecordState:
		e.Error = "ErrInvalidRecordState"
		e.Value = et.Reason
		if et.Err == lists.ErrMissingParentReference {
			e.Value2 = "ErrMissingParentReference"
		}
	case ErrNotFound:
		// Discard this wrapper and return the embedded error
		e.FromError(et.Err)
	case ErrBadRequest:
		e.FromError(et.Err)
	}
}

// ToError converts e back to a lists error, if that is possible.
// If not, returns a plain error with e.Message text.
func (e *ErrorResponse) ToError() error {
	switch e.Error {
	case "ErrMissingParentReference":
		return lists.ErrMissingParentReference
	case "ErrEmptyContent":
		return lists.ErrEmptyContent
	case "ErrNoSuchList":
		return lists.ErrNoSuchList{ID: e.Value}
	case "ErrNoSuchItem":
		return lists.ErrNoSuchItem{ListID: e.Value, ID: e.Value2}
	case "ErrInvalidRecordState":
		err := lists.ErrInvalidRecordState{Reason: e.Value}
		if e.Value2 == "ErrMissingParentReference" {
			err.Err = lists.ErrMissingParentReference
		}
		return err
	default:
		return errors.New(e.Message)
	}
}

// FromPanic populates an error response based on a panic.  Typical use
// is:
//
//     defer func() {
//         if obj := recovered(); obj != nil {
//             resp := restdata.ErrorResponse{}
//             resp.FromPanic(obj)
//             // write resp out as makes sense
//         }
//    }
func (e *ErrorResponse) FromPanic(obj interface{}) {
	e.Error = "panic"
	if recoveredError, isError := obj.(error); isError {
		e.Message = recoveredError.Error()
	} else {
		e.Message = fmt.Sprintf("%+v", obj)
	}
	var stack [4096]byte
	len := runtime.Stack(stack[:], false)
	e.Stack = string(stack[:len])
}
