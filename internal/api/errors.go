// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"errors"
	"fmt"
)

var (
	// ErrCredentialRejected means the server answered 401 or there was no
	// credential to send.
	ErrCredentialRejected = errors.New("credential rejected")

	// ErrMalformedResponse means a 2xx body did not have the expected shape.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrConnectivity means the request never produced a response.
	ErrConnectivity = errors.New("could not connect to the server")
)

// APIError is a non-2xx response other than 401.
type APIError struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API error (HTTP %d)", e.Status)
	}
	return fmt.Sprintf("API error (HTTP %d): %s", e.Status, e.Message)
}

// IsCredentialRejected reports whether err should end the session.
func IsCredentialRejected(err error) bool {
	return errors.Is(err, ErrCredentialRejected)
}
