// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/arc-portal/internal/logger"
	"github.com/MKhiriev/arc-portal/internal/utils"
	"github.com/MKhiriev/arc-portal/models"
)

var (
	// errInvalidJSON is returned when a request body is not the JSON value
	// an endpoint expects.
	errInvalidJSON = errors.New("invalid JSON body")

	// errNoSessionToken is returned when a request carries neither a bearer
	// header nor a session cookie.
	errNoSessionToken = errors.New("no session token")

	// errBodyTooLarge is returned when a request body exceeds the route limit.
	errBodyTooLarge = errors.New("request body too large")
)

// writeJSON writes payload with the uniform JSON headers.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	if _, err := utils.WriteJSON(w, payload, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeJSON").Msg("error writing response")
	}
}

// writeMessage writes {"message": msg} with the uniform JSON headers.
func writeMessage(w http.ResponseWriter, status int, msg string) {
	utils.WriteJSON(w, models.MessageResponse{Message: msg}, status)
}

// writeError maps err to its status and client-facing message. Server-side
// failures are logged with the full error chain.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := responseFromError(err)
	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Int("status", status).Msg("request failed")
	}
	writeMessage(w, status, msg)
}

// readBody reads the whole request body. An empty or whitespace-only body
// reads as the empty object.
func readBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return []byte("{}"), nil
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, errBodyTooLarge
		}
		return nil, fmt.Errorf("%w: %w", errInvalidJSON, err)
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return []byte("{}"), nil
	}
	return body, nil
}

// decodeJSON parses a request body into a generic JSON value. Numbers decode
// as float64.
func decodeJSON(r *http.Request) (any, error) {
	body, err := readBody(r)
	if err != nil {
		return nil, err
	}

	var payload any
	if err = json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidJSON, err)
	}
	return payload, nil
}

// decodeObject parses a request body that must be a JSON object into dst.
// A JSON null is rejected like malformed input.
func decodeObject(r *http.Request, dst any) error {
	body, err := readBody(r)
	if err != nil {
		return err
	}

	if bytes.Equal(body, []byte("null")) {
		return errInvalidJSON
	}
	if err = json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: %w", errInvalidJSON, err)
	}
	return nil
}
