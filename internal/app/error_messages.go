// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// arc-portal server handlers and middleware.
//
// All Msg* constants are human-readable message strings written into the
// {"message": ...} body of HTTP responses. Portal pages match on some of
// them, so the wording is part of the API.
package app

// Collection messages.
const (
	// MsgDatabaseConnectionFailed is returned when a store cannot be reached.
	MsgDatabaseConnectionFailed = "Database connection failed."

	MsgUnableToFetchRecords  = "Unable to fetch records."
	MsgUnableToInsertRecord  = "Unable to insert record."
	MsgUnableToUpdateRecord  = "Unable to update record."
	MsgUnableToDeleteRecords = "Unable to delete records."

	// MsgNoRecordsToInsert is returned when a POST body holds no records
	// once falsy array entries are dropped.
	MsgNoRecordsToInsert = "No records to insert."

	MsgRecordIDRequired = "Record id is required."
	MsgInvalidRecordID  = "Invalid record id."
	MsgRecordNotFound   = "Record not found."

	// MsgNoValidIDs is returned when a delete names no well-formed id.
	MsgNoValidIDs = "No valid ids provided."
)

// Attachment messages.
const (
	MsgFileNameAndDataRequired = "fileName and data are required."
	MsgInvalidBase64           = "data must be base64 encoded."

	// MsgFileTooLarge is returned both for decoded payloads above the upload
	// ceiling and for request bodies that cannot possibly fit under it.
	MsgFileTooLarge = "File exceeds upload size limit."

	MsgUnableToStoreDocument = "Unable to store document."
	MsgInvalidDocumentID     = "Invalid document id."
	MsgDocumentNotFound      = "Document not found."
	MsgUnableToFetchDocument = "Unable to fetch document."
	MsgUnableToListDocuments = "Unable to list documents."
)

// Account and session messages.
const (
	MsgEmailAndPasswordRequired = "Email and password are required."
	MsgPasswordTooLong          = "Password must be at most 72 bytes."
	MsgEmailAlreadyRegistered   = "Email already registered."
	MsgRegistrationFailed       = "Registration failed."
	MsgInvalidCredentials       = "Invalid credentials."
	MsgAuthenticationFailed     = "Authentication failed."

	// MsgUnauthorized is returned when a request carries no session token.
	MsgUnauthorized = "Unauthorized."

	// MsgTokenIsExpiredOrInvalid is returned when a session token fails
	// signature, issuer or expiry checks.
	MsgTokenIsExpiredOrInvalid = "Invalid or expired token."

	MsgAccessGranted = "Access granted."
)

// Transport messages.
const (
	MsgInvalidJSONBody  = "Invalid JSON body."
	MsgInvalidGzipBody  = "Invalid gzip body."
	MsgMethodNotAllowed = "Method Not Allowed"
	MsgNotFound         = "Not Found"
)
