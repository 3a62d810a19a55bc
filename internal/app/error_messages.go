// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the client-facing message strings shared by the HTTP
// handlers, middleware and the API client.
//
// Error bodies are written as bare JSON strings, so the client matches on
// these exact values.
package app

const (
	// MsgUserNotFound is returned by login when no user has the given email.
	MsgUserNotFound = "User not found"

	// MsgWrongPassword is returned by login when the password does not match.
	MsgWrongPassword = "Wrong password"

	MsgEmailAlreadyRegistered = "Email already registered"

	// MsgInvalidDataProvided is returned when the request fails credential
	// validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	MsgUnauthorized        = "Unauthorized"
	MsgNotFound            = "Not Found"
	MsgServiceUnavailable  = "Service Unavailable"
	MsgInternalServerError = "Internal Server Error"
)
