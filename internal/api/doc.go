// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api is the HTTP client for the Pokédex backend.
//
// Public calls (Login, Register) need no credential. Protected calls read
// the bearer token from a Credentials source on every request and report
// a 401 as ErrCredentialRejected so the caller can end the session.
//
// # Key Types
//
//   - Client: rate-limited HTTP client for /api/v1
//   - Pokemon: catalog entry, with detail fields when fetched singly
//   - APIError: non-2xx response other than 401
//
// # Errors
//
//   - ErrCredentialRejected: 401, or no credential held
//   - ErrMalformedResponse: 2xx body of the wrong shape
//   - ErrConnectivity: transport failure or timeout
//
// # Usage
//
//	client := api.New(cfg.API, store)
//	list, err := client.ListPokemon(ctx)
//	if errors.Is(err, api.ErrCredentialRejected) {
//	    ctrl.ReportSessionExpired()
//	}
package api
