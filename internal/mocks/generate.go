// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package mocks provides gomock implementations of pokedex interfaces for
// failure-path tests.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	slot := mocks.NewMockSlot(ctrl)
//	slot.EXPECT().Get(gomock.Any()).Return("", errors.New("boom"))
package mocks

// Generate mock for the session Slot interface: Get, Put, Delete, Close
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=slot_mock.go github.com/jeranaias/pokedex-tui/internal/session Slot
