// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package views contains one Bubble Tea page per navigation view.
//
// Pages never change the visible view themselves. They call the navigation
// controller, and the application mounts a fresh page for the new state.
// Protected pages load their data with fetch.Run and pass every result
// through fetch.Settle, so a rejected credential ends the session and a
// result for a page that is gone is dropped.
package views
