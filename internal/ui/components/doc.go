// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the reusable pieces the pokedex views are built
from. Components hold no navigation state; views configure them and call
View.

# Chrome

Header (header.go) - Page title with the navigation links of the page.
StatusBar (statusbar.go) - Key hints, session indicator and copyright.
Toast (error_toast.go) - Short self-dismissing notice.

# Feedback

Spinner (spinner.go) - Loading indicator wrapping the bubbles spinner.
Confirm (confirm.go) - Question, pending and result modal used by wishlist
removal and registration.

# Entries

Card, Row and TypeBadges (card.go) render list entries. ImagePath
(image.go) maps a name to its sprite file:

	components.ImagePath("Pikachu")  // /images/pikachu.avif
	components.ImagePath("Nidoran♀") // /images/nidoranfemale.avif
*/
package components
