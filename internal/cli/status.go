// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// status.go - status command.
//
// Command: status
// Aliases: s
//
// Examples:
//
//	pokedex status           Session state and entry counts
//	pokedex status --json    Same, as JSON
//
// When a session is held, the catalog and the wishlist are fetched
// concurrently. A rejected token ends the session exactly as in the TUI.
package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/jeranaias/pokedex-tui/internal/api"
	"github.com/jeranaias/pokedex-tui/internal/telemetry"
)

// StatusData is the result of the status command.
type StatusData struct {
	Server         string `json:"server"`
	Backend        string `json:"backend"`
	SignedIn       bool   `json:"signed_in"`
	SessionExpired bool   `json:"session_expired,omitempty"`
	CatalogCount   *int   `json:"catalog_count,omitempty"`
	WishlistCount  *int   `json:"wishlist_count,omitempty"`
}

// CollectStatus gathers the status. Only connectivity and server failures
// are returned as errors; a rejected token is reported in the data.
func CollectStatus(ctx context.Context, rt *Runtime) (StatusData, error) {
	data := StatusData{
		Server:   rt.Client.BaseURL(),
		Backend:  rt.Config.Session.Backend,
		SignedIn: rt.Store.HasSession(),
	}
	if !data.SignedIn {
		return data, nil
	}

	var catalog, wishlist int
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := rt.Client.ListPokemon(gctx)
		catalog = len(list)
		return err
	})
	g.Go(func() error {
		list, err := rt.Client.ListWishlist(gctx)
		wishlist = len(list)
		return err
	})

	err := g.Wait()
	switch {
	case errors.Is(err, api.ErrCredentialRejected):
		rt.Store.ClearSession()
		rt.Telemetry.Record(telemetry.EventExpired)
		data.SignedIn = false
		data.SessionExpired = true
		return data, nil
	case err != nil:
		return data, NewCommandError("status", "fetch counts", err)
	}

	data.CatalogCount = &catalog
	data.WishlistCount = &wishlist
	return data, nil
}

// HandleStatus prints the status.
func HandleStatus(ctx context.Context, rt *Runtime, args Args) error {
	data, err := CollectStatus(ctx, rt)
	if err != nil {
		return err
	}
	if args.JSON {
		return NewJSONResponse("status", data).Write(rt.Out)
	}

	fmt.Fprintln(rt.Out, TitleStyle.Render("Pokédex status"))
	fmt.Fprint(rt.Out, field("Server", data.Server))
	fmt.Fprint(rt.Out, field("Backend", data.Backend))

	switch {
	case data.SessionExpired:
		fmt.Fprint(rt.Out, field("Session", WarningStyle.Render("expired, signed out")))
	case data.SignedIn:
		fmt.Fprint(rt.Out, field("Session", SuccessStyle.Render("signed in")))
	default:
		fmt.Fprint(rt.Out, field("Session", DimStyle.Render("signed out")))
	}

	if data.CatalogCount != nil {
		fmt.Fprint(rt.Out, field("Catalog", strconv.Itoa(*data.CatalogCount)+" entries"))
	}
	if data.WishlistCount != nil {
		fmt.Fprint(rt.Out, field("Wishlist", strconv.Itoa(*data.WishlistCount)+" entries"))
	}
	return nil
}
