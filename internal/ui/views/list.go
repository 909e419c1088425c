// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"fmt"
	"strings"

	"github.com/jeranaias/pokedex-tui/internal/api"
	"github.com/jeranaias/pokedex-tui/internal/ui/components"
	"github.com/jeranaias/pokedex-tui/internal/ui/styles"
)

// entryList is a paginated, cursor-driven list of entries.
type entryList struct {
	items    []api.Pokemon
	cursor   int
	pageSize int
}

func newEntryList(pageSize int) entryList {
	if pageSize <= 0 {
		pageSize = 20
	}
	return entryList{pageSize: pageSize}
}

func (l *entryList) set(items []api.Pokemon) {
	l.items = items
	if l.cursor >= len(items) {
		l.cursor = len(items) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
}

func (l *entryList) len() int { return len(l.items) }

func (l *entryList) page() int { return l.cursor / l.pageSize }

func (l *entryList) pages() int {
	if len(l.items) == 0 {
		return 1
	}
	return (len(l.items) + l.pageSize - 1) / l.pageSize
}

func (l *entryList) move(delta int) {
	if len(l.items) == 0 {
		return
	}
	l.cursor += delta
	if l.cursor < 0 {
		l.cursor = 0
	}
	if l.cursor >= len(l.items) {
		l.cursor = len(l.items) - 1
	}
}

// turn moves the cursor to the first entry of the next (delta 1) or
// previous (delta -1) page.
func (l *entryList) turn(delta int) {
	p := l.page() + delta
	if p < 0 || p >= l.pages() {
		return
	}
	l.cursor = p * l.pageSize
}

func (l *entryList) selected() (api.Pokemon, bool) {
	if l.cursor < 0 || l.cursor >= len(l.items) {
		return api.Pokemon{}, false
	}
	return l.items[l.cursor], true
}

// remove drops the entry with the given national number.
func (l *entryList) remove(id int) {
	out := l.items[:0]
	for _, p := range l.items {
		if p.NationalNumber != id {
			out = append(out, p)
		}
	}
	l.set(out)
}

func (l *entryList) view(t *styles.Theme, width int) string {
	start := l.page() * l.pageSize
	end := start + l.pageSize
	if end > len(l.items) {
		end = len(l.items)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(components.Row(t, l.items[i], width, i == l.cursor))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(t.Muted.Render(fmt.Sprintf("Page %d/%d  ·  %d entries", l.page()+1, l.pages(), len(l.items))))
	return b.String()
}
