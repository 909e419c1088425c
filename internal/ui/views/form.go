// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/pokedex-tui/internal/ui/styles"
)

// field describes one input of a form.
type field struct {
	label  string
	secret bool
	limit  int
}

// form is a column of labelled text inputs with one focused at a time.
type form struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newForm(fields ...field) form {
	f := form{
		labels: make([]string, len(fields)),
		inputs: make([]textinput.Model, len(fields)),
	}
	for i, fd := range fields {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.CharLimit = fd.limit
		if fd.secret {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		f.labels[i] = fd.label
		f.inputs[i] = ti
	}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

func (f *form) value(i int) string {
	return f.inputs[i].Value()
}

func (f *form) setValue(i int, v string) {
	f.inputs[i].SetValue(v)
}

// move shifts focus by delta, wrapping around.
func (f *form) move(delta int) tea.Cmd {
	n := len(f.inputs)
	if n == 0 {
		return nil
	}
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + n) % n
	return f.inputs[f.focus].Focus()
}

// update forwards msg to the focused input.
func (f *form) update(msg tea.Msg) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// missing returns the label of the first empty input, or "".
func (f *form) missing() string {
	for i, in := range f.inputs {
		if strings.TrimSpace(in.Value()) == "" {
			return f.labels[i]
		}
	}
	return ""
}

func (f *form) view(t *styles.Theme) string {
	var b strings.Builder
	for i, in := range f.inputs {
		label := t.InputLabel.Render(f.labels[i])
		if i == f.focus {
			label = t.InputFocused.Render(f.labels[i])
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n")
		if i < len(f.inputs)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
