// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/pokedex-tui/internal/ui/styles"
)

// =============================================================================
// TOAST TYPES
// =============================================================================

// ToastKind represents the type of toast notification.
type ToastKind int

const (
	ToastKindStatus ToastKind = iota
	ToastKindError
	ToastKindSuccess
)

// DefaultToastDuration is the auto-dismiss duration for status toasts.
const DefaultToastDuration = 4 * time.Second

// ErrorToastDuration is longer so the message can be read.
const ErrorToastDuration = 8 * time.Second

var toastSeq atomic.Int64

// Toast is a short notice shown above the footer that dismisses itself,
// e.g. after logout or when the session expired.
type Toast struct {
	ID        int64
	Message   string
	Kind      ToastKind
	CreatedAt time.Time
	Duration  time.Duration
}

func newToast(kind ToastKind, message string, d time.Duration) Toast {
	return Toast{
		ID:        toastSeq.Add(1),
		Message:   message,
		Kind:      kind,
		CreatedAt: time.Now(),
		Duration:  d,
	}
}

// NewErrorToast creates an error toast.
func NewErrorToast(message string) Toast {
	return newToast(ToastKindError, message, ErrorToastDuration)
}

// NewStatusToast creates an informational toast.
func NewStatusToast(message string) Toast {
	return newToast(ToastKindStatus, message, DefaultToastDuration)
}

// NewSuccessToast creates a success toast.
func NewSuccessToast(message string) Toast {
	return newToast(ToastKindSuccess, message, DefaultToastDuration)
}

// IsExpired returns true if the toast should be dismissed.
func (t Toast) IsExpired() bool {
	return time.Since(t.CreatedAt) >= t.Duration
}

// ToastDismissMsg asks the owner to drop the toast with ID.
type ToastDismissMsg struct {
	ID int64
}

// DismissCmd fires a ToastDismissMsg once the toast's duration passes.
func (t Toast) DismissCmd() tea.Cmd {
	id := t.ID
	return tea.Tick(t.Duration, func(time.Time) tea.Msg {
		return ToastDismissMsg{ID: id}
	})
}

// View renders the toast.
func (t Toast) View() string {
	var color lipgloss.AdaptiveColor
	var prefix string
	switch t.Kind {
	case ToastKindError:
		color, prefix = styles.Rose, styles.StatusIndicators.Error
	case ToastKindSuccess:
		color, prefix = styles.Emerald, styles.StatusIndicators.Success
	default:
		color, prefix = styles.Sky, styles.StatusIndicators.Info
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Foreground(color).
		Padding(0, 1).
		Render(prefix + " " + t.Message)
}
