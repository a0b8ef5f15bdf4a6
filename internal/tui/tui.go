package tui

import (
	"context"

	"github.com/MKhiriev/go-caesar-cipher/internal/adapter"
	"github.com/MKhiriev/go-caesar-cipher/internal/logger"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	adapter adapter.CipherAdapter
	logger  *logger.Logger
}

func New(cipherAdapter adapter.CipherAdapter, logger *logger.Logger) *TUI {
	return &TUI{adapter: cipherAdapter, logger: logger}
}

// Run blocks until the user quits. initialText and shift pre-fill the form.
func (t *TUI) Run(ctx context.Context, initialText string, shift int) error {
	model := newCipherModel(ctx, t.adapter, initialText, shift)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	if result, ok := finalModel.(cipherModel); ok && result.lastErr != nil {
		t.logger.Debug().Err(result.lastErr).Msg("last request failed")
	}

	return nil
}
