package client

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-caesar-cipher/internal/adapter"
	"github.com/MKhiriev/go-caesar-cipher/internal/config"
	"github.com/MKhiriev/go-caesar-cipher/internal/logger"
	"github.com/MKhiriev/go-caesar-cipher/internal/tui"
	"github.com/atotto/clipboard"
)

type App struct {
	adapter adapter.CipherAdapter
	command config.Command

	printer     *printer
	copyFn      func(string) error
	interactive func(ctx context.Context, text string, shift int) error

	logger *logger.Logger
}

func NewApp(cipherAdapter adapter.CipherAdapter, command config.Command, out io.Writer, logger *logger.Logger) *App {
	return &App{
		adapter:     cipherAdapter,
		command:     command,
		printer:     newPrinter(out),
		copyFn:      clipboard.WriteAll,
		interactive: tui.New(cipherAdapter, logger).Run,
		logger:      logger,
	}
}

// Run executes the configured operation. With CopyToClipboard set, the
// produced text is also copied; a clipboard failure is logged and does not
// fail the command.
func (a *App) Run(ctx context.Context) error {
	a.logger.Debug().Str("operation", a.command.Operation).Msg("running command")

	var toCopy string

	switch a.command.Operation {
	case "interactive":
		return a.interactive(ctx, a.command.Text, a.command.Shift)

	case "info":
		info, err := a.adapter.Info(ctx)
		if err != nil {
			return err
		}
		a.printer.info(info)

	case "encrypt":
		resp, err := a.adapter.Encrypt(ctx, a.command.Text, a.command.Shift)
		if err != nil {
			return err
		}
		a.printer.transformed("Encrypted", resp.OriginalText, resp.EncryptedText, resp.Shift, resp.Stats)
		toCopy = resp.EncryptedText

	case "decrypt":
		resp, err := a.adapter.Decrypt(ctx, a.command.Text, a.command.Shift)
		if err != nil {
			return err
		}
		a.printer.transformed("Decrypted", resp.OriginalText, resp.DecryptedText, resp.Shift, resp.Stats)
		toCopy = resp.DecryptedText

	case "analyze":
		resp, err := a.adapter.Analyze(ctx, a.command.Text)
		if err != nil {
			return err
		}
		a.printer.line("Text", resp.Text)
		a.printer.stats(resp.Stats)
		toCopy = resp.Text

	case "brute-force":
		resp, err := a.adapter.BruteForce(ctx, a.command.Text)
		if err != nil {
			return err
		}
		a.printer.bruteForce(resp)
		toCopy = bruteForceText(resp)

	default:
		return fmt.Errorf("%w: unknown operation %q", config.ErrInvalidCommand, a.command.Operation)
	}

	if a.command.CopyToClipboard && toCopy != "" {
		if err := a.copyFn(toCopy); err != nil {
			a.logger.Warn().Err(err).Msg("error copying result to clipboard")
			return nil
		}
		a.printer.copied(toCopy)
	}

	return nil
}
