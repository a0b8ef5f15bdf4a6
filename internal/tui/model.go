package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-caesar-cipher/internal/adapter"
	"github.com/MKhiriev/go-caesar-cipher/internal/cipher"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type cipherModel struct {
	ctx     context.Context
	adapter adapter.CipherAdapter

	input   textinput.Model
	spinner spinner.Model

	op      operation
	shift   int
	running bool

	result   string
	copyText string
	status   string
	lastErr  error

	copyFn func(string) error
}

func newCipherModel(ctx context.Context, cipherAdapter adapter.CipherAdapter, text string, shift int) cipherModel {
	input := textinput.New()
	input.Placeholder = "Type text and press enter"
	input.SetValue(text)
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	if shift < cipher.MinShift || shift > cipher.MaxShift {
		shift = 3
	}

	return cipherModel{
		ctx:     ctx,
		adapter: cipherAdapter,
		input:   input,
		spinner: s,
		shift:   shift,
		copyFn:  clipboard.WriteAll,
	}
}

func (m cipherModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m cipherModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case resultMsg:
		m.running = false
		m.lastErr = msg.err
		if msg.err != nil {
			m.result, m.copyText = "", ""
			m.status = msg.err.Error()
			return m, nil
		}
		m.result, m.copyText, m.status = msg.body, msg.copyText, ""
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status = "copy failed: " + msg.err.Error()
		} else {
			m.status = "copied to clipboard"
		}
		return m, nil

	case spinner.TickMsg:
		if !m.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m cipherModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit

	case key.Matches(msg, keys.run):
		if m.running {
			return m, nil
		}
		text := m.input.Value()
		if strings.TrimSpace(text) == "" {
			m.status = "enter some text first"
			return m, nil
		}
		m.running = true
		m.status = ""
		return m, tea.Batch(m.spinner.Tick, runOperation(m.ctx, m.adapter, m.op, text, m.shift))

	case key.Matches(msg, keys.nextOp):
		m.op = (m.op + 1) % operationsCount
		return m, nil

	case key.Matches(msg, keys.prevOp):
		m.op = (m.op + operationsCount - 1) % operationsCount
		return m, nil

	case key.Matches(msg, keys.shiftUp):
		m.shift = m.shift%cipher.MaxShift + 1
		return m, nil

	case key.Matches(msg, keys.shiftDown):
		m.shift = (m.shift+cipher.MaxShift-2)%cipher.MaxShift + 1
		return m, nil

	case key.Matches(msg, keys.copyResult):
		if m.copyText == "" {
			m.status = "nothing to copy"
			return m, nil
		}
		text, copyFn := m.copyText, m.copyFn
		return m, func() tea.Msg { return copiedMsg{err: copyFn(text)} }
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
