package tui

import (
	"fmt"
	"strings"
)

func (m cipherModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Caesar Cipher"))
	b.WriteString("\n\n")

	ops := make([]string, 0, operationsCount)
	for op := range operationsCount {
		name := op.String()
		if op == m.op {
			name = activeOpStyle.Render(name)
		}
		ops = append(ops, name)
	}
	b.WriteString(strings.Join(ops, "  "))
	if m.op.usesShift() {
		fmt.Fprintf(&b, "    shift: %d", m.shift)
	}
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.running:
		b.WriteString(m.spinner.View() + " working...")
	case m.result != "":
		b.WriteString(resultStyle.Render(m.result))
	}

	if m.status != "" {
		b.WriteString("\n")
		if m.lastErr != nil {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(helpStyle.Render(m.status))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter run • tab operation • ↑/↓ shift • ctrl+y copy • esc quit"))

	return appStyle.Render(b.String())
}
