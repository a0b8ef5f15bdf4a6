package client

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/MKhiriev/go-caesar-cipher/models"
)

type printer struct {
	out    io.Writer
	styles styles
}

func newPrinter(out io.Writer) *printer {
	return &printer{out: out, styles: newStyles(out)}
}

func (p *printer) line(label, value string) {
	fmt.Fprintf(p.out, "%s %s\n", p.styles.label.Render(label+":"), value)
}

func (p *printer) info(info models.ServiceInfo) {
	fmt.Fprintln(p.out, p.styles.title.Render(info.Message+" v"+info.Version))
	for _, name := range slices.Sorted(maps.Keys(info.Endpoints)) {
		p.line("  "+name, info.Endpoints[name])
	}
	p.line("Encryption", info.Formulas.Encryption)
	p.line("Decryption", info.Formulas.Decryption)
}

func (p *printer) transformed(label, original, result string, shift int, stats models.TextStatistics) {
	p.line("Original", original)
	p.line("Shift", fmt.Sprint(shift))
	fmt.Fprintln(p.out, p.styles.box.Render(p.styles.value.Render(label+": "+result)))
	p.stats(stats)
}

func (p *printer) stats(stats models.TextStatistics) {
	fmt.Fprintln(p.out, p.styles.title.Render("Statistics"))
	p.line("  Total characters", fmt.Sprint(stats.TotalChars))
	p.line("  Alphabetic", fmt.Sprint(stats.AlphabeticChars))
	p.line("  Non-alphabetic", fmt.Sprint(stats.NonAlphabeticChars))
	p.line("  Uppercase", fmt.Sprint(stats.UppercaseChars))
	p.line("  Lowercase", fmt.Sprint(stats.LowercaseChars))
	p.line("  Words", fmt.Sprint(stats.Words))
}

func (p *printer) bruteForce(result models.BruteForceResponse) {
	p.line("Ciphertext", result.OriginalText)
	for _, candidate := range result.AllPossibilities {
		fmt.Fprintf(p.out, "%s %s\n", p.styles.label.Render(fmt.Sprintf("shift %2d:", candidate.Shift)), candidate.DecryptedText)
	}
}

func (p *printer) copied(text string) {
	fmt.Fprintln(p.out, p.styles.help.Render(fmt.Sprintf("copied %d characters to clipboard", len([]rune(text)))))
}

// bruteForceText joins every candidate into one block, one per line.
func bruteForceText(result models.BruteForceResponse) string {
	var b strings.Builder
	for _, candidate := range result.AllPossibilities {
		fmt.Fprintf(&b, "%d: %s\n", candidate.Shift, candidate.DecryptedText)
	}
	return b.String()
}
