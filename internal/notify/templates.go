package notify

import (
	"fmt"
	"strings"
)

// Platform carries the branding injected into every rendered template.
type Platform struct {
	Name         string
	SupportPhone string
}

// templateKey selects a renderer by event type and lifecycle point.
type templateKey struct {
	Type      EventType
	Confirmed bool
}

// renderFunc produces the subject and HTML body for one audience. Renderers
// are pure: all branching on request contents happens inside them.
type renderFunc func(r *Request, p Platform) (subject, html string)

// lookupTemplate resolves (type, confirmed) to a renderer. Types without a
// confirmed-state variant fall back to their creation template.
func lookupTemplate(m map[templateKey]renderFunc, t EventType, confirmed bool) renderFunc {
	if fn, ok := m[templateKey{Type: t, Confirmed: confirmed}]; ok {
		return fn
	}
	return m[templateKey{Type: t}]
}

// Render-with-defaults contract: every absent string renders as "N/A", every
// absent amount as Rs. 0, an absent test list as an empty table.

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func rupees(v float64) string {
	return fmt.Sprintf("Rs. %.0f", v)
}

const cellStyle = `padding: 8px; border-bottom: 1px solid #e5e7eb;`

func htmlRow(label, value string) string {
	return fmt.Sprintf(`<tr><td style="%s"><strong>%s:</strong></td><td style="%s">%s</td></tr>`,
		cellStyle, label, cellStyle, value)
}

func detailsTable(rows ...string) string {
	return fmt.Sprintf(`<table style="border-collapse: collapse; margin: 16px 0;">%s</table>`,
		strings.Join(rows, "\n"))
}

// testsTable renders the priced lab test lines shared by order and
// prescription emails.
func testsTable(tests []TestItem) string {
	var b strings.Builder
	b.WriteString(`<table style="border-collapse: collapse; margin: 16px 0; width: 100%;">`)
	b.WriteString(fmt.Sprintf(`<tr style="background: #f3f4f6;"><th style="%s">Test</th><th style="%s">Original</th><th style="%s">Payable</th></tr>`,
		cellStyle, cellStyle, cellStyle))
	var totalOriginal, totalPayable float64
	for _, t := range tests {
		totalOriginal += t.OriginalPrice
		totalPayable += t.DiscountedPrice
		b.WriteString(fmt.Sprintf(`<tr><td style="%s">%s</td><td style="%s">%s</td><td style="%s">%s</td></tr>`,
			cellStyle, orNA(t.Name), cellStyle, rupees(t.OriginalPrice), cellStyle, rupees(t.DiscountedPrice)))
	}
	b.WriteString(fmt.Sprintf(`<tr><td style="%s"><strong>Total</strong></td><td style="%s"><strong>%s</strong></td><td style="%s"><strong>%s</strong></td></tr>`,
		cellStyle, cellStyle, rupees(totalOriginal), cellStyle, rupees(totalPayable)))
	b.WriteString(`</table>`)
	return b.String()
}

// emailLayout wraps body content in the shared outer markup.
func emailLayout(heading, accent, inner string, p Platform) string {
	return fmt.Sprintf(`<div style="font-family: sans-serif; max-width: 600px;">
<h2 style="color: %s;">%s</h2>
%s
<p style="color: #6b7280; font-size: 12px; margin-top: 20px;">— %s · %s</p>
</div>`, accent, heading, inner, p.Name, p.SupportPhone)
}

const (
	accentBlue  = "#2563eb"
	accentGreen = "#10b981"
	accentRed   = "#dc2626"
)
