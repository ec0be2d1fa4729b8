package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"empdir/internal/domain/directory"
)

// Printer renders salary figures with locale-specific digit grouping.
type Printer struct {
	tag language.Tag
}

func New(locale string) *Printer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	return &Printer{tag: tag}
}

func (p *Printer) Tag() language.Tag {
	return p.tag
}

// Amount formats a known amount as "$85,000" (grouping per locale) and an
// unknown one as "unknown".
func (p *Printer) Amount(amount directory.Amount) string {
	if !amount.Known {
		return "unknown"
	}
	value := amount.Value
	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}
	return sign + "$" + message.NewPrinter(p.tag).Sprintf("%d", value)
}

func (p *Printer) Count(n int) string {
	return message.NewPrinter(p.tag).Sprintf("%d", n)
}
