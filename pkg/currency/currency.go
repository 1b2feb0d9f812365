// Package currency formats integer RWF amounts with the thousands
// separators of the configured locale.
package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Formatter struct {
	p *message.Printer
}

// NewFormatter builds a formatter for the given BCP 47 locale tag.
// An unparseable tag falls back to the root locale.
func NewFormatter(locale string) Formatter {
	return Formatter{message.NewPrinter(language.Make(locale))}
}

// Amount renders the bare grouped number, e.g. 12500 -> "12,500".
func (f Formatter) Amount(v int64) string {
	return f.p.Sprintf("%d", v)
}

// RWF renders the amount with the currency suffix.
func (f Formatter) RWF(v int64) string {
	return f.Amount(v) + " RWF"
}
