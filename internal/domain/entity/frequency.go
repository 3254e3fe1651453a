// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Frequency is the recurrence schedule of a financial record.
// The zero value is FrequencyOneTime.
type Frequency int

const (
	FrequencyOneTime Frequency = iota
	FrequencyMonthlyFixed
	FrequencyMonthlyFixedTerm
	FrequencyAnnualFixed
	FrequencyAnnualFixedTerm
)

// frequencyLabels maps each frequency to the label used by the source system (Portuguese).
var frequencyLabels = map[Frequency]string{
	FrequencyOneTime:          "Única",
	FrequencyMonthlyFixed:     "Mensal Fixo",
	FrequencyMonthlyFixedTerm: "Mensal Tempo Determinado",
	FrequencyAnnualFixed:      "Anual Fixo",
	FrequencyAnnualFixedTerm:  "Anual Tempo Determinado",
}

// Label returns the canonical label for the frequency.
func (f Frequency) Label() string {
	if label, ok := frequencyLabels[f]; ok {
		return label
	}
	return frequencyLabels[FrequencyOneTime]
}

// String implements fmt.Stringer.
func (f Frequency) String() string {
	return f.Label()
}

// IsFixedTerm reports whether the frequency has a finite number of installments.
func (f Frequency) IsFixedTerm() bool {
	return f == FrequencyMonthlyFixedTerm || f == FrequencyAnnualFixedTerm
}

// IsRecurring reports whether the frequency produces more than one installment.
func (f Frequency) IsRecurring() bool {
	return f != FrequencyOneTime
}

// ParseFrequency classifies a free-text frequency label. Matching is case and
// accent insensitive and based on substrings, as the source system stores
// labels like "Mensal Fixo" or "anual tempo determinado". Anything that is
// neither monthly nor annual is one-time.
func ParseFrequency(label string) Frequency {
	folded := FoldLabel(label)

	term := strings.Contains(folded, "tempo determinado")

	switch {
	case strings.Contains(folded, "mensal"):
		if term {
			return FrequencyMonthlyFixedTerm
		}
		return FrequencyMonthlyFixed
	case strings.Contains(folded, "anual"):
		if term {
			return FrequencyAnnualFixedTerm
		}
		return FrequencyAnnualFixed
	default:
		return FrequencyOneTime
	}
}

// FoldLabel lowercases the label, strips diacritics and collapses whitespace.
func FoldLabel(label string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, label)
	if err != nil {
		folded = label
	}
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}
