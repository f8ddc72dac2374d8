package caser

import "strings"

// Word is one semantic token extracted from an identifier. The original
// character casing is preserved; case normalization happens only at render
// time.
type Word struct {
	// Text holds the token's characters as they appeared in the input.
	Text string

	// attached marks a word that followed its predecessor with no explicit
	// separator or casing boundary, such as the digit run in "v2". Separator
	// styles emit no separator before an attached word, so "v2" survives a
	// snake_case round trip as "v2" rather than "v_2". Attachment is a
	// rendering hint only; it does not participate in equality.
	attached bool
}

// WordSequence is the ordered list of words produced by tokenizing one input
// string. It is created per conversion call and never persisted.
type WordSequence []Word

// Strings returns the word texts in order.
func (ws WordSequence) Strings() []string {
	if len(ws) == 0 {
		return nil
	}
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.Text
	}
	return out
}

// Equal reports whether both sequences contain the same word texts in the
// same order. Comparison is case-sensitive.
func (ws WordSequence) Equal(other WordSequence) bool {
	if len(ws) != len(other) {
		return false
	}
	for i := range ws {
		if ws[i].Text != other[i].Text {
			return false
		}
	}
	return true
}

// EqualFold reports whether both sequences contain the same word texts in the
// same order under Unicode case-folding. This is the equivalence used by the
// cross-style round-trip guarantee, since rendering normalizes letter case.
func (ws WordSequence) EqualFold(other WordSequence) bool {
	if len(ws) != len(other) {
		return false
	}
	for i := range ws {
		if !strings.EqualFold(ws[i].Text, other[i].Text) {
			return false
		}
	}
	return true
}

// String returns the word texts joined by single spaces, which is convenient
// for diagnostics and log attributes.
func (ws WordSequence) String() string {
	return strings.Join(ws.Strings(), " ")
}
