package calcbrain

import "strconv"

// LexError indicates a malformed word. It implements InputError.
type LexError struct {
	// Text is the word the scanner was reading when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of word the scanner was reading. Currently this is
	// always "number".
	Kind string
	// Col is the total number of runes scanned up to and including this
	// error.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid word at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the rune that caused the error.
	Pos() int
}

var _ InputError = (*LexError)(nil)
