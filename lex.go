package calcbrain

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Word is one unit of RPN text.
type Word struct {
	// Text is the word as written.
	Text string
	// Kind is the lexical class of the word.
	Kind WordKind
	// Pos is the 1-based rune offset of the start of the word.
	Pos int
}

func (w Word) String() string {
	return w.Kind.String() + ":" + w.Text + "@" + strconv.Itoa(w.Pos)
}

// WordKind is the lexical class of a word.
type WordKind int8

const (
	WordNone WordKind = iota
	// WordNum is a number literal, including inf and ∞.
	WordNum
	// WordIdent is a run of letters, digits, and underscores beginning with a
	// letter or underscore, e.g. cos or π.
	WordIdent
	// WordSym is any other single rune, e.g. × or +.
	WordSym
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=WordKind -trimprefix=Word
//go:generate go mod tidy

// Scanner splits RPN text into words. Words are separated by whitespace, and
// a symbol rune also ends a number or identifier, so "3 4×" is three words.
type Scanner struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
}

// NewScanner creates a scanner reading from src.
func NewScanner(src io.RuneScanner) *Scanner {
	return &Scanner{
		src:  src,
		rune: 1,
	}
}

// readRune reads a rune from the src and updates the scanner's position info.
func (l *Scanner) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the scanner's position
// info. Panics if unreading returns an error.
func (l *Scanner) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// Next scans the next word. At the end of the input, the error is io.EOF. If
// the word is a malformed number, the error is a *LexError, and the following
// call to Next resumes after the offending rune.
func (l *Scanner) Next() (Word, error) {
	defer l.buf.Reset()
	w := Word{Pos: l.rune}
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return w, io.EOF
			}
			return w, err
		}
		switch {
		case unicode.IsSpace(r):
			w.Pos++
			continue
		case '0' <= r && r <= '9', r == '.':
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return w, err
			}
			w.Text = l.buf.String()
			w.Kind = WordNum
			return w, nil
		case r == '_', unicode.IsLetter(r):
			l.unreadRune()
			if err := l.scanIdent(); err != nil {
				return w, err
			}
			w.Text = l.buf.String()
			// inf looks like an identifier, so check for it here.
			switch w.Text {
			case "inf", "Inf":
				w.Kind = WordNum
			default:
				w.Kind = WordIdent
			}
			return w, nil
		case r == '∞':
			w.Text = "∞"
			w.Kind = WordNum
			return w, nil
		default:
			w.Text = string(r)
			w.Kind = WordSym
			return w, nil
		}
	}
}

// issym reports whether r ends a number or identifier as the start of a
// symbol word.
func issym(r rune) bool {
	return r != '_' && r != '.' && !unicode.IsSpace(r) && !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func (l *Scanner) scanNum() error {
	var dig, dot, e, le, ed bool
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if unicode.IsSpace(r) {
			l.unreadRune()
			break
		}
		if r == '+' || r == '-' {
			// + or - anywhere other than immediately following an exponent
			// marker starts a new word.
			if !le {
				l.unreadRune()
				break
			}
			le = false
			l.buf.WriteRune(r)
			continue
		}
		if issym(r) {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
		switch r {
		case '.':
			if dot || e {
				return l.error("number")
			}
			dot = true
			le = false
		case 'e', 'E':
			if !dig || e {
				return l.error("number")
			}
			e = true
			le = true
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			if e {
				ed = true
			} else {
				dig = true
			}
			le = false
		default:
			return l.error("number")
		}
	}
	if (!dig && !ed) || (e && !ed) {
		return l.error("number")
	}
	return nil
}

func (l *Scanner) scanIdent() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// Next unreads the rune that decides ident scanning before
				// calling scanIdent, so we have scanned at least one rune.
				return nil
			}
			return err
		}
		switch {
		case r == '_', unicode.IsLetter(r), unicode.IsDigit(r):
			l.buf.WriteRune(r)
		default:
			l.unreadRune()
			return nil
		}
	}
}

func (l *Scanner) error(kind string) error {
	return &LexError{
		Text: l.buf.String(),
		Kind: kind,
		Col:  l.rune,
	}
}
