package jstext

import (
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// DecodeError reports text that could not be parsed under the relaxed
// grammar, carrying the offending region so callers can log or skip it.
type DecodeError struct {
	Offset int
	Text   string
	Msg    string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error at offset %d: %s: %q", e.Offset, e.Msg, e.Text)
}

func decodeErrorAt(src string, offset int, msg string) *DecodeError {
	snippet := src[offset:]
	if len(snippet) > 40 {
		snippet = snippet[:40]
	}
	return &DecodeError{Offset: offset, Text: snippet, Msg: msg}
}

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokLBracket
	tokRBracket
	tokLBrace
	tokRBrace
	tokColon
	tokComma
	tokString
	tokNumber
	tokIdent
)

type token struct {
	kind   tokenKind
	text   string // decoded payload for strings, raw text otherwise
	offset int
}

type lexer struct {
	src string
	pos int
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case ' ', '\t', '\n', '\r':
			l.pos++
		default:
			return
		}
	}
}

func (l *lexer) next() (token, error) {
	l.skipSpace()
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, offset: l.pos}, nil
	}

	start := l.pos
	ch := l.src[l.pos]
	switch ch {
	case '[':
		l.pos++
		return token{kind: tokLBracket, text: "[", offset: start}, nil
	case ']':
		l.pos++
		return token{kind: tokRBracket, text: "]", offset: start}, nil
	case '{':
		l.pos++
		return token{kind: tokLBrace, text: "{", offset: start}, nil
	case '}':
		l.pos++
		return token{kind: tokRBrace, text: "}", offset: start}, nil
	case ':':
		l.pos++
		return token{kind: tokColon, text: ":", offset: start}, nil
	case ',':
		l.pos++
		return token{kind: tokComma, text: ",", offset: start}, nil
	case '\'', '"':
		return l.lexString()
	}

	if ch == '-' || ch == '+' || ch == '.' || (ch >= '0' && ch <= '9') {
		return l.lexNumber()
	}
	if isIdentStart(ch) {
		return l.lexIdent()
	}

	return token{}, decodeErrorAt(l.src, l.pos, fmt.Sprintf("unexpected character %q", ch))
}

func (l *lexer) lexString() (token, error) {
	start := l.pos
	quote := l.src[l.pos]
	l.pos++

	var out strings.Builder
	for l.pos < len(l.src) {
		ch := l.src[l.pos]
		if ch == quote {
			l.pos++
			return token{kind: tokString, text: out.String(), offset: start}, nil
		}
		if ch != '\\' {
			out.WriteByte(ch)
			l.pos++
			continue
		}

		// escape sequence
		l.pos++
		if l.pos >= len(l.src) {
			break
		}
		esc := l.src[l.pos]
		l.pos++
		switch esc {
		case 'n':
			out.WriteByte('\n')
		case 't':
			out.WriteByte('\t')
		case 'r':
			out.WriteByte('\r')
		case 'b':
			out.WriteByte('\b')
		case 'f':
			out.WriteByte('\f')
		case 'u':
			r, err := l.lexUnicodeEscape(start)
			if err != nil {
				return token{}, err
			}
			out.WriteRune(r)
		default:
			// covers \\, \', \", \/ and any other escaped literal
			out.WriteByte(esc)
		}
	}

	return token{}, decodeErrorAt(l.src, start, "unterminated string")
}

func (l *lexer) lexUnicodeEscape(stringStart int) (rune, error) {
	r, err := l.lexHex4(stringStart)
	if err != nil {
		return 0, err
	}
	if utf16.IsSurrogate(r) && l.pos+1 < len(l.src) && l.src[l.pos] == '\\' && l.src[l.pos+1] == 'u' {
		l.pos += 2
		r2, err := l.lexHex4(stringStart)
		if err != nil {
			return 0, err
		}
		if combined := utf16.DecodeRune(r, r2); combined != utf8.RuneError {
			return combined, nil
		}
	}
	return r, nil
}

func (l *lexer) lexHex4(stringStart int) (rune, error) {
	if l.pos+4 > len(l.src) {
		return 0, decodeErrorAt(l.src, stringStart, "truncated unicode escape")
	}
	var r rune
	for i := 0; i < 4; i++ {
		c := l.src[l.pos]
		switch {
		case c >= '0' && c <= '9':
			r = r<<4 | rune(c-'0')
		case c >= 'a' && c <= 'f':
			r = r<<4 | rune(c-'a'+10)
		case c >= 'A' && c <= 'F':
			r = r<<4 | rune(c-'A'+10)
		default:
			return 0, decodeErrorAt(l.src, stringStart, "invalid unicode escape")
		}
		l.pos++
	}
	return r, nil
}

func (l *lexer) lexNumber() (token, error) {
	start := l.pos
	if c := l.src[l.pos]; c == '-' || c == '+' {
		l.pos++
	}
	digits := 0
	for l.pos < len(l.src) && l.src[l.pos] >= '0' && l.src[l.pos] <= '9' {
		l.pos++
		digits++
	}
	if l.pos < len(l.src) && l.src[l.pos] == '.' {
		l.pos++
		for l.pos < len(l.src) && l.src[l.pos] >= '0' && l.src[l.pos] <= '9' {
			l.pos++
			digits++
		}
	}
	if digits == 0 {
		return token{}, decodeErrorAt(l.src, start, "malformed number")
	}
	if l.pos < len(l.src) && (l.src[l.pos] == 'e' || l.src[l.pos] == 'E') {
		l.pos++
		if l.pos < len(l.src) && (l.src[l.pos] == '-' || l.src[l.pos] == '+') {
			l.pos++
		}
		expDigits := 0
		for l.pos < len(l.src) && l.src[l.pos] >= '0' && l.src[l.pos] <= '9' {
			l.pos++
			expDigits++
		}
		if expDigits == 0 {
			return token{}, decodeErrorAt(l.src, start, "malformed exponent")
		}
	}
	return token{kind: tokNumber, text: l.src[start:l.pos], offset: start}, nil
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func (l *lexer) lexIdent() (token, error) {
	start := l.pos
	for l.pos < len(l.src) && isIdentPart(l.src[l.pos]) {
		l.pos++
	}
	return token{kind: tokIdent, text: l.src[start:l.pos], offset: start}, nil
}
