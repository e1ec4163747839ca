// File: tokenizer.go
// Title: DocumentAI Tokenizer
// Description: Implements the lexical analysis phase of DocumentAI parsing.
//              Scans raw document text into a stream of tag, text, and
//              newline tokens with 1-based line/column positions for error
//              reporting.
// Author: TimeToAct
// Version: v0.1.0
// Created: 2026-05-11
// Modified: 2026-05-11
//
// Change History:
// - 2026-05-11 v0.1.0: Initial tokenizer implementation

package parser

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	// TokenEOF terminates every token stream exactly once
	TokenEOF TokenType = iota

	// TokenTagOpen is an opening tag such as <block> or <dict sep=":">
	TokenTagOpen

	// TokenTagClose is a closing tag such as </block>
	TokenTagClose

	// TokenText is a maximal run of characters that is neither a tag nor a
	// newline, verbatim and without normalization
	TokenText

	// TokenNewline is a single line break; \r\n and \n both canonicalize to
	// a token with value "\n"
	TokenNewline
)

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenTagOpen:
		return "TAG_OPEN"
	case TokenTagClose:
		return "TAG_CLOSE"
	case TokenText:
		return "TEXT"
	case TokenNewline:
		return "NEWLINE"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token with position information
type Token struct {
	Type       TokenType         // Token type
	Value      string            // Token text (raw tag text for tags)
	Position   int               // Byte position in input
	Line       int               // Line number (1-based)
	Column     int               // Column number (1-based)
	TagName    string            // Tag name for tag tokens
	Attributes map[string]string // key="value" attributes for tag tokens
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenTagOpen, TokenTagClose:
		return fmt.Sprintf("%s(%s)", t.Type.String(), t.TagName)
	default:
		return fmt.Sprintf("%s(%s)", t.Type.String(), t.Value)
	}
}

// Tokenizer performs lexical analysis of DocumentAI text
type Tokenizer struct {
	input  string // Input text
	pos    int    // Current byte position in input
	line   int    // Current line number (1-based)
	column int    // Current column number (1-based, counted in runes)
}

// NewTokenizer creates a new tokenizer for the given input
func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{
		input:  input,
		line:   1,
		column: 1,
	}
}

// Next returns the next token from the input. Once the input is exhausted it
// returns TokenEOF tokens indefinitely.
func (t *Tokenizer) Next() Token {
	if t.pos >= len(t.input) {
		return Token{Type: TokenEOF, Position: t.pos, Line: t.line, Column: t.column}
	}

	if length, closing, name, attrs, ok := t.matchTag(); ok {
		return t.readTag(length, closing, name, attrs)
	}
	if c := t.input[t.pos]; c == '\n' || c == '\r' {
		return t.readNewline()
	}
	return t.readText()
}

// Tokenize returns all tokens from the input as a slice, including the
// terminating EOF token. Tokenization has no error paths.
func (t *Tokenizer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := t.Next()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens
		}
	}
}

// matchTag checks whether the current position starts a well-formed tag:
// '<', optional '/', one or more word characters, optionally whitespace
// followed by attribute text, then '>'. Anything else falls through to text.
func (t *Tokenizer) matchTag() (length int, closing bool, name string, attrs string, ok bool) {
	in := t.input
	i := t.pos
	if in[i] != '<' {
		return 0, false, "", "", false
	}
	i++

	if i < len(in) && in[i] == '/' {
		closing = true
		i++
	}

	nameStart := i
	for i < len(in) {
		r, size := utf8.DecodeRuneInString(in[i:])
		if !isWordRune(r) {
			break
		}
		i += size
	}
	if i == nameStart {
		return 0, false, "", "", false
	}
	name = in[nameStart:i]

	if i < len(in) && in[i] == '>' {
		return i + 1 - t.pos, closing, name, "", true
	}

	// Attribute section: at least one whitespace rune followed by at least
	// one more character before the closing '>'.
	if i < len(in) {
		r, size := utf8.DecodeRuneInString(in[i:])
		if unicode.IsSpace(r) {
			j := i
			for j < len(in) && in[j] != '>' {
				j++
			}
			if j < len(in) && j-i > size {
				return j + 1 - t.pos, closing, name, in[i:j], true
			}
		}
	}

	return 0, false, "", "", false
}

// readTag reads a tag token of the given byte length
func (t *Tokenizer) readTag(length int, closing bool, name string, attrs string) Token {
	tokenType := TokenTagOpen
	if closing {
		tokenType = TokenTagClose
	}

	tok := Token{
		Type:     tokenType,
		Value:    t.input[t.pos : t.pos+length],
		Position: t.pos,
		Line:     t.line,
		Column:   t.column,
		TagName:  name,
	}
	if attrs != "" {
		tok.Attributes = parseAttributes(attrs)
	}

	t.advance(length)
	return tok
}

// readNewline reads a newline token, consuming \r\n as one occurrence
func (t *Tokenizer) readNewline() Token {
	tok := Token{
		Type:     TokenNewline,
		Value:    "\n",
		Position: t.pos,
		Line:     t.line,
		Column:   t.column,
	}

	if t.input[t.pos] == '\r' && t.pos+1 < len(t.input) && t.input[t.pos+1] == '\n' {
		t.advance(2)
	} else {
		t.advance(1)
	}

	return tok
}

// readText reads text until the next well-formed tag or newline
func (t *Tokenizer) readText() Token {
	start := t.pos
	startLine := t.line
	startColumn := t.column

	for t.pos < len(t.input) {
		c := t.input[t.pos]
		if c == '\n' || c == '\r' {
			break
		}
		if c == '<' {
			if _, _, _, _, ok := t.matchTag(); ok {
				break
			}
		}
		_, size := utf8.DecodeRuneInString(t.input[t.pos:])
		t.advance(size)
	}

	return Token{
		Type:     TokenText,
		Value:    t.input[start:t.pos],
		Position: start,
		Line:     startLine,
		Column:   startColumn,
	}
}

// advance consumes n bytes, tracking line and column per rune
func (t *Tokenizer) advance(n int) {
	end := t.pos + n
	for t.pos < end && t.pos < len(t.input) {
		r, size := utf8.DecodeRuneInString(t.input[t.pos:])
		if r == '\n' {
			t.line++
			t.column = 1
		} else {
			t.column++
		}
		t.pos += size
	}
}

// parseAttributes extracts key="value" pairs from a tag's attribute text.
// Values are taken verbatim between double quotes; there is no escaping.
func parseAttributes(attrs string) map[string]string {
	result := make(map[string]string)
	i := 0
	for i < len(attrs) {
		r, size := utf8.DecodeRuneInString(attrs[i:])
		if !isWordRune(r) {
			i += size
			continue
		}

		keyStart := i
		for i < len(attrs) {
			r, size := utf8.DecodeRuneInString(attrs[i:])
			if !isWordRune(r) {
				break
			}
			i += size
		}
		key := attrs[keyStart:i]

		if !strings.HasPrefix(attrs[i:], `="`) {
			continue
		}
		i += 2
		end := strings.IndexByte(attrs[i:], '"')
		if end < 0 {
			break
		}
		result[key] = attrs[i : i+end]
		i += end + 1
	}
	return result
}

// isWordRune reports whether r is a word character (letter, digit, or
// underscore), matching the characters allowed in tag and attribute names
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
