// File: tokenizer_test.go
// Title: DocumentAI Tokenizer Unit Tests
// Description: Unit tests for the lexical analysis phase. Tests cover tag
//              recognition, text and newline tokens, malformed tag fallback,
//              attribute parsing, and rune-based position tracking.
// Author: TimeToAct
// Version: v0.1.0
// Created: 2026-05-11
// Modified: 2026-05-11
//
// Change History:
// - 2026-05-11 v0.1.0: Initial tokenizer test suite

package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenizer_Tokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "Plain text",
			input: "hello world",
			expected: []Token{
				{Type: TokenText, Value: "hello world", Position: 0, Line: 1, Column: 1},
				{Type: TokenEOF, Position: 11, Line: 1, Column: 12},
			},
		},
		{
			name:  "Simple tags",
			input: "<head>Title</head>",
			expected: []Token{
				{Type: TokenTagOpen, Value: "<head>", Position: 0, Line: 1, Column: 1, TagName: "head"},
				{Type: TokenText, Value: "Title", Position: 6, Line: 1, Column: 7},
				{Type: TokenTagClose, Value: "</head>", Position: 11, Line: 1, Column: 12, TagName: "head"},
				{Type: TokenEOF, Position: 18, Line: 1, Column: 19},
			},
		},
		{
			name:  "Tag with attribute",
			input: `<dict sep="=">`,
			expected: []Token{
				{
					Type: TokenTagOpen, Value: `<dict sep="=">`, Position: 0, Line: 1, Column: 1,
					TagName: "dict", Attributes: map[string]string{"sep": "="},
				},
				{Type: TokenEOF, Position: 14, Line: 1, Column: 15},
			},
		},
		{
			name:  "Text and newlines",
			input: "line one\nline two\n\nend",
			expected: []Token{
				{Type: TokenText, Value: "line one", Position: 0, Line: 1, Column: 1},
				{Type: TokenNewline, Value: "\n", Position: 8, Line: 1, Column: 9},
				{Type: TokenText, Value: "line two", Position: 9, Line: 2, Column: 1},
				{Type: TokenNewline, Value: "\n", Position: 17, Line: 2, Column: 9},
				{Type: TokenNewline, Value: "\n", Position: 18, Line: 3, Column: 1},
				{Type: TokenText, Value: "end", Position: 19, Line: 4, Column: 1},
				{Type: TokenEOF, Position: 22, Line: 4, Column: 4},
			},
		},
		{
			name:  "CRLF is one newline",
			input: "a\r\nb",
			expected: []Token{
				{Type: TokenText, Value: "a", Position: 0, Line: 1, Column: 1},
				{Type: TokenNewline, Value: "\n", Position: 1, Line: 1, Column: 2},
				{Type: TokenText, Value: "b", Position: 3, Line: 2, Column: 1},
				{Type: TokenEOF, Position: 4, Line: 2, Column: 2},
			},
		},
		{
			name:  "Unclosed tag stays text",
			input: "<not closed",
			expected: []Token{
				{Type: TokenText, Value: "<not closed", Position: 0, Line: 1, Column: 1},
				{Type: TokenEOF, Position: 11, Line: 1, Column: 12},
			},
		},
		{
			name:  "Trailing space before bracket stays text",
			input: "<block >",
			expected: []Token{
				{Type: TokenText, Value: "<block >", Position: 0, Line: 1, Column: 1},
				{Type: TokenEOF, Position: 8, Line: 1, Column: 9},
			},
		},
		{
			name:  "Angle brackets in prose",
			input: "a < b > c",
			expected: []Token{
				{Type: TokenText, Value: "a < b > c", Position: 0, Line: 1, Column: 1},
				{Type: TokenEOF, Position: 9, Line: 1, Column: 10},
			},
		},
		{
			name:  "Underscore and digits in tag name",
			input: "<my_tag1>",
			expected: []Token{
				{Type: TokenTagOpen, Value: "<my_tag1>", Position: 0, Line: 1, Column: 1, TagName: "my_tag1"},
				{Type: TokenEOF, Position: 9, Line: 1, Column: 10},
			},
		},
		{
			// Position is in bytes, column is in runes
			name:  "Multi-byte rune column tracking",
			input: "é<b>x",
			expected: []Token{
				{Type: TokenText, Value: "é", Position: 0, Line: 1, Column: 1},
				{Type: TokenTagOpen, Value: "<b>", Position: 2, Line: 1, Column: 2, TagName: "b"},
				{Type: TokenText, Value: "x", Position: 5, Line: 1, Column: 5},
				{Type: TokenEOF, Position: 6, Line: 1, Column: 6},
			},
		},
		{
			name:  "Empty input",
			input: "",
			expected: []Token{
				{Type: TokenEOF, Position: 0, Line: 1, Column: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := NewTokenizer(tt.input).Tokenize()
			if diff := cmp.Diff(tt.expected, tokens); diff != "" {
				t.Errorf("Token stream mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenizer_Attributes(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantName  string
		wantAttrs map[string]string
	}{
		{
			name:      "Single attribute",
			input:     `<list kind=".">`,
			wantName:  "list",
			wantAttrs: map[string]string{"kind": "."},
		},
		{
			name:      "Multiple attributes",
			input:     `<list kind="*" label="main list">`,
			wantName:  "list",
			wantAttrs: map[string]string{"kind": "*", "label": "main list"},
		},
		{
			name:      "Empty attribute value",
			input:     `<dict sep="">`,
			wantName:  "dict",
			wantAttrs: map[string]string{"sep": ""},
		},
		{
			name:      "Attribute text without pairs",
			input:     `<dict -->`,
			wantName:  "dict",
			wantAttrs: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewTokenizer(tt.input).Next()
			if tok.Type != TokenTagOpen {
				t.Fatalf("Expected TAG_OPEN, got %s", tok.Type)
			}
			if tok.TagName != tt.wantName {
				t.Errorf("Expected tag name %q, got %q", tt.wantName, tok.TagName)
			}
			if diff := cmp.Diff(tt.wantAttrs, tok.Attributes); diff != "" {
				t.Errorf("Attribute mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenizer_NextAfterEOF(t *testing.T) {
	tok := NewTokenizer("x")

	if got := tok.Next(); got.Type != TokenText {
		t.Fatalf("Expected TEXT, got %s", got.Type)
	}
	for i := 0; i < 3; i++ {
		if got := tok.Next(); got.Type != TokenEOF {
			t.Errorf("Expected EOF on call %d, got %s", i+1, got.Type)
		}
	}
}

func TestToken_String(t *testing.T) {
	tests := []struct {
		name     string
		token    Token
		expected string
	}{
		{"Open tag", Token{Type: TokenTagOpen, TagName: "block"}, "TAG_OPEN(block)"},
		{"Close tag", Token{Type: TokenTagClose, TagName: "dict"}, "TAG_CLOSE(dict)"},
		{"Text", Token{Type: TokenText, Value: "hi"}, "TEXT(hi)"},
		{"EOF", Token{Type: TokenEOF}, "EOF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.token.String(); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}
