// File: doc.go
// Title: Parser Package Documentation
// Description: Implements the tokenizer and recursive descent parser for the
//              TimeToAct DocumentAI plain-text format. Converts raw document
//              text into document trees with position-aware error reporting.
// Author: TimeToAct
// Version: v0.1.0
// Created: 2026-05-11
// Modified: 2026-05-11
//
// Change History:
// - 2026-05-11 v0.1.0: Initial parser implementation

/*
Package parser converts TimeToAct DocumentAI text into document trees.

The package implements two stages:

  • Tokenizer — a single left-to-right scan producing tag-open, tag-close,
    text, newline, and EOF tokens, each carrying a 1-based line and column.
    The tokenizer never fails; malformed tag-like text degrades to plain
    text tokens.
  • Parser — a recursive descent parser with one-token lookahead that builds
    the document.Block tree. All failures are reported as *ParseError with
    the offending token's position; no partial tree is ever returned.

Parsing is deterministic and single-pass. The only re-entrancy is the
embedded sub-parse used for <dict> regions inside ordered list items, which
runs a fresh Tokenizer and Parser over a substring.
*/
package parser
