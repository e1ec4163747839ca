// File: docai.go
// Title: DocumentAI Main Interface
// Description: Provides the high-level API for parsing TimeToAct DocumentAI
//              text into document trees and validating documents without
//              keeping the result.
// Author: TimeToAct
// Version: v0.1.0
// Created: 2026-05-11
// Modified: 2026-05-11
//
// Change History:
// - 2026-05-11 v0.1.0: Initial high-level API

/*
Package docai parses the TimeToAct DocumentAI plain-text format.

	root, err := docai.Parse(text)
	if err != nil {
		// *parser.ParseError with 1-based line and column
	}
	out, err := document.EncodeJSON(root, true)

See the parser package for the tokenizer and grammar, and the document
package for the node model and JSON mapping.
*/
package docai

import (
	"github.com/timetoact/docai/document"
	"github.com/timetoact/docai/parser"
)

// Parse parses DocumentAI text into a document tree. The root of the tree is
// always a Block. On failure it returns a *parser.ParseError and no tree.
func Parse(text string) (*document.Block, error) {
	p, err := parser.New(parser.Options{})
	if err != nil {
		return nil, err
	}
	return p.Parse(text)
}

// Validate checks whether text is a well-formed DocumentAI document
func Validate(text string) error {
	_, err := Parse(text)
	return err
}
