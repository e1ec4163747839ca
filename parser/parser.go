// File: parser.go
// Title: DocumentAI Recursive Descent Parser
// Description: Implements the parsing phase of DocumentAI processing.
//              Converts token streams into document trees using recursive
//              descent with one-token lookahead, including the ordered-list
//              nesting algorithm and the unordered bullet algorithm.
// Author: TimeToAct
// Version: v0.1.0
// Created: 2026-05-11
// Modified: 2026-05-11
//
// Change History:
// - 2026-05-11 v0.1.0: Initial parser implementation

package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/timetoact/docai/document"
	"github.com/timetoact/docai/internal/log"
)

// orderedItemPattern matches a dotted numeric prefix such as "2.1. " at the
// start of an ordered list line, capturing the number and the item text.
var orderedItemPattern = regexp.MustCompile(`^(\d+(?:\.\d+)*)\.\s+(.*)$`)

// bulletMarker opens a top-level unordered list item. The marker set is
// fixed: the bullet glyph plus space, and "o " for single-level sub-items.
const bulletMarker = "• "

// ParseError represents a parsing error with position information
type ParseError struct {
	Message string // Human-readable description
	Line    int    // Line number of the offending token (1-based)
	Column  int    // Column number of the offending token (1-based)
	Token   Token  // The offending token
}

func (pe *ParseError) Error() string {
	return fmt.Sprintf("%s at line %d, column %d", pe.Message, pe.Line, pe.Column)
}

// newParseError creates a parse error positioned at the given token
func newParseError(message string, token Token) *ParseError {
	return &ParseError{
		Message: message,
		Line:    token.Line,
		Column:  token.Column,
		Token:   token,
	}
}

// Parser implements recursive descent parsing for DocumentAI text
type Parser struct {
	tokenizer *Tokenizer
	current   Token // Current token (one-token lookahead)
	previous  Token // Previous token
	logger    *log.Logger
	options   Options
}

// Options configures parser behavior
type Options struct {
	Logger *log.Logger
}

// New creates a new DocumentAI parser with the given options
func New(opts Options) (*Parser, error) {
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "docai-parser"),
		options: opts,
	}, nil
}

// Parse parses DocumentAI text and returns the root block of the document
// tree. On failure it returns a *ParseError and no tree.
func (p *Parser) Parse(input string) (*document.Block, error) {
	p.tokenizer = NewTokenizer(input)
	p.advance() // Load first token

	p.logger.Debug("starting document parse", log.Fields{
		"length": len(input),
	})

	root := document.NewBlock()

	// The document may open with a head tag before any content
	if p.isOpeningTag("head") {
		head, err := p.parseHead()
		if err != nil {
			p.logger.Warn("document parse failed", log.Fields{"error": err.Error()})
			return nil, err
		}
		root.SetHead(head)
	}

	body, err := p.parseContent("")
	if err != nil {
		p.logger.Warn("document parse failed", log.Fields{"error": err.Error()})
		return nil, err
	}
	root.Body = body

	p.logger.Debug("document parse completed", log.Fields{
		"elements": document.CountElements(root),
	})

	return root, nil
}

// parseContent parses a run of content nodes. When untilTag is non-empty the
// run ends at the matching closing tag (left unconsumed); otherwise it ends
// at EOF.
func (p *Parser) parseContent(untilTag string) ([]document.ContentNode, error) {
	content := []document.ContentNode{}
	var buffer []string

	for p.current.Type != TokenEOF {
		if untilTag != "" && p.isClosingTag(untilTag) {
			break
		}

		switch {
		case p.isOpeningTag("head"):
			// head is consumed by the root/block logic before content
			// parsing begins; here it can only be misplaced
			return nil, newParseError("Unexpected head tag in content", p.current)

		case p.isOpeningTag("block"):
			flushText(&buffer, &content)
			block, err := p.parseBlock()
			if err != nil {
				return nil, err
			}
			content = append(content, block)

		case p.isOpeningTag("dict"):
			flushText(&buffer, &content)
			dict, err := p.parseDict()
			if err != nil {
				return nil, err
			}
			content = append(content, dict)

		case p.isOpeningTag("list"):
			flushText(&buffer, &content)
			list, err := p.parseList()
			if err != nil {
				return nil, err
			}
			content = append(content, list)

		case p.current.Type == TokenText:
			buffer = append(buffer, p.current.Value)
			p.advance()

		case p.current.Type == TokenNewline:
			buffer = append(buffer, "\n")
			p.advance()

		default:
			// stray token, e.g. an unmatched closing tag
			p.advance()
		}
	}

	flushText(&buffer, &content)
	return content, nil
}

// flushText converts buffered text into paragraph nodes. The buffer is
// joined, trimmed, and split on blank lines; each non-empty trimmed
// paragraph becomes one Text node.
func flushText(buffer *[]string, content *[]document.ContentNode) {
	if len(*buffer) == 0 {
		return
	}

	text := strings.TrimSpace(strings.Join(*buffer, ""))
	if text != "" {
		for _, paragraph := range strings.Split(text, "\n\n") {
			paragraph = strings.TrimSpace(paragraph)
			if paragraph != "" {
				*content = append(*content, document.Text(paragraph))
			}
		}
	}

	*buffer = (*buffer)[:0]
}

// parseHead parses a head region and returns its trimmed text content.
// Newlines inside the head act as separators only and are not preserved.
func (p *Parser) parseHead() (string, error) {
	if err := p.expectTag("head", false); err != nil {
		return "", err
	}

	var headText []string
	for !p.isClosingTag("head") {
		if p.current.Type == TokenText {
			headText = append(headText, p.current.Value)
		} else if p.current.Type == TokenEOF {
			return "", newParseError("Unexpected EOF in head tag", p.current)
		}
		p.advance()
	}

	if err := p.expectTag("head", true); err != nil {
		return "", err
	}
	return strings.TrimSpace(strings.Join(headText, "")), nil
}

// parseBlock parses a block element with optional head and nested content
func (p *Parser) parseBlock() (*document.Block, error) {
	if err := p.expectTag("block", false); err != nil {
		return nil, err
	}
	block := document.NewBlock()

	// Skip any newlines after the opening block tag
	for p.current.Type == TokenNewline {
		p.advance()
	}

	if p.isOpeningTag("head") {
		head, err := p.parseHead()
		if err != nil {
			return nil, err
		}
		block.SetHead(head)
	}

	body, err := p.parseContent("block")
	if err != nil {
		return nil, err
	}
	block.Body = body

	if err := p.expectTag("block", true); err != nil {
		return nil, err
	}
	return block, nil
}

// parseDict parses a dict region into key/value pairs. Each line becomes one
// entry, split on the first occurrence of the separator (default ":", or the
// sep attribute). A line without the separator becomes a key with an empty
// value. Later duplicate keys overwrite earlier ones.
func (p *Parser) parseDict() (*document.Dictionary, error) {
	tagToken := p.current
	if err := p.expectTag("dict", false); err != nil {
		return nil, err
	}

	separator := ":"
	if sep, ok := tagToken.Attributes["sep"]; ok {
		separator = sep
	}

	dict := document.NewDictionary()
	var lines []string
	var currentLine []string

	for !p.isClosingTag("dict") {
		switch p.current.Type {
		case TokenText:
			currentLine = append(currentLine, p.current.Value)
		case TokenNewline:
			if len(currentLine) > 0 {
				lines = append(lines, strings.TrimSpace(strings.Join(currentLine, "")))
				currentLine = currentLine[:0]
			}
		case TokenEOF:
			return nil, newParseError("Unexpected EOF in dict tag", p.current)
		}
		p.advance()
	}
	if len(currentLine) > 0 {
		lines = append(lines, strings.TrimSpace(strings.Join(currentLine, "")))
	}

	for _, line := range lines {
		if line == "" {
			continue
		}
		if strings.Contains(line, separator) {
			parts := strings.SplitN(line, separator, 2)
			dict.Set(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
		} else {
			dict.Set(line, "")
		}
	}

	if err := p.expectTag("dict", true); err != nil {
		return nil, err
	}
	return dict, nil
}

// parseList parses a list region. The raw content between the list tags is
// collected verbatim (tags included as text), then split into lines and
// handed to the ordered or unordered line algorithm depending on the kind
// attribute (default "."). An unknown kind yields an empty list.
func (p *Parser) parseList() (*document.ListBlock, error) {
	tagToken := p.current
	if err := p.expectTag("list", false); err != nil {
		return nil, err
	}

	kind := "."
	if k, ok := tagToken.Attributes["kind"]; ok {
		kind = k
	}

	var parts []string
	for !p.isClosingTag("list") {
		switch p.current.Type {
		case TokenEOF:
			return nil, newParseError("Unexpected EOF in list tag", p.current)
		case TokenText, TokenTagOpen, TokenTagClose:
			parts = append(parts, p.current.Value)
		case TokenNewline:
			parts = append(parts, "\n")
		}
		p.advance()
	}

	if err := p.expectTag("list", true); err != nil {
		return nil, err
	}

	lines := strings.Split(strings.TrimSpace(strings.Join(parts, "")), "\n")
	return p.processListLines(lines, kind)
}

// processListLines dispatches list lines to the matching algorithm
func (p *Parser) processListLines(lines []string, kind string) (*document.ListBlock, error) {
	switch kind {
	case ".":
		return p.processOrderedList(lines)
	case "*":
		return p.processUnorderedList(lines), nil
	default:
		return document.NewListBlock(), nil
	}
}

// processOrderedList builds nested list structure from dotted numeric
// prefixes. The dot count of an item's number is its nesting level; a stack
// of open ancestors decides where each item attaches. Numbers are purely
// structural, gaps and repeats are accepted as written.
func (p *Parser) processOrderedList(lines []string) (*document.ListBlock, error) {
	type stackEntry struct {
		number string
		item   *document.Block
	}

	root := document.NewListBlock()
	var stack []stackEntry
	i := 0

	for i < len(lines) {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			i++
			continue
		}

		if match := orderedItemPattern.FindStringSubmatch(line); match != nil {
			number, text := match[1], match[2]

			item := document.NewBlock()
			item.SetNumber(number)
			item.SetHead(text)
			level := strings.Count(number, ".")

			// Close every open ancestor at this level or deeper
			for len(stack) > 0 && strings.Count(stack[len(stack)-1].number, ".") >= level {
				stack = stack[:len(stack)-1]
			}

			if len(stack) == 0 {
				root.Append(item)
			} else {
				parent := stack[len(stack)-1].item
				if nested, ok := parent.LastListBlock(); ok {
					nested.Append(item)
				} else {
					parent.Append(document.NewListBlock(item))
				}
			}

			stack = append(stack, stackEntry{number: number, item: item})
			i++
			continue
		}

		if len(stack) == 0 {
			// Continuation line with no open item is discarded
			i++
			continue
		}

		item := stack[len(stack)-1].item
		if strings.Contains(line, "<dict") {
			// Collect the whole dict region, through the line holding the
			// closing tag, and parse it as a standalone document
			dictLines := []string{line}
			j := i + 1
			for j < len(lines) && !strings.Contains(dictLines[len(dictLines)-1], "</dict>") {
				dictLines = append(dictLines, lines[j])
				j++
			}

			sub, err := New(Options{Logger: p.options.Logger})
			if err != nil {
				return nil, err
			}
			parsed, err := sub.Parse(strings.Join(dictLines, "\n"))
			if err != nil {
				return nil, err
			}
			item.Body = append(item.Body, parsed.Body...)

			i = j
		} else {
			item.Append(document.Text(line))
			i++
		}
	}

	return root, nil
}

// processUnorderedList builds list structure from bullet markers. A bullet
// line opens a new top-level item, an "o " line nests one level under the
// open item, any other line attaches as text to the open item. Lines before
// the first bullet are discarded.
func (p *Parser) processUnorderedList(lines []string) *document.ListBlock {
	list := document.NewListBlock()
	var current *document.Block

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, bulletMarker):
			if current != nil {
				list.Append(current)
			}
			current = document.NewBlock()
			current.SetHead(strings.TrimSpace(strings.TrimPrefix(line, bulletMarker)))

		case strings.HasPrefix(line, "o ") && current != nil:
			sub := document.NewBlock()
			sub.SetHead(strings.TrimSpace(strings.TrimPrefix(line, "o ")))
			if nested, ok := current.LastListBlock(); ok {
				nested.Append(sub)
			} else {
				current.Append(document.NewListBlock(sub))
			}

		case current != nil:
			current.Append(document.Text(line))
		}
	}

	if current != nil {
		list.Append(current)
	}
	return list
}

// Utility methods

// advance moves to the next token
func (p *Parser) advance() {
	p.previous = p.current
	p.current = p.tokenizer.Next()
}

// isOpeningTag checks if the current token is an opening tag with the name
func (p *Parser) isOpeningTag(name string) bool {
	return p.current.Type == TokenTagOpen && p.current.TagName == name
}

// isClosingTag checks if the current token is a closing tag with the name
func (p *Parser) isClosingTag(name string) bool {
	return p.current.Type == TokenTagClose && p.current.TagName == name
}

// expectTag consumes the current token if it is the expected tag, otherwise
// it fails with a parse error naming the expectation
func (p *Parser) expectTag(name string, closing bool) error {
	expectedType := TokenTagOpen
	kind := "opening"
	if closing {
		expectedType = TokenTagClose
		kind = "closing"
	}

	if p.current.Type != expectedType || p.current.TagName != name {
		return newParseError(fmt.Sprintf("Expected %s %s tag", kind, name), p.current)
	}

	p.advance()
	return nil
}
