// File: nodes.go
// Title: Document Node Definitions
// Description: Defines the closed ContentNode union (Text, Block, Dictionary,
//              ListBlock) with constructors that keep collections non-nil and
//              small helpers used by the parser.
// Author: TimeToAct
// Version: v0.1.0
// Created: 2026-05-11
// Modified: 2026-05-11
//
// Change History:
// - 2026-05-11 v0.1.0: Initial node definitions

package document

// NodeKind identifies the variant of a ContentNode.
type NodeKind int

const (
	KindText NodeKind = iota
	KindBlock
	KindDictionary
	KindList
)

// String returns the JSON discriminant for the node kind.
func (k NodeKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindBlock:
		return "block"
	case KindDictionary:
		return "dict"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// ContentNode is the closed set of values that may appear in a Block body.
// Only Text, *Block, *Dictionary, and *ListBlock implement it.
type ContentNode interface {
	// Kind returns the variant of this node.
	Kind() NodeKind

	// Accept implements the visitor pattern.
	Accept(visitor Visitor) interface{}

	contentNode() // marker method, closes the union
}

// Text is a plain paragraph of document text.
type Text string

// Kind returns KindText.
func (Text) Kind() NodeKind { return KindText }

func (Text) contentNode() {}

// Block is a general-purpose container for a section or list item. Number
// holds a dotted section number such as "2.1" and is set only by the
// ordered-list algorithm. Head is an optional heading. Body holds the child
// nodes in document order.
type Block struct {
	Number *string
	Head   *string
	Body   []ContentNode
}

// NewBlock creates an empty block with a non-nil body.
func NewBlock() *Block {
	return &Block{Body: []ContentNode{}}
}

// Kind returns KindBlock.
func (*Block) Kind() NodeKind { return KindBlock }

func (*Block) contentNode() {}

// SetHead sets the block heading.
func (b *Block) SetHead(head string) {
	b.Head = &head
}

// SetNumber sets the dotted section number.
func (b *Block) SetNumber(number string) {
	b.Number = &number
}

// HeadText returns the heading, or "" when none is set.
func (b *Block) HeadText() string {
	if b.Head == nil {
		return ""
	}
	return *b.Head
}

// NumberText returns the section number, or "" when none is set.
func (b *Block) NumberText() string {
	if b.Number == nil {
		return ""
	}
	return *b.Number
}

// Append adds a child node to the end of the body.
func (b *Block) Append(node ContentNode) {
	b.Body = append(b.Body, node)
}

// LastListBlock returns the trailing body element when it is a ListBlock.
// The ordered- and unordered-list algorithms use it to extend an existing
// nested list instead of opening a second one.
func (b *Block) LastListBlock() (*ListBlock, bool) {
	if len(b.Body) == 0 {
		return nil, false
	}
	list, ok := b.Body[len(b.Body)-1].(*ListBlock)
	return list, ok
}

// Dictionary holds flat key/value pairs parsed from a dict region. Duplicate
// keys overwrite earlier entries.
type Dictionary struct {
	Items map[string]string
}

// NewDictionary creates an empty dictionary with a non-nil item map.
func NewDictionary() *Dictionary {
	return &Dictionary{Items: map[string]string{}}
}

// Kind returns KindDictionary.
func (*Dictionary) Kind() NodeKind { return KindDictionary }

func (*Dictionary) contentNode() {}

// Set stores a key/value pair, replacing any earlier value for the key.
func (d *Dictionary) Set(key, value string) {
	d.Items[key] = value
}

// ListBlock is an ordered collection of Block items representing a numbered
// or bulleted list. Nested lists appear as the last body element of an item.
type ListBlock struct {
	Items []*Block
}

// NewListBlock creates a list containing the given items.
func NewListBlock(items ...*Block) *ListBlock {
	list := &ListBlock{Items: []*Block{}}
	list.Items = append(list.Items, items...)
	return list
}

// Kind returns KindList.
func (*ListBlock) Kind() NodeKind { return KindList }

func (*ListBlock) contentNode() {}

// Append adds an item to the end of the list.
func (l *ListBlock) Append(item *Block) {
	l.Items = append(l.Items, item)
}
