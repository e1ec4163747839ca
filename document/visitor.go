// File: visitor.go
// Title: Document Tree Visitor
// Description: Implements the visitor pattern for traversing document trees
//              and a node-count collector built on it.
// Author: TimeToAct
// Version: v0.1.0
// Created: 2026-05-11
// Modified: 2026-05-11
//
// Change History:
// - 2026-05-11 v0.1.0: Initial visitor implementation

package document

// Visitor interface for traversing document nodes using the visitor pattern.
type Visitor interface {
	VisitText(text Text) interface{}
	VisitBlock(block *Block) interface{}
	VisitDictionary(dict *Dictionary) interface{}
	VisitList(list *ListBlock) interface{}
}

// Accept dispatches to VisitText.
func (t Text) Accept(visitor Visitor) interface{} {
	return visitor.VisitText(t)
}

// Accept dispatches to VisitBlock.
func (b *Block) Accept(visitor Visitor) interface{} {
	return visitor.VisitBlock(b)
}

// Accept dispatches to VisitDictionary.
func (d *Dictionary) Accept(visitor Visitor) interface{} {
	return visitor.VisitDictionary(d)
}

// Accept dispatches to VisitList.
func (l *ListBlock) Accept(visitor Visitor) interface{} {
	return visitor.VisitList(l)
}

// BaseVisitor provides depth-first default implementations for all visitor
// methods. Embed it in concrete visitors to only override needed methods.
type BaseVisitor struct{}

func (bv *BaseVisitor) VisitText(text Text) interface{} {
	return nil // terminal node
}

func (bv *BaseVisitor) VisitBlock(block *Block) interface{} {
	for _, node := range block.Body {
		node.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitDictionary(dict *Dictionary) interface{} {
	return nil // terminal node
}

func (bv *BaseVisitor) VisitList(list *ListBlock) interface{} {
	for _, item := range list.Items {
		item.Accept(bv)
	}
	return nil
}

// Stats summarizes the structured nodes of a document tree. Text paragraphs
// are content, not structure, and are not counted.
type Stats struct {
	Blocks       int
	Dictionaries int
	Lists        int
}

// Total returns the overall number of structured nodes.
func (s Stats) Total() int {
	return s.Blocks + s.Dictionaries + s.Lists
}

// statsVisitor tallies structured nodes. It drives the recursion itself so
// that its own counting methods see every nested node.
type statsVisitor struct {
	stats Stats
}

func (sv *statsVisitor) VisitText(Text) interface{} { return nil }

func (sv *statsVisitor) VisitBlock(block *Block) interface{} {
	sv.stats.Blocks++
	for _, node := range block.Body {
		node.Accept(sv)
	}
	return nil
}

func (sv *statsVisitor) VisitDictionary(*Dictionary) interface{} {
	sv.stats.Dictionaries++
	return nil
}

func (sv *statsVisitor) VisitList(list *ListBlock) interface{} {
	sv.stats.Lists++
	for _, item := range list.Items {
		item.Accept(sv)
	}
	return nil
}

// Collect walks the tree rooted at block and tallies node counts. The root
// block itself is included.
func Collect(root *Block) Stats {
	sv := &statsVisitor{}
	root.Accept(sv)
	return sv.stats
}

// CountElements returns the number of structured nodes in the tree rooted at
// block, including the root.
func CountElements(root *Block) int {
	return Collect(root).Total()
}
