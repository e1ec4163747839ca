// File: json.go
// Title: Document JSON Encoding
// Description: Serializes document trees to their external JSON mapping.
//              Structured nodes carry a "kind" discriminant; text nodes
//              serialize as bare JSON strings.
// Author: TimeToAct
// Version: v0.1.0
// Created: 2026-05-11
// Modified: 2026-05-11
//
// Change History:
// - 2026-05-11 v0.1.0: Initial JSON mapping

package document

import "encoding/json"

// MarshalJSON emits {"kind":"block","number":...,"head":...,"body":[...]}.
// Number and head are null when absent; body is always an array.
func (b *Block) MarshalJSON() ([]byte, error) {
	body := b.Body
	if body == nil {
		body = []ContentNode{}
	}
	return json.Marshal(struct {
		Kind   string        `json:"kind"`
		Number *string       `json:"number"`
		Head   *string       `json:"head"`
		Body   []ContentNode `json:"body"`
	}{
		Kind:   KindBlock.String(),
		Number: b.Number,
		Head:   b.Head,
		Body:   body,
	})
}

// MarshalJSON emits {"kind":"dict","items":{...}}. Items is always an object.
func (d *Dictionary) MarshalJSON() ([]byte, error) {
	items := d.Items
	if items == nil {
		items = map[string]string{}
	}
	return json.Marshal(struct {
		Kind  string            `json:"kind"`
		Items map[string]string `json:"items"`
	}{
		Kind:  KindDictionary.String(),
		Items: items,
	})
}

// MarshalJSON emits {"kind":"list","items":[...]}. Items is always an array.
func (l *ListBlock) MarshalJSON() ([]byte, error) {
	items := l.Items
	if items == nil {
		items = []*Block{}
	}
	return json.Marshal(struct {
		Kind  string   `json:"kind"`
		Items []*Block `json:"items"`
	}{
		Kind:  KindList.String(),
		Items: items,
	})
}

// EncodeJSON serializes a document tree. Pretty output indents with two
// spaces; compact output is a single line.
func EncodeJSON(root *Block, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(root, "", "  ")
	}
	return json.Marshal(root)
}
