// File: doc.go
// Title: Document Package Documentation
// Description: Defines the node model for parsed TimeToAct DocumentAI
//              documents, JSON encoding of document trees, and visitor
//              utilities for traversing and summarizing them.
// Author: TimeToAct
// Version: v0.1.0
// Created: 2026-05-11
// Modified: 2026-05-11
//
// Change History:
// - 2026-05-11 v0.1.0: Initial document model

/*
Package document defines the tree produced by parsing a TimeToAct DocumentAI
document.

A document is a tree of content nodes. The root is always a Block. Four node
kinds exist and form a closed union:

  • Text — a plain paragraph of text
  • Block — a section with optional number, optional heading, and ordered body
  • Dictionary — flat key/value pairs
  • ListBlock — an ordered collection of Block items

Nodes are created once by the parser and are read-only afterwards. The union
is closed by an unexported marker method, so a type switch over ContentNode
is exhaustive and serialization cannot meet an unknown variant.
*/
package document
