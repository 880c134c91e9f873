/**
 * Copyright (c) 2019, The Treewalk Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package tree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/botobag/treewalk/internal/util"
)

// Print renders the tree rooted at node as an indented block structure: a Container prints as a
// "name { ... }" block containing its children (or "name {}" when it has none) and a Leaf prints
// as a "name = value" line.
func Print(node Node) string {
	var buf strings.Builder
	FPrint(&buf, node)
	return buf.String()
}

// FPrint renders the tree rooted at node to out.
func FPrint(out util.StringWriter, node Node) {
	(&printer{
		StringWriter: out,
	}).printNode(node)
}

type printer struct {
	util.StringWriter
	indentLevel int
}

func (p *printer) beginBlock() {
	p.WriteString("{\n")
	p.indentLevel++
}

func (p *printer) endBlock() {
	p.indentLevel--
	p.writeNewLineWithIndent()
	p.WriteString("}")
}

func (p *printer) writeNewLineWithIndent() {
	p.WriteString("\n")
	p.writeIndent()
}

func (p *printer) writeIndent() {
	p.WriteString(strings.Repeat(" ", 2*p.indentLevel))
}

func (p *printer) printNode(node Node) {
	switch node := node.(type) {
	case *Container:
		p.printContainer(node)
	case *Leaf:
		p.printLeaf(node)
	default:
		panic(fmt.Sprintf("unsupported node type %T to print", node))
	}
}

func (p *printer) printContainer(container *Container) {
	p.WriteString(container.Name())
	if len(container.children) == 0 {
		p.WriteString(" {}")
		return
	}

	p.WriteString(" ")
	p.beginBlock()
	for i, child := range container.children {
		if i > 0 {
			p.WriteString("\n")
		}
		p.writeIndent()
		p.printNode(child)
	}
	p.endBlock()
}

func (p *printer) printLeaf(leaf *Leaf) {
	p.WriteString(leaf.Name())
	p.WriteString(" = ")
	p.WriteString(strconv.Itoa(leaf.Value()))
}
