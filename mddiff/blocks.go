// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mddiff

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Markdown is an [Extractor] for CommonMark documents.
//
// Every paragraph, heading, code block, list, block quote and thematic break that is not nested in
// one of these becomes a block. Code blocks are represented by a label with their language instead
// of their body. The content of lists is cut off after PreviewLen characters.
type Markdown struct {
	PreviewLen int
}

// Extract implements [Extractor].
func (m Markdown) Extract(src string) (blocks []Block, err error) {
	defer func() {
		if r := recover(); r != nil {
			blocks, err = nil, fmt.Errorf("parsing markdown: %v", r)
		}
	}()

	source := []byte(src)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))
	e := extraction{source: source, previewLen: m.PreviewLen}
	if e.previewLen <= 0 {
		e.previewLen = 100
	}
	for c := doc.FirstChild(); c != nil; c = c.NextSibling() {
		e.visit(c)
	}
	return e.blocks, nil
}

type extraction struct {
	source     []byte
	previewLen int
	blocks     []Block
}

func (e *extraction) add(prefix, kind, content string, f func(*Block)) {
	b := Block{
		ID:      prefix + "-" + strconv.Itoa(len(e.blocks)),
		Kind:    kind,
		Content: content,
		Index:   len(e.blocks),
	}
	if f != nil {
		f(&b)
	}
	e.blocks = append(e.blocks, b)
}

func (e *extraction) visit(n ast.Node) {
	switch n := n.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		e.add("paragraph", "paragraph", e.text(n), nil)
	case *ast.Heading:
		e.add("heading", "heading", e.text(n), func(b *Block) { b.Level = n.Level })
	case *ast.FencedCodeBlock:
		lang := string(n.Language(e.source))
		e.add("code", "code", codeLabel(lang), func(b *Block) { b.Lang = lang })
	case *ast.CodeBlock:
		e.add("code", "code", codeLabel(""), nil)
	case *ast.List:
		e.add("list", "list", truncate(e.text(n), e.previewLen), nil)
	case *ast.ListItem:
		e.add("list", "listItem", truncate(e.text(n), e.previewLen), nil)
	case *ast.Blockquote:
		e.add("blockquote", "blockquote", e.text(n), nil)
	case *ast.ThematicBreak:
		e.add("hr", "thematicBreak", "---", nil)
	default:
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			e.visit(c)
		}
	}
}

func codeLabel(lang string) string {
	if lang == "" {
		lang = "text"
	}
	return "Code block (" + lang + ")"
}

// text concatenates the text of all descendants of n without separators between blocks.
func (e *extraction) text(n ast.Node) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Text:
			sb.Write(n.Segment.Value(e.source))
			if n.SoftLineBreak() || n.HardLineBreak() {
				sb.WriteByte('\n')
			}
		case *ast.String:
			sb.Write(n.Value)
		case *ast.AutoLink:
			sb.Write(n.Label(e.source))
			return ast.WalkSkipChildren, nil
		case *ast.RawHTML:
			for i := range n.Segments.Len() {
				seg := n.Segments.At(i)
				sb.Write(seg.Value(e.source))
			}
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock:
			lines := n.Lines()
			for i := range lines.Len() {
				seg := lines.At(i)
				sb.Write(seg.Value(e.source))
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}

var blankLines = regexp.MustCompile(`\n\n+`)

// Fallback splits a document at blank lines. Every non blank chunk becomes a paragraph block, cut
// off after previewLen characters.
func Fallback(src string, previewLen int) []Block {
	if previewLen <= 0 {
		previewLen = 100
	}
	var blocks []Block
	for _, chunk := range blankLines.Split(src, -1) {
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		i := len(blocks)
		blocks = append(blocks, Block{
			ID:      "fallback-" + strconv.Itoa(i),
			Kind:    "paragraph",
			Content: truncate(chunk, previewLen),
			Index:   i,
		})
	}
	return blocks
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
