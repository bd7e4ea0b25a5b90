// Package corpus extracts the link graph of a directory of documents.
// HTML pages (.html) contribute the href of every anchor, and markdown
// documents (.md) the destination of every link. A document is identified by
// its file name, so only relative links to sibling files connect documents.
package corpus

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vertex-lab/linkrank/pkg/graph"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"golang.org/x/net/html"
)

// Load scans dir and builds the link graph of its documents.
func Load(dir string) (*graph.Graph, error) {
	links, err := Links(dir)
	if err != nil {
		return nil, err
	}
	return graph.FromMap(links)
}

// Links scans dir, not recursively, and returns the raw links of each
// document. Links are not filtered: the graph drops the ones that do not point
// to another document.
func Links(dir string) (map[string][]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus %q: %w", dir, err)
	}

	pages := make(map[string][]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".html" && ext != ".md" {
			continue
		}

		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to read document %q: %w", name, err)
		}

		var raw []string
		switch ext {
		case ".html":
			raw, err = ExtractHTML(bytes.NewReader(content))
			if err != nil {
				return nil, fmt.Errorf("failed to parse document %q: %w", name, err)
			}

		case ".md":
			raw = ExtractMarkdown(content)
		}

		pages[name] = normalize(raw)
	}

	if len(pages) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyCorpus, dir)
	}

	return pages, nil
}

// ExtractHTML returns the href of every <a> tag in the HTML document.
func ExtractHTML(r io.Reader) ([]string, error) {
	var links []string
	z := html.NewTokenizer(r)

	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return links, nil
			}
			return nil, z.Err()

		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			if string(name) != "a" {
				continue
			}

			for hasAttr {
				var key, val []byte
				key, val, hasAttr = z.TagAttr()
				if string(key) == "href" {
					links = append(links, string(val))
				}
			}
		}
	}
}

// ExtractMarkdown returns the destination of every link in the markdown document.
func ExtractMarkdown(src []byte) []string {
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))

	var links []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		if link, ok := n.(*ast.Link); ok {
			links = append(links, string(link.Destination))
		}
		return ast.WalkContinue, nil
	})
	return links
}

// normalize strips fragments and a leading "./" and drops empty links.
func normalize(links []string) []string {
	normalized := make([]string, 0, len(links))
	for _, link := range links {
		if i := strings.IndexByte(link, '#'); i >= 0 {
			link = link[:i]
		}

		link = strings.TrimPrefix(link, "./")
		if link == "" {
			continue
		}

		normalized = append(normalized, link)
	}
	return normalized
}

//--------------------------ERROR-CODES--------------------------

var ErrEmptyCorpus = errors.New("corpus has no documents")
