package report

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

const reportTitle = "Sample Distributions"

func renderMarkdown(doc *document) []byte {
	var b bytes.Buffer

	fmt.Fprintf(&b, "# %s\n\n", reportTitle)

	b.WriteString("## Run\n\n")
	writeMarkdownTable(&b, table{
		headers: []string{"field", "value"},
		rows:    pairs(doc.manifest),
	})

	b.WriteString("## Summary\n\n")
	writeMarkdownTable(&b, doc.summary)

	for _, h := range doc.histograms {
		fmt.Fprintf(&b, "## Histogram: %s\n\n", h.name)
		writeMarkdownTable(&b, h.table)
	}
	return b.Bytes()
}

func pairs(kvs [][2]string) [][]string {
	rows := make([][]string, len(kvs))
	for i, kv := range kvs {
		rows[i] = []string{kv[0], "`" + kv[1] + "`"}
	}
	return rows
}

func writeMarkdownTable(b *bytes.Buffer, t table) {
	b.WriteString("| " + strings.Join(t.headers, " | ") + " |\n")
	sep := make([]string, len(t.headers))
	for i := range sep {
		sep[i] = "---"
	}
	b.WriteString("| " + strings.Join(sep, " | ") + " |\n")
	for _, r := range t.rows {
		b.WriteString("| " + strings.Join(r, " | ") + " |\n")
	}
	b.WriteString("\n")
}

func writeMarkdown(path string, doc *document) error {
	return os.WriteFile(path, renderMarkdown(doc), 0o644)
}

func writeHTML(path string, doc *document) error {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags | html.CompletePage,
		Title: reportTitle,
	})
	return os.WriteFile(path, markdown.ToHTML(renderMarkdown(doc), p, renderer), 0o644)
}
