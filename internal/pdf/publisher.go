package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
	"github.com/jung-kurt/gofpdf"
)

// Publisher converts a markdown document into a paginated PDF file. Layout is
// deliberately plain: headings, paragraphs and bullet lists are enough for
// CVs and RFPs.
type Publisher struct {
	fontName string
}

func NewPublisher() *Publisher {
	return &Publisher{fontName: "Helvetica"}
}

// Publish writes <baseName>.pdf under outputDir, creating the directory when
// needed, and returns the file path.
func (p *Publisher) Publish(markdownContent, baseName, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	doc := parser.NewWithExtensions(parser.CommonExtensions).Parse([]byte(markdownContent))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	p.writeBlocks(pdf, tr, doc)

	path := filepath.Join(outputDir, baseName+".pdf")
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write pdf: %w", err)
	}
	return path, nil
}

func (p *Publisher) writeBlocks(pdf *gofpdf.Fpdf, tr func(string) string, node ast.Node) {
	container := node.AsContainer()
	if container == nil {
		return
	}

	for _, child := range container.Children {
		switch block := child.(type) {
		case *ast.Heading:
			p.writeHeading(pdf, tr, block)
		case *ast.Paragraph:
			pdf.SetFont(p.fontName, "", 10.5)
			pdf.MultiCell(0, 5.5, tr(inlineText(block)), "", "L", false)
			pdf.Ln(2)
		case *ast.List:
			p.writeList(pdf, tr, block)
			pdf.Ln(2)
		case *ast.HorizontalRule:
			x, y := pdf.GetXY()
			pageWidth, _ := pdf.GetPageSize()
			pdf.Line(x, y, pageWidth-20, y)
			pdf.Ln(4)
		case *ast.CodeBlock:
			pdf.SetFont("Courier", "", 9.5)
			pdf.MultiCell(0, 5, tr(strings.TrimRight(string(block.Literal), "\n")), "", "L", false)
			pdf.Ln(2)
		default:
			p.writeBlocks(pdf, tr, child)
		}
	}
}

func (p *Publisher) writeHeading(pdf *gofpdf.Fpdf, tr func(string) string, heading *ast.Heading) {
	size := 11.5
	switch heading.Level {
	case 1:
		size = 16
	case 2:
		size = 13
	}
	pdf.SetFont(p.fontName, "B", size)
	pdf.MultiCell(0, size*0.55, tr(inlineText(heading)), "", "L", false)
	pdf.Ln(1.5)
}

func (p *Publisher) writeList(pdf *gofpdf.Fpdf, tr func(string) string, list *ast.List) {
	ordered := list.ListFlags&ast.ListTypeOrdered != 0

	container := list.AsContainer()
	if container == nil {
		return
	}
	for i, item := range container.Children {
		marker := "-"
		if ordered {
			marker = fmt.Sprintf("%d.", i+1)
		}
		pdf.SetFont(p.fontName, "", 10.5)
		pdf.CellFormat(8, 5.5, marker, "", 0, "R", false, 0, "")
		pdf.MultiCell(0, 5.5, tr(inlineText(item)), "", "L", false)
	}
}

// inlineText flattens a block's inline children into plain text. Emphasis is
// dropped, which is acceptable for generated corpus documents.
func inlineText(node ast.Node) string {
	var sb strings.Builder
	ast.WalkFunc(node, func(n ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		if leaf := n.AsLeaf(); leaf != nil {
			sb.Write(leaf.Literal)
		}
		return ast.GoToNext
	})
	return strings.Join(strings.Fields(sb.String()), " ")
}
