package utils

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ErrEmptyDocument is returned when a document yields no readable text.
var ErrEmptyDocument = errors.New("document contains no readable text")

var (
	whitespace = regexp.MustCompile(`[ \t]+`)
	blankLines = regexp.MustCompile(`\n{3,}`)
)

var supportedFormats = []string{".txt", ".md", ".pdf", ".docx", ".html", ".htm"}

// DocumentExtractor extracts text from uploaded documents
type DocumentExtractor struct{}

// NewDocumentExtractor creates a new document extractor
func NewDocumentExtractor() *DocumentExtractor {
	return &DocumentExtractor{}
}

// ExtractText extracts text from a document based on its extension.
// Unknown extensions are treated as plain text.
func (e *DocumentExtractor) ExtractText(filename string, content []byte) (string, error) {
	var (
		text string
		err  error
	)

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		text, err = e.extractPDF(content)
	case ".docx":
		text, err = e.extractDocx(content)
	case ".html", ".htm":
		text, err = e.extractHTML(content)
	default:
		text = string(bytes.ToValidUTF8(content, nil))
	}
	if err != nil {
		return "", err
	}

	text = normalize(text)
	if text == "" {
		return "", ErrEmptyDocument
	}
	return text, nil
}

func (e *DocumentExtractor) extractPDF(content []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read PDF page %d: %w", i, err)
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func (e *DocumentExtractor) extractDocx(content []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer doc.Close()

	text, err := wordprocessingText(doc.Editable().GetContent())
	if err != nil {
		return "", fmt.Errorf("failed to read DOCX body: %w", err)
	}
	return text, nil
}

// wordprocessingText collects the w:t runs of a document.xml body, one line
// per paragraph. Entities are decoded by the XML decoder.
func wordprocessingText(body string) (string, error) {
	dec := xml.NewDecoder(strings.NewReader(body))

	var (
		sb     strings.Builder
		inText bool
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return sb.String(), nil
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				sb.WriteString(" ")
			case "br", "cr":
				sb.WriteString("\n")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}
}

func (e *DocumentExtractor) extractHTML(content []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	doc.Find("script, style, noscript").Remove()

	var lines []string
	doc.Find("h1, h2, h3, h4, p, li, td").Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			lines = append(lines, t)
		}
	})
	if len(lines) == 0 {
		return doc.Find("body").Text(), nil
	}
	return strings.Join(lines, "\n"), nil
}

func normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = whitespace.ReplaceAllString(text, " ")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")
	return strings.TrimSpace(blankLines.ReplaceAllString(text, "\n\n"))
}

// IsSupportedFormat checks if the file format is supported
func (e *DocumentExtractor) IsSupportedFormat(filename string) bool {
	return slices.Contains(supportedFormats, strings.ToLower(filepath.Ext(filename)))
}

// SupportedFormats lists accepted file extensions.
func SupportedFormats() []string {
	return slices.Clone(supportedFormats)
}
