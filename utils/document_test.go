package utils

import (
	"archive/zip"
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTextPlain(t *testing.T) {
	e := NewDocumentExtractor()

	text, err := e.ExtractText("resume.txt", []byte("Jane Doe\r\n\r\n\r\n\r\nSenior   Engineer\t at Acme  \n"))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\n\nSenior Engineer at Acme", text)
}

func TestExtractTextHTML(t *testing.T) {
	e := NewDocumentExtractor()
	page := `<html><head><style>p{color:red}</style></head><body>
		<h1>Jane Doe</h1>
		<script>track()</script>
		<p>Tech lead with Go and Kubernetes.</p>
		<ul><li>Python</li><li>Leadership</li></ul>
	</body></html>`

	text, err := e.ExtractText("cv.HTML", []byte(page))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nTech lead with Go and Kubernetes.\nPython\nLeadership", text)
	assert.NotContains(t, text, "track()")
	assert.NotContains(t, text, "color:red")
}

func TestExtractTextEmpty(t *testing.T) {
	e := NewDocumentExtractor()

	_, err := e.ExtractText("blank.txt", []byte("  \n\t "))
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestExtractTextBrokenBinary(t *testing.T) {
	e := NewDocumentExtractor()

	_, err := e.ExtractText("resume.pdf", []byte("not a pdf"))
	assert.Error(t, err)

	_, err = e.ExtractText("resume.docx", []byte("not a zip"))
	assert.Error(t, err)
}

func TestIsSupportedFormat(t *testing.T) {
	e := NewDocumentExtractor()

	for _, name := range []string{"a.pdf", "b.DOCX", "c.txt", "d.html", "e.md"} {
		assert.True(t, e.IsSupportedFormat(name), name)
	}
	for _, name := range []string{"a.exe", "b.doc", "noext"} {
		assert.False(t, e.IsSupportedFormat(name), name)
	}
	assert.Contains(t, SupportedFormats(), ".pdf")
}

func docxFixture(t *testing.T, body string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	files := map[string]string{
		"word/document.xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
			body + `</w:body></w:document>`,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8"?>` +
			`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
	}
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// pdfFixture builds a one-page PDF showing each line in its own text object.
func pdfFixture(t *testing.T, lines ...string) []byte {
	t.Helper()

	var stream bytes.Buffer
	for i, line := range lines {
		fmt.Fprintf(&stream, "BT /F1 12 Tf 72 %d Td (%s) Tj ET\n", 720-20*i, line)
	}

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%sendstream", stream.Len(), stream.String()),
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

func TestExtractTextDocx(t *testing.T) {
	e := NewDocumentExtractor()
	body := `<w:p><w:r><w:t>Go &amp; Kubernetes lead</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t xml:space="preserve">R&amp;D </w:t></w:r><w:r><w:tab/><w:t>C&lt;C++&gt; &#39;20</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Python</w:t></w:r></w:p>`

	text, err := e.ExtractText("cv.docx", docxFixture(t, body))
	require.NoError(t, err)
	assert.Equal(t, "Go & Kubernetes lead\nR&D C<C++> '20\nPython", text)
	assert.NotContains(t, text, "&amp;")
}

func TestExtractTextDocxWithoutText(t *testing.T) {
	e := NewDocumentExtractor()

	_, err := e.ExtractText("cv.docx", docxFixture(t, `<w:p><w:r></w:r></w:p>`))
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestExtractTextPDF(t *testing.T) {
	e := NewDocumentExtractor()

	text, err := e.ExtractText("cv.pdf", pdfFixture(t, "Jane Doe", "Go developer with Kubernetes"))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nGo developer with Kubernetes", text)
}
