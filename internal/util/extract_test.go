package util

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const documentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>Maria Souza</w:t></w:r></w:p>
<w:p><w:r><w:t>Skills: Python, SQL</w:t></w:r></w:p>
</w:body>
</w:document>`

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

func writeDocx(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "resume.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, body := range map[string]string{
		"[Content_Types].xml": contentTypesXML,
		"word/document.xml":   documentXML,
	} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return path
}

func TestExtractText_DOCX(t *testing.T) {
	path := writeDocx(t, t.TempDir())

	text := ExtractText(path)
	assert.Contains(t, text, "Maria Souza")
	assert.Contains(t, text, "Python, SQL")
}

func TestExtractText_FailuresReturnEmpty(t *testing.T) {
	dir := t.TempDir()

	brokenPDF := filepath.Join(dir, "broken.pdf")
	require.NoError(t, os.WriteFile(brokenPDF, []byte("not a pdf at all"), 0o644))

	brokenDOCX := filepath.Join(dir, "broken.docx")
	require.NoError(t, os.WriteFile(brokenDOCX, []byte("not a zip"), 0o644))

	txt := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(txt, []byte("plain"), 0o644))

	tests := []struct {
		name string
		path string
	}{
		{"Corrupt PDF", brokenPDF},
		{"Corrupt DOCX", brokenDOCX},
		{"Unsupported extension", txt},
		{"Missing file", filepath.Join(dir, "missing.pdf")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, "", ExtractText(tt.path))
		})
	}
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported("cv.PDF"))
	assert.True(t, IsSupported("cv.docx"))
	assert.False(t, IsSupported("cv.doc"))
	assert.False(t, IsSupported("cv"))
}
