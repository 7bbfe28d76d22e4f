package storage

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n")
	pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	zipBytes = []byte("PK\x03\x04\x14\x00\x06\x00")
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		data     []byte
		filename string
		wantType string
		wantExt  string
		wantErr  error
	}{
		{name: "pdf case document", kind: KindCaseDocument, data: pdfBytes, filename: "brief.pdf", wantType: contentTypePDF, wantExt: ".pdf"},
		{name: "image case document", kind: KindCaseDocument, data: pngBytes, filename: "scan", wantType: "image/png", wantExt: ".png"},
		{name: "docx case document", kind: KindCaseDocument, data: zipBytes, filename: "Claim.DOCX", wantType: contentTypeDOCX, wantExt: ".docx"},
		{name: "zip rejected", kind: KindCaseDocument, data: zipBytes, filename: "archive.zip", wantErr: ErrUnsupportedType},
		{name: "profile image", kind: KindProfileImage, data: pngBytes, filename: "me.png", wantType: "image/png", wantExt: ".png"},
		{name: "pdf profile image rejected", kind: KindProfileImage, data: pdfBytes, filename: "me.pdf", wantErr: ErrUnsupportedType},
		{name: "empty", kind: KindCaseDocument, wantErr: ErrEmptyFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contentType, ext, err := classify(tt.kind, tt.data, tt.filename)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, contentType)
			assert.Equal(t, tt.wantExt, ext)
		})
	}
}

func TestMemoryStorage(t *testing.T) {
	ctx := context.Background()
	m := NewMemory("http://localhost:5001/files")

	key, err := m.Upload(ctx, KindCaseDocument, pdfBytes, "brief.pdf")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "cases/"))
	assert.True(t, strings.HasSuffix(key, ".pdf"))

	data, err := m.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, pdfBytes, data)

	url, err := m.PresignedURL(ctx, key, 15*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5001/files/"+key+"?expires=900", url)

	require.NoError(t, m.Delete(ctx, key))
	_, err = m.Get(ctx, key)
	assert.ErrorIs(t, err, ErrObjectNotFound)
}
