package services

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/okan/courseatlas/internal/pkg/apperrors"
)

func fileHeader(name, contentType string, size int64) *multipart.FileHeader {
	header := &multipart.FileHeader{
		Filename: name,
		Size:     size,
		Header:   textproto.MIMEHeader{},
	}
	if contentType != "" {
		header.Header.Set("Content-Type", contentType)
	}
	return header
}

func TestSyllabusService_ValidateFile(t *testing.T) {
	t.Parallel()

	svc := &syllabusService{maxFileSize: 10 << 20}

	tests := []struct {
		name    string
		file    *multipart.FileHeader
		wantErr error
	}{
		{
			name: "valid pdf",
			file: fileHeader("syllabus.pdf", "application/pdf", 1 << 20),
		},
		{
			name: "extension check is case-insensitive",
			file: fileHeader("SYLLABUS.PDF", "application/pdf", 1 << 20),
		},
		{
			name: "missing content type is accepted",
			file: fileHeader("syllabus.pdf", "", 1 << 20),
		},
		{
			name:    "wrong extension",
			file:    fileHeader("syllabus.docx", "application/pdf", 1 << 20),
			wantErr: apperrors.ErrInvalidFileType,
		},
		{
			name:    "pdf extension with wrong content type",
			file:    fileHeader("syllabus.pdf", "text/html", 1 << 20),
			wantErr: apperrors.ErrInvalidFileType,
		},
		{
			name:    "oversized file",
			file:    fileHeader("syllabus.pdf", "application/pdf", 11 << 20),
			wantErr: apperrors.ErrFileTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := svc.validateFile(tt.file)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
