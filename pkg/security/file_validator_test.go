package security_test

import (
	"testing"

	"go-skillmatch-backend/pkg/security"

	"github.com/stretchr/testify/assert"
)

func TestValidateFile(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		data     []byte
		mime     string
		valid    bool
	}{
		{"pdf ok", "cv.pdf", []byte("%PDF-1.7 rest of file"), "application/pdf", true},
		{"docx ok", "cv.docx", []byte{0x50, 0x4B, 0x03, 0x04, 0x14, 0x00}, "application/zip", true},
		{"docx as octet-stream ok", "cv.docx", []byte{0x50, 0x4B, 0x03, 0x04, 0x14, 0x00}, "application/octet-stream", true},
		{"txt ok with charset param", "cv.txt", []byte("plain resume text"), "text/plain; charset=utf-8", true},
		{"spoofed pdf", "cv.pdf", []byte("not a pdf at all"), "text/plain", false},
		{"disallowed extension", "cv.exe", []byte("MZ\x90\x00"), "application/octet-stream", false},
		{"no extension", "cv", []byte("%PDF-1.7"), "application/pdf", false},
		{"image rejected", "cv.png", []byte{0x89, 0x50, 0x4E, 0x47}, "image/png", false},
		{"tiny file", "cv.pdf", []byte("%P"), "application/pdf", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := security.ValidateFile(tt.filename, tt.data, tt.mime)
			assert.Equal(t, tt.valid, result.Valid, result.Error)
		})
	}
}

func TestValidateFileExtension(t *testing.T) {
	assert.NoError(t, security.ValidateFileExtension("resume.PDF"))
	assert.Error(t, security.ValidateFileExtension("resume.js"))
	assert.Error(t, security.ValidateFileExtension("resume"))
}
