package model

import "strings"

// Attachment is a user-supplied file bundled into the generated document
type Attachment struct {
	Filename string
	MimeType string
	Size     int64
	Data     []byte
}

// IsImage returns true when the attachment can be previewed as an image
func (a *Attachment) IsImage() bool {
	return strings.HasPrefix(a.MimeType, "image/")
}

// SizeKB returns the attachment size in kilobytes for display
func (a *Attachment) SizeKB() float64 {
	return float64(a.Size) / 1024.0
}

// DisplayType returns the mime type, or a fallback when it is missing
func (a *Attachment) DisplayType() string {
	if a.MimeType == "" {
		return "Tipo desconhecido"
	}
	return a.MimeType
}
