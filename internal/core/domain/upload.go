package domain

import "strings"

// DocumentUpload is a file received from the client that has not been
// stored yet. URL is filled once the bytes are in object storage.
type DocumentUpload struct {
	Data     []byte `json:"data"`
	FileName string `json:"file_name"`
	MimeType string `json:"mime_type"`
	URL      string `json:"url,omitempty"`
}

func (d DocumentUpload) IsImage() bool {
	return strings.HasPrefix(d.MimeType, "image/")
}

func (d DocumentUpload) IsPDF() bool {
	return d.MimeType == "application/pdf"
}

// Size returns the payload length in bytes.
func (d DocumentUpload) Size() int64 {
	return int64(len(d.Data))
}
