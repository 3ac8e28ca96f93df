package models

import "time"

const (
	// AttachmentDocType is the discriminator value stored in the docType field
	// of every uploaded attachment.
	AttachmentDocType = "document"

	// DefaultAttachmentContentType is used when an upload omits its content type.
	DefaultAttachmentContentType = "application/pdf"

	// DefaultAttachmentFileName is used in the download disposition header when
	// the stored file name is empty.
	DefaultAttachmentFileName = "document.pdf"
)

// Attachment is a binary document linked to a test/job record by a free-text
// reference. Data holds the payload as standard base64.
type Attachment struct {
	ID          string    `json:"id"`
	FileName    string    `json:"fileName"`
	TestRef     *string   `json:"testRef"`
	ContentType string    `json:"contentType"`
	Data        string    `json:"-"`
	SizeBytes   int64     `json:"sizeBytes"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// AttachmentQuery addresses a single attachment either by identifier or by
// business reference. ID takes precedence when both are set.
type AttachmentQuery struct {
	ID      string
	TestRef string
}

// UploadRequest is the JSON body accepted by the document upload endpoint.
type UploadRequest struct {
	FileName    string `json:"fileName"`
	TestRef     string `json:"testRef"`
	ContentType string `json:"contentType"`
	Data        string `json:"data"`
}

// UploadResponse describes a stored attachment back to the uploader.
type UploadResponse struct {
	ID          string  `json:"id"`
	FileName    string  `json:"fileName"`
	TestRef     *string `json:"testRef"`
	DownloadURL string  `json:"downloadUrl"`
}

// AttachmentListItem is one entry of the attachment listing. It never carries
// payload bytes.
type AttachmentListItem struct {
	Attachment
	DownloadURL string `json:"downloadUrl"`
}
