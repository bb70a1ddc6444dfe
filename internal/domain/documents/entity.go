package documents

// FileType enum
type FileType string

const (
	TypePDF     FileType = "pdf"
	TypeDOCX    FileType = "docx"
	TypeImage   FileType = "image"
	TypeUnknown FileType = "unknown"
)

// Upload is what the upload port hands over: only metadata, content is never parsed.
type Upload struct {
	Name     string
	MIMEType string
	Size     int64
}

// UploadedFile is one entry of the session upload list
type UploadedFile struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Size      string          `json:"size"`
	SizeBytes int64           `json:"size_bytes"`
	Type      FileType        `json:"type"`
	IsSample  bool            `json:"is_sample"`
	Sample    *SampleDocument `json:"sample,omitempty"`
}

// Icon returns the font-awesome class shown next to the file.
func (f UploadedFile) Icon() string {
	return Icon(f.Type)
}

// FixedClauses returns the predefined clause list when the file is a sample that has one.
func (f UploadedFile) FixedClauses() ([]string, bool) {
	if !f.IsSample || f.Sample == nil || f.Sample.Clauses == nil {
		return nil, false
	}
	return f.Sample.Clauses, true
}

// Icon lookup per file type
func Icon(t FileType) string {
	switch t {
	case TypePDF:
		return "fa-file-pdf"
	case TypeDOCX:
		return "fa-file-word"
	case TypeImage:
		return "fa-file-image"
	default:
		return "fa-file"
	}
}
