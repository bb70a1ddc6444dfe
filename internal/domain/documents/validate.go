package documents

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var allowedMIMETypes = map[string]bool{
	"application/pdf": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/msword": true,
	"image/png":          true,
	"image/jpeg":         true,
	"image/jpg":          true,
}

var allowedExt = regexp.MustCompile(`\.(pdf|docx?|png|jpe?g)$`)
var imageExt = regexp.MustCompile(`\.(png|jpe?g)$`)

// IsAllowed reports whether an upload passes the MIME type or extension allow-list.
func IsAllowed(u Upload) bool {
	if allowedMIMETypes[strings.ToLower(strings.TrimSpace(u.MIMEType))] {
		return true
	}
	return allowedExt.MatchString(strings.ToLower(u.Name))
}

// DetectType maps a file name to its FileType by extension.
func DetectType(name string) FileType {
	n := strings.ToLower(name)
	switch {
	case strings.HasSuffix(n, ".pdf"):
		return TypePDF
	case strings.HasSuffix(n, ".docx"), strings.HasSuffix(n, ".doc"):
		return TypeDOCX
	case imageExt.MatchString(n):
		return TypeImage
	default:
		return TypeUnknown
	}
}

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatFileSize renders a byte count as "1.5 KB", "2 MB" etc.
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i >= len(sizeUnits) {
		i = len(sizeUnits) - 1
	}
	v := float64(bytes) / math.Pow(1024, float64(i))
	v = math.Round(v*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + sizeUnits[i]
}
