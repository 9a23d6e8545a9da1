package constants

import "strings"

// FileKind is the tipo_archivo segment of an object-storage key, derived
// from the scraper's filename convention.
type FileKind string

const (
	FileKindDocument   FileKind = "documento_principal"
	FileKindMetadata   FileKind = "metadata"
	FileKindAttachment FileKind = "adjuntos"
)

// AllowedExtensions holds the companion-file extensions considered when
// globbing a claim's files by SGC prefix.
var AllowedExtensions = map[string]struct{}{
	"json": {},
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"docx": {},
	"doc":  {},
}

// contentTypes maps extensions to the Content-Type sent to object storage.
var contentTypes = map[string]string{
	"pdf":  "application/pdf",
	"json": "application/json",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsAllowedExt checks if a file extension is in the allowed set.
func IsAllowedExt(ext string) bool {
	_, ok := AllowedExtensions[NormalizeExt(ext)]
	return ok
}

// ContentTypeFor returns the Content-Type for an extension, defaulting to
// application/octet-stream.
func ContentTypeFor(ext string) string {
	if ct, ok := contentTypes[NormalizeExt(ext)]; ok {
		return ct
	}
	return "application/octet-stream"
}

// ClassifyFile derives the FileKind from the scraper's naming convention:
// "_data_" JSON payloads are metadata, "_adjunto_" files are attachments,
// everything else is the main document.
func ClassifyFile(filename string) FileKind {
	lower := strings.ToLower(filename)
	switch {
	case strings.Contains(lower, "_data_") && strings.HasSuffix(lower, ".json"):
		return FileKindMetadata
	case strings.Contains(lower, "_adjunto_"):
		return FileKindAttachment
	default:
		return FileKindDocument
	}
}
