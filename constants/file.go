package constants

import "strings"

// AllowedExtensions holds the default file extensions accepted for invoice ingestion.
// Documents enter the pipeline as raw text; PDF rendering happens upstream.
var AllowedExtensions = map[string]struct{}{
	"txt": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
