package main

import (
	"fmt"
	"strings"
)

const maxMimeOverrides = 50

var builtinMimeTypes = map[string]string{
	"html": "text/html",
	"htm":  "text/html",
	"txt":  "text/plain",
	"css":  "text/css",
	"js":   "application/javascript",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"pdf":  "application/pdf",
	"json": "application/json",
}

const defaultMimeType = "application/octet-stream"

type mimeEntry struct {
	extension string
	mimeType  string
}

// MimeRegistry maps file extensions to content types. Overrides set via
// SetType take precedence over the built-in table.
type MimeRegistry struct {
	overrides []mimeEntry
}

func NewMimeRegistry() *MimeRegistry {
	return &MimeRegistry{}
}

// SetType registers mimeType for extension. A leading dot is stripped
// and matching is case-insensitive; an existing entry is updated in
// place. The override table holds at most maxMimeOverrides entries.
func (m *MimeRegistry) SetType(extension, mimeType string) error {
	ext := strings.ToLower(strings.TrimPrefix(extension, "."))
	for i := range m.overrides {
		if m.overrides[i].extension == ext {
			m.overrides[i].mimeType = mimeType
			return nil
		}
	}
	if len(m.overrides) >= maxMimeOverrides {
		return fmt.Errorf("maximum number of custom MIME types reached")
	}
	m.overrides = append(m.overrides, mimeEntry{ext, mimeType})
	return nil
}

// TypeFor returns the content type for path based on the substring
// after the last dot. Unknown or absent extensions map to
// application/octet-stream.
func (m *MimeRegistry) TypeFor(path string) string {
	pos := strings.LastIndexByte(path, '.')
	if pos < 0 {
		return defaultMimeType
	}
	ext := strings.ToLower(path[pos+1:])
	for i := range m.overrides {
		if m.overrides[i].extension == ext {
			return m.overrides[i].mimeType
		}
	}
	if t, ok := builtinMimeTypes[ext]; ok {
		return t
	}
	return defaultMimeType
}
