package main

import (
	"fmt"
	"os"
	"strings"
)

const (
	placeholderPath    = "{{DIRECTORY_PATH}}"
	placeholderEntries = "{{DIRECTORY_ENTRIES}}"
	placeholderParent  = "{{PARENT_DIRECTORY_LINK}}"
)

const parentLinkHTML = `<div class="parent"><a href=".."><span class="icon">⬆️</span> Parent Directory</a></div>`

// loadTemplate reads the whole template file. The template is loaded
// fresh for every listing, there is no caching.
func loadTemplate(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to open template file %s: %v", path, err)
	}
	if len(content) == 0 {
		return "", fmt.Errorf("empty template file %s", path)
	}
	return string(content), nil
}

// processTemplate substitutes the three listing placeholders. Every
// occurrence of a placeholder receives the same value. The parent link
// is empty when the listed directory is the served root.
func processTemplate(tmpl, displayPath, entries string, hasParent bool) string {
	parentLink := ""
	if hasParent {
		parentLink = parentLinkHTML
	}
	out := strings.ReplaceAll(tmpl, placeholderPath, displayPath)
	out = strings.ReplaceAll(out, placeholderEntries, entries)
	return strings.ReplaceAll(out, placeholderParent, parentLink)
}
