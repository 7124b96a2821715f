package main

import (
	"fmt"
	"strings"
)

// humanSize formats a byte count the way the listing shows it: plain
// bytes below 1 KiB, then KB/MB/GB with one decimal place.
func humanSize(n int64) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024.0)
	case n < 1024*1024*1024:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024.0*1024.0))
	default:
		return fmt.Sprintf("%.1f GB", float64(n)/(1024.0*1024.0*1024.0))
	}
}

const entryTimeFormat = "2006-01-02 15:04:05"

// renderEntry formats one directory child as a table row. Directories
// link with a trailing slash and show "-" in the size column.
func renderEntry(e DirEntry) string {
	timestr := e.ModTime.Local().Format(entryTimeFormat)
	if e.IsDir {
		return fmt.Sprintf(
			`<tr><td><a href="%s/"><span class="icon">📁</span> %s/</a></td>`+
				`<td class="size">-</td><td class="date">%s</td></tr>`,
			e.Name, e.Name, timestr)
	}
	return fmt.Sprintf(
		`<tr><td><a href="%s"><span class="icon">📄</span> %s</a></td>`+
			`<td class="size">%s</td><td class="date">%s</td></tr>`,
		e.Name, e.Name, humanSize(e.Size), timestr)
}

// displayPath is the listing's heading: "/" for the served root,
// otherwise the URL path with its leading slash stripped.
func displayPath(urlPath string) string {
	if urlPath == "/" || urlPath == "" {
		return "/"
	}
	return strings.TrimPrefix(urlPath, "/")
}

// buildListing enumerates dir and renders the full listing document.
// urlPath is the request target the directory was reached by; it
// decides the heading and whether a parent link is rendered.
func buildListing(dir, urlPath, templatePath string) (string, error) {
	var entries strings.Builder
	err := platform.ListDirectory(dir, func(e DirEntry) bool {
		entries.WriteString(renderEntry(e))
		return true
	})
	if err != nil {
		return "", fmt.Errorf("failed to list directory %s: %v", dir, err)
	}

	tmpl, err := loadTemplate(templatePath)
	if err != nil {
		return "", err
	}

	hasParent := urlPath != "/" && urlPath != ""
	return processTemplate(tmpl, displayPath(urlPath), entries.String(), hasParent), nil
}
