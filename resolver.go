package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

var (
	errNotFound      = fmt.Errorf("not found")
	errPathTraversal = fmt.Errorf("path traversal rejected")
)

// ResolvedPath is a request target mapped to a filesystem location
// proven to lie within the served root.
type ResolvedPath struct {
	Path    string
	IsDir   bool
	Size    int64
	ModTime time.Time
}

// resolvePath maps the decoded request target onto the served root.
// The target is split into segments; "." and empty segments are
// dropped, ".." pops one level and popping above the root fails with
// errPathTraversal. The joined result must still have root as a path
// prefix. A target that survives normalization but names nothing on
// disk fails with errNotFound.
func resolvePath(root, target string) (*ResolvedPath, error) {
	depth := 0
	segments := make([]string, 0, strings.Count(target, "/")+1)
	for _, seg := range strings.Split(strings.TrimPrefix(target, "/"), "/") {
		switch seg {
		case "", ".":
			// no-op
		case "..":
			depth--
			if depth < 0 {
				return nil, errPathTraversal
			}
			segments = segments[:len(segments)-1]
		default:
			depth++
			segments = append(segments, seg)
		}
	}

	// Absolutize the root so the containment check below holds for
	// relative roots like "." too, where the joined path would not
	// carry the root as a literal prefix.
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, errNotFound
	}
	path := filepath.Join(absRoot, filepath.Join(segments...))
	if path != absRoot && !strings.HasPrefix(path, absRoot+string(filepath.Separator)) {
		return nil, errPathTraversal
	}

	info, err := platform.Stat(path)
	if err != nil {
		return nil, errNotFound
	}
	return &ResolvedPath{
		Path:    path,
		IsDir:   info.IsDir,
		Size:    info.Size,
		ModTime: info.ModTime,
	}, nil
}
