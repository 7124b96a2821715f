package main

import (
	"io"
	"os"
	"path/filepath"
	"time"
)

// FileInfo is the subset of filesystem metadata the server needs.
type FileInfo struct {
	IsDir   bool
	Size    int64
	ModTime time.Time
}

// DirEntry describes one child of a listed directory.
type DirEntry struct {
	Name    string
	IsDir   bool
	Size    int64
	ModTime time.Time
}

// Platform is the OS capability the request pipeline depends on:
// metadata lookup, directory enumeration and bulk file-to-socket
// transfer. Used to mock the filesystem in tests.
var platform Platform = osPlatform{}

type Platform interface {
	Stat(path string) (FileInfo, error)
	// ListDirectory calls visit for every child of path excluding "."
	// and "..". Enumeration stops early when visit returns false.
	ListDirectory(path string, visit func(DirEntry) bool) error
	// Copy transfers exactly n bytes from src to dst, zero-copy where
	// the platform offers it.
	Copy(dst io.Writer, src io.Reader, n int64) (int64, error)
}

type osPlatform struct{}

func (osPlatform) Stat(path string) (FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileInfo{}, err
	}
	return FileInfo{
		IsDir:   info.IsDir(),
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}

func (osPlatform) ListDirectory(path string, visit func(DirEntry) bool) error {
	children, err := os.ReadDir(path)
	if err != nil {
		return err
	}
	// os.ReadDir returns entries sorted by name, so listings come out
	// in a stable order.
	for _, child := range children {
		info, err := os.Stat(filepath.Join(path, child.Name()))
		if err != nil {
			// Entry vanished or is unreadable, skip it.
			continue
		}
		e := DirEntry{
			Name:    child.Name(),
			IsDir:   info.IsDir(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		}
		if !visit(e) {
			return nil
		}
	}
	return nil
}

// Copy rides sendfile when dst is a *net.TCPConn and src an *os.File,
// via the conn's ReadFrom; io.CopyN arranges that by itself.
func (osPlatform) Copy(dst io.Writer, src io.Reader, n int64) (int64, error) {
	return io.CopyN(dst, src, n)
}
