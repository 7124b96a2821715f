package main

import (
	"fmt"
	"io"
	"strings"
)

// readBufferSize bounds the request. This server reads once and parses
// the first line out of whatever arrived; it never loops to collect a
// larger request.
const readBufferSize = 4096

var errMalformedRequest = fmt.Errorf("malformed request line")

// readRequest reads one buffer's worth of bytes from the connection
// and parses the request line. An empty or failed read means the peer
// is already gone; the caller sends no response for it.
func readRequest(r io.Reader) (*Request, error) {
	buf := make([]byte, readBufferSize)
	n, err := r.Read(buf)
	if n == 0 {
		return nil, fmt.Errorf("failed to read request: %v", err)
	}

	line := string(buf[:n])
	if pos := strings.IndexByte(line, '\n'); pos >= 0 {
		line = line[:pos]
	}
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return nil, errMalformedRequest
	}
	// fields[2], when present, is the HTTP version token; this server
	// does not use it.
	return &Request{Method: fields[0], RawTarget: fields[1]}, nil
}
