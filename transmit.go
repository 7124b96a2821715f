package main

import (
	"io"
	"log"
	"os"
)

// sendFile streams one regular file to the client: header first, then
// exactly size bytes via the platform's bulk copy. The size comes from
// a fresh stat at open time, not from the earlier resolution. Open or
// stat failure yields 404; a short transfer is logged and abandoned,
// the peer is gone.
func sendFile(w io.Writer, path string, registry *MimeRegistry) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("E failed to open file %s: %v", path, err)
		return 404, WriteResponse(w, ResponseNotFound)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		log.Printf("E failed to stat file %s: %v", path, err)
		return 404, WriteResponse(w, ResponseNotFound)
	}
	size := info.Size()

	res := &Response{
		Status:        200,
		Phrase:        "OK",
		ContentType:   registry.TypeFor(path),
		ContentLength: size,
	}
	// A header that never went out means no response reached the
	// peer; report that like a dead peer, not a 200.
	if err := WriteResponseHeader(w, res); err != nil {
		return 0, err
	}

	sent, err := platform.Copy(w, f, size)
	if err != nil {
		log.Printf("W short file transfer for %s: sent %d of %d bytes: %v",
			path, sent, size, err)
		return 200, err
	}
	return 200, nil
}
