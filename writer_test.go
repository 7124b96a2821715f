package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func TestWriteResponseHeader(t *testing.T) {
	res := &Response{
		Status:        200,
		Phrase:        "OK",
		ContentType:   "text/plain",
		ContentLength: 6,
	}
	ss := []string{
		"HTTP/1.1 200 OK\r\n",
		"Content-Type: text/plain\r\n",
		"Content-Length: 6\r\n",
		"Connection: close\r\n",
		"\r\n",
	}
	w := new(bytes.Buffer)
	if err := WriteResponseHeader(w, res); err != nil {
		t.Fatal(err)
	}
	ExpectEqual(t, strings.Join(ss, ""), w.String())
}

func TestWriteResponse(t *testing.T) {
	w := new(bytes.Buffer)
	if err := WriteResponse(w, ResponseNotFound); err != nil {
		t.Fatal(err)
	}
	out := w.String()
	if !strings.HasPrefix(out, "HTTP/1.1 404 Not Found\r\n") {
		t.Errorf("bad status line: %q", out)
	}
	// Header length must equal the actual body length.
	head, body, ok := strings.Cut(out, "\r\n\r\n")
	if !ok {
		t.Fatalf("no header/body separator in %q", out)
	}
	want := fmt.Sprintf("Content-Length: %d\r\n", len(body))
	if !strings.Contains(head, want) {
		t.Errorf("content length mismatch: header %q, body %d bytes", head, len(body))
	}
	if !strings.HasSuffix(out, "</body></html>") {
		t.Errorf("body not written: %q", out)
	}
}
