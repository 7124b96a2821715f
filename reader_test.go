package main

import (
	"strings"
	"testing"
)

func ExpectEqual(t *testing.T, expect, actual string) {
	t.Helper()
	if expect != actual {
		t.Errorf("Got %s, want %s", actual, expect)
	}
}

func TestReadRequest(t *testing.T) {
	req, err := readRequest(strings.NewReader("GET /index.html HTTP/1.1\r\nHost: localhost\r\n\r\n"))
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	ExpectEqual(t, "GET", req.Method)
	ExpectEqual(t, "/index.html", req.RawTarget)
}

func TestReadRequestNoVersionToken(t *testing.T) {
	// The parser only needs two tokens; a bare "GET /" line is fine.
	req, err := readRequest(strings.NewReader("GET /\r\n"))
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	ExpectEqual(t, "GET", req.Method)
	ExpectEqual(t, "/", req.RawTarget)
}

func TestReadRequestMalformed(t *testing.T) {
	for _, line := range []string{"GET\r\n", "\r\n", "   \r\n"} {
		if _, err := readRequest(strings.NewReader(line)); err != errMalformedRequest {
			t.Errorf("%q: got %v, want errMalformedRequest", line, err)
		}
	}
}

func TestReadRequestEmptyRead(t *testing.T) {
	_, err := readRequest(strings.NewReader(""))
	if err == nil {
		t.Error("empty read should fail")
	}
	if err == errMalformedRequest {
		t.Error("empty read is a dead peer, not a bad request")
	}
}
