package main

import (
	"fmt"
	"io"
)

// WriteResponseHeader emits the status line and the fixed header set
// every response carries: Content-Type, Content-Length and
// Connection: close, followed by the blank separator line.
func WriteResponseHeader(w io.Writer, res *Response) error {
	_, err := fmt.Fprintf(w,
		"HTTP/1.1 %d %s\r\n"+
			"Content-Type: %s\r\n"+
			"Content-Length: %d\r\n"+
			"Connection: close\r\n\r\n",
		res.Status, res.Phrase, res.ContentType, res.ContentLength)
	return err
}

// WriteResponse emits a complete response whose body is held in
// memory, which is how the canned error pages go out.
func WriteResponse(w io.Writer, res *Response) error {
	head := *res
	head.ContentLength = int64(len(res.Body))
	if err := WriteResponseHeader(w, &head); err != nil {
		return err
	}
	_, err := io.WriteString(w, res.Body)
	return err
}
