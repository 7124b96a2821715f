package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Get writes one GET request for path on conn, copies the whole
// response to out and returns the status code from the status line.
func Get(conn io.ReadWriter, path string, out io.Writer) (int, error) {
	if _, err := fmt.Fprintf(conn, "GET %s HTTP/1.1\r\n\r\n", path); err != nil {
		return 0, fmt.Errorf("failed to send request: %v", err)
	}

	r := bufio.NewReader(conn)
	statusLine, err := r.ReadString('\n')
	if err != nil {
		return 0, fmt.Errorf("failed to read status line: %v", err)
	}
	status, err := parseStatusLine(statusLine)
	if err != nil {
		return 0, err
	}

	if _, err := io.WriteString(out, statusLine); err != nil {
		return status, err
	}
	if _, err := io.Copy(out, r); err != nil {
		return status, err
	}
	return status, nil
}

func parseStatusLine(line string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, fmt.Errorf("invalid status line: %s", line)
	}
	status, err := strconv.Atoi(fields[1])
	if err != nil || status < 100 || status > 599 {
		return 0, fmt.Errorf("invalid status code: %s", fields[1])
	}
	return status, nil
}
