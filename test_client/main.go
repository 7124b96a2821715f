package main

import (
	"flag"
	"fmt"
	"log"
	"net"
	"os"
)

var addr = flag.String("addr", "localhost:8080", "server address")

// Sends one raw GET per path argument on a fresh connection each time,
// the way the server expects, and dumps every response to stdout.
func main() {
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"/"}
	}

	for _, path := range paths {
		conn, err := net.Dial("tcp", *addr)
		if err != nil {
			log.Fatalf("failed to connect to %s: %v", *addr, err)
		}
		status, err := Get(conn, path, os.Stdout)
		conn.Close()
		if err != nil {
			log.Fatalf("GET %s failed: %v", path, err)
		}
		fmt.Fprintf(os.Stderr, "GET %s -> %d\n", path, status)
	}
}
