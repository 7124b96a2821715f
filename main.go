package main

import (
	"flag"
	"log"
)

var (
	dir      = flag.String("dir", "", "directory to serve files from")
	port     = flag.Int("port", DefaultPort, "port number")
	template = flag.String("template", defaultTemplatePath, "directory listing template file")
)

func main() {
	flag.Parse()

	cfg := NewConfig(*dir, *port)
	cfg.TemplatePath = *template
	if err := cfg.Validate(); err != nil {
		log.Fatalf("E %v", err)
	}

	server := NewServer(cfg)
	server.SetRequestCallback(func(method, path string, status int) {
		log.Printf("I %s %s -> %d", method, path, status)
	})

	if err := server.Start(); err != nil {
		log.Fatalf("E %v", err)
	}
}
