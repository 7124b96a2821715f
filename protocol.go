package main

// Request is the parsed first line of one exchange. RawTarget is the
// target as received, still percent-encoded; Target has percent
// escapes and '+' decoded.
type Request struct {
	Method    string
	RawTarget string
	Target    string
}

// Response carries everything needed to emit one HTTP/1.1 response
// head, plus an optional in-memory body for error pages. File and
// listing bodies are written separately by their senders.
type Response struct {
	Status        int
	Phrase        string
	ContentType   string
	ContentLength int64
	Body          string
}

var ResponseBadRequest = &Response{
	Status:      400,
	Phrase:      "Bad Request",
	ContentType: "text/html",
	Body: "<html><body><h1>400 Bad Request</h1>" +
		"<p>Your browser sent a request that this server could not understand.</p></body></html>",
}

var ResponseNotFound = &Response{
	Status:      404,
	Phrase:      "Not Found",
	ContentType: "text/html",
	Body: "<html><body><h1>404 Not Found</h1>" +
		"<p>The requested resource could not be found.</p></body></html>",
}

var ResponseInternalError = &Response{
	Status:      500,
	Phrase:      "Internal Server Error",
	ContentType: "text/html",
	Body: "<html><body><h1>500 Internal Server Error</h1>" +
		"<p>The server encountered an unexpected condition.</p></body></html>",
}
