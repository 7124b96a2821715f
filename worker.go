package main

import (
	"log"
	"net"
)

// Worker owns one connected socket for exactly one exchange: read the
// request, parse and decode it, resolve the target against the served
// root, then answer with a listing, a file, or an error page. The
// caller closes the connection afterwards.
type Worker struct {
	conn     net.Conn
	cfg      *Config
	registry *MimeRegistry

	req      *Request
	resolved *ResolvedPath
	res      *Response // pending error page, set by the state that failed
	status   int       // final status code; 0 when no response was sent
}

type stateFunc func(*Worker) stateFunc

func NewWorker(cfg *Config, registry *MimeRegistry) *Worker {
	return &Worker{cfg: cfg, registry: registry}
}

// Handle runs the exchange to completion and returns the status code
// that went out, or 0 when the peer vanished before a response.
func (w *Worker) Handle(conn net.Conn) int {
	w.conn = conn

	for state := waitForRequest; state != nil; {
		state = state(w)
	}
	return w.status
}

// state funcs

func waitForRequest(w *Worker) stateFunc {
	req, err := readRequest(w.conn)
	if err == errMalformedRequest {
		log.Printf("E %v", err)
		w.res = ResponseBadRequest
		return sendErrorResponse
	}
	if err != nil {
		// Empty or failed read, the peer is already gone. No response.
		log.Printf("W %v", err)
		return finishExchange
	}
	w.req = req
	log.Printf("I %s %s from %s", req.Method, req.RawTarget, remoteAddr(w.conn))

	// Only GET is ever legitimate here; everything else is answered
	// with 404, matching what this server has always sent.
	if req.Method != "GET" {
		log.Printf("E unsupported method: %s", req.Method)
		w.res = ResponseNotFound
		return sendErrorResponse
	}
	return decodeTarget
}

func decodeTarget(w *Worker) stateFunc {
	target, err := urlDecode(w.req.RawTarget)
	if err != nil {
		log.Printf("E failed to decode target %s: %v", w.req.RawTarget, err)
		w.res = ResponseBadRequest
		return sendErrorResponse
	}
	w.req.Target = target
	return resolveTarget
}

func resolveTarget(w *Worker) stateFunc {
	resolved, err := resolvePath(w.cfg.Root, w.req.Target)
	switch err {
	case nil:
	case errPathTraversal:
		// Blocked traversals answer exactly like a missing path; the
		// client never learns why.
		log.Printf("W path traversal attempt blocked: %s", w.req.Target)
		w.res = ResponseNotFound
		return sendErrorResponse
	default:
		log.Printf("E not found: %s", w.req.Target)
		w.res = ResponseNotFound
		return sendErrorResponse
	}
	w.resolved = resolved

	if resolved.IsDir {
		return serveListing
	}
	return serveFile
}

func serveListing(w *Worker) stateFunc {
	html, err := buildListing(w.resolved.Path, w.req.Target, w.cfg.TemplatePath)
	if err != nil {
		log.Printf("E failed to build listing for %s: %v", w.resolved.Path, err)
		w.res = ResponseInternalError
		return sendErrorResponse
	}

	res := &Response{
		Status:        200,
		Phrase:        "OK",
		ContentType:   "text/html",
		ContentLength: int64(len(html)),
	}
	if err := WriteResponseHeader(w.conn, res); err != nil {
		log.Printf("W failed to send listing header: %v", err)
		return finishExchange
	}
	w.status = 200
	if _, err := w.conn.Write([]byte(html)); err != nil {
		log.Printf("W failed to send listing body: %v", err)
	}
	return finishExchange
}

func serveFile(w *Worker) stateFunc {
	status, err := sendFile(w.conn, w.resolved.Path, w.registry)
	if err != nil {
		log.Printf("W file transfer ended early: %v", err)
	}
	w.status = status
	return finishExchange
}

func sendErrorResponse(w *Worker) stateFunc {
	log.Printf("E sending error response: %d %s", w.res.Status, w.res.Phrase)
	w.status = w.res.Status
	if err := WriteResponse(w.conn, w.res); err != nil {
		log.Printf("W failed to send error response: %v", err)
	}
	return finishExchange
}

// finishExchange drops the transient decoded state; the method and
// raw target stay around for the server's request callback.
func finishExchange(w *Worker) stateFunc {
	if w.req != nil {
		w.req.Target = ""
	}
	w.resolved = nil
	return nil
}

func remoteAddr(conn net.Conn) string {
	if addr := conn.RemoteAddr(); addr != nil {
		return addr.String()
	}
	return "?"
}
