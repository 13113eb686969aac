// Package testsupport provides fakes shared by selector, protocol, and
// command tests.
package testsupport

import (
	"bufio"
	"fmt"
	"net"
	"strings"
	"sync"
	"testing"
)

// MPDServer is a minimal scripted MPD endpoint. It greets each connection,
// then answers scripted commands; unscripted commands get an ACK.
type MPDServer struct {
	Addr string

	listener net.Listener
	greeting string

	mu        sync.Mutex
	responses map[string][]string
	failures  map[string]string
	requests  []string
}

// NewMPDServer starts a server on a loopback port and shuts it down with the
// test.
func NewMPDServer(t *testing.T) *MPDServer {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	s := &MPDServer{
		Addr:      listener.Addr().String(),
		listener:  listener,
		greeting:  "OK MPD 0.23.5\n",
		responses: make(map[string][]string),
		failures:  make(map[string]string),
	}
	t.Cleanup(func() { listener.Close() })
	go s.serve()
	return s
}

// SetGreeting overrides the greeting line sent on connect.
func (s *MPDServer) SetGreeting(greeting string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.greeting = greeting
}

// Handle scripts a success response: body lines followed by OK.
func (s *MPDServer) Handle(command string, body ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[command] = body
}

// Fail scripts an error response carrying message after the ACK sentinel.
func (s *MPDServer) Fail(command, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[command] = message
}

// Requests returns every command line received so far.
func (s *MPDServer) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

func (s *MPDServer) serve() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			return
		}
		go s.handleConn(conn)
	}
}

func (s *MPDServer) handleConn(conn net.Conn) {
	defer conn.Close()

	s.mu.Lock()
	greeting := s.greeting
	s.mu.Unlock()
	if _, err := fmt.Fprint(conn, greeting); err != nil {
		return
	}

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		command := strings.TrimSpace(scanner.Text())

		s.mu.Lock()
		s.requests = append(s.requests, command)
		message, failed := s.failures[command]
		body, scripted := s.responses[command]
		s.mu.Unlock()

		switch {
		case failed:
			fmt.Fprintf(conn, "ACK [5@0] {} %s\n", message)
		case scripted:
			for _, line := range body {
				fmt.Fprintf(conn, "%s\n", line)
			}
			fmt.Fprint(conn, "OK\n")
		default:
			fmt.Fprintf(conn, "ACK [5@0] {} unknown command %q\n", command)
		}
	}
}
