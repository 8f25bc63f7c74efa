package view

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/idilsaglam/drawnumber/internal/model"
)

// Stream writes outcomes as plain text lines. It never solicits input.
type Stream struct {
	mu     sync.Mutex
	w      io.Writer
	closer io.Closer
}

func NewStream(w io.Writer) *Stream {
	return &Stream{w: w}
}

// NewFileStream truncates or creates path and writes to it until Close.
func NewFileStream(path string) (*Stream, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("open output: %w", err)
	}
	return &Stream{w: f, closer: f}, nil
}

func (s *Stream) SetObserver(Observer) {}
func (s *Stream) Start()               {}

func (s *Stream) Result(r model.Result)   { s.println("Result: " + r.String()) }
func (s *Stream) DisplayError(msg string) { s.println(errorPrefix + msg) }
func (s *Stream) NumberIncorrect()        { s.println(incorrectText) }

func (s *Stream) println(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fprintln(s.w, line)
}

// Close releases the output file. Streams over caller-owned writers are
// left open.
func (s *Stream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closer == nil {
		return nil
	}
	err := s.closer.Close()
	s.closer = nil
	s.w = io.Discard
	return err
}
