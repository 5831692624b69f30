package trace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// A Source produces trace records in order. Next returns false once the
// source is exhausted.
type Source interface {
	Next() (Record, bool)
}

// UnreadableTraceError reports a trace that could not be opened or read.
type UnreadableTraceError struct {
	Path string
	Err  error
}

func (e *UnreadableTraceError) Error() string {
	return fmt.Sprintf("cannot read trace %s: %v", e.Path, e.Err)
}

func (e *UnreadableTraceError) Unwrap() error {
	return e.Err
}

// MaxLineLength is the longest line the Reader decodes. Longer lines are
// skipped like any other malformed line.
const MaxLineLength = 4096

// errLineTooLong marks a line that exceeded MaxLineLength.
var errLineTooLong = fmt.Errorf("%w: line longer than %d bytes",
	ErrMalformedRecord, MaxLineLength)

// Reader decodes records lazily from an io.Reader. Lines that do not decode
// are skipped and counted.
type Reader struct {
	name   string
	br     *bufio.Reader
	logger *log.Logger

	lineNo     int
	numSkipped int
	eof        bool
	err        error
}

// NewReader creates a Reader over r. The name is only used in error messages.
func NewReader(name string, r io.Reader) *Reader {
	return &Reader{
		name: name,
		br:   bufio.NewReaderSize(r, MaxLineLength),
	}
}

// WithLogger makes the reader log every line it skips.
func (r *Reader) WithLogger(logger *log.Logger) *Reader {
	r.logger = logger
	return r
}

// Next returns the next well-formed record.
func (r *Reader) Next() (Record, bool) {
	for {
		line, ok := r.readLine()
		if !ok {
			return Record{}, false
		}

		r.lineNo++

		if line == nil {
			r.skip(errLineTooLong)
			continue
		}

		if strings.TrimSpace(string(line)) == "" {
			continue
		}

		rec, err := ParseLine(string(line))
		if err != nil {
			r.skip(err)
			continue
		}

		return rec, true
	}
}

// readLine returns the next line without its terminator. A nil line with ok
// set means the line was too long and has been discarded.
func (r *Reader) readLine() (line []byte, ok bool) {
	if r.eof || r.err != nil {
		return nil, false
	}

	line, isPrefix, err := r.br.ReadLine()
	if err != nil {
		r.fail(err)
		return nil, false
	}

	if !isPrefix {
		return line, true
	}

	for isPrefix {
		_, isPrefix, err = r.br.ReadLine()
		if err != nil {
			r.fail(err)
			break
		}
	}

	return nil, true
}

func (r *Reader) fail(err error) {
	if errors.Is(err, io.EOF) {
		r.eof = true
		return
	}

	r.err = &UnreadableTraceError{Path: r.name, Err: err}
}

func (r *Reader) skip(err error) {
	r.numSkipped++

	if r.logger != nil {
		r.logger.Printf("%s:%d: skipped: %v", r.name, r.lineNo, err)
	}
}

// NumSkipped returns the number of non-blank lines that failed to decode.
func (r *Reader) NumSkipped() int {
	return r.numSkipped
}

// Err returns the first read error, if any. Malformed lines are not errors.
func (r *Reader) Err() error {
	return r.err
}

// File is a Reader that owns the file it reads from.
type File struct {
	*Reader
	f *os.File
}

// Open opens a trace file for reading.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &UnreadableTraceError{Path: path, Err: unwrapPathError(err)}
	}

	return &File{
		Reader: NewReader(path, f),
		f:      f,
	}, nil
}

// Close closes the underlying file.
func (f *File) Close() error {
	return f.f.Close()
}

func unwrapPathError(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}

	return err
}

// SliceSource serves records from memory.
type SliceSource struct {
	records []Record
	next    int
}

// NewSliceSource creates a source that yields the given records in order.
func NewSliceSource(records ...Record) *SliceSource {
	return &SliceSource{records: records}
}

// Next returns the next record.
func (s *SliceSource) Next() (Record, bool) {
	if s.next >= len(s.records) {
		return Record{}, false
	}

	rec := s.records[s.next]
	s.next++

	return rec, true
}
