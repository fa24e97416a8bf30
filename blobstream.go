package blobstream

import (
	"bytes"
	"context"
	"io"
	"net/url"
	"os"
)

// Stream is a readable byte stream that can be transparently backed by a
// file. It behaves as a plain sequential reader until a caller needs
// random access, a known length, or a reopenable handle, at which point
// the remaining bytes are materialized into a temporary file on disk.
//
// A Stream is exclusively owned by a single consumer; it performs no
// internal locking. Callers must ensure Close runs on every exit path so
// the underlying source and any temporary backing file are released.
type Stream struct {
	// src is the live sequential source. It is nil once the stream has
	// been closed, or once the source was drained into a backing file
	// and not yet reopened.
	src io.Reader

	// path is the backing file holding the stream content. It is either
	// the path given to FromFile or a temporary file created by File.
	// Empty if neither has happened.
	path string

	// temporary marks path as created by this stream, to be removed
	// when the stream is closed.
	temporary bool

	// length is the total byte count, -1 while unknown.
	length int64

	// position counts bytes delivered through Read.
	position int64

	opts Options
}

var _ io.ReadCloser = (*Stream)(nil)

func newStream(src io.Reader, path string, length int64, opts Options) *Stream {
	return &Stream{
		src:       src,
		path:      path,
		temporary: path == "",
		length:    length,
		opts:      opts,
	}
}

// New casts or wraps the given reader into a Stream. If r already is a
// Stream it is returned unchanged and the options are ignored, so
// wrapping is idempotent and never stacks. The length is unknown unless
// declared with WithLength.
func New(r io.Reader, options ...Option) *Stream {
	if s, ok := r.(*Stream); ok {
		return s
	}
	opts := processOptions(options...)
	return newStream(r, "", opts.Length, opts)
}

// FromBytes creates a Stream over an in-memory buffer. The length is
// known immediately and Length never touches the disk.
func FromBytes(data []byte, options ...Option) *Stream {
	opts := processOptions(options...)
	return newStream(bytes.NewReader(data), "", int64(len(data)), opts)
}

// FromFile creates a Stream backed by an existing file. The file is the
// stream's backing file from the start: it is never copied, Length is
// answered from its size, and Close never deletes it.
func FromFile(path string, options ...Option) (*Stream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &StreamError{Op: "open", Source: path, Err: err}
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, &StreamError{Op: "open", Source: path, Err: err}
	}
	opts := processOptions(options...)
	s := newStream(f, path, info.Size(), opts)
	s.temporary = false
	return s, nil
}

// FromURL creates a Stream over the resource named by a URL. The file
// scheme (and scheme-less paths) delegate to FromFile; http and https
// fetch the resource with the configured client; other schemes must be
// plugged in with RegisterScheme. The length is unknown unless the
// scheme can determine it or the caller declares it with WithLength.
func FromURL(ctx context.Context, rawurl string, options ...Option) (*Stream, error) {
	u, err := url.Parse(rawurl)
	if err != nil {
		return nil, &StreamError{Op: "open", Source: rawurl, Err: err}
	}

	switch u.Scheme {
	case "":
		return FromFile(rawurl, options...)
	case "file":
		return FromFile(u.Path, options...)
	}

	opener, exists := lookupScheme(u.Scheme)
	if !exists {
		return nil, &StreamError{Op: "open", Source: rawurl, Err: ErrNotSupported}
	}

	opts := processOptions(options...)
	src, length, err := opener(ctx, u, &opts)
	if err != nil {
		return nil, &StreamError{Op: "open", Source: rawurl, Err: err}
	}
	if length < 0 {
		length = opts.Length
	}
	return newStream(src, "", length, opts), nil
}

// ensureOpen recreates the source from the backing file if the live
// handle has been dropped. Reopening always starts at byte 0; it can
// only happen after the previous handle was fully released, so a caller
// never observes a silent mid-stream jump.
func (s *Stream) ensureOpen() error {
	if s.src != nil {
		return nil
	}
	if s.path == "" {
		return &StreamError{Op: "read", Err: ErrStreamExhausted}
	}
	f, err := os.Open(s.path)
	if err != nil {
		return &StreamError{Op: "reopen", Source: s.path, Err: err}
	}
	s.src = f
	return nil
}

// Read reads the next chunk from the stream, reopening from the backing
// file if needed. Reaching end of stream closes the stream as a side
// effect, so an owned temporary file is removed without waiting for an
// explicit Close; the io.EOF result is still returned to the caller.
func (s *Stream) Read(p []byte) (int, error) {
	if err := s.ensureOpen(); err != nil {
		return 0, err
	}
	n, err := s.src.Read(p)
	if n > 0 {
		s.position += int64(n)
	}
	if err == io.EOF {
		if closeErr := s.Close(); closeErr != nil {
			s.opts.Logger.Printf("blobstream: close on end of stream: %v", closeErr)
		}
	}
	return n, err
}

// File returns the backing file path, materializing the stream into a
// newly created temporary file if no file exists yet. Once a file
// exists, repeated calls return the same path without copying again.
//
// Materialization consumes the live source, so it is only permitted
// before any bytes have been read: a partially read source cannot be
// recaptured because the consumed prefix is gone. Reads issued after
// materialization reopen from the file.
func (s *Stream) File() (string, error) {
	if s.path != "" {
		return s.path, nil
	}
	if s.src == nil {
		return "", &StreamError{Op: "materialize", Err: ErrStreamConsumed}
	}
	if s.position > 0 {
		return "", &StreamError{Op: "materialize", Err: ErrStreamInUse}
	}

	f, err := createTemp(&s.opts)
	if err != nil {
		return "", &StreamError{Op: "materialize", Err: err}
	}
	if _, err := io.Copy(f, s.src); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", &StreamError{Op: "materialize", Source: f.Name(), Err: err}
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", &StreamError{Op: "materialize", Source: f.Name(), Err: err}
	}

	if closer, ok := s.src.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			os.Remove(f.Name())
			return "", &StreamError{Op: "materialize", Err: err}
		}
	}
	s.src = nil
	s.path = f.Name()
	s.temporary = true
	return s.path, nil
}

// Length returns the total byte count of the stream. If the length is
// not known upfront the stream is materialized via File and the backing
// file's size is used, so asking for an unknown length writes the
// remaining bytes to disk. Callers needing the length without that side
// effect must declare it at construction with WithLength.
func (s *Stream) Length() (int64, error) {
	if s.length >= 0 {
		return s.length, nil
	}
	path, err := s.File()
	if err != nil {
		return 0, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return 0, &StreamError{Op: "stat", Source: path, Err: err}
	}
	s.length = info.Size()
	return s.length, nil
}

// Position returns the number of bytes read through this stream so far.
func (s *Stream) Position() int64 {
	return s.position
}

// HasFile reports whether the stream currently has a backing file,
// without triggering materialization.
func (s *Stream) HasFile() bool {
	return s.path != ""
}

// Close releases the live source and the backing file reference. A
// temporary backing file created by this stream is deleted from disk;
// a file supplied via FromFile is left untouched. Deletion failures are
// logged and ignored so Close is always safe during cleanup. Close is
// idempotent; later calls are no-ops.
func (s *Stream) Close() error {
	var err error
	if s.src != nil {
		if closer, ok := s.src.(io.Closer); ok {
			if closeErr := closer.Close(); closeErr != nil {
				err = &StreamError{Op: "close", Err: closeErr}
			}
		}
		s.src = nil
	}
	if s.path != "" {
		if s.temporary {
			if removeErr := os.Remove(s.path); removeErr != nil {
				s.opts.Logger.Printf("blobstream: remove temporary file %s: %v", s.path, removeErr)
			}
		}
		s.path = ""
	}
	return err
}
