// Package blobstream provides a readable byte stream that can be
// transparently backed by a file, materializing itself to disk on demand
// when a caller needs random access, a known length, or a reopenable
// handle, while remaining a plain sequential stream otherwise.
//
// The package serves consumers that receive content from heterogeneous
// sources (in-memory buffers, network resources, existing files) but
// need a uniform file-capable handle without forcing eager disk writes.
//
// # Construction
//
// A [Stream] is created from whatever the content happens to live in:
//
//	s := blobstream.New(reader)            // any io.Reader
//	s := blobstream.FromBytes(data)        // in-memory buffer, length known
//	s, err := blobstream.FromFile(path)    // existing file, never deleted
//	s, err := blobstream.FromURL(ctx, url) // file, http, https, or a registered scheme
//
// [New] is an idempotent cast-or-wrap: passing a value that already is a
// *Stream returns it unchanged, so layers of an application can call it
// defensively without stacking wrappers.
//
// # Materialization
//
// Calling [Stream.File] returns the path of the backing file, creating a
// temporary file from the remaining source bytes if none exists yet:
//
//	path, err := s.File()
//
// The file is created once; repeated calls return the same path. Streams
// built with [FromFile] use the original file and never copy. A stream
// that has already been partially read refuses to materialize
// ([ErrStreamInUse]) because the consumed prefix cannot be recaptured.
//
// [Stream.Length] answers from the declared or file-derived size when
// known, and otherwise materializes the stream to measure it. Callers
// who know the size upfront avoid that side effect with [WithLength].
//
// # Lifecycle
//
// Reads delivered after materialization reopen from the backing file.
// Reading to end of stream closes the stream automatically, removing an
// owned temporary file without waiting for an explicit Close. Close is
// idempotent and must run on every exit path:
//
//	s := blobstream.New(src)
//	defer s.Close()
//
// A backing file created by the stream is deleted on Close; a file
// supplied by the caller never is.
//
// # Checksums
//
// The content can be fingerprinted through the backing file:
//
//	sum, err := s.Checksum(blobstream.ChecksumSHA256)
//	sums, err := s.Checksums([]blobstream.ChecksumAlgorithm{
//	    blobstream.ChecksumSHA256,
//	    blobstream.ChecksumXXHash,
//	})
//
// This materializes the stream but reads the file through a separate
// handle, leaving the stream's own read position untouched.
//
// # Error Handling
//
// The package provides sentinel errors and helper functions:
//
//	_, err := s.File()
//	if blobstream.IsInUse(err) {
//	    // reading already started; too late to materialize
//	}
//
//	var streamErr *blobstream.StreamError
//	if errors.As(err, &streamErr) {
//	    fmt.Printf("Operation: %s, Source: %s\n", streamErr.Op, streamErr.Source)
//	}
//
// # Configuration
//
// Temporary file placement and the HTTP fetch timeout can be configured
// via environment variables with the BLOBSTREAM_ prefix, or per stream
// with options:
//
//	s := blobstream.New(r,
//	    blobstream.WithTempDir("/var/tmp"),
//	    blobstream.WithLength(size),
//	)
//
// # Concurrency
//
// A Stream is exclusively owned by a single consumer and performs no
// internal locking; concurrent calls on one instance are undefined.
package blobstream
