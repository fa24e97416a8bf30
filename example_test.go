package blobstream_test

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gobeaver/blobstream"
)

func ExampleFromBytes() {
	s := blobstream.FromBytes([]byte("hello, world"))
	defer s.Close()

	// The length is known upfront; no file is created to answer it.
	length, _ := s.Length()
	fmt.Println(length)
	fmt.Println(s.HasFile())

	data, _ := io.ReadAll(s)
	fmt.Println(string(data))
	// Output:
	// 12
	// false
	// hello, world
}

func ExampleStream_File() {
	s := blobstream.New(strings.NewReader("needs a file"))
	defer s.Close()

	// Materialize the stream into a temporary backing file.
	path, _ := s.File()

	data, _ := os.ReadFile(path)
	fmt.Println(string(data))

	// Reads after materialization come from the backing file.
	streamed, _ := io.ReadAll(s)
	fmt.Println(string(streamed))
	// Output:
	// needs a file
	// needs a file
}

func ExampleNew() {
	inner := blobstream.FromBytes([]byte("already wrapped"))
	defer inner.Close()

	// New is an idempotent cast-or-wrap: an existing Stream passes through.
	outer := blobstream.New(inner)
	fmt.Println(outer == inner)
	// Output:
	// true
}

func ExampleStream_Checksum() {
	s := blobstream.New(strings.NewReader("fingerprint me"))
	defer s.Close()

	sum, _ := s.Checksum(blobstream.ChecksumSHA256)
	fmt.Println(len(sum))
	// Output:
	// 64
}
