package main

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"io"
)

// Serialize writes a fixed-size value (numbers, arrays and structs made of
// fixed-size fields) to w, in little endian.
func Serialize(w io.Writer, data any) {
	Check(binary.Write(w, binary.LittleEndian, data))
}

func Deserialize(r io.Reader, data any) {
	Check(binary.Read(r, binary.LittleEndian, data))
}

// SerializeSlice writes the length of the slice and then its elements. The
// elements must have a fixed size.
func SerializeSlice[T any](w io.Writer, s []T) {
	Serialize(w, int64(len(s)))
	Serialize(w, s)
}

func DeserializeSlice[T any](r io.Reader, s *[]T) {
	var n int64
	Deserialize(r, &n)
	*s = make([]T, n)
	Deserialize(r, *s)
}

func Zip(data []byte) []byte {
	buf := new(bytes.Buffer)
	zw := gzip.NewWriter(buf)
	_, err := zw.Write(data)
	Check(err)
	Check(zw.Close())
	return buf.Bytes()
}

func Unzip(data []byte) []byte {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	Check(err)
	defer func(zr *gzip.Reader) { Check(zr.Close()) }(zr)
	unzipped, err := io.ReadAll(zr)
	Check(err)
	return unzipped
}
