package fileio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

// Binary container layout: magic, version byte, codec byte, then the msgpack body.
var binaryMagic = [4]byte{'P', 'I', 'O', 'B'}

const (
	binaryVersion    byte = 1
	binaryHeaderSize      = len(binaryMagic) + 2
)

const (
	codecRaw  byte = 0
	codecZstd byte = 1
)

// SaveBinary encodes data with msgpack and writes it to path, replacing any existing file.
// Nothing is written when data cannot be encoded.
//
// Only exported struct fields are stored. Unexported fields are skipped without
// an error and come back as zero values from LoadBinary.
func (h *Helper) SaveBinary(data any, path string) error {
	if path == "" {
		return ErrEmptyPath
	}

	if data == nil {
		return ErrNilData
	}

	var payload bytes.Buffer

	err := encodeBinary(&payload, data, h.compress)
	if err != nil {
		return fmt.Errorf("binary for %q: %w", path, err)
	}

	err = h.writeFile(path, func(w io.Writer) error {
		_, writeErr := payload.WriteTo(w)

		return writeErr //nolint:wrapcheck // wrapped by writeFile
	})
	if err != nil {
		return err
	}

	h.logger.Info("binary file saved", slog.String("path", path))

	return nil
}

// LoadBinary decodes the payload stored at path into target, which must be a non-nil pointer.
func (h *Helper) LoadBinary(path string, target any) error {
	data, err := h.readFile(path)
	if err != nil {
		return err
	}

	err = decodeBinary(data, target)
	if err != nil {
		return fmt.Errorf("binary file %q: %w", path, err)
	}

	h.logger.Info("binary file loaded", slog.String("path", path))

	return nil
}

// LoadBinaryAs decodes the payload stored at path as a value of type T.
func LoadBinaryAs[T any](h *Helper, path string) (T, error) {
	var value T

	err := h.LoadBinary(path, &value)
	if err != nil {
		var zero T

		return zero, err
	}

	return value, nil
}

func encodeBinary(w io.Writer, data any, compress bool) error {
	codec := codecRaw
	if compress {
		codec = codecZstd
	}

	header := append(binaryMagic[:], binaryVersion, codec)

	_, err := w.Write(header)
	if err != nil {
		return err //nolint:wrapcheck // in-memory buffer
	}

	if !compress {
		return marshalPayload(w, data)
	}

	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("%w: zstd writer: %w", ErrSerialize, err)
	}

	err = marshalPayload(zw, data)
	if err != nil {
		_ = zw.Close()

		return err
	}

	err = zw.Close()
	if err != nil {
		return fmt.Errorf("%w: zstd flush: %w", ErrSerialize, err)
	}

	return nil
}

func marshalPayload(w io.Writer, data any) error {
	err := msgpack.NewEncoder(w).Encode(data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSerialize, err)
	}

	return nil
}

func decodeBinary(data []byte, target any) error {
	if target == nil {
		return fmt.Errorf("%w: nil target", ErrConversion)
	}

	if len(data) < binaryHeaderSize || !bytes.Equal(data[:len(binaryMagic)], binaryMagic[:]) {
		return fmt.Errorf("%w: missing header", ErrBinaryFormat)
	}

	version := data[len(binaryMagic)]
	if version != binaryVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrBinaryFormat, version)
	}

	body := data[binaryHeaderSize:]

	switch codec := data[len(binaryMagic)+1]; codec {
	case codecRaw:
	case codecZstd:
		decompressed, err := decompress(body)
		if err != nil {
			return err
		}

		body = decompressed
	default:
		return fmt.Errorf("%w: unknown codec %d", ErrBinaryFormat, codec)
	}

	// Skipping over the value first separates a corrupt body from a type mismatch.
	var raw msgpack.RawMessage

	decoder := msgpack.NewDecoder(bytes.NewReader(body))

	err := decoder.Decode(&raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBinaryFormat, err)
	}

	err = msgpack.Unmarshal(raw, target)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConversion, err)
	}

	return nil
}

func decompress(body []byte) ([]byte, error) {
	zr, err := zstd.NewReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: zstd reader: %w", ErrBinaryFormat, err)
	}
	defer zr.Close()

	decompressed, err := io.ReadAll(zr)
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: truncated zstd stream", ErrBinaryFormat)
		}

		return nil, fmt.Errorf("%w: zstd: %w", ErrBinaryFormat, err)
	}

	return decompressed, nil
}
