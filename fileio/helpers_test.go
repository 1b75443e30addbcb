package fileio_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"

	"github.com/0xalexb/pipeio/fileio"
	"github.com/0xalexb/pipeio/logging"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

type logRecord struct {
	Level string `json:"level"`
	Msg   string `json:"msg"`
	Path  string `json:"path"`
}

type logSink struct {
	buf bytes.Buffer
}

func (s *logSink) records(t *testing.T) []logRecord {
	t.Helper()

	var records []logRecord

	scanner := bufio.NewScanner(bytes.NewReader(s.buf.Bytes()))
	for scanner.Scan() {
		var record logRecord

		require.NoError(t, json.Unmarshal(scanner.Bytes(), &record))

		records = append(records, record)
	}

	require.NoError(t, scanner.Err())

	return records
}

func newHelper(t *testing.T, fsys afero.Fs, opts ...fileio.Option) (*fileio.Helper, *logSink) {
	t.Helper()

	sink := &logSink{}
	logger := logging.NewLogger(logging.LoggerConfig{Level: "debug"}, &sink.buf)

	return fileio.New(logger, fsys, opts...), sink
}

func writeFile(t *testing.T, fsys afero.Fs, path, content string) {
	t.Helper()

	require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0o600))
}
