package config

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubParser struct {
	parse func(data []byte, target any, path string) error
}

func (s *stubParser) Parse(data []byte, target any, path string) error {
	return s.parse(data, target, path)
}

type stubFetcher struct {
	data []byte
	err  error
}

func (s *stubFetcher) Fetch() ([]byte, error) {
	return s.data, s.err
}

type pipelineConfig struct {
	Stage    string
	Attempts int
	calls    []string
}

func (c *pipelineConfig) SetDefaults() bool {
	c.calls = append(c.calls, "defaults")

	if c.Attempts == 0 {
		c.Attempts = 3

		return true
	}

	return false
}

func (c *pipelineConfig) Validate() error {
	c.calls = append(c.calls, "validate")

	if c.Stage == "" {
		return errors.New("stage must not be empty")
	}

	return nil
}

func setStage(stage string) *stubParser {
	return &stubParser{
		parse: func(_ []byte, target any, _ string) error {
			cfg, ok := target.(*pipelineConfig)
			if !ok {
				return errors.New("unexpected target type")
			}

			cfg.Stage = stage
			cfg.calls = append(cfg.calls, "parse")

			return nil
		},
	}
}

func TestLoad_ParsesDefaultsThenValidates(t *testing.T) {
	t.Parallel()

	target := &pipelineConfig{}

	result, err := Load(setStage("ingest"), &stubFetcher{data: []byte("stage: ingest")}, target, "")

	require.NoError(t, err)
	assert.Same(t, target, result)
	assert.Equal(t, "ingest", result.Stage)
	assert.Equal(t, 3, result.Attempts)
	assert.Equal(t, []string{"parse", "defaults", "validate"}, result.calls)
}

func TestLoad_PassesDataAndPathToParser(t *testing.T) {
	t.Parallel()

	var (
		gotData []byte
		gotPath string
	)

	parser := &stubParser{
		parse: func(data []byte, _ any, path string) error {
			gotData = data
			gotPath = path

			return nil
		},
	}

	var target struct{}

	_, err := Load(parser, &stubFetcher{data: []byte("raw")}, &target, "training:params")

	require.NoError(t, err)
	assert.Equal(t, []byte("raw"), gotData)
	assert.Equal(t, "training:params", gotPath)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	fetchErr := errors.New("fetch failed")
	parseErr := errors.New("parse failed")

	tests := []struct {
		name     string
		fetcher  *stubFetcher
		parser   *stubParser
		sentinel error
		cause    error
	}{
		{
			name:     "fetch error",
			fetcher:  &stubFetcher{err: fetchErr},
			parser:   setStage("ingest"),
			sentinel: ErrFetch,
			cause:    fetchErr,
		},
		{
			name:    "parse error",
			fetcher: &stubFetcher{data: []byte("x")},
			parser: &stubParser{parse: func([]byte, any, string) error {
				return parseErr
			}},
			sentinel: ErrParse,
			cause:    parseErr,
		},
		{
			name:     "validation error",
			fetcher:  &stubFetcher{data: []byte("x")},
			parser:   setStage(""),
			sentinel: ErrValidate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := Load(tt.parser, tt.fetcher, &pipelineConfig{}, "")

			require.ErrorIs(t, err, tt.sentinel)
			assert.Nil(t, result)

			if tt.cause != nil {
				require.ErrorIs(t, err, tt.cause)
			}
		})
	}
}

func TestProvider_DelegatesToLoad(t *testing.T) {
	t.Parallel()

	target := &pipelineConfig{Attempts: 5}
	provider := Provider(target, "")

	result, err := provider(setStage("train"), &stubFetcher{data: []byte("x")})

	require.NoError(t, err)
	assert.Same(t, target, result)
	assert.Equal(t, "train", result.Stage)
	assert.Equal(t, 5, result.Attempts, "defaults must not override parsed values")
}

//nolint:paralleltest // swaps the process-wide default logger.
func TestLoad_DoesNotWriteToDefaultLogger(t *testing.T) {
	var buf bytes.Buffer

	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(previous) })

	result, err := Load(setStage("ingest"), &stubFetcher{data: []byte("x")}, &pipelineConfig{}, "")

	require.NoError(t, err)
	assert.Equal(t, 3, result.Attempts)
	assert.Empty(t, buf.String())
}
