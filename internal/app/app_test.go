package app

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/romanparse/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const prompt = "Input a Roman numeral to convert, or enter to quit."

func TestInteractive(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	testApp, out, errOut := SetupAppTest(t, Config{Prompt: prompt})
	in := strings.NewReader("XIV\nabc\nIIII\nmcmxciv\r\n\nX\n")

	// --- Act ---
	err := testApp.Run(context.Background(), in)

	// --- Assert ---
	require.NoError(t, err)

	wantOut := strings.Join([]string{
		prompt,
		`The decimal value of "XIV" is 14.`,
		prompt,
		prompt,
		prompt,
		`The decimal value of "mcmxciv" is 1994.`,
		prompt,
		"",
	}, "\n")
	if diff := cmp.Diff(wantOut, out.String()); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}

	assert.Contains(t, errOut.String(), `input "abc" contains illegal characters`)
	assert.Contains(t, errOut.String(), `input "IIII" is not a well-formed roman numeral (repeating digit)`)
	assert.NotContains(t, out.String(), `"X" is 10`, "input after the empty line must not be read")
}

func TestInteractive_EndOfInput(t *testing.T) {
	t.Parallel()

	testApp, out, _ := SetupAppTest(t, Config{Prompt: prompt})

	err := testApp.Interactive(context.Background(), strings.NewReader("IX"))
	require.NoError(t, err)
	assert.Contains(t, out.String(), `The decimal value of "IX" is 9.`)
}

func TestInteractive_LongLine(t *testing.T) {
	t.Parallel()

	// Longer than bufio.Scanner's default 64 KiB token limit.
	numeral := strings.Repeat("M", 70000)
	testApp, out, errOut := SetupAppTest(t, Config{})

	err := testApp.Interactive(context.Background(), strings.NewReader(numeral+"\nIV\n"))

	require.NoError(t, err)
	assert.Contains(t, out.String(), "is 70000.")
	assert.Contains(t, out.String(), `The decimal value of "IV" is 4.`)
	assert.NotContains(t, errOut.String(), "token too long")
}

func TestInteractive_CancelWhileWaiting(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })
	testApp, out, _ := SetupAppTest(t, Config{Prompt: prompt})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	finished := make(chan error, 1)
	go func() { finished <- testApp.Interactive(ctx, pr) }()

	// --- Act ---
	// One line goes through, then the shell blocks on the pipe.
	_, err := pw.Write([]byte("XL\n"))
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), `"XL" is 40.`)
	}, time.Second, 10*time.Millisecond)
	cancel()

	// --- Assert ---
	select {
	case err := <-finished:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("shell still blocked after cancellation")
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestInteractive_ReadError(t *testing.T) {
	t.Parallel()

	testApp, _, _ := SetupAppTest(t, Config{})

	err := testApp.Interactive(context.Background(), failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestInteractive_JSONHasNoPrompt(t *testing.T) {
	t.Parallel()

	testApp, out, _ := SetupAppTest(t, Config{Prompt: prompt, Output: "json"})

	require.NoError(t, testApp.Interactive(context.Background(), strings.NewReader("XL\nVX\n")))

	var got []output.Record
	dec := json.NewDecoder(strings.NewReader(out.String()))
	for dec.More() {
		var r output.Record
		require.NoError(t, dec.Decode(&r))
		got = append(got, r)
	}
	require.Len(t, got, 2)
	assert.Equal(t, output.Record{Input: "XL", Value: 40, OK: true}, got[0])
	assert.False(t, got[1].OK)
	assert.Contains(t, got[1].Error, "half measure as deductive")
}

func TestRunNumerals(t *testing.T) {
	t.Parallel()

	testApp, out, errOut := SetupAppTest(t, Config{Numerals: []string{"III", "VV", "MMXXIII"}})

	err := testApp.Run(context.Background(), nil)
	require.ErrorIs(t, err, ErrConversionFailed)
	assert.Contains(t, err.Error(), "1 of 3 numerals")

	assert.Equal(t, "The decimal value of \"III\" is 3.\nThe decimal value of \"MMXXIII\" is 2023.\n", out.String())
	assert.Contains(t, errOut.String(), `input "VV" is not a well-formed roman numeral (repeating half measure)`)
}

func TestRunNumerals_AllValid(t *testing.T) {
	t.Parallel()

	testApp, out, _ := SetupAppTest(t, Config{Numerals: []string{"XC", "CD"}, Output: "yaml"})

	require.NoError(t, testApp.Run(context.Background(), nil))
	assert.Contains(t, out.String(), "input: XC")
	assert.Contains(t, out.String(), "value: 400")
}

func TestRunBatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "years.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
numeral "founding" {
  value  = "MCMXCIV"
  expect = 1994
}

numeral "wrong" {
  value  = "X"
  expect = 11
}

numeral "broken" {
  value = "IIV"
}
`), 0o600))

	testApp, out, errOut := SetupAppTest(t, Config{BatchPaths: []string{dir}})

	err := testApp.Run(context.Background(), nil)
	require.ErrorIs(t, err, ErrConversionFailed)
	assert.Contains(t, err.Error(), "2 of 3 numerals")

	assert.Equal(t, "[founding] The decimal value of \"MCMXCIV\" is 1994.\n", out.String())
	assert.Contains(t, errOut.String(), `[wrong] The decimal value of "X" is 10, expected 11.`)
	assert.Contains(t, errOut.String(), `[broken] input "IIV" is not a well-formed roman numeral (multiple deductive digits)`)
	assert.Contains(t, errOut.String(), "Batch finished.")
}

func TestRunBatch_LoadError(t *testing.T) {
	t.Parallel()

	testApp, _, _ := SetupAppTest(t, Config{BatchPaths: []string{filepath.Join(t.TempDir(), "missing.hcl")}})

	err := testApp.Run(context.Background(), nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrConversionFailed)
	assert.Contains(t, err.Error(), "failed to load batch")
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	valid := Config{Output: "text", LogFormat: "json", LogLevel: "warn", Workers: 1}

	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "bad output", mutate: func(c *Config) { c.Output = "xml" }, wantErr: "invalid output"},
		{name: "bad log format", mutate: func(c *Config) { c.LogFormat = "pretty" }, wantErr: "invalid log-format"},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "trace" }, wantErr: "invalid log-level"},
		{name: "no workers", mutate: func(c *Config) { c.Workers = 0 }, wantErr: "invalid workers"},
		{
			name: "numerals and batch",
			mutate: func(c *Config) {
				c.Numerals = []string{"I"}
				c.BatchPaths = []string{"a.hcl"}
			},
			wantErr: "cannot be combined",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)

			got, err := NewConfig(cfg)
			if tc.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, cfg, *got)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
