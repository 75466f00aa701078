package argtok

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frobHelp = `Usage: frob [OPTIONS] FILE...

Options:
  --verbose        say more
  --jobs=N         parallel jobs
  --max-size=SIZE  skip files bigger than SIZE
`

type frobOptions struct {
	Verbose bool
	Jobs    float64
	MaxSize ByteSize
	Files   []string
}

var frobKeys = []string{"help", KeyForField("Verbose"), KeyForField("Jobs"), KeyForField("MaxSize")}

func parseFrob(args []string) (opts frobOptions, err error) {
	opts.Jobs = 1
	rest := false
	for _, raw := range args {
		if rest {
			opts.Files = append(opts.Files, raw)
			continue
		}
		tok := Classify(raw)
		if tok.IsSentinel() {
			rest = true
			continue
		}
		if tok.IsPositional() {
			opts.Files = append(opts.Files, tok.Value)
			continue
		}
		switch tok.Key {
		case "help":
			err = Help(frobHelp)
		case "verbose":
			opts.Verbose, err = Bool(tok)
		case "jobs":
			opts.Jobs, err = Number(tok, "jobs needs a count", Policy[float64]{Enabled: 4, Disabled: 1})
		case "max-size":
			opts.MaxSize, err = Bytes(tok, "max-size needs a size", Policy[ByteSize]{Enabled: 100e6})
		default:
			err = UnknownOption(tok, frobKeys...)
		}
		if err != nil {
			// Help must reach HandleErr unwrapped or the message
			// equality won't hold.
			if err.Error() == frobHelp {
				return
			}
			err = errors.WithMessage(err, "parsing options")
			return
		}
	}
	return
}

func TestDriverLoop(t *testing.T) {
	opts, err := parseFrob([]string{"--verbose", "--jobs=2", "--max-size=1gb", "a.txt", "b.txt"})
	require.NoError(t, err)
	assert.EqualValues(t, frobOptions{
		Verbose: true,
		Jobs:    2,
		MaxSize: 1e9,
		Files:   []string{"a.txt", "b.txt"},
	}, opts)
}

func TestDriverLoopSentinel(t *testing.T) {
	opts, err := parseFrob([]string{"--verbose", "--", "--jobs=2"})
	require.NoError(t, err)
	assert.True(t, opts.Verbose)
	assert.EqualValues(t, 1, opts.Jobs)
	assert.EqualValues(t, []string{"--jobs=2"}, opts.Files)
}

func TestDriverLoopFallbacks(t *testing.T) {
	// Tokens resolve independently: --jobs doesn't consume the next
	// argument, it falls back.
	opts, err := parseFrob([]string{"--jobs", "x"})
	require.NoError(t, err)
	assert.EqualValues(t, 4, opts.Jobs)
	assert.EqualValues(t, []string{"x"}, opts.Files)

	opts, err = parseFrob([]string{"--no-jobs"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, opts.Jobs)

	opts, err = parseFrob([]string{"--max-size"})
	require.NoError(t, err)
	assert.EqualValues(t, 100e6, opts.MaxSize)
}

func TestDriverLoopErrors(t *testing.T) {
	var buf bytes.Buffer
	_, err := parseFrob([]string{"--jobs=abc"})
	require.Error(t, err)
	assert.EqualValues(t, ExitInvalid, HandleErr(&buf, frobHelp, err))
	assert.EqualValues(t, "parsing options: --jobs must have a number value (e.g. --jobs=42)\n", buf.String())

	buf.Reset()
	_, err = parseFrob([]string{"--vrebose"})
	require.Error(t, err)
	assert.EqualValues(t, ExitInvalid, HandleErr(&buf, frobHelp, err))
	assert.EqualValues(t, "parsing options: unknown option: \"--vrebose\" (did you mean \"--verbose\"?)\n", buf.String())
}

func TestDriverLoopHelp(t *testing.T) {
	var buf bytes.Buffer
	_, err := parseFrob([]string{"--help", "--jobs=abc"})
	require.Error(t, err)
	assert.EqualValues(t, 0, HandleErr(&buf, frobHelp, err))
	assert.EqualValues(t, frobHelp, buf.String())
}
