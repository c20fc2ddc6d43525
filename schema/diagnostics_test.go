package schema

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// captureLogger returns a logger writing text lines into the buffer.
func captureLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, nil))
}

func TestNoDiagnosticsByDefault(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	v := Shape(Fields{"strKey": String()})

	require.False(t, v.Validate(map[string]any{}, WithLogger(captureLogger(&buf))))
	assert.Empty(t, buf.String(), "nothing may be logged without LogFailures")
}

func TestShapeFailureNamesTheField(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	v := Shape(Fields{"strKey": String()})

	require.False(t, v.Validate(map[string]any{"strKey": 42},
		LogFailures(), WithLogger(captureLogger(&buf))))

	out := buf.String()
	assert.Contains(t, out, "validation failed")
	assert.Contains(t, out, `$['strKey']`)
	assert.Contains(t, out, "42")
}

func TestArrayFailureNamesTheIndex(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	v := Array(String())

	require.False(t, v.Validate([]any{"a", 1},
		LogFailures(), WithLogger(captureLogger(&buf))))

	assert.Contains(t, buf.String(), "$[1]")
}

func TestNestedFailurePathUsesBracketNotation(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	v := Shape(Fields{
		"user": Shape(Fields{
			"tags": Array(String()),
		}),
	})

	input := map[string]any{
		"user": map[string]any{
			"tags": []any{"a", "b", 3},
		},
	}

	require.False(t, v.Validate(input, LogFailures(), WithLogger(captureLogger(&buf))))
	assert.Contains(t, buf.String(), `$['user']['tags'][2]`)
}

func TestUnionReportsOnlyOverallFailure(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	v := Union(String(), Number())

	require.False(t, v.Validate(true, LogFailures(), WithLogger(captureLogger(&buf))))

	out := buf.String()
	assert.Contains(t, out, "union/2")

	// Member rejections stay muted; only the union's line appears.
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("validation failed")))
}

func TestTaggedUnionReportsUnknownTag(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	v := TaggedUnion("tag", map[string]Fields{
		"t1": {"tag": Literal("t1"), "strKey": String()},
	})

	require.False(t, v.Validate(map[string]any{"tag": "t9"},
		LogFailures(), WithLogger(captureLogger(&buf))))

	out := buf.String()
	assert.Contains(t, out, `$['tag']`)
	assert.Contains(t, out, "t9")
}

func TestDiagnosticsWithTestLogger(t *testing.T) {
	t.Parallel()

	// slogt routes trace lines through t.Log, which is how a test suite
	// would normally consume them.
	v := Tuple(String(), Number())

	assert.False(t, v.Validate([]any{42, "s"}, LogFailures(), WithLogger(slogt.New(t))))
	assert.True(t, v.Validate([]any{"s", 42}, LogFailures(), WithLogger(slogt.New(t))))
}
