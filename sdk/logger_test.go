package sdk

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Infof(template string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(template, args...))
}

func Test_LoggerFrom(t *testing.T) {
	t.Parallel()

	rec := &recordingLogger{}
	ctx := WithLogger(t.Context(), rec)

	LoggerFrom(ctx).Infof("hello %s", "world")
	require.Len(t, rec.lines, 1)
	assert.Equal(t, "hello world", rec.lines[0])

	// Without a carried logger the fallback must still be usable.
	assert.NotNil(t, LoggerFrom(t.Context()))
}
