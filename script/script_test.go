package script

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-slist/enum"
)

const sample = `
initial: [a, b, c]
steps:
  - op: push_front
    value: z
  - op: insert_after
    pos: 0
    value: y
  - op: erase_after
    pos: 1
  - op: insert_after
    value: x
  - op: erase_if
    value: c
`

func TestRun(t *testing.T) {
	s, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, s.Steps, 5)

	res, err := s.Run(context.Background())
	require.NoError(t, err)
	// z a b c -> z y a b c -> z y b c -> x z y b c -> x z y b
	assert.Equal(t, []string{"x", "z", "y", "b"}, res.Final)
	assert.Equal(t, 4, res.Size)
	assert.Equal(t, 5, res.Steps)
}

func TestRunErrors(t *testing.T) {
	pos := func(i int) *int { return &i }
	tests := []struct {
		name  string
		steps []Step
		err   error
	}{
		{"unknown op", []Step{{Op: "reverse"}}, enum.UNKNOWN_OP},
		{"pop empty", []Step{{Op: OpClear}, {Op: OpPopFront}}, enum.LIST_IS_EMPTY},
		{"insert past end", []Step{{Op: OpInsertAfter, Pos: pos(3), Value: "v"}}, enum.BAD_POSITION},
		{"insert before before-begin", []Step{{Op: OpInsertAfter, Pos: pos(-2)}}, enum.BAD_POSITION},
		{"erase after last", []Step{{Op: OpEraseAfter, Pos: pos(2)}}, enum.BAD_POSITION},
		{"erase empty", []Step{{Op: OpClear}, {Op: OpEraseAfter}}, enum.BAD_POSITION},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Script{Initial: []string{"a", "b", "c"}, Steps: tt.steps}
			_, err := s.Run(context.Background())
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := &Script{Steps: []Step{{Op: OpPushFront, Value: "a"}}}
	_, err := s.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, enum.EMPTY_SCRIPT)

	_, err = Parse(strings.NewReader("initial: []\n"))
	assert.ErrorIs(t, err, enum.EMPTY_SCRIPT)

	_, err = Parse(strings.NewReader("steps:\n  - op: clear\n    where: 1\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))
	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, s.Initial)

	_, err = Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
