package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-slist/config"
	"go-slist/enum"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestBuild(t *testing.T) {
	out, err := execute(t, "build", "1", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "[1 2 3] size=3\n", out)
}

func TestBuildPrintLimit(t *testing.T) {
	old := config.Props.PrintLimit
	config.Props.PrintLimit = 2
	defer func() { config.Props.PrintLimit = old }()

	out, err := execute(t, "build", "a", "b", "c")
	require.NoError(t, err)
	assert.Equal(t, "[a b]... size=3\n", out)
}

func TestCompare(t *testing.T) {
	out, err := execute(t, "compare", "1,2", "1,2,3")
	require.NoError(t, err)
	assert.Contains(t, out, "a == b: false")
	assert.Contains(t, out, "a <  b: true")
	assert.Contains(t, out, "a >= b: false")

	_, err = execute(t, "compare", "1,x", "1")
	assert.ErrorIs(t, err, enum.BAD_VALUE)
}

func TestRunScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	require.NoError(t, os.WriteFile(path, []byte("initial: [b]\nsteps:\n  - op: push_front\n    value: a\n"), 0o644))

	out, err := execute(t, "run", path)
	require.NoError(t, err)
	assert.Equal(t, "[a b] size=2\n", out)
}

func TestMalformedDefaultConfig(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "slist.conf"), []byte("print-limit many\nseparator ;\n"), 0o644))

	out, err := execute(t, "build", "a")
	assert.ErrorContains(t, err, "print-limit")
	assert.Empty(t, out)
	assert.Equal(t, ",", config.Props.Separator)
}
