package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/intchain/pkg/chain"
	"github.com/ib-77/intchain/pkg/chain/script"
	"github.com/ib-77/intchain/pkg/rop"
)

func TestWalkthrough(t *testing.T) {
	var out bytes.Buffer
	walkthrough(&out)

	want := `Linked List:
Index 0: 10
Index 1: 20
Index 2: 35
Index 3: 30
Index 4: 40
Linked List after deletion:
Index 0: 10
Index 1: 35
Index 2: 30
Index 3: 40
`
	assert.Equal(t, want, out.String())
}

func TestRunScript_FileWithBadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cmds.txt")
	require.NoError(t, os.WriteFile(path, []byte("append 1\ndelete 3\nappend 2\nfrobnicate\nlen\n"), 0o644))

	var out bytes.Buffer
	err := runScript(context.Background(), path, strings.NewReader(""), &out)

	require.Error(t, err)
	assert.ErrorIs(t, err, chain.ErrOutOfBoundsDelete)
	assert.ErrorIs(t, err, script.ErrUnknownCommand)
	lines := rop.GetErrors(err)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0].Error(), "line 2 [")
	assert.Contains(t, lines[1].Error(), "line 4 [")
	assert.Contains(t, out.String(), "Length: 2\n")
}

func TestRunScript_StopOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cmds.txt")
	require.NoError(t, os.WriteFile(path, []byte("insert 1 1\nappend 2\n"), 0o644))

	ctx := script.WithOptions(context.Background(), script.Options{StopOnError: true})
	var out bytes.Buffer
	err := runScript(ctx, path, strings.NewReader(""), &out)

	require.Error(t, err)
	assert.ErrorIs(t, err, chain.ErrOutOfBoundsInsert)
	assert.Len(t, rop.GetErrors(err), 1)
}

func TestRunScript_Stdin(t *testing.T) {
	var out bytes.Buffer
	err := runScript(context.Background(), "-", strings.NewReader("append 7\nget 0\n"), &out)

	require.NoError(t, err)
	assert.Equal(t, "Index 0: 7\n", out.String())
}

func TestRunScript_MissingFile(t *testing.T) {
	err := runScript(context.Background(), filepath.Join(t.TempDir(), "nope"), strings.NewReader(""), &bytes.Buffer{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWaitForEnter(t *testing.T) {
	var out bytes.Buffer
	waitForEnter(strings.NewReader("\nleftover"), &out)
	assert.Equal(t, "Press Enter to exit...\n", out.String())

	out.Reset()
	waitForEnter(strings.NewReader(""), &out)
	assert.Equal(t, "Press Enter to exit...\n", out.String())
}
