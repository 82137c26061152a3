package main_test

import (
	"bytes"
	"context"
	"testing"

	main "github.com/fwojciec/frontpage/cmd/frontpaged"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "frontpaged")
	assert.Contains(t, stdout.String(), "--addr")
}

func TestMain_Run_UnknownFlag(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--no-such-flag"}, &stdout, &stderr)

	assert.Error(t, err)
}
