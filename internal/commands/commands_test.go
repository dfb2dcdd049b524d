package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := NewRootCommand()

	for _, path := range [][]string{{"serve"}, {"migrate", "up"}, {"migrate", "down"}, {"seed"}, {"token", "issue"}, {"token", "secret"}} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}

	down, _, err := root.Find([]string{"migrate", "down"})
	require.NoError(t, err)
	steps, err := down.Flags().GetInt("steps")
	require.NoError(t, err)
	assert.Equal(t, 1, steps)
}

func TestSeedRequiresFile(t *testing.T) {
	root := NewRootCommand()
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"seed"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestSeedRejectsMissingFixture(t *testing.T) {
	root := NewRootCommand()
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"seed", t.TempDir() + "/missing.yaml"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading seed file")
}

func TestTokenSecretPrintsHex(t *testing.T) {
	out := new(bytes.Buffer)
	root := NewRootCommand()
	root.SetOut(out)
	root.SetArgs([]string{"token", "secret"})

	require.NoError(t, root.Execute())
	assert.Len(t, strings.TrimSpace(out.String()), 64)
}
