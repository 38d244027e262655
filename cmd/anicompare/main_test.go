package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/PizzaHomicide/anicompare/internal/log"
	"github.com/PizzaHomicide/anicompare/internal/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ANICOMPARE_CONFIG_PATH", filepath.Join(t.TempDir(), "config.yaml"))
	t.Cleanup(func() { log.SetDefaultLogger(nil) })

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, version.GetVersionInfo())
}

func TestCompareFilesAsJSON(t *testing.T) {
	fixture := filepath.Join("..", "..", "internal", "repository", "anilist", "testdata", "collection.json")

	out, err := execute(t, "compare", "--files", "--json", fixture, fixture)
	require.NoError(t, err)

	var result struct {
		User1 struct {
			Name string `json:"name"`
		} `json:"u1"`
		Overlap *int              `json:"overlap"`
		Table   []json.RawMessage `json:"table"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "spike", result.User1.Name)
	require.NotNil(t, result.Overlap)
	assert.Equal(t, 100, *result.Overlap)
	assert.Len(t, result.Table, 1)
	assert.Nil(t, log.DefaultLogger())
}

func TestCompareRequiresTwoArgs(t *testing.T) {
	_, err := execute(t, "compare", "only-one")
	assert.Error(t, err)
}

func TestCompareMissingFile(t *testing.T) {
	_, err := execute(t, "compare", "--files", "--json", "does-not-exist.json", "also-missing.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.json")
	// The logger is released even though the command failed
	assert.Nil(t, log.DefaultLogger())
}
