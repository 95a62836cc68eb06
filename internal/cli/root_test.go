package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootRunsWithoutConfigFile(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := executeRoot(t, "dialects")
	require.NoError(t, err)
	assert.Contains(t, out, "IBM Db2")
}

func TestRootLoadsConfigForCheck(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "querybridge.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
sources:
  warehouse:
    type: db2
    details:
      dbname: BLUDB
      user: analyst
`), 0o644))

	out, err := executeRoot(t, "check", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "OK    warehouse: db2 //localhost:50000/BLUDB")
}

func TestRootReportsBadConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "querybridge.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("sources: [not, a, map]\n"), 0o644))

	_, err := executeRoot(t, "dialects", "--config", cfgPath)
	require.Error(t, err)
}

func TestRootOutputFlagSelectsJSON(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := executeRoot(t, "dialects", "--output", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"key":"db2","name":"IBM Db2"}]`, out)

	// Default stays tabular.
	out, err = executeRoot(t, "dialects")
	require.NoError(t, err)
	assert.NotContains(t, out, `"key"`)
	assert.Contains(t, out, "IBM Db2")
}

func TestRootVersionFlag(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := executeRoot(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "querybridge")
	assert.Contains(t, out, Version)
}
