package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/kridha-admin/stydev/internal/adapters/inbound/cli"
	"github.com/stretchr/testify/require"
)

const wrapDressRequest = `
body:
  height: 64
  bust: 37
  underbust: 31
  waist: 27
  hip: 38
  styling_goals: [highlight_waist]
garment:
  title: Black Ponte Wrap Dress
  fabric_name: ponte
  neckline: v_neck
  color_lightness: 0.08
`

// writeFile writes content under dir and returns the file path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// run executes the root command against project dir and returns stdout.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(append([]string{"--path", dir}, args...))
	err := cmd.Execute()
	return out.String(), err
}
