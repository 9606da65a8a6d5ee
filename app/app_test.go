package app

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func etcDir(t *testing.T) string {
	t.Helper()

	dir, err := filepath.Abs("../etc")
	require.NoError(t, err)

	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	t.Cleanup(func() {
		rootCmd.SetArgs(nil)

		// flags keep their parsed value between Execute calls
		for _, f := range []*pflag.Flag{
			rootCmd.PersistentFlags().Lookup(keyConfig),
			rootCmd.PersistentFlags().Lookup(keyDev),
			configDumpCmd.Flags().Lookup("json"),
		} {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	})

	err := rootCmd.Execute()

	return out.String(), err
}

func TestConfigDump(t *testing.T) {
	out, err := run(t, "config", "dump", "--config", etcDir(t))
	require.NoError(t, err)

	assert.Contains(t, out, `Title = "mreg"`)
	assert.Contains(t, out, "GormEngine")
}

func TestConfigDumpJSON(t *testing.T) {
	out, err := run(t, "config", "dump", "--json", "--dev", "--config", etcDir(t))
	require.NoError(t, err)

	assert.Contains(t, out, `"Title": "mreg"`)
	assert.Contains(t, out, `"DevMode": true`)
}

func TestConfigDump_EnvPath(t *testing.T) {
	t.Setenv("MREG_CONFIG", t.TempDir())

	_, err := run(t, "config", "dump")
	require.Error(t, err)
}

func TestMigrate(t *testing.T) {
	t.Setenv("MREG_CONFIG_JSON", `{"DB":{"GormEngine":"sqlite","Name":"`+filepath.ToSlash(filepath.Join(t.TempDir(), "mreg.db"))+`"},"Log":{"Console":{"Enabled":false}}}`)

	_, err := run(t, "migrate", "--config", etcDir(t))
	require.NoError(t, err)
}
