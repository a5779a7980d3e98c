package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testBinder struct {
	Order  string
	Values string
}

func (b *testBinder) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String("order", "in", "traversal order")
	cmd.PersistentFlags().String("values", "", "values")
	return nil
}

func (b *testBinder) Configure(v *viper.Viper) error {
	b.Order = v.GetString("order")
	b.Values = v.GetString("values")
	return nil
}

type testConfig struct {
	binder testBinder
}

func (c *testConfig) Use() string       { return "test" }
func (c *testConfig) EnvPrefix() string { return "ordtreetest" }
func (c *testConfig) Binders() []Binder { return []Binder{&c.binder} }

func TestParserDefaults(t *testing.T) {
	c := &testConfig{}
	p, err := Generate("test", c)
	require.NoError(t, err)

	require.NoError(t, p.ParseArgs(nil))

	assert.Equal(t, "in", c.binder.Order)
	assert.Equal(t, "", c.binder.Values)
}

func TestParserFlags(t *testing.T) {
	c := &testConfig{}
	p, err := Generate("test", c)
	require.NoError(t, err)

	require.NoError(t, p.ParseArgs([]string{"--order", "post", "--values=1,2"}))

	assert.Equal(t, "post", c.binder.Order)
	assert.Equal(t, "1,2", c.binder.Values)
}

func TestParserEnv(t *testing.T) {
	t.Setenv("ORDTREETEST_ORDER", "pre")
	c := &testConfig{}
	p, err := Generate("test", c)
	require.NoError(t, err)

	require.NoError(t, p.ParseArgs(nil))

	assert.Equal(t, "pre", c.binder.Order)
}

func TestParserConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("order: post\nvalues: \"3,4\"\n"), 0o600))

	c := &testConfig{}
	p, err := Generate("test", c)
	require.NoError(t, err)

	require.NoError(t, p.ParseArgs([]string{"--config", path, "--order", "pre"}))

	// flags take precedence over the file
	assert.Equal(t, "pre", c.binder.Order)
	assert.Equal(t, "3,4", c.binder.Values)
}

func TestParserConfigFileMissing(t *testing.T) {
	c := &testConfig{}
	p, err := Generate("test", c)
	require.NoError(t, err)

	err = p.ParseArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}

func TestParserAlreadyParsed(t *testing.T) {
	c := &testConfig{}
	p, err := Generate("test", c)
	require.NoError(t, err)

	require.NoError(t, p.ParseArgs(nil))
	assert.Equal(t, ErrAlreadyParsed, p.ParseArgs(nil))
}

func TestParserUnknownFlag(t *testing.T) {
	c := &testConfig{}
	p, err := Generate("test", c)
	require.NoError(t, err)

	err = p.ParseArgs([]string{"--unknown"})
	assert.IsType(t, ErrParseFlags{}, err)
}
