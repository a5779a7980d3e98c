package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ErrAlreadyParsed is returned when a parser is asked to
// parse its flags a second time
var ErrAlreadyParsed = errors.New("configuration already parsed")

// ErrParseFlags is returned when the command line
// flags cannot be parsed
type ErrParseFlags struct {
	Cause error
}

func (e ErrParseFlags) Error() string {
	return "failed to parse flags: " + e.Cause.Error()
}

// Binder declares a group of configuration values. Bind registers
// its flags before parsing and Configure reads the resolved values
// back once flags, environment and configuration file are known
type Binder interface {
	Bind(v *viper.Viper, cmd *cobra.Command) error
	Configure(v *viper.Viper) error
}

// ConfigFile is the binder for the optional --config file. Values
// in the file act as defaults for flags and environment variables
type ConfigFile struct {
	Path string
}

func (f *ConfigFile) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String("config", "", "path to a configuration file")
	return nil
}

func (f *ConfigFile) Configure(v *viper.Viper) error {
	f.Path = v.GetString("config")
	if f.Path == "" {
		return nil
	}

	v.SetConfigFile(f.Path)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "failed to read config file %s", f.Path)
	}

	return nil
}
