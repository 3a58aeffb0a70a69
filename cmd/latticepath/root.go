package main

import (
	goflag "flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

const envPrefix = "LATTICEPATH"

// settings resolves flag values with viper precedence:
// explicit flag > LATTICEPATH_* env > config file > flag default.
type settings struct {
	v *viper.Viper
}

func newSettings() *settings {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return &settings{v: v}
}

// load binds the running command's flags and reads the config file, if any.
func (s *settings) load(cmd *cobra.Command) error {
	if err := s.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if err := s.v.BindPFlags(cmd.InheritedFlags()); err != nil {
		return err
	}

	path := s.v.GetString("config")
	if path == "" {
		return nil
	}
	s.v.SetConfigFile(path)
	if err := s.v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	klog.V(2).InfoS("Loaded config", "path", s.v.ConfigFileUsed())
	return nil
}

// NewRootCommand builds the latticepath command tree.
func NewRootCommand() *cobra.Command {
	s := newSettings()

	cmd := &cobra.Command{
		Use:           "latticepath",
		Short:         "Shortest paths on sparse 3D lattices",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.load(cmd)
		},
	}
	cmd.PersistentFlags().String("config", "", "config file (yaml, json or toml) providing flag values")

	klogFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	cmd.PersistentFlags().AddGoFlagSet(klogFlags)
	cmd.PersistentFlags().SetNormalizeFunc(wordSepNormalize)

	cmd.AddCommand(
		newSolveCommand(s),
		newGenerateCommand(s),
		newServeCommand(s),
	)
	return cmd
}

// wordSepNormalize accepts underscores in flag names.
func wordSepNormalize(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

// openInput opens path, or returns stdin for "-".
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return os.Open(path)
}

// writeOutput writes data to path, or to stdout for "-".
func writeOutput(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "-" {
		return write(cmd.OutOrStdout())
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
