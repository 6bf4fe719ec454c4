package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/HamburgJ/four-nines-game/pkg/search"
)

func joinNames() string {
	return strings.Join(search.Names(), ", ")
}

// bindFlags binds a command's flags at execution time. Subcommands share
// flag names (target-min, target-max), so binding at construction would
// leave only the last command wired.
func bindFlags(v *viper.Viper, cmd *cobra.Command, names ...string) error {
	for _, name := range names {
		if err := v.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
			return err
		}
	}
	return nil
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("FOURNINES")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:   "fournines",
		Short: "Search for expressions that make every number from four of one digit",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile := v.GetString("config"); cfgFile != "" {
				v.SetConfigFile(cfgFile)
				if err := v.ReadInConfig(); err != nil {
					return err
				}
			}
			return nil
		},
	}

	root.PersistentFlags().String("config", "", "optional config file")
	root.PersistentFlags().String("dir", ".", "base directory for puzzle files")
	root.PersistentFlags().Bool("verbose", false, "verbose logging")
	_ = v.BindPFlag("config", root.PersistentFlags().Lookup("config"))
	_ = v.BindPFlag("dir", root.PersistentFlags().Lookup("dir"))
	_ = v.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))

	root.AddCommand(newGenerateCmd(v))
	root.AddCommand(newContinuousCmd(v))
	root.AddCommand(newHintsCmd(v))
	root.AddCommand(newCleanCmd(v))
	return root
}

func newLogger(v *viper.Viper) (*zap.Logger, error) {
	if v.GetBool("verbose") {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	return cfg.Build()
}
