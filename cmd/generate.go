package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cmmoran/pibxgen/pkg/action/generate"
	"github.com/cmmoran/pibxgen/pkg/codegen"
)

func init() {
	rootCmd.AddCommand(NewGenerateCommand())
}

// flag name → config key
var optionKeys = map[string]string{
	"input":            "generate.input",
	"output-directory": "generate.out_dir",
	"extension":        "generate.extension",
	"type-checks":      "generate.type_checks",
	"manifest":         "generate.manifest",
	"force":            "generate.force",
	"dry-run":          "generate.dry_run",
}

// addSourceFlags registers the flags shared by generate and check.
func addSourceFlags(fs *pflag.FlagSet) {
	defaults := codegen.NewOptions()
	fs.StringP("input", "i", defaults.Input, "YAML document describing the schema tree")
	fs.StringP("output-directory", "o", defaults.OutDir, "directory to write generated classes")
	fs.StringP("extension", "e", defaults.Extension, "file extension of generated classes")
	fs.BoolP("type-checks", "t", false, "add runtime value validation to generated setters")
	fs.StringP("manifest", "m", "", "manifest file recording generated classes (disabled when empty)")
}

// bindFlags binds the flags of the command being run, so flags override the
// config file and environment for that command only.
func bindFlags(fs *pflag.FlagSet) error {
	for name, key := range optionKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// optionsFromConfig resolves generation options from flags, environment and
// config files.
func optionsFromConfig() *codegen.Options {
	o := &codegen.Options{
		Input:      viper.GetString("generate.input"),
		OutDir:     viper.GetString("generate.out_dir"),
		Extension:  viper.GetString("generate.extension"),
		TypeChecks: viper.GetBool("generate.type_checks"),
		Manifest:   viper.GetString("generate.manifest"),
		Force:      viper.GetBool("generate.force"),
		DryRun:     viper.GetBool("generate.dry_run"),
	}
	o.Normalize()
	return o
}

func NewGenerateCommand() *cobra.Command {
	var generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "generate classes",
		Long:  "Generate one PHP class per type of the input schema tree",
		Args:  cobra.NoArgs,
		PreRunE: func(c *cobra.Command, args []string) error {
			return bindFlags(c.Flags())
		},
		RunE: func(c *cobra.Command, args []string) error {
			opts := optionsFromConfig()
			res, err := generate.Generate(opts)
			if err != nil {
				return err
			}
			for _, f := range res.Files {
				verb := "wrote"
				if opts.DryRun {
					verb = "would write"
				}
				fmt.Fprintf(c.OutOrStdout(), "%s %s (%d bytes)\n", verb, f.Path, f.Size)
			}
			for _, s := range res.Stale {
				fmt.Fprintf(c.OutOrStdout(), "stale %s (class %s no longer generated)\n", s.File, s.Name)
			}
			slog.Default().Info("generation finished", "classes", res.Classes.Len(), "stale", len(res.Stale))
			return nil
		},
	}
	addSourceFlags(generateCmd.Flags())
	generateCmd.Flags().BoolP("force", "f", false, "overwrite existing class files")
	generateCmd.Flags().BoolP("dry-run", "n", false, "plan the files without writing them")

	return generateCmd
}
