package main

import (
	"fmt"
	"os"

	"github.com/go-drift/paper/cmd/paper/internal/config"
	"github.com/go-drift/paper/pkg/errors"
	"github.com/go-drift/paper/pkg/theme"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type resolveOptions struct {
	dir       string
	themePath string
	schema    string
	dark      bool
}

func newResolveCmd(flags *rootFlags) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the fully resolved theme as YAML",
		Long: `Resolve merges a theme override over the built-in defaults and prints
every palette role, spacing key and font variant.

Without --theme, the override file named in the project's paper.yaml is
used. Flags win over both files.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("dark") {
				return runResolve(cmd, flags, opts, &opts.dark)
			}
			return runResolve(cmd, flags, opts, nil)
		},
	}

	cmd.Flags().StringVarP(&opts.themePath, "theme", "t", "", "Theme override file (YAML)")
	cmd.Flags().StringVar(&opts.schema, "schema", "", "Schema version: legacy, current or a version such as v2")
	cmd.Flags().BoolVar(&opts.dark, "dark", false, "Resolve the dark palette")
	cmd.Flags().StringVar(&opts.dir, "dir", "", "Project directory (default: working directory)")

	return cmd
}

func runResolve(cmd *cobra.Command, flags *rootFlags, opts *resolveOptions, dark *bool) error {
	log := flags.log
	name := "paper"
	var o theme.Override

	path := opts.themePath
	project, err := loadProject(opts.dir)
	switch {
	case err != nil:
		return err
	case project != nil:
		log.Debug().Str("root", project.Root).Str("module", project.ModulePath).Msg("project config loaded")
		name = project.Name
		o = project.Override
		if path == "" {
			path = project.ThemeFile
		}
	}

	if path != "" {
		fromFile, err := theme.LoadOverride(path)
		if err != nil {
			return err
		}
		log.Debug().Str("path", path).Msg("theme override loaded")
		o = o.Merge(fromFile)
	}

	var fromFlags theme.Override
	if opts.schema != "" {
		v, err := theme.ParseSchemaVersion(opts.schema)
		if err != nil {
			return &errors.PaperError{Op: "cmd.resolve", Kind: errors.KindParsing, Err: err}
		}
		fromFlags.Schema = &v
	}
	fromFlags.Dark = dark
	o = o.Merge(fromFlags)

	r := theme.Resolve(theme.DefaultTheme(), o)
	log.Debug().Stringer("schema", r.Schema).Bool("dark", r.Dark).Int("colors", len(r.Colors)).Msg("theme resolved")

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# %s\n", name)
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode theme: %w", err)
	}
	return enc.Close()
}

// loadProject resolves the project around dir. Outside a Go module there is
// no project and both results are nil.
func loadProject(dir string) (*config.Resolved, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = wd
	}
	root, err := config.FindProjectRoot(dir)
	if err != nil {
		return nil, nil
	}
	return config.Resolve(root)
}
