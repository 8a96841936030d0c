package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-drift/paper/pkg/errors"
	"github.com/go-drift/paper/pkg/graphics"
	"github.com/go-drift/paper/pkg/theme"
	"github.com/spf13/cobra"
)

type contrastOptions struct {
	override string
}

func newContrastCmd(flags *rootFlags) *cobra.Command {
	opts := &contrastOptions{}

	cmd := &cobra.Command{
		Use:   "contrast <color>",
		Short: "Show which foreground a widget draws on a background",
		Long: `Contrast prints the foreground chosen for a background color and the
contrast ratio of both candidates, white and translucent black.

Colors may be hex (#6200ee), rgb()/rgba() or a color name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContrast(cmd, flags, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.override, "override", "", "Foreground color that always wins")

	return cmd
}

func runContrast(cmd *cobra.Command, flags *rootFlags, opts *contrastOptions, arg string) error {
	bg, err := parseColorArg(arg)
	if err != nil {
		return err
	}
	var override *graphics.Color
	if opts.override != "" {
		c, err := parseColorArg(opts.override)
		if err != nil {
			return err
		}
		override = &c
	}

	fg := theme.SelectForegroundColor(bg, override)
	light := graphics.ContrastRatio(bg, theme.ForegroundLight)
	dark := graphics.ContrastRatio(bg, theme.ForegroundDark)
	flags.log.Debug().
		Float64("luminance", graphics.RelativeLuminance(bg)).
		Bool("override", override != nil).
		Msg("foreground selected")

	out := cmd.OutOrStdout()
	r := lipgloss.NewRenderer(out)
	label := r.NewStyle().Bold(true).Width(12)
	swatch := r.NewStyle().
		Background(lipgloss.Color(bg.Opaque().String())).
		Foreground(lipgloss.Color(fg.Opaque().String())).
		Padding(0, 2)

	fmt.Fprintln(out, label.Render("background")+bg.String())
	fmt.Fprintln(out, label.Render("foreground")+fg.String())
	fmt.Fprintln(out, label.Render("light")+fmt.Sprintf("%.2f:1", light))
	fmt.Fprintln(out, label.Render("dark")+fmt.Sprintf("%.2f:1", dark))
	fmt.Fprintln(out, swatch.Render("Aa"))
	return nil
}

func parseColorArg(s string) (graphics.Color, error) {
	c, err := graphics.ParseColor(s)
	if err != nil {
		return 0, &errors.PaperError{Op: "cmd.contrast", Kind: errors.KindParsing, Err: err}
	}
	return c, nil
}
