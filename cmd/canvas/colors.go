package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/32bitkid/canvas/colors"
)

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "List the built-in palettes and color names",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()

		names := make([]string, 0, len(colors.Named))
		for name := range colors.Named {
			names = append(names, name)
		}
		sort.Strings(names)

		fmt.Fprintln(out, "Named colors:")
		for _, name := range names {
			fmt.Fprintf(out, "  %-8s %s\n", name, colors.Hex(colors.Named[name]))
		}

		for _, p := range []struct {
			name    string
			palette colors.Palette
		}{
			{"ega", colors.EGA},
			{"db32", colors.DB32EGA},
		} {
			fmt.Fprintf(out, "\nPalette %s:\n", p.name)
			for i, c := range p.palette {
				fmt.Fprintf(out, "  %2d %s\n", i, colors.Hex(c))
			}
		}
	},
}
