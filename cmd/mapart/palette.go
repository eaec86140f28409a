package main

import (
	"fmt"

	"github.com/spf13/cobra"

	mapart "github.com/AK1089/minecraftMapArt"
	"github.com/AK1089/minecraftMapArt/utils"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "List the blocks a map can be painted with",
	Args:  cobra.NoArgs,
	RunE:  runPalette,
}

func init() {
	f := paletteCmd.Flags()
	f.String("swatch", "", "write the palette as a PNG strip to this path")
	f.Int("tile", 32, "swatch tile size in pixels")
}

func runPalette(cmd *cobra.Command, _ []string) error {
	f := cmd.Flags()
	out := cmd.OutOrStdout()
	p := mapart.Reference
	neighbors := p.Neighbors()
	for i, e := range p.Entries() {
		nb := neighbors[i]
		fmt.Fprintf(out, "%-24s %s  closest %-24s (%.1f)\n", e.Label, e.Hex(), nb.Closest, nb.Distance)
	}
	if path, _ := f.GetString("swatch"); path != "" {
		tile, _ := f.GetInt("tile")
		return utils.SavePalette(p.Entries(), tile, path)
	}
	return nil
}
