package main

import (
	"fmt"

	"github.com/spf13/cobra"

	mapart "github.com/AK1089/minecraftMapArt"
	"github.com/AK1089/minecraftMapArt/utils"
)

var previewCmd = &cobra.Command{
	Use:   "preview [flags] <image>",
	Short: "Show the quantized map in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

func init() {
	f := previewCmd.Flags()
	f.Int("step", 2, "sample every n-th block so the preview fits the terminal")
	f.Bool("truecolor", false, "force 24-bit colour output")
	f.Int("swatches", 0, "also list the n heaviest colours of the image and their blocks")
	addSampleFlags(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	f := cmd.Flags()
	s, err := loadSample(cmd, args[0])
	if err != nil {
		return err
	}
	if force, _ := f.GetBool("truecolor"); force {
		utils.ForceTrueColor()
	}
	grid, _ := mapart.Quantize(s.pixels.Data, s.pixels.Channels, mapart.DefaultBase, mapart.Reference)
	step, _ := f.GetInt("step")
	out := cmd.OutOrStdout()
	fmt.Fprint(out, utils.RenderTerminal(grid, mapart.Reference, step))

	if n, _ := f.GetInt("swatches"); n > 0 {
		swatches := utils.ExtractSwatches(s.img, n, s.method)
		labels := utils.MatchSwatches(swatches, mapart.Reference)
		for i, sw := range swatches {
			fmt.Fprintf(out, "%s  weight %-8.3f -> %s\n", sw.Color.Hex(), sw.Weight, labels[i])
		}
	}
	return nil
}
