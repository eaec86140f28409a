package main

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	mapart "github.com/AK1089/minecraftMapArt"
	"github.com/AK1089/minecraftMapArt/internal/config"
	"github.com/AK1089/minecraftMapArt/internal/paste"
	"github.com/AK1089/minecraftMapArt/internal/profile"
	"github.com/AK1089/minecraftMapArt/utils"
)

var convertCmd = &cobra.Command{
	Use:   "convert [flags] <image>",
	Short: "Write the build script for an image",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

func init() {
	f := convertCmd.Flags()
	f.String("base", mapart.DefaultBase, `background block, or "auto" to pick it from the image`)
	f.String("name", "", "name shown in game (default: derived from the file name)")
	f.StringP("output", "o", "", `script path (default: <image>.txt, "-" for stdout)`)
	f.String("preview", "", "also write a PNG preview of the map to this path")
	f.Bool("report", false, "print match quality and block usage")
	f.Bool("upload", false, "upload the script to the paste service and print the import command")
	f.String("username", "", "player name used for the import command")
	addSampleFlags(convertCmd)
}

func addSampleFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("filter", "nearest", "resample filter: nearest, box, linear, catmullrom, lanczos")
	f.Float32("blur", 0, "gaussian blur sigma in blocks, applied after resizing")
	f.Float32("contrast", 0, "contrast adjustment in percent (-100..100)")
	f.Float32("saturation", 0, "saturation adjustment in percent (-100..500)")
	f.String("auto-method", "dominantcolor", "colour extraction for --base auto: dominantcolor or kmeans")
}

// sampled is an image reduced to the map grid plus the options derived
// from the shared flags.
type sampled struct {
	img    image.Image
	pixels utils.Pixels
	method utils.PaletteMethod
}

func loadSample(cmd *cobra.Command, path string) (*sampled, error) {
	f := cmd.Flags()
	filterName, _ := f.GetString("filter")
	filter, err := utils.ParseFilter(filterName)
	if err != nil {
		return nil, err
	}
	methodName, _ := f.GetString("auto-method")
	method, err := utils.ParsePaletteMethod(methodName)
	if err != nil {
		return nil, err
	}
	opt := utils.DefaultSampleOptions()
	opt.Filter = filter
	opt.Blur, _ = f.GetFloat32("blur")
	opt.Contrast, _ = f.GetFloat32("contrast")
	opt.Saturation, _ = f.GetFloat32("saturation")

	img, err := utils.ReadImage(path)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	slog.Debug("image loaded", "path", path, "width", b.Dx(), "height", b.Dy())
	pix := utils.Sample(img, opt)
	slog.Debug("image sampled", "channels", pix.Channels, "filter", filterName)
	return &sampled{img: img, pixels: pix, method: method}, nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	path := args[0]
	f := cmd.Flags()
	s, err := loadSample(cmd, path)
	if err != nil {
		return err
	}

	base, _ := f.GetString("base")
	name, _ := f.GetString("name")
	if name == "" {
		name = path
	}
	opt := mapart.Options{
		Base: utils.ResolveBase(base, s.pixels.Image, mapart.Reference, s.method),
		Name: mapart.ScriptName(name),
	}
	b := mapart.NewBuilder(s.pixels.Data, s.pixels.Channels, mapart.Reference)
	script := b.Build(opt)
	slog.Info("script built", "name", script.Name, "base", script.Base,
		"operations", script.Ops, "transparent", script.Transparent)

	out := cmd.OutOrStdout()
	output, _ := f.GetString("output")
	switch output {
	case "-":
		fmt.Fprint(out, script.Text)
	default:
		if output == "" {
			output = strings.TrimSuffix(path, filepath.Ext(path)) + ".txt"
		}
		if err := os.WriteFile(output, []byte(script.Text), 0o644); err != nil {
			return errors.Wrapf(err, "writing %s", output)
		}
	}

	if previewPath, _ := f.GetString("preview"); previewPath != "" {
		if err := utils.SaveImage(b.Preview(2), previewPath); err != nil {
			return err
		}
	}
	if report, _ := f.GetBool("report"); report {
		printReport(cmd, b.Report())
	}

	if upload, _ := f.GetBool("upload"); upload {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		key, err := paste.New(cfg.PasteURL, cfg.Timeout).Upload(script.Text)
		if err != nil {
			return err
		}
		username, _ := f.GetString("username")
		uuid := profile.New(cfg.ProfileURL, cfg.Timeout).UUID(username)
		fmt.Fprintln(out, mapart.ImportCommand(key, uuid, script.Name))
		return nil
	}
	if output != "-" {
		fmt.Fprintf(out, "Successfully saved script for map art at %s\n", output)
	}
	return nil
}

func printReport(cmd *cobra.Command, r *mapart.Report) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "painted cells:     %d\n", r.Painted)
	fmt.Fprintf(out, "transparent cells: %d\n", r.Transparent)
	fmt.Fprintf(out, "operations:        %d\n", r.Ops)
	fmt.Fprintf(out, "colour error:      mean %.2f, median %.2f, stddev %.2f, max %.2f\n",
		r.MeanError, r.MedianError, r.StdDevError, r.MaxError)
	for _, bc := range r.Blocks {
		fmt.Fprintf(out, "  %-24s %5d\n", bc.Label, bc.Cells)
	}
}
