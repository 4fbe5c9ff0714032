package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gogpu/ggseries"
	"github.com/gogpu/ggseries/host"
	"github.com/gogpu/ggseries/recording"
	"github.com/gogpu/ggseries/scene"
)

func init() {
	renderCmd.Flags().StringP("out", "o", "chart.png", "output file, - for stdout")
	renderCmd.Flags().Float64("scale", 0, "device pixel ratio, overrides the scene's pixelRatio")

	if err := viper.BindPFlags(renderCmd.Flags()); err != nil {
		ggseries.Logger().Error("failed to bind render flags", "err", err)
	}
}

var renderCmd = &cobra.Command{
	Use:   "render SCENE",
	Short: "render a YAML scene",
	Args:  cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := scene.Load(args[0])
		if err != nil {
			return err
		}
		if s := viper.GetFloat64("scale"); s > 0 {
			doc.PixelRatio = s
		}

		chart, err := doc.Chart()
		if err != nil {
			return err
		}

		out := viper.GetString("out")
		return renderChart(chart, out, outputFormat(viper.GetString("format"), out), cmd.OutOrStdout())
	},
}

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "list the registered output backends",
	Args:  cobra.NoArgs,

	Run: func(cmd *cobra.Command, args []string) {
		names := recording.Backends()
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

// outputFormat returns the explicit format, or the one implied by the
// output file extension.
func outputFormat(format, out string) string {
	if format != "" {
		return strings.ToLower(format)
	}
	if strings.EqualFold(filepath.Ext(out), ".svg") {
		return "svg"
	}
	return "png"
}

// renderChart records one frame of chart and plays it back on the named
// backend. out "-" writes to stdout.
func renderChart(chart *host.Chart, out, format string, stdout io.Writer) error {
	backend, err := recording.NewBackend(format)
	if err != nil {
		return err
	}

	rec := chart.Record()
	if err := rec.Playback(backend); err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}

	if out == "-" {
		wb, ok := backend.(recording.WriterBackend)
		if !ok {
			return fmt.Errorf("backend %q cannot write to stdout", format)
		}
		_, err := wb.WriteTo(stdout)
		return err
	}

	switch b := backend.(type) {
	case recording.FileBackend:
		err = b.SaveToFile(out)
	case recording.WriterBackend:
		err = writeFile(out, b)
	default:
		err = errors.New("backend has no output")
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	ggseries.Logger().Info("output written", "path", out, "format", format,
		"width", rec.Width(), "height", rec.Height(), "commands", len(rec.Commands()))
	return nil
}

func writeFile(path string, w io.WriterTo) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := w.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
