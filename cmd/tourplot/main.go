// Command tourplot draws a TSP tour over its instance coordinates.
//
//	tourplot att48
//	tourplot --coords data/att48.tsp --tour out/att48.tour --out att48.png
//	tourplot --config plot.yaml --dpi 150 --show att48
//
// With a dataset name the classic layout is used: data/<name>.tsp,
// tour/<name>.tour and plot/<name>.png. The plot directory must exist.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/skratchdot/open-golang/open"
	"github.com/ttacon/chalk"
	"github.com/urfave/cli"

	"github.com/katalvlaran/tourplot/config"
	"github.com/katalvlaran/tourplot/pipeline"
	"github.com/katalvlaran/tourplot/storage"
)

func main() {
	if err := makeapp().Run(os.Args); err != nil {
		failWith(err)
	}
}

func failWith(err error) {
	fmt.Fprintln(os.Stderr, chalk.Red.Color("tourplot: "+err.Error()))
	os.Exit(1)
}

func makeapp() *cli.App {
	app := cli.NewApp()
	app.Name = "tourplot"
	app.Usage = "plot a TSP tour over its node coordinates"
	app.ArgsUsage = "[name]"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config", Usage: "YAML file with run parameters; flags override it"},
		cli.StringFlag{Name: "name", Usage: "dataset name; derives input and output paths"},
		cli.StringFlag{Name: "data-dir", Value: "data", Usage: "directory of <name>.tsp"},
		cli.StringFlag{Name: "tour-dir", Value: "tour", Usage: "directory of <name>.tour"},
		cli.StringFlag{Name: "plot-dir", Value: "plot", Usage: "directory of <name>.png; must exist"},
		cli.StringFlag{Name: "coords", Usage: "coordinate file, overrides the derived path"},
		cli.StringFlag{Name: "tour", Usage: "tour file, overrides the derived path"},
		cli.StringFlag{Name: "out", Usage: "image file, overrides the derived path"},
		cli.StringFlag{Name: "geojson", Usage: "also write the tour as GeoJSON to this file"},
		cli.Float64Flag{Name: "size", Usage: "figure side in inches (default 10)"},
		cli.Float64Flag{Name: "dpi", Usage: "resolution in dots per inch (default 300)"},
		cli.Float64Flag{Name: "line-width", Usage: "tour line width in points (default 1.5)"},
		cli.StringFlag{Name: "color", Usage: "tour line colour as #rrggbb"},
		cli.BoolFlag{Name: "axis", Usage: "draw the axis frame"},
		cli.BoolFlag{Name: "equal-aspect", Usage: "use one scale for both axes"},
		cli.BoolFlag{Name: "permissive", Usage: "treat inputs without a section marker as empty"},
		cli.BoolFlag{Name: "show", Usage: "open the image when done"},
		cli.BoolFlag{Name: "quiet, q", Usage: "no progress output"},
	}

	app.Action = func(c *cli.Context) error {
		ctx := context.Background()
		store := storage.New()

		cfg, err := loadConfig(ctx, c, store)
		if err != nil {
			return err
		}

		res, err := pipeline.Run(ctx, store, cfg)
		if err != nil {
			return err
		}

		if !res.Config.Quiet {
			fmt.Println(chalk.Green.Color(res.Config.Name), res.Stats)
		}
		if res.Config.Show {
			if err = open.Run(res.Config.Output); err != nil {
				fmt.Fprintln(os.Stderr, chalk.Yellow.Color("tourplot: cannot open image: "+err.Error()))
			}
		}
		return nil
	}

	return app
}

// loadConfig layers defaults, the optional config file, then set flags.
func loadConfig(ctx context.Context, c *cli.Context, store *storage.Store) (config.Config, error) {
	cfg := config.Default()
	if URL := c.String("config"); URL != "" {
		var err error
		if cfg, err = config.Load(ctx, store, URL); err != nil {
			return cfg, err
		}
	}

	if name := c.Args().First(); name != "" {
		cfg.Name = name
	}

	strs := map[string]*string{
		"name":     &cfg.Name,
		"data-dir": &cfg.DataDir,
		"tour-dir": &cfg.TourDir,
		"plot-dir": &cfg.PlotDir,
		"coords":   &cfg.Coords,
		"tour":     &cfg.Tour,
		"out":      &cfg.Output,
		"geojson":  &cfg.GeoJSON,
		"color":    &cfg.Render.Color,
	}
	for flag, dst := range strs {
		if c.IsSet(flag) {
			*dst = c.String(flag)
		}
	}

	floats := map[string]*float64{
		"size":       &cfg.Render.FigureSize,
		"dpi":        &cfg.Render.DPI,
		"line-width": &cfg.Render.LineWidth,
	}
	for flag, dst := range floats {
		if c.IsSet(flag) {
			*dst = c.Float64(flag)
		}
	}

	bools := map[string]*bool{
		"axis":         &cfg.Render.Axis,
		"equal-aspect": &cfg.Render.EqualAspect,
		"permissive":   &cfg.Permissive,
		"show":         &cfg.Show,
		"quiet":        &cfg.Quiet,
	}
	for flag, dst := range bools {
		if c.IsSet(flag) {
			*dst = c.Bool(flag)
		}
	}

	return cfg, nil
}
