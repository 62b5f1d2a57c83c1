package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	catalogcmd "github.com/bouwdoc/viewtype/internal/catalog"
	"github.com/bouwdoc/viewtype/internal/classify"
	"github.com/bouwdoc/viewtype/internal/extract"
	"github.com/bouwdoc/viewtype/internal/serve"
)

func main() {
	app := &cli.App{
		Name:  "viewtype",
		Usage: "Classify construction-drawing pages into view types",
		Commands: []*cli.Command{
			{
				Name:   "classify",
				Usage:  "Classify extracted pages from a JSON document",
				Action: classify.ClassifyAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"i"},
						Value:   "-",
						Usage:   "Pages JSON file ('-' for stdin)",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Value:   "-",
						Usage:   "Results file ('-' for stdout)",
					},
					&cli.IntFlag{
						Name:  "workers",
						Value: 4,
						Usage: "Concurrent classification workers",
					},
					&cli.StringFlag{
						Name:  "catalog",
						Usage: "Extended catalog YAML (default: built-in)",
					},
					&cli.BoolFlag{
						Name:  "language",
						Usage: "Annotate results with detected text language",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "Only log errors",
					},
				},
			},
			{
				Name:      "extract",
				Usage:     "Extract page text and geometry from a drawing PDF",
				ArgsUsage: "<drawing.pdf>",
				Action:    extract.ExtractAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"i"},
						Usage:   "Drawing PDF path",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Value:   "-",
						Usage:   "Output file ('-' for stdout)",
					},
					&cli.BoolFlag{
						Name:  "classify",
						Usage: "Classify the extracted pages immediately",
					},
					&cli.StringFlag{
						Name:  "catalog",
						Usage: "Extended catalog YAML (default: built-in)",
					},
					&cli.BoolFlag{
						Name:  "language",
						Usage: "Annotate results with detected text language",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "Only log errors",
					},
				},
			},
			{
				Name:   "serve",
				Usage:  "Serve the view-type detection API over HTTP",
				Action: serve.ServeAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "addr",
						Value: ":8000",
						Usage: "Listen address",
					},
					&cli.StringFlag{
						Name:  "catalog",
						Usage: "Extended catalog YAML (default: built-in)",
					},
					&cli.BoolFlag{
						Name:  "language",
						Usage: "Annotate results with detected text language",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "Only log errors",
					},
				},
			},
			{
				Name:  "catalog",
				Usage: "Inspect and validate pattern catalogs",
				Subcommands: []*cli.Command{
					{
						Name:   "dump",
						Usage:  "Write the built-in catalog as YAML",
						Action: catalogcmd.DumpAction,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:    "output",
								Aliases: []string{"o"},
								Value:   "-",
								Usage:   "Output file ('-' for stdout)",
							},
						},
					},
					{
						Name:      "check",
						Usage:     "Validate a catalog YAML file",
						ArgsUsage: "<catalog.yaml>",
						Action:    catalogcmd.CheckAction,
						Flags: []cli.Flag{
							&cli.BoolFlag{
								Name:  "quiet",
								Usage: "Only log errors",
							},
						},
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
