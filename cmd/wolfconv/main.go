package main

import (
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/humancto/wolfconv"
	"github.com/urfave/cli/v2"
	_ "golang.org/x/image/bmp"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newConverter(c *cli.Context) (*wolfconv.Converter, func(), error) {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	var catalog *wolfconv.Catalog
	closer := func() {}
	if file := c.String("db"); file != "" {
		var err error
		if catalog, err = wolfconv.OpenCatalog(file); err != nil {
			return nil, nil, err
		}
		closer = func() { catalog.Close() }
	}

	conv := wolfconv.New(wolfconv.Options{
		SourceDir: c.String("src"),
		DestDir:   c.String("dest"),
		Indexed:   c.Bool("indexed"),
		Scale:     c.Int("scale"),
	}, catalog, logger)

	return conv, closer, nil
}

func main() {
	app := cli.NewApp()

	app.Name = "wolfconv"
	app.Usage = "Wolf3D BMP to PNG asset converter"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "src",
			EnvVars: []string{"WOLFCONV_SRC"},
			Value:   wolfconv.DefaultSourceDir,
			Usage:   "root of the extracted asset dump",
		},
		&cli.StringFlag{
			Name:    "dest",
			EnvVars: []string{"WOLFCONV_DEST"},
			Value:   filepath.Join(cwd, "public", "assets"),
			Usage:   "root of the generated asset tree",
		},
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"WOLFCONV_DB"},
			Usage:   "record converted assets in a sqlite catalog",
		},
		&cli.BoolFlag{
			Name:  "indexed",
			Usage: "write 256-color paletted PNGs",
		},
		&cli.IntFlag{
			Name:  "scale",
			Value: 1,
			Usage: "integer upscale factor for output images",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Action = func(c *cli.Context) error {
		conv, closer, err := newConverter(c)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		defer closer()

		if _, _, err := conv.Run(); err != nil {
			return cli.NewExitError(err, 1)
		}

		return nil
	}

	app.Commands = []*cli.Command{
		{
			Name:  "walls",
			Usage: "Convert the wall textures only",
			Action: func(c *cli.Context) error {
				conv, closer, err := newConverter(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer closer()

				if _, err := conv.ConvertWalls(); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:  "enemies",
			Usage: "Convert the enemy sprites only",
			Action: func(c *cli.Context) error {
				conv, closer, err := newConverter(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer closer()

				if _, err := conv.ConvertEnemies(); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
