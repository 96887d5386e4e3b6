package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/sweepgeom/voronoi"
	"github.com/sweepgeom/voronoi/internal/textinput"
)

func main() {
	cmd := &cli.Command{
		Name:      "vorocli",
		Usage:     "Builds a Voronoi diagram from point and segment sites and prints it as JSON",
		UsageText: "vorocli [--input <file>] [--random <n>] [--maxx <value>] [--maxy <value>]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Usage:    "Path to a text-format site file (see internal/textinput); defaults to stdin",
				OnlyOnce: true,
			},
			&cli.IntFlag{
				Name:     "random",
				Usage:    "Generate this many random point sites instead of reading input",
				OnlyOnce: true,
			},
			&cli.IntFlag{
				Name:     "maxx",
				Usage:    "Maximum X coordinate for --random sites",
				OnlyOnce: true,
				Value:    1000,
			},
			&cli.IntFlag{
				Name:     "maxy",
				Usage:    "Maximum Y coordinate for --random sites",
				OnlyOnce: true,
				Value:    1000,
			},
		},
		HideVersion: true,
		Action:      app,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func app(_ context.Context, cmd *cli.Command) error {
	var b voronoi.Builder

	if n := cmd.Int("random"); n > 0 {
		if err := addRandomPoints(&b, n, cmd.Int("maxx"), cmd.Int("maxy")); err != nil {
			return err
		}
	} else {
		r := os.Stdin
		if path := cmd.String("input"); path != "" {
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()
			sites, err := textinput.Read(f)
			if err != nil {
				return err
			}
			return build(&b, sites)
		}
		sites, err := textinput.Read(r)
		if err != nil {
			return err
		}
		return build(&b, sites)
	}

	diagram, err := b.Build()
	if err != nil {
		return err
	}
	return printJSON(diagram)
}

func addRandomPoints(b *voronoi.Builder, n, maxx, maxy int64) error {
	for i := int64(0); i < n; i++ {
		x := rand.Int64N(maxx + 1)
		y := rand.Int64N(maxy + 1)
		if err := b.AddPoint(x, y); err != nil {
			return err
		}
	}
	return nil
}

func build(b *voronoi.Builder, sites textinput.Sites) error {
	for _, p := range sites.Points {
		if err := b.AddPoint(p[0], p[1]); err != nil {
			return err
		}
	}
	for _, s := range sites.Segments {
		if err := b.AddSegment(s[0], s[1], s[2], s[3]); err != nil {
			return err
		}
	}
	diagram, err := b.Build()
	if err != nil {
		return err
	}
	return printJSON(diagram)
}

func printJSON(diagram *voronoi.Diagram) error {
	out, err := json.Marshal(diagram)
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}
