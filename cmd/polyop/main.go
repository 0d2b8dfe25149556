// Command polyop is the out-of-core collaborator spec.md places outside the
// library proper: a thin CLI wrapper that reads polygons as JSON from
// stdin, applies one Boolean operation, and writes the result polygon as
// JSON to stdout.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/exactplane/projgeom/kernel"
	"github.com/exactplane/projgeom/polygon"
	"github.com/urfave/cli/v3"
)

// edgeJSON is a Line's (a, b, c) triple, the wire shape for one boundary
// edge of a polygonJSON cycle.
type edgeJSON [3]int32

// polygonJSON is the wire shape of a Polygon: a list of cycles, each cycle
// a list of directed edges in order.
type polygonJSON struct {
	Cycles [][]edgeJSON `json:"cycles"`
}

func toPolygon(pj polygonJSON) (polygon.Polygon, error) {
	loops := make([][]kernel.Line, len(pj.Cycles))
	for i, cycle := range pj.Cycles {
		loop := make([]kernel.Line, len(cycle))
		for j, e := range cycle {
			l, err := kernel.NewLine(e[0], e[1], e[2])
			if err != nil {
				return polygon.Polygon{}, fmt.Errorf("cycle %d edge %d: %w", i, j, err)
			}
			loop[j] = l
		}
		loops[i] = loop
	}
	return polygon.FromEdgeLoops(loops)
}

func fromPolygon(p polygon.Polygon) polygonJSON {
	components := p.Components()
	cycles := make([][]edgeJSON, len(components))
	for i, comp := range components {
		cycle := make([]edgeJSON, len(comp))
		for j, e := range comp {
			cycle[j] = edgeJSON{e.A, e.B, e.C}
		}
		cycles[i] = cycle
	}
	return polygonJSON{Cycles: cycles}
}

func main() {
	cmd := &cli.Command{
		Name:      "polyop",
		Usage:     "Applies an exact Boolean operation to polygons read as JSON from stdin",
		UsageText: "polyop --op <union|intersection|difference>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "op",
				Usage:    "The operation to apply: union, intersection, or difference",
				Aliases:  []string{"o"},
				OnlyOnce: true,
				Value:    "union",
				Validator: func(v string) error {
					switch v {
					case "union", "intersection", "difference":
						return nil
					default:
						return fmt.Errorf("op must be one of union, intersection, difference")
					}
				},
			},
		},
		HideVersion: true,
		Action:      run,
		Authors:     []any{"https://github.com/exactplane"},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(_ context.Context, cmd *cli.Command) error {
	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	var inputs []polygonJSON
	if err := json.Unmarshal(raw, &inputs); err != nil {
		return fmt.Errorf("parsing stdin as a JSON array of polygons: %w", err)
	}

	polygons := make([]polygon.Polygon, len(inputs))
	for i, pj := range inputs {
		p, err := toPolygon(pj)
		if err != nil {
			return fmt.Errorf("polygon %d: %w", i, err)
		}
		polygons[i] = p
	}

	var result polygon.Polygon
	switch cmd.String("op") {
	case "union":
		result = polygon.Union(polygons)
	case "intersection":
		result = polygon.Intersection(polygons)
	case "difference":
		if len(polygons) == 0 {
			return fmt.Errorf("difference requires at least one polygon")
		}
		result = polygon.Difference(polygons[0], polygons[1:])
	}

	out, err := json.Marshal(fromPolygon(result))
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}
