package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/safing/portbase/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hillclimb/elevation"
	"github.com/katalvlaran/hillclimb/internal/config"
	"github.com/katalvlaran/hillclimb/pathfind"
	"github.com/katalvlaran/hillclimb/render"
)

// query runs the direct or nearest query and prints the step count,
// followed by the configured drawing of the route.
func (a *app) query(cmd *cobra.Command, args []string, mode string) error {
	g, err := a.loadGrid(cmd, args)
	if err != nil {
		return err
	}

	start := time.Now()
	var rt *pathfind.Route
	switch mode {
	case config.ModeNearest:
		rt, err = pathfind.NearestLowest(g)
	default:
		rt, err = pathfind.ShortestPath(g)
	}
	if err != nil {
		if errors.Is(err, pathfind.ErrNoPath) {
			log.Warningf("hillclimb: %s query found no route: %s", mode, err)
		}
		return err
	}
	log.Infof("hillclimb: %s route %s -> %s, %d steps, took %s", mode, rt.From, rt.To, rt.Steps, time.Since(start))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, rt.Steps)

	return a.draw(cmd, g, rt.Path, nil)
}

// renderMap draws every cell's distance to E followed by the route from S,
// or the whole legal-step graph when the render format is dot.
func (a *app) renderMap(cmd *cobra.Command, args []string) error {
	g, err := a.loadGrid(cmd, args)
	if err != nil {
		return err
	}

	res, err := pathfind.Search(g, g.End())
	if err != nil {
		return err
	}
	path, err := res.PathTo(g.Start())
	if err != nil && !errors.Is(err, pathfind.ErrNoPath) {
		return err
	}
	log.Debugf("hillclimb: %d of %d cells reach %s", len(res.Dist), g.Len(), g.End())

	if a.cfg.Render == config.RenderDOT {
		return a.draw(cmd, g, path, res)
	}

	// ascii, also used for "none": the distance table, a blank line, then
	// the route from S.
	out := cmd.OutOrStdout()
	fmt.Fprint(out, render.Distances(g, res))
	fmt.Fprintln(out)
	fmt.Fprint(out, render.Overlay(g, path))
	return nil
}

// draw writes g and path in the configured render format.
func (a *app) draw(cmd *cobra.Command, g *elevation.Grid, path []elevation.Cell, res *pathfind.Result) error {
	out := cmd.OutOrStdout()
	switch a.cfg.Render {
	case config.RenderASCII:
		fmt.Fprint(out, render.Overlay(g, path))
	case config.RenderDOT:
		dot, err := render.DOT(g, render.WithPath(path), render.WithResult(res))
		if err != nil {
			return err
		}
		fmt.Fprint(out, dot)
	}

	return nil
}
