// Package pathfind_test provides examples demonstrating the two query modes.
package pathfind_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/pathfind"
)

// ExampleShortestPath runs the direct query on the canonical sample map.
func ExampleShortestPath() {
	// 1) Parse the map; S is the start, E the end.
	g, err := heightmap.ParseString(sample)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) One reverse search from E, reconstructed from S.
	r, err := pathfind.ShortestPath(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%s -> %s in %d steps\n", r.From, r.To, r.Steps)
	// Output: (0,0) -> (5,2) in 31 steps
}

// ExampleNearestLowest reuses one search for every 'a' cell.
func ExampleNearestLowest() {
	g, _ := heightmap.ParseString(sample)

	r, err := pathfind.NearestLowest(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("nearest lowest cell is %d steps away\n", r.Steps)
	// Output: nearest lowest cell is 29 steps away
}

// ExampleSearch shows distances to the end and the no-path outcome.
func ExampleSearch() {
	g, _ := heightmap.ParseString("SazE\naayz")

	res, _ := pathfind.Search(g, g.End())
	var parts []string
	for _, c := range res.Cells() {
		d, _ := res.DistanceTo(c)
		parts = append(parts, fmt.Sprintf("%s:%d", c, d))
	}
	fmt.Println(strings.Join(parts, " "))
	fmt.Println("S reachable:", res.Reachable(g.Start()))

	_, err := pathfind.ShortestPath(g)
	fmt.Println(err)
	// Output:
	// (2,0):1 (3,0):0 (2,1):2 (3,1):1
	// S reachable: false
	// pathfind: no path to target: (0,0) not connected to (3,0)
}
