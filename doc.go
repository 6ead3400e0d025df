// Package hillclimb finds fewest-step routes across rectangular elevation
// maps where a single step may climb only a bounded amount.
//
// What is hillclimb?
//
//	A small, dependency-light toolkit that brings together:
//		• elevation: the immutable grid, its legality rule and neighbor queries
//		• pathfind:  Dijkstra over cells, direct and nearest-of-many queries
//		• heightmap: the S/E/a-z letter map format, parse and format
//		• render:    ASCII route overlays and Graphviz DOT export
//		• cmd/hillclimb: the command-line front end
//
// Two queries are answered:
//
//	Direct:  fewest steps from the start cell to the end cell.
//	Nearest: fewest steps from any lowest cell to the end cell, answered
//	         with a single search rooted at the end over reversed moves.
//
// Quick ASCII example (S=a, E=z, climb ≤ 1) with the direct route as drawn by
// render.Overlay:
//
//	Sabqponm        >>vv<<<<
//	abcryxxl        ..vvv<<^
//	accszExk   →    ..vv>E^^
//	acctuvwj        ..v>>>^^
//	abdefghi        ..>>>>>^
//
// Both queries report 31 and 29 steps on this map.
//
//	go install github.com/katalvlaran/hillclimb/cmd/hillclimb@latest
package hillclimb
