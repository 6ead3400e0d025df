// Command hillclimb finds fewest-step routes over letter height maps.
//
// Usage:
//
//	hillclimb direct  map.txt           # steps from S to E
//	hillclimb nearest map.txt           # steps from the closest 'a' to E
//	hillclimb render  map.txt --render dot > map.dot
//	hillclimb --config hillclimb.yaml   # mode and input from the file
//
// The step count is printed on stdout. The exit code is 1 if no route exists
// or the input is invalid.
package main

import (
	"os"

	"github.com/safing/portbase/log"
)

func main() {
	code := 0
	if err := newRootCmd().Execute(); err != nil {
		code = 1
	}
	if loggingStarted.IsSet() {
		log.Shutdown()
	}
	os.Exit(code)
}
