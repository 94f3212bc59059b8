// Command alpha2conc estimates the steady-state photocarrier concentration
// of an absorbing slab from its absorption spectrum.
//
// Usage:
//
//	alpha2conc run [flags]
//	alpha2conc spectrum [flags]
//
// Examples:
//
//	alpha2conc run --absorption alpha.csv
//	alpha2conc run --absorption alpha.csv --spectrum ASTMG173.csv --thickness 5e-5
//	alpha2conc run --config run.yaml --json
//	alpha2conc spectrum --spectrum ASTMG173.csv --column 2
package main

import "os"

var version = "dev"

func main() {
	cmd := newRootCmd()
	cmd.SetOut(os.Stdout)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
