package main

import (
	"fmt"

	"github.com/arloliu/dosecurve/formula"
)

func runCatalog(a *app, args []string) error {
	fs := a.newFlagSet("catalog")
	var kinds bool
	fs.BoolVar(&kinds, "kinds", false, "also list the calculation kinds and their AACE formulas")
	if err := a.setup(fs, args); err != nil {
		return err
	}

	for _, f := range formula.Catalog() {
		fmt.Fprintln(a.stdout, f.Label())
	}

	if kinds {
		fmt.Fprintln(a.stdout)
		for _, k := range formula.Kinds {
			fmt.Fprintf(a.stdout, "%-5s %s\n", k, k.ReferencePlain())
		}
	}

	return nil
}
