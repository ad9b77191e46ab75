package main

import (
	"fmt"

	"github.com/fwojciec/refdex"
	"github.com/fwojciec/refdex/yaml"
)

// Run executes the packages command.
func (c *PackagesCmd) Run(deps *Dependencies) error {
	m, err := yaml.LoadManifest(c.Manifest)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", refdex.ErrorMessage(err))
		return err
	}

	for _, pkg := range m.Packages {
		fmt.Fprintf(deps.Stdout, "%s  %s\n", pkg.ID, pkg.BaseURL)
	}

	return nil
}
