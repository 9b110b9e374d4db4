package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/flip7sim/internal/strategy"
	"github.com/muesli/termenv"
)

type StrategiesCmd struct {
	Filter  string `help:"Only list names containing this substring"`
	NoColor bool   `help:"Disable colour output"`
}

func (c *StrategiesCmd) Run() error {
	if c.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	matched := 0
	for _, s := range strategy.Catalog() {
		if c.Filter != "" && !strings.Contains(s.Name(), c.Filter) {
			continue
		}
		fmt.Println(s.Name())
		matched++
	}
	fmt.Println(dimStyle.Render(fmt.Sprintf("%d of %d strategies", matched, strategy.CatalogSize)))
	return nil
}
