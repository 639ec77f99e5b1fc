package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calebcase/bitcalc/engine"
)

var evalCommand = &cobra.Command{
	Use:     "eval TOKEN...",
	Short:   "press buttons and print the display",
	Example: "bitcalc eval 7 + 3 = --out hex",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, c, e, err := session(cmd)
		if err != nil {
			return err
		}

		ds, err := script(c, e, args)
		if err != nil {
			return err
		}

		printDisplay(cmd.OutOrStdout(), c, ds)

		return store.Save(e.Snapshot(c))
	},
}

// script evaluates every token in order and returns the final display.
func script(c *engine.Context, e *engine.Engine, tokens []string) (engine.DisplayState, error) {
	ds := e.Display(c)

	for _, tok := range tokens {
		evs, err := engine.Parse(tok)
		if err != nil {
			return ds, err
		}

		for _, ev := range evs {
			ds, err = e.Evaluate(c, ev)
			if err != nil {
				return ds, err
			}
		}
	}

	return ds, nil
}

func printDisplay(w io.Writer, c *engine.Context, ds engine.DisplayState) {
	mode := "unsigned"
	if c.Signed {
		mode = "signed"
	}

	fmt.Fprintf(w, "%s %d-bit %s\n", c.Conversion.InputSystem, c.Size, mode)
	if ds.Pending != "" {
		fmt.Fprintf(w, "pending: %s\n", ds.Pending)
	}
	fmt.Fprintf(w, "input:   %s\n", ds.InputText)
	fmt.Fprintf(w, "output:  %s (%s)\n", ds.OutputText, c.Conversion.OutputSystem)
	fmt.Fprintf(w, "bits:    %s\n", groupBits(ds.Bits.String()))
}

// groupBits separates bytes of a bit string with spaces.
func groupBits(bits string) string {
	ip, fp, dot := strings.Cut(bits, ".")

	var groups []string
	for len(ip) > 8 {
		groups = append([]string{ip[len(ip)-8:]}, groups...)
		ip = ip[:len(ip)-8]
	}
	groups = append([]string{ip}, groups...)

	out := strings.Join(groups, " ")
	if dot {
		out += "." + fp
	}

	return out
}
