package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebcase/bitcalc/radix"
)

var convertCommand = &cobra.Command{
	Use:     "convert VALUE",
	Short:   "show a value in every numeral system",
	Example: "bitcalc convert --in hex --size 8 --signed FF",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, c, _, err := session(cmd)
		if err != nil {
			return err
		}

		v, err := radix.Parse(args[0], c.Conversion.InputSystem, c.Mode())
		if err != nil {
			return err
		}

		v = c.Fix(v)

		w := cmd.OutOrStdout()
		for _, r := range radix.Radixes {
			fmt.Fprintf(w, "%-13s %s\n", r.String()+":", radix.Format(v, r, c.Mode()))
		}
		fmt.Fprintf(w, "%-13s %s\n", "bits:", groupBits(c.Vector(v).String()))

		return nil
	},
}
