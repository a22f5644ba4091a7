package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jlauinger/primefactor"
	"github.com/jlauinger/primefactor/arith"
)

// version is injected at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:     "primefactor <number>",
		Short:   "Factor a natural number into its prime factors",
		Version: version,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			num, err := arith.ParseU128(args[0])
			if err != nil {
				return fmt.Errorf("invalid number %q: %w", args[0], err)
			}

			result := primefactor.RunAuto(num)

			if pretty {
				printPretty(cmd, result)
			} else {
				printPlain(cmd, result)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "print factors as a prime^power expression")
	cmd.SetVersionTemplate("{{.Version}}\n")

	return cmd
}

func printPlain(cmd *cobra.Command, f *primefactor.Result) {
	fmt.Fprint(cmd.OutOrStdout(), "factors: ")
	for i, factor := range f.Factors {
		if i > 0 {
			fmt.Fprint(cmd.OutOrStdout(), ", ")
		}
		fmt.Fprint(cmd.OutOrStdout(), factor.String())
	}
	fmt.Fprintln(cmd.OutOrStdout())
}

func printPretty(cmd *cobra.Command, f *primefactor.Result) {
	repr := f.PrimeFactorRepr()
	fmt.Fprint(cmd.OutOrStdout(), "factors: ")
	for i, pp := range repr {
		if i > 0 {
			fmt.Fprint(cmd.OutOrStdout(), " * ")
		}
		if pp.Count == 1 {
			fmt.Fprint(cmd.OutOrStdout(), pp.Prime.String())
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s^%d", pp.Prime.String(), pp.Count)
		}
	}
	fmt.Fprintln(cmd.OutOrStdout())
}
