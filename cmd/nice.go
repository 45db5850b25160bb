package main

import (
	"fmt"
	"taxipark/pkg/nicestring"

	"github.com/spf13/cobra"
)

func niceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nice <string>...",
		Short: "Classifies strings as nice or naughty",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			out := cmd.OutOrStdout()

			for _, s := range args {
				verdict := nicestring.Evaluate(s)
				label := "naughty"
				if verdict.Nice {
					label = "nice"
				}

				if !verbose {
					_, _ = fmt.Fprintf(out, "%q\t%s\n", s, label)

					continue
				}
				_, _ = fmt.Fprintf(out, "%q\t%s\tnoForbiddenSubstring=%t enoughVowels=%t doubleLetter=%t\n",
					s, label, verdict.NoForbiddenSubstring, verdict.EnoughVowels, verdict.DoubleLetter)
			}

			return nil
		},
	}
	cmd.Flags().BoolP("verbose", "v", false, "Print the outcome of every rule")

	return cmd
}
