package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/happyhackingspace/bow"
)

var demoCorpus = []string{
	"Crock Pot Pasta Never boil pasta again",
	"Pasta Pomodoro Fresh ingredients Parmesan to taste",
}

const demoQuery = "Pasta Pomodoro Fresh"

func (c *CLI) newDemoCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Fit a two-document sample corpus and encode a held-out phrase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			v := bow.New()
			m := v.FitTransform(demoCorpus)
			vec, err := v.Transform(demoQuery)
			if err != nil {
				return err
			}
			if format == formatJSON {
				return writeJSON(out, encoded{
					Features: v.FeatureNames(),
					Matrix:   matrixRows(m),
					Query:    demoQuery,
					Vector:   vec,
				})
			}

			if err := writeFeatures(out, format, v.FeatureNames()); err != nil {
				return err
			}
			if err := writeMatrix(out, format, v.FeatureNames(), m); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(out, "%q\n", demoQuery); err != nil {
				return err
			}
			return writeVector(out, format, v.FeatureNames(), vec)
		},
	}

	cmd.Flags().StringVar(&format, "format", formatTable, "Output format: table or json")
	return cmd
}
