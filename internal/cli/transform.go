package cli

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/happyhackingspace/bow"
	"github.com/happyhackingspace/bow/internal/storage"
)

func (c *CLI) newTransformCommand() *cobra.Command {
	var modelPath string
	var format string
	var strict bool

	cmd := &cobra.Command{
		Use:   "transform [text...]",
		Short: "Encode text as a count vector using a fitted model",
		Long: `Encode text as a count vector using a fitted model.

Arguments are joined into one document. With no arguments every stdin line
is encoded as its own document.`,
		Example: `  bow transform "Pasta Pomodoro Fresh"
  bow transform --strict "Pasta Carbonara"
  cat queries.txt | bow transform --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			v, err := c.loadModel(modelPath)
			if err != nil {
				return err
			}
			switch {
			case cmd.Flags().Changed("strict"):
				v.SetStrict(strict)
			case c.cfg.StrictVocabulary:
				v.SetStrict(true)
			}

			if len(args) > 0 {
				vec, err := v.Transform(strings.Join(args, " "))
				if err != nil {
					return err
				}
				return writeVector(cmd.OutOrStdout(), format, v.FeatureNames(), vec)
			}

			if isStdinTerminal() {
				return cmd.Help()
			}
			docs, err := storage.ReadCorpusFrom(os.Stdin)
			if err != nil {
				return err
			}
			m, err := v.TransformAll(docs)
			if err != nil {
				return err
			}
			return writeMatrix(cmd.OutOrStdout(), format, v.FeatureNames(), m)
		},
	}

	cmd.Flags().StringVar(&modelPath, "model", "", "Model file to read (default: $BOW_MODEL or model.json)")
	cmd.Flags().StringVar(&format, "format", formatTable, "Output format: table or json")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on tokens missing from the vocabulary (--strict=false overrides the model)")
	return cmd
}

func (c *CLI) newFeaturesCommand() *cobra.Command {
	var modelPath string
	var format string

	cmd := &cobra.Command{
		Use:   "features",
		Short: "Print the feature names of a fitted model in column order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			v, err := c.loadModel(modelPath)
			if err != nil {
				return err
			}
			return writeFeatures(cmd.OutOrStdout(), format, v.FeatureNames())
		},
	}

	cmd.Flags().StringVar(&modelPath, "model", "", "Model file to read (default: $BOW_MODEL or model.json)")
	cmd.Flags().StringVar(&format, "format", formatTable, "Output format: table or json")
	return cmd
}

func (c *CLI) loadModel(flag string) (*bow.Vectorizer, error) {
	path := c.modelPath(flag)
	slog.Debug("Loading model", "path", path)
	v, err := bow.Load(path)
	if err != nil {
		return nil, err
	}
	slog.Debug("Model loaded", "features", v.VocabSize(), "strict", v.Strict())
	return v, nil
}
