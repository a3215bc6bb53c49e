package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/happyhackingspace/bow"
	"github.com/happyhackingspace/bow/internal/storage"
)

const fetchTimeout = 30 * time.Second

func (c *CLI) newFitCommand() *cobra.Command {
	var modelPath string
	var format string
	var strict bool
	var noOutput bool

	cmd := &cobra.Command{
		Use:   "fit [corpus...]",
		Short: "Learn a vocabulary from a corpus and print its count matrix",
		Long: `Learn a vocabulary from a corpus and print its count matrix.

Each corpus argument is a text file (one document per line), an HTML file
(one document), a directory (one document per file), or an http(s) URL
whose page text becomes one document. With no arguments
documents are read from stdin, one per line.`,
		Example: `  bow fit recipes.txt
  bow fit pages/ --model pages.json --format json
  bow fit https://example.org/recipes
  bow fit big-corpus.txt --no-output
  cat recipes.txt | bow fit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			corpus, err := readCorpus(cmd.Context(), args)
			if err != nil {
				return err
			}

			var opts []bow.Option
			if strict || c.cfg.StrictVocabulary {
				opts = append(opts, bow.WithStrictVocabulary())
			}
			v := bow.New(opts...)

			start := time.Now()
			var m bow.Matrix
			if noOutput {
				v.Fit(corpus)
			} else {
				m = v.FitTransform(corpus)
			}
			slog.Info("Vocabulary fitted", "documents", len(corpus), "features", v.VocabSize(), "duration", time.Since(start))

			path := c.modelPath(modelPath)
			if err := v.Save(path); err != nil {
				return err
			}
			slog.Info("Model saved", "path", path)
			if noOutput {
				return nil
			}
			return writeMatrix(cmd.OutOrStdout(), format, v.FeatureNames(), m)
		},
	}

	cmd.Flags().StringVar(&modelPath, "model", "", "Model file to write (default: $BOW_MODEL or model.json)")
	cmd.Flags().StringVar(&format, "format", formatTable, "Output format: table or json")
	cmd.Flags().BoolVar(&strict, "strict", false, "Store a strict vocabulary that rejects unseen tokens")
	cmd.Flags().BoolVar(&noOutput, "no-output", false, "Only save the model, skip building and printing the matrix")
	return cmd
}

func readCorpus(ctx context.Context, paths []string) ([]string, error) {
	if len(paths) == 0 {
		if isStdinTerminal() {
			return nil, fmt.Errorf("no corpus given and stdin is a terminal")
		}
		slog.Debug("Reading corpus from stdin")
		return storage.ReadCorpusFrom(os.Stdin)
	}
	var corpus []string
	client := &http.Client{Timeout: fetchTimeout}
	for _, p := range paths {
		if storage.IsURL(p) {
			slog.Debug("Fetching document", "url", p)
			doc, err := storage.FetchDocument(ctx, client, p)
			if err != nil {
				return nil, err
			}
			corpus = append(corpus, doc)
			continue
		}
		docs, err := storage.ReadCorpus(p)
		if err != nil {
			return nil, fmt.Errorf("read corpus: %w", err)
		}
		slog.Debug("Corpus loaded", "path", p, "documents", len(docs))
		corpus = append(corpus, docs...)
	}
	return corpus, nil
}

func isStdinTerminal() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
