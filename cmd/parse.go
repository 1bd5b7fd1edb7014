package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/guttosm/recipe-service/internal/domain/model"
	"github.com/guttosm/recipe-service/internal/service"
	"github.com/spf13/cobra"
)

type parseOptions struct {
	from   int
	to     int
	pretty bool
}

func newParseCmd() *cobra.Command {
	opts := &parseOptions{}

	cmd := &cobra.Command{
		Use:   "parse [line...]",
		Short: "Parse ingredient lines",
		Long: `Parses ingredient lines into count, unit and ingredient text and prints them as JSON.
Lines are taken from the arguments, or one per line from stdin when none are given.
With --from and --to the parsed counts are rescaled between serving counts.`,
		Example: `  recipe-service parse "1 1/2 cups flour" "2 tbsp sugar"
  cat ingredients.txt | recipe-service parse --from 4 --to 6`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd.InOrStdin(), cmd.OutOrStdout(), args, opts)
		},
	}

	cmd.Flags().IntVar(&opts.from, "from", 0, "serving count the lines are written for")
	cmd.Flags().IntVar(&opts.to, "to", 0, "serving count to scale to")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "indent the JSON output")
	cmd.MarkFlagsRequiredTogether("from", "to")

	return cmd
}

func runParse(in io.Reader, out io.Writer, args []string, opts *parseOptions) error {
	lines := args
	if len(lines) == 0 {
		var err error
		if lines, err = readLines(in); err != nil {
			return err
		}
	}

	ingredients := service.NewIngredientParser().ParseAll(lines)
	if opts.from != 0 || opts.to != 0 {
		scaled, err := model.ScaleIngredients(ingredients, opts.from, opts.to)
		if err != nil {
			return err
		}
		ingredients = scaled
	}

	enc := json.NewEncoder(out)
	if opts.pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(ingredients)
}

func readLines(in io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ingredient lines: %w", err)
	}
	return lines, nil
}
