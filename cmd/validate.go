package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arcanaland/riffle/internal/validator"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a pile listing",
	Long: `Validate checks that a file of card IDs, one per line, is a complete pile of a
deck variant in any order. Blank lines and lines starting with '#' are ignored.
Use '-' to read from standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		var in io.Reader = cmd.InOrStdin()
		if path != "-" {
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("pile file not found: %s", path)
			}
			defer f.Close()
			in = f
		}

		ids, err := readIDs(in)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", path, err)
		}

		variant, _ := cmd.Flags().GetString("variant")
		if variant == "" {
			variant = cfg.DefaultVariant
		}

		v := validator.NewValidator(variant)
		results, err := v.Validate(ids)
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintf(out, "✅ '%s' is a complete %s pile.\n", path, variant)
		} else {
			fmt.Fprintf(out, "❌ '%s' has %d validation errors:\n", path, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}

// readIDs returns the non-blank, non-comment lines of r
func readIDs(r io.Reader) ([]string, error) {
	var ids []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ids = append(ids, line)
	}
	return ids, scanner.Err()
}

func init() {
	RootCmd.AddCommand(validateCmd)

	validateCmd.Flags().String("variant", "", "Deck variant to validate against (default from config)")
}
