package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/riffle/internal/card"
	"github.com/arcanaland/riffle/internal/deck"
	"github.com/arcanaland/riffle/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show [card_id]",
	Short: "Display information about a specific card",
	Long: `Show displays a card and the deck variants that contain it.
Use canonical card IDs like 'major_arcana.00' or 'minor_arcana.wands.ace'.

Examples:
  riffle show major_arcana.00
  riffle show minor_arcana.void.zero
  riffle show special.white`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := card.ParseID(args[0])
		if err != nil {
			return err
		}

		names, err := loadNames()
		if err != nil {
			return err
		}
		plain, _ := cmd.Flags().GetBool("plain")
		r := render.New(cmd.OutOrStdout(), cfg.Color && !plain, names)
		r.Header("Card", r.Names.Of(c))
		r.Header("ID", c.ID())
		r.Header("Type", kindLabel(c))
		if c.Kind == card.KindMinor {
			r.Header("Suit", c.Suit.Title())
			r.Header("Rank", c.Rank.Title())
		}

		var in []string
		for _, recipe := range deck.Variants() {
			for _, other := range recipe.Build().Cards() {
				if other == c {
					in = append(in, string(recipe.Variant))
					break
				}
			}
		}
		if len(in) == 0 {
			r.Header("Decks", "none")
		} else {
			r.Header("Decks", fmt.Sprint(in))
		}
		return nil
	},
}

func kindLabel(c card.Card) string {
	switch c.Kind {
	case card.KindMajor:
		return "Major Arcana"
	case card.KindMinor:
		return "Minor Arcana"
	}
	return "Special"
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().Bool("plain", false, "Disable colored output")
}
