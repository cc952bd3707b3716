package cmd

import (
	"fmt"

	"github.com/arcanaland/riffle/internal/config"
	"github.com/arcanaland/riffle/internal/deck"
	"github.com/spf13/cobra"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "List deck variants and choose the default",
	Long:  `Commands for the deck variants riffle can build.`,
}

// deckListCmd represents the deck list command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the deck variants",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaultVariant := cfg.DefaultVariant
		if r, err := deck.Lookup(defaultVariant); err == nil {
			defaultVariant = string(r.Variant)
		}

		out := cmd.OutOrStdout()
		for _, r := range deck.Variants() {
			marker := " "
			if string(r.Variant) == defaultVariant {
				marker = "*"
			}
			fmt.Fprintf(out, "%s %-14s %3d cards  %s\n", marker, r.Variant, r.Size(), r.Description)
		}
		return nil
	},
}

// deckSetDefaultCmd represents the deck set-default command
var deckSetDefaultCmd = &cobra.Command{
	Use:   "set-default [variant]",
	Short: "Set the default deck variant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := deck.Lookup(args[0])
		if err != nil {
			return err
		}

		if err := config.SetDefaultVariant(resolvedConfigPath(), string(r.Variant)); err != nil {
			return fmt.Errorf("error setting default variant: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default variant set to: %s\n", r.Variant)
		return nil
	},
}

func resolvedConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.GetConfigFilePath()
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckSetDefaultCmd)
}
