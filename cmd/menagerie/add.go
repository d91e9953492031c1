package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"menagerie"
	"menagerie/config"
	"menagerie/jsonfile"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Append an animal record to the store",
	Long: `Append an animal record to the local store file, through the same
validation and id assignment as the HTTP API.

Examples:
  # Add a record with two traits
  menagerie add --name Milo --species Cat --diet carnivore \
    --trait aloof --trait independent`,
	RunE: runAdd,
}

var (
	addName    string
	addSpecies string
	addDiet    string
	addTraits  []string
)

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "animal name")
	addCmd.Flags().StringVar(&addSpecies, "species", "", "animal species")
	addCmd.Flags().StringVar(&addDiet, "diet", "", "animal diet category")
	addCmd.Flags().StringArrayVar(&addTraits, "trait", nil, "personality trait (repeatable)")

	_ = addCmd.MarkFlagRequired("name")
	_ = addCmd.MarkFlagRequired("species")
	_ = addCmd.MarkFlagRequired("diet")

	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromContext(cmd.Context())
	if err != nil {
		return err
	}

	store, err := jsonfile.Open(cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	service := menagerie.NewAnimalService(store)

	traits := make([]any, 0, len(addTraits))
	for _, t := range addTraits {
		traits = append(traits, t)
	}

	candidate := map[string]any{
		"name":              addName,
		"species":           addSpecies,
		"diet":              addDiet,
		"personalityTraits": traits,
	}

	stored, err := service.Create(cmd.Context(), candidate)
	if err != nil {
		return fmt.Errorf("add animal: %w", err)
	}

	slog.Info("added", "id", stored.ID, "name", stored.Name, "species", stored.Species)
	return nil
}
