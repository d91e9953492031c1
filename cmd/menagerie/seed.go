package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"menagerie"
	"menagerie/config"
	"menagerie/jsonfile"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write a starter animal store file",
	Long: `Write a starter animals.json so a fresh checkout can serve data
immediately. Refuses to overwrite an existing store unless --force is given.`,
	RunE: runSeed,
}

var seedForce bool

func init() {
	seedCmd.Flags().BoolVarP(&seedForce, "force", "f", false, "overwrite an existing store file")
	rootCmd.AddCommand(seedCmd)
}

// seedAnimals are appended in order, so they get ids 0..n-1.
var seedAnimals = []menagerie.Animal{
	{Name: "Rex", Species: "Dog", Diet: "omnivore", PersonalityTraits: []string{"loyal"}},
	{Name: "Milo", Species: "Cat", Diet: "carnivore", PersonalityTraits: []string{"aloof", "independent"}},
	{Name: "Bella", Species: "Goat", Diet: "herbivore", PersonalityTraits: []string{"curious", "stubborn"}},
	{Name: "Ziggy", Species: "Parrot", Diet: "omnivore", PersonalityTraits: []string{"talkative", "curious"}},
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromContext(cmd.Context())
	if err != nil {
		return err
	}

	path := cfg.Store.Path

	if _, statErr := os.Stat(path); statErr == nil {
		if !seedForce {
			return fmt.Errorf("store file already exists: %s (use --force to overwrite)", path)
		}
		if rmErr := os.Remove(path); rmErr != nil {
			return fmt.Errorf("remove existing store: %w", rmErr)
		}
	}

	store, err := jsonfile.Open(path)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	for _, a := range seedAnimals {
		stored, appendErr := store.Append(cmd.Context(), a)
		if appendErr != nil {
			return fmt.Errorf("seed %s: %w", a.Name, appendErr)
		}
		slog.Info("seeded", "id", stored.ID, "name", stored.Name)
	}

	slog.Info("seed complete", "path", path, "animals", len(seedAnimals))
	return nil
}
