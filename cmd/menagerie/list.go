package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"menagerie"
	"menagerie/config"
	"menagerie/jsonfile"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List animal records in the store",
	Long: `List animal records in the local store file, with the same filter
criteria the HTTP API accepts.

Examples:
  menagerie list
  menagerie list --diet omnivore
  menagerie list --trait aloof --trait independent --json`,
	RunE: runList,
}

var (
	listName    string
	listSpecies string
	listDiet    string
	listTraits  []string
	listJSON    bool
)

func init() {
	listCmd.Flags().StringVar(&listName, "name", "", "filter by exact name")
	listCmd.Flags().StringVar(&listSpecies, "species", "", "filter by exact species")
	listCmd.Flags().StringVar(&listDiet, "diet", "", "filter by exact diet")
	listCmd.Flags().StringArrayVar(&listTraits, "trait", nil, "require a personality trait (repeatable, all must match)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromContext(cmd.Context())
	if err != nil {
		return err
	}

	store, err := jsonfile.Open(cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	service := menagerie.NewAnimalService(store)

	q := menagerie.ListQuery{
		Traits:  listTraits,
		Diet:    listDiet,
		Species: listSpecies,
		Name:    listName,
	}

	animals, err := service.List(cmd.Context(), q)
	if err != nil {
		return fmt.Errorf("list animals: %w", err)
	}

	if listJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(animals)
	}

	if len(animals) == 0 {
		fmt.Println("No animals found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tSPECIES\tDIET\tTRAITS")
	for _, a := range animals {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			a.ID, a.Name, a.Species, a.Diet, strings.Join(a.PersonalityTraits, ", "))
	}
	return w.Flush()
}
