// Package menagerie provides a small, file-backed animal record collection
// with conjunctive query filtering and append-only persistence.
//
// The collection is an ordered sequence of records loaded once from a JSON
// file at startup. Every successful insert appends one record in memory and
// synchronously rewrites the whole file, so a read that follows a write
// always observes it. Records are never mutated or removed after insertion.
//
// # Key Components
//
//   - AnimalService: main service combining validation, filtering, and the repo
//   - AnimalRepo: interface for record persistence (see the jsonfile package)
//   - ListQuery: conjunctive filter built from HTTP query parameters
//
// # Example Usage
//
//	store, err := jsonfile.Open("animals.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	service := menagerie.NewAnimalService(store)
//
//	// Create a record
//	animal, err := service.Create(ctx, map[string]any{
//	    "name": "Milo", "species": "Cat", "diet": "carnivore",
//	    "personalityTraits": []any{"aloof", "independent"},
//	})
//
//	// List records matching every requested trait
//	out, err := service.List(ctx, menagerie.ListQuery{Traits: []string{"aloof"}})
//
// See the http package for the REST boundary and the jsonfile package for the
// file-backed repository implementation.
package menagerie
