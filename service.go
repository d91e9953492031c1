package menagerie

import (
	"context"
	"fmt"
)

// AnimalRepo defines the interface for record persistence.
// Implementations must keep the persisted form and the in-memory sequence in
// sync: Append must not return until the new record is durably written.
//
// All methods accept a context for cancellation and timeout control.
type AnimalRepo interface {
	// All returns the full ordered collection.
	All(ctx context.Context) ([]Animal, error)

	// Get retrieves a record by id.
	//
	// Returns:
	//   - Animal: the record if found
	//   - error: ErrNotFound if the id is absent, or other storage errors
	Get(ctx context.Context, id string) (Animal, error)

	// Append assigns the next id to the record, appends it to the collection,
	// and rewrites the persisted form before returning.
	//
	// Returns:
	//   - Animal: the stored record with its assigned id
	//   - error: any persistence error. The repo does not roll back the
	//     in-memory append on a failed write; callers should treat the error
	//     as fatal for the current operation.
	Append(ctx context.Context, a Animal) (Animal, error)
}

// AnimalService exposes the boundary operations over an AnimalRepo.
type AnimalService struct {
	repo AnimalRepo
}

func NewAnimalService(repo AnimalRepo) *AnimalService {
	return &AnimalService{repo: repo}
}

// List applies the query filter to the full collection. An empty result is a
// normal outcome, never an error.
func (s *AnimalService) List(ctx context.Context, q ListQuery) ([]Animal, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("list animals: %w", err)
	}

	animals, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list animals: %w", err)
	}

	return Filter(animals, q), nil
}

// Get returns the record with the given id, or an error wrapping ErrNotFound.
// Absence is a normal outcome surfaced to the boundary, not a failure.
func (s *AnimalService) Get(ctx context.Context, id string) (Animal, error) {
	if err := ctx.Err(); err != nil {
		return Animal{}, fmt.Errorf("get animal: %w", err)
	}

	a, err := s.repo.Get(ctx, id)
	if err != nil {
		return Animal{}, fmt.Errorf("get animal %s: %w", id, err)
	}

	return a, nil
}

// Create validates the candidate, appends it to the collection, and returns
// the stored record with its assigned id.
//
// Error types returned:
//   - ErrInvalidInput: a required field is missing or has the wrong type
//   - wrapped persistence errors: the file rewrite failed; the request cannot
//     be retried safely because the in-memory append is not rolled back
func (s *AnimalService) Create(ctx context.Context, candidate map[string]any) (Animal, error) {
	if err := ctx.Err(); err != nil {
		return Animal{}, fmt.Errorf("create animal: %w", err)
	}

	if err := ValidateCandidate(candidate); err != nil {
		return Animal{}, fmt.Errorf("create animal: %w", err)
	}

	a, err := AnimalFromCandidate(candidate)
	if err != nil {
		return Animal{}, fmt.Errorf("create animal: %w", err)
	}

	stored, err := s.repo.Append(ctx, a)
	if err != nil {
		return Animal{}, fmt.Errorf("create animal: %w", err)
	}

	return stored, nil
}
