package menagerie_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menagerie"
)

func TestValidateCandidate(t *testing.T) {
	tests := []struct {
		name      string
		candidate map[string]any
		wantErr   bool
	}{
		{
			name: "complete candidate accepted",
			candidate: map[string]any{
				"name": "Leo", "species": "Lion", "diet": "carnivore",
				"personalityTraits": []any{"aloof"},
			},
		},
		{
			name: "missing name rejected",
			candidate: map[string]any{
				"species": "Lion", "diet": "carnivore",
				"personalityTraits": []any{"aloof"},
			},
			wantErr: true,
		},
		{
			name: "missing species rejected",
			candidate: map[string]any{
				"name": "Leo", "diet": "carnivore",
				"personalityTraits": []any{"aloof"},
			},
			wantErr: true,
		},
		{
			name: "missing diet rejected",
			candidate: map[string]any{
				"name": "Leo", "species": "Lion",
				"personalityTraits": []any{"aloof"},
			},
			wantErr: true,
		},
		{
			name: "missing traits rejected",
			candidate: map[string]any{
				"name": "Leo", "species": "Lion", "diet": "carnivore",
			},
			wantErr: true,
		},
		{
			name: "non-string name rejected",
			candidate: map[string]any{
				"name": float64(7), "species": "Lion", "diet": "carnivore",
				"personalityTraits": []any{"aloof"},
			},
			wantErr: true,
		},
		{
			name: "traits as string rejected",
			candidate: map[string]any{
				"name": "Leo", "species": "Lion", "diet": "carnivore",
				"personalityTraits": "aloof",
			},
			wantErr: true,
		},
		{
			// Presence and type only; content is not checked.
			name: "empty strings pass",
			candidate: map[string]any{
				"name": "", "species": "", "diet": "",
				"personalityTraits": []any{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := menagerie.ValidateCandidate(tt.candidate)
			if tt.wantErr {
				assert.ErrorIs(t, err, menagerie.ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAnimalFromCandidate(t *testing.T) {
	t.Run("converts fields and preserves extras", func(t *testing.T) {
		candidate := map[string]any{
			"name": "Leo", "species": "Lion", "diet": "carnivore",
			"personalityTraits": []any{"aloof", "regal"},
			"keeper":            "jo",
		}

		a, err := menagerie.AnimalFromCandidate(candidate)
		require.NoError(t, err)

		assert.Empty(t, a.ID, "id assignment belongs to the repo")
		assert.Equal(t, "Leo", a.Name)
		assert.Equal(t, []string{"aloof", "regal"}, a.PersonalityTraits)
		assert.Equal(t, json.RawMessage(`"jo"`), a.Extra["keeper"])
	})

	t.Run("non-string trait entry rejected", func(t *testing.T) {
		candidate := map[string]any{
			"name": "Leo", "species": "Lion", "diet": "carnivore",
			"personalityTraits": []any{"aloof", float64(3)},
		}

		_, err := menagerie.AnimalFromCandidate(candidate)
		assert.ErrorIs(t, err, menagerie.ErrInvalidInput)
	})
}
