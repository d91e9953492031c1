package menagerie_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"menagerie"
)

func testAnimals() []menagerie.Animal {
	return []menagerie.Animal{
		{ID: "0", Name: "Rex", Species: "Dog", Diet: "omnivore", PersonalityTraits: []string{"loyal"}},
		{ID: "1", Name: "Milo", Species: "Cat", Diet: "carnivore", PersonalityTraits: []string{"aloof", "independent"}},
		{ID: "2", Name: "Bella", Species: "Goat", Diet: "herbivore", PersonalityTraits: []string{"curious", "stubborn"}},
		{ID: "3", Name: "Ziggy", Species: "Parrot", Diet: "omnivore", PersonalityTraits: []string{"talkative", "curious"}},
	}
}

func TestFilter_NoCriteriaReturnsAllInOrder(t *testing.T) {
	animals := testAnimals()

	out := menagerie.Filter(animals, menagerie.ListQuery{})

	assert.Equal(t, animals, out)
}

func TestFilter_UnrecognizedKeysIgnored(t *testing.T) {
	animals := testAnimals()

	q := menagerie.ListQueryFromValues(url.Values{
		"sort":  {"asc"},
		"limit": {"2"},
	})

	out := menagerie.Filter(animals, q)
	assert.Equal(t, animals, out)
}

func TestFilter_SingleTrait(t *testing.T) {
	animals := testAnimals()

	q := menagerie.ListQueryFromValues(url.Values{"personalityTraits": {"curious"}})
	out := menagerie.Filter(animals, q)

	assert.Len(t, out, 2)
	assert.Equal(t, "Bella", out[0].Name)
	assert.Equal(t, "Ziggy", out[1].Name)
}

func TestFilter_MultipleTraitsAreIntersection(t *testing.T) {
	animals := testAnimals()

	// "curious" alone matches Bella and Ziggy; adding "stubborn" must narrow
	// to Bella, not widen to the union.
	q := menagerie.ListQueryFromValues(url.Values{"personalityTraits": {"curious", "stubborn"}})
	out := menagerie.Filter(animals, q)

	assert.Len(t, out, 1)
	assert.Equal(t, "Bella", out[0].Name)
}

func TestFilter_ExactEqualityKeys(t *testing.T) {
	animals := testAnimals()

	tests := []struct {
		name  string
		query url.Values
		want  []string
	}{
		{"diet", url.Values{"diet": {"omnivore"}}, []string{"Rex", "Ziggy"}},
		{"species", url.Values{"species": {"Cat"}}, []string{"Milo"}},
		{"name", url.Values{"name": {"Bella"}}, []string{"Bella"}},
		{"diet is case sensitive", url.Values{"diet": {"Omnivore"}}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := menagerie.Filter(animals, menagerie.ListQueryFromValues(tt.query))

			names := make([]string, 0, len(out))
			for _, a := range out {
				names = append(names, a.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestFilter_CriteriaAreConjunctive(t *testing.T) {
	animals := testAnimals()

	q := menagerie.ListQueryFromValues(url.Values{
		"diet":              {"omnivore"},
		"personalityTraits": {"curious"},
	})
	out := menagerie.Filter(animals, q)

	assert.Len(t, out, 1)
	assert.Equal(t, "Ziggy", out[0].Name)
}

func TestFilter_NoMatchesReturnsEmptyNotNil(t *testing.T) {
	animals := testAnimals()

	q := menagerie.ListQueryFromValues(url.Values{"species": {"Dragon"}})
	out := menagerie.Filter(animals, q)

	assert.NotNil(t, out)
	assert.Empty(t, out)
}
