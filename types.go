package menagerie

import (
	"encoding/json"
	"net/url"
)

// Animal is one record in the collection.
//
// IDs are assigned by the repository as the decimal string of the collection
// length at insertion time; they are unique and never reused because records
// are never deleted.
type Animal struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Species           string   `json:"species"`
	Diet              string   `json:"diet"`
	PersonalityTraits []string `json:"personalityTraits"`

	// Extra carries fields present in the persisted document that the schema
	// does not know about. They survive load/rewrite cycles verbatim.
	Extra map[string]json.RawMessage `json:"-"`
}

// knownFields are the schema-owned JSON keys; everything else lands in Extra.
var knownFields = map[string]struct{}{
	"id":                {},
	"name":              {},
	"species":           {},
	"diet":              {},
	"personalityTraits": {},
}

// animalJSON mirrors Animal's schema-owned fields for (un)marshaling.
type animalJSON struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Species           string   `json:"species"`
	Diet              string   `json:"diet"`
	PersonalityTraits []string `json:"personalityTraits"`
}

// MarshalJSON emits the schema fields plus any extra fields carried over from
// the source document. Known fields always win over a colliding extra.
func (a Animal) MarshalJSON() ([]byte, error) {
	b, err := json.Marshal(animalJSON{
		ID:                a.ID,
		Name:              a.Name,
		Species:           a.Species,
		Diet:              a.Diet,
		PersonalityTraits: a.PersonalityTraits,
	})
	if err != nil || len(a.Extra) == 0 {
		return b, err
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(b, &merged); err != nil {
		return nil, err
	}
	for k, v := range a.Extra {
		if _, known := knownFields[k]; known {
			continue
		}
		merged[k] = v
	}
	return json.Marshal(merged)
}

// UnmarshalJSON fills the schema fields and stashes unknown keys in Extra.
func (a *Animal) UnmarshalJSON(data []byte) error {
	var fields animalJSON
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*a = Animal{
		ID:                fields.ID,
		Name:              fields.Name,
		Species:           fields.Species,
		Diet:              fields.Diet,
		PersonalityTraits: fields.PersonalityTraits,
	}

	for k, v := range raw {
		if _, known := knownFields[k]; known {
			continue
		}
		if a.Extra == nil {
			a.Extra = make(map[string]json.RawMessage)
		}
		a.Extra[k] = v
	}
	return nil
}

// ListQuery holds the recognized filter criteria for listing animals.
// A zero value matches every record.
type ListQuery struct {
	// Traits must ALL be present in a record's personalityTraits to match.
	Traits  []string
	Diet    string
	Species string
	Name    string
}

// ListQueryFromValues builds a ListQuery from HTTP query parameters.
// Unrecognized keys are ignored. personalityTraits may appear multiple times;
// the scalar keys take their first value.
func ListQueryFromValues(v url.Values) ListQuery {
	return ListQuery{
		Traits:  v["personalityTraits"],
		Diet:    v.Get("diet"),
		Species: v.Get("species"),
		Name:    v.Get("name"),
	}
}
