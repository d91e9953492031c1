package menagerie

import (
	"encoding/json"
	"fmt"
)

// ValidateCandidate checks a candidate record for the required fields.
// The contract is deliberately loose: name, species, and diet must be present
// and be JSON strings (an empty string passes), and personalityTraits must be
// present and be a JSON array. Nothing else about the content is checked.
func ValidateCandidate(candidate map[string]any) error {
	for _, field := range []string{"name", "species", "diet"} {
		v, ok := candidate[field]
		if !ok {
			return fmt.Errorf("%w: missing field %q", ErrInvalidInput, field)
		}
		if _, isString := v.(string); !isString {
			return fmt.Errorf("%w: field %q must be a string", ErrInvalidInput, field)
		}
	}

	v, ok := candidate["personalityTraits"]
	if !ok {
		return fmt.Errorf("%w: missing field %q", ErrInvalidInput, "personalityTraits")
	}
	if _, isArray := v.([]any); !isArray {
		return fmt.Errorf("%w: field %q must be an array", ErrInvalidInput, "personalityTraits")
	}

	return nil
}

// AnimalFromCandidate converts a validated candidate into an Animal.
// The ID is left empty; the repository assigns it on append. Fields outside
// the schema are carried through verbatim so they persist with the record.
func AnimalFromCandidate(candidate map[string]any) (Animal, error) {
	name, _ := candidate["name"].(string)
	species, _ := candidate["species"].(string)
	diet, _ := candidate["diet"].(string)

	rawTraits, _ := candidate["personalityTraits"].([]any)
	traits := make([]string, 0, len(rawTraits))
	for _, t := range rawTraits {
		s, isString := t.(string)
		if !isString {
			return Animal{}, fmt.Errorf("%w: personalityTraits entries must be strings", ErrInvalidInput)
		}
		traits = append(traits, s)
	}

	a := Animal{
		Name:              name,
		Species:           species,
		Diet:              diet,
		PersonalityTraits: traits,
	}

	for k, v := range candidate {
		if _, known := knownFields[k]; known {
			continue
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return Animal{}, fmt.Errorf("%w: field %q is not serializable", ErrInvalidInput, k)
		}
		if a.Extra == nil {
			a.Extra = make(map[string]json.RawMessage)
		}
		a.Extra[k] = raw
	}

	return a, nil
}
