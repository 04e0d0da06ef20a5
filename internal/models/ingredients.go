// internal/models/ingredients.go
package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

type Ingredient struct {
	Name  string  `json:"name" yaml:"name"`
	Grams float64 `json:"amount" yaml:"amount"`
}

// Ingredients is an ordered ingredient name -> grams mapping. It is encoded as
// a JSON/YAML object and keeps the key order of the source document; the
// list form [{"name": ..., "amount": ...}] is accepted on input as well.
type Ingredients []Ingredient

func (in Ingredients) Grams(name string) (float64, bool) {
	for _, ing := range in {
		if ing.Name == name {
			return ing.Grams, true
		}
	}
	return 0, false
}

func (in Ingredients) Names() []string {
	names := make([]string, 0, len(in))
	for _, ing := range in {
		names = append(names, ing.Name)
	}
	return names
}

func (in Ingredients) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, ing := range in {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(ing.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(ing.Grams)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (in *Ingredients) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to read ingredients: %w", err)
	}

	switch tok {
	case nil:
		*in = nil
		return nil
	case json.Delim('['):
		var list []Ingredient
		if err := json.Unmarshal(data, &list); err != nil {
			return fmt.Errorf("failed to decode ingredient list: %w", err)
		}
		*in = list
		return nil
	case json.Delim('{'):
	default:
		return fmt.Errorf("ingredients must be an object or a list, got %v", tok)
	}

	out := Ingredients{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to read ingredient name: %w", err)
		}
		name, _ := keyTok.(string)

		var grams float64
		if err := dec.Decode(&grams); err != nil {
			return fmt.Errorf("failed to decode amount for %q: %w", name, err)
		}
		out = append(out, Ingredient{Name: name, Grams: grams})
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("failed to read ingredients: %w", err)
	}

	*in = out
	return nil
}

func (in *Ingredients) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		out := make(Ingredients, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			name := node.Content[i].Value
			var grams float64
			if err := node.Content[i+1].Decode(&grams); err != nil {
				return fmt.Errorf("failed to decode amount for %q: %w", name, err)
			}
			out = append(out, Ingredient{Name: name, Grams: grams})
		}
		*in = out
	case yaml.SequenceNode:
		var list []Ingredient
		if err := node.Decode(&list); err != nil {
			return fmt.Errorf("failed to decode ingredient list: %w", err)
		}
		*in = list
	case yaml.ScalarNode:
		if node.Tag != "!!null" {
			return fmt.Errorf("line %d: ingredients must be a mapping or a list", node.Line)
		}
		*in = nil
	default:
		return fmt.Errorf("line %d: ingredients must be a mapping or a list", node.Line)
	}
	return nil
}
