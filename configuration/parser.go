package configuration

import (
	"encoding/json"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

// mapToLowerKeys lowercases every key of a nested settings map in place, so
// lookups stay case-insensitive no matter which format produced the map.
func mapToLowerKeys(m map[string]interface{}) {
	for key, val := range m {
		switch nested := val.(type) {
		case map[string]interface{}:
			mapToLowerKeys(nested)
		case map[interface{}]interface{}:
			// yaml.v2 decodes nested maps with interface{} keys
			converted := cast.ToStringMap(nested)
			mapToLowerKeys(converted)
			val = converted
		}

		lower := strings.ToLower(key)
		if key != lower {
			delete(m, key)
		}

		m[lower] = val
	}
}

// JSONLowerParser reads and writes JSON config maps, lowercasing every key
// on the way in.
type JSONLowerParser struct {
	prefix string
	indent string
}

// Unmarshal parses the given JSON bytes.
func (p *JSONLowerParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}

	mapToLowerKeys(out)

	return out, nil
}

// Marshal renders the given config map as indented JSON.
func (p *JSONLowerParser) Marshal(o map[string]interface{}) ([]byte, error) {
	return json.MarshalIndent(o, p.prefix, p.indent)
}

// YAMLLowerParser reads and writes YAML config maps, lowercasing every key
// on the way in.
type YAMLLowerParser struct{}

// Unmarshal parses the given YAML bytes.
func (p *YAMLLowerParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := yaml.Unmarshal(b, &out); err != nil {
		return nil, err
	}

	mapToLowerKeys(out)

	return out, nil
}

// Marshal renders the given config map as YAML.
func (p *YAMLLowerParser) Marshal(o map[string]interface{}) ([]byte, error) {
	return yaml.Marshal(o)
}

// TOMLLowerParser reads and writes TOML config maps, lowercasing every key
// on the way in.
type TOMLLowerParser struct{}

// Unmarshal parses the given TOML bytes.
func (p *TOMLLowerParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := toml.Unmarshal(b, &out); err != nil {
		return nil, err
	}

	mapToLowerKeys(out)

	return out, nil
}

// Marshal renders the given config map as TOML.
func (p *TOMLLowerParser) Marshal(o map[string]interface{}) ([]byte, error) {
	return toml.Marshal(o)
}
