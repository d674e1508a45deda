package uniforms

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Preset is a YAML-serializable set of uniform values.
//
//	uniforms:
//	  uColorOffset: 0.36
//	  uBigWavesFrequency: [4, 1.5]
//	  uDepthColor: "#6D59CF"
type Preset struct {
	Uniforms map[string]PresetValue `yaml:"uniforms"`
}

// PresetValue encodes a Value as a number, a [x, y] pair, or a hex string.
type PresetValue struct {
	Value
}

// MarshalYAML implements yaml.Marshaler.
func (p PresetValue) MarshalYAML() (interface{}, error) {
	switch p.Kind {
	case KindScalar:
		return p.Scalar, nil
	case KindVec2:
		node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		node.Content = []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: formatFloat(p.Vec2.X)},
			{Kind: yaml.ScalarNode, Value: formatFloat(p.Vec2.Y)},
		}
		return node, nil
	case KindColor:
		return p.Color.Hex(), nil
	default:
		return nil, fmt.Errorf("unknown uniform kind %v", p.Kind)
	}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *PresetValue) UnmarshalYAML(node *yaml.Node) error {
	if node.ShortTag() == "!!null" {
		return fmt.Errorf("line %d: missing value", node.Line)
	}
	switch node.Kind {
	case yaml.SequenceNode:
		var xy []float32
		if err := node.Decode(&xy); err != nil {
			return err
		}
		if len(xy) != 2 {
			return fmt.Errorf("line %d: vec2 needs 2 components, got %d", node.Line, len(xy))
		}
		p.Value = Vec2Value(xy[0], xy[1])
		return nil
	case yaml.ScalarNode:
		if node.ShortTag() == "!!str" {
			c, err := ParseHex(node.Value)
			if err != nil {
				return fmt.Errorf("line %d: %w", node.Line, err)
			}
			p.Value = ColorValue(c)
			return nil
		}
		var f float32
		if err := node.Decode(&f); err != nil {
			return err
		}
		p.Value = ScalarValue(f)
		return nil
	default:
		return fmt.Errorf("line %d: unsupported preset value", node.Line)
	}
}

// UnmarshalYAML implements yaml.Unmarshaler. Entries are decoded as raw nodes
// first since the decoder turns an empty entry into a zero value without
// consulting PresetValue.
func (p *Preset) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Uniforms map[string]yaml.Node `yaml:"uniforms"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	p.Uniforms = make(map[string]PresetValue, len(raw.Uniforms))
	for name, n := range raw.Uniforms {
		var v PresetValue
		if err := v.UnmarshalYAML(&n); err != nil {
			return fmt.Errorf("uniform %q: %w", name, err)
		}
		p.Uniforms[name] = v
	}
	return nil
}

// Preset captures the current values of all uniforms except those named in skip.
func (s *Store) Preset(skip ...string) Preset {
	skipped := make(map[string]bool, len(skip))
	for _, name := range skip {
		skipped[name] = true
	}
	p := Preset{Uniforms: make(map[string]PresetValue, len(s.order))}
	s.Each(func(name string, v Value) {
		if !skipped[name] {
			p.Uniforms[name] = PresetValue{v}
		}
	})
	return p
}

// ApplyPreset writes preset values into the store. Entries with unknown names
// or mismatched kinds are skipped.
func (s *Store) ApplyPreset(p Preset) (applied, skipped int) {
	for name, v := range p.Uniforms {
		if s.Set(name, v.Value) {
			applied++
		} else {
			skipped++
		}
	}
	return applied, skipped
}

// YAML encodes the preset.
func (p Preset) YAML() ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshaling preset: %w", err)
	}
	return data, nil
}

// Save writes the preset to a YAML file.
func (p Preset) Save(path string) error {
	data, err := p.YAML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing preset: %w", err)
	}
	return nil
}

// LoadPreset reads a preset from a YAML file.
func LoadPreset(path string) (Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, fmt.Errorf("reading preset: %w", err)
	}
	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Preset{}, fmt.Errorf("parsing preset: %w", err)
	}
	return p, nil
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
