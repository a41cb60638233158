package bounded

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// NumberEncoder renders a primitive number for inclusion in the wire object.
// The codec is parameterized over it because the library is generic over the
// numeric representation: the host serializer must be told whether N is an
// integer or a float.
type NumberEncoder[N Number] func(N) (json.RawMessage, error)

// NumberDecoder parses a primitive number out of the wire object.
type NumberDecoder[N Number] func(json.RawMessage) (N, error)

// DefaultNumberEncoder encodes N with encoding/json.
func DefaultNumberEncoder[N Number](n N) (json.RawMessage, error) {
	return json.Marshal(n)
}

// DefaultNumberDecoder decodes N with encoding/json.
func DefaultNumberDecoder[N Number](raw json.RawMessage) (N, error) {
	var n N
	if err := json.Unmarshal(raw, &n); err != nil {
		return n, err
	}
	return n, nil
}

// wireValue fixes the canonical field order min, max, value.
type wireValue struct {
	Min   json.RawMessage `json:"min"`
	Max   json.RawMessage `json:"max"`
	Value json.RawMessage `json:"value"`
}

// Encode renders v as the canonical flat JSON object
//
//	{ "min": <number>, "max": <number>, "value": <number> }
//
// using enc for the three numbers. Fields are taken verbatim from the bounds
// and current value; no re-validation or re-clamping happens on encode.
func Encode[N Number](enc NumberEncoder[N], v Value[N]) ([]byte, error) {
	var wire wireValue
	var err error
	if wire.Min, err = enc(v.lower); err != nil {
		return nil, fmt.Errorf("bounded: encode min: %w", err)
	}
	if wire.Max, err = enc(v.upper); err != nil {
		return nil, fmt.Errorf("bounded: encode max: %w", err)
	}
	if wire.Value, err = enc(v.current); err != nil {
		return nil, fmt.Errorf("bounded: encode value: %w", err)
	}
	return json.Marshal(wire)
}

// Decoder returns a decode function for the canonical wire object. Fields are
// looked up by name, in any source order; all three are required.
//
// Decoding deliberately does NOT re-validate the min <= value <= max
// invariant: a payload carrying a value outside its own bounds decodes
// as-is. Callers that need the invariant restored must check Contains and
// Set themselves. This asymmetry with Between is documented, tested
// behavior, not an oversight.
func Decoder[N Number](dec NumberDecoder[N]) func(data []byte) (Value[N], error) {
	return func(data []byte) (Value[N], error) {
		var wire wireValue
		if err := json.Unmarshal(data, &wire); err != nil {
			return Value[N]{}, fmt.Errorf("bounded: decode: %w", err)
		}
		decodeField := func(name string, raw json.RawMessage) (N, error) {
			var n N
			if raw == nil {
				return n, fmt.Errorf("bounded: decode: missing field %q", name)
			}
			n, err := dec(raw)
			if err != nil {
				return n, fmt.Errorf("bounded: decode field %q: %w", name, err)
			}
			return n, nil
		}
		var v Value[N]
		var err error
		if v.lower, err = decodeField("min", wire.Min); err != nil {
			return Value[N]{}, err
		}
		if v.upper, err = decodeField("max", wire.Max); err != nil {
			return Value[N]{}, err
		}
		if v.current, err = decodeField("value", wire.Value); err != nil {
			return Value[N]{}, err
		}
		return v, nil
	}
}

// MarshalJSON implements json.Marshaler using the default number codec.
func (v Value[N]) MarshalJSON() ([]byte, error) {
	return Encode(DefaultNumberEncoder[N], v)
}

// UnmarshalJSON implements json.Unmarshaler using the default number codec.
// It shares Decoder's no-revalidation contract.
func (v *Value[N]) UnmarshalJSON(data []byte) error {
	decoded, err := Decoder(DefaultNumberDecoder[N])(data)
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}

// yamlValue carries the YAML rendering of a bounded value.
type yamlValue[N Number] struct {
	Min   *N `yaml:"min"`
	Max   *N `yaml:"max"`
	Value *N `yaml:"value"`
}

// MarshalYAML implements yaml.Marshaler with the same three-field mapping as
// the JSON shape.
func (v Value[N]) MarshalYAML() (any, error) {
	lower, upper, current := v.lower, v.upper, v.current
	return yamlValue[N]{Min: &lower, Max: &upper, Value: &current}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Like the JSON decoder it
// requires all three fields and performs no invariant revalidation.
func (v *Value[N]) UnmarshalYAML(node *yaml.Node) error {
	var wire yamlValue[N]
	if err := node.Decode(&wire); err != nil {
		return fmt.Errorf("bounded: decode yaml: %w", err)
	}
	for name, field := range map[string]*N{"min": wire.Min, "max": wire.Max, "value": wire.Value} {
		if field == nil {
			return fmt.Errorf("bounded: decode yaml: missing field %q", name)
		}
	}
	v.lower, v.upper, v.current = *wire.Min, *wire.Max, *wire.Value
	return nil
}
