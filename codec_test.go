package bounded

import (
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEncodeCanonicalShape(t *testing.T) {
	b := Between(-43, 42).Set(5)

	data, err := Encode(DefaultNumberEncoder[int], b)
	if err != nil {
		t.Fatalf("unexpected error from Encode: %v", err)
	}
	if got, want := string(data), `{"min":-43,"max":42,"value":5}`; got != want {
		t.Fatalf("expected canonical field order %s, got %s", want, got)
	}
}

func TestEncodeDoesNotRevalidate(t *testing.T) {
	// A payload decoded with value outside its bounds must encode verbatim.
	decode := Decoder(DefaultNumberDecoder[int])
	b, err := decode([]byte(`{"min": -43, "max": 42, "value": 100}`))
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}

	data, err := Encode(DefaultNumberEncoder[int], b)
	if err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}
	if got, want := string(data), `{"min":-43,"max":42,"value":100}`; got != want {
		t.Fatalf("expected out-of-range value preserved, got %s", got)
	}
}

func TestDecoderReadsFieldsInAnyOrder(t *testing.T) {
	decode := Decoder(DefaultNumberDecoder[int])

	b, err := decode([]byte(`{"value": 5, "max": 42, "min": -43}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Min() != -43 || b.Max() != 42 || b.Value() != 5 {
		t.Fatalf("unexpected decoded value: %v", b)
	}
}

func TestDecoderAcceptsOutOfRangeValue(t *testing.T) {
	// Decoding deliberately skips invariant revalidation; this is contract,
	// not a bug.
	decode := Decoder(DefaultNumberDecoder[int])

	b, err := decode([]byte(`{"min": -43, "max": 42, "value": 100}`))
	if err != nil {
		t.Fatalf("expected non-validating decode to succeed, got %v", err)
	}
	if b.Value() != 100 {
		t.Fatalf("expected decoded value 100, got %v", b.Value())
	}
	if b.Contains(b.Value()) {
		t.Fatalf("decoded value should sit outside its own bounds")
	}
}

func TestDecoderRejectsMalformedPayloads(t *testing.T) {
	decode := Decoder(DefaultNumberDecoder[int])

	cases := []struct {
		name    string
		payload string
		wantMsg string
	}{
		{"missing min", `{"max": 42, "value": 5}`, `missing field "min"`},
		{"missing max", `{"min": -43, "value": 5}`, `missing field "max"`},
		{"missing value", `{"min": -43, "max": 42}`, `missing field "value"`},
		{"wrong type", `{"min": "low", "max": 42, "value": 5}`, `field "min"`},
		{"not an object", `[1, 2, 3]`, "decode"},
		{"truncated", `{"min": -43,`, "decode"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := decode([]byte(tc.payload)); err == nil {
				t.Fatalf("expected decode error for %s", tc.payload)
			} else if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Fatalf("expected diagnostic containing %q, got %q", tc.wantMsg, err.Error())
			}
		})
	}
}

func TestJSONRoundTrip(t *testing.T) {
	original := Between(-43, 42).Set(5)

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("unexpected marshal error: %v", err)
	}
	var restored Value[int]
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}
	if restored != original {
		t.Fatalf("round trip mismatch: %v vs %v", restored, original)
	}
}

func TestJSONRoundTripFloat(t *testing.T) {
	original := Between(0.0, 1.0).Set(0.25)

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("unexpected marshal error: %v", err)
	}
	var restored Value[float64]
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}
	if restored != original {
		t.Fatalf("round trip mismatch: %v vs %v", restored, original)
	}
}

func TestValueEmbedsInStructs(t *testing.T) {
	type gauge struct {
		Name  string     `json:"name"`
		Level Value[int] `json:"level"`
	}

	g := gauge{Name: "volume", Level: Between(0, 11).Set(7)}
	data, err := json.Marshal(g)
	if err != nil {
		t.Fatalf("unexpected marshal error: %v", err)
	}
	if got, want := string(data), `{"name":"volume","level":{"min":0,"max":11,"value":7}}`; got != want {
		t.Fatalf("unexpected payload: %s", got)
	}

	var restored gauge
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}
	if restored.Level != g.Level {
		t.Fatalf("round trip mismatch: %v vs %v", restored.Level, g.Level)
	}
}

func TestCustomNumberCodec(t *testing.T) {
	// Integer N carried as a JSON string, the kind of primitive codec a host
	// framework supplies when numbers exceed float64 precision.
	enc := func(n int64) (json.RawMessage, error) {
		return json.Marshal(strconv.FormatInt(n, 10))
	}
	dec := func(raw json.RawMessage) (int64, error) {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, err
		}
		return strconv.ParseInt(s, 10, 64)
	}

	original := Between[int64](-43, 42).Set(5)
	data, err := Encode(enc, original)
	if err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}
	if got, want := string(data), `{"min":"-43","max":"42","value":"5"}`; got != want {
		t.Fatalf("unexpected payload: %s", got)
	}

	restored, err := Decoder(dec)(data)
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if restored != original {
		t.Fatalf("round trip mismatch: %v vs %v", restored, original)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	original := Between(-43, 42).Set(5)

	data, err := yaml.Marshal(original)
	if err != nil {
		t.Fatalf("unexpected marshal error: %v", err)
	}
	var restored Value[int]
	if err := yaml.Unmarshal(data, &restored); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}
	if restored != original {
		t.Fatalf("round trip mismatch: %v vs %v", restored, original)
	}
}

func TestYAMLDecodeIsNotValidating(t *testing.T) {
	var b Value[int]
	if err := yaml.Unmarshal([]byte("min: -43\nmax: 42\nvalue: 100\n"), &b); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}
	if b.Value() != 100 {
		t.Fatalf("expected decoded value 100, got %v", b.Value())
	}
}

func TestYAMLDecodeRequiresAllFields(t *testing.T) {
	var b Value[int]
	err := yaml.Unmarshal([]byte("min: -43\nmax: 42\n"), &b)
	if err == nil {
		t.Fatalf("expected error for missing value field")
	}
	if !strings.Contains(err.Error(), `missing field "value"`) {
		t.Fatalf("unexpected diagnostic: %v", err)
	}
}
