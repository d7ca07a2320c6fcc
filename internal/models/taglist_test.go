package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestTagListUnmarshalJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want TagList
	}{
		{"array", `["weekly","essentials"]`, TagList{"weekly", "essentials"}},
		{"empty_array", `[]`, TagList{}},
		{"null", `null`, TagList{}},
		{"comma_string", `"a, b ,c"`, TagList{"a", "b", "c"}},
		{"single_tag_string", `"weekly"`, TagList{"weekly"}},
		{"empty_segments_kept", `"a,,b"`, TagList{"a", "", "b"}},
		{"number_decays_to_empty", `42`, TagList{}},
		{"object_decays_to_empty", `{"tag":"weekly"}`, TagList{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got TagList
			if err := json.Unmarshal([]byte(tc.in), &got); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("unmarshal %s = %#v, want %#v", tc.in, got, tc.want)
			}
		})
	}
}

func TestTagListMarshalJSON(t *testing.T) {
	t.Run("nil_marshals_as_empty_array", func(t *testing.T) {
		var tags TagList
		b, err := json.Marshal(tags)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(b) != "[]" {
			t.Errorf("expected [], got %s", b)
		}
	})

	t.Run("order_and_duplicates_preserved", func(t *testing.T) {
		b, err := json.Marshal(TagList{"b", "a", "b"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(b) != `["b","a","b"]` {
			t.Errorf("expected order preserved, got %s", b)
		}
	})
}

func TestTagListScan(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want TagList
	}{
		{"json_array", `["weekly","monthly"]`, TagList{"weekly", "monthly"}},
		{"json_array_bytes", []byte(`["weekly"]`), TagList{"weekly"}},
		{"legacy_comma_text", "a, b ,c", TagList{"a", "b", "c"}},
		{"nil_column", nil, TagList{}},
		{"empty_string", "", TagList{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got TagList
			if err := got.Scan(tc.in); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("scan %v = %#v, want %#v", tc.in, got, tc.want)
			}
		})
	}

	t.Run("unsupported_type_errors", func(t *testing.T) {
		var got TagList
		if err := got.Scan(42); err == nil {
			t.Fatal("expected error for int column")
		}
	})
}

func TestTagListValue(t *testing.T) {
	v, err := TagList{"weekly"}.Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != `["weekly"]` {
		t.Errorf("expected JSON array, got %v", v)
	}

	var nilTags TagList
	v, err = nilTags.Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "[]" {
		t.Errorf("expected [] for nil list, got %v", v)
	}
}
