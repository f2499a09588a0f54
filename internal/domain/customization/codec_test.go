package customization

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestEncodeIsDeterministic(t *testing.T) {
	rec := Record{
		ThemeColors: map[string]Palette{
			"light": {{Key: "--b", Value: "2"}, {Key: "--a", Value: "1"}},
			"dark":  {{Key: "--a", Value: "3"}},
		},
		Fields: map[string]any{"z": 1, "font": "mono", "spacing": map[string]any{"gap": "4px"}},
	}

	first, err := Encode(rec)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	second, err := Encode(rec.Clone())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if first != second {
		t.Fatalf("encodings differ:\n%s\n%s", first, second)
	}

	want := `{"font":"mono","spacing":{"gap":"4px"},"theme_colors":{"dark":[{"key":"--a","value":"3"}],"light":[{"key":"--b","value":"2"},{"key":"--a","value":"1"}]},"z":1}`
	if first != want {
		t.Fatalf("encoded = %s\nwant      %s", first, want)
	}
}

func TestDecodePreservesOpaqueKeys(t *testing.T) {
	rec, err := Decode(`{"images":{"logo":"a.png"},"theme_colors":{"dark":[{"key":"--a","value":"#fff"}]}}`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if value, ok := rec.ThemeColors["dark"].Lookup("--a"); !ok || value != "#fff" {
		t.Fatalf("theme colours not decoded: %#v", rec.ThemeColors)
	}
	images, ok := rec.Get("images")
	if !ok {
		t.Fatal("images key dropped")
	}
	if images.(map[string]any)["logo"] != "a.png" {
		t.Fatalf("images = %#v", images)
	}

	encoded, err := Encode(rec)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if encoded != `{"images":{"logo":"a.png"},"theme_colors":{"dark":[{"key":"--a","value":"#fff"}]}}` {
		t.Fatalf("round trip changed payload: %s", encoded)
	}
}

func TestDecodeBlankAndInvalid(t *testing.T) {
	rec, err := Decode("   ")
	if err != nil || !rec.IsEmpty() {
		t.Fatalf("blank payload: rec=%#v err=%v", rec, err)
	}

	_, err = Decode("{not json")
	if !errors.Is(err, ErrEncoding) {
		t.Fatalf("expected encoding error, got %v", err)
	}
}

func TestDecodeEncodeKeepsLargeNumbersExact(t *testing.T) {
	payload := `{"big":12345678901234567891,"spacing":{"gap":4,"ratio":0.1000000000000000055511151231257827},"theme_colors":{}}`

	rec, err := Decode(payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	merged := MergePalette(rec, "dark", Palette{{Key: "--a", Value: "#000"}})

	out, err := Encode(merged)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := `{"big":12345678901234567891,"spacing":{"gap":4,"ratio":0.1000000000000000055511151231257827},"theme_colors":{"dark":[{"key":"--a","value":"#000"}]}}`
	if out != want {
		t.Fatalf("encoded = %s\nwant      %s", out, want)
	}
}

func TestParseValue(t *testing.T) {
	cases := []struct {
		raw  string
		want any
	}{
		{raw: "3", want: json.Number("3")},
		{raw: "12345678901234567891", want: json.Number("12345678901234567891")},
		{raw: "true", want: true},
		{raw: `{"gap":4}`, want: map[string]any{"gap": json.Number("4")}},
		{raw: "mono", want: "mono"},
		{raw: "4 px", want: "4 px"},
		{raw: "", want: ""},
	}
	for _, tc := range cases {
		if got := ParseValue(tc.raw); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("ParseValue(%q) = %#v, want %#v", tc.raw, got, tc.want)
		}
	}
}
