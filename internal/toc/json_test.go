package toc

import (
	"errors"
	"strings"
	"testing"
)

func TestParseJSON_ListForm(t *testing.T) {
	in := `[
		{"title": "Search", "start": 64},
		{"title": "Introduction", "start": 1},
		{"title": "Agents", "start": 34}
	]`
	got, err := ParseJSON(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseJSON() error = %v", err)
	}
	want := Toc{
		{Title: "Introduction", Start: 1},
		{Title: "Agents", Start: 34},
		{Title: "Search", Start: 64},
	}
	assertTocEqual(t, got, want)
}

func TestParseJSON_MappingForm(t *testing.T) {
	in := `{"Introduction": 1, "Agents": 34, "Search": 64}`
	got, err := ParseJSON(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseJSON() error = %v", err)
	}
	want := Toc{
		{Title: "Introduction", Start: 1},
		{Title: "Agents", Start: 34},
		{Title: "Search", Start: 64},
	}
	assertTocEqual(t, got, want)
}

func TestParseJSON_NestedMappingFlattens(t *testing.T) {
	nested := `{
		"Part I": {"Introduction": 1, "Agents": 34},
		"Part II": {"Search": 64, "Beyond Classical Search": 120}
	}`
	flat := `[
		{"title": "Introduction", "start": 1},
		{"title": "Agents", "start": 34},
		{"title": "Search", "start": 64},
		{"title": "Beyond Classical Search", "start": 120}
	]`

	fromNested, err := ParseJSON(strings.NewReader(nested))
	if err != nil {
		t.Fatalf("ParseJSON(nested) error = %v", err)
	}
	fromFlat, err := ParseJSON(strings.NewReader(flat))
	if err != nil {
		t.Fatalf("ParseJSON(flat) error = %v", err)
	}
	assertTocEqual(t, fromNested, fromFlat)
}

func TestParseJSON_MappingOrderBreaksTies(t *testing.T) {
	// Two entries landing on the same start page keep document order.
	in := `{"First": 10, "Second": 10, "Third": 5}`
	got, err := ParseJSON(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseJSON() error = %v", err)
	}
	want := Toc{
		{Title: "Third", Start: 5},
		{Title: "First", Start: 10},
		{Title: "Second", Start: 10},
	}
	assertTocEqual(t, got, want)
}

func TestParseJSON_NumericStringStart(t *testing.T) {
	got, err := ParseJSON(strings.NewReader(`{"Introduction": "34"}`))
	if err != nil {
		t.Fatalf("ParseJSON() error = %v", err)
	}
	if got[0].Start != 34 {
		t.Errorf("Start = %d, want 34", got[0].Start)
	}
}

func TestParseJSON_Malformed(t *testing.T) {
	cases := map[string]string{
		"list_item_missing_start":  `[{"title": "Introduction"}]`,
		"list_item_missing_title":  `[{"start": 1}]`,
		"list_item_not_object":     `[42]`,
		"mapping_value_not_number": `{"Introduction": [1]}`,
		"non_integer_string":       `{"Introduction": "page one"}`,
		"fractional_start":         `[{"title": "Introduction", "start": 1.5}]`,
		"root_scalar":              `42`,
		"invalid_json":             `{"Introduction": `,
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseJSON(strings.NewReader(in))
			var malformed *MalformedError
			if !errors.As(err, &malformed) {
				t.Errorf("ParseJSON(%q) error = %v, want *MalformedError", in, err)
			}
		})
	}
}

func TestParseJSON_Empty(t *testing.T) {
	for name, in := range map[string]string{
		"empty_list":    `[]`,
		"empty_mapping": `{}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseJSON(strings.NewReader(in))
			if !errors.Is(err, ErrEmpty) {
				t.Errorf("ParseJSON(%q) error = %v, want ErrEmpty", in, err)
			}
		})
	}
}
