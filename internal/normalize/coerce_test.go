package normalize

import (
	"encoding/json"
	"testing"
)

func TestIntValue(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in     any
		want   int
		wantOK bool
	}{
		"int":              {in: 7, want: 7, wantOK: true},
		"int64":            {in: int64(7), want: 7, wantOK: true},
		"integral float":   {in: float64(7), want: 7, wantOK: true},
		"fractional float": {in: 7.5, wantOK: false},
		"json number":      {in: json.Number("7"), want: 7, wantOK: true},
		"numeric string":   {in: "12", want: 12, wantOK: true},
		"plus prefix":      {in: "+3", want: 3, wantOK: true},
		"negative string":  {in: "-4", want: -4, wantOK: true},
		"padded string":    {in: " 5 ", want: 5, wantOK: true},
		"word":             {in: "five", wantOK: false},
		"nil":              {in: nil, wantOK: false},
		"bool":             {in: true, wantOK: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := intValue(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("intValue(%v) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("intValue(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestSlugify(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"Power Attack":    "power-attack",
		"  spaced  out  ": "spaced-out",
		"Alchemist's Fire": "alchemist-s-fire",
		"already-a-slug":  "already-a-slug",
		"!!!":             "",
		"":                "",
		"Héros":           "h-ros",
	}

	for in, want := range tests {
		if got := slugify(in); got != want {
			t.Errorf("slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStringSet(t *testing.T) {
	t.Parallel()
	got := stringSet([]any{"Attack ", "attack", " ", 7, "Cold Iron"})
	want := []string{"attack", "cold-iron"}
	if len(got) != len(want) {
		t.Fatalf("stringSet = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("stringSet[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if got := stringSet("not a list"); len(got) != 0 || got == nil {
		t.Errorf("stringSet on non-list = %v, want empty non-nil slice", got)
	}
}

func TestUnwrap(t *testing.T) {
	t.Parallel()
	if got := unwrap(map[string]any{"value": 5}); got != 5 {
		t.Errorf("unwrap(wrapper) = %v, want 5", got)
	}
	if got := unwrap("plain"); got != "plain" {
		t.Errorf("unwrap(plain) = %v, want plain", got)
	}
	m := map[string]any{"other": 1}
	if got := unwrap(m); got == nil {
		t.Error("unwrap(non-wrapper map) should pass the map through")
	}
}
