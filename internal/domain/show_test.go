package domain

import (
	"testing"

	"github.com/Clark-Hu/netflix-shows/internal/errs"
)

func TestParseShowType(t *testing.T) {
	tests := []struct {
		in      string
		want    ShowType
		wantErr bool
	}{
		{"MOVIE", ShowTypeMovie, false},
		{"TV_SHOW", ShowTypeTVShow, false},
		{"movie", "", true},
		{"TV SHOW", "", true},
		{" MOVIE", "", true},
		{"", "", true},
		{"DOCUMENTARY", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseShowType(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseShowType(%q) expected error", tt.in)
				}
				if !errs.Is(err, errs.Validation) {
					t.Fatalf("ParseShowType(%q) error kind = %v, want Validation", tt.in, errs.KindOf(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseShowType(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("ParseShowType(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func FuzzParseShowType(f *testing.F) {
	for _, seed := range []string{"MOVIE", "TV_SHOW", "", "tv_show"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, raw string) {
		got, err := ParseShowType(raw)
		if err != nil {
			return
		}
		if got != ShowTypeMovie && got != ShowTypeTVShow {
			t.Fatalf("ParseShowType(%q) accepted %q", raw, got)
		}
	})
}
