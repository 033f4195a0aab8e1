package associate

import "testing"

func TestMatches(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		message string
		want    bool
	}{
		{"exact key", "PROJ-12", "fixes PROJ-12 today", true},
		{"key at start", "PROJ-12", "PROJ-12: fix login", true},
		{"key at end", "PROJ-12", "fix login for PROJ-12", true},
		{"case insensitive", "PROJ-12", "fixes proj-12 today", true},
		{"lowercase key", "proj-12", "Fixes PROJ-12 today", true},
		{"longer key not matched by prefix", "PROJ-1", "fixes PROJ-12", false},
		{"digit immediately after", "PROJ-123", "fixes PROJ-1234", false},
		{"word char before", "PROJ-12", "xPROJ-12", false},
		{"underscore before", "PROJ-12", "fix_PROJ-12", false},
		{"digit before", "PROJ-12", "1PROJ-12", false},
		{"letter after still matches", "PROJ-12", "merge PROJ-12a", true},
		{"punctuation after", "PROJ-12", "fix (PROJ-12)", true},
		{"colon after", "PROJ-12", "PROJ-12: done", true},
		{"second occurrence valid", "PROJ-12", "xPROJ-12 then PROJ-12 fix", true},
		{"all occurrences invalid", "PROJ-12", "xPROJ-12 and PROJ-123", false},
		{"not present", "PROJ-12", "unrelated change", false},
		{"empty message", "PROJ-12", "", false},
		{"empty key", "", "anything", false},
		{"multiline message", "PROJ-12", "fix login\n\nrefs PROJ-12", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(tt.key, tt.message); got != tt.want {
				t.Errorf("Matches(%q, %q) = %v, want %v", tt.key, tt.message, got, tt.want)
			}
		})
	}
}
