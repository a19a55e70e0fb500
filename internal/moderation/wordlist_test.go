package moderation

import (
	"os"
	"path/filepath"
	"testing"
)

func writeWordlist(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "swears.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing wordlist file: %v", err)
	}
	return path
}

func TestWordlistFirstMatch(t *testing.T) {
	path := writeWordlist(t, `{"swears": ["heck", "darn", "frick"]}`)

	words, err := NewWordlist(path)
	if err != nil {
		t.Fatalf("NewWordlist() error: %v", err)
	}

	if words.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", words.Size())
	}

	tests := []struct {
		name    string
		content string
		term    string
		matched bool
	}{
		{"plain match", "what the heck", "heck", true},
		{"case insensitive", "WHAT THE HECK", "heck", true},
		{"whole word only", "heckler in the crowd", "", false},
		{"first match wins", "darn that heck", "heck", true},
		{"list order decides ties", "frick and darn", "darn", true},
		{"clean message", "hello there", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term, matched := words.FirstMatch(tt.content)
			if matched != tt.matched {
				t.Fatalf("matched = %v, want %v", matched, tt.matched)
			}
			if matched && term != tt.term {
				t.Errorf("term = %v, want %v", term, tt.term)
			}
		})
	}
}

func TestWordlistRefresh(t *testing.T) {
	path := writeWordlist(t, `{"swears": ["heck"]}`)

	words, err := NewWordlist(path)
	if err != nil {
		t.Fatalf("NewWordlist() error: %v", err)
	}

	if err := os.WriteFile(path, []byte(`{"swears": ["heck", "darn"]}`), 0644); err != nil {
		t.Fatalf("rewriting wordlist: %v", err)
	}

	if err := words.Refresh(); err != nil {
		t.Fatalf("Refresh() error: %v", err)
	}

	if words.Size() != 2 {
		t.Errorf("Size() after refresh = %d, want 2", words.Size())
	}
}

func TestWordlistMissingFile(t *testing.T) {
	if _, err := NewWordlist(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("NewWordlist() with missing file should return an error")
	}
}
