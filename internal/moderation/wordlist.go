package moderation

import (
	"fmt"
	"os"
	"regexp"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/mandatum-dev/mandatum-go/pkg/logger"
)

// wordlistFile is the on-disk shape of the banned-term list
type wordlistFile struct {
	Swears []string `json:"swears"`
}

// bannedTerm pairs a term with its compiled whole-word pattern
type bannedTerm struct {
	term    string
	pattern *regexp.Regexp
}

// Wordlist caches the banned-term list in memory and refreshes it from disk
type Wordlist struct {
	path        string
	terms       []bannedTerm
	mu          sync.RWMutex
	stopRefresh chan struct{}
	refreshing  bool
}

// NewWordlist creates a wordlist backed by the given file and loads it once.
// The wordlist is returned even when the initial load fails, with no terms,
// so a later Refresh can still pick the file up.
func NewWordlist(path string) (*Wordlist, error) {
	w := &Wordlist{
		path:        path,
		stopRefresh: make(chan struct{}),
	}
	if err := w.Refresh(); err != nil {
		return w, err
	}
	return w, nil
}

// Refresh reloads the banned-term list from disk
func (w *Wordlist) Refresh() error {
	data, err := os.ReadFile(w.path)
	if err != nil {
		return fmt.Errorf("reading wordlist: %w", err)
	}

	var file wordlistFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing wordlist: %w", err)
	}

	terms := make([]bannedTerm, 0, len(file.Swears))
	for _, term := range file.Swears {
		pattern, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
		if err != nil {
			logger.Warn(fmt.Sprintf("Skipping unusable banned term %q: %v", term, err), "Wordlist")
			continue
		}
		terms = append(terms, bannedTerm{term: term, pattern: pattern})
	}

	w.mu.Lock()
	w.terms = terms
	w.mu.Unlock()

	logger.Debug(fmt.Sprintf("Wordlist loaded with %d terms", len(terms)), "Wordlist")
	return nil
}

// FirstMatch scans content against the list in order and returns the first
// matching term. Scanning stops at the first hit.
func (w *Wordlist) FirstMatch(content string) (string, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	for _, t := range w.terms {
		if t.pattern.MatchString(content) {
			return t.term, true
		}
	}
	return "", false
}

// Size returns the number of loaded terms
func (w *Wordlist) Size() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.terms)
}

// StartAutoRefresh reloads the list from disk at the given interval
func (w *Wordlist) StartAutoRefresh(interval time.Duration) {
	w.mu.Lock()
	if w.refreshing {
		close(w.stopRefresh)
	}
	w.refreshing = true
	w.stopRefresh = make(chan struct{})
	stopChan := w.stopRefresh
	w.mu.Unlock()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := w.Refresh(); err != nil {
					logger.Warn("Wordlist refresh failed: "+err.Error(), "Wordlist")
				}
			case <-stopChan:
				return
			}
		}
	}()
}

// StopAutoRefresh stops the periodic reload
func (w *Wordlist) StopAutoRefresh() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.refreshing {
		close(w.stopRefresh)
		w.refreshing = false
	}
}
