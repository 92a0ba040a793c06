package monitor

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ringWindow keeps the last capacity strings pushed into it.
type ringWindow struct {
	buf  []string
	next int
	full bool
}

func newRingWindow(capacity int) *ringWindow {
	return &ringWindow{buf: make([]string, capacity)}
}

func (w *ringWindow) push(s string) {
	w.buf[w.next] = s
	w.next++
	if w.next == len(w.buf) {
		w.next = 0
		w.full = true
	}
}

// newestFirst returns the retained strings, most recently pushed first.
func (w *ringWindow) newestFirst() []string {
	size := w.next
	if w.full {
		size = len(w.buf)
	}
	out := make([]string, 0, size)
	for i := 1; i <= size; i++ {
		idx := (w.next - i + len(w.buf)) % len(w.buf)
		out = append(out, w.buf[idx])
	}
	return out
}

// ReadWindow reads the names log (oldest first on disk) and returns up to
// limit of its most recent lines, newest first. limit == 0 returns every
// line. Blank lines are skipped.
func ReadWindow(path string, limit int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrLogNotFound, path)
		}
		return nil, fmt.Errorf("open names log: %w", err)
	}
	defer f.Close()

	if limit > 0 {
		window := newRingWindow(limit)
		if err := scanLines(f, window.push); err != nil {
			return nil, err
		}
		return window.newestFirst(), nil
	}

	var all []string
	if err := scanLines(f, func(s string) { all = append(all, s) }); err != nil {
		return nil, err
	}
	// Reverse in place: newest first.
	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}
	return all, nil
}

func scanLines(f *os.File, push func(string)) error {
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		push(line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read names log: %w", err)
	}
	return nil
}
