package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/iw2rmb/furl/buffer"
)

// fileChangedMsg carries the new content of the watched file.
type fileChangedMsg struct{ text string }

type watchErrMsg struct{ err error }

// fileWatcher reports writes to one file. The parent directory is watched so
// that editors replacing the file through a rename are noticed too.
type fileWatcher struct {
	path    string
	watcher *fsnotify.Watcher
}

func watchFile(path string) (*fileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	return &fileWatcher{path: filepath.Clean(path), watcher: w}, nil
}

// next waits for the next change of the file.
func (fw *fileWatcher) next() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-fw.watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(ev.Name) != fw.path || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				b, err := os.ReadFile(fw.path)
				if err != nil {
					return watchErrMsg{err: err}
				}
				return fileChangedMsg{text: string(b)}
			case err, ok := <-fw.watcher.Errors:
				if !ok {
					return nil
				}
				return watchErrMsg{err: err}
			}
		}
	}
}

func (fw *fileWatcher) Close() error { return fw.watcher.Close() }

// reloadEdit returns the single edit turning before into after: the text
// between their common prefix and common suffix. Offsets are in runes.
func reloadEdit(before, after string) (buffer.Edit, bool) {
	if before == after {
		return buffer.Edit{}, false
	}
	a, b := []rune(before), []rune(after)
	prefix := 0
	for prefix < len(a) && prefix < len(b) && a[prefix] == b[prefix] {
		prefix++
	}
	suffix := 0
	for suffix < len(a)-prefix && suffix < len(b)-prefix && a[len(a)-1-suffix] == b[len(b)-1-suffix] {
		suffix++
	}
	return buffer.Edit{
		From:   prefix,
		To:     len(a) - suffix,
		Insert: string(b[prefix : len(b)-suffix]),
	}, true
}
