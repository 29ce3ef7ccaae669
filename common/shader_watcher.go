package common

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// ShaderWatcher collects the *.shader files in one directory that were written
// since the last Poll. Events arrive on a goroutine; Poll hands them to the
// render thread, which is the only thread allowed to recompile.
type ShaderWatcher struct {
	watcher *fsnotify.Watcher
	done    chan struct{}
	wg      sync.WaitGroup

	mu      sync.Mutex
	pending []string
}

func NewShaderWatcher(dir string) (*ShaderWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create shader watcher: %w", err)
	}
	if err = w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch '%s': %w", dir, err)
	}
	sw := &ShaderWatcher{watcher: w, done: make(chan struct{})}
	sw.wg.Add(1)
	go sw.watch()
	log.Printf("Watching %s for shader changes", dir)
	return sw, nil
}

func (sw *ShaderWatcher) watch() {
	defer sw.wg.Done()
	for {
		select {
		case <-sw.done:
			return
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Ext(event.Name) != ".shader" {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				sw.add(event.Name)
			}
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Shader watcher: %v", err)
		}
	}
}

// editors often write a file in several chunks; keep one entry per path
func (sw *ShaderWatcher) add(path string) {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	for _, p := range sw.pending {
		if p == path {
			return
		}
	}
	sw.pending = append(sw.pending, path)
}

// Poll returns and clears the changed paths. It never blocks.
func (sw *ShaderWatcher) Poll() []string {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	out := sw.pending
	sw.pending = nil
	return out
}

func (sw *ShaderWatcher) Close() error {
	close(sw.done)
	err := sw.watcher.Close()
	sw.wg.Wait()
	return err
}
