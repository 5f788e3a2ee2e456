package internal

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	tt "github.com/gnolang/hilbert/internal/types"
	"github.com/gnolang/hilbert/scanner"
)

// settleDelay lets a burst of writes to one file finish before it is
// checked again.
const settleDelay = 100 * time.Millisecond

// Watcher re-runs the engine on formula files as they change.
type Watcher struct {
	engine  *Engine
	watcher *fsnotify.Watcher
}

// NewWatcher starts watching dirs and all their subdirectories.
func NewWatcher(engine *Engine, dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("error creating watcher: %w", err)
	}

	for _, dir := range dirs {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return fw.Add(path)
			}
			return nil
		})
		if err != nil {
			fw.Close()
			return nil, fmt.Errorf("error adding directory to watcher: %w", err)
		}
	}

	return &Watcher{engine: engine, watcher: fw}, nil
}

// Run delivers the reports of every written formula file to onReports until
// ctx is done.
func (w *Watcher) Run(ctx context.Context, onReports func(filename string, reports []tt.Report)) error {
	defer w.watcher.Close()
	logger := w.engine.logger

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !isFormulaWrite(event) {
				continue
			}
			time.Sleep(settleDelay)
			reports, err := w.engine.Run(event.Name)
			if err != nil {
				if logger != nil {
					logger.Error("Error checking file", zap.String("file", event.Name), zap.Error(err))
				}
				continue
			}
			onReports(event.Name, reports)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			if logger != nil {
				logger.Error("Watcher error", zap.Error(err))
			}
		}
	}
}

func isFormulaWrite(event fsnotify.Event) bool {
	return event.Op&(fsnotify.Write|fsnotify.Create) != 0 && scanner.IsFormulaFile(event.Name)
}
