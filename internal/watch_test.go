package internal

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	tt "github.com/gnolang/hilbert/internal/types"
)

func TestWatcher(t *testing.T) {
	t.Parallel()

	dir := createTempDir(t, "watch")
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0o755))

	engine, err := NewEngine(nil, nil)
	require.NoError(t, err)
	logger, _ := zap.NewProduction()
	engine.SetLogger(logger)

	w, err := NewWatcher(engine, dir)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	type delivery struct {
		filename string
		reports  []tt.Report
	}
	got := make(chan delivery, 16)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(filename string, reports []tt.Report) {
			got <- delivery{filename, reports}
		})
	}()

	writeFile(t, sub, "notes.txt", "not a formula\n")
	path := writeFile(t, sub, "bad.wff", "p ∧\n")

	timeout := time.After(5 * time.Second)
	for {
		select {
		case d := <-got:
			require.Equal(t, path, d.filename)
			if len(d.reports) == 0 {
				// the create event may fire before the content is written
				continue
			}
			assert.Equal(t, CheckValidate, d.reports[0].Check)
			cancel()
			assert.NoError(t, <-done)
			return
		case <-timeout:
			t.Fatal("no reports delivered")
		}
	}
}

func TestNewWatcherMissingDir(t *testing.T) {
	t.Parallel()

	engine, err := NewEngine(nil, nil)
	require.NoError(t, err)
	_, err = NewWatcher(engine, filepath.Join(createTempDir(t, "watch"), "missing"))
	assert.Error(t, err)
}
