package generator

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/docconf/internal/config"
	"git.home.luguber.info/inful/docconf/internal/logfields"
	"git.home.luguber.info/inful/docconf/internal/observability"
)

// Watcher regenerates the host configuration whenever the config file
// changes. Writes that leave the config snapshot hash unchanged are skipped.
type Watcher struct {
	configPath   string
	outputDir    string
	lastSnapshot string
	debounce     time.Duration
}

// NewWatcher creates a watcher over configPath writing into outputDir.
func NewWatcher(configPath, outputDir string) (*Watcher, error) {
	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}
	return &Watcher{
		configPath: absPath,
		outputDir:  outputDir,
		debounce:   500 * time.Millisecond,
	}, nil
}

// Run generates once, then blocks regenerating on config changes until the
// context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	ctx = observability.WithStage(ctx, "watch")

	if err := w.regenerate(ctx); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory containing the config file (more reliable than
	// watching the file directly; editors replace files on save).
	if err := watcher.Add(filepath.Dir(w.configPath)); err != nil {
		return fmt.Errorf("failed to watch config directory: %w", err)
	}
	slog.Info("Watching configuration", logfields.Path(w.configPath))

	var timer *time.Timer
	pending := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != w.configPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			// debounce rapid successive writes
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			observability.WarnContext(ctx, "Watcher error", logfields.Error(err))
		case <-pending:
			if err := w.regenerate(ctx); err != nil {
				observability.ErrorContext(ctx, "Regeneration failed", logfields.Error(err))
			}
		}
	}
}

func (w *Watcher) regenerate(ctx context.Context) error {
	cfg, err := config.Load(w.configPath)
	if err != nil {
		return err
	}
	snapshot := cfg.Snapshot()
	if snapshot == w.lastSnapshot {
		observability.DebugContext(ctx, "Configuration unchanged, skipping regeneration")
		return nil
	}
	if err := NewGenerator(cfg, w.outputDir).Generate(ctx); err != nil {
		return err
	}
	w.lastSnapshot = snapshot
	return nil
}
