package server

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"skilladvisor/internal/advisor"
	"skilladvisor/internal/config"
	"skilladvisor/internal/errors"
	"skilladvisor/internal/observability"

	"github.com/fsnotify/fsnotify"
)

// catalogReloadDebounce coalesces the burst of filesystem events editors
// emit for a single save.
const catalogReloadDebounce = 500 * time.Millisecond

// CatalogWatcher hot-reloads the role catalog file in serve mode. A bad
// catalog never replaces a good one: parse or validation failures keep the
// previous catalog and log the error.
type CatalogWatcher struct {
	path    string
	advisor *advisor.Service
	logger  *errors.Logger
	metrics *observability.Metrics

	watcher *fsnotify.Watcher
	done    chan struct{}
	wg      sync.WaitGroup

	mu      sync.Mutex
	running bool
}

// NewCatalogWatcher creates a watcher for the given catalog file.
func NewCatalogWatcher(path string, svc *advisor.Service, logger *errors.Logger, metrics *observability.Metrics) *CatalogWatcher {
	return &CatalogWatcher{
		path:    path,
		advisor: svc,
		logger:  logger,
		metrics: metrics,
		done:    make(chan struct{}),
	}
}

// Start begins watching the catalog file for changes.
func (cw *CatalogWatcher) Start() error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	if cw.running {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.NewInternalError("WATCHER_CREATE_FAILED",
			"Failed to create catalog file watcher", err)
	}

	// Watch the directory, not the file: editors and config tooling
	// replace files via rename, which drops a direct file watch.
	dir := filepath.Dir(cw.path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return errors.NewIOError("WATCHER_ADD_FAILED",
			"Failed to watch catalog directory: "+dir, err)
	}

	cw.watcher = watcher
	cw.running = true

	cw.wg.Add(1)
	go cw.watchLoop()

	cw.logger.Info("Catalog watcher started", "file", cw.path)
	return nil
}

// watchLoop processes filesystem events with debouncing
func (cw *CatalogWatcher) watchLoop() {
	defer cw.wg.Done()

	var debounce *time.Timer
	var debounceC <-chan time.Time

	for {
		select {
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if !cw.isCatalogEvent(event) {
				continue
			}
			cw.logger.Debug("Catalog file event", "event", event.Op.String(), "file", event.Name)
			if debounce == nil {
				debounce = time.NewTimer(catalogReloadDebounce)
				debounceC = debounce.C
			} else {
				if !debounce.Stop() {
					select {
					case <-debounce.C:
					default:
					}
				}
				debounce.Reset(catalogReloadDebounce)
			}

		case <-debounceC:
			debounce = nil
			debounceC = nil
			cw.reload()

		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			cw.logger.LogError(err, "Catalog watcher error")

		case <-cw.done:
			if debounce != nil {
				debounce.Stop()
			}
			return
		}
	}
}

// isCatalogEvent reports whether the event concerns the catalog file
func (cw *CatalogWatcher) isCatalogEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != filepath.Clean(cw.path) {
		return false
	}
	return event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Rename)
}

// reload loads and validates the catalog file and swaps it into the advisor
func (cw *CatalogWatcher) reload() {
	catalog, err := config.LoadCatalogFile(cw.path)
	if err != nil {
		cw.logger.LogError(err, "Catalog reload failed, keeping previous catalog", "file", cw.path)
		if cw.metrics != nil {
			cw.metrics.RecordCatalogReload(context.Background(), false)
		}
		return
	}

	cw.advisor.SetCatalog(catalog)
	cw.logger.Info("Catalog reloaded",
		"file", cw.path,
		"roles", len(catalog.Roles),
		"skills", len(catalog.Vocabulary()))
	if cw.metrics != nil {
		cw.metrics.RecordCatalogReload(context.Background(), true)
	}
}

// IsRunning reports whether the watcher is active
func (cw *CatalogWatcher) IsRunning() bool {
	cw.mu.Lock()
	defer cw.mu.Unlock()
	return cw.running
}

// Stop stops the watcher and waits for the watch loop to exit.
func (cw *CatalogWatcher) Stop() error {
	cw.mu.Lock()
	if !cw.running {
		cw.mu.Unlock()
		return nil
	}
	cw.running = false
	cw.mu.Unlock()

	close(cw.done)
	err := cw.watcher.Close()
	cw.wg.Wait()

	cw.logger.Info("Catalog watcher stopped", "file", cw.path)
	return err
}
