package server

import (
	"os"
	"path/filepath"
	"testing"

	"skilladvisor/internal/advisor"
	"skilladvisor/internal/config"

	"github.com/fsnotify/fsnotify"
)

func writeCatalog(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
}

func TestCatalogWatcherReload(t *testing.T) {
	logger := testLogger(t)
	svc := advisor.NewService(config.DefaultCatalog(), 5, logger)

	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	writeCatalog(t, path, "roles:\n  - name: Replacement\n    skills: [Go]\n")

	cw := NewCatalogWatcher(path, svc, logger, nil)
	cw.reload()

	catalog := svc.Catalog()
	if len(catalog.Roles) != 1 || catalog.Roles[0].Name != "Replacement" {
		t.Errorf("catalog after reload = %v, want the replacement", catalog.Roles)
	}
}

func TestCatalogWatcherReloadKeepsPreviousOnError(t *testing.T) {
	logger := testLogger(t)
	svc := advisor.NewService(config.DefaultCatalog(), 5, logger)

	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	writeCatalog(t, path, "roles: []\n") // invalid: empty catalog

	cw := NewCatalogWatcher(path, svc, logger, nil)
	cw.reload()

	catalog := svc.Catalog()
	if len(catalog.Roles) != 5 {
		t.Errorf("invalid reload should keep the previous catalog, got %d roles", len(catalog.Roles))
	}
}

func TestCatalogWatcherStartStop(t *testing.T) {
	logger := testLogger(t)
	svc := advisor.NewService(config.DefaultCatalog(), 5, logger)

	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	writeCatalog(t, path, "roles:\n  - name: A\n    skills: [X]\n")

	cw := NewCatalogWatcher(path, svc, logger, nil)
	if err := cw.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !cw.IsRunning() {
		t.Error("watcher should be running after Start")
	}

	if err := cw.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if cw.IsRunning() {
		t.Error("watcher should not be running after Stop")
	}

	// Stop is idempotent.
	if err := cw.Stop(); err != nil {
		t.Fatalf("second Stop: %v", err)
	}
}

func TestIsCatalogEvent(t *testing.T) {
	logger := testLogger(t)
	svc := advisor.NewService(config.DefaultCatalog(), 5, logger)
	cw := NewCatalogWatcher("/etc/skilladvisor/catalog.yaml", svc, logger, nil)

	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{name: "the catalog file", path: "/etc/skilladvisor/catalog.yaml", expected: true},
		{name: "sibling file", path: "/etc/skilladvisor/config.yaml", expected: false},
		{name: "unclean path still matches", path: "/etc/skilladvisor/./catalog.yaml", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := fsnotify.Event{Name: tt.path, Op: fsnotify.Write}
			if got := cw.isCatalogEvent(event); got != tt.expected {
				t.Errorf("isCatalogEvent(%q) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}
