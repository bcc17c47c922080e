package commands

import (
	"path/filepath"

	"github.com/outlay-dev/outlay/internal/config"
	"github.com/outlay-dev/outlay/internal/ledger"
)

// openProject loads outlay.yaml from dir and opens the ledger it points at.
func openProject(dir string) (*config.Config, *ledger.Store, error) {
	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		return nil, nil, err
	}
	return cfg, ledger.NewStore(filepath.Join(dir, storeFile(cfg))), nil
}

func storeFile(cfg *config.Config) string {
	if cfg.Store.File == "" {
		return ledger.DefaultFile
	}
	return cfg.Store.File
}
