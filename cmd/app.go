package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/strengthmap/internal/history"
	"github.com/abhisek/strengthmap/internal/store"
)

// openService opens the store and builds the history service. The returned
// close function must be called when the command is done.
func openService(cmd *cobra.Command) (*history.Service, func(), error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	logger.Debug("store opened", "path", dbPath)

	svc := history.NewService(st.KVRepo(), st.SnapshotRepo(), history.Options{
		Logger:       logger,
		SnapshotKeep: cfg.SnapshotKeep,
	})
	closeFn := func() {
		if err := st.Close(); err != nil {
			logger.Warn("close store", "error", err)
		}
	}
	return svc, closeFn, nil
}
