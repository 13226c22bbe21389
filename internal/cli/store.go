package cli

import (
	"log/slog"

	"github.com/mesh-intelligence/stockroom/internal/paths"
	"github.com/mesh-intelligence/stockroom/internal/snapshot"
	"github.com/mesh-intelligence/stockroom/internal/sqlite"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// openStore returns the snapshot store for category according to cfg:
// the sqlite format shares one database across categories, the file
// formats keep one file per category.
func openStore[T types.Identifiable](cfg types.Config, category types.Category, logger *slog.Logger) (snapshot.Store[T], error) {
	if cfg.Format == types.FormatSQLite {
		return sqlite.NewStore[T](paths.DatabasePath(cfg.DataDir), category, cfg.KeepGenerations(), logger), nil
	}
	codec, err := snapshot.CodecFor[T](cfg.Format)
	if err != nil {
		return nil, types.InvalidValue(err.Error())
	}
	path := paths.SnapshotPath(cfg.DataDir, category, codec.Extension())
	return snapshot.NewFileStore(path, codec, logger), nil
}
