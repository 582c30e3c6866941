//go:build prod

package database

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

const appDirName = "storyteller"

// DefaultDBPath puts the database under the user's config directory. If that
// directory can't be used, the file lands in the working directory.
func DefaultDBPath(log *zap.Logger) string {
	if log == nil {
		log = zap.NewNop()
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Warn("no user config dir, using working directory for stories db", zap.Error(err))
		return dbFileName
	}

	dir := filepath.Join(configDir, appDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Warn("cannot create app config dir, using working directory for stories db",
			zap.String("dir", dir), zap.Error(err))
		return dbFileName
	}
	return filepath.Join(dir, dbFileName)
}

func IsDevelopment() bool {
	return false
}
