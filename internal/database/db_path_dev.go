//go:build !prod

package database

import "go.uber.org/zap"

// DefaultDBPath keeps the dev database next to the binary's working directory.
func DefaultDBPath(log *zap.Logger) string {
	if log != nil {
		log.Debug("using development stories db", zap.String("path", dbFileName))
	}
	return dbFileName
}

func IsDevelopment() bool {
	return true
}
