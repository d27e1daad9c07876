package board

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gosimple/slug"
	"go.uber.org/zap"
)

// ExportFilename is the file name a profile is exported under
func ExportFilename(fullName, profileID string) string {
	base := slug.Make(fullName)
	if base == "" {
		base = slug.Make(profileID)
	}
	if base == "" {
		base = "student"
	}
	return base + ".json"
}

// Export writes one profile as a standalone JSON upload into dir and returns its path
func (b *Board) Export(ctx context.Context, dir, profileID string) (string, error) {
	entry, err := b.Get(ctx, profileID)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(entry.Profile, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal profile: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(dir, ExportFilename(entry.Profile.FullName, entry.Profile.ProfileID))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	b.logger.Info("exported profile", zap.String("profile_id", profileID), zap.String("path", path))
	return path, nil
}
