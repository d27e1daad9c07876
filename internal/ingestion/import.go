package ingestion

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/student-portfolio/internal/parsing"
	"github.com/jonathan/student-portfolio/internal/profile"
	"github.com/jonathan/student-portfolio/internal/types"
)

// defaultConcurrency bounds how many uploads are read at once
const defaultConcurrency = 4

// Upload is the result of importing one file
type Upload struct {
	Name     string                 `json:"name"`
	Format   Format                 `json:"format"`
	Profiles []types.StudentProfile `json:"profiles"`
	// Issues lists CSV rows that were left out because required fields are empty
	Issues []profile.RecordIssue `json:"issues,omitempty"`
}

// Importer converts uploads into profiles
type Importer struct {
	normalizer  *parsing.Normalizer
	logger      *zap.Logger
	concurrency int
}

// NewImporter creates an Importer. A nil normalizer or logger gets a default.
func NewImporter(normalizer *parsing.Normalizer, logger *zap.Logger) *Importer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if normalizer == nil {
		normalizer = parsing.NewNormalizer(parsing.WithLogger(logger))
	}
	return &Importer{
		normalizer:  normalizer,
		logger:      logger,
		concurrency: defaultConcurrency,
	}
}

// ImportBytes converts one upload
func (im *Importer) ImportBytes(name string, data []byte) (*Upload, error) {
	format, err := DetectFormat(name, data)
	if err != nil {
		return nil, &ImportError{Name: name, Cause: err}
	}

	upload := &Upload{Name: name, Format: format}
	switch format {
	case FormatJSON:
		p, err := profile.DecodeProfile(data)
		if err != nil {
			return nil, &ImportError{Name: name, Cause: err}
		}
		upload.Profiles = []types.StudentProfile{*p}

	case FormatCSV:
		records := im.normalizer.Parse(NormalizeText(string(data)))
		issues, err := profile.CheckRecords(records)
		if err != nil {
			return nil, &ImportError{Name: name, Cause: err}
		}
		upload.Issues = issues
		upload.Profiles = completeProfiles(records, issues)
	}

	im.logger.Info("imported upload",
		zap.String("name", name),
		zap.String("format", string(format)),
		zap.Int("profiles", len(upload.Profiles)),
		zap.Int("issues", len(upload.Issues)))

	return upload, nil
}

// ImportFiles reads and converts several uploads concurrently.
// Results keep the order of paths; the first failure cancels the rest.
func (im *Importer) ImportFiles(ctx context.Context, paths []string) ([]*Upload, error) {
	uploads := make([]*Upload, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(im.concurrency)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return &ImportError{Name: path, Cause: fmt.Errorf("failed to read file: %w", err)}
			}
			upload, err := im.ImportBytes(filepath.Base(path), data)
			if err != nil {
				return err
			}
			uploads[i] = upload
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return uploads, nil
}

// completeProfiles promotes the records that have no issues
func completeProfiles(records []types.ProfileRecord, issues []profile.RecordIssue) []types.StudentProfile {
	skip := make(map[int]struct{}, len(issues))
	for _, issue := range issues {
		skip[issue.Index] = struct{}{}
	}

	profiles := make([]types.StudentProfile, 0, len(records)-len(issues))
	for i, rec := range records {
		if _, incomplete := skip[i]; incomplete {
			continue
		}
		profiles = append(profiles, rec.Profile())
	}
	return profiles
}
