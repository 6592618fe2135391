package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pable/go-screp-view/internal/model"
	"github.com/pable/go-screp-view/internal/rep"
	"github.com/pable/go-screp-view/internal/screp"
	"github.com/pable/go-screp-view/internal/storage"
)

// openCache opens the raw-output cache, creating its directory if needed.
func openCache() (*storage.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return db, nil
}

// loadModel returns the computed match model for a replay file, running
// screp on a cache miss and storing the raw output on success.
func loadModel(ctx context.Context, db *storage.DB, version string, path string) (*model.MatchModel, model.RepFile, error) {
	file, err := screp.Stat(path)
	if err != nil {
		return nil, model.RepFile{}, err
	}

	if !noCache {
		rawJSON, ok, err := db.GetByPath(file.Path, file.Size, version)
		if err != nil {
			return nil, model.RepFile{}, err
		}
		if ok {
			var raw model.RawMatch
			if err := json.Unmarshal(rawJSON, &raw); err == nil {
				return rep.Build(&raw, screp.Source(path)), file, nil
			}
			// A corrupt cache entry falls through to a fresh parse.
		}
	}

	opts := screp.DefaultOptions()
	opts.Binary = screpBin
	res, err := screp.Parse(ctx, path, opts)
	if err != nil {
		return nil, model.RepFile{}, err
	}

	m := rep.Build(res.Raw, screp.Source(path))

	if !noCache {
		entry := storage.Entry{
			Hash:         res.Hash,
			File:         res.File,
			MapName:      m.Map.NameData.CleanName,
			Matchup:      m.MatchupSummary,
			MatchDate:    m.Match.Date.Format("2006-01-02"),
			ScrepVersion: version,
			RawJSON:      res.RawJSON,
		}
		if err := db.Put(entry); err != nil {
			return nil, model.RepFile{}, err
		}
	}
	return m, res.File, nil
}

// screpVersion probes the installed screp build, failing early when the
// binary is not available at all.
func screpVersion(ctx context.Context) (string, error) {
	if !screp.Available(screpBin) {
		return "", fmt.Errorf("the %q command line tool is not available; install it from <https://github.com/icza/screp>", screpBin)
	}
	v, err := screp.GetVersion(ctx, screpBin)
	if err != nil {
		return "", fmt.Errorf("probe screp version: %w", err)
	}
	return v.String(), nil
}
