package generator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

type assetCopySummary struct {
	Copied int
	Bytes  int64
}

// copyStatic mirrors StaticDir into the output directory. A missing static
// directory is logged and skipped.
func (s *service) copyStatic(ctx context.Context, writer artifactWriter, known *outputIndex) (assetCopySummary, error) {
	summary := assetCopySummary{}
	root := s.cfg.StaticDir

	if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
		s.deps.Logger.Warn("generator.assets.missing", "static_dir", root)
		return summary, nil
	}

	err := filepath.WalkDir(root, func(current string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		rel, err := filepath.Rel(root, current)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			return writer.EnsureDir(ctx, rel)
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		file, err := os.Open(current)
		if err != nil {
			return err
		}
		defer file.Close()

		if err := writer.WriteFile(ctx, writeFileRequest{
			Path:     rel,
			Content:  file,
			Category: categoryAsset,
		}); err != nil {
			return err
		}

		summary.Copied++
		summary.Bytes += info.Size()
		known.add(rel)
		s.deps.Logger.Trace("generator.asset.copied", "asset", rel)
		return nil
	})
	if err != nil {
		return summary, fmt.Errorf("generator: copy static %s: %w", root, err)
	}
	return summary, nil
}
