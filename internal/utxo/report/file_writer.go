package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/utxo/model"
	"go.uber.org/multierr"
)

// FileWriter writes reports into a directory. Each file is written to a temporary
// file first and renamed into place, so a failed write never leaves a partial report.
type FileWriter struct {
	dir string
}

// NewFileWriter creates a FileWriter for dir.
func NewFileWriter(dir string) *FileWriter {
	return &FileWriter{dir: dir}
}

// BlockReportPath returns the destination of the per-block report.
func (w *FileWriter) BlockReportPath() string {
	return filepath.Join(w.dir, BlockReportFile)
}

// TimeReportPath returns the destination of the per-hour report.
func (w *FileWriter) TimeReportPath() string {
	return filepath.Join(w.dir, TimeReportFile)
}

// WriteBlockReport stores the per-block report.
func (w *FileWriter) WriteBlockReport(ctx context.Context, rows []model.BlockReportRow) error {
	return writeAtomic(ctx, w.BlockReportPath(), func(out io.Writer) error {
		return EncodeBlockReport(out, rows)
	})
}

// WriteTimeReport stores the per-hour report.
func (w *FileWriter) WriteTimeReport(ctx context.Context, rows []model.TimeReportRow) error {
	return writeAtomic(ctx, w.TimeReportPath(), func(out io.Writer) error {
		return EncodeTimeReport(out, rows)
	})
}

func writeAtomic(ctx context.Context, path string, encode func(io.Writer) error) (err error) {
	if err = ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = encode(tmp); err != nil {
		err = multierr.Append(fmt.Errorf("encode %s: %w", path, err), tmp.Close())
		return err
	}
	if err = tmp.Sync(); err != nil {
		err = multierr.Append(fmt.Errorf("sync %s: %w", path, err), tmp.Close())
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
