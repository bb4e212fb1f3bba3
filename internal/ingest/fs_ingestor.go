package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/greentrust/esg-audit/constants"
	"github.com/greentrust/esg-audit/internal/repository"
)

// FSIngestor reads invoice text files from the local filesystem and
// deduplicates them by content hash.
type FSIngestor struct {
	Documents repository.InvoiceDocumentRepository
	Logger    *slog.Logger
}

func NewFSIngestor(docs repository.InvoiceDocumentRepository, logger *slog.Logger) *FSIngestor {
	return &FSIngestor{
		Documents: docs,
		Logger:    logger,
	}
}

func (i *FSIngestor) IngestPath(ctx context.Context, path string) (IngestionResult, error) {
	var out IngestionResult

	abs, err := filepath.Abs(path)
	if err != nil {
		i.Logger.Error("abs path error", "path", path, "error", err)
		return out, err
	}

	ext := constants.NormalizeExt(filepath.Ext(abs))
	if ext == "" || !AllowedExt(ext) {
		i.Logger.Warn("unsupported or missing extension", "path", abs, "ext", ext)
		return out, fmt.Errorf("unsupported or missing extension %q", ext)
	}

	raw, err := os.ReadFile(abs)
	if err != nil {
		i.Logger.Error("read error", "path", abs, "error", err)
		return out, err
	}

	sum := sha256.Sum256(raw)
	now := time.Now().UTC()

	row, dedup, err := i.Documents.UpsertByHash(ctx, abs, ext, string(raw), sum[:], now)
	if err != nil {
		return out, err
	}

	out = IngestionResult{
		SourcePath:   row.SourcePath,
		DocumentID:   row.ID.String(),
		Deduplicated: dedup,
		HashHex:      hex.EncodeToString(sum[:]),
		FileExt:      row.FileExt,
		RawText:      row.RawText,
		IngestedAt:   row.IngestedAt,
	}
	return out, nil
}
