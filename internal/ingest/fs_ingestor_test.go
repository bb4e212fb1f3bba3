package ingest

import (
	"context"
	"encoding/hex"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greentrust/esg-audit/gen/ent"
)

// memDocs is an in-memory InvoiceDocumentRepository keyed by content hash.
type memDocs struct {
	byHash map[string]*ent.InvoiceDocument
}

func newMemDocs() *memDocs {
	return &memDocs{byHash: map[string]*ent.InvoiceDocument{}}
}

func (m *memDocs) GetByID(ctx context.Context, id uuid.UUID) (*ent.InvoiceDocument, error) {
	for _, d := range m.byHash {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, &ent.NotFoundError{}
}

func (m *memDocs) GetByHash(ctx context.Context, hash []byte) (*ent.InvoiceDocument, error) {
	if d, ok := m.byHash[hex.EncodeToString(hash)]; ok {
		return d, nil
	}
	return nil, &ent.NotFoundError{}
}

func (m *memDocs) Create(ctx context.Context, sourcePath, ext, rawText string, hash []byte, ingestedAt time.Time) (*ent.InvoiceDocument, error) {
	d := &ent.InvoiceDocument{
		ID:          uuid.New(),
		SourcePath:  sourcePath,
		FileExt:     ext,
		RawText:     rawText,
		ContentHash: hash,
		IngestedAt:  ingestedAt,
	}
	m.byHash[hex.EncodeToString(hash)] = d
	return d, nil
}

func (m *memDocs) UpsertByHash(ctx context.Context, sourcePath, ext, rawText string, hash []byte, ingestedAt time.Time) (*ent.InvoiceDocument, bool, error) {
	if d, err := m.GetByHash(ctx, hash); err == nil {
		return d, true, nil
	}
	d, err := m.Create(ctx, sourcePath, ext, rawText, hash, ingestedAt)
	return d, false, err
}

func (m *memDocs) List(ctx context.Context) ([]*ent.InvoiceDocument, error) {
	out := make([]*ent.InvoiceDocument, 0, len(m.byHash))
	for _, d := range m.byHash {
		out = append(out, d)
	}
	return out, nil
}

func testIngestor() (*FSIngestor, *memDocs) {
	docs := newMemDocs()
	return NewFSIngestor(docs, slog.New(slog.NewTextHandler(io.Discard, nil))), docs
}

func TestIngestPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "invoice.txt")
	require.NoError(t, os.WriteFile(path, []byte("FREIGHT INVOICE\nTotal CO2e: 245.5 kg\n"), 0o644))

	ing, _ := testIngestor()
	res, err := ing.IngestPath(context.Background(), path)
	require.NoError(t, err)
	assert.False(t, res.Deduplicated)
	assert.NotEmpty(t, res.DocumentID)
	assert.NotEmpty(t, res.HashHex)
	assert.Equal(t, "txt", res.FileExt)
	assert.Contains(t, res.RawText, "245.5")
}

func TestIngestPathDeduplicatesByContent(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("same content"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("same content"), 0o644))

	ing, _ := testIngestor()
	first, err := ing.IngestPath(context.Background(), a)
	require.NoError(t, err)
	second, err := ing.IngestPath(context.Background(), b)
	require.NoError(t, err)

	assert.False(t, first.Deduplicated)
	assert.True(t, second.Deduplicated)
	assert.Equal(t, first.DocumentID, second.DocumentID)
}

func TestIngestPathRejectsUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "invoice.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF"), 0o644))

	ing, _ := testIngestor()
	_, err := ing.IngestPath(context.Background(), path)
	assert.Error(t, err)
}

func TestIngestDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "one.txt"), []byte("one"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "two.txt"), []byte("two"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dupe.txt"), []byte("one"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skip.pdf"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden.txt"), []byte("h"), 0o644))

	ing, docs := testIngestor()
	results, stats, err := ing.IngestDirectory(context.Background(), dir, true)
	require.NoError(t, err)

	assert.EqualValues(t, 3, stats.Matched)
	assert.EqualValues(t, 3, stats.Succeeded)
	assert.EqualValues(t, 1, stats.Deduplicated)
	assert.EqualValues(t, 0, stats.Failed)
	assert.Len(t, results, 3)

	stored, err := docs.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, stored, 2, "duplicate content stored once")
}

func TestIngestDirectoryRequiresRoot(t *testing.T) {
	ing, _ := testIngestor()
	_, _, err := ing.IngestDirectory(context.Background(), "   ", true)
	assert.Error(t, err)
}
