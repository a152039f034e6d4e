package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/amani-mollel/invoice-tracker/gen/ent"
)

// fakeFilesRepo keeps invoice files in memory, keyed by content hash, with
// the same dedup behavior as the database-backed repository.
type fakeFilesRepo struct {
	byHash map[string]*ent.InvoiceFile
}

func newFakeFilesRepo() *fakeFilesRepo {
	return &fakeFilesRepo{byHash: map[string]*ent.InvoiceFile{}}
}

func (f *fakeFilesRepo) GetByID(_ context.Context, id uuid.UUID) (*ent.InvoiceFile, error) {
	for _, row := range f.byHash {
		if row.ID == id {
			return row, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeFilesRepo) GetByHash(_ context.Context, hash []byte) (*ent.InvoiceFile, error) {
	if row, ok := f.byHash[hex.EncodeToString(hash)]; ok {
		return row, nil
	}
	return nil, errors.New("not found")
}

func (f *fakeFilesRepo) Create(_ context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.InvoiceFile, error) {
	row := &ent.InvoiceFile{
		ID:          uuid.New(),
		SourcePath:  sourcePath,
		Filename:    filename,
		FileExt:     ext,
		FileSize:    size,
		ContentHash: hash,
		UploadedAt:  uploadedAt,
	}
	f.byHash[hex.EncodeToString(hash)] = row
	return row, nil
}

func (f *fakeFilesRepo) UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.InvoiceFile, bool, error) {
	if existing, err := f.GetByHash(ctx, hash); err == nil {
		return existing, true, nil
	}
	row, err := f.Create(ctx, sourcePath, filename, ext, size, hash, uploadedAt)
	return row, false, err
}

func (f *fakeFilesRepo) LinkInvoice(context.Context, uuid.UUID, uuid.UUID) error { return nil }

var _ = Describe("FSIngestor", func() {
	var (
		repo     *fakeFilesRepo
		ingestor *FSIngestor
		dir      string
		ctx      context.Context
	)

	BeforeEach(func() {
		repo = newFakeFilesRepo()
		ingestor = NewFSIngestor(repo, nil)
		dir = GinkgoT().TempDir()
		ctx = context.Background()
	})

	writeFile := func(name, content string) string {
		path := filepath.Join(dir, name)
		Expect(os.MkdirAll(filepath.Dir(path), 0o755)).To(Succeed())
		Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())
		return path
	}

	Describe("IngestPath", func() {
		It("registers a new document with its content hash", func() {
			path := writeFile("invoice.pdf", "pdf-bytes")

			r, err := ingestor.IngestPath(ctx, path)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.FileID).NotTo(BeEmpty())
			Expect(r.Deduplicated).To(BeFalse())
			Expect(r.FileExt).To(Equal("pdf"))

			sum := sha256.Sum256([]byte("pdf-bytes"))
			Expect(r.HashHex).To(Equal(hex.EncodeToString(sum[:])))
		})

		It("deduplicates by content, not by name", func() {
			first, err := ingestor.IngestPath(ctx, writeFile("a.pdf", "same-bytes"))
			Expect(err).NotTo(HaveOccurred())

			second, err := ingestor.IngestPath(ctx, writeFile("b.pdf", "same-bytes"))
			Expect(err).NotTo(HaveOccurred())
			Expect(second.Deduplicated).To(BeTrue())
			Expect(second.FileID).To(Equal(first.FileID))
		})

		It("rejects unsupported extensions", func() {
			path := writeFile("invoice.docx", "doc")
			_, err := ingestor.IngestPath(ctx, path)
			Expect(err).To(MatchError(ContainSubstring("unsupported or missing extension")))
		})

		It("fails on a missing file", func() {
			_, err := ingestor.IngestPath(ctx, filepath.Join(dir, "absent.pdf"))
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("IngestDirectory", func() {
		BeforeEach(func() {
			writeFile("one.pdf", "one")
			writeFile("two.txt", "two")
			writeFile("notes.docx", "ignored")
			writeFile(".hidden/secret.pdf", "hidden")
		})

		It("ingests matching files and counts them", func() {
			results, stats, err := ingestor.IngestDirectory(ctx, dir, true)
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(2))
			Expect(stats.Matched).To(Equal(uint32(2)))
			Expect(stats.Succeeded).To(Equal(uint32(2)))
			Expect(stats.Failed).To(BeZero())
		})

		It("descends into hidden directories when skipHidden is off", func() {
			results, stats, err := ingestor.IngestDirectory(ctx, dir, false)
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(3))
			Expect(stats.Matched).To(Equal(uint32(3)))
		})

		It("requires a root path", func() {
			_, _, err := ingestor.IngestDirectory(ctx, "  ", true)
			Expect(err).To(HaveOccurred())
		})
	})
})
