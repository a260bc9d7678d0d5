package renamer

import (
	"context"
	"fmt"
	"testing"

	"invoice-renamer/internal/extract"
	"invoice-renamer/internal/rename"
)

// stubExtractor treats the upload bytes as the extracted text, and fails for
// payloads marked as corrupt.
func stubExtractor(_ context.Context, data []byte) (string, error) {
	if string(data) == "CORRUPT" {
		return "", fmt.Errorf("%w: bad header", extract.ErrExtraction)
	}
	return string(data), nil
}

func newStubService() *Service {
	return &Service{extractText: stubExtractor}
}

func TestRenameBatchPreservesOrder(t *testing.T) {
	svc := newStubService()
	uploads := []Upload{
		{OriginalName: "a.pdf", Data: []byte("Customer No: 111")},
		{OriginalName: "b.pdf", Data: []byte("Customer No: 222")},
		{OriginalName: "c.pdf", Data: []byte("Customer No: 333")},
	}

	files := svc.Rename(context.Background(), rename.Customer(), uploads)
	if len(files) != 3 {
		t.Fatalf("expected 3 files, got %d", len(files))
	}
	want := []string{"CTI-111.pdf", "CTI-222.pdf", "CTI-333.pdf"}
	for i, f := range files {
		if f.Name != want[i] {
			t.Fatalf("file %d: expected %q, got %q", i, want[i], f.Name)
		}
		if string(f.Data) != string(uploads[i].Data) {
			t.Fatalf("file %d: bytes changed", i)
		}
	}
}

func TestRenameCorruptFileKeepsOriginalName(t *testing.T) {
	svc := newStubService()
	uploads := []Upload{
		{OriginalName: "good.pdf", Data: []byte("Customer No: 12345")},
		{OriginalName: "broken.pdf", Data: []byte("CORRUPT")},
		{OriginalName: "also-good.pdf", Data: []byte("Customer No: 678")},
	}

	files := svc.Rename(context.Background(), rename.Customer(), uploads)
	if len(files) != 3 {
		t.Fatalf("expected 3 files, got %d", len(files))
	}
	if files[0].Name != "CTI-12345.pdf" {
		t.Fatalf("expected first file renamed, got %q", files[0].Name)
	}
	if files[1].Name != "broken.pdf" {
		t.Fatalf("expected corrupt file to keep its name, got %q", files[1].Name)
	}
	if string(files[1].Data) != "CORRUPT" {
		t.Fatal("expected corrupt file bytes passed through unchanged")
	}
	if files[2].Name != "CTI-678.pdf" {
		t.Fatalf("expected third file renamed, got %q", files[2].Name)
	}
}

func TestRenameNoMatchFallsBackToOriginal(t *testing.T) {
	svc := newStubService()
	uploads := []Upload{
		{OriginalName: "march-statement.pdf", Data: []byte("no numbers anywhere")},
	}

	files := svc.Rename(context.Background(), rename.Customer(), uploads)
	if files[0].Name != "march-statement.pdf" {
		t.Fatalf("expected original name, got %q", files[0].Name)
	}
}

func TestRenameLargeBatchKeepsOrderUnderParallelism(t *testing.T) {
	svc := newStubService()

	const n = 40
	uploads := make([]Upload, n)
	for i := range uploads {
		uploads[i] = Upload{
			OriginalName: fmt.Sprintf("in-%02d.pdf", i),
			Data:         []byte(fmt.Sprintf("Customer No: %d", 1000+i)),
		}
	}

	files := svc.Rename(context.Background(), rename.Customer(), uploads)
	for i, f := range files {
		want := fmt.Sprintf("CTI-%d.pdf", 1000+i)
		if f.Name != want {
			t.Fatalf("file %d: expected %q, got %q", i, want, f.Name)
		}
	}
}

func TestRenameEmptyBatch(t *testing.T) {
	svc := newStubService()

	files := svc.Rename(context.Background(), rename.Customer(), nil)
	if len(files) != 0 {
		t.Fatalf("expected no files, got %d", len(files))
	}
}
