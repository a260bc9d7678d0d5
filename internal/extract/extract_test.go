package extract

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jung-kurt/gofpdf/v2"
)

func fixturePDF(t *testing.T, lines ...string) []byte {
	t.Helper()
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	doc.SetFont("Helvetica", "", 12)
	for _, line := range lines {
		doc.Cell(0, 10, line)
		doc.Ln(8)
	}
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		t.Fatalf("build fixture pdf: %v", err)
	}
	return buf.Bytes()
}

func TestTextExtractsPageContent(t *testing.T) {
	data := fixturePDF(t, "Invoice", "Customer Number: 12345", "Total: 99.00")

	text, err := Text(context.Background(), data)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if !strings.Contains(text, "12345") {
		t.Fatalf("expected extracted text to contain customer number, got %q", text)
	}
}

func TestTextMultiPageOrder(t *testing.T) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetFont("Helvetica", "", 12)
	doc.AddPage()
	doc.Cell(0, 10, "FIRSTPAGE")
	doc.AddPage()
	doc.Cell(0, 10, "SECONDPAGE")
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		t.Fatalf("build fixture pdf: %v", err)
	}

	text, err := Text(context.Background(), buf.Bytes())
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	first := strings.Index(text, "FIRSTPAGE")
	second := strings.Index(text, "SECONDPAGE")
	if first < 0 || second < 0 {
		t.Fatalf("expected both pages in output, got %q", text)
	}
	if first > second {
		t.Fatal("expected page order to be preserved")
	}
}

func TestTextRejectsNonPDF(t *testing.T) {
	_, err := Text(context.Background(), []byte("this is not a pdf at all, just bytes"))
	if !errors.Is(err, ErrExtraction) {
		t.Fatalf("expected ErrExtraction, got %v", err)
	}
}

func TestTextRejectsEmptyInput(t *testing.T) {
	_, err := Text(context.Background(), nil)
	if !errors.Is(err, ErrExtraction) {
		t.Fatalf("expected ErrExtraction, got %v", err)
	}
}

func TestTextHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Text(ctx, fixturePDF(t, "Customer Number: 12345"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
