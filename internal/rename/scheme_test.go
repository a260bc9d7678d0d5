package rename

import "testing"

func TestCustomerSchemeBuildName(t *testing.T) {
	s := Customer()

	if got := s.BuildName("Customer No: 12345", "scan001.pdf"); got != "CTI-12345.pdf" {
		t.Fatalf("expected CTI-12345.pdf, got %q", got)
	}
}

func TestCustomerSchemeFallbackKeepsExtension(t *testing.T) {
	s := Customer()

	if got := s.BuildName("nothing useful here", "scan001.PDF"); got != "scan001.PDF" {
		t.Fatalf("expected original name, got %q", got)
	}
	if got := s.BuildName("", "uploads/march/scan001.pdf"); got != "scan001.pdf" {
		t.Fatalf("expected path stripped, got %q", got)
	}
	if got := s.BuildName("", `C:\docs\scan001.pdf`); got != "scan001.pdf" {
		t.Fatalf("expected windows path stripped, got %q", got)
	}
}

func TestCustomerInvoiceSchemeDegrades(t *testing.T) {
	s := CustomerInvoice()

	cases := []struct {
		name string
		text string
		want string
	}{
		{"both", "Customer No: 12 Invoice No: 34", "CTI-12-34.pdf"},
		{"customer only", "Customer No: 12", "CTI-12.pdf"},
		{"invoice only", "Invoice No: 34", "CTI-34.pdf"},
		{"neither", "hello", "orig.pdf"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.BuildName(tc.text, "orig.pdf"); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestSalesOrderSchemeDegrades(t *testing.T) {
	s := SalesOrder()

	cases := []struct {
		name string
		text string
		want string
	}{
		{"both", "Sales Order: SO-1\nShip to: Acme Corp", "CTI Sales Order SO-1 Acme Corp.pdf"},
		{"order only", "Sales Order: SO-1", "CTI Sales Order SO-1.pdf"},
		{"ship only", "Ship to Name: Acme Corp", "CTI Sales Order Acme Corp.pdf"},
		{"neither", "hello", "orig.pdf"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.BuildName(tc.text, "orig.pdf"); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestSchemeByName(t *testing.T) {
	for _, name := range SchemeNames() {
		s, ok := SchemeByName(name)
		if !ok {
			t.Fatalf("expected scheme for %q", name)
		}
		if s.Name() != name {
			t.Fatalf("scheme %q reports name %q", name, s.Name())
		}
	}

	if _, ok := SchemeByName("bogus"); ok {
		t.Fatal("expected no scheme for bogus name")
	}
}
