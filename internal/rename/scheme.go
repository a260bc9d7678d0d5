package rename

import (
	"fmt"
	"path"
	"strings"
)

// Scheme builds the output filename for one file from its extracted text.
// When nothing matches, every scheme falls back to the original filename
// with its extension preserved.
type Scheme interface {
	Name() string
	BuildName(text, originalName string) string
}

// Customer renames to CTI-<customer number>.pdf.
func Customer() Scheme {
	return customerScheme{customer: CustomerNumber()}
}

// Invoice renames to CTI-<invoice number>.pdf.
func Invoice() Scheme {
	return invoiceScheme{invoice: InvoiceNumber()}
}

// CustomerInvoice renames to CTI-<customer>-<invoice>.pdf, degrading to
// whichever token was found.
func CustomerInvoice() Scheme {
	return customerInvoiceScheme{customer: CustomerNumber(), invoice: InvoiceNumber()}
}

// SalesOrder renames to "CTI Sales Order <order> <ship-to>.pdf", degrading
// to whichever piece was found.
func SalesOrder() Scheme {
	return salesOrderScheme{order: SalesOrderNumber(), shipTo: ShipToName()}
}

// SchemeByName resolves the scheme named on a route or CLI flag.
func SchemeByName(name string) (Scheme, bool) {
	switch name {
	case "customer":
		return Customer(), true
	case "invoice":
		return Invoice(), true
	case "customer-invoice":
		return CustomerInvoice(), true
	case "sales-order":
		return SalesOrder(), true
	}
	return nil, false
}

// SchemeNames lists the supported scheme names.
func SchemeNames() []string {
	return []string{"customer", "invoice", "customer-invoice", "sales-order"}
}

type customerScheme struct {
	customer Matcher
}

func (s customerScheme) Name() string { return "customer" }

func (s customerScheme) BuildName(text, originalName string) string {
	if num, ok := s.customer.Find(text); ok {
		return fmt.Sprintf("CTI-%s.pdf", num)
	}
	return fallbackName(originalName)
}

type invoiceScheme struct {
	invoice Matcher
}

func (s invoiceScheme) Name() string { return "invoice" }

func (s invoiceScheme) BuildName(text, originalName string) string {
	if num, ok := s.invoice.Find(text); ok {
		return fmt.Sprintf("CTI-%s.pdf", num)
	}
	return fallbackName(originalName)
}

type customerInvoiceScheme struct {
	customer Matcher
	invoice  Matcher
}

func (s customerInvoiceScheme) Name() string { return "customer-invoice" }

func (s customerInvoiceScheme) BuildName(text, originalName string) string {
	cust, hasCust := s.customer.Find(text)
	inv, hasInv := s.invoice.Find(text)
	switch {
	case hasCust && hasInv:
		return fmt.Sprintf("CTI-%s-%s.pdf", cust, inv)
	case hasCust:
		return fmt.Sprintf("CTI-%s.pdf", cust)
	case hasInv:
		return fmt.Sprintf("CTI-%s.pdf", inv)
	}
	return fallbackName(originalName)
}

type salesOrderScheme struct {
	order  Matcher
	shipTo Matcher
}

func (s salesOrderScheme) Name() string { return "sales-order" }

func (s salesOrderScheme) BuildName(text, originalName string) string {
	order, hasOrder := s.order.Find(text)
	ship, hasShip := s.shipTo.Find(text)
	switch {
	case hasOrder && hasShip:
		return fmt.Sprintf("CTI Sales Order %s %s.pdf", order, ship)
	case hasOrder:
		return fmt.Sprintf("CTI Sales Order %s.pdf", order)
	case hasShip:
		return fmt.Sprintf("CTI Sales Order %s.pdf", ship)
	}
	return fallbackName(originalName)
}

// fallbackName strips any path component and keeps the original extension.
func fallbackName(originalName string) string {
	base := path.Base(strings.ReplaceAll(originalName, "\\", "/"))
	if base == "" || base == "." || base == "/" {
		return "invoice.pdf"
	}
	return base
}
