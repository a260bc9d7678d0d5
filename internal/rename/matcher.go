// Package rename turns extracted invoice text into output filenames.
package rename

import (
	"regexp"
	"strings"
)

// Matcher finds a single identifying token in extracted invoice text.
// Patterns live behind this interface so tests can substitute their own.
type Matcher interface {
	Find(text string) (string, bool)
}

type regexpMatcher struct {
	re *regexp.Regexp
}

func (m regexpMatcher) Find(text string) (string, bool) {
	groups := m.re.FindStringSubmatch(text)
	if len(groups) < 2 {
		return "", false
	}
	token := strings.TrimSpace(groups[1])
	return token, token != ""
}

var (
	customerNumberRe = regexp.MustCompile(`(?i)customer\s*(?:number|num|no)\.?\s*[:#]?\s*([A-Za-z0-9][A-Za-z0-9-]*)`)
	invoiceNumberRe  = regexp.MustCompile(`(?i)invoice\s*(?:number|num|no)\.?\s*[:#]?\s*([A-Za-z0-9][A-Za-z0-9-]*)`)
	salesOrderRe     = regexp.MustCompile(`(?i)sales\s*order\s*(?:number|num|no)?\.?\s*[:#]?\s*([A-Za-z0-9][A-Za-z0-9-]*)`)
	salesOrderSVRe   = regexp.MustCompile(`\bSV[0-9A-Za-z]+\b`)
	shipToRe         = regexp.MustCompile(`(?i)ship\s*to(?:\s*name)?\s*[:#]?\s*([A-Za-z0-9][A-Za-z0-9 ,.'-]*)`)
)

// CustomerNumber matches labels like "Customer No: 12345" or
// "Customer Number 12345", tolerating case, punctuation and spacing
// variants, and captures the token that follows.
func CustomerNumber() Matcher {
	return regexpMatcher{customerNumberRe}
}

// InvoiceNumber matches "Invoice No"/"Invoice Number" labels.
func InvoiceNumber() Matcher {
	return regexpMatcher{invoiceNumberRe}
}

// SalesOrderNumber prefers an explicit "Sales Order" label and falls back to
// a bare SV-prefixed token.
func SalesOrderNumber() Matcher {
	return salesOrderMatcher{}
}

type salesOrderMatcher struct{}

func (salesOrderMatcher) Find(text string) (string, bool) {
	if groups := salesOrderRe.FindStringSubmatch(text); len(groups) > 1 {
		if token := strings.TrimSpace(groups[1]); token != "" {
			return token, true
		}
	}
	if token := salesOrderSVRe.FindString(text); token != "" {
		return token, true
	}
	return "", false
}

// ShipToName matches "Ship to"/"Ship to Name" labels.
func ShipToName() Matcher {
	return regexpMatcher{shipToRe}
}
