// Package ledger loads already-fetched group rows from JSON or YAML files and
// turns them into engine inputs.
//
// A file describes one travel group (for closing) and any number of invoices
// (for a bill), together with the name tables the engine resolves ids
// against. Decoding is strict about shape but not about amounts: negative or
// missing amounts are passed through for the engine's own conventions.
package ledger

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"settlement/internal/bill"
	"settlement/internal/finance"
	"settlement/internal/logger"
)

// Format is an input file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// GroupInfo identifies the travel group a file belongs to.
type GroupInfo struct {
	Code          string `json:"code" yaml:"code"`
	Name          string `json:"name" yaml:"name"`
	CustomerCount int    `json:"customerCount" yaml:"customerCount"`
}

// File is the decoded content of an input file.
type File struct {
	Group          GroupInfo                   `json:"group" yaml:"group"`
	TaxRatePercent *decimal.Decimal            `json:"taxRatePercent,omitempty" yaml:"taxRatePercent,omitempty"`
	Receipts       []finance.Receipt           `json:"receipts" yaml:"receipts"`
	Invoices       []bill.InvoiceForBill       `json:"invoices" yaml:"invoices"`
	BonusSettings  []finance.GroupBonusSetting `json:"bonusSettings" yaml:"bonusSettings"`
	Employees      map[string]string           `json:"employees" yaml:"employees"`
	Suppliers      map[string]string           `json:"suppliers" yaml:"suppliers"`
	InvoiceTypes   map[int]string              `json:"invoiceTypes" yaml:"invoiceTypes"`
}

// Loader reads input files.
type Loader struct {
	log zerolog.Logger
}

// NewLoader creates a Loader.
func NewLoader() *Loader {
	return &Loader{log: logger.WithComponent("ledger-loader")}
}

// Load reads and decodes the file at path.
func (l *Loader) Load(path string) (*File, error) {
	const op = "Load"

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, NewLoadError(op, path, err, "")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewLoadError(op, path, err, "failed to read input file")
	}

	file, err := Decode(data, format)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) && loadErr.Path == "" {
			loadErr.Path = path
		}
		return nil, WrapLoadError(op, path, err, "")
	}

	l.log.Debug().
		Str("file", path).
		Str("format", string(format)).
		Str("group_code", file.Group.Code).
		Int("receipts", len(file.Receipts)).
		Int("invoices", len(file.Invoices)).
		Int("bonus_settings", len(file.BonusSettings)).
		Msg("Input file loaded")

	return file, nil
}

// Decode parses data in the given format, fills invoice group defaults and
// validates the fields the engine keys on.
func Decode(data []byte, format Format) (*File, error) {
	const op = "Decode"

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, NewLoadError(op, "", ErrEmptyInput, "")
	}

	var file File
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &file)
	case FormatYAML:
		err = yaml.Unmarshal(data, &file)
	default:
		return nil, NewLoadError(op, "", ErrUnsupportedFormat, string(format))
	}
	if err != nil {
		return nil, NewLoadError(op, "", fmt.Errorf("%w: %v", ErrDecode, err), string(format))
	}

	file.applyGroupDefaults()
	if err := file.validate(); err != nil {
		return nil, NewLoadError("validate", "", err, "")
	}
	return &file, nil
}

func (f *File) applyGroupDefaults() {
	for i := range f.Invoices {
		if f.Invoices[i].GroupCode == "" {
			f.Invoices[i].GroupCode = f.Group.Code
		}
		if f.Invoices[i].GroupName == "" {
			f.Invoices[i].GroupName = f.Group.Name
		}
	}
}

func (f *File) validate() error {
	for i, inv := range f.Invoices {
		if strings.TrimSpace(inv.InvoiceNumber) == "" {
			return fmt.Errorf("%w: invoices[%d].invoiceNumber", ErrMissingField, i)
		}
	}
	return nil
}

// Directory returns the file's name tables as a lookup directory.
func (f *File) Directory() Directory {
	return Directory{
		Employees:    f.Employees,
		Suppliers:    f.Suppliers,
		InvoiceTypes: f.InvoiceTypes,
	}
}

// InvoiceItems flattens every invoice line into price/quantity pairs.
func (f *File) InvoiceItems() []finance.InvoiceItem {
	var items []finance.InvoiceItem
	for _, inv := range f.Invoices {
		for _, line := range inv.Items {
			items = append(items, finance.InvoiceItem{
				Price:       line.Price,
				Quantity:    line.Quantity,
				InvoiceType: line.InvoiceType,
			})
		}
	}
	return items
}

// ClosingInput builds the closing input for the file's group. The file's
// bonus settings are folded over defaults; an explicit taxRatePercent in the
// file wins over both.
func (f *File) ClosingInput(defaults finance.ClosingTerms) finance.ClosingInput {
	terms := finance.ResolveClosingTerms(f.BonusSettings, defaults)
	if f.TaxRatePercent != nil {
		terms.TaxRatePercent = *f.TaxRatePercent
	}

	return finance.ClosingInput{
		GroupCode:           f.Group.Code,
		GroupName:           f.Group.Name,
		CustomerCount:       f.Group.CustomerCount,
		Receipts:            f.Receipts,
		InvoiceItems:        f.InvoiceItems(),
		Terms:               terms,
		ResolveEmployeeName: f.Directory().EmployeeName,
	}
}
