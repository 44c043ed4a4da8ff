// Package importer loads supplier price lists (CSV) into the product
// catalog. Rows carry euro amounts with decimals; they are converted to the
// integer cents the rest of the system works in.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/muerroui/gsm-ma-achat-simple/internal/domain"
)

// ProductWriter is the subset of the product repository the importer needs.
type ProductWriter interface {
	Upsert(ctx context.Context, p domain.Product) (*domain.Product, error)
}

// CSVImporter reads supplier CSV exports and upserts products.
type CSVImporter struct {
	reader *csv.Reader
	repo   ProductWriter
}

func NewCSVImporter(r io.Reader, repo ProductWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{reader: csvr, repo: repo}
}

// Run parses CSV rows and upserts each product. It returns the number of
// imported rows; a malformed row aborts the run with its line context.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	var imported int
	for line := 2; ; line++ {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row %d: %w", line, err)
		}

		p, err := parseRow(record, index)
		if err != nil {
			return imported, fmt.Errorf("row %d: %w", line, err)
		}
		if _, err := i.repo.Upsert(ctx, p); err != nil {
			return imported, fmt.Errorf("upsert %q: %w", p.Name, err)
		}
		imported++
	}
	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return index
}

func field(record []string, index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func parseRow(record []string, index map[string]int) (domain.Product, error) {
	var p domain.Product

	p.Name = field(record, index, "name")
	if p.Name == "" {
		return p, errors.New("name required")
	}
	p.Description = field(record, index, "description")

	if raw := field(record, index, "id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return p, fmt.Errorf("invalid id %q", raw)
		}
		p.ID = id
	}

	price, err := parseEuros(field(record, index, "price"))
	if err != nil {
		return p, fmt.Errorf("price: %w", err)
	}
	wholesale, err := parseEuros(field(record, index, "wholesale_price"))
	if err != nil {
		return p, fmt.Errorf("wholesale_price: %w", err)
	}
	if wholesale > price {
		return p, fmt.Errorf("wholesale price %d above public price %d", wholesale, price)
	}
	p.PriceCents = price
	p.WholesalePriceCents = wholesale

	p.Category = strings.ToLower(field(record, index, "category"))
	if !knownCategory(p.Category) {
		return p, fmt.Errorf("unknown category %q", p.Category)
	}

	if p.Stock, err = parseCount(field(record, index, "stock"), 0); err != nil {
		return p, fmt.Errorf("stock: %w", err)
	}
	if p.MinQuantity, err = parseCount(field(record, index, "min_quantity"), 1); err != nil {
		return p, fmt.Errorf("min_quantity: %w", err)
	}
	if p.MinQuantity < 1 {
		return p, fmt.Errorf("min_quantity must be at least 1")
	}
	return p, nil
}

func knownCategory(c string) bool {
	for _, known := range domain.Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// parseEuros converts "1299" or "1299.50" (comma accepted as the decimal
// separator) to cents.
func parseEuros(raw string) (int64, error) {
	if raw == "" {
		return 0, errors.New("required")
	}
	normalized := strings.ReplaceAll(raw, ",", ".")
	amount, err := strconv.ParseFloat(normalized, 64)
	if err != nil || amount < 0 {
		return 0, fmt.Errorf("invalid amount %q", raw)
	}
	return int64(math.Round(amount * 100)), nil
}

func parseCount(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid count %q", raw)
	}
	return n, nil
}
