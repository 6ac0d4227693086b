// Package infrastructure implements the bead catalog and image adapters.
package infrastructure

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	appbeads "github.com/zjrosen/beadmatch/internal/beads/application"
	domain "github.com/zjrosen/beadmatch/internal/beads/domain"
	"github.com/zjrosen/beadmatch/internal/log"
)

// Compile-time check that CSVCatalogReader implements required interfaces.
var _ appbeads.CatalogReader = (*CSVCatalogReader)(nil)

// CatalogFields is the number of fields in every catalog row.
const CatalogFields = 23

// Column positions in the catalog file.
const (
	colName  = 0
	colCode  = 1
	colR     = 2
	colG     = 3
	colB     = 4
	colBrand = 20
	colXML   = 21
	colHex   = 22
)

// CSVCatalogReader loads beads from a delimited catalog file.
type CSVCatalogReader struct {
	path   string
	logger *log.Logger
}

// NewCSVCatalogReader creates a reader for the catalog at path.
func NewCSVCatalogReader(path string, logger *log.Logger) *CSVCatalogReader {
	return &CSVCatalogReader{path: path, logger: logger}
}

// Path returns the catalog file path.
func (r *CSVCatalogReader) Path() string {
	return r.path
}

// ReadCatalog opens the catalog file and parses it.
func (r *CSVCatalogReader) ReadCatalog() (beads []domain.Bead, retErr error) {
	r.logger.Debug(log.CatCatalog, "Opening catalog", "path", r.path)
	f, err := os.Open(r.path) //nolint:gosec // G304: catalog path is user configuration
	if err != nil {
		r.logger.ErrorErr(log.CatCatalog, "Failed to open catalog", err, "path", r.path)
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("closing catalog: %w", closeErr)
		}
	}()

	beads, err = ParseCatalog(f, r.logger)
	if err != nil {
		return nil, err
	}
	r.logger.Info(log.CatCatalog, "Read in beads", "count", len(beads), "path", r.path)
	return beads, nil
}

// maxLineBytes bounds a single catalog line.
const maxLineBytes = 1 << 20

// ParseCatalog parses catalog rows from src. The first line is a header.
// Each physical line is parsed on its own, so a malformed row (including an
// unterminated quote) never affects the lines after it. Malformed rows are
// logged and skipped; only I/O failures are returned.
func ParseCatalog(src io.Reader, logger *log.Logger) ([]domain.Bead, error) {
	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var beads []domain.Bead
	line := 0
	for sc.Scan() {
		line++
		if line == 1 {
			continue // header
		}
		text := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}

		record, err := splitLine(text)
		if err != nil {
			logger.Warn(log.CatCatalog, "Skipping malformed csv line", "line", line, "error", err)
			continue
		}
		bead, rowErr := parseRow(record, line)
		if rowErr != nil {
			logger.Warn(log.CatCatalog, "Skipping catalog row", "line", rowErr.Line, "reason", rowErr.Reason)
			continue
		}
		bead.Hex = normalizeHex(bead.Hex, line, logger)

		beads = append(beads, bead)
		logger.Debug(log.CatCatalog, "Added bead", "name", bead.Name, "code", bead.Code)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return beads, nil
}

// splitLine splits one catalog line into fields. Quotes are honoured within
// the line only.
func splitLine(text string) ([]string, error) {
	cr := csv.NewReader(strings.NewReader(text))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	record, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	return record, err
}

// normalizeHex returns hex as six lowercase digits without "#". Values that
// are not colors are kept as given.
func normalizeHex(hex string, line int, logger *log.Logger) string {
	c, err := colorful.Hex("#" + strings.TrimPrefix(hex, "#"))
	if err != nil {
		logger.Debug(log.CatCatalog, "Hex field is not a color", "line", line, "hex", hex)
		return hex
	}
	return strings.TrimPrefix(c.Hex(), "#")
}

func parseRow(record []string, line int) (domain.Bead, *domain.RowError) {
	if len(record) != CatalogFields {
		return domain.Bead{}, &domain.RowError{
			Line:   line,
			Reason: fmt.Sprintf("expected %d fields, got %d", CatalogFields, len(record)),
		}
	}

	field := func(i int) string {
		return strings.ToLower(strings.TrimSpace(record[i]))
	}
	required := []int{colName, colCode, colR, colG, colB, colBrand, colXML, colHex}
	for _, i := range required {
		if field(i) == "" {
			return domain.Bead{}, &domain.RowError{Line: line, Reason: "missing data"}
		}
	}

	var rgb [3]int
	for j, i := range []int{colR, colG, colB} {
		v, err := strconv.Atoi(field(i))
		if err != nil {
			return domain.Bead{}, &domain.RowError{Line: line, Reason: "malformed rgb data"}
		}
		rgb[j] = v
	}

	return domain.Bead{
		Brand: field(colBrand),
		Code:  field(colCode),
		Name:  field(colName),
		XML:   field(colXML),
		Hex:   field(colHex),
		RGB:   domain.RGB{R: rgb[0], G: rgb[1], B: rgb[2]},
	}, nil
}
