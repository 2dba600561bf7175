package results

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/arloliu/dosecurve/candidate"
	"github.com/arloliu/dosecurve/errs"
	"go.uber.org/zap"
)

// Column names of a results file besides the term coefficients.
const (
	ColumnReference    = "is_aace"
	ColumnReferenceAlt = "is_reference"
	ColumnLogY         = "is_log_y"
	ColumnEquation     = "Equation with Coefficients"
	ColumnMdAPE        = "test_mdape"
	ColumnRMSE         = "test_rmse"
)

const (
	utf8BOM             = "\ufeff"
	missingColumnMarker = -1
)

// header maps the columns of a results file to their positions.
type header struct {
	reference int
	logY      int
	equation  int
	mdape     int
	rmse      int
	terms     map[candidate.Term]int
}

func parseHeader(record []string) (header, error) {
	h := header{
		reference: missingColumnMarker,
		logY:      missingColumnMarker,
		equation:  missingColumnMarker,
		mdape:     missingColumnMarker,
		rmse:      missingColumnMarker,
		terms:     make(map[candidate.Term]int),
	}

	for i, name := range record {
		name = strings.TrimSpace(strings.TrimPrefix(name, utf8BOM))
		switch name {
		case ColumnReference, ColumnReferenceAlt:
			if h.reference == missingColumnMarker {
				h.reference = i
			}
		case ColumnLogY:
			h.logY = i
		case ColumnEquation:
			h.equation = i
		case ColumnMdAPE:
			h.mdape = i
		case ColumnRMSE:
			h.rmse = i
		default:
			if t, ok := candidate.TermFromColumn(name); ok {
				h.terms[t] = i
			}
		}
	}

	if h.equation == missingColumnMarker {
		return h, fmt.Errorf("%w: missing %q column", errs.ErrMalformedResults, ColumnEquation)
	}

	return h, nil
}

// ParseCSV reads the rows of a results file.
//
// Malformed cells never fail the parse: unparseable coefficients are left out
// of the row, unparseable flags read as false and unparseable metrics as NaN.
// Each such cell is logged at debug level. Rows without an equation label are
// skipped with a warning.
func ParseCSV(r io.Reader, logger *zap.Logger) ([]candidate.Row, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	record, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty file", errs.ErrMalformedResults)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrMalformedResults, err)
	}

	h, err := parseHeader(record)
	if err != nil {
		return nil, err
	}

	var rows []candidate.Row
	for line := 2; ; line++ {
		record, err = reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", errs.ErrMalformedResults, line, err)
		}

		p := cellParser{record: record, line: line, logger: logger}
		equation := strings.TrimSpace(p.cell(h.equation))
		if equation == "" {
			logger.Warn("skipping results row", zap.Int("line", line), zap.Error(errs.ErrEmptyEquation))
			continue
		}

		row := candidate.Row{
			Equation:     equation,
			IsReference:  p.flag(h.reference, ColumnReference),
			IsLogY:       p.flag(h.logY, ColumnLogY),
			MdAPE:        p.metric(h.mdape, ColumnMdAPE),
			RMSE:         p.metric(h.rmse, ColumnRMSE),
			Coefficients: make(map[candidate.Term]float64, len(h.terms)),
		}
		for t, col := range h.terms {
			if c, ok := p.coefficient(col, t.Column()); ok {
				row.Coefficients[t] = c
			}
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// cellParser reads the typed cells of one record.
type cellParser struct {
	record []string
	line   int
	logger *zap.Logger
}

func (p cellParser) cell(col int) string {
	if col < 0 || col >= len(p.record) {
		return ""
	}

	return strings.TrimSpace(p.record[col])
}

func (p cellParser) flag(col int, name string) bool {
	s := p.cell(col)
	if s == "" {
		return false
	}

	v, err := strconv.ParseBool(s)
	if err != nil {
		p.skipped(name, s, err)
		return false
	}

	return v
}

func (p cellParser) metric(col int, name string) float64 {
	s := p.cell(col)
	if s == "" {
		return math.NaN()
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		p.skipped(name, s, err)
		return math.NaN()
	}

	return v
}

func (p cellParser) coefficient(col int, name string) (float64, bool) {
	s := p.cell(col)
	if s == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		p.skipped(name, s, err)
		return 0, false
	}

	return v, true
}

func (p cellParser) skipped(column, value string, err error) {
	p.logger.Debug("skipping malformed cell",
		zap.Int("line", p.line),
		zap.String("column", column),
		zap.String("value", value),
		zap.Error(err),
	)
}

// WriteCSV writes rows in the results file layout, with every term column.
func WriteCSV(w io.Writer, rows []candidate.Row) error {
	cw := csv.NewWriter(w)

	head := []string{ColumnReference, ColumnLogY, ColumnEquation, ColumnMdAPE, ColumnRMSE}
	for _, t := range candidate.Terms {
		head = append(head, t.Column())
	}
	if err := cw.Write(head); err != nil {
		return err
	}

	for _, r := range rows {
		record := []string{
			formatFlag(r.IsReference),
			formatFlag(r.IsLogY),
			r.Equation,
			strconv.FormatFloat(r.MdAPE, 'g', -1, 64),
			strconv.FormatFloat(r.RMSE, 'g', -1, 64),
		}
		for _, t := range candidate.Terms {
			c, ok := r.Coefficients[t]
			if !ok {
				record = append(record, "")
				continue
			}
			record = append(record, strconv.FormatFloat(c, 'g', -1, 64))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// formatFlag writes booleans the way pandas exports them.
func formatFlag(v bool) string {
	if v {
		return "True"
	}

	return "False"
}
