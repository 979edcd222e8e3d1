// Package mpt reads EC-Lab .mpt instrument exports: a fixed-size metadata
// preamble followed by a tab-delimited measurement table.
package mpt

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"eisview/domain/eis"
	"eisview/internal/errors"
)

// HeaderSkipLines is the number of preamble lines before the column header
// row in an EC-Lab export.
const HeaderSkipLines = 63

// maxLineBytes bounds a single table line; instrument rows are short but the
// preamble can carry long free-text settings lines.
const maxLineBytes = 1024 * 1024

// Reader parses one .mpt file into a CellRecord.
type Reader struct {
	filePath string
}

// NewReader creates a reader for the given file path.
func NewReader(filePath string) *Reader {
	return &Reader{filePath: filePath}
}

// CellName returns the record identity for this file: the base filename with
// its extension stripped.
func (r *Reader) CellName() string {
	base := filepath.Base(r.filePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Read parses the file. It returns a FILE_PARSE_ERROR when the table is
// missing a required impedance column or contains no usable data rows; rows
// whose required cells do not parse as numbers are skipped individually.
func (r *Reader) Read() (*eis.CellRecord, error) {
	f, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", r.filePath)
	}
	defer f.Close()

	// EC-Lab writes Latin-1; decode through the charmap so bytes >= 0x80 in
	// the preamble (degree signs, micro prefixes) never poison the scan.
	decoded := charmap.ISO8859_1.NewDecoder().Reader(f)
	scanner := bufio.NewScanner(decoded)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	for i := 0; i < HeaderSkipLines; i++ {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, errors.Wrapf(err, "failed to read %s", r.filePath)
			}
			return nil, errors.FileParseError("file ends inside the header preamble")
		}
	}

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", r.filePath)
		}
		return nil, errors.FileParseError("file has no column header row")
	}

	reCol, imCol, err := locateColumns(scanner.Text())
	if err != nil {
		return nil, err
	}

	var points []eis.MeasurementPoint
	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), "\t")
		if len(fields) <= reCol || len(fields) <= imCol {
			continue
		}
		re, errRe := strconv.ParseFloat(strings.TrimSpace(fields[reCol]), 64)
		im, errIm := strconv.ParseFloat(strings.TrimSpace(fields[imCol]), 64)
		if errRe != nil || errIm != nil {
			continue
		}
		points = append(points, eis.MeasurementPoint{ReZOhm: re, NegImZOhm: im})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", r.filePath)
	}
	if len(points) == 0 {
		return nil, errors.FileParseError("table has no numeric data rows")
	}

	return eis.NewCellRecord(r.CellName(), points), nil
}

// locateColumns finds the indices of the two required impedance columns in a
// tab-delimited header row. Header names must match exactly after trimming.
func locateColumns(headerLine string) (reCol, imCol int, err error) {
	reCol, imCol = -1, -1
	for i, name := range strings.Split(headerLine, "\t") {
		switch strings.TrimSpace(name) {
		case eis.ColumnReZ:
			reCol = i
		case eis.ColumnNegImZ:
			imCol = i
		}
	}
	if reCol < 0 || imCol < 0 {
		return 0, 0, errors.FileParseError("missing required impedance columns")
	}
	return reCol, imCol, nil
}
