package MatrixMarket

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ScanInteger parses the entries of an integer file, calling f once per
// entry with one-based coordinates, in wire order. Array files enumerate
// their cells column by column. The first error returned by f stops the scan
// and is returned wrapped with the line number.
func (p *Parser) ScanInteger(f func(row, col int, value int64) error) error {
	if err := p.ensurePreamble(); err != nil {
		return err
	}
	if p.banner.Field != Integer {
		return fmt.Errorf("%w: integer scan of %v field", ErrField, p.banner.Field)
	}
	return scan(p, func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	}, f)
}

// ScanReal parses the entries of a real, double or integer file, see
// ScanInteger.
func (p *Parser) ScanReal(f func(row, col int, value float64) error) error {
	if err := p.ensurePreamble(); err != nil {
		return err
	}
	switch p.banner.Field {
	case Real, Double, Integer:
	default:
		return fmt.Errorf("%w: real scan of %v field", ErrField, p.banner.Field)
	}
	return scan(p, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	}, f)
}

func (p *Parser) ensurePreamble() error {
	if p.preamble {
		return nil
	}
	return p.ScanPreamble()
}

func scan[T int64 | float64](p *Parser, parseValue func(string) (T, error), f func(row, col int, value T) error) error {
	if p.scanned {
		return errors.New("MatrixMarket entries already scanned")
	}
	p.scanned = true
	switch p.banner.Format {
	case Coordinate:
		return scanCoordinate(p, parseValue, f)
	case Array:
		return scanArray(p, parseValue, f)
	}
	panic("unreachable code")
}

func scanCoordinate[T int64 | float64](p *Parser, parseValue func(string) (T, error), f func(row, col int, value T) error) error {
	nvals := p.nlines
	for p.next() {
		sText := p.s.Text()
		if strings.HasPrefix(sText, "%") {
			continue
		}
		fields := strings.Fields(sText)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 3 {
			return fmt.Errorf("%w: line %v unexpected number of elements, expected 3, got %v", ErrEntry, p.line, len(fields))
		}
		row, err := strconv.ParseUint(fields[0], 10, 0)
		if err != nil {
			return fmt.Errorf("%w: line %v row parse error %v, while parsing %v", ErrEntry, p.line, err, fields[0])
		}
		col, err := strconv.ParseUint(fields[1], 10, 0)
		if err != nil {
			return fmt.Errorf("%w: line %v col parse error %v, while parsing %v", ErrEntry, p.line, err, fields[1])
		}
		value, err := parseValue(fields[2])
		if err != nil {
			return fmt.Errorf("%w: line %v value parse error %v, while parsing %v", ErrEntry, p.line, err, fields[2])
		}
		if nvals == 0 {
			return fmt.Errorf("%w: more than %v coordinate lines", ErrTooManyEntries, p.nlines)
		}
		if row > uint64(maxIndex) || col > uint64(maxIndex) {
			return fmt.Errorf("%w: line %v coordinate out of range", ErrEntry, p.line)
		}
		if err = f(int(row), int(col), value); err != nil {
			return fmt.Errorf("MatrixMarket line %v: %w", p.line, err)
		}
		nvals--
	}
	if err := p.scanErr(); err != nil {
		return err
	}
	if nvals > 0 {
		return fmt.Errorf("%w: expected %v coordinate lines, got %v", ErrTooFewEntries, p.nlines, p.nlines-nvals)
	}
	return nil
}

func scanArray[T int64 | float64](p *Parser, parseValue func(string) (T, error), f func(row, col int, value T) error) error {
	var row, col int
	var resetRow func()
	switch p.banner.Symmetry {
	case Symmetric, Hermitian:
		resetRow = func() { row = col }
	case SkewSymmetric:
		resetRow = func() { row = col + 1 }
	default:
		resetRow = func() { row = 0 }
	}
	resetRow()
	nvals := p.nlines
	for p.next() {
		sText := p.s.Text()
		if strings.HasPrefix(sText, "%") {
			continue
		}
		fields := strings.Fields(sText)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 1 {
			return fmt.Errorf("%w: line %v unexpected number of elements, expected 1, got %v", ErrEntry, p.line, len(fields))
		}
		if nvals == 0 {
			return fmt.Errorf("%w: more than %v array lines", ErrTooManyEntries, p.nlines)
		}
		for row >= p.nrows {
			col++
			resetRow()
		}
		value, err := parseValue(fields[0])
		if err != nil {
			return fmt.Errorf("%w: line %v value parse error %v, while parsing %v", ErrEntry, p.line, err, fields[0])
		}
		if err = f(row+1, col+1, value); err != nil {
			return fmt.Errorf("MatrixMarket line %v: %w", p.line, err)
		}
		row++
		nvals--
	}
	if err := p.scanErr(); err != nil {
		return err
	}
	if nvals > 0 {
		return fmt.Errorf("%w: expected %v array lines, got %v", ErrTooFewEntries, p.nlines, p.nlines-nvals)
	}
	return nil
}
