package MatrixMarket

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

const (
	coordinateString    = "coordinate"
	arrayString         = "array"
	realString          = "real"
	doubleString        = "double"
	complexString       = "complex"
	patternString       = "pattern"
	integerString       = "integer"
	generalString       = "general"
	hermitianString     = "hermitian"
	symmetricString     = "symmetric"
	skewSymmetricString = "skew-symmetric"
)

type (
	Format   int
	Field    int
	Symmetry int
)

const (
	Coordinate Format = iota
	Array
)

const (
	Real Field = iota
	Double
	Complex
	Integer
	Pattern
)

const (
	General Symmetry = iota
	Hermitian
	Symmetric
	SkewSymmetric
)

func (f Format) String() string {
	switch f {
	case Coordinate:
		return coordinateString
	case Array:
		return arrayString
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

func (f Field) String() string {
	switch f {
	case Real:
		return realString
	case Double:
		return doubleString
	case Complex:
		return complexString
	case Integer:
		return integerString
	case Pattern:
		return patternString
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

func (s Symmetry) String() string {
	switch s {
	case General:
		return generalString
	case Hermitian:
		return hermitianString
	case Symmetric:
		return symmetricString
	case SkewSymmetric:
		return skewSymmetricString
	}
	return fmt.Sprintf("Symmetry(%d)", int(s))
}

// Banner is the content of the %%MatrixMarket line.
type Banner struct {
	Format   Format
	Field    Field
	Symmetry Symmetry
}

// Parser reads a Matrix Market stream in two steps: ScanPreamble consumes
// the banner and the dimension line, then exactly one of ScanInteger or
// ScanReal delivers the entries in wire order.
type Parser struct {
	s                    *bufio.Scanner
	line                 int
	banner               Banner
	nrows, ncols, nlines int
	preamble, scanned    bool
}

// NewParser returns a parser reading from r. bufferSize is the initial size
// of the line buffer; non-positive values use the bufio default.
func NewParser(r io.Reader, bufferSize int) *Parser {
	s := bufio.NewScanner(r)
	if bufferSize > 0 {
		s.Buffer(make([]byte, 0, bufferSize), max(bufferSize, bufio.MaxScanTokenSize))
	}
	return &Parser{s: s}
}

func (p *Parser) Banner() Banner {
	return p.banner
}

func (p *Parser) NRows() int {
	return p.nrows
}

func (p *Parser) NCols() int {
	return p.ncols
}

// NLines is the number of data lines the file declares: the nonzero count
// for coordinate files, the number of listed values for array files.
func (p *Parser) NLines() int {
	return p.nlines
}

func (p *Parser) next() bool {
	if p.s.Scan() {
		p.line++
		return true
	}
	return false
}

func (p *Parser) scanErr() error {
	if err := p.s.Err(); err != nil {
		return fmt.Errorf("MatrixMarket read error after line %v: %w", p.line, err)
	}
	return nil
}

// ScanPreamble parses the banner, skips comment lines and parses the
// dimension line.
func (p *Parser) ScanPreamble() error {
	if p.preamble {
		return errors.New("MatrixMarket preamble already scanned")
	}
	p.preamble = true
	if !p.next() {
		if err := p.scanErr(); err != nil {
			return err
		}
		return fmt.Errorf("%w: header line missing", ErrBanner)
	}
	fields := strings.Fields(p.s.Text())
	if len(fields) != 5 {
		return fmt.Errorf("%w: incorrect number of header line elements; expected 5, got %v", ErrBanner, len(fields))
	}
	if fields[0] != "%%MatrixMarket" {
		return fmt.Errorf("%w: header line prefix missing; expected %%%%MatrixMarket, got %v", ErrBanner, fields[0])
	}
	if strings.ToLower(fields[1]) != "matrix" {
		return fmt.Errorf("%w: header line second entry incorrect; expected matrix, got %v", ErrBanner, fields[1])
	}
	formatString, fieldString, symmetryString := strings.ToLower(fields[2]), strings.ToLower(fields[3]), strings.ToLower(fields[4])
	var banner Banner
	switch formatString {
	case coordinateString:
		banner.Format = Coordinate
	case arrayString:
		banner.Format = Array
	default:
		return fmt.Errorf("%w: header line format entry incorrect; expected (coordinate | array), got %v", ErrBanner, formatString)
	}
	switch fieldString {
	case realString:
		banner.Field = Real
	case doubleString:
		banner.Field = Double
	case complexString:
		banner.Field = Complex
	case patternString:
		banner.Field = Pattern
	case integerString:
		banner.Field = Integer
	default:
		return fmt.Errorf("%w: header line field entry incorrect; expected (real | double | complex | pattern | integer), got %v", ErrBanner, fieldString)
	}
	switch symmetryString {
	case generalString:
		banner.Symmetry = General
	case hermitianString:
		banner.Symmetry = Hermitian
	case symmetricString:
		banner.Symmetry = Symmetric
	case skewSymmetricString:
		banner.Symmetry = SkewSymmetric
	default:
		return fmt.Errorf("%w: header line symmetry entry incorrect; expected (general | hermitian | symmetric | skew-symmetric), got %v", ErrBanner, symmetryString)
	}
	if banner.Format == Array && banner.Field == Pattern {
		return fmt.Errorf("%w: array format not supported for pattern field", ErrBanner)
	}
	p.banner = banner

	var sText string
	for p.next() {
		sText = strings.TrimSpace(p.s.Text())
		if sText == "" || strings.HasPrefix(sText, "%") {
			sText = ""
			continue
		}
		break
	}
	if sText == "" {
		if err := p.scanErr(); err != nil {
			return err
		}
		return fmt.Errorf("%w: size line missing", ErrDimensions)
	}

	fields = strings.Fields(sText)
	var nrows, ncols, nlines uint64
	var err error
	switch banner.Format {
	case Coordinate:
		if len(fields) != 3 {
			return fmt.Errorf("%w: coordinate size line unexpected number of entries, expected 3, got %v", ErrDimensions, len(fields))
		}
		if nlines, err = parseSize(fields[2], "nvals"); err != nil {
			return err
		}
	case Array:
		if len(fields) != 2 {
			return fmt.Errorf("%w: array size line unexpected number of entries, expected 2, got %v", ErrDimensions, len(fields))
		}
	}
	if nrows, err = parseSize(fields[0], "nrows"); err != nil {
		return err
	}
	if ncols, err = parseSize(fields[1], "ncols"); err != nil {
		return err
	}
	if banner.Symmetry != General && nrows != ncols {
		return fmt.Errorf("%w: %v matrix must be square, got %v x %v", ErrDimensions, banner.Symmetry, nrows, ncols)
	}
	if banner.Format == Array {
		if ncols != 0 && nrows > math.MaxInt/ncols {
			return fmt.Errorf("%w: array size %v x %v out of range", ErrDimensions, nrows, ncols)
		}
		switch banner.Symmetry {
		case Symmetric, Hermitian:
			nlines = nrows * (nrows + 1) / 2
		case SkewSymmetric:
			if nrows > 0 {
				nlines = nrows * (nrows - 1) / 2
			}
		default:
			nlines = nrows * ncols
		}
	}
	p.nrows, p.ncols, p.nlines = int(nrows), int(ncols), int(nlines)
	return nil
}

func parseSize(s, what string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v parse error %v, while parsing %v", ErrDimensions, what, err, s)
	}
	if v > math.MaxInt {
		return 0, fmt.Errorf("%w: %v out of range %v", ErrDimensions, what, v)
	}
	return v, nil
}
