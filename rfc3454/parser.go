package rfc3454

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// Appendix holds the tables parsed out of the RFC 3454 text. Range tables
// and map tables are keyed by their table names ("A.1", "C.2.2", ...).
type Appendix struct {
	RangeTables map[string]Table
	MapTables   map[string]MapTable
}

var (
	reTableStart = regexp.MustCompile(`^-{5} Start Table ([A-D]\.[0-9](?:\.[0-9])?) -{5}$`)
	reTableEnd   = regexp.MustCompile(`^-{5} End Table ([A-D]\.[0-9](?:\.[0-9])?) -{5}$`)
	reRange      = regexp.MustCompile(`^([0-9A-F]{4,6})(?:-([0-9A-F]{4,6}))?$`)
)

// ParseAppendix parses the table sections of the RFC 3454 text. Each table
// lies between `----- Start Table X -----` and `----- End Table X -----`
// markers. A table line is either a code point range (`0234-024F`, single
// code points written without the upper bound) or a mapping
// (`0041; 0061; Case map`) whose second field holds the space-separated
// replacement sequence, possibly empty.
//
// Everything outside table sections, including the RFC page furniture, is
// skipped.
func ParseAppendix(r io.Reader) (*Appendix, error) {
	app := &Appendix{
		RangeTables: map[string]Table{},
		MapTables:   map[string]MapTable{},
	}

	var name string
	s := bufio.NewScanner(r)
	row := 0
	for s.Scan() {
		row++
		line := strings.TrimSpace(s.Text())
		if name == "" {
			if m := reTableStart.FindStringSubmatch(line); m != nil {
				name = m[1]
			}
			continue
		}
		if m := reTableEnd.FindStringSubmatch(line); m != nil {
			if m[1] != name {
				return nil, fmt.Errorf("row %v: table %v ends inside table %v", row, m[1], name)
			}
			name = ""
			continue
		}
		if line == "" {
			continue
		}
		// A mapping line has three fields (`0041; 0061; Case map`); a
		// range line has at most a trailing comment
		// (`0080-009F; [CONTROL CHARACTERS]`).
		if fields := strings.Split(line, ";"); len(fields) >= 3 {
			e, err := parseMapLine(fields)
			if err != nil {
				return nil, fmt.Errorf("row %v: %w", row, err)
			}
			app.MapTables[name] = append(app.MapTables[name], e)
		} else {
			cp, err := parseRangeLine(strings.TrimSpace(fields[0]))
			if err != nil {
				return nil, fmt.Errorf("row %v: %w", row, err)
			}
			app.RangeTables[name] = appendRange(app.RangeTables[name], cp)
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if name != "" {
		return nil, fmt.Errorf("table %v is not terminated", name)
	}

	return app, nil
}

func parseRangeLine(line string) (CodePointRange, error) {
	m := reRange.FindStringSubmatch(line)
	if m == nil {
		return CodePointRange{}, fmt.Errorf("malformed code point range: %v", line)
	}
	from, err := decodeHexToRune(m[1])
	if err != nil {
		return CodePointRange{}, err
	}
	to := from
	if m[2] != "" {
		to, err = decodeHexToRune(m[2])
		if err != nil {
			return CodePointRange{}, err
		}
	}
	if from > to {
		return CodePointRange{}, fmt.Errorf("code point range must be from <= to: %v", line)
	}
	return CodePointRange{From: from, To: to}, nil
}

func parseMapLine(fields []string) (MapEntry, error) {
	from, err := decodeHexToRune(strings.TrimSpace(fields[0]))
	if err != nil {
		return MapEntry{}, err
	}
	var to strings.Builder
	for _, f := range strings.Fields(fields[1]) {
		c, err := decodeHexToRune(f)
		if err != nil {
			return MapEntry{}, err
		}
		to.WriteRune(c)
	}
	return MapEntry{From: from, To: to.String()}, nil
}

// appendRange merges cp into rs, coalescing it with the last range when the
// two are adjacent. The RFC lists ranges in ascending order, so appending
// keeps the table sorted.
func appendRange(rs Table, cp CodePointRange) Table {
	if len(rs) > 0 {
		last := &rs[len(rs)-1]
		if cp.From-last.To == 1 {
			last.To = cp.To
			return rs
		}
	}
	return append(rs, cp)
}

func decodeHexToRune(hexCodePoint string) (rune, error) {
	n, err := strconv.ParseUint(hexCodePoint, 16, 32)
	if err != nil {
		return 0, err
	}
	if n > CodePointMax {
		return 0, fmt.Errorf("code point must be <=U+10FFFF: %v", hexCodePoint)
	}
	return rune(n), nil
}
