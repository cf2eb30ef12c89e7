package storage

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
)

// Format selects the file encoding.
type Format int

const (
	FormatCSV Format = iota
	FormatJSON
	FormatText // whitespace separated, one row per line
)

var formatNames = map[Format]string{
	FormatCSV:  "csv",
	FormatJSON: "json",
	FormatText: "text",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat resolves a format name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "text", "txt":
		return FormatText, nil
	}
	return 0, fmt.Errorf("unknown array format %q (csv, json or text)", name)
}

// FormatFromPath picks the format from the file extension; unknown
// extensions are CSV.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".txt", ".dat", ".oa":
		return FormatText
	}
	return FormatCSV
}

// Encode writes rec in format f.
func Encode(w io.Writer, rec *Record, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	case FormatCSV, FormatText:
		bw := bufio.NewWriter(w)
		writeHeader(bw, rec)
		if f == FormatCSV {
			if err := writeCSV(bw, rec.Data); err != nil {
				return err
			}
		} else {
			writeText(bw, rec.Data)
		}
		return bw.Flush()
	}
	return fmt.Errorf("unknown array format %s", f)
}

// Decode reads a record in format f. Text and CSV files may omit the
// header, in which case levels and dimensions are inferred.
func Decode(r io.Reader, f Format) (*Record, error) {
	switch f {
	case FormatJSON:
		var rec Record
		if err := json.NewDecoder(r).Decode(&rec); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedArray, err)
		}
		return &rec, nil
	case FormatCSV, FormatText:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		rec, body, err := readHeader(data)
		if err != nil {
			return nil, err
		}
		if f == FormatCSV {
			rec.Data, err = readCSV(body)
		} else {
			rec.Data, err = readText(body)
		}
		if err != nil {
			return nil, err
		}
		return rec, nil
	}
	return nil, fmt.Errorf("unknown array format %s", f)
}

// header lines look like "# key: value"
func writeHeader(w *bufio.Writer, rec *Record) {
	field := func(key string, v int) {
		if v != 0 {
			fmt.Fprintf(w, "# %s: %d\n", key, v)
		}
	}
	if rec.Family != "" {
		fmt.Fprintf(w, "# family: %s\n", rec.Family)
	}
	field("levels", rec.Levels)
	field("rows", rec.Rows)
	field("cols", rec.Cols)
	field("strength", rec.Strength)
	field("lambda", rec.Lambda)
	field("exponent", rec.Exponent)
	for _, msg := range rec.Warnings {
		fmt.Fprintf(w, "# warning: %s\n", msg)
	}
	if rec.Digest != "" {
		fmt.Fprintf(w, "# digest: %s\n", rec.Digest)
	}
}

func readHeader(data []byte) (*Record, []byte, error) {
	rec := &Record{}
	for len(data) > 0 && data[0] == '#' {
		line := data
		rest := []byte(nil)
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line, rest = data[:i], data[i+1:]
		}
		data = rest

		key, value, ok := strings.Cut(strings.TrimSpace(strings.TrimPrefix(string(line), "#")), ":")
		if !ok {
			continue
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)

		var dst *int
		switch key {
		case "family":
			rec.Family = value
		case "warning":
			rec.Warnings = append(rec.Warnings, value)
		case "digest":
			rec.Digest = value
		case "levels":
			dst = &rec.Levels
		case "rows":
			dst = &rec.Rows
		case "cols":
			dst = &rec.Cols
		case "strength":
			dst = &rec.Strength
		case "lambda":
			dst = &rec.Lambda
		case "exponent":
			dst = &rec.Exponent
		}
		if dst != nil {
			v, err := strconv.Atoi(value)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: header %s: %v", ErrMalformedArray, key, err)
			}
			*dst = v
		}
	}
	return rec, data, nil
}

func writeCSV(w io.Writer, rows [][]int) error {
	cw := csv.NewWriter(w)
	record := []string(nil)
	for _, row := range rows {
		record = record[:0]
		for _, v := range row {
			record = append(record, strconv.Itoa(v))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func readCSV(body []byte) ([][]int, error) {
	cr := csv.NewReader(bytes.NewReader(body))
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var rows [][]int
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedArray, err)
		}
		row, err := parseRow(record, len(rows))
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func writeText(w *bufio.Writer, rows [][]int) {
	for _, row := range rows {
		for j, v := range row {
			if j > 0 {
				w.WriteByte(' ')
			}
			w.WriteString(strconv.Itoa(v))
		}
		w.WriteByte('\n')
	}
}

func readText(body []byte) ([][]int, error) {
	var rows [][]int
	sc := bufio.NewScanner(bytes.NewReader(body))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		row, err := parseRow(strings.Fields(line), len(rows))
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedArray, err)
	}
	return rows, nil
}

func parseRow(fields []string, r int) ([]int, error) {
	row := make([]int, len(fields))
	for j, s := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d column %d: %q is not an integer", ErrMalformedArray, r, j, s)
		}
		row[j] = v
	}
	return row, nil
}
