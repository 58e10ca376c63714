package pipeline

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go-complaint-report/internal/model"

	"github.com/araddon/dateparse"
)

// ------------------- Source -------------------

// OpenSource opens the complaint file: a local path, "-" for stdin, or an http(s) URL
func OpenSource(ctx context.Context, source model.Source) (io.ReadCloser, error) {
	if t := strings.ToLower(source.Type); t != "" && t != "csv" {
		return nil, fmt.Errorf("unknown source type: %s", source.Type)
	}

	switch {
	case source.URL == "":
		return nil, errors.New("source url is empty")
	case source.URL == "-":
		return io.NopCloser(os.Stdin), nil
	case strings.HasPrefix(source.URL, "http://"), strings.HasPrefix(source.URL, "https://"):
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source.URL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to build request: %w", err)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to GET CSV: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("failed to GET CSV: status %s", resp.Status)
		}
		return resp.Body, nil
	default:
		file, err := os.Open(source.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to open CSV file: %w", err)
		}
		return file, nil
	}
}

// ------------------- CSV Parsing -------------------

type column int

const (
	colUnknown column = iota
	colSerial
	colID
	colName
	colPhone
	colZone
	colWard
	colStatus
	colType
	colSubtype
	colRegistered
)

var knownColumns = map[string]column{
	"srno":                    colSerial,
	"serialno":                colSerial,
	"compid":                  colID,
	"complaintid":             colID,
	"name":                    colName,
	"phonenumber":             colPhone,
	"phone":                   colPhone,
	"zone":                    colZone,
	"ward":                    colWard,
	"status":                  colStatus,
	"complainttype":           colType,
	"complaintsubtype":        colSubtype,
	"complaintregistereddate": colRegistered,
	"registereddate":          colRegistered,
}

// normalizeHeader lower-cases a header and drops quotes, spaces, dots and underscores
func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	h = strings.ToLower(strings.TrimSpace(h))
	return strings.NewReplacer(`"`, "", " ", "", "_", "", ".", "", "-", "").Replace(h)
}

// ParseCSV reads a complaint file with a header row. Empty lines are skipped,
// unrecognised columns land in Extra, and registration dates that cannot be
// parsed leave RegisteredAt zero. Any read error fails the whole parse.
func ParseCSV(ctx context.Context, r io.Reader, loc *time.Location) ([]model.ComplaintRecord, error) {
	if loc == nil {
		loc = time.Local
	}

	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoRecords
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	cols := make([]column, len(headers))
	names := make([]string, len(headers))
	for i, h := range headers {
		names[i] = strings.TrimSpace(strings.ReplaceAll(strings.TrimPrefix(h, "\ufeff"), `"`, ""))
		cols[i] = knownColumns[normalizeHeader(h)]
	}

	var records []model.ComplaintRecord
	line := 1
	for {
		if line%500 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("CSV read error at line %d: %w", line, err)
		}
		if blankRow(row) {
			continue
		}
		records = append(records, buildRecord(row, cols, names, loc))
	}
	return records, nil
}

func blankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func buildRecord(row []string, cols []column, names []string, loc *time.Location) model.ComplaintRecord {
	var rec model.ComplaintRecord
	for i, raw := range row {
		if i >= len(cols) {
			break
		}
		v := strings.TrimSpace(raw)
		switch cols[i] {
		case colSerial:
			rec.SerialNo = v
		case colID:
			rec.ID = v
		case colName:
			rec.Name = v
		case colPhone:
			rec.Phone = v
		case colZone:
			rec.Zone = v
		case colWard:
			rec.Ward = v
		case colStatus:
			rec.Status = v
		case colType:
			rec.ComplaintType = v
		case colSubtype:
			rec.Subtype = v
		case colRegistered:
			rec.RegisteredRaw = v
			rec.RegisteredAt = ParseDate(v, loc)
		default:
			if names[i] == "" {
				continue
			}
			if rec.Extra == nil {
				rec.Extra = make(map[string]string)
			}
			rec.Extra[names[i]] = v
		}
	}
	return rec
}

// ParseDate parses a free-text registration date, returning the zero time when it cannot
func ParseDate(s string, loc *time.Location) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	if loc == nil {
		loc = time.Local
	}
	t, err := dateparse.ParseIn(s, loc)
	if err != nil {
		return time.Time{}
	}
	return t
}
