package pipeline

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"go-complaint-report/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = "\ufeffSr No,Comp ID,Name,Phone Number,Zone,Ward,Status,Complaint Type,Complaint Subtype,Complaint Registered Date,Remarks\n" +
	"1,C-100,Chandraveer Singh,9999999999,Mathura,02-Ambedkar Nagar,Open,Sanitation,Burning of Garbage,2024-05-18 10:00:00,smoke\n" +
	",,,,,,,,,,\n" +
	"\n" +
	"2,C-101,Vishal,8888888888,Mathura,02-Ambedkar Nagar,Close,Civil,Potholes,not a date,\n"

func TestParseCSV(t *testing.T) {
	records, err := ParseCSV(context.Background(), strings.NewReader(sampleCSV), time.UTC)
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "1", first.SerialNo)
	assert.Equal(t, "C-100", first.ID)
	assert.Equal(t, "Chandraveer Singh", first.Name)
	assert.Equal(t, "9999999999", first.Phone)
	assert.Equal(t, "Mathura", first.Zone)
	assert.Equal(t, "02-Ambedkar Nagar", first.Ward)
	assert.Equal(t, "Open", first.Status)
	assert.Equal(t, "Sanitation", first.ComplaintType)
	assert.Equal(t, "Burning of Garbage", first.Subtype)
	assert.Equal(t, time.Date(2024, 5, 18, 10, 0, 0, 0, time.UTC), first.RegisteredAt)
	assert.Equal(t, map[string]string{"Remarks": "smoke"}, first.Extra)

	second := records[1]
	assert.Equal(t, "not a date", second.RegisteredRaw)
	assert.False(t, second.HasDate())
}

func TestParseCSVEmpty(t *testing.T) {
	_, err := ParseCSV(context.Background(), strings.NewReader(""), time.UTC)
	assert.ErrorIs(t, err, ErrNoRecords)
}

func TestParseCSVHeaderOnly(t *testing.T) {
	records, err := ParseCSV(context.Background(), strings.NewReader("Zone,Ward\n"), time.UTC)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParseCSVReadError(t *testing.T) {
	boom := errors.New("connection reset")
	r := io.MultiReader(strings.NewReader("Zone,Ward\nMathura,02-Ambedkar Nagar\n"), iotest.ErrReader(boom))

	records, err := ParseCSV(context.Background(), r, time.UTC)
	assert.Nil(t, records)
	assert.ErrorContains(t, err, "connection reset")
}

func TestParseCSVCancelled(t *testing.T) {
	var b strings.Builder
	b.WriteString("Zone,Ward\n")
	for i := 0; i < 1000; i++ {
		b.WriteString("Mathura,02-Ambedkar Nagar\n")
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ParseCSV(ctx, strings.NewReader(b.String()), time.UTC)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseDate(t *testing.T) {
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), ParseDate("2024-05-01", time.UTC))
	assert.True(t, ParseDate("", time.UTC).IsZero())
	assert.True(t, ParseDate("yesterday-ish", time.UTC).IsZero())
}

func TestOpenSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "complaints.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	rc, err := OpenSource(context.Background(), model.Source{Type: "csv", URL: path})
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, sampleCSV, string(data))

	_, err = OpenSource(context.Background(), model.Source{Type: "parquet", URL: path})
	assert.ErrorContains(t, err, "unknown source type")

	_, err = OpenSource(context.Background(), model.Source{URL: filepath.Join(t.TempDir(), "missing.csv")})
	assert.ErrorContains(t, err, "failed to open CSV file")

	_, err = OpenSource(context.Background(), model.Source{})
	assert.Error(t, err)
}
