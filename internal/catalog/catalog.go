package catalog

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/ytget/names72/internal/model"
)

const (
	// DefaultFileName is the resource the application ships its catalog under
	DefaultFileName = "72_names_kabbalah.csv"

	maxLineLength = 1024 * 1024
)

// Catalog is an ordered, immutable set of records keyed by name number.
// The zero value is an empty catalog.
type Catalog struct {
	records  []model.Record
	byNumber map[int]int // number -> index into records
}

// Load reads the named CSV file from fsys. A missing or unreadable file is
// logged and yields an empty catalog.
func Load(ctx context.Context, fsys fs.FS, name string) *Catalog {
	_, span := tracer.Start(ctx, "load catalog")
	defer span.End()
	span.SetAttributes(attribute.String("catalog.file", name))

	f, err := fsys.Open(name)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Error("catalog file not available", "file", name, "error", err)
		return &Catalog{}
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Error("failed to read catalog", "file", name, "error", err)
	}

	span.SetAttributes(attribute.Int("catalog.records", c.Len()))
	logger.Info("catalog loaded", "file", name, "records", c.Len())
	return c
}

// Parse reads a header row followed by data rows, one per line. Rows with
// fewer than model.MinRecordFields columns or a non-numeric number are
// skipped. On a read error the records parsed so far are returned along
// with the error.
func Parse(r io.Reader) (*Catalog, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	c := &Catalog{byNumber: make(map[int]int)}
	header := true
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		if header {
			header = false
			continue
		}

		fields := splitLine(text)
		rec, ok := parseRecord(fields)
		if !ok {
			logger.Debug("skipping catalog row", "line", line, "fields", len(fields))
			continue
		}
		c.add(rec)
	}
	if err := scanner.Err(); err != nil {
		return c, fmt.Errorf("read catalog: %w", err)
	}

	return c, nil
}

// splitLine splits one comma separated line. A double quote toggles quoted
// mode, a doubled quote inside quotes is a literal quote, and each field is
// trimmed of surrounding whitespace after unquoting. An unterminated quote
// runs to the end of the line.
func splitLine(line string) []string {
	var (
		fields []string
		field  strings.Builder
		quoted bool
	)
	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '"' && quoted && i+1 < len(line) && line[i+1] == '"':
			field.WriteByte('"')
			i++
		case ch == '"':
			quoted = !quoted
		case ch == ',' && !quoted:
			fields = append(fields, strings.TrimSpace(field.String()))
			field.Reset()
		default:
			field.WriteByte(ch)
		}
	}
	return append(fields, strings.TrimSpace(field.String()))
}

func parseRecord(fields []string) (model.Record, bool) {
	if len(fields) < model.MinRecordFields {
		return model.Record{}, false
	}
	number, err := strconv.Atoi(fields[0])
	if err != nil {
		return model.Record{}, false
	}

	return model.Record{
		Number:                     number,
		ScriptForm:                 fields[1],
		Transliteration:            fields[2],
		AstrologicalCorrespondence: fields[3],
		Guardian:                   fields[4],
		Keyword:                    fields[5],
		Meaning:                    fields[6],
		PracticalApplication:       fields[7],
		ReflectiveQuestion:         fields[8],
		MeditationPractice:         fields[9],
		ScriptureReference:         fields[10],
		ScriptureText:              fields[11],
	}, true
}

// add keeps the first record seen for a number
func (c *Catalog) add(rec model.Record) {
	if _, dup := c.byNumber[rec.Number]; dup {
		logger.Warn("duplicate catalog number ignored", "number", rec.Number)
		return
	}
	c.byNumber[rec.Number] = len(c.records)
	c.records = append(c.records, rec)
}

// Lookup returns the record for a 0-based sequence position
func (c *Catalog) Lookup(position int) (model.Record, bool) {
	if c == nil || !model.ValidPosition(position) {
		return model.Record{}, false
	}
	i, ok := c.byNumber[model.NumberAt(position)]
	if !ok {
		return model.Record{}, false
	}
	return c.records[i], true
}

// Len returns the number of loaded records
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}

// Records returns a copy of the records in file order
func (c *Catalog) Records() []model.Record {
	if c == nil {
		return nil
	}
	out := make([]model.Record, len(c.records))
	copy(out, c.records)
	return out
}
