package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Record is one decoded log line.
type Record struct {
	Time    time.Time
	Level   string
	Message string
	Route   string
}

// Read returns at most maxLines from the end of the file at path. A missing
// file yields no lines and no error.
func Read(path string, maxLines int) ([]string, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count, next := 0, 0
	for scanner.Scan() {
		ring[next] = scanner.Text()
		next = (next + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	if count < maxLines {
		return append([]string(nil), ring[:count]...), nil
	}
	lines := make([]string, 0, count)
	lines = append(lines, ring[next:]...)
	lines = append(lines, ring[:next]...)
	return lines, nil
}

// ParseLine decodes a zerolog JSON line. Lines that are not JSON objects
// become a message-only record.
func ParseLine(line string) Record {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "{") {
		return Record{Message: trimmed}
	}
	var fields map[string]any
	if err := json.Unmarshal([]byte(trimmed), &fields); err != nil {
		return Record{Message: trimmed}
	}

	rec := Record{
		Level:   stringField(fields, zerolog.LevelFieldName),
		Message: stringField(fields, zerolog.MessageFieldName),
		Route:   stringField(fields, "Route"),
	}
	if ts := stringField(fields, zerolog.TimestampFieldName); ts != "" {
		if parsed, err := time.Parse(time.RFC3339, ts); err == nil {
			rec.Time = parsed
		}
	}
	return rec
}

// ParseLines decodes lines in order, skipping blank ones.
func ParseLines(lines []string) []Record {
	records := make([]Record, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		records = append(records, ParseLine(line))
	}
	return records
}

// Tail reads the last maxLines of path and decodes them.
func Tail(path string, maxLines int) ([]Record, error) {
	lines, err := Read(path, maxLines)
	if err != nil {
		return nil, err
	}
	return ParseLines(lines), nil
}

func stringField(fields map[string]any, key string) string {
	value, ok := fields[key]
	if !ok || value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}
