package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

// Entry is one decoded line of the JSON log file.
type Entry struct {
	Time    time.Time
	Level   string
	Message string
	Fields  map[string]string
	Raw     string // set when the line was not JSON
}

// reserved keys are rendered separately and never appear in Fields.
var reserved = map[string]bool{
	"ts": true, "level": true, "msg": true, "caller": true, "stacktrace": true, "logger": true,
}

// Read returns at most maxLines entries from the end of the log at path,
// oldest first. A missing file yields no entries.
func Read(path string, maxLines int) ([]Entry, error) {
	if maxLines <= 0 || strings.TrimSpace(path) == "" {
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
	count := 0
	idx := 0
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		ring[idx] = line
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	entries := make([]Entry, count)
	start := 0
	if count == maxLines {
		start = idx
	}
	for i := 0; i < count; i++ {
		entries[i] = Parse(ring[(start+i)%maxLines])
	}
	return entries, nil
}

// Parse decodes a single zap JSON line. Lines that are not JSON objects come
// back with only Raw set.
func Parse(line string) Entry {
	var obj map[string]any
	if err := json.Unmarshal([]byte(line), &obj); err != nil {
		return Entry{Raw: line}
	}

	e := Entry{
		Level:   stringField(obj["level"]),
		Message: stringField(obj["msg"]),
	}
	if ts := stringField(obj["ts"]); ts != "" {
		if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			e.Time = t
		}
	}
	for k, v := range obj {
		if reserved[k] {
			continue
		}
		if e.Fields == nil {
			e.Fields = make(map[string]string)
		}
		e.Fields[k] = stringField(v)
	}
	return e
}

// FieldKeys returns the entry's field names in sorted order.
func (e Entry) FieldKeys() []string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func stringField(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}
