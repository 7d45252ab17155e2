package log

import (
	"io"
	"path/filepath"
	"testing"
	"time"
)

func createTestLogFile(t *testing.T, events []Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "protocol.slog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create test log: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

func readAll(t *testing.T, r *Reader) []Event {
	t.Helper()
	var events []Event
	for {
		event, err := r.Next()
		if err == io.EOF {
			return events
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		events = append(events, event)
	}
}

func TestReaderIteratesEvents(t *testing.T) {
	events := []Event{
		{Timestamp: time.Now(), ExecutionID: "exec-1", Category: CategorySubmit, BoxID: "box-1"},
		{Timestamp: time.Now(), ExecutionID: "exec-1", Category: CategoryPoll, BoxID: "box-1"},
		{Timestamp: time.Now(), ExecutionID: "exec-1", Category: CategoryOutcome, BoxID: "box-1"},
	}

	reader, err := NewReader(createTestLogFile(t, events))
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	read := readAll(t, reader)
	if len(read) != 3 {
		t.Fatalf("got %d events, want 3", len(read))
	}
	if read[0].Category != CategorySubmit {
		t.Errorf("first event category = %v, want %v", read[0].Category, CategorySubmit)
	}
	if read[2].Category != CategoryOutcome {
		t.Errorf("last event category = %v, want %v", read[2].Category, CategoryOutcome)
	}
}

func TestReaderHandlesEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.slog")
	logger, _ := NewFileLogger(path)
	logger.Close()

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	event, err := reader.Next()
	if err != io.EOF {
		t.Errorf("expected io.EOF, got err=%v, event=%+v", err, event)
	}
}

func TestReaderFilterByExecutionID(t *testing.T) {
	events := []Event{
		{Timestamp: time.Now(), ExecutionID: "exec-1", Category: CategorySubmit},
		{Timestamp: time.Now(), ExecutionID: "exec-2", Category: CategorySubmit},
		{Timestamp: time.Now(), ExecutionID: "exec-1", Category: CategoryOutcome},
	}

	reader, err := NewFilteredReader(createTestLogFile(t, events), Filter{ExecutionID: "exec-1"})
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer reader.Close()

	read := readAll(t, reader)
	if len(read) != 2 {
		t.Fatalf("got %d events, want 2", len(read))
	}
	for _, e := range read {
		if e.ExecutionID != "exec-1" {
			t.Errorf("ExecutionID = %q, want %q", e.ExecutionID, "exec-1")
		}
	}
}

func TestReaderFilterByCategory(t *testing.T) {
	events := []Event{
		{Timestamp: time.Now(), ExecutionID: "exec-1", Category: CategorySubmit},
		{Timestamp: time.Now(), ExecutionID: "exec-1", Category: CategoryPoll},
		{Timestamp: time.Now(), ExecutionID: "exec-1", Category: CategoryPoll},
		{Timestamp: time.Now(), ExecutionID: "exec-1", Category: CategoryOutcome},
	}

	cat := CategoryPoll
	reader, err := NewFilteredReader(createTestLogFile(t, events), Filter{Category: &cat})
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer reader.Close()

	read := readAll(t, reader)
	if len(read) != 2 {
		t.Fatalf("got %d events, want 2", len(read))
	}
}

func TestReaderFilterByBoxAndDevice(t *testing.T) {
	events := []Event{
		{Timestamp: time.Now(), ExecutionID: "a", Category: CategorySubmit, BoxID: "box-1", DeviceID: "dev-1"},
		{Timestamp: time.Now(), ExecutionID: "b", Category: CategorySubmit, BoxID: "box-2", DeviceID: "dev-1"},
		{Timestamp: time.Now(), ExecutionID: "c", Category: CategorySubmit, BoxID: "box-1", DeviceID: "dev-2"},
	}

	reader, err := NewFilteredReader(createTestLogFile(t, events), Filter{BoxID: "box-1", DeviceID: "dev-1"})
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer reader.Close()

	read := readAll(t, reader)
	if len(read) != 1 || read[0].ExecutionID != "a" {
		t.Fatalf("got %d events (%+v), want exactly event a", len(read), read)
	}
}

func TestReaderFilterByTimeRange(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	events := []Event{
		{Timestamp: base, ExecutionID: "early", Category: CategorySubmit},
		{Timestamp: base.Add(time.Minute), ExecutionID: "mid", Category: CategorySubmit},
		{Timestamp: base.Add(2 * time.Minute), ExecutionID: "late", Category: CategorySubmit},
	}

	start := base.Add(30 * time.Second)
	end := base.Add(90 * time.Second)
	reader, err := NewFilteredReader(createTestLogFile(t, events), Filter{TimeStart: &start, TimeEnd: &end})
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer reader.Close()

	read := readAll(t, reader)
	if len(read) != 1 || read[0].ExecutionID != "mid" {
		t.Fatalf("got %d events (%+v), want exactly event mid", len(read), read)
	}
}
