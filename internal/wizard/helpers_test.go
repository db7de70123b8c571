package wizard

import (
	"errors"
	"testing"

	"github.com/muurk/netscen/internal/scenario"
	"github.com/muurk/netscen/internal/storage"
)

const testKey = "networkScenarioData"

// recordingNotifier keeps every toast.
type recordingNotifier struct {
	messages []string
}

func (r *recordingNotifier) Success(msg string) {
	r.messages = append(r.messages, msg)
}

// countingKV wraps a MemoryKV and counts writes.
type countingKV struct {
	*storage.MemoryKV
	sets    int
	removes int
}

func newCountingKV() *countingKV {
	return &countingKV{MemoryKV: storage.NewMemoryKV()}
}

func (c *countingKV) Set(key, value string) error {
	c.sets++
	return c.MemoryKV.Set(key, value)
}

func (c *countingKV) Remove(key string) error {
	c.removes++
	return c.MemoryKV.Remove(key)
}

// failingKV rejects every write, like a full or read-only store.
type failingKV struct {
	storage.MemoryKV
}

var errStoreFull = errors.New("quota exceeded")

func (f *failingKV) Set(string, string) error { return errStoreFull }
func (f *failingKV) Remove(string) error      { return errStoreFull }

func newTestSession(t *testing.T) (*Session, *countingKV, *recordingNotifier) {
	t.Helper()
	kv := newCountingKV()
	n := &recordingNotifier{}
	return NewSession(kv, testKey, n), kv, n
}

// storedDocument decodes the record currently held by kv.
func storedDocument(t *testing.T, kv storage.KV) scenario.Document {
	t.Helper()
	raw, ok, err := kv.Get(testKey)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok {
		t.Fatal("no record stored")
	}
	doc, _, err := scenario.Decode([]byte(raw))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	return doc
}
