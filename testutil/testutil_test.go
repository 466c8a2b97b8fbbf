package testutil

import (
	"os"
	"sync"
	"testing"
	"time"
)

func TestTempFile(t *testing.T) {
	content := "groups: []\n"
	path := TempFileString(t, "nested/groups.yaml", content)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read temp file: %v", err)
	}

	if string(data) != content {
		t.Errorf("content = %q, want %q", string(data), content)
	}
}

func TestTestContext(t *testing.T) {
	ctx := TestContext(t)

	select {
	case <-ctx.Done():
		t.Error("context is already done")
	default:
	}
}

func TestTestContextWithTimeout(t *testing.T) {
	ctx := TestContextWithTimeout(t, 50*time.Millisecond)

	select {
	case <-ctx.Done():
		t.Error("context is already done")
	default:
	}

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Error("context should be done after timeout")
	}
}

func TestCallLog(t *testing.T) {
	var log CallLog

	log.Record("notify")
	log.Record("success")
	Hook[int](&log, "notify")(42)

	got := log.Calls()
	want := []string{"notify", "success", "notify"}
	if len(got) != len(want) {
		t.Fatalf("Calls() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Calls()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if n := log.Count("notify"); n != 2 {
		t.Errorf("Count(notify) = %d, want 2", n)
	}

	log.Reset()
	if n := len(log.Calls()); n != 0 {
		t.Errorf("len(Calls()) after Reset = %d, want 0", n)
	}
}

func TestCallLog_Concurrent(t *testing.T) {
	var log CallLog
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			log.Record("x")
		}()
	}
	wg.Wait()

	if n := log.Count("x"); n != 50 {
		t.Errorf("Count(x) = %d, want 50", n)
	}
}

func TestNewRecorder(t *testing.T) {
	rec, reader := NewRecorder(t)

	rec.Emitted(TestContext(t), "tasks", "SUCCESS")
	rec.Emitted(TestContext(t), "tasks", "FAILURE")

	got := SumInt64(t, reader, "notifykit.messages.emitted", map[string]string{"channel": "tasks"})
	if got != 2 {
		t.Errorf("emitted = %d, want 2", got)
	}

	got = SumInt64(t, reader, "notifykit.messages.emitted", map[string]string{"status": "SUCCESS"})
	if got != 1 {
		t.Errorf("emitted SUCCESS = %d, want 1", got)
	}
}
