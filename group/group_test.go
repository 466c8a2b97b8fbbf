package group

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	nkerrors "github.com/randalmurphal/notifykit/errors"
)

type member struct {
	key string
	seq int
}

func counter() func(string) *member {
	n := 0
	return func(k string) *member {
		n++
		return &member{key: k, seq: n}
	}
}

func TestBuild(t *testing.T) {
	g, err := Build([]string{"taskNotifier", "userNotifier"}, counter())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if g.Len() != 2 {
		t.Errorf("Len() = %d, want 2", g.Len())
	}

	task, ok := g.Get("taskNotifier")
	if !ok || task.key != "taskNotifier" {
		t.Errorf("Get(taskNotifier) = %v, %v", task, ok)
	}
	user := g.MustGet("userNotifier")
	if user == task {
		t.Error("members share an instance")
	}

	if _, ok := g.Get("missing"); ok {
		t.Error("Get(missing) ok = true, want false")
	}
}

func TestBuild_Empty(t *testing.T) {
	g, err := Build[string, *member](nil, counter())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if g.Len() != 0 {
		t.Errorf("Len() = %d, want 0", g.Len())
	}
}

func TestBuild_RejectDuplicates(t *testing.T) {
	_, err := Build([]string{"a", "b", "a"}, counter())

	if !errors.Is(err, nkerrors.ErrDuplicateKey) {
		t.Fatalf("Build() error = %v, want ErrDuplicateKey", err)
	}
	if !strings.Contains(err.Error(), "index 2") {
		t.Errorf("error = %q, want index 2", err.Error())
	}
}

func TestBuild_KeepLast(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	g, err := Build([]string{"a", "a"}, counter(),
		WithPolicy(KeepLast),
		WithLogger(logger),
	)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if g.Len() != 1 {
		t.Errorf("Len() = %d, want 1", g.Len())
	}
	if got := g.MustGet("a").seq; got != 2 {
		t.Errorf("a bound to member #%d, want #2 (last occurrence)", got)
	}
	if !strings.Contains(buf.String(), "level=WARN") {
		t.Errorf("expected warning log, got %q", buf.String())
	}
}

func TestGroup_KeysOrder(t *testing.T) {
	g, err := Build([]string{"c", "a", "b", "a"}, counter(), WithPolicy(KeepLast))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := []string{"c", "a", "b"}
	got := g.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// Keys returns a copy.
	got[0] = "mutated"
	if g.Keys()[0] != "c" {
		t.Error("Keys() exposed internal slice")
	}

	var iterated []string
	for k, m := range g.All() {
		if m.key != k {
			t.Errorf("All() yielded %q with member for %q", k, m.key)
		}
		iterated = append(iterated, k)
	}
	if strings.Join(iterated, ",") != "c,a,b" {
		t.Errorf("All() order = %v, want [c a b]", iterated)
	}
}

func TestGroup_MapIsCopy(t *testing.T) {
	g, _ := Build([]string{"a"}, counter())

	m := g.Map()
	delete(m, "a")

	if _, ok := g.Get("a"); !ok {
		t.Error("deleting from Map() changed the group")
	}
}

func TestGroup_MustGetPanics(t *testing.T) {
	g, _ := Build([]string{"a"}, counter())

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MustGet should panic for a missing key")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, nkerrors.ErrChannelNotFound) {
			t.Errorf("panic value = %v, want ErrChannelNotFound", r)
		}
	}()

	g.MustGet("missing")
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    Policy
		wantErr bool
	}{
		{"reject", Reject, false},
		{"", Reject, false},
		{"keep_last", KeepLast, false},
		{"first", Reject, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePolicy(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePolicy() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePolicy() = %v, want %v", got, tt.want)
			}
			if !tt.wantErr && tt.in != "" && got.String() != tt.in {
				t.Errorf("String() = %q, want %q", got.String(), tt.in)
			}
		})
	}
}
