package hub_test

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/notifykit/config"
	"github.com/randalmurphal/notifykit/custom"
	nkerrors "github.com/randalmurphal/notifykit/errors"
	"github.com/randalmurphal/notifykit/group"
	"github.com/randalmurphal/notifykit/hub"
	"github.com/randalmurphal/notifykit/sink"
	"github.com/randalmurphal/notifykit/testutil"
)

const manifestYAML = `
groups:
  - name: loaders
    keys: [fetcher, uploader]
    states: [LOADING, ERROR, COMPLETED]
  - name: jobs
    keys: [nightly]
    states: [QUEUED, DONE]
`

func newHub(t *testing.T, settings config.Settings, opts ...hub.Option) *hub.Hub {
	t.Helper()

	m, err := config.ParseManifest([]byte(manifestYAML))
	require.NoError(t, err)

	opts = append([]hub.Option{hub.WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))}, opts...)
	h, err := hub.New(m, settings, opts...)
	require.NoError(t, err)
	return h
}

func TestNew_BuildsGroups(t *testing.T) {
	h := newHub(t, config.DefaultSettings())

	assert.Equal(t, []string{"loaders", "jobs"}, h.Names())

	loaders, err := h.Group("loaders")
	require.NoError(t, err)
	assert.Equal(t, []string{"fetcher", "uploader"}, loaders.Keys())

	ch, err := h.Channel("loaders", "fetcher")
	require.NoError(t, err)
	assert.Equal(t, "loaders/fetcher", ch.Name())
	assert.False(t, ch.Strict())
}

func TestHub_Dispatch(t *testing.T) {
	h := newHub(t, config.DefaultSettings())

	fetcher, err := h.Channel("loaders", "fetcher")
	require.NoError(t, err)
	uploader, err := h.Channel("loaders", "uploader")
	require.NoError(t, err)

	var log testutil.CallLog
	fetcher.Subscribe(custom.Callbacks[hub.State, hub.Payload]{
		Notify: func(hub.Message) { log.Record("fetcher:notify") },
		On: map[hub.State]custom.Handler[hub.State, hub.Payload]{
			"LOADING": func(m hub.Message) { log.Record("fetcher:" + m.Data["url"].(string)) },
		},
	})
	uploader.Subscribe(custom.Callbacks[hub.State, hub.Payload]{
		Notify: func(hub.Message) { log.Record("uploader:notify") },
	})

	fetcher.Notify(custom.NewMessage[hub.State](hub.State("LOADING"), hub.Payload{"url": "x"}))

	assert.Equal(t, []string{"fetcher:notify", "fetcher:x"}, log.Calls())
}

func TestHub_StrictStates(t *testing.T) {
	settings := config.DefaultSettings()
	settings.StrictStates = true
	h := newHub(t, settings)

	ch, err := h.Channel("jobs", "nightly")
	require.NoError(t, err)
	require.True(t, ch.Strict())
	assert.Equal(t, []hub.State{"QUEUED", "DONE"}, ch.States())

	var log testutil.CallLog
	ch.Subscribe(custom.Callbacks[hub.State, hub.Payload]{
		Notify: func(m hub.Message) { log.Record(string(m.Status)) },
	})

	ch.Notify(custom.NewMessage[hub.State](hub.State("LOADING"), hub.Payload{}))
	ch.Notify(custom.NewMessage[hub.State](hub.State("DONE"), hub.Payload{}))

	assert.Equal(t, []string{"DONE"}, log.Calls())
	assert.ErrorIs(t, ch.Validate("LOADING"), nkerrors.ErrUndeclaredStatus)
}

func TestHub_DuplicateKeyPolicy(t *testing.T) {
	m, err := config.ParseManifest([]byte("groups:\n  - name: g\n    keys: [a, a]\n    states: [S]\n"))
	require.NoError(t, err)

	_, err = hub.New(m, config.DefaultSettings())
	assert.True(t, nkerrors.IsDuplicateKey(err))

	settings := config.DefaultSettings()
	settings.DuplicateKeys = group.KeepLast
	var buf bytes.Buffer
	h, err := hub.New(m, settings, hub.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
	require.NoError(t, err)

	g, err := h.Group("g")
	require.NoError(t, err)
	assert.Equal(t, 1, g.Len())
	assert.Contains(t, buf.String(), "duplicate group key")
}

func TestNew_FromResolvedSettings(t *testing.T) {
	for _, key := range config.Keys() {
		t.Setenv(config.EnvPrefix+strings.ToUpper(key), "")
	}

	local := testutil.TempFileString(t, ".notifykit.yaml",
		"duplicate_keys: keep_last\nstrict_states: true\nlog_level: debug\n")
	manifestPath := testutil.TempFileString(t, "groups.yaml",
		"groups:\n  - name: workers\n    keys: [w1, w1, w2]\n    states: [BUSY, FREE]\n")

	rc := config.DefaultResolverConfig()
	rc.GlobalConfigDir = ""
	rc.LocalDir = filepath.Dir(local)

	settings, err := config.NewResolver(rc).Resolve().Settings()
	require.NoError(t, err)
	assert.Equal(t, group.KeepLast, settings.DuplicateKeys)
	assert.True(t, settings.StrictStates)
	assert.Equal(t, slog.LevelDebug, settings.Level())

	m, err := config.LoadManifest(manifestPath)
	require.NoError(t, err)

	var buf bytes.Buffer
	h, err := hub.New(m, settings, hub.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
	require.NoError(t, err)

	workers, err := h.Group("workers")
	require.NoError(t, err)
	assert.Equal(t, []string{"w1", "w2"}, workers.Keys())

	ch, err := h.Channel("workers", "w1")
	require.NoError(t, err)
	assert.True(t, ch.Strict())

	var log testutil.CallLog
	ch.Subscribe(custom.Callbacks[hub.State, hub.Payload]{
		Notify: func(m hub.Message) { log.Record(string(m.Status)) },
	})
	ch.Notify(custom.NewMessage[hub.State, hub.Payload]("GONE", nil))
	ch.Notify(custom.NewMessage[hub.State, hub.Payload]("BUSY", nil))
	assert.Equal(t, []string{"BUSY"}, log.Calls())
}

func TestHub_NotFound(t *testing.T) {
	h := newHub(t, config.DefaultSettings())

	_, err := h.Group("missing")
	require.ErrorIs(t, err, nkerrors.ErrGroupNotFound)
	assert.True(t, nkerrors.IsNotFound(err))

	_, err = h.Channel("missing", "fetcher")
	require.ErrorIs(t, err, nkerrors.ErrGroupNotFound)

	_, err = h.Channel("loaders", "missing")
	require.ErrorIs(t, err, nkerrors.ErrChannelNotFound)
	assert.Contains(t, err.Error(), "loaders/missing")
}

func TestNew_InvalidManifest(t *testing.T) {
	_, err := hub.New(nil, config.DefaultSettings())
	assert.ErrorIs(t, err, nkerrors.ErrInvalidManifest)
	assert.EqualError(t, err, "manifest is nil")

	_, err = hub.New(&config.Manifest{}, config.DefaultSettings())
	assert.ErrorIs(t, err, nkerrors.ErrInvalidManifest)
}

func TestHub_Forward(t *testing.T) {
	h := newHub(t, config.DefaultSettings())

	var events []sink.Event
	release := h.Forward(context.Background(), sink.Func(func(_ context.Context, e sink.Event) error {
		events = append(events, e)
		return nil
	}), map[hub.State]string{"ERROR": sink.SeverityError})

	fetcher, err := h.Channel("loaders", "fetcher")
	require.NoError(t, err)
	nightly, err := h.Channel("jobs", "nightly")
	require.NoError(t, err)

	fetcher.Notify(custom.NewMessage[hub.State](hub.State("ERROR"), hub.Payload{"code": 500}))
	nightly.Notify(custom.NewMessage[hub.State](hub.State("DONE"), hub.Payload{}))

	require.Len(t, events, 2)
	assert.Equal(t, "loaders/fetcher", events[0].Channel)
	assert.Equal(t, sink.SeverityError, events[0].Severity)
	assert.Equal(t, "jobs/nightly", events[1].Channel)
	assert.Equal(t, sink.SeverityInfo, events[1].Severity)

	release()
	assert.Equal(t, 0, fetcher.Subscribers())
	assert.Equal(t, 0, nightly.Subscribers())
}

func TestHub_Recorder(t *testing.T) {
	rec, reader := testutil.NewRecorder(t)
	h := newHub(t, config.DefaultSettings(), hub.WithRecorder(rec))

	ch, err := h.Channel("loaders", "uploader")
	require.NoError(t, err)
	ch.Notify(custom.NewMessage[hub.State](hub.State("COMPLETED"), hub.Payload{}))

	assert.Equal(t, int64(1), testutil.SumInt64(t, reader, "notifykit.messages.emitted",
		map[string]string{"channel": "loaders/uploader", "status": "COMPLETED"}))
}
