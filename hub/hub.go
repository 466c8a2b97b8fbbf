package hub

import (
	"context"
	"log/slog"
	"os"

	"github.com/randalmurphal/notifykit/broadcast"
	"github.com/randalmurphal/notifykit/config"
	"github.com/randalmurphal/notifykit/custom"
	nkerrors "github.com/randalmurphal/notifykit/errors"
	"github.com/randalmurphal/notifykit/group"
	"github.com/randalmurphal/notifykit/sink"
	"github.com/randalmurphal/notifykit/telemetry"
)

// State is a status declared in a manifest.
type State string

// Payload is the open field set carried by hub messages.
type Payload = map[string]any

// Message is a message on a hub channel.
type Message = custom.Message[State, Payload]

// Channel is one member of a hub group.
type Channel = custom.Channel[State, Payload]

// Group is a hub group keyed by member name.
type Group = group.Group[string, *Channel]

// Option configures a Hub.
type Option func(*Hub)

// WithLogger sets the logger shared by every channel. If not set, the hub
// logs to stderr at the configured log level.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Hub) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithRecorder attaches a telemetry recorder to every channel.
func WithRecorder(rec *telemetry.Recorder) Option {
	return func(h *Hub) {
		h.recorder = rec
	}
}

// Hub holds the groups of one manifest.
type Hub struct {
	logger   *slog.Logger
	recorder *telemetry.Recorder
	names    []string
	groups   map[string]Group
}

// New builds every group in manifest.
func New(manifest *config.Manifest, settings config.Settings, opts ...Option) (*Hub, error) {
	if manifest == nil {
		return nil, &nkerrors.Error{Err: nkerrors.ErrInvalidManifest, Message: "manifest is nil"}
	}
	if err := manifest.Validate(); err != nil {
		return nil, nkerrors.WrapManifestError(err, "<hub>")
	}

	h := &Hub{
		names:  manifest.Names(),
		groups: make(map[string]Group, len(manifest.Groups)),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.logger == nil {
		h.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: settings.Level()}))
	}

	for _, spec := range manifest.Groups {
		g, err := h.build(spec, settings)
		if err != nil {
			return nil, err
		}
		h.groups[spec.Name] = g
		h.logger.Debug("group built",
			"group", spec.Name,
			"channels", g.Len(),
			"strict", settings.StrictStates,
		)
	}

	return h, nil
}

func (h *Hub) build(spec config.GroupSpec, settings config.Settings) (Group, error) {
	states := make([]State, len(spec.States))
	for i, s := range spec.States {
		states[i] = State(s)
	}

	var extra []custom.Option
	if settings.StrictStates {
		extra = append(extra, custom.WithStrictStates())
	}

	return group.Build(spec.Keys, func(key string) *Channel {
		opts := append([]custom.Option{custom.WithBroadcast(
			broadcast.WithName(spec.Name+"/"+key),
			broadcast.WithLogger(h.logger),
			broadcast.WithRecorder(h.recorder),
		)}, extra...)
		return custom.New[State, Payload](states, opts...)
	},
		group.WithPolicy(settings.DuplicateKeys),
		group.WithLogger(h.logger),
	)
}

// Names returns the group names in manifest order.
func (h *Hub) Names() []string {
	return append([]string(nil), h.names...)
}

// Group returns the group registered under name.
func (h *Hub) Group(name string) (Group, error) {
	g, ok := h.groups[name]
	if !ok {
		return Group{}, nkerrors.NewNotFoundError(nkerrors.ErrGroupNotFound, name)
	}
	return g, nil
}

// Channel returns the member key of group name.
func (h *Hub) Channel(name, key string) (*Channel, error) {
	g, err := h.Group(name)
	if err != nil {
		return nil, err
	}
	ch, ok := g.Get(key)
	if !ok {
		return nil, nkerrors.NewNotFoundError(nkerrors.ErrChannelNotFound, name+"/"+key)
	}
	return ch, nil
}

// Forward subscribes s to every channel in the hub and returns a function
// that releases all of those subscriptions.
func (h *Hub) Forward(ctx context.Context, s sink.Sink, severity map[State]string) (release func()) {
	var subs []*broadcast.Subscription[Message]
	for _, name := range h.names {
		for _, ch := range h.groups[name].All() {
			subs = append(subs, custom.Forward(ctx, ch, s, severity))
		}
	}

	return func() {
		for _, sub := range subs {
			sub.Unsubscribe()
		}
	}
}
