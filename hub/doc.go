// Package hub builds and holds named custom-state groups declared in a
// manifest.
//
//	manifest, err := config.LoadManifest("groups.yaml")
//	settings, err := resolved.Settings()
//	h, err := hub.New(manifest, settings)
//
//	ch, err := h.Channel("loaders", "fetcher")
//	ch.Notify(custom.NewMessage[hub.State](hub.State("LOADING"), hub.Payload{"url": u}))
//
// Channels are named "<group>/<key>". Settings decide the duplicate-key
// policy and whether channels enforce their declared states.
package hub
