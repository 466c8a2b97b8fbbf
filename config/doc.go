// Package config resolves notifykit settings and loads group manifests.
//
// Settings are resolved from layered sources with clear precedence:
//  1. Flags (highest priority)
//  2. Environment variables (NOTIFYKIT_ prefix)
//  3. Local config (.notifykit.yaml in the working directory)
//  4. Global config (~/.config/notifykit/config.yaml)
//  5. Built-in defaults (lowest priority)
//
// # Basic Usage
//
//	resolved := config.NewResolver(config.DefaultResolverConfig()).Resolve()
//	settings, err := resolved.Settings()
//
//	fmt.Println(resolved.Source(config.KeyDuplicateKeys)) // "default"
//
// # Keys
//
//   - duplicate_keys: "reject" or "keep_last"
//   - strict_states: "true" or "false"
//   - log_level: "debug", "info", "warn" or "error"
//
// # Manifests
//
// A manifest declares named custom-state groups:
//
//	groups:
//	  - name: loaders
//	    keys: [fetcher, uploader]
//	    states: [LOADING, ERROR, COMPLETED]
//
// LoadManifest reads and validates one. Invalid manifests report
// errors.ErrInvalidManifest.
package config
