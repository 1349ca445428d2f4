// Package app provides the orchestration layer for the roverdeck dashboard.
//
// # Overview
//
// This package wires together configuration, preferences, the proxy client,
// the state store, and the UI. It is the composition root: dependencies are
// initialized here and handed to ui.Run, which blocks until the user exits
// or the context cancels.
//
// # Data Flow
//
//	Run()
//	 ├─> config.Load()      proxy address from config.toml
//	 ├─> photos.NewClient() HTTP client for the roverproxy API
//	 ├─> prefs.Load()       theme and last selected rover
//	 ├─> state.NewStore()   snapshot container seeded with the roster
//	 └─> ui.Run()           start the dashboard (blocks)
//
// The dashboard itself owns the fetch lifecycle: a rover selection runs one
// guarded request against the proxy, and a successful response becomes one
// snapshot patch. The app layer holds no state of its own.
//
// # Error Handling
//
// Configuration and client construction failures are fatal and returned
// from Run. Everything after startup is recoverable: fetch failures are
// recorded in the dashboard's status line and the user simply re-triggers
// the selection.
package app
