// Package telemetry provides env-gated JSONL event emission for offline
// inspection of agent sessions, plus turn-ID context helpers and small text
// features used to size tool payloads in events.
package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	observeEnv = "REPOAGENT_OBSERVE_JSON"
	eventDir   = ".repo-agent"
	eventFile  = "events.jsonl"
)

// Enabled reports whether JSONL emission is on (REPOAGENT_OBSERVE_JSON=1).
func Enabled() bool {
	return os.Getenv(observeEnv) == "1"
}

// Emit appends a single JSON line to .repo-agent/events.jsonl when enabled.
// It augments fields with an RFC3339Nano timestamp and the event name.
// Emission failures are reported on stderr, never to the caller: observability
// must not break a session.
func Emit(name string, fields map[string]any) {
	if !Enabled() {
		return
	}

	// Shallow copy so the caller's map isn't mutated.
	m := make(map[string]any, len(fields)+2)
	for k, v := range fields {
		m[k] = v
	}
	m["time"] = time.Now().UTC().Format(time.RFC3339Nano)
	m["event"] = name

	b, err := json.Marshal(m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "telemetry: marshal: %v\n", err)
		return
	}

	if err := os.MkdirAll(eventDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "telemetry: mkdir %s: %v\n", eventDir, err)
		return
	}

	path := filepath.Join(eventDir, eventFile)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "telemetry: open %s: %v\n", path, err)
		return
	}
	defer f.Close()

	if _, err := f.Write(append(b, '\n')); err != nil {
		fmt.Fprintf(os.Stderr, "telemetry: write %s: %v\n", path, err)
	}
}
