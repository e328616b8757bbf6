package dev

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
)

// The runtime fragments are baked into the binary so code generation never
// touches the filesystem. A missing or empty fragment means the tool itself
// was built incorrectly.

//go:embed js
var runtimeFS embed.FS

const sharedFragmentName = "runtime.js"

// ErrRuntimeResourceMissing reports an absent or empty embedded runtime
// fragment. Fatal and not retried.
var ErrRuntimeResourceMissing = errors.New("embedded runtime resource missing")

func fragment(name string) ([]byte, error) {
	content, err := runtimeFS.ReadFile("js/" + name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, ErrRuntimeResourceMissing)
	}
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, fmt.Errorf("%s is empty: %w", name, ErrRuntimeResourceMissing)
	}
	return content, nil
}
