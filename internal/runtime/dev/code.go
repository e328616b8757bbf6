package dev

import (
	"fmt"
	"sync"

	"github.com/chunk-team/chunkforge/internal/chunk"
	"github.com/chunk-team/chunkforge/internal/code"
)

// Code returns the dev runtime bootstrap code for this runtime's loading
// strategy. The blob is a pure function of the strategy and carries no
// chunk-specific data, which is what lets every chunk embed a byte-identical
// copy.
func (r *Runtime) Code() (*code.Code, error) {
	return assembledCode(r.ctx.ChunkLoading())
}

var codeMemo sync.Map // chunk.Loading -> *code.Code

// assembledCode builds the guarded runtime block for a strategy, memoized
// per process since the result never varies.
func assembledCode(loading chunk.Loading) (*code.Code, error) {
	if cached, ok := codeMemo.Load(loading); ok {
		return cached.(*code.Code), nil
	}

	assembled, err := assembleCode(loading)
	if err != nil {
		return nil, err
	}
	codeMemo.Store(loading, assembled)
	return assembled, nil
}

func assembleCode(loading chunk.Loading) (*code.Code, error) {
	b := code.NewBuilder()

	// When a chunk executes it either registers itself with the live
	// runtime, or pushes itself onto the pending array. The first runtime
	// copy to run replaces the array with itself; later copies see the
	// array is gone and skip initialization.
	b.PushString(`(() => {
if (!Array.isArray(globalThis.CHUNKFORGE)) {
  return;
}
`)

	strategy, err := strategyFragment(loading)
	if err != nil {
		return nil, err
	}
	b.Push(strategy)

	shared, err := fragment(sharedFragmentName)
	if err != nil {
		return nil, err
	}
	b.Push(shared)

	b.PushString(`})();
`)

	return b.Build(), nil
}

func strategyFragment(loading chunk.Loading) ([]byte, error) {
	switch loading {
	case chunk.LoadingNone:
		return fragment("runtime.none.js")
	case chunk.LoadingNodeJS:
		return fragment("runtime.nodejs.js")
	case chunk.LoadingDOM:
		return fragment("runtime.dom.js")
	}
	return nil, fmt.Errorf("no runtime fragment for loading strategy %s", loading)
}
