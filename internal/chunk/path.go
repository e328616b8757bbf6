package chunk

import (
	"errors"
	"path"
	"strings"
)

// ErrOutsideOutputRoot reports a path that cannot be expressed relative to
// the build's output root. For an origin chunk or a chunk list this is a
// build configuration error; for a sibling chunk it only means the chunk is
// not loadable as a dev-mode dependency.
var ErrOutsideOutputRoot = errors.New("path is outside the output root")

// PathInsideRoot resolves p relative to the output root. All paths are
// forward-slash output paths, not host filesystem paths. The second return
// is false when p does not live under root.
func PathInsideRoot(root, p string) (string, bool) {
	root = cleanOutputPath(root)
	p = cleanOutputPath(p)

	if root == "/" {
		return strings.TrimPrefix(p, "/"), true
	}
	rel, found := strings.CutPrefix(p, root+"/")
	if !found {
		return "", false
	}
	return rel, true
}

// cleanOutputPath normalizes an output path to a rooted, slash-separated,
// dot-free form.
func cleanOutputPath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}
