package paths

import "runtime"

// LongPathPrefix lifts the MAX_PATH limit on Windows
const LongPathPrefix = `\\?\`

// Platform identifies the operating system paths are built for
type Platform string

const (
	Windows Platform = "windows"
	Linux   Platform = "linux"
	Darwin  Platform = "darwin"
)

// CurrentPlatform returns the platform the binary runs on
func CurrentPlatform() Platform {
	return Platform(runtime.GOOS)
}

// LongPathLimited reports whether the platform caps path length unless
// paths carry LongPathPrefix
func (p Platform) LongPathLimited() bool {
	return p == Windows
}

// prefixRoot applies the platform's long path prefix to a root directory
func (p Platform) prefixRoot(root string) string {
	if p.LongPathLimited() {
		return LongPathPrefix + root
	}
	return root
}
