// Package public embeds the static assets served under /assets.
package public

import (
	"embed"
	"io/fs"
)

//go:embed assets
var files embed.FS

// Assets returns the asset tree rooted at the assets directory.
func Assets() fs.FS {
	sub, err := fs.Sub(files, "assets")
	if err != nil {
		// the directive above guarantees the directory exists
		panic(err)
	}
	return sub
}
