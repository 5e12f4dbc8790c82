// embed.go declares the embedded data. It must live at the module root,
// next to data/, because //go:embed only reaches the declaring package's
// directory tree.
package main

import "embed"

//go:embed data/scene.yaml
var dataFS embed.FS
