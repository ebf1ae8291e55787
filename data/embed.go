// Package data holds the sample pattern catalog shipped with the binaries.
package data

import "embed"

// SampleCatalog is the file name of the embedded catalog inside FS
const SampleCatalog = "patterns.json"

//go:embed patterns.json
var FS embed.FS
