package knobs

import _ "embed"

// Version is the release version of knobs, read from the VERSION file.
//
//go:embed VERSION
var Version string
