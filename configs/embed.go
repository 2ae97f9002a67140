package configs

import "embed"

// ExampleBundle is the file name of the sample briefing bundle.
const ExampleBundle = "example.yaml"

//go:embed example.yaml
var FS embed.FS
