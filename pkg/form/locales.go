package form

import "embed"

// Locales holds the YAML translation catalogs for validation reasons, one
// file per language under LocalesDir.
//
//go:embed locales/*.yaml
var Locales embed.FS

// LocalesDir is the directory of Locales that contains the catalogs.
const LocalesDir = "locales"
