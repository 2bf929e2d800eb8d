package personaldata

import "embed"

// Locales holds the page and error catalogs of the form UI.
//
//go:embed locales/*.yaml
var Locales embed.FS

const LocalesDir = "locales"
