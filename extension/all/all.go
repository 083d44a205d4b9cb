// Package all imports all built-in isodur extensions.
// Import this package to register all built-in commands.
package all

import (
	// Each registers itself via init()
	_ "github.com/jpl-au/isodur/extension/core"
	_ "github.com/jpl-au/isodur/extension/parse"
)
