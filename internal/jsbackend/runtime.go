package jsbackend

import (
	_ "embed"
)

//go:embed runtime.js
var runtimeJS string

// Runtime returns the JavaScript runtime prelude emitted modules rely on.
func Runtime() string {
	return runtimeJS
}
