//go:build !(js && wasm)

package web

// Export is a no-op outside the browser.
func Export(*Game) {}
