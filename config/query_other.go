//go:build !(js && wasm)

package config

// queryInt reports no value, there is no page outside the browser.
func queryInt(string) (int, bool) { return 0, false }
