//go:build js && wasm

package config

import (
	"net/url"
	"strconv"
	"syscall/js"
)

// queryInt reads an integer parameter from the page's query string.
func queryInt(name string) (int, bool) {
	location := js.Global().Get("location")
	if location.IsUndefined() {
		return 0, false
	}
	values, err := url.ParseQuery(trimQuestion(location.Get("search").String()))
	if err != nil {
		return 0, false
	}
	n, err := strconv.Atoi(values.Get(name))
	if err != nil {
		return 0, false
	}
	return n, true
}

func trimQuestion(s string) string {
	if len(s) > 0 && s[0] == '?' {
		return s[1:]
	}
	return s
}
