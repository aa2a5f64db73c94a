//go:build unit

package notify

var Render = render
