package prefixlog

import "strings"

// SupportsStyling reports whether a console running under userAgent renders
// %c styles: Firefox does, WebKit based agents do unless they are Edge.
func SupportsStyling(userAgent string) bool {
	ua := strings.ToLower(userAgent)
	if strings.Contains(ua, "firefox") {
		return true
	}
	return strings.Contains(ua, "webkit") && !strings.Contains(ua, "edge") && !strings.Contains(ua, "edg/")
}
