package web

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

// HTMXRequestHeader is the header htmx sets on requests it initiates.
const HTMXRequestHeader = "HX-Request"

// IsHTMXRequest reports whether the request was initiated by htmx.
func IsHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(HTMXRequestHeader), "true")
}

// RenderPage renders fragment for htmx requests and full otherwise, so a
// fragment URL opened directly in a browser still shows the whole dashboard.
func RenderPage(w http.ResponseWriter, r *http.Request, fragment, full templ.Component) {
	w.Header().Set("Vary", HTMXRequestHeader)
	target := full
	if IsHTMXRequest(r) && fragment != nil {
		target = fragment
	}
	templ.Handler(target).ServeHTTP(w, r)
}
