package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

type templResponse struct {
	component templ.Component
	status    int
}

func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		return datastar.NewSSE(w, r).PatchElementTempl(t.component)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if t.status != 0 {
		w.WriteHeader(t.status)
	}
	return t.component.Render(r.Context(), w)
}

// Templ renders a component as a full HTML response, or patches it into the
// page when the request came from DataStar.
func Templ(component templ.Component) Response {
	return templResponse{component: component}
}

// TemplWithStatus renders a plain HTML component with a status code.
func TemplWithStatus(status int, component templ.Component) Response {
	return templResponse{component: component, status: status}
}
