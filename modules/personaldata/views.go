package personaldata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/brform/handler"
	"github.com/dmitrymomot/brform/pkg/form"
)

// PageParams feeds the form page.
type PageParams struct {
	Lang         string
	Title        string
	Intro        string
	Submit       string
	BasePath     string
	Labels       map[form.Field]string
	Placeholders map[form.Field]string
	Values       FormValues
	Errors       map[form.Field]string
	Message      string
	Success      bool
}

// signals is the initial DataStar store: one signal per field, the per-field
// error messages, the request-level error and the submit outcome. The password
// is never echoed back.
func (p PageParams) signals() map[string]any {
	values := p.Values.Values()
	errs := make(map[string]string, len(values))
	out := make(map[string]any, len(values)+4)
	for _, f := range form.Fields() {
		out[f.String()] = values[f]
		errs[f.String()] = p.Errors[f]
	}
	out[form.Password.String()] = ""
	out["errors"] = errs
	out[errorSignal] = ""
	out["success"] = p.Success
	out["message"] = p.Message
	return out
}

// Page renders the whole form page.
func Page(p PageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		store, err := json.Marshal(p.signals())
		if err != nil {
			return err
		}

		var b strings.Builder
		fmt.Fprintf(&b, `<!DOCTYPE html><html lang="%s"><head><meta charset="utf-8">`, esc(p.Lang))
		fmt.Fprintf(&b, `<meta name="viewport" content="width=device-width, initial-scale=1"><title>%s</title>`, esc(p.Title))
		b.WriteString(`<script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"></script>`)
		fmt.Fprintf(&b, `</head><body><main><h1>%s</h1><p>%s</p>`, esc(p.Title), esc(p.Intro))
		fmt.Fprintf(&b, `<form id="personal-data" method="post" action="%s" data-signals="%s" data-on:submit="@post('%s')" novalidate>`,
			esc(p.path("/submit")), esc(string(store)), esc(p.path("/submit")))
		fmt.Fprintf(&b, `<p class="error" id="form-error" role="alert" data-text="$%s"></p>`, errorSignal)
		for _, f := range form.Fields() {
			p.writeField(&b, f)
		}
		fmt.Fprintf(&b, `<button type="submit">%s</button>`, esc(p.Submit))
		fmt.Fprintf(&b, `<p id="message" data-text="$message" data-class:success="$success">%s</p>`, esc(p.Message))
		b.WriteString(`</form></main></body></html>`)

		_, err = io.WriteString(w, b.String())
		return err
	})
}

func (p PageParams) writeField(b *strings.Builder, f form.Field) {
	name := f.String()
	value := p.Values.Get(f)
	if f == form.Password {
		value = ""
	}

	onInput := fmt.Sprintf("$errors.%s = ''", name)
	if f.Masked() {
		onInput = fmt.Sprintf("@post('%s')", p.path("/format/"+name))
	}

	fmt.Fprintf(b, `<div class="field"><label for="%s">%s</label>`, name, esc(p.Labels[f]))
	fmt.Fprintf(b, `<input id="%s" name="%s" type="%s"%s value="%s" placeholder="%s" data-bind:%s data-on:input="%s" data-on:blur="@post('%s')">`,
		name, name, inputType(f), inputMode(f), esc(value), esc(p.Placeholders[f]), name, esc(onInput), esc(p.path("/validate/"+name)))
	fmt.Fprintf(b, `<p class="error" id="%s-error" data-text="$errors.%s">%s</p></div>`, name, name, esc(p.Errors[f]))
}

func (p PageParams) path(suffix string) string {
	return strings.TrimSuffix(p.BasePath, "/") + suffix
}

func inputType(f form.Field) string {
	switch f {
	case form.Email:
		return "email"
	case form.Password:
		return "password"
	case form.Phone:
		return "tel"
	default:
		return "text"
	}
}

func inputMode(f form.Field) string {
	switch f {
	case form.PostalCode, form.TaxID:
		return ` inputmode="numeric"`
	default:
		return ""
	}
}

// ErrorPage renders the HTML error page used by the error handler.
func ErrorPage(p handler.ErrorPageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, `<!DOCTYPE html><html><head><meta charset="utf-8"><title>%d</title></head><body><main>`, p.StatusCode)
		fmt.Fprintf(&b, `<h1>%d</h1><p>%s</p>`, p.StatusCode, esc(p.Message))
		if p.RequestID != "" {
			fmt.Fprintf(&b, `<p><small>%s</small></p>`, esc(p.RequestID))
		}
		b.WriteString(`</main></body></html>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func esc(s string) string { return templ.EscapeString(s) }
