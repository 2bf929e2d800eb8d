package handler

import (
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// StreamContext exposes the DataStar signal patch to SSE handlers.
type StreamContext interface {
	Context
	SendSignals(signals any) error
}

type SSEHandler func(ctx StreamContext) error

type sseResponse struct {
	handler SSEHandler
}

func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return NewHTTPError(http.StatusBadRequest, "datastar_required")
	}
	base := NewContext(w, r)
	sse := base.SSE()
	if sse == nil {
		return ErrSSENotInitialized
	}
	return s.handler(&streamContext{Context: base, sse: sse})
}

// SSE streams DataStar patches produced by handler.
func SSE(handler SSEHandler) Response {
	return sseResponse{handler: handler}
}

// Signals patches the given signals into the DataStar store.
func Signals(signals any) Response {
	return SSE(func(ctx StreamContext) error { return ctx.SendSignals(signals) })
}

type streamContext struct {
	Context
	sse *datastar.ServerSentEventGenerator
}

func (c *streamContext) SendSignals(signals any) error {
	return c.sse.MarshalAndPatchSignals(signals)
}
