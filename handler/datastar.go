package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/jobform/pkg/binder"
)

// DataStar detection constants
const (
	// DataStarAcceptHeader is the Accept header value that indicates a DataStar request
	DataStarAcceptHeader = "text/event-stream"

	// DataStarRequestHeader is set by the DataStar client on every backend action
	DataStarRequestHeader = "Datastar-Request"

	// DataStarQueryParam is the query parameter used by DataStar for signals
	DataStarQueryParam = "datastar"
)

// PatchPrepend inserts a patched element at the top of its target, which
// stacks error toasts newest first.
const PatchPrepend = datastar.ElementPatchModePrepend

// IsDataStar checks if the request is a DataStar request: it accepts
// Server-Sent Events, carries the DataStar request header, or sends signals
// in the query string.
func IsDataStar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader) {
		return true
	}
	if r.Header.Get(DataStarRequestHeader) == "true" {
		return true
	}
	return r.URL.Query().Has(DataStarQueryParam)
}

// ReadSignals returns a binder that decodes DataStar signals into the
// request struct through its json tags. Non-DataStar requests are passed on
// to the next binder.
func ReadSignals() Bind {
	return func(r *http.Request, v any) error {
		if !IsDataStar(r) {
			return binder.ErrBinderNotApplicable
		}
		if err := datastar.ReadSignals(r, v); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSignals, err)
		}
		return nil
	}
}

type signalsResponse struct {
	signals any
	patches []TemplPatch
}

// Render patches signals over SSE for DataStar, or writes them as JSON data
// for any other client.
func (s signalsResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return JSON(s.signals).Render(w, r)
	}

	data, err := json.Marshal(s.signals)
	if err != nil {
		return err
	}

	sse := datastar.NewSSE(w, r)
	if err := sse.PatchSignals(data); err != nil {
		return err
	}
	for _, patch := range s.patches {
		if err := sse.PatchElementTempl(patch.Component, patch.Options...); err != nil {
			return err
		}
	}
	return nil
}

// Signals creates a response that merges v into the client's DataStar
// signals, followed by optional element patches. v must marshal to a JSON
// object.
//
//	return handler.Signals(map[string]any{"valid": false, "errors": errs},
//		handler.Patch(views.ErrorList(errs), handler.WithTarget("#form-errors")),
//	)
func Signals(v any, patches ...TemplPatch) Response {
	return signalsResponse{signals: v, patches: patches}
}
