package handler

import (
	"mime"
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

// Patch modes used by the agreement views. Other datastar.ElementPatchMode
// values can be passed to WithPatchMode directly.
const (
	PatchInner   = datastar.ElementPatchModeInner
	PatchPrepend = datastar.ElementPatchModePrepend
)

const (
	eventStreamType = "text/event-stream"
	signalsParam    = "datastar"
	datastarType    = "application/x-datastar"
)

// IsDataStar reports whether r was issued by the DataStar client: it accepts
// an event stream, carries signals in the query, or posts a DataStar body.
func IsDataStar(r *http.Request) bool {
	for _, accept := range strings.Split(r.Header.Get("Accept"), ",") {
		if mediaType(accept) == eventStreamType {
			return true
		}
	}
	if r.URL.Query().Has(signalsParam) {
		return true
	}
	return mediaType(r.Header.Get("Content-Type")) == datastarType
}

func mediaType(v string) string {
	mt, _, err := mime.ParseMediaType(strings.TrimSpace(v))
	if err != nil {
		return ""
	}
	return mt
}
