package v1handler

import (
	"net/http"
	"taxipark/pkg/nicestring"
	"taxipark/pkg/serrors"

	"github.com/go-faster/jx"
)

// CheckNice classifies the "s" query parameter. An empty value is a valid
// input; a missing parameter is not.
func (h Handler) CheckNice(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if !query.Has("s") {
		h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "query parameter s is required"))

		return
	}

	s := query.Get("s")
	verdict := nicestring.Evaluate(s)
	if h.deps.NiceVerdicts != nil {
		h.deps.NiceVerdicts.Observe(verdict.Nice)
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeVerdict(e, s, verdict) })
}
