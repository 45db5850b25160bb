package v1handler

import (
	"mime"
	"net/http"
	"taxipark/pkg/domain"
	"taxipark/pkg/parkfile"
	"taxipark/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/jx"
)

// CreatePark imports a park fixture and schedules its analysis. The body is
// JSON unless the content type is application/yaml. The "name" query
// parameter overrides the fixture's name.
func (h Handler) CreatePark(w http.ResponseWriter, r *http.Request) {
	format := parkfile.FormatJSON
	if mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); mediaType == "application/yaml" ||
		mediaType == "application/x-yaml" {
		format = parkfile.FormatYAML
	}

	fixture, err := parkfile.Decode(http.MaxBytesReader(w, r.Body, maxBodyBytes), format)
	if err != nil {
		h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "invalid park fixture: %s", err))

		return
	}

	name := fixture.Name
	if q := r.URL.Query().Get("name"); q != "" {
		name = q
	}

	id, err := h.deps.Analyzer.Import(r.Context(), name, fixture.Park)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	w.Header().Set("Location", "/v1/parks/"+id.String()+"/report")
	writeJSON(w, http.StatusCreated, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("id", func(e *jx.Encoder) { e.Str(id.String()) })
			e.Field("name", func(e *jx.Encoder) { e.Str(name) })
			e.Field("drivers", func(e *jx.Encoder) { e.Int(fixture.Park.AllDrivers.Len()) })
			e.Field("passengers", func(e *jx.Encoder) { e.Int(fixture.Park.AllPassengers.Len()) })
			e.Field("trips", func(e *jx.Encoder) { e.Int(len(fixture.Park.Trips)) })
		})
	})
}

// AnalyzePark runs the analysis synchronously and returns the new report.
func (h Handler) AnalyzePark(w http.ResponseWriter, r *http.Request) {
	id, err := parkIDParam(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	report, err := h.deps.Analyzer.Analyze(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { EncodeReport(e, report) })
}

// GetReport returns the latest report of a park.
func (h Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	id, err := parkIDParam(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	report, err := h.deps.Analyzer.Report(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { EncodeReport(e, report) })
}

func parkIDParam(r *http.Request) (domain.ParkID, error) {
	id, err := domain.ParseParkID(chi.URLParam(r, "id"))
	if err != nil {
		return domain.ParkID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid park id")
	}

	return id, nil
}
