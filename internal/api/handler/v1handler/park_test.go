package v1handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"taxipark/internal/api/handler/v1handler"
	"testing"
	"time"

	"github.com/go-faster/jx"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mockanalyzer "taxipark/internal/analyzer/mock"
	"taxipark/pkg/domain"
	"taxipark/pkg/serrors"
)

const parkID = "5f0c1a8e-6a46-4b8e-9a39-6b8f4c1d2e3f"

func newTestHandler(t *testing.T) (*mockanalyzer.MockAnalyzer, http.Handler) {
	t.Helper()

	a := mockanalyzer.NewMockAnalyzer(gomock.NewController(t))

	return a, v1handler.New(v1handler.Deps{Analyzer: a}).Router()
}

func sampleReport(id domain.ParkID) *domain.ParkReport {
	return &domain.ParkReport{
		ParkID:             id,
		FakeDrivers:        []domain.Driver{"D-2"},
		FaithfulMinTrips:   2,
		FaithfulPassengers: []domain.Passenger{"P-0", "P-1"},
		FrequentPassengers: map[domain.Driver][]domain.Passenger{
			"D-1": {},
			"D-0": {"P-0"},
		},
		SmartPassengers:    []domain.Passenger{},
		MostFrequentPeriod: &domain.Period{Start: 10, End: 19},
		ParetoPrinciple:    true,
		CreatedAt:          time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC),
	}
}

const sampleReportJSON = `{
	"parkId": "` + parkID + `",
	"fakeDrivers": ["D-2"],
	"faithfulMinTrips": 2,
	"faithfulPassengers": ["P-0", "P-1"],
	"frequentPassengers": {"D-0": ["P-0"], "D-1": []},
	"smartPassengers": [],
	"mostFrequentPeriod": {"start": 10, "end": 19},
	"paretoPrinciple": true,
	"createdAt": "2024-05-06T07:08:09Z"
}`

func TestCreatePark_JSON(t *testing.T) {
	a, h := newTestHandler(t)

	id := domain.ParkID(uuid.MustParse(parkID))
	a.EXPECT().Import(gomock.Any(), "downtown", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, park domain.TaxiPark) (domain.ParkID, error) {
			require.Equal(t, 2, park.AllDrivers.Len())
			require.Len(t, park.Trips, 1)

			return id, nil
		},
	)

	body := `{"name":"downtown","drivers":["D-0","D-1"],"passengers":["P-0"],
		"trips":[{"driver":"D-0","passengers":["P-0"],"duration":3,"cost":1.5}]}`
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/parks", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "/v1/parks/"+parkID+"/report", rec.Header().Get("Location"))
	require.JSONEq(t, `{"id":"`+parkID+`","name":"downtown","drivers":2,"passengers":1,"trips":1}`, rec.Body.String())
}

func TestCreatePark_YAMLWithNameOverride(t *testing.T) {
	a, h := newTestHandler(t)

	a.EXPECT().Import(gomock.Any(), "uptown", gomock.Any()).Return(domain.ParkID(uuid.New()), nil)

	body := "name: downtown\ndrivers: [D-0]\npassengers: []\ntrips: []\n"
	req := httptest.NewRequest(http.MethodPost, "/parks?name=uptown", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/yaml; charset=utf-8")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreatePark_InvalidFixture(t *testing.T) {
	_, h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/parks", strings.NewReader(`{"trips":[{"cost":1}]}`)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	d := jx.DecodeBytes(rec.Body.Bytes())
	var code string
	require.NoError(t, d.Obj(func(d *jx.Decoder, key string) error {
		return d.Obj(func(d *jx.Decoder, key string) error {
			if key != "code" {
				return d.Skip()
			}
			var err error
			code, err = d.Str()

			return err
		})
	}))
	require.Equal(t, serrors.ErrBadRequest.Error(), code)
}

func TestCreatePark_ImportError(t *testing.T) {
	a, h := newTestHandler(t)

	a.EXPECT().Import(gomock.Any(), "", gomock.Any()).Return(domain.ParkID{}, serrors.With(serrors.ErrBadRequest, "park name is required"))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/parks", strings.NewReader(`{}`)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"error":{"code":"BAD_REQUEST","message":"park name is required"}}`, rec.Body.String())
}

func TestAnalyzePark(t *testing.T) {
	a, h := newTestHandler(t)

	id := domain.ParkID(uuid.MustParse(parkID))
	a.EXPECT().Analyze(gomock.Any(), id).Return(sampleReport(id), nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/parks/"+parkID+"/analyze", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, sampleReportJSON, rec.Body.String())
}

func TestGetReport(t *testing.T) {
	a, h := newTestHandler(t)

	id := domain.ParkID(uuid.MustParse(parkID))
	report := sampleReport(id)
	report.MostFrequentPeriod = nil
	a.EXPECT().Report(gomock.Any(), id).Return(report, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/parks/"+parkID+"/report", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	d := jx.DecodeBytes(rec.Body.Bytes())
	var periodType jx.Type
	require.NoError(t, d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		if string(key) == "mostFrequentPeriod" {
			periodType = d.Next()
		}

		return d.Skip()
	}))
	require.Equal(t, jx.Null, periodType)
}

func TestParkRoutes_Errors(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		setup  func(a *mockanalyzer.MockAnalyzer)
		status int
	}{
		{
			name:   "invalid id",
			method: http.MethodGet,
			path:   "/parks/not-a-uuid/report",
			status: http.StatusBadRequest,
		},
		{
			name:   "report not found",
			method: http.MethodGet,
			path:   "/parks/" + parkID + "/report",
			setup: func(a *mockanalyzer.MockAnalyzer) {
				a.EXPECT().Report(gomock.Any(), gomock.Any()).Return(nil, serrors.With(serrors.ErrNotFound, "report not found"))
			},
			status: http.StatusNotFound,
		},
		{
			name:   "park not found",
			method: http.MethodPost,
			path:   "/parks/" + parkID + "/analyze",
			setup: func(a *mockanalyzer.MockAnalyzer) {
				a.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(nil, serrors.With(serrors.ErrNotFound, "park not found"))
			},
			status: http.StatusNotFound,
		},
		{
			name:   "storage failure",
			method: http.MethodPost,
			path:   "/parks/" + parkID + "/analyze",
			setup: func(a *mockanalyzer.MockAnalyzer) {
				a.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))
			},
			status: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, h := newTestHandler(t)
			if tt.setup != nil {
				tt.setup(a)
			}

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			require.Equal(t, tt.status, rec.Code)
			require.NotContains(t, rec.Body.String(), "connection reset")
		})
	}
}
