package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/go-playground/validator/v10"

	"github.com/couchcryptid/element-phase-service/internal/temperature"
)

var validate = validator.New()

// convertQuery holds query parameters for GET /v1/convert.
type convertQuery struct {
	Value string `validate:"required,numeric"`
	From  string `validate:"required,oneof=K C F"`
	To    string `validate:"required,oneof=K C F"`
}

// formatQuery holds query parameters for GET /v1/format. A missing value renders as N/A.
type formatQuery struct {
	Value string `validate:"omitempty,numeric"`
	Unit  string `validate:"required,oneof=K C F"`
}

// classifyQuery holds query parameters for GET /v1/classify. Melting and boiling
// points are Kelvin and may be omitted.
type classifyQuery struct {
	MeltingPoint string `validate:"omitempty,numeric"`
	BoilingPoint string `validate:"omitempty,numeric"`
	Temperature  string `validate:"required,numeric"`
	Unit         string `validate:"required,oneof=K C F"`
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := convertQuery{Value: q.Get("value"), From: q.Get("from"), To: q.Get("to")}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	v, err := parseFloat("value", req.Value)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	out, ok := temperature.Convert(*v, temperature.Unit(req.From), temperature.Unit(req.To))
	if !ok {
		writeError(w, http.StatusUnprocessableEntity, "temperature unavailable")
		return
	}
	sharedobs.WriteJSON(w, http.StatusOK, map[string]float64{"value": out})
}

func (s *Server) handleFormat(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := formatQuery{Value: q.Get("value"), Unit: q.Get("unit")}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	v, err := parseFloat("value", req.Value)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	sharedobs.WriteJSON(w, http.StatusOK, map[string]string{
		"display": temperature.Format(v, temperature.Unit(req.Unit)),
	})
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	req := bindClassifyQuery(r.URL.Query())
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	mp, err := parseFloat("melting_point", req.MeltingPoint)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	bp, err := parseFloat("boiling_point", req.BoilingPoint)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	t, err := parseFloat("temperature", req.Temperature)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	state := temperature.ClassifyState(mp, bp, *t, temperature.Unit(req.Unit))
	sharedobs.WriteJSON(w, http.StatusOK, map[string]string{"phase": string(state)})
}

func bindClassifyQuery(q url.Values) classifyQuery {
	return classifyQuery{
		MeltingPoint: q.Get("melting_point"),
		BoilingPoint: q.Get("boiling_point"),
		Temperature:  q.Get("temperature"),
		Unit:         q.Get("unit"),
	}
}

// parseFloat returns nil for an empty string. Digit strings that pass the numeric
// validator can still overflow float64, so the error must be checked.
func parseFloat(name, s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return &v, nil
}
