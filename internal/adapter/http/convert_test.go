package http_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	srv := newTestServer(nil)

	tests := []struct {
		name     string
		query    string
		expected float64
	}{
		{"celsius to kelvin", "value=100&from=C&to=K", 373.15},
		{"kelvin to fahrenheit", "value=0&from=K&to=F", -459.67},
		{"fahrenheit to celsius", "value=212&from=F&to=C", 100},
		{"identity skips validation", "value=-500&from=C&to=C", -500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, srv, "/v1/convert?"+tt.query)

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			value, ok := decodeBody(t, rec)["value"].(float64)
			require.True(t, ok)
			assert.InDelta(t, tt.expected, value, 1e-9)
		})
	}
}

func TestConvert_BelowAbsoluteZeroIsUnprocessable(t *testing.T) {
	rec := get(t, newTestServer(nil), "/v1/convert?value=-300&from=C&to=K")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "temperature unavailable", decodeBody(t, rec)["error"])
}

func TestConvert_BadRequest(t *testing.T) {
	srv := newTestServer(nil)

	tests := []struct {
		name  string
		query string
	}{
		{"missing value", "from=C&to=K"},
		{"non-numeric value", "value=hot&from=C&to=K"},
		{"unknown from unit", "value=1&from=R&to=K"},
		{"unknown to unit", "value=1&from=K&to=kelvin"},
		{"missing to unit", "value=1&from=K"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, srv, "/v1/convert?"+tt.query)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.NotEmpty(t, decodeBody(t, rec)["error"])
		})
	}
}

func TestFormat(t *testing.T) {
	srv := newTestServer(nil)

	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{"celsius", "value=100&unit=C", "100.0°C"},
		{"kelvin rounds to one decimal", "value=234.32&unit=K", "234.3°K"},
		{"missing value", "unit=F", "N/A"},
		{"below absolute zero", "value=-500&unit=F", "Invalid temperature"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, srv, "/v1/format?"+tt.query)

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, tt.expected, decodeBody(t, rec)["display"])
		})
	}
}

func TestFormat_UnknownUnitIsBadRequest(t *testing.T) {
	rec := get(t, newTestServer(nil), "/v1/format?value=1&unit=X")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestClassify(t *testing.T) {
	srv := newTestServer(nil)
	const mercury = "melting_point=234.32&boiling_point=629.88"

	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{"mercury at room temperature", mercury + "&temperature=25&unit=C", "liquid"},
		{"mercury in a freezer", mercury + "&temperature=-40&unit=F", "solid"},
		{"mercury above boiling", mercury + "&temperature=700&unit=K", "gas"},
		{"inclusive melting boundary", mercury + "&temperature=234.32&unit=K", "liquid"},
		{"missing boiling point", "melting_point=3823&temperature=300&unit=K", "unknown"},
		{"no boundaries", "temperature=300&unit=K", "unknown"},
		{"below absolute zero", mercury + "&temperature=-10&unit=K", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, srv, "/v1/classify?"+tt.query)

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, tt.expected, decodeBody(t, rec)["phase"])
		})
	}
}

func TestClassify_BadRequest(t *testing.T) {
	srv := newTestServer(nil)

	for _, query := range []string{
		"melting_point=1&boiling_point=2&unit=K",
		"melting_point=abc&boiling_point=2&temperature=1&unit=K",
		"melting_point=1&boiling_point=2&temperature=1&unit=R",
	} {
		rec := get(t, srv, "/v1/classify?"+query)
		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
	}
}

func TestOverflowingNumberIsBadRequest(t *testing.T) {
	srv := newTestServer(nil)
	huge := "1" + strings.Repeat("0", 400)

	for _, target := range []string{
		"/v1/convert?value=" + huge + "&from=C&to=K",
		"/v1/format?value=" + huge + "&unit=C",
		"/v1/classify?temperature=" + huge + "&unit=K",
		"/v1/classify?melting_point=" + huge + "&boiling_point=2&temperature=1&unit=K",
		"/v1/classify?melting_point=1&boiling_point=" + huge + "&temperature=1&unit=K",
	} {
		rec := get(t, srv, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Contains(t, decodeBody(t, rec)["error"], "out of range", target)
	}
}
