package mux

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertDo(t *testing.T, req *http.Request, respObj interface{}, statusCode int) *http.Response {
	t.Helper()

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Error(err)
		return nil
	}
	defer resp.Body.Close()

	if statusCode != resp.StatusCode {
		b, _ := io.ReadAll(resp.Body)
		t.Log(string(b))
		assert.Equal(t, statusCode, resp.StatusCode)
		return nil
	}

	if respObj != nil {
		if err := json.NewDecoder(resp.Body).Decode(respObj); err != nil {
			t.Error(err)
			return nil
		}
	}

	return resp
}

func assertGet(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	if err != nil {
		t.Error(err)
		return
	}

	_ = assertDo(t, req, respObj, statusCode)
}

func assertPost(t *testing.T, ts *httptest.Server, path string, payload interface{}, respObj interface{}, statusCode int) {
	t.Helper()

	var body io.Reader
	switch val := payload.(type) {
	case string:
		body = strings.NewReader(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			t.Error(err)
			return
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, body)
	if err != nil {
		t.Error(err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	_ = assertDo(t, req, respObj, statusCode)
}

func TestParsePaginationOptions(t *testing.T) {
	a := assert.New(t)

	req := httptest.NewRequest(http.MethodGet, "/simulations", nil)
	start, rows, err := parsePaginationOptions(req)
	a.NoError(err)
	a.Equal(int64(0), start)
	a.Equal(defaultRows, rows)

	req = httptest.NewRequest(http.MethodGet, "/simulations?start=20&rows=5", nil)
	start, rows, err = parsePaginationOptions(req)
	a.NoError(err)
	a.Equal(int64(20), start)
	a.Equal(5, rows)

	req = httptest.NewRequest(http.MethodGet, "/simulations?start=-1", nil)
	_, _, err = parsePaginationOptions(req)
	a.Error(err)

	req = httptest.NewRequest(http.MethodGet, "/simulations?rows=101", nil)
	_, _, err = parsePaginationOptions(req)
	a.Error(err)

	req = httptest.NewRequest(http.MethodGet, "/simulations?rows=0", nil)
	_, _, err = parsePaginationOptions(req)
	a.Error(err)
}
