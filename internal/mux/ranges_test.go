package mux

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRangesHandler(t *testing.T) {
	a := assert.New(t)

	ts := httptest.NewServer(NewMux("0.0.0", nil))
	defer ts.Close()

	var hands []string
	assertGet(t, ts, "/ranges", &hands, 200)
	a.Len(hands, 169)
	a.Equal("AA", hands[0])
	a.Contains(hands, "AKs")
	a.Contains(hands, "72o")
	a.Equal("22", hands[len(hands)-1])
}
