package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetShifts_RejectsEmployeeIDCombinedWithOtherFilters(t *testing.T) {
	h := &Handler{}

	for _, query := range []string{
		"employeeId=e-1&date=2026-08-24",
		"employeeId=e-1&groupId=g-a",
		"employeeId=e-1&date=2026-08-24&groupId=g-a",
	} {
		r := httptest.NewRequest(http.MethodGet, "/shifts?"+query, nil)
		w := httptest.NewRecorder()

		h.GetShifts(w, r)

		var resp Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), query)
		assert.False(t, resp.Success, query)
		assert.Contains(t, resp.Message, "employeeId", query)
	}
}
