package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpectedFilename(t *testing.T) {
	assert.Equal(t, "dhobi-summary-3-2025.xlsx", expectedFilename("dhobi-summary", "excel", 3, 2025))
	assert.Equal(t, "student-full-12-2024.html", expectedFilename("student-full", "print", 12, 2024))
}

func TestDataEqualIgnoresNumericRepresentation(t *testing.T) {
	assert.True(t, dataEqual([]byte(`{"total":90,"rows":[1,2]}`), []byte(`{"rows":[1.0,2.0],"total":90.0}`)))
	assert.False(t, dataEqual([]byte(`{"total":90.5}`), []byte(`{"total":90}`)))
	assert.False(t, dataEqual([]byte(`not json`), []byte(`{}`)))
}

func TestInspectFlagsMismatches(t *testing.T) {
	resp := &http.Response{StatusCode: http.StatusOK, Header: http.Header{}}
	resp.Header.Set("Content-Type", "application/pdf")
	resp.Header.Set("Content-Disposition", `attachment; filename="laundry-cost-3-2025.pdf"`)

	assert.Empty(t, inspect(resp, []byte("%PDF"), "laundry-cost", "pdf", 3, 2025))
	assert.Len(t, inspect(resp, nil, "laundry-cost", "csv", 3, 2025), 3)

	resp.StatusCode = http.StatusUnprocessableEntity
	assert.Equal(t, []string{"status 422"}, inspect(resp, nil, "laundry-cost", "pdf", 3, 2025))
}
