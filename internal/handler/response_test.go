package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/diegoportaz91-dot/saludvalleuco/pkg/apperror"
)

func TestRespondErrorKeepsAppErrorTaxonomy(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	RespondError(c, apperror.NotFound("professional", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "professional not found")
}

func TestRespondErrorCarriesValidationFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	RespondError(c, apperror.Validation(map[string]string{"name": "el nombre es obligatorio"}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "el nombre es obligatorio")
}

func TestRespondErrorWrapsUnknownErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	RespondError(c, errors.New("driver: bad connection"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// The driver detail stays out of the response body.
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.NotContains(t, w.Body.String(), "bad connection")
}
