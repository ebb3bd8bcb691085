package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/nekogravitycat/locker-booking-backend/internal/pkg/apperror"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestTextUsesAppErrorStatus(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Text(c, apperror.New(http.StatusBadRequest, "Invalid date format"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid date format", w.Body.String())
}

func TestErrorHidesUnknownCause(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Error(c, errors.New("open lockers.json: permission denied"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
	assert.Len(t, c.Errors, 1)
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, items, Paginate(items, 1, 0))
	assert.Equal(t, []int{3, 4}, Paginate(items, 2, 2))
	assert.Equal(t, []int{5}, Paginate(items, 3, 2))
	assert.Empty(t, Paginate(items, 4, 2))
}
