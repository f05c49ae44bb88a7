package httpgin

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestFlashRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		msg  string
	}{
		{"plain", "Venue The Musical Hop was successfully listed!"},
		{"punctuation", "An error occurred. Show could not be listed."},
		{"special characters", "Park Square Live Music & Coffee: 50% off"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(t)
			setFlash(c, tt.msg)

			cookies := w.Result().Cookies()
			require.NotEmpty(t, cookies)

			c2, _ := newTestContext(t)
			for _, ck := range cookies {
				c2.Request.AddCookie(ck)
			}

			assert.Equal(t, tt.msg, takeFlash(c2))
		})
	}
}

func TestTakeFlashEmpty(t *testing.T) {
	c, _ := newTestContext(t)
	assert.Equal(t, "", takeFlash(c))
}

func TestTakeFlashClearsCookie(t *testing.T) {
	c, w := newTestContext(t)
	setFlash(c, "one shot")

	c2, w2 := newTestContext(t)
	for _, ck := range w.Result().Cookies() {
		c2.Request.AddCookie(ck)
	}

	_ = takeFlash(c2)

	var cleared bool
	for _, ck := range w2.Result().Cookies() {
		if ck.Name == flashCookie {
			cleared = ck.MaxAge < 0
		}
	}
	assert.True(t, cleared)
}
