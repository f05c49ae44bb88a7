package httpgin

import (
	"net/url"

	"github.com/gin-gonic/gin"
)

const flashCookie = "bandstand_flash"

// setFlash stores a one-shot message shown on the next rendered page.
func setFlash(c *gin.Context, msg string) {
	c.SetCookie(flashCookie, url.QueryEscape(msg), 60, "/", "", false, true)
}

// takeFlash reads and clears the pending flash message, if any.
func takeFlash(c *gin.Context) string {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return ""
	}

	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	msg, err := url.QueryUnescape(raw)
	if err != nil {
		return ""
	}
	return msg
}
