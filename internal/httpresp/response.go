package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// List writes items as a bare JSON array; nil becomes [].
func List[T any](c *gin.Context, items []T) {
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, items)
}

func Deleted(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
