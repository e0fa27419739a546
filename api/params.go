package api

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nshubina/airport-api/internal/domain"
)

func parseListParams(c *gin.Context) domain.ListParams {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	return domain.ListParams{Limit: limit, Offset: offset}.Normalize()
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
