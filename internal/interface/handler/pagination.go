package handler

import (
	"tourism-service/internal/domain/repository"
	"tourism-service/pkg/utils"

	"github.com/gin-gonic/gin"
)

// pageQuery reads ?page= and ?limit=, clamped to sane bounds
func pageQuery(c *gin.Context) repository.Page {
	page, limit := utils.ParsePage(c.Query("page"), c.Query("limit"))
	return repository.Page{Page: page, Limit: limit}
}
