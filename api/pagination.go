package api

import (
	"strconv"

	"github.com/Domenick1991/airlink/internal/repository"
	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type listResponse struct {
	Count   int         `json:"count"`
	Results interface{} `json:"results"`
}

func listParams(c *gin.Context) repository.ListParams {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if err != nil || pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return repository.ListParams{Limit: pageSize, Offset: (page - 1) * pageSize}
}
