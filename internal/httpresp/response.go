// Package httpresp holds the success envelopes of the JSON API. Collection
// reads (customers, jobs, documents, payments) are wrapped in ListResponse
// so the caller gets a row count without a second query; single resources
// are returned bare.
package httpresp

import "github.com/gin-gonic/gin"

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(200, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}
