// Package controllers holds the gin HTTP handlers. Controllers parse and
// validate request parameters into DTOs, call the matching service and
// translate errors through middleware.HandleAPIError.
package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// parseIDQuery reads an optional integer query parameter. Unparseable
// values are treated as absent, matching the original API's behavior.
func parseIDQuery(c *gin.Context, name string) *int64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}

// parseBoolQuery reads a boolean flag query parameter. Only the literal
// "true" enables the flag.
func parseBoolQuery(c *gin.Context, name string) bool {
	return c.Query(name) == "true"
}

// parseTagsQuery accepts both repeated tags parameters and a single
// comma-separated value, returning the cleaned list.
func parseTagsQuery(c *gin.Context) []string {
	var tags []string
	for _, raw := range c.QueryArray("tags") {
		for _, tag := range strings.Split(raw, ",") {
			tag = strings.TrimSpace(tag)
			if tag != "" {
				tags = append(tags, tag)
			}
		}
	}
	return tags
}
