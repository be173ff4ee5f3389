package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var (
	ErrEmptyBody    = errors.New("request body is empty")
	ErrTrailingData = errors.New("request body must contain a single JSON value")
)

// ShouldBindStrictJSON binds the body like ShouldBindJSON but rejects bodies that carry
// anything after the first JSON value.
func ShouldBindStrictJSON(c *gin.Context, obj interface{}) error {
	body, err := c.GetRawData()
	if err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	var first json.RawMessage
	if err := dec.Decode(&first); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return ErrTrailingData
	}

	return binding.JSON.BindBody(body, obj)
}
