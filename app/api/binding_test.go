package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestShouldBindStrictJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)

	type payload struct {
		Name string `json:"name"`
	}

	bind := func(body string) (payload, error) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodPost, "/pais", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		var p payload
		err := ShouldBindStrictJSON(c, &p)
		return p, err
	}

	tests := []struct {
		name    string
		body    string
		want    string
		wantErr error
	}{
		{name: "single value", body: `{"name":"Colombia"}`, want: "Colombia"},
		{name: "trailing whitespace", body: "{\"name\":\"Peru\"}\n  ", want: "Peru"},
		{name: "trailing text", body: `{"name":"x"} trailing`, wantErr: ErrTrailingData},
		{name: "second object", body: `{"name":"x"}{"name":"y"}`, wantErr: ErrTrailingData},
		{name: "extra brace", body: `{"name":"x"}}`, wantErr: ErrTrailingData},
		{name: "empty", body: "", wantErr: ErrEmptyBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := bind(tt.body)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, p.Name)
		})
	}

	t.Run("malformed", func(t *testing.T) {
		_, err := bind(`{"name":`)
		assert.Error(t, err)
	})
}
