package router

import (
	"quarry/packages/common/encoding/json"

	"github.com/labstack/echo/v4"
)

type serializer struct{}

// Serialize converts the input into JSON using jsoniter
func (serializer) Serialize(c echo.Context, v any, indent string) error {
	enc := json.NewEncoder(c.Response())

	if indent != "" {
		enc.SetIndent("", indent)
	}

	return enc.Encode(v)
}

// Deserialize reads the JSON from the request body and decodes it into the input using jsoniter
func (serializer) Deserialize(c echo.Context, v any) error {
	return json.NewDecoder(c.Request().Body).Decode(v)
}
