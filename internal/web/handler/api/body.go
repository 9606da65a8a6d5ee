package api

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// decodeBody reads the request body as a JSON object. Numbers are kept as json.Number.
func decodeBody(c *fiber.Ctx) (map[string]any, error) {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		return map[string]any{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w - %s", errParse, err.Error())
	}

	if dec.More() {
		return nil, fmt.Errorf("%w - trailing data after object", errParse)
	}

	if raw == nil {
		return nil, fmt.Errorf("%w - expected an object", errParse)
	}

	return raw, nil
}
