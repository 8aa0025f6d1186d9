// Package apidocs embeds the OpenAPI document of the order API. The same
// document drives request validation and the Swagger UI.
package apidocs

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var document []byte

// Load parses and validates the embedded document. Every call returns a
// fresh copy that the caller may modify.
func Load() (*openapi3.T, error) {
	doc, err := openapi3.NewLoader().LoadFromData(document)
	if err != nil {
		return nil, fmt.Errorf("parse openapi document: %w", err)
	}
	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}

type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string { return d.json }

var (
	registerOnce sync.Once
	registerErr  error
)

// Register publishes the document under swag's default instance name, which
// is where echo-swagger looks for doc.json. swag panics on a second
// registration, so only the first call has an effect.
func Register(doc *openapi3.T) error {
	registerOnce.Do(func() {
		raw, err := json.Marshal(doc)
		if err != nil {
			registerErr = fmt.Errorf("encode openapi document: %w", err)
			return
		}
		swag.Register(swag.Name, swaggerDoc{json: string(raw)})
	})
	return registerErr
}
