// Package swagger provides the generated swagger spec registration.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/generate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["generation"],
                "summary": "Generate images",
                "description": "Validates parameters, forwards them to the upstream text-to-image API, and returns the generated images.",
                "parameters": [
                    {
                        "description": "Generation request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/requests.GenerateRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.GenerateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}},
                    "408": {"description": "Request Timeout", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}}
                }
            }
        },
        "/generate-simple": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["generation"],
                "summary": "Generate images with minimal parameters",
                "description": "Accepts only a prompt; every other parameter is defaulted.",
                "parameters": [
                    {
                        "description": "Simplified request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/requests.GenerateSimpleRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.GenerateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}},
                    "408": {"description": "Request Timeout", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.HealthResponse"}}
                }
            }
        },
        "/models": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "List available models",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.ModelsResponse"}}
                }
            }
        }
    },
    "definitions": {
        "requests.GenerateRequest": {
            "type": "object",
            "properties": {
                "prompt": {"type": "string", "example": "A serene mountain landscape at sunset"},
                "model": {"type": "string", "example": "black-forest-labs/FLUX.1-schnell-Free"},
                "width": {"type": "integer", "example": 1024},
                "height": {"type": "integer", "example": 1024},
                "steps": {"type": "integer", "example": 12},
                "n": {"type": "integer", "example": 1},
                "negative_prompt": {"type": "string"},
                "seed": {"type": "integer", "example": 42},
                "guidance_scale": {"type": "number", "example": 7.5}
            }
        },
        "requests.GenerateSimpleRequest": {
            "type": "object",
            "properties": {
                "prompt": {"type": "string", "example": "a cat"}
            }
        },
        "responses.GenerateResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "images": {"type": "array", "items": {"$ref": "#/definitions/responses.GeneratedImage"}},
                "prompt": {"type": "string"},
                "model": {"type": "string"},
                "parameters": {"$ref": "#/definitions/responses.ParameterSet"},
                "timestamp": {"type": "string"}
            }
        },
        "responses.GeneratedImage": {
            "type": "object",
            "properties": {
                "url": {"type": "string"},
                "b64_json": {"type": "string"},
                "index": {"type": "integer"}
            }
        },
        "responses.ParameterSet": {
            "type": "object",
            "properties": {
                "width": {"type": "integer"},
                "height": {"type": "integer"},
                "steps": {"type": "integer"},
                "n": {"type": "integer"},
                "guidance_scale": {"type": "number"},
                "negative_prompt": {"type": "string"},
                "seed": {"type": "integer"}
            }
        },
        "responses.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "timestamp": {"type": "string"},
                "service": {"type": "string"}
            }
        },
        "responses.ModelsResponse": {
            "type": "object",
            "properties": {
                "models": {"type": "array", "items": {"type": "string"}},
                "default": {"type": "string"}
            }
        },
        "responses.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "error": {"type": "string"},
                "message": {"type": "string"},
                "request_id": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Image Generation Gateway",
	Description:      "Stateless gateway in front of the Together AI text-to-image API",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
