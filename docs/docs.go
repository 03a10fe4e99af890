// Package docs registers the OpenAPI document of the pagerd HTTP API with swag.
// Regenerate with `swag init -g cmd/pagerd/docs.go` after changing handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "pagerd maintainers"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/instances": {
            "get": {
                "produces": ["application/json"],
                "tags": ["instances"],
                "summary": "List pagination instances",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.InstancesResponse"}}
                }
            },
            "post": {
                "description": "Parses the repeat expression, registers the instance and creates its controls.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["instances"],
                "summary": "Bind a pagination instance",
                "parameters": [
                    {"description": "Binding", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.BindRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/types.Instance"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "415": {"description": "Unsupported Media Type", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/instances/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["instances"],
                "summary": "Get a pagination instance",
                "parameters": [
                    {"type": "string", "description": "Instance id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.Instance"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["instances"],
                "summary": "Deregister a pagination instance",
                "parameters": [
                    {"type": "string", "description": "Instance id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/instances/{id}/length": {
            "put": {
                "description": "Sets the collection length, or the server-side total when total_items is given.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["instances"],
                "summary": "Report the collection length",
                "parameters": [
                    {"type": "string", "description": "Instance id", "name": "id", "in": "path", "required": true},
                    {"description": "Length", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.LengthRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.Instance"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/instances/{id}/page": {
            "put": {
                "description": "Invalid page numbers are ignored and reported with accepted=false.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["instances"],
                "summary": "Navigate to a page",
                "parameters": [
                    {"type": "string", "description": "Instance id", "name": "id", "in": "path", "required": true},
                    {"description": "Page", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.PageRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.PageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/instances/{id}/slice": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["instances"],
                "summary": "Slice the current page out of a collection",
                "parameters": [
                    {"type": "string", "description": "Instance id", "name": "id", "in": "path", "required": true},
                    {"description": "Collection", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.SliceRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.SliceResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/instances/{id}/controls": {
            "get": {
                "produces": ["application/json"],
                "tags": ["instances"],
                "summary": "Controls view of an instance",
                "parameters": [
                    {"type": "string", "description": "Instance id", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Number of page links", "name": "max_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.ControlsView"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/pages": {
            "get": {
                "description": "Stateless: computes the link sequence without any instance.",
                "produces": ["application/json"],
                "tags": ["pages"],
                "summary": "Page link sequence",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "Current page", "name": "current", "in": "query"},
                    {"type": "integer", "description": "Total items", "name": "total", "in": "query", "required": true},
                    {"type": "integer", "description": "Items per page", "name": "per_page", "in": "query", "required": true},
                    {"type": "integer", "default": 9, "description": "Number of page links", "name": "max_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.PagesResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "types.BindRequest": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "users"},
                "expression": {"type": "string", "example": "user in users | itemsPerPage: 20"},
                "total_items": {"type": "integer", "example": 1440},
                "share_page_with": {"type": "string", "example": "accounts"},
                "controls": {"$ref": "#/definitions/types.ControlsOptions"}
            }
        },
        "types.ControlsOptions": {
            "type": "object",
            "properties": {
                "max_size": {"type": "integer", "example": 7},
                "auto_hide": {"type": "boolean"},
                "direction_links": {"type": "boolean"},
                "boundary_links": {"type": "boolean"},
                "template_url": {"type": "string", "example": "users.controls.template"}
            }
        },
        "types.ControlsView": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "users"},
                "visible": {"type": "boolean"},
                "pages": {"type": "array", "items": {"$ref": "#/definitions/types.PageLink"}},
                "current": {"type": "integer", "example": 3},
                "last": {"type": "integer", "example": 8},
                "range": {"$ref": "#/definitions/types.Range"},
                "first": {"$ref": "#/definitions/types.NavLink"},
                "previous": {"$ref": "#/definitions/types.NavLink"},
                "next": {"$ref": "#/definitions/types.NavLink"},
                "last_link": {"$ref": "#/definitions/types.NavLink"},
                "template": {"$ref": "#/definitions/types.Template"}
            }
        },
        "types.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "pagination instance not registered: users"},
                "code": {"type": "integer", "example": 404}
            }
        },
        "types.Instance": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "users"},
                "current_page": {"type": "integer", "example": 3},
                "items_per_page": {"type": "integer", "example": 20},
                "collection_length": {"type": "integer", "example": 144},
                "total_pages": {"type": "integer", "example": 8},
                "async_mode": {"type": "boolean", "example": false},
                "expression": {"type": "string", "example": "user in users | itemsPerPage: 20 : 'users'"},
                "page_storage": {"type": "string", "example": "_users__currentPage"}
            }
        },
        "types.InstancesResponse": {
            "type": "object",
            "properties": {
                "instances": {"type": "array", "items": {"$ref": "#/definitions/types.Instance"}}
            }
        },
        "types.LengthRequest": {
            "type": "object",
            "properties": {
                "length": {"type": "integer", "example": 144},
                "total_items": {"type": "integer", "example": 1440}
            }
        },
        "types.NavLink": {
            "type": "object",
            "properties": {
                "target": {"type": "integer", "example": 2},
                "disabled": {"type": "boolean"}
            }
        },
        "types.PageLink": {
            "type": "object",
            "properties": {
                "label": {"type": "string", "example": "4"},
                "page": {"type": "integer", "example": 4},
                "active": {"type": "boolean"},
                "disabled": {"type": "boolean"},
                "key": {"type": "string", "example": "4_3"}
            }
        },
        "types.PageRequest": {
            "type": "object",
            "properties": {
                "page": {"type": "string", "example": "3"}
            }
        },
        "types.PageResponse": {
            "type": "object",
            "properties": {
                "accepted": {"type": "boolean", "example": true},
                "current": {"type": "integer", "example": 3},
                "last": {"type": "integer", "example": 8}
            }
        },
        "types.PagesResponse": {
            "type": "object",
            "properties": {
                "pages": {"type": "array", "items": {"type": "string"}},
                "total_pages": {"type": "integer", "example": 10},
                "range": {"$ref": "#/definitions/types.Range"}
            }
        },
        "types.Range": {
            "type": "object",
            "properties": {
                "lower": {"type": "integer", "example": 41},
                "upper": {"type": "integer", "example": 60},
                "total": {"type": "integer", "example": 144}
            }
        },
        "types.SliceRequest": {
            "type": "object",
            "properties": {
                "items": {"type": "object"},
                "items_per_page": {"type": "string", "example": "20"}
            }
        },
        "types.SliceResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "users"},
                "items": {"type": "object"},
                "page": {"type": "integer", "example": 3},
                "items_per_page": {"type": "integer", "example": 20}
            }
        },
        "types.Template": {
            "type": "object",
            "properties": {
                "path": {"type": "string", "example": "pagerd.controls.template"},
                "inline": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "pagerd API",
	Description:      "HTTP API for pagination state: instances, slices, page link sequences and controls views.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
