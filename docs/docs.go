// Package docs holds the OpenAPI description served at /swagger.
package docs

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
        "/me": {
            "get": {
                "tags": ["users"],
                "summary": "The identity every request runs as",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/success"}}}
            }
        },
        "/folders": {
            "get": {
                "tags": ["folders"],
                "summary": "List the current user's folders, newest first",
                "parameters": [
                    {"type": "integer", "name": "limit", "in": "query", "description": "page size (1-1000, default 100)"},
                    {"type": "integer", "name": "skip", "in": "query", "description": "items to skip"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/success"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/failure"}}
                }
            },
            "post": {
                "tags": ["folders"],
                "summary": "Create a folder",
                "consumes": ["application/json"],
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/folderInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/success"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/failure"}}
                }
            }
        },
        "/folders/{id}": {
            "get": {
                "tags": ["folders"],
                "summary": "Get a folder by id",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/success"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/failure"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/failure"}}
                }
            },
            "put": {
                "tags": ["folders"],
                "summary": "Update the fields present in the body",
                "consumes": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/folderInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/success"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/failure"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/failure"}}
                }
            },
            "delete": {
                "tags": ["folders"],
                "summary": "Delete a folder",
                "description": "Assignments are kept unless cascade=true.",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "boolean", "name": "cascade", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/success"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/failure"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/failure"}}
                }
            }
        },
        "/words": {
            "post": {
                "tags": ["words"],
                "summary": "Add a dictionary word",
                "consumes": ["application/json"],
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/wordInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/success"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/failure"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/failure"}}
                }
            }
        },
        "/words/{businessId}": {
            "get": {
                "tags": ["words"],
                "summary": "Get a dictionary word by business id",
                "parameters": [{"type": "string", "name": "businessId", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/success"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/failure"}}
                }
            },
            "put": {
                "tags": ["words"],
                "summary": "Update the fields present in the body",
                "consumes": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "businessId", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/wordInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/success"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/failure"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/failure"}}
                }
            }
        },
        "/words/{businessId}/image": {
            "get": {
                "tags": ["images"],
                "summary": "Stream a word's image",
                "produces": ["image/jpeg", "image/png", "image/webp"],
                "parameters": [{"type": "string", "name": "businessId", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/failure"}}
                }
            },
            "post": {
                "tags": ["images"],
                "summary": "Attach an image to a word, replacing any previous one",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"type": "string", "name": "businessId", "in": "path", "required": true},
                    {"type": "file", "name": "image", "in": "formData", "required": true, "description": "jpeg, png or webp"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/success"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/failure"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/failure"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/failure"}}
                }
            },
            "delete": {
                "tags": ["images"],
                "summary": "Remove a word's image",
                "parameters": [{"type": "string", "name": "businessId", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/success"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/failure"}}
                }
            }
        },
        "/users/{userId}/folders/{folderId}/words": {
            "get": {
                "tags": ["assignments"],
                "summary": "List the words in a folder by headword",
                "parameters": [
                    {"type": "string", "name": "userId", "in": "path", "required": true, "description": "user id, email or me"},
                    {"type": "string", "name": "folderId", "in": "path", "required": true},
                    {"type": "integer", "name": "limit", "in": "query"},
                    {"type": "integer", "name": "skip", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/success"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/failure"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/failure"}}
                }
            },
            "post": {
                "tags": ["assignments"],
                "summary": "Place a dictionary word in a folder",
                "consumes": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "userId", "in": "path", "required": true, "description": "user id, email or me"},
                    {"type": "string", "name": "folderId", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/assignmentInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/success"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/failure"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/failure"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/failure"}}
                }
            }
        },
        "/users/{userId}/folders/{folderId}/words/{businessId}": {
            "delete": {
                "tags": ["assignments"],
                "summary": "Take a word out of a folder",
                "parameters": [
                    {"type": "string", "name": "userId", "in": "path", "required": true},
                    {"type": "string", "name": "folderId", "in": "path", "required": true},
                    {"type": "string", "name": "businessId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/success"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/failure"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/failure"}}
                }
            }
        }
    },
    "definitions": {
        "success": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {},
                "message": {"type": "string"},
                "timestamp": {"type": "string"},
                "request_id": {"type": "string"}
            }
        },
        "failure": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "code": {"type": "string"},
                "message": {"type": "string"},
                "field": {"type": "string"},
                "timestamp": {"type": "string"},
                "request_id": {"type": "string"}
            }
        },
        "folderInput": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "maxLength": 100},
                "description": {"type": "string", "maxLength": 500},
                "color": {"type": "string", "example": "#4A90E2"},
                "icon": {"type": "string"}
            }
        },
        "wordInput": {
            "type": "object",
            "properties": {
                "word_id": {"type": "string", "example": "apple_001"},
                "word": {"type": "string", "maxLength": 100},
                "definition": {"type": "string", "maxLength": 1000},
                "example": {"type": "string", "maxLength": 500}
            }
        },
        "assignmentInput": {
            "type": "object",
            "properties": {
                "word_id": {"type": "string", "example": "apple_001"}
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
	Title:            "Vocabulary Folder API",
	Description:      "Folders of dictionary words with images, scoped to the acting user.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
