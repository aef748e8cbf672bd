// Package docs holds the swagger document served at /swagger.
// Regenerate with: swag init -g cmd/api/main.go -o docs
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
        "/posts": {
            "get": {"tags": ["posts"], "summary": "Public feed", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["posts"], "summary": "Publish a post", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/posts/draft": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["posts"], "summary": "Latest draft", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["posts"], "summary": "Save a draft", "responses": {"201": {"description": "Created"}}}
        },
        "/posts/{id}": {
            "get": {"tags": ["posts"], "summary": "Get post by ID", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["posts"], "summary": "Delete post", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/search": {
            "get": {"tags": ["search"], "summary": "Search posts", "parameters": [{"type": "string", "name": "query", "in": "query", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/tts/generate": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["tts"], "summary": "Generate speech", "responses": {"200": {"description": "OK"}, "202": {"description": "Accepted"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}
        },
        "/audio/{audioId}": {
            "get": {"tags": ["tts"], "summary": "Stream audio", "produces": ["audio/mpeg"], "parameters": [{"type": "string", "name": "audioId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/auth/register": {
            "post": {"tags": ["auth"], "summary": "Register a new user", "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}}
        },
        "/auth/login": {
            "post": {"tags": ["auth"], "summary": "Login", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}
        },
        "/users/me": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Current user", "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Update profile", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/users/me/posts": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "My posts", "responses": {"200": {"description": "OK"}}}
        },
        "/comments": {
            "get": {"tags": ["comments"], "summary": "Comments of a post", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["comments"], "summary": "Comment on a post", "responses": {"201": {"description": "Created"}}}
        },
        "/comments/{id}": {
            "delete": {"security": [{"BearerAuth": []}], "tags": ["comments"], "summary": "Delete own comment", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/reactions": {
            "get": {"tags": ["reactions"], "summary": "Reactions of a post", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["reactions"], "summary": "React to a post", "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["reactions"], "summary": "Remove own reaction by emoji", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/reactions/counts": {
            "get": {"tags": ["reactions"], "summary": "Reaction counts per emoji", "responses": {"200": {"description": "OK"}}}
        },
        "/reactions/{id}": {
            "delete": {"security": [{"BearerAuth": []}], "tags": ["reactions"], "summary": "Remove own reaction", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/interactions": {
            "get": {"tags": ["interactions"], "summary": "Interactions of a post", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["interactions"], "summary": "Share a post", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/interactions/counts": {
            "get": {"tags": ["interactions"], "summary": "Interaction counts per type", "responses": {"200": {"description": "OK"}}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3001",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Vocal Feed API",
	Description:      "Posts, drafts and text-to-speech audio for the Vocal Feed platform",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
