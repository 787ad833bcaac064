// Package docs registers the OpenAPI description of the HTTP API with swag,
// which serves it at /swagger/doc.json.
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
        "/healthz": {
            "get": {
                "tags": ["health"],
                "summary": "Database connectivity probe",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}
            }
        },
        "/auth/signup": {
            "post": {
                "tags": ["auth"],
                "summary": "Registers a user",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/SignUpRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/User"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/auth/signin": {
            "post": {
                "tags": ["auth"],
                "summary": "Signs a user in",
                "description": "Sets the access and refresh token cookies and returns both tokens.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/SignInRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Tokens"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/auth/refresh": {
            "post": {
                "tags": ["auth"],
                "summary": "Refreshes the access token",
                "description": "Creates a new access token cookie based on the refresh token cookie.",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/auth/signout": {
            "post": {
                "tags": ["auth"],
                "summary": "Signs the user out",
                "description": "Revokes the refresh token and clears both cookies.",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/me": {
            "get": {
                "tags": ["users"],
                "summary": "Current user",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/User"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/api/me/polls": {
            "get": {
                "tags": ["polls"],
                "summary": "Polls created by the current user",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Poll"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/api/polls": {
            "get": {
                "tags": ["polls"],
                "summary": "Lists active polls",
                "description": "Newest first. page starts at 1 and holds 10 polls; without it every active poll is returned. q filters by title.",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "string", "name": "q", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Poll"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "post": {
                "tags": ["polls"],
                "summary": "Creates a poll",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/CreatePollRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Poll"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/api/polls/{id}": {
            "get": {
                "tags": ["polls"],
                "summary": "Gets a poll",
                "description": "user_vote is set when the caller is authenticated and has voted.",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Poll"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/api/polls/{id}/options": {
            "get": {
                "tags": ["polls"],
                "summary": "Options of a poll in display order",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/PollOption"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/api/polls/{id}/results": {
            "get": {
                "tags": ["results"],
                "summary": "Poll results",
                "description": "Per option vote counts and percentages, most voted first.",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/PollResults"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/api/polls/{id}/votes": {
            "post": {
                "tags": ["votes"],
                "summary": "Votes on a poll",
                "description": "Voting again replaces the previous choice.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/VoteRequest"}}
                ],
                "responses": {
                    "200": {"description": "Vote changed", "schema": {"$ref": "#/definitions/Vote"}},
                    "201": {"description": "First vote", "schema": {"$ref": "#/definitions/Vote"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/api/polls/{id}/my-vote": {
            "get": {
                "tags": ["votes"],
                "summary": "The current user's choice",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/VoteRequest"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/api/options/{id}/votes": {
            "get": {
                "tags": ["results"],
                "summary": "Vote count of an option",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/OptionVotes"}}}
            }
        }
    },
    "definitions": {
        "Error": {"type": "object", "properties": {"error": {"type": "string"}, "message": {"type": "string"}}},
        "SignUpRequest": {"type": "object", "properties": {"email": {"type": "string"}, "password": {"type": "string"}, "name": {"type": "string"}}},
        "SignInRequest": {"type": "object", "properties": {"email": {"type": "string"}, "password": {"type": "string"}}},
        "Tokens": {"type": "object", "properties": {"access_token": {"type": "string"}, "refresh_token": {"type": "string"}}},
        "User": {"type": "object", "properties": {"id": {"type": "string"}, "email": {"type": "string"}, "name": {"type": "string"}, "created_at": {"type": "string"}}},
        "CreatePollRequest": {"type": "object", "properties": {"title": {"type": "string"}, "description": {"type": "string"}, "options": {"type": "array", "items": {"type": "string"}}, "ends_at": {"type": "string"}}},
        "PollOption": {"type": "object", "properties": {"id": {"type": "string"}, "poll_id": {"type": "string"}, "option_text": {"type": "string"}, "position": {"type": "integer"}, "created_at": {"type": "string"}}},
        "Poll": {"type": "object", "properties": {
            "id": {"type": "string"}, "title": {"type": "string"}, "description": {"type": "string"},
            "created_by": {"type": "string"}, "is_active": {"type": "boolean"}, "ends_at": {"type": "string"},
            "options": {"type": "array", "items": {"$ref": "#/definitions/PollOption"}},
            "total_votes": {"type": "integer"}, "user_vote": {"type": "string"}, "created_at": {"type": "string"}
        }},
        "VoteRequest": {"type": "object", "properties": {"option_id": {"type": "string"}}},
        "Vote": {"type": "object", "properties": {"id": {"type": "string"}, "poll_id": {"type": "string"}, "option_id": {"type": "string"}, "user_id": {"type": "string"}, "created_at": {"type": "string"}, "updated_at": {"type": "string"}}},
        "OptionResult": {"type": "object", "properties": {"option_id": {"type": "string"}, "option_text": {"type": "string"}, "vote_count": {"type": "integer"}, "percentage": {"type": "number"}}},
        "PollResults": {"type": "object", "properties": {"poll_id": {"type": "string"}, "total_votes": {"type": "integer"}, "results": {"type": "array", "items": {"$ref": "#/definitions/OptionResult"}}}},
        "OptionVotes": {"type": "object", "properties": {"option_id": {"type": "string"}, "vote_count": {"type": "integer"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Polling API",
	Description:      "Create polls, vote once per poll and read live results.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
