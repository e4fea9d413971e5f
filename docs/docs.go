// Package docs registers the OpenAPI description served by the Swagger UI
// route. The template below is kept by hand in sync with the handler
// annotations in internal/http/handlers.
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
        "/doctors": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Doctors"],
                "summary": "List trainee doctors",
                "description": "Returns one page of the trainee doctor directory, enriched with programme data and collection-wide counts.",
                "operationId": "getTraineeDoctors",
                "parameters": [
                    {"type": "string", "default": "submissionDate", "description": "Sort column", "name": "sortColumn", "in": "query"},
                    {"type": "string", "default": "desc", "description": "Sort direction (asc|desc)", "name": "sortOrder", "in": "query"},
                    {"type": "boolean", "default": false, "description": "Restrict to under-notice doctors", "name": "underNotice", "in": "query"},
                    {"type": "integer", "default": 0, "description": "Zero-based page number", "name": "pageNumber", "in": "query"},
                    {"type": "string", "description": "Substring match on names or GMC number", "name": "searchQuery", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.TraineeSummary"}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/trainee/{gmcId}/notes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Notes"],
                "summary": "List a doctor's notes",
                "description": "Returns the notes attached to the given GMC number, most recently updated first.",
                "operationId": "getTraineeNotes",
                "parameters": [
                    {"type": "string", "description": "GMC reference number", "name": "gmcId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.TraineeNotes"}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/trainee/notes/add": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Notes"],
                "summary": "Create a note",
                "description": "Stores a new note for a doctor with both timestamps set to now.",
                "operationId": "addTraineeNote",
                "parameters": [
                    {"description": "Note payload", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.SaveNoteRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Note"}},
                    "400": {"description": "Missing gmcId or text", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/trainee/notes/edit": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Notes"],
                "summary": "Edit a note",
                "description": "Replaces the note's text, preserving its identity and creation date. An id that no longer exists silently becomes a create.",
                "operationId": "editTraineeNote",
                "parameters": [
                    {"description": "Note payload including id", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.EditNoteRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Note"}},
                    "400": {"description": "Missing id, gmcId, or text", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/admins": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Admin"],
                "summary": "List assignable admins",
                "description": "Returns the members of the configured admin group in the identity directory.",
                "operationId": "getAssignableAdmins",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/services.Admin"}}},
                    "502": {"description": "Identity directory unavailable", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/environment": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Admin"],
                "summary": "Deployment environment details",
                "description": "Returns the configured environment name and the serving host.",
                "operationId": "getEnvironment",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.EnvironmentInfo"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Note": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "gmcId": {"type": "string"},
                "text": {"type": "string"},
                "createdDate": {"type": "string"},
                "updatedDate": {"type": "string"}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "request_id": {"type": "string"},
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handlers.SaveNoteRequest": {
            "type": "object",
            "required": ["gmcId", "text"],
            "properties": {
                "gmcId": {"type": "string", "example": "7012617"},
                "text": {"type": "string", "example": "Spoke with the designated body on 12 May."}
            }
        },
        "handlers.EditNoteRequest": {
            "type": "object",
            "required": ["gmcId", "text"],
            "properties": {
                "id": {"type": "string", "example": "8f2c1d3a-0b7e-4a31-9c5d-2f6a1e8b4c90"},
                "gmcId": {"type": "string", "example": "7012617"},
                "text": {"type": "string", "example": "Updated after the panel review."}
            }
        },
        "services.Admin": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "fullName": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "services.EnvironmentInfo": {
            "type": "object",
            "properties": {
                "environment": {"type": "string"},
                "hostname": {"type": "string"}
            }
        },
        "services.TraineeInfo": {
            "type": "object",
            "properties": {
                "gmcReferenceNumber": {"type": "string"},
                "doctorFirstName": {"type": "string"},
                "doctorLastName": {"type": "string"},
                "submissionDate": {"type": "string"},
                "dateAdded": {"type": "string"},
                "underNotice": {"type": "string"},
                "sanction": {"type": "string"},
                "doctorStatus": {"type": "string"},
                "lastUpdatedDate": {"type": "string"},
                "designatedBodyCode": {"type": "string"},
                "curriculumEndDate": {"type": "string"},
                "programmeName": {"type": "string"},
                "programmeMembershipType": {"type": "string"},
                "currentGrade": {"type": "string"}
            }
        },
        "services.TraineeNotes": {
            "type": "object",
            "properties": {
                "gmcId": {"type": "string"},
                "notes": {"type": "array", "items": {"$ref": "#/definitions/domain.Note"}}
            }
        },
        "services.TraineeSummary": {
            "type": "object",
            "properties": {
                "traineeInfo": {"type": "array", "items": {"$ref": "#/definitions/services.TraineeInfo"}},
                "countTotal": {"type": "integer"},
                "countUnderNotice": {"type": "integer"},
                "totalPages": {"type": "integer"},
                "totalResults": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Trainee Revalidation API",
	Description:      "Paginated, searchable trainee doctor directory with notes and admin lookups.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
