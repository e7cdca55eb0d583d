package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "HR Records API",
        "description": "Employee records with request validation and audit provenance.",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Employees", "description": "Employee records"},
        {"name": "Benefits", "description": "Benefit catalogue and enrollments"},
        {"name": "Operations", "description": "Health, readiness and metrics"}
    ],
    "paths": {
        "/health": {
            "get": {"tags": ["Operations"], "summary": "Liveness probe", "responses": {"200": {"description": "OK"}}}
        },
        "/ready": {
            "get": {"tags": ["Operations"], "summary": "Readiness probe", "responses": {"200": {"description": "Ready"}, "503": {"description": "A dependency is down"}}}
        },
        "/employees": {
            "get": {
                "tags": ["Employees"],
                "summary": "List employees",
                "parameters": [
                    {"name": "page", "in": "query", "type": "integer", "minimum": 1},
                    {"name": "recordsPerPage", "in": "query", "type": "integer", "minimum": 1, "maximum": 100},
                    {"name": "firstNameContains", "in": "query", "type": "string"},
                    {"name": "lastNameContains", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid query", "schema": {"$ref": "#/definitions/ValidationProblem"}}
                }
            },
            "post": {
                "tags": ["Employees"],
                "summary": "Create an employee",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateEmployeeRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ValidationProblem"}}
                }
            }
        },
        "/employees/export": {
            "get": {
                "tags": ["Employees"],
                "summary": "Export the employee roster",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [{"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}],
                "responses": {
                    "200": {"description": "Roster file"},
                    "400": {"description": "Invalid query", "schema": {"$ref": "#/definitions/ValidationProblem"}}
                }
            }
        },
        "/employees/{id}": {
            "get": {
                "tags": ["Employees"],
                "summary": "Get an employee",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Employees"],
                "summary": "Replace an employee's contact details",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateEmployeeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ValidationProblem"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Employees"],
                "summary": "Delete an employee",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/employees/{id}/benefits": {
            "get": {
                "tags": ["Benefits"],
                "summary": "List an employee's enrollments",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Benefits"],
                "summary": "Enroll an employee in a benefit",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EnrollBenefitRequest"}}
                ],
                "responses": {
                    "201": {"description": "Enrolled", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ValidationProblem"}},
                    "409": {"description": "Already enrolled", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/employees/{id}/benefits/{benefitId}": {
            "delete": {
                "tags": ["Benefits"],
                "summary": "Remove an enrollment",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "benefitId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {"204": {"description": "Removed"}, "404": {"description": "Not found"}}
            }
        },
        "/benefits": {
            "get": {
                "tags": ["Benefits"],
                "summary": "List the benefit catalogue",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        }
    },
    "definitions": {
        "CreateEmployeeRequest": {
            "type": "object",
            "required": ["FirstName", "LastName"],
            "properties": {
                "FirstName": {"type": "string"},
                "LastName": {"type": "string"},
                "SocialSecurityNumber": {"type": "string"},
                "Address1": {"type": "string"},
                "Address2": {"type": "string"},
                "City": {"type": "string"},
                "State": {"type": "string"},
                "ZipCode": {"type": "string"},
                "PhoneNumber": {"type": "string"},
                "Email": {"type": "string"}
            }
        },
        "UpdateEmployeeRequest": {
            "type": "object",
            "properties": {
                "Address1": {"type": "string"},
                "Address2": {"type": "string"},
                "City": {"type": "string"},
                "State": {"type": "string"},
                "ZipCode": {"type": "string"},
                "PhoneNumber": {"type": "string"},
                "Email": {"type": "string"}
            }
        },
        "EnrollBenefitRequest": {
            "type": "object",
            "required": ["BenefitId"],
            "properties": {
                "BenefitId": {"type": "string", "format": "uuid"},
                "CostToEmployee": {"type": "number", "minimum": 0}
            }
        },
        "ValidationProblem": {
            "type": "object",
            "properties": {
                "status": {"type": "integer"},
                "title": {"type": "string"},
                "errors": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
