package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Boarding Admin API",
        "description": "Boarding school administration: students, pocket money, laundry and monthly reports",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "security": [
        {"BearerAuth": []}
    ],
    "tags": [
        {"name": "Auth", "description": "Login and token rotation"},
        {"name": "Reports", "description": "Monthly reports and their exports"},
        {"name": "Students", "description": "Student registry"},
        {"name": "Laundry Staff", "description": "Dhobi roster"},
        {"name": "Pocket Money", "description": "Pocket money disbursements"},
        {"name": "Laundry", "description": "Laundry records and summaries"},
        {"name": "Dashboard", "description": "Headline figures and yearly charts"}
    ],
    "paths": {
        "/health": {
            "get": {"summary": "Health check", "security": [], "responses": {"200": {"description": "OK"}}}
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "security": [],
                "responses": {"200": {"description": "Ready"}, "503": {"description": "Database unreachable"}}
            }
        },
        "/metrics": {
            "get": {"summary": "Prometheus metrics", "security": [], "produces": ["text/plain"], "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Login",
                "security": [],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "403": {"description": "Account inactive", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/auth/refresh": {
            "post": {
                "tags": ["Auth"],
                "summary": "Rotate refresh token",
                "security": [],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RefreshRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Unknown, revoked or expired token", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/auth/logout": {
            "post": {
                "tags": ["Auth"],
                "summary": "Revoke refresh token",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RefreshRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/api/v1/auth/me": {
            "get": {
                "tags": ["Auth"],
                "summary": "Current user",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/api/v1/reports": {
            "get": {
                "tags": ["Reports"],
                "summary": "Report catalogue",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/api/v1/reports/{reportId}": {
            "get": {
                "tags": ["Reports"],
                "summary": "Resolve a monthly report",
                "parameters": [
                    {"$ref": "#/parameters/reportId"},
                    {"$ref": "#/parameters/month"},
                    {"$ref": "#/parameters/year"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown report", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "422": {"description": "Invalid period", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/reports/{reportId}/export/{format}": {
            "get": {
                "tags": ["Reports"],
                "summary": "Download a report",
                "produces": [
                    "application/pdf",
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
                    "text/csv",
                    "application/json"
                ],
                "parameters": [
                    {"$ref": "#/parameters/reportId"},
                    {"name": "format", "in": "path", "required": true, "type": "string", "enum": ["pdf", "excel", "csv", "json"]},
                    {"$ref": "#/parameters/month"},
                    {"$ref": "#/parameters/year"}
                ],
                "responses": {
                    "200": {"description": "Attachment named {reportId}-{month}-{year}.{ext}", "schema": {"type": "file"}},
                    "404": {"description": "Unknown report or format", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "422": {"description": "Invalid period", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "500": {"description": "Store or render failure", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/reports/{reportId}/print": {
            "get": {
                "tags": ["Reports"],
                "summary": "Printable report page",
                "produces": ["text/html"],
                "parameters": [
                    {"$ref": "#/parameters/reportId"},
                    {"$ref": "#/parameters/month"},
                    {"$ref": "#/parameters/year"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "string"}}}
            }
        },
        "/api/v1/students": {
            "get": {
                "tags": ["Students"],
                "summary": "List students",
                "parameters": [
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "class", "in": "query", "type": "string"},
                    {"name": "status", "in": "query", "type": "string", "enum": ["active", "inactive"]},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"},
                    {"name": "sort", "in": "query", "type": "string"},
                    {"name": "order", "in": "query", "type": "string", "enum": ["asc", "desc"]}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Students"],
                "summary": "Register student",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Duplicate student code", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/students/{id}": {
            "get": {
                "tags": ["Students"],
                "summary": "Get student",
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "put": {
                "tags": ["Students"],
                "summary": "Update student",
                "parameters": [
                    {"$ref": "#/parameters/id"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudentRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "delete": {
                "tags": ["Students"],
                "summary": "Delete student (ADMIN)",
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/api/v1/laundry-staff": {
            "get": {
                "tags": ["Laundry Staff"],
                "summary": "List laundry staff",
                "parameters": [{"name": "status", "in": "query", "type": "string", "enum": ["active", "inactive"]}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Laundry Staff"],
                "summary": "Add laundry staff",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LaundryStaffRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/api/v1/laundry-staff/{id}": {
            "get": {
                "tags": ["Laundry Staff"],
                "summary": "Get laundry staff",
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "put": {
                "tags": ["Laundry Staff"],
                "summary": "Update laundry staff",
                "parameters": [
                    {"$ref": "#/parameters/id"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LaundryStaffRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "delete": {
                "tags": ["Laundry Staff"],
                "summary": "Delete laundry staff (ADMIN)",
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/api/v1/pocket-money": {
            "get": {
                "tags": ["Pocket Money"],
                "summary": "List transactions for a month",
                "parameters": [{"$ref": "#/parameters/month"}, {"$ref": "#/parameters/year"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Pocket Money"],
                "summary": "Record a disbursement",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PocketMoneyRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/api/v1/pocket-money/report": {
            "get": {
                "tags": ["Pocket Money"],
                "summary": "Per-student balances for a month",
                "parameters": [{"$ref": "#/parameters/month"}, {"$ref": "#/parameters/year"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/api/v1/laundry-records": {
            "get": {
                "tags": ["Laundry"],
                "summary": "List laundry records for a month",
                "parameters": [
                    {"$ref": "#/parameters/month"},
                    {"$ref": "#/parameters/year"},
                    {"name": "student_id", "in": "query", "type": "string"},
                    {"name": "staff_id", "in": "query", "type": "string"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Laundry"],
                "summary": "Record a laundry batch",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LaundryRecordRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/api/v1/laundry/report": {
            "get": {
                "tags": ["Laundry"],
                "summary": "Per-dhobi totals for a month",
                "parameters": [{"$ref": "#/parameters/month"}, {"$ref": "#/parameters/year"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/api/v1/laundry/students": {
            "get": {
                "tags": ["Laundry"],
                "summary": "Per-student laundry totals for a month",
                "parameters": [{"$ref": "#/parameters/month"}, {"$ref": "#/parameters/year"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/api/v1/dashboard/stats": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Current month headline figures",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/api/v1/dashboard/pocket-money-chart": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Pocket money given and remaining per month",
                "parameters": [{"name": "year", "in": "query", "type": "integer"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/api/v1/dashboard/laundry-chart": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Laundry clothes and cost per month",
                "parameters": [{"name": "year", "in": "query", "type": "integer"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        }
    },
    "parameters": {
        "id": {"name": "id", "in": "path", "required": true, "type": "string"},
        "reportId": {
            "name": "reportId",
            "in": "path",
            "required": true,
            "type": "string",
            "enum": ["pocket-money-monthly", "pocket-money-outstanding", "laundry-monthly", "laundry-cost", "dhobi-summary", "student-full"]
        },
        "month": {"name": "month", "in": "query", "required": true, "type": "integer", "minimum": 1, "maximum": 12},
        "year": {"name": "year", "in": "query", "required": true, "type": "integer"}
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "RefreshRequest": {
            "type": "object",
            "required": ["refresh_token"],
            "properties": {
                "refresh_token": {"type": "string"}
            }
        },
        "StudentRequest": {
            "type": "object",
            "required": ["studentId", "name", "class", "parentName", "monthlyPocketMoney"],
            "properties": {
                "studentId": {"type": "string"},
                "name": {"type": "string"},
                "class": {"type": "string"},
                "section": {"type": "string"},
                "parentName": {"type": "string"},
                "monthlyPocketMoney": {"type": "number"},
                "status": {"type": "string", "enum": ["active", "inactive"]}
            }
        },
        "LaundryStaffRequest": {
            "type": "object",
            "required": ["name", "perClothRate"],
            "properties": {
                "name": {"type": "string"},
                "phone": {"type": "string"},
                "perClothRate": {"type": "number"},
                "status": {"type": "string", "enum": ["active", "inactive"]}
            }
        },
        "PocketMoneyRequest": {
            "type": "object",
            "required": ["student_id", "amount", "transaction_date"],
            "properties": {
                "student_id": {"type": "string", "format": "uuid"},
                "amount": {"type": "number"},
                "transaction_date": {"type": "string", "format": "date"},
                "remarks": {"type": "string"}
            }
        },
        "LaundryRecordRequest": {
            "type": "object",
            "required": ["student_id", "staff_id", "clothes_count", "record_date"],
            "properties": {
                "student_id": {"type": "string", "format": "uuid"},
                "staff_id": {"type": "string", "format": "uuid"},
                "clothes_count": {"type": "integer"},
                "rate_per_cloth": {"type": "number"},
                "record_date": {"type": "string", "format": "date"}
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
                "success": {"type": "boolean"},
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
