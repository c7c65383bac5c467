package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {"title": "School Records API", "description": "CRUD and analytics for students, staff, classrooms, attendance, fees, exams and timetables.", "version": "1.0.0"},
    "basePath": "/api",
    "schemes": ["http"],
    "securityDefinitions": {"BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}},
    "tags": [
        {"name": "Auth"},
        {"name": "Users"},
        {"name": "Students"},
        {"name": "Employees"},
        {"name": "Classrooms"},
        {"name": "Attendance"},
        {"name": "Payments"},
        {"name": "Exams"},
        {"name": "Results"},
        {"name": "Schedules"},
        {"name": "Analytics"}
    ],
    "paths": {
        "/students": {
            "get": {"tags": ["Students"], "summary": "List students", "security": [{"BearerAuth": []}], "parameters": [{"name": "search", "in": "query", "type": "string"}, {"name": "section", "in": "query", "type": "string"}, {"name": "className", "in": "query", "type": "string"}, {"name": "sort", "in": "query", "type": "string"}, {"name": "order", "in": "query", "type": "string"}, {"name": "page", "in": "query", "type": "integer"}, {"name": "limit", "in": "query", "type": "integer"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "post": {"tags": ["Students"], "summary": "Create student", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/students/{id}": {
            "get": {"tags": ["Students"], "summary": "Get student", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "patch": {"tags": ["Students"], "summary": "Update student fields", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "delete": {"tags": ["Students"], "summary": "Delete student", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}], "responses": {"204": {"description": "Deleted"}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/employees": {
            "get": {"tags": ["Employees"], "summary": "List employees", "security": [{"BearerAuth": []}], "parameters": [{"name": "search", "in": "query", "type": "string"}, {"name": "role", "in": "query", "type": "string"}, {"name": "shift", "in": "query", "type": "string"}, {"name": "page", "in": "query", "type": "integer"}, {"name": "limit", "in": "query", "type": "integer"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "post": {"tags": ["Employees"], "summary": "Create employee", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/employees/{id}": {
            "get": {"tags": ["Employees"], "summary": "Get employee", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "patch": {"tags": ["Employees"], "summary": "Update employee fields", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "delete": {"tags": ["Employees"], "summary": "Delete employee", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}], "responses": {"204": {"description": "Deleted"}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/classrooms": {
            "get": {"tags": ["Classrooms"], "summary": "List classrooms", "security": [{"BearerAuth": []}], "parameters": [{"name": "search", "in": "query", "type": "string"}, {"name": "section", "in": "query", "type": "string"}, {"name": "teacherId", "in": "query", "type": "integer"}, {"name": "page", "in": "query", "type": "integer"}, {"name": "limit", "in": "query", "type": "integer"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "post": {"tags": ["Classrooms"], "summary": "Create classroom", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/classrooms/{id}": {
            "get": {"tags": ["Classrooms"], "summary": "Get classroom", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "patch": {"tags": ["Classrooms"], "summary": "Update classroom fields", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "delete": {"tags": ["Classrooms"], "summary": "Delete classroom", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}], "responses": {"204": {"description": "Deleted"}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/attendance": {
            "get": {"tags": ["Attendance"], "summary": "List attendance", "security": [{"BearerAuth": []}], "parameters": [{"name": "studentId", "in": "query", "type": "integer"}, {"name": "status", "in": "query", "type": "string"}, {"name": "date_from", "in": "query", "type": "string"}, {"name": "date_to", "in": "query", "type": "string"}, {"name": "order", "in": "query", "type": "string"}, {"name": "page", "in": "query", "type": "integer"}, {"name": "limit", "in": "query", "type": "integer"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "post": {"tags": ["Attendance"], "summary": "Create attendance record", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/attendance/{id}": {
            "get": {"tags": ["Attendance"], "summary": "Get attendance record", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "patch": {"tags": ["Attendance"], "summary": "Update attendance record fields", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "delete": {"tags": ["Attendance"], "summary": "Delete attendance record", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}], "responses": {"204": {"description": "Deleted"}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/payments": {
            "get": {"tags": ["Payments"], "summary": "List payments", "security": [{"BearerAuth": []}], "parameters": [{"name": "studentId", "in": "query", "type": "integer"}, {"name": "status", "in": "query", "type": "string"}, {"name": "date_from", "in": "query", "type": "string"}, {"name": "date_to", "in": "query", "type": "string"}, {"name": "order", "in": "query", "type": "string"}, {"name": "page", "in": "query", "type": "integer"}, {"name": "limit", "in": "query", "type": "integer"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "post": {"tags": ["Payments"], "summary": "Create payment", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/payments/{id}": {
            "get": {"tags": ["Payments"], "summary": "Get payment", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "patch": {"tags": ["Payments"], "summary": "Update payment fields", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "delete": {"tags": ["Payments"], "summary": "Delete payment", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}], "responses": {"204": {"description": "Deleted"}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/exams": {
            "get": {"tags": ["Exams"], "summary": "List exams", "security": [{"BearerAuth": []}], "parameters": [{"name": "search", "in": "query", "type": "string"}, {"name": "section", "in": "query", "type": "string"}, {"name": "className", "in": "query", "type": "string"}, {"name": "page", "in": "query", "type": "integer"}, {"name": "limit", "in": "query", "type": "integer"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "post": {"tags": ["Exams"], "summary": "Create exam", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/exams/{id}": {
            "get": {"tags": ["Exams"], "summary": "Get exam", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "patch": {"tags": ["Exams"], "summary": "Update exam fields", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "delete": {"tags": ["Exams"], "summary": "Delete exam", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}], "responses": {"204": {"description": "Deleted"}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/results": {
            "get": {"tags": ["Results"], "summary": "List results", "security": [{"BearerAuth": []}], "parameters": [{"name": "examId", "in": "query", "type": "integer"}, {"name": "studentId", "in": "query", "type": "integer"}, {"name": "subject", "in": "query", "type": "string"}, {"name": "page", "in": "query", "type": "integer"}, {"name": "limit", "in": "query", "type": "integer"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "post": {"tags": ["Results"], "summary": "Create result", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/results/{id}": {
            "get": {"tags": ["Results"], "summary": "Get result", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "patch": {"tags": ["Results"], "summary": "Update result fields", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "delete": {"tags": ["Results"], "summary": "Delete result", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}], "responses": {"204": {"description": "Deleted"}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/schedules": {
            "get": {"tags": ["Schedules"], "summary": "List schedules", "security": [{"BearerAuth": []}], "parameters": [{"name": "section", "in": "query", "type": "string"}, {"name": "className", "in": "query", "type": "string"}, {"name": "day", "in": "query", "type": "string"}, {"name": "teacherId", "in": "query", "type": "integer"}, {"name": "page", "in": "query", "type": "integer"}, {"name": "limit", "in": "query", "type": "integer"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "post": {"tags": ["Schedules"], "summary": "Create schedule", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/schedules/{id}": {
            "get": {"tags": ["Schedules"], "summary": "Get schedule", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "patch": {"tags": ["Schedules"], "summary": "Update schedule fields", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "delete": {"tags": ["Schedules"], "summary": "Delete schedule", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}], "responses": {"204": {"description": "Deleted"}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/users": {
            "get": {"tags": ["Users"], "summary": "List users", "security": [{"BearerAuth": []}], "parameters": [{"name": "role", "in": "query", "type": "string"}, {"name": "search", "in": "query", "type": "string"}, {"name": "page", "in": "query", "type": "integer"}, {"name": "limit", "in": "query", "type": "integer"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "post": {"tags": ["Users"], "summary": "Create user", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/users/{id}": {
            "get": {"tags": ["Users"], "summary": "Get user", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "patch": {"tags": ["Users"], "summary": "Update user fields", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "delete": {"tags": ["Users"], "summary": "Delete user", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}], "responses": {"204": {"description": "Deleted"}, "404": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/students/{id}/payments": {
            "get": {"tags": ["Payments"], "summary": "List payments of one student", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}, {"name": "page", "in": "query", "type": "integer"}, {"name": "limit", "in": "query", "type": "integer"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/students/{id}/attendance": {
            "get": {"tags": ["Attendance"], "summary": "List attendance of one student", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}, {"name": "page", "in": "query", "type": "integer"}, {"name": "limit", "in": "query", "type": "integer"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/students/{id}/results": {
            "get": {"tags": ["Results"], "summary": "List results of one student", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}, {"name": "page", "in": "query", "type": "integer"}, {"name": "limit", "in": "query", "type": "integer"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/employees/{id}/schedules": {
            "get": {"tags": ["Schedules"], "summary": "List lessons taught by one employee", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}, {"name": "page", "in": "query", "type": "integer"}, {"name": "limit", "in": "query", "type": "integer"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/exams/{id}/results": {
            "get": {"tags": ["Results"], "summary": "List results of one exam", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}, {"name": "page", "in": "query", "type": "integer"}, {"name": "limit", "in": "query", "type": "integer"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/auth/login": {
            "post": {"tags": ["Auth"], "summary": "Issue a bearer token", "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/stats": {
            "get": {"tags": ["Analytics"], "summary": "Record counts per collection", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/analytics": {
            "get": {"tags": ["Analytics"], "summary": "Aggregated analytics", "description": "Unknown period, section or category values fall back to all.", "security": [{"BearerAuth": []}], "parameters": [{"name": "period", "in": "query", "type": "string", "enum": ["week", "month", "quarter", "year", "all"]}, {"name": "section", "in": "query", "type": "string", "enum": ["primary", "secondary", "highschool", "all"]}, {"name": "category", "in": "query", "type": "string", "enum": ["demographics", "attendance", "academic", "financial", "teachers", "all"]}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "500": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/analytics/export": {
            "get": {"tags": ["Analytics"], "summary": "Download the analytics report", "security": [{"BearerAuth": []}], "produces": ["text/csv", "application/pdf"], "parameters": [{"name": "period", "in": "query", "type": "string", "enum": ["week", "month", "quarter", "year", "all"]}, {"name": "section", "in": "query", "type": "string", "enum": ["primary", "secondary", "highschool", "all"]}, {"name": "category", "in": "query", "type": "string", "enum": ["demographics", "attendance", "academic", "financial", "teachers", "all"]}, {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}], "responses": {"200": {"description": "File attachment", "schema": {"type": "file"}}, "400": {"description": "Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/analytics/system": {
            "get": {"tags": ["Analytics"], "summary": "Cache and request instrumentation snapshot", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        }
    },
    "definitions": {
        "LoginRequest": {"type": "object", "properties": {"username": {"type": "string"}, "password": {"type": "string"}}, "required": ["username", "password"]},
        "Pagination": {"type": "object", "properties": {"page": {"type": "integer"}, "page_size": {"type": "integer"}, "total_count": {"type": "integer"}}},
        "FieldError": {"type": "object", "properties": {"field": {"type": "string"}, "message": {"type": "string"}}},
        "APIError": {"type": "object", "properties": {"code": {"type": "string"}, "message": {"type": "string"}, "status": {"type": "integer"}, "errors": {"type": "array", "items": {"$ref": "#/definitions/FieldError"}}}},
        "ResponseEnvelope": {"type": "object", "properties": {"data": {"type": "object"}, "error": {"$ref": "#/definitions/APIError"}, "pagination": {"$ref": "#/definitions/Pagination"}, "meta": {"type": "object"}}}
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
