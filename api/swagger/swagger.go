package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Courses API",
        "description": "Courses, students and course participation",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Courses", "description": "Courses and participation"},
        {"name": "Students", "description": "Student roster"},
        {"name": "Reports", "description": "Per-student course report"}
    ],
    "paths": {
        "/courses": {
            "get": {
                "tags": ["Courses"],
                "summary": "List courses",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Course"}}}
                }
            },
            "post": {
                "tags": ["Courses"],
                "summary": "Create course",
                "consumes": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/CourseRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/CourseRecord"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/ErrorList"}}
                }
            }
        },
        "/courses/{id}": {
            "parameters": [
                {"in": "path", "name": "id", "required": true, "type": "integer"}
            ],
            "get": {
                "tags": ["Courses"],
                "summary": "Get course detail",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Course"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorList"}}
                }
            },
            "put": {
                "tags": ["Courses"],
                "summary": "Update course",
                "parameters": [
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/CourseRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/CourseRecord"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/ErrorList"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorList"}}
                }
            },
            "delete": {
                "tags": ["Courses"],
                "summary": "Delete course and its participants",
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorList"}}
                }
            }
        },
        "/courses/{id}/assign/{student_id}": {
            "parameters": [
                {"in": "path", "name": "id", "required": true, "type": "integer"},
                {"in": "path", "name": "student_id", "required": true, "type": "integer"}
            ],
            "post": {
                "tags": ["Courses"],
                "summary": "Assign student to course",
                "responses": {
                    "201": {"description": "Assigned", "schema": {"type": "object"}},
                    "400": {"description": "Already assigned to course", "schema": {"$ref": "#/definitions/ErrorList"}},
                    "404": {"description": "Course or student not found", "schema": {"$ref": "#/definitions/ErrorList"}}
                }
            }
        },
        "/courses/{id}/unassign/{student_id}": {
            "parameters": [
                {"in": "path", "name": "id", "required": true, "type": "integer"},
                {"in": "path", "name": "student_id", "required": true, "type": "integer"}
            ],
            "post": {
                "tags": ["Courses"],
                "summary": "Unassign student from course",
                "responses": {
                    "201": {"description": "Unassigned", "schema": {"type": "object"}},
                    "400": {"description": "Student not assigned to course", "schema": {"$ref": "#/definitions/ErrorList"}},
                    "404": {"description": "Course or student not found", "schema": {"$ref": "#/definitions/ErrorList"}}
                }
            }
        },
        "/courses/{id}/complete/{student_id}": {
            "parameters": [
                {"in": "path", "name": "id", "required": true, "type": "integer"},
                {"in": "path", "name": "student_id", "required": true, "type": "integer"}
            ],
            "post": {
                "tags": ["Courses"],
                "summary": "Mark participation as completed",
                "responses": {
                    "201": {"description": "Completed", "schema": {"type": "object"}},
                    "400": {"description": "Student not assigned to course", "schema": {"$ref": "#/definitions/ErrorList"}},
                    "404": {"description": "Course or student not found", "schema": {"$ref": "#/definitions/ErrorList"}}
                }
            }
        },
        "/courses/report": {
            "get": {
                "tags": ["Reports"],
                "summary": "Students course report",
                "description": "Format from the format query parameter, then the Accept header. Also served as /courses/report.json, /courses/report.csv and /courses/report.pdf.",
                "produces": ["application/json", "text/csv", "application/pdf"],
                "parameters": [
                    {"in": "query", "name": "format", "type": "string", "enum": ["json", "csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/StudentReportItem"}}},
                    "404": {"description": "Unsupported format", "schema": {"$ref": "#/definitions/ErrorList"}}
                }
            }
        },
        "/students": {
            "get": {
                "tags": ["Students"],
                "summary": "List students",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Student"}}}
                }
            },
            "post": {
                "tags": ["Students"],
                "summary": "Create student",
                "parameters": [
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/StudentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Student"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/ErrorList"}}
                }
            }
        },
        "/students/{id}": {
            "parameters": [
                {"in": "path", "name": "id", "required": true, "type": "integer"}
            ],
            "get": {
                "tags": ["Students"],
                "summary": "Get student detail",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Student"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorList"}}
                }
            },
            "put": {
                "tags": ["Students"],
                "summary": "Update student",
                "parameters": [
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/StudentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Student"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/ErrorList"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorList"}}
                }
            },
            "delete": {
                "tags": ["Students"],
                "summary": "Delete student and its participations",
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorList"}}
                }
            }
        }
    },
    "definitions": {
        "Participant": {
            "type": "object",
            "properties": {
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "Course": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "start_date": {"type": "string", "format": "date-time"},
                "end_date": {"type": "string", "format": "date-time"},
                "students_count": {"type": "integer"},
                "participants": {"type": "array", "items": {"$ref": "#/definitions/Participant"}}
            }
        },
        "CourseRecord": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "start_date": {"type": "string", "format": "date-time"},
                "end_date": {"type": "string", "format": "date-time"}
            }
        },
        "CourseRequest": {
            "type": "object",
            "required": ["name", "start_date", "end_date"],
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"},
                "start_date": {"type": "string", "format": "date-time"},
                "end_date": {"type": "string", "format": "date-time"}
            }
        },
        "Student": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "StudentRequest": {
            "type": "object",
            "required": ["first_name", "last_name", "email"],
            "properties": {
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "email": {"type": "string", "format": "email"}
            }
        },
        "StudentReportItem": {
            "type": "object",
            "properties": {
                "full_name": {"type": "string"},
                "num_assigned": {"type": "integer"},
                "num_completed": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "enum": ["invalid", "not_found", "error"]},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ErrorList": {
            "type": "array",
            "items": {"$ref": "#/definitions/APIError"}
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
