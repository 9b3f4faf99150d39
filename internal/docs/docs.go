// Package docs registers the OpenAPI document served at /swagger.
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
        "/auth/create-account": {"post": {"tags": ["auth"], "summary": "Create an account", "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateAccountRequest"}}], "responses": {"201": {"description": "Account created", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}}, "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}, "409": {"description": "Email already registered", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}}},
        "/auth/confirm-account": {"post": {"tags": ["auth"], "summary": "Confirm an account", "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.TokenRequest"}}], "responses": {"200": {"description": "Account confirmed", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}}, "409": {"description": "Invalid token", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}}},
        "/auth/login": {"post": {"tags": ["auth"], "summary": "Login user", "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.LoginRequest"}}], "responses": {"200": {"description": "Session token", "schema": {"$ref": "#/definitions/handlers.LoginResponse"}}, "401": {"description": "Incorrect password", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}, "403": {"description": "Account not confirmed", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}, "404": {"description": "User not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}}},
        "/auth/forgot-password": {"post": {"tags": ["auth"], "summary": "Request a password reset", "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.EmailRequest"}}], "responses": {"200": {"description": "Instructions sent", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}}, "404": {"description": "User not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}}},
        "/auth/validate-token": {"post": {"tags": ["auth"], "summary": "Validate a reset code", "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.TokenRequest"}}], "responses": {"200": {"description": "Token is valid", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}}, "404": {"description": "Token not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}}},
        "/auth/reset-password/{token}": {"post": {"tags": ["auth"], "summary": "Reset password", "parameters": [{"in": "path", "name": "token", "type": "string", "required": true}, {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.ResetPasswordRequest"}}], "responses": {"200": {"description": "Password reset", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}}, "404": {"description": "Token not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}}},
        "/auth/user": {"get": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Get current user", "responses": {"200": {"description": "Current user", "schema": {"$ref": "#/definitions/middleware.Identity"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}}},
        "/auth/update-password": {"post": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Update password", "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.UpdatePasswordRequest"}}], "responses": {"200": {"description": "Password updated", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}}, "401": {"description": "Incorrect current password", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}}},
        "/auth/check-password": {"post": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Check password", "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.PasswordRequest"}}], "responses": {"200": {"description": "Password is correct", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}}, "401": {"description": "Incorrect password", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}}},
        "/budgets": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["budgets"], "summary": "Get budgets", "description": "Get a paginated list of the user's budgets, newest first. page defaults to 1 and page_size to 20 (at most 100). Use total_items and total_pages to fetch the rest.", "parameters": [{"in": "query", "name": "page", "type": "integer", "minimum": 1, "default": 1, "description": "Page number"}, {"in": "query", "name": "page_size", "type": "integer", "minimum": 1, "maximum": 100, "default": 20, "description": "Items per page"}], "responses": {"200": {"description": "Paginated budgets"}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["budgets"], "summary": "Create a budget", "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.BudgetRequest"}}], "responses": {"201": {"description": "Budget created", "schema": {"$ref": "#/definitions/models.Budget"}}, "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}}
        },
        "/budgets/export": {"get": {"security": [{"BearerAuth": []}], "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"], "tags": ["budgets"], "summary": "Export budgets", "responses": {"200": {"description": "Workbook", "schema": {"type": "file"}}}}},
        "/budgets/{budgetId}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["budgets"], "summary": "Get budget by ID", "parameters": [{"in": "path", "name": "budgetId", "type": "integer", "required": true}], "responses": {"200": {"description": "Budget details", "schema": {"$ref": "#/definitions/models.Budget"}}, "401": {"description": "Unauthorized or not the owner", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}, "404": {"description": "Budget not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["budgets"], "summary": "Update budget", "parameters": [{"in": "path", "name": "budgetId", "type": "integer", "required": true}, {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.BudgetRequest"}}], "responses": {"200": {"description": "Updated budget", "schema": {"$ref": "#/definitions/models.Budget"}}, "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["budgets"], "summary": "Delete budget", "parameters": [{"in": "path", "name": "budgetId", "type": "integer", "required": true}], "responses": {"200": {"description": "Budget deleted", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}}}}
        },
        "/budgets/{budgetId}/expenses": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "List expenses", "parameters": [{"in": "path", "name": "budgetId", "type": "integer", "required": true}], "responses": {"200": {"description": "Expenses", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Expense"}}}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "Create an expense", "parameters": [{"in": "path", "name": "budgetId", "type": "integer", "required": true}, {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.ExpenseRequest"}}], "responses": {"201": {"description": "Expense created", "schema": {"$ref": "#/definitions/models.Expense"}}}}
        },
        "/budgets/{budgetId}/expenses/{expenseId}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "Get expense by ID", "parameters": [{"in": "path", "name": "budgetId", "type": "integer", "required": true}, {"in": "path", "name": "expenseId", "type": "integer", "required": true}], "responses": {"200": {"description": "Expense", "schema": {"$ref": "#/definitions/models.Expense"}}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "Update expense", "parameters": [{"in": "path", "name": "budgetId", "type": "integer", "required": true}, {"in": "path", "name": "expenseId", "type": "integer", "required": true}, {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.ExpenseRequest"}}], "responses": {"200": {"description": "Updated expense", "schema": {"$ref": "#/definitions/models.Expense"}}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "Delete expense", "parameters": [{"in": "path", "name": "budgetId", "type": "integer", "required": true}, {"in": "path", "name": "expenseId", "type": "integer", "required": true}], "responses": {"200": {"description": "Expense deleted", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}}}}
        }
    },
    "definitions": {
        "handlers.CreateAccountRequest": {"type": "object", "required": ["email", "name", "password"], "properties": {"name": {"type": "string", "maxLength": 50}, "email": {"type": "string"}, "password": {"type": "string", "minLength": 8}}},
        "handlers.TokenRequest": {"type": "object", "required": ["token"], "properties": {"token": {"type": "string", "minLength": 6, "maxLength": 6}}},
        "handlers.LoginRequest": {"type": "object", "required": ["email", "password"], "properties": {"email": {"type": "string"}, "password": {"type": "string"}}},
        "handlers.EmailRequest": {"type": "object", "required": ["email"], "properties": {"email": {"type": "string"}}},
        "handlers.ResetPasswordRequest": {"type": "object", "required": ["password"], "properties": {"password": {"type": "string", "minLength": 8}}},
        "handlers.UpdatePasswordRequest": {"type": "object", "required": ["current_password", "password"], "properties": {"current_password": {"type": "string"}, "password": {"type": "string", "minLength": 8}}},
        "handlers.PasswordRequest": {"type": "object", "required": ["password"], "properties": {"password": {"type": "string"}}},
        "handlers.LoginResponse": {"type": "object", "properties": {"token": {"type": "string"}}},
        "handlers.MessageResponse": {"type": "object", "properties": {"message": {"type": "string"}}},
        "handlers.BudgetRequest": {"type": "object", "required": ["amount", "name"], "properties": {"name": {"type": "string", "maxLength": 100}, "amount": {"type": "number", "exclusiveMinimum": true, "minimum": 0, "maximum": 9999999999.99, "multipleOf": 0.01}}},
        "handlers.ExpenseRequest": {"type": "object", "required": ["amount", "name"], "properties": {"name": {"type": "string", "maxLength": 100}, "amount": {"type": "number", "exclusiveMinimum": true, "minimum": 0, "maximum": 9999999999.99, "multipleOf": 0.01}}},
        "handlers.ErrorResponse": {"type": "object", "properties": {"error": {"type": "object", "properties": {"code": {"type": "string"}, "message": {"type": "string"}, "details": {"type": "array", "items": {"type": "object", "properties": {"field": {"type": "string"}, "location": {"type": "string"}, "message": {"type": "string"}}}}}}}},
        "middleware.Identity": {"type": "object", "properties": {"id": {"type": "integer"}, "name": {"type": "string"}, "email": {"type": "string"}}},
        "models.Expense": {"type": "object", "properties": {"id": {"type": "integer"}, "budget_id": {"type": "integer"}, "name": {"type": "string"}, "amount": {"type": "string"}, "created_at": {"type": "string"}, "updated_at": {"type": "string"}}},
        "models.Budget": {"type": "object", "properties": {"id": {"type": "integer"}, "user_id": {"type": "integer"}, "name": {"type": "string"}, "amount": {"type": "string"}, "created_at": {"type": "string"}, "updated_at": {"type": "string"}, "expenses": {"type": "array", "items": {"$ref": "#/definitions/models.Expense"}}}}
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
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "CashTrackr API",
	Description:      "Personal budget tracking with per-user budgets and expenses.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
