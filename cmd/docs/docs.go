// Package docs holds the swagger document served under /swagger.
// Regenerate with: swag init -g cmd/ledgerd/main.go -o cmd/docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/transactions": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "List transactions",
                "parameters": [
                    {"enum": ["Sales", "Purchase", "Payment", "Receipt", "Journal"], "type": "string", "name": "type", "in": "query"},
                    {"type": "integer", "default": 20, "name": "limit", "in": "query"},
                    {"type": "string", "name": "nextToken", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ListTransactionsResponse"}},
                    "400": {"description": "Invalid query parameters"},
                    "401": {"description": "Unauthorized"}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Post a transaction",
                "parameters": [
                    {"name": "transaction", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.TransactionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.TransactionIDResponse"}},
                    "400": {"description": "Invalid input format or validation error"},
                    "409": {"description": "Duplicate voucher, unknown reference or insufficient stock"},
                    "500": {"description": "Posting failed"}
                }
            }
        },
        "/transactions/{transactionID}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Get a transaction by ID",
                "parameters": [{"type": "string", "name": "transactionID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TransactionResponse"}},
                    "404": {"description": "Transaction not found"}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Replace a transaction",
                "parameters": [
                    {"type": "string", "name": "transactionID", "in": "path", "required": true},
                    {"name": "transaction", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.TransactionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TransactionIDResponse"}},
                    "404": {"description": "Transaction not found"},
                    "409": {"description": "Duplicate voucher, unknown reference or insufficient stock"}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Delete a transaction",
                "parameters": [{"type": "string", "name": "transactionID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Transaction not found"}
                }
            }
        }
    },
    "definitions": {
        "dto.TransactionIDResponse": {
            "type": "object",
            "properties": {"id": {"type": "string"}}
        },
        "dto.TransactionLineRequest": {
            "type": "object",
            "required": ["account_id", "type"],
            "properties": {
                "account_id": {"type": "string"},
                "item_id": {"type": "string"},
                "quantity": {"type": "number"},
                "rate": {"type": "number"},
                "amount": {"type": "number"},
                "tax_rate": {"type": "number"},
                "tax_amount": {"type": "number"},
                "total_amount": {"type": "number"},
                "type": {"type": "string", "example": "Debit"}
            }
        },
        "dto.TransactionRequest": {
            "type": "object",
            "required": ["voucher_no", "date", "type", "details"],
            "properties": {
                "voucher_no": {"type": "string", "example": "S-1"},
                "date": {"type": "string", "example": "2024-01-15"},
                "type": {"type": "string", "example": "Sales"},
                "description": {"type": "string"},
                "amount": {"type": "number"},
                "party_id": {"type": "string"},
                "tax_amount": {"type": "number"},
                "details": {"type": "array", "minItems": 2, "items": {"$ref": "#/definitions/dto.TransactionLineRequest"}}
            }
        },
        "dto.TransactionResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "voucher_no": {"type": "string"},
                "date": {"type": "string"},
                "type": {"type": "string"},
                "description": {"type": "string"},
                "amount": {"type": "number"},
                "tax_amount": {"type": "number"},
                "total_amount": {"type": "number"},
                "party_id": {"type": "string"},
                "created_at": {"type": "string"},
                "details": {"type": "array", "items": {"type": "object"}},
                "tax_register": {"type": "object"}
            }
        },
        "dto.ListTransactionsResponse": {
            "type": "object",
            "properties": {
                "transactions": {"type": "array", "items": {"$ref": "#/definitions/dto.TransactionResponse"}},
                "nextToken": {"type": "string"}
            }
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
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Trading Ledger API",
	Description:      "Double-entry posting engine for sales, purchases, payments, receipts and journals.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
