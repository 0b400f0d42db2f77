// Package docs holds the OpenAPI document served under /swagger.
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
		"/health": {
			"get": {
				"tags": [
					"health"
				],
				"summary": "Service health",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handlers.HealthResponse"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/handlers.HealthResponse"
						}
					}
				}
			}
		},
		"/seed_db": {
			"get": {
				"tags": [
					"seed"
				],
				"summary": "Reset and seed the database",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/utils.MessageBody"
						}
					},
					"500": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/utils.ErrorBody"
						}
					}
				}
			}
		},
		"/tickets": {
			"get": {
				"tags": [
					"tickets"
				],
				"summary": "List tickets",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"properties": {
								"tickets": {
									"type": "array",
									"items": {
										"$ref": "#/definitions/dto.TicketDetailDTO"
									}
								}
							}
						}
					},
					"500": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/utils.ErrorBody"
						}
					}
				}
			}
		},
		"/tickets/details/{id}": {
			"get": {
				"tags": [
					"tickets"
				],
				"summary": "Get ticket details",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Ticket ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"properties": {
								"ticket": {
									"$ref": "#/definitions/dto.TicketDetailDTO"
								}
							}
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/utils.ErrorBody"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/utils.ErrorBody"
						}
					},
					"500": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/utils.ErrorBody"
						}
					}
				}
			}
		},
		"/tickets/status/{status}": {
			"get": {
				"tags": [
					"tickets"
				],
				"summary": "List tickets by status",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Ticket status",
						"name": "status",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"properties": {
								"tickets": {
									"type": "array",
									"items": {
										"$ref": "#/definitions/dto.TicketDetailDTO"
									}
								}
							}
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/utils.ErrorBody"
						}
					},
					"500": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/utils.ErrorBody"
						}
					}
				}
			}
		},
		"/tickets/sort-by-priority": {
			"get": {
				"tags": [
					"tickets"
				],
				"summary": "List tickets by ascending priority",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"properties": {
								"tickets": {
									"type": "array",
									"items": {
										"$ref": "#/definitions/dto.TicketDetailDTO"
									}
								}
							}
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/utils.ErrorBody"
						}
					},
					"500": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/utils.ErrorBody"
						}
					}
				}
			}
		},
		"/tickets/new": {
			"post": {
				"tags": [
					"tickets"
				],
				"summary": "Create a ticket",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Ticket data",
						"name": "ticket",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/ticket.CreateTicketRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"type": "object",
							"properties": {
								"ticket": {
									"$ref": "#/definitions/dto.TicketDetailDTO"
								}
							}
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/utils.ErrorBody"
						}
					},
					"500": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/utils.ErrorBody"
						}
					}
				}
			}
		},
		"/tickets/update/{id}": {
			"post": {
				"tags": [
					"tickets"
				],
				"summary": "Update a ticket",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Ticket ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Fields to change",
						"name": "ticket",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/ticket.UpdateTicketRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"properties": {
								"ticket": {
									"$ref": "#/definitions/dto.TicketDetailDTO"
								}
							}
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/utils.ErrorBody"
						}
					},
					"404": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/utils.ErrorBody"
						}
					},
					"500": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/utils.ErrorBody"
						}
					}
				}
			}
		},
		"/tickets/delete": {
			"post": {
				"tags": [
					"tickets"
				],
				"summary": "Delete a ticket",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Ticket to delete",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/ticket.DeleteTicketRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/utils.MessageBody"
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/utils.ErrorBody"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.MessageBody"
						}
					},
					"500": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/utils.ErrorBody"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"dto.CustomerDTO": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"createdAt": {
					"type": "string",
					"format": "date-time"
				},
				"updatedAt": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"dto.AgentDTO": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"createdAt": {
					"type": "string",
					"format": "date-time"
				},
				"updatedAt": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"dto.TicketDetailDTO": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"priority": {
					"type": "integer"
				},
				"createdAt": {
					"type": "string",
					"format": "date-time"
				},
				"updatedAt": {
					"type": "string",
					"format": "date-time"
				},
				"customer": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.CustomerDTO"
					}
				},
				"agent": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.AgentDTO"
					}
				}
			}
		},
		"handlers.HealthResponse": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string"
				},
				"error": {
					"type": "string"
				}
			}
		},
		"ticket.CreateTicketRequest": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"priority": {
					"type": "integer"
				},
				"customerId": {
					"type": "integer"
				},
				"agentId": {
					"type": "integer"
				}
			}
		},
		"ticket.UpdateTicketRequest": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"priority": {
					"type": "integer"
				},
				"customerId": {
					"type": "integer"
				},
				"agentId": {
					"type": "integer"
				}
			}
		},
		"ticket.DeleteTicketRequest": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				}
			}
		},
		"utils.ErrorBody": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string"
				},
				"error": {
					"type": "string"
				}
			}
		},
		"utils.MessageBody": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string"
				}
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
	Title:            "ticketdesk API",
	Description:      "Support tickets with their customers and agents.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
