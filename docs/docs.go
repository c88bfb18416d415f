// Package docs holds the OpenAPI document of the Tag Cloud API.
// Regenerate it with `swag init -g cmd/tagcloud_api/main.go` after changing handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "Apache 2.0",
            "url": "https://opensource.org/licenses/Apache-2.0"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/clouds": {
            "post": {
                "description": "Counts the words of the plain-text body and renders the most frequent ones as an HTML tag cloud. The result is cached and can be fetched again from the Location header until it expires.",
                "consumes": [
                    "text/plain"
                ],
                "produces": [
                    "text/html",
                    "application/json"
                ],
                "tags": [
                    "clouds"
                ],
                "summary": "Render a tag cloud",
                "parameters": [
                    {
                        "type": "integer",
                        "default": 50,
                        "description": "Number of words in the cloud",
                        "name": "words",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "default": "request",
                        "description": "Source name shown in the title",
                        "name": "name",
                        "in": "query"
                    },
                    {
                        "enum": [
                            "html",
                            "json"
                        ],
                        "type": "string",
                        "description": "Response format",
                        "name": "format",
                        "in": "query"
                    },
                    {
                        "description": "Text to analyse",
                        "name": "text",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "string"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Cloud when format=json",
                        "schema": {
                            "$ref": "#/definitions/router.CloudResponse"
                        },
                        "headers": {
                            "Location": {
                                "type": "string",
                                "description": "/clouds/{id}"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "413": {
                        "description": "Request Entity Too Large",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/clouds/{id}": {
            "get": {
                "produces": [
                    "text/html"
                ],
                "tags": [
                    "clouds"
                ],
                "summary": "Get a cached tag cloud",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "Cloud ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "HTML document",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "cloud.Cloud": {
            "type": "object",
            "properties": {
                "entries": {
                    "description": "Entries are in alphabetical order.",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/freq.Pair"
                    }
                },
                "max_count": {
                    "type": "integer"
                },
                "min_count": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "size": {
                    "type": "integer"
                },
                "total_words": {
                    "type": "integer"
                },
                "vocabulary": {
                    "type": "integer"
                }
            }
        },
        "freq.Pair": {
            "type": "object",
            "properties": {
                "count": {
                    "type": "integer"
                },
                "word": {
                    "type": "string"
                }
            }
        },
        "render.FontEntry": {
            "type": "object",
            "properties": {
                "count": {
                    "type": "integer"
                },
                "font_size": {
                    "type": "integer"
                },
                "word": {
                    "type": "string"
                }
            }
        },
        "router.CloudResponse": {
            "type": "object",
            "properties": {
                "cloud": {
                    "$ref": "#/definitions/cloud.Cloud"
                },
                "fonts": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/render.FontEntry"
                    }
                },
                "id": {
                    "type": "string",
                    "format": "uuid"
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
	Title:            "Tag Cloud API",
	Description:      "Renders the most frequent words of a plain-text document as an HTML tag cloud.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
