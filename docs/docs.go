// Package docs holds the swagger document served at /swagger. Maintained by
// hand alongside the handler annotations; regenerate with swag init once it
// is wired into the build.
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
        "/api/v1/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Authentication"],
                "summary": "User login",
                "parameters": [
                    {
                        "description": "Login credentials",
                        "name": "credentials",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/domain.LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.LoginResponse"}},
                    "400": {"description": "Bad Request"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/api/v1/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Authentication"],
                "summary": "Current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.User"}},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/api/v1/devices": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Devices"],
                "summary": "List devices",
                "parameters": [
                    {"type": "integer", "default": 1, "name": "page", "in": "query"},
                    {"type": "integer", "default": 50, "name": "page_size", "in": "query"},
                    {"type": "string", "name": "search", "in": "query"},
                    {"type": "string", "name": "device_type", "in": "query"},
                    {"type": "boolean", "name": "is_active", "in": "query"},
                    {"type": "boolean", "name": "is_flagged", "in": "query"},
                    {"type": "integer", "name": "vlan_id", "in": "query"},
                    {"type": "string", "default": "last_seen", "name": "sort_by", "in": "query"},
                    {"type": "string", "default": "desc", "name": "sort_order", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.DeviceListResponse"}},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/api/v1/devices/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Devices"],
                "summary": "Get a device by id",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.DeviceView"}},
                    "404": {"description": "Not Found"}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Devices"],
                "summary": "Update device metadata",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Fields to update",
                        "name": "update",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/domain.DeviceUpdate"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.DeviceView"}},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["Devices"],
                "summary": "Delete a device",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/api/v1/devices/{id}/flows": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Devices"],
                "summary": "List flows for a device",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "default": 1, "name": "page", "in": "query"},
                    {"type": "integer", "default": 50, "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.FlowListResponse"}},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/api/v1/flows": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Flows"],
                "summary": "List traffic flows",
                "parameters": [
                    {"type": "integer", "default": 1, "name": "page", "in": "query"},
                    {"type": "integer", "default": 50, "name": "page_size", "in": "query"},
                    {"type": "string", "name": "src_mac", "in": "query"},
                    {"type": "string", "name": "dst_mac", "in": "query"},
                    {"type": "string", "name": "src_ip", "in": "query"},
                    {"type": "string", "name": "dst_ip", "in": "query"},
                    {"type": "integer", "name": "vlan_id", "in": "query"},
                    {"type": "integer", "name": "protocol", "in": "query"},
                    {"type": "integer", "name": "port", "in": "query"},
                    {"type": "string", "default": "last_seen", "name": "sort_by", "in": "query"},
                    {"type": "string", "default": "desc", "name": "sort_order", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.FlowListResponse"}},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/api/v1/flows/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Flows"],
                "summary": "Get a flow by id",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.FlowView"}},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/api/v1/stats/dashboard": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Statistics"],
                "summary": "Dashboard statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.DashboardStats"}}
                }
            }
        },
        "/api/v1/stats/stream": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Statistics"],
                "summary": "Live dashboard stream",
                "responses": {
                    "101": {"description": "Switching Protocols"}
                }
            }
        }
    },
    "definitions": {
        "domain.DashboardStats": {
            "type": "object",
            "properties": {
                "total_devices": {"type": "integer"},
                "active_devices": {"type": "integer"},
                "total_flows": {"type": "integer"},
                "total_packets": {"type": "integer"},
                "total_bytes": {"type": "integer"},
                "protocols": {"type": "array", "items": {"$ref": "#/definitions/domain.ProtocolStats"}},
                "top_talkers": {"type": "array", "items": {"$ref": "#/definitions/domain.TopTalker"}},
                "vlans": {"type": "array", "items": {"$ref": "#/definitions/domain.VLANStats"}},
                "uptime_seconds": {"type": "integer"}
            }
        },
        "domain.ProtocolStats": {
            "type": "object",
            "properties": {
                "protocol_name": {"type": "string"},
                "packet_count": {"type": "integer"},
                "byte_count": {"type": "integer"},
                "percentage": {"type": "number"}
            }
        },
        "domain.TopTalker": {
            "type": "object",
            "properties": {
                "mac_address": {"type": "string"},
                "device_name": {"type": "string"},
                "device_type": {"type": "string"},
                "bytes_total": {"type": "integer"},
                "packets_total": {"type": "integer"}
            }
        },
        "domain.VLANStats": {
            "type": "object",
            "properties": {
                "vlan_id": {"type": "integer"},
                "device_count": {"type": "integer"},
                "packet_count": {"type": "integer"},
                "byte_count": {"type": "integer"}
            }
        },
        "domain.DeviceListResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/domain.DeviceView"}},
                "total": {"type": "integer"},
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "pages": {"type": "integer"}
            }
        },
        "domain.DeviceUpdate": {
            "type": "object",
            "properties": {
                "device_type": {"type": "string"},
                "device_name": {"type": "string"},
                "device_notes": {"type": "string"},
                "is_gateway": {"type": "boolean"},
                "is_flagged": {"type": "boolean"}
            }
        },
        "domain.DeviceView": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "mac_address": {"type": "string"},
                "oui_vendor": {"type": "string"},
                "device_type": {"type": "string"},
                "device_name": {"type": "string"},
                "device_notes": {"type": "string"},
                "first_seen": {"type": "string"},
                "last_seen": {"type": "string"},
                "total_packets_sent": {"type": "integer"},
                "total_packets_received": {"type": "integer"},
                "total_bytes_sent": {"type": "integer"},
                "total_bytes_received": {"type": "integer"},
                "is_gateway": {"type": "boolean"},
                "is_active": {"type": "boolean"},
                "is_flagged": {"type": "boolean"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"},
                "ip_addresses": {"type": "array", "items": {"type": "string"}},
                "vlans": {"type": "array", "items": {"type": "integer"}}
            }
        },
        "domain.FlowListResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/domain.FlowView"}},
                "total": {"type": "integer"},
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "pages": {"type": "integer"}
            }
        },
        "domain.FlowView": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "src_mac": {"type": "string"},
                "src_ip": {"type": "string"},
                "src_port": {"type": "integer"},
                "dst_mac": {"type": "string"},
                "dst_ip": {"type": "string"},
                "dst_port": {"type": "integer"},
                "vlan_id": {"type": "integer"},
                "ip_protocol": {"type": "integer"},
                "protocol_name": {"type": "string"},
                "first_seen": {"type": "string"},
                "last_seen": {"type": "string"},
                "packet_count": {"type": "integer"},
                "byte_count": {"type": "integer"}
            }
        },
        "domain.LoginRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "domain.LoginResponse": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "user": {"$ref": "#/definitions/domain.User"}
            }
        },
        "domain.User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "username": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string"},
                "is_active": {"type": "boolean"},
                "last_login": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "NetSentinel API",
	Description:      "Passive network scanner API for IT/OT infrastructure monitoring.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
