// Package docs - OpenAPI описание Floor Plan Service для /swagger
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {
			"name": "API Support"
		},
		"license": {
			"name": "MIT",
			"url": "https://opensource.org/licenses/MIT"
		},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/api/v1/health": {
			"get": {
				"tags": [
					"Health"
				],
				"summary": "Проверка доступности",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/utils.SuccessResponse"
						}
					}
				}
			}
		},
		"/api/v1/buildings": {
			"get": {
				"tags": [
					"Buildings"
				],
				"summary": "Список корпусов",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/utils.SuccessResponse"
						}
					}
				}
			},
			"post": {
				"tags": [
					"Buildings"
				],
				"summary": "Создать корпус",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.BuildingRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/utils.SuccessResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/buildings/{id}": {
			"get": {
				"tags": [
					"Buildings"
				],
				"summary": "Корпус по ID",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "ID корпуса",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/utils.SuccessResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					}
				}
			},
			"put": {
				"tags": [
					"Buildings"
				],
				"summary": "Обновить корпус",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "ID корпуса",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.BuildingRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/utils.SuccessResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					}
				}
			},
			"delete": {
				"tags": [
					"Buildings"
				],
				"summary": "Удалить корпус вместе с этажами и квартирами",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "ID корпуса",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Пароль админки",
						"name": "X-Admin-Password",
						"in": "header",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/buildings/{id}/floors": {
			"get": {
				"tags": [
					"Floors"
				],
				"summary": "Этажи корпуса",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "ID корпуса",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/utils.SuccessResponse"
						}
					}
				}
			},
			"put": {
				"tags": [
					"Floors"
				],
				"summary": "Создать или обновить этаж по номеру",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "ID корпуса",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.FloorRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/utils.SuccessResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/buildings/{id}/floors/{floorId}": {
			"delete": {
				"tags": [
					"Floors"
				],
				"summary": "Удалить этаж",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "ID корпуса",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "ID этажа",
						"name": "floorId",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Пароль админки",
						"name": "X-Admin-Password",
						"in": "header",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/buildings/{id}/floor-plans": {
			"get": {
				"tags": [
					"FloorPlans"
				],
				"summary": "Планировки корпуса",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "ID корпуса",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/utils.SuccessResponse"
						}
					}
				}
			}
		},
		"/api/v1/floor-plans": {
			"post": {
				"tags": [
					"FloorPlans"
				],
				"summary": "Создать планировку",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.FloorPlanRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/utils.SuccessResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/floor-plans/{id}": {
			"get": {
				"tags": [
					"FloorPlans"
				],
				"summary": "Планировка по ID",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "ID планировки",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/utils.SuccessResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					}
				}
			},
			"put": {
				"tags": [
					"FloorPlans"
				],
				"summary": "Обновить планировку",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "ID планировки",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.FloorPlanRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/utils.SuccessResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					}
				}
			},
			"delete": {
				"tags": [
					"FloorPlans"
				],
				"summary": "Удалить планировку",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "ID планировки",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Пароль админки",
						"name": "X-Admin-Password",
						"in": "header",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Планировка используется квартирами",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/apartments": {
			"post": {
				"tags": [
					"Apartments"
				],
				"summary": "Создать квартиру",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.ApartmentRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/utils.SuccessResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/apartments/{buildingId}/{floorId}": {
			"get": {
				"tags": [
					"Apartments"
				],
				"summary": "Квартиры этажа, сгруппированные по планировкам",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "ID корпуса",
						"name": "buildingId",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "ID этажа",
						"name": "floorId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/utils.SuccessResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/apartments/{id}": {
			"get": {
				"tags": [
					"Apartments"
				],
				"summary": "Квартира по ID",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "ID квартиры",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/utils.SuccessResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					}
				}
			},
			"put": {
				"tags": [
					"Apartments"
				],
				"summary": "Обновить квартиру",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "ID квартиры",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.ApartmentRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/utils.SuccessResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					}
				}
			},
			"delete": {
				"tags": [
					"Apartments"
				],
				"summary": "Удалить квартиру",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "ID квартиры",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Пароль админки",
						"name": "X-Admin-Password",
						"in": "header",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/apartments/{id}/status": {
			"patch": {
				"tags": [
					"Apartments"
				],
				"summary": "Сменить статус квартиры",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "ID квартиры",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.UpdateStatusRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/utils.SuccessResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/overlay/site": {
			"get": {
				"tags": [
					"Overlay"
				],
				"summary": "Слой корпусов на карте комплекса",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "number",
						"description": "Отрисованная ширина, px",
						"name": "width",
						"in": "query",
						"required": true
					},
					{
						"type": "number",
						"description": "Отрисованная высота, px",
						"name": "height",
						"in": "query",
						"required": true
					},
					{
						"type": "number",
						"description": "Смещение по X",
						"name": "offset_x",
						"in": "query"
					},
					{
						"type": "number",
						"description": "Смещение по Y",
						"name": "offset_y",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/utils.SuccessResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/overlay/buildings/{buildingId}": {
			"get": {
				"tags": [
					"Overlay"
				],
				"summary": "Слой этажей на фасаде корпуса",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "ID корпуса",
						"name": "buildingId",
						"in": "path",
						"required": true
					},
					{
						"type": "number",
						"description": "Отрисованная ширина, px",
						"name": "width",
						"in": "query",
						"required": true
					},
					{
						"type": "number",
						"description": "Отрисованная высота, px",
						"name": "height",
						"in": "query",
						"required": true
					},
					{
						"type": "number",
						"description": "Смещение по X",
						"name": "offset_x",
						"in": "query"
					},
					{
						"type": "number",
						"description": "Смещение по Y",
						"name": "offset_y",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/utils.SuccessResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/overlay/buildings/{buildingId}/floors/{floorId}": {
			"get": {
				"tags": [
					"Overlay"
				],
				"summary": "Слой квартир на плане этажа",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "ID корпуса",
						"name": "buildingId",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "ID этажа",
						"name": "floorId",
						"in": "path",
						"required": true
					},
					{
						"type": "number",
						"description": "Отрисованная ширина, px",
						"name": "width",
						"in": "query",
						"required": true
					},
					{
						"type": "number",
						"description": "Отрисованная высота, px",
						"name": "height",
						"in": "query",
						"required": true
					},
					{
						"type": "number",
						"description": "Смещение по X",
						"name": "offset_x",
						"in": "query"
					},
					{
						"type": "number",
						"description": "Смещение по Y",
						"name": "offset_y",
						"in": "query"
					},
					{
						"enum": [
							"desktop",
							"mobile"
						],
						"type": "string",
						"description": "desktop или mobile",
						"name": "variant",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/utils.SuccessResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/overlay/hit-test": {
			"post": {
				"tags": [
					"Overlay"
				],
				"summary": "Область под точкой",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.HitTestRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/utils.SuccessResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/selection": {
			"post": {
				"tags": [
					"Selection"
				],
				"summary": "Новая сессия выбора",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/utils.SuccessResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/selection/{id}": {
			"get": {
				"tags": [
					"Selection"
				],
				"summary": "Состояние сессии выбора",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "ID сессии (UUID)",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/utils.SuccessResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/selection/{id}/actions": {
			"post": {
				"tags": [
					"Selection"
				],
				"summary": "Применить действие к сессии",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "ID сессии (UUID)",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.SelectionActionRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/utils.SuccessResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/calculator/payment": {
			"post": {
				"tags": [
					"Calculator"
				],
				"summary": "Расчёт рассрочки",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.PaymentRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/utils.SuccessResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/v1/stats": {
			"get": {
				"tags": [
					"Statistics"
				],
				"summary": "Статистика продаж",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/utils.SuccessResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/utils.ErrorResponse"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"dto.BuildingRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"slug": {
					"type": "string"
				},
				"address": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"cover_image": {
					"type": "string"
				},
				"cover_width": {
					"type": "number"
				},
				"cover_height": {
					"type": "number"
				},
				"floors": {
					"type": "integer"
				}
			},
			"required": [
				"name",
				"slug"
			]
		},
		"dto.FloorPlanRequest": {
			"type": "object",
			"properties": {
				"building_id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"rooms": {
					"type": "integer"
				},
				"area_sq_m": {
					"type": "number"
				},
				"price": {
					"type": "number"
				},
				"image": {
					"type": "string"
				}
			},
			"required": [
				"area_sq_m",
				"building_id",
				"name"
			]
		},
		"dto.FloorRequest": {
			"type": "object",
			"properties": {
				"number": {
					"type": "integer"
				},
				"image": {
					"type": "string"
				},
				"image_width": {
					"type": "number"
				},
				"image_height": {
					"type": "number"
				},
				"paths": {
					"type": "string",
					"example": "10,10,200,10,200,150,10,150"
				}
			},
			"required": [
				"image_height",
				"image_width",
				"number"
			]
		},
		"dto.ApartmentRequest": {
			"type": "object",
			"properties": {
				"building_id": {
					"type": "integer"
				},
				"floor_id": {
					"type": "integer"
				},
				"floor_plan_id": {
					"type": "integer"
				},
				"number": {
					"type": "string"
				},
				"status": {
					"type": "string",
					"enum": [
						"available",
						"reserved",
						"sold"
					]
				},
				"area_sq_m": {
					"type": "number"
				},
				"price": {
					"type": "number"
				},
				"mobile_paths": {
					"type": "string"
				},
				"desktop_paths": {
					"type": "string"
				}
			},
			"required": [
				"building_id",
				"floor_id",
				"floor_plan_id",
				"number"
			]
		},
		"dto.UpdateStatusRequest": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"enum": [
						"available",
						"reserved",
						"sold"
					]
				}
			},
			"required": [
				"status"
			]
		},
		"dto.HitTestRequest": {
			"type": "object",
			"properties": {
				"width": {
					"type": "number"
				},
				"height": {
					"type": "number"
				},
				"offset_x": {
					"type": "number"
				},
				"offset_y": {
					"type": "number"
				},
				"variant": {
					"type": "string",
					"enum": [
						"desktop",
						"mobile"
					]
				},
				"building_id": {
					"type": "integer"
				},
				"floor_id": {
					"type": "integer"
				},
				"x": {
					"type": "number"
				},
				"y": {
					"type": "number"
				}
			},
			"required": [
				"height",
				"width"
			]
		},
		"dto.SelectionActionRequest": {
			"type": "object",
			"properties": {
				"type": {
					"type": "string",
					"enum": [
						"set_building",
						"set_floor",
						"set_apartment",
						"hover",
						"clear_hover",
						"reset"
					]
				},
				"id": {
					"type": "integer"
				}
			},
			"required": [
				"type"
			]
		},
		"dto.PaymentRequest": {
			"type": "object",
			"properties": {
				"apartment_id": {
					"type": "integer"
				},
				"price": {
					"type": "number"
				},
				"down_payment_percent": {
					"type": "number"
				},
				"months": {
					"type": "integer"
				}
			},
			"required": [
				"months"
			]
		},
		"errors.AppError": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"message": {
					"type": "string"
				},
				"details": {
					"type": "object",
					"additionalProperties": true
				}
			}
		},
		"utils.Meta": {
			"type": "object",
			"properties": {
				"total": {
					"type": "integer"
				},
				"skipped": {
					"type": "integer"
				},
				"time_ms": {
					"type": "number"
				}
			}
		},
		"utils.SuccessResponse": {
			"type": "object",
			"properties": {
				"data": {},
				"meta": {
					"$ref": "#/definitions/utils.Meta"
				}
			}
		},
		"utils.ErrorResponse": {
			"type": "object",
			"properties": {
				"error": {
					"$ref": "#/definitions/errors.AppError"
				}
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Floor Plan Service API",
	Description:      "Интерактивный выбор корпуса, этажа и квартиры: контуры областей поверх подложек, листинги этажей, статусы квартир, калькулятор рассрочки.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
