package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger регистрирует минимальные Swagger/OpenAPI эндпоинты:
// - GET /swagger/index.html -> страница, загружающая OpenAPI JSON
// - GET /swagger/doc.json   -> машиночитаемый OpenAPI документ
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Header("Content-Type", "application/json; charset=utf-8")
		c.String(http.StatusOK, swaggerJSON)
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>content-api Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Минимальный OpenAPI документ по основным эндпоинтам
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "content-api", "version": "v1.0.0" },
  "paths": {
    "/api/services": {
      "get": { "summary": "List active services", "responses": { "200": { "description": "services ordered by (order, title)" } } },
      "post": { "summary": "Create service (admin)", "responses": { "201": { "description": "created" }, "401": { "description": "unauthorized" } } }
    },
    "/api/services/{id}": {
      "get": { "summary": "Get active service by ID", "responses": { "200": { "description": "service" }, "404": { "description": "missing or inactive" } } },
      "put": { "summary": "Update service (admin)", "responses": { "200": { "description": "updated" } } },
      "delete": { "summary": "Hide service (admin)", "responses": { "200": { "description": "deactivated" } } }
    },
    "/api/testimonials": {
      "get": { "summary": "List active testimonials, featured first", "responses": { "200": { "description": "testimonials" } } },
      "post": { "summary": "Create testimonial (admin)", "responses": { "201": { "description": "created" } } }
    },
    "/api/testimonials/featured": {
      "get": { "summary": "List featured testimonials", "responses": { "200": { "description": "featured testimonials" } } }
    },
    "/api/contact": {
      "post": { "summary": "Submit contact form", "responses": { "201": { "description": "submission accepted" }, "400": { "description": "field validation errors" } } }
    },
    "/api/admin/contacts": {
      "get": { "summary": "List submissions with status/search filters", "responses": { "200": { "description": "submissions, newest first" }, "401": { "description": "unauthorized" } } }
    },
    "/api/admin/contacts/{id}": {
      "get": { "summary": "Get submission", "responses": { "200": { "description": "submission" }, "404": { "description": "not found" } } },
      "patch": { "summary": "Update submission status", "responses": { "200": { "description": "updated submission" } } }
    },
    "/api/auth/login": {
      "post": { "summary": "Login", "responses": { "200": { "description": "JWT token" }, "401": { "description": "invalid credentials" } } }
    },
    "/ping": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "pong" } } } }
  }
}`
