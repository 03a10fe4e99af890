package main

// General API documentation for swaggo. Regenerate docs/ with `swag init -g cmd/pagerd/docs.go`.
//
// @title           pagerd API
// @version         1.0
// @description     HTTP API for pagination state: instances, slices, page link sequences and controls views.
//
// @contact.name   pagerd maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
