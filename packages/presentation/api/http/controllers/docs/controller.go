package docscontroller

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// @Summary 		This page
// @Description 	API Documentation
// @ID 				api-docs
// @Tags			docs
// @Security		BearerAuth
func Swagger(ctx echo.Context) error {
	return echoSwagger.WrapHandler(ctx)
}
