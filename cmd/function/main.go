package main

import (
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/ivanglie/coinboard/internal/app"
	"github.com/ivanglie/coinboard/internal/config"
	"github.com/ivanglie/coinboard/internal/function"
	"github.com/ivanglie/coinboard/pkg/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
	app.SetupLogging(cfg)

	deps := app.Build(cfg)
	lambda.Start(function.New(deps.Catalog, deps.Prices).Handle)
}
