package main

import (
	"github.com/islasuds/wholesale/internal/app"
	"github.com/islasuds/wholesale/internal/config"
)

func main() {
	config.MustInit()
	app.MustNewApp().Run()
}
