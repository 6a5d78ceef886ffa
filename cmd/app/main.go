package main

import (
	"go.uber.org/fx"

	"github.com/niyazismayilov/FusionTik/internal/app"
)

func main() {
	fx.New(app.CreateApp()).Run()
}
