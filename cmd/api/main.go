package main

import (
	"go.uber.org/fx"

	"github.com/tia-rosa/pos/internal/app"
)

func main() {
	fx.New(app.HTTP).Run()
}
