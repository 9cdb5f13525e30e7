package main

import (
	"github.com/humanbelnik/popcorn/core/internal/app"
	"github.com/humanbelnik/popcorn/core/internal/config"
)

func main() {
	app.Go(config.Load())
}
