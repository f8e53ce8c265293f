package main

import "workwise_backend/internal/app"

func main() {
	app.Run()
}
