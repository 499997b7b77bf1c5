package main

import "github.com/todoflow-labs/todo-service/internal/app"

func main() {
	app.Run()
}
