package main

import "github.com/bangasho83/hummane/internal/app/server"

func main() {
	server.Run()
}
