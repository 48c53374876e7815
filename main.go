package main

import (
	"log"

	"TouchBoard/internal/ui"
)

func main() {
	log.Println("Starting TouchBoard")
	ui.RunApp()
}
