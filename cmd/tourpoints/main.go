package main

import "github.com/talx-hub/tour-points/internal/service"

func main() {
	service.RunServer()
}
