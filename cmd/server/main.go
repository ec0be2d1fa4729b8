package main

import "empdir/internal/app/server"

func main() {
	server.Run()
}
