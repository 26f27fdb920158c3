package main

import "wemoment-backend/cmd"

func main() {
	cmd.Run()
}
