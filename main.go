package main

import "github.com/credvia/credvia_backend/cmd"

func main() {
	cmd.Execute()
}
