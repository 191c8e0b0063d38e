package main

import "github.com/kurocha/supacha/cmd"

func main() {
	cmd.Execute()
}
