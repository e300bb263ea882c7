package main

import "github.com/SaucesCode/file-organizer/cmd"

func main() {
	cmd.Execute()
}
