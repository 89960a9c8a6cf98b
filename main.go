package main

import "school-admin/cmd"

func main() {
	cmd.Execute()
}
