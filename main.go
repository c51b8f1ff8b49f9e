package main

import "alma-utilities/cmd"

func main() {
	cmd.Execute()
}
