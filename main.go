package main

import "github.com/jsphweid/harmonwalk/cmd"

func main() {
	cmd.Execute()
}
