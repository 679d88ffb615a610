package main

import "github.com/venkatsunilm/photo-post-processing/cmd"

func main() {
	cmd.Execute()
}
