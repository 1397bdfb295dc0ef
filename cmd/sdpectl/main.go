package main

import "github.com/tomazdalcortivo/sdpe_mid/internal/cli"

func main() {
	cli.Execute()
}
