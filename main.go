package main

import "textsteg/internal/cli"

func main() {
	cli.Execute()
}
