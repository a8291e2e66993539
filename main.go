package main

import "colcrt/internal/cli"

func main() {
    cli.Execute()
}
