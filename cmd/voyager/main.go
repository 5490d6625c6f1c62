package main

import (
	"github.com/brinevale/voyager-go/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
