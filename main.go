package main

import (
	"github.com/AzielCF/wa-cloud-bridge/cmd"
)

func main() {
	cmd.Execute()
}
