package main

import (
	"os"

	"github.com/venkateshgovinda22-lab/mersey-job-scraper/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
