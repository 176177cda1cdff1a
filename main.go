package main

import (
	"github.com/citekit/ris/cmd"

	// Register format plugins
	_ "github.com/citekit/ris/format/csv"
	_ "github.com/citekit/ris/format/pubmed"
	_ "github.com/citekit/ris/format/ris"
	_ "github.com/citekit/ris/format/wok"
)

func main() {
	cmd.Execute()
}
