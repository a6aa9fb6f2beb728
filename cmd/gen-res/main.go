package main

import (
	"fmt"
	"log"
	"os"

	"github.com/seitarof/gen-res/internal/cli"
	"github.com/seitarof/gen-res/internal/generator"
	"github.com/seitarof/gen-res/internal/resolver"
	"github.com/seitarof/gen-res/internal/schema"
)

var version = "dev"

func main() {
	cfg, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if cfg.ShowVersion {
		fmt.Println(version)
		return
	}

	l := schema.NewLoader()
	r := resolver.New()
	w := generator.NewFileWriter()
	g := generator.New(r, w)

	runner := cli.NewRunner(l, g)
	if err := runner.Run(cfg); err != nil {
		log.Fatal(err)
	}
}
