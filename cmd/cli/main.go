package main

import (
	"flag"
	"log"
	"os"

	"github.com/minaorangina/klondike/cli"
	"github.com/minaorangina/klondike/game"
)

func main() {
	seed := flag.Int64("seed", 0, "deal from a fixed seed (0 means random)")
	flag.Parse()

	var k *game.Klondike
	if *seed != 0 {
		k = game.NewKlondikeWithSeed(*seed)
	} else {
		k = game.NewKlondike()
	}

	loop := cli.NewLoop(k, os.Stdin, os.Stdout)
	if err := loop.Run(); err != nil {
		log.Fatal(err)
	}
}
