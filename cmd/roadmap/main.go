// Command roadmap runs the national road network line protocol over
// stdin/stdout/stderr: one command per line in, a single "ERROR n" line
// per failing command out on stderr, and getRouteDescription output on
// stdout.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/katalvlaran/roadmap/cli"
)

func main() {
	configFile := flag.String("config", "", "optional path to a roadmap.yaml startup config")
	flag.Parse()

	if *configFile != "" {
		cfg, err := loadConfig(*configFile)
		if err != nil {
			log.Fatalf("roadmap: failed to load config %s: %v", *configFile, err)
		}
		if cfg.LogPrefix != "" {
			log.SetPrefix(cfg.LogPrefix)
		}
		if cfg.BufferBytes > 0 {
			// Reserved for future dispatcher tuning; the buffer size is
			// currently fixed in cli.Dispatcher.Run.
			log.Printf("roadmap: config requested buffer size %d", cfg.BufferBytes)
		}
	}

	d := cli.NewDispatcher()
	if err := d.Run(os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("roadmap: input read error: %v", err)
	}
}
