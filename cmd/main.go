package main

import (
	"os"

	"compressimg/internal/infrastructure/compressors"
	"compressimg/internal/infrastructure/config"
)

func main() {
	env := &appEnv{
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		compressor: compressors.NewImageCompressor(),
		configRepo: config.NewRepository(),
	}
	os.Exit(execute(os.Args[1:], env))
}
