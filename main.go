package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/t-kuni/cpb/cmd"
	"github.com/t-kuni/cpb/config"
)

func main() {
	godotenv.Load(".env")

	root := cmd.NewRootCommand(config.ReadToolConfig(), os.Stdout, os.Stderr)
	os.Exit(root.Run(context.Background(), os.Args[1:]))
}
