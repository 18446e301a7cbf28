package main

import (
	"context"
	"fmt"
	"os"

	"news-fetcher/bootstrap"
)

func main() {
	ctx := context.Background()

	if err := bootstrap.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "news-fetcher failed: %v\n", err)
		os.Exit(1)
	}
}
