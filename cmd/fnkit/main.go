// Command fnkit runs the library demonstrations.
//
//	fnkit -list
//	fnkit -only fizzbuzz,cards -seed 7
//	FNKIT_SEARCH_TERM=zo fnkit -only fuzzy
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/hasbyte1/go-fnkit/internal/demo"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := demo.Main(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
