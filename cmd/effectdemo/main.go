// Command effectdemo drives a chain of divisions through the effect runtime.
//
//	effectdemo divide 100 5 2        # Ok(10)
//	effectdemo divide 1 0            # Err(cannot divide by 0)
//	effectdemo divide --trace 8 2 2  # also prints the effect journal as YAML
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/on-the-ground/effect_drive_go/internal/config"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger, err := settings.Logger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logger.Sync()

	if err := NewRootCommand(settings, logger).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		logger.Sync()
		os.Exit(1)
	}
}
