package main

import (
	"fmt"
	"os"

	"github.com/TomTonic/hypotest"
)

// Exit codes for different failure modes
const (
	ExitSuccess     = 0
	ExitError       = 1 // runtime or I/O error
	ExitConfigError = 2 // scenario file or test inputs rejected
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		switch hypotest.KindOf(err) {
		case hypotest.InvalidArgument, hypotest.ConfigurationError:
			os.Exit(ExitConfigError)
		}
		os.Exit(ExitError)
	}
}
