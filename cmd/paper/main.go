// Command paper inspects paper themes: it resolves theme files and checks
// foreground contrast.
package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/go-drift/paper/pkg/errors"
)

func main() {
	os.Exit(run())
}

// run executes the root command. A panic is reported through the error
// handler and exits with status 1.
func run() (code int) {
	code = 1
	defer errors.Recover("cmd.paper")

	if err := newRootCmd().Execute(); err != nil {
		var pe *errors.PaperError
		if stderrors.As(err, &pe) {
			errors.Report(pe)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return 1
	}
	return 0
}
