package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/Rohith04MVK/kyberntt/internal/logger"
)

var (
	Version   = "DEV"
	BuildTime = "unknown"
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := &cli.App{}
	app.Name = "kyberntt"
	app.Usage = "Inspect and exercise the Kyber NTT kernel"
	app.UsageText = "kyberntt [global options] command [command options]"
	app.Version = fmt.Sprintf("%s (built %s)", Version, BuildTime)
	app.Description = `kyberntt applies the number-theoretic transform over q = 3329 and its
	companion operations to polynomials read as JSON or hex, samples test
	polynomials, and runs the algebraic self checks of the kernel.`
	app.Flags = logger.Flags()
	app.Commands = commands()
	return app
}

func commands() []*cli.Command {
	cmds := []*cli.Command{
		zetasCommand(),
		basemulCommand(),
		sampleCommand(),
		selftestCommand(),
		boundsCommand(),
	}
	return append(cmds, transformCommands()...)
}

// cliErr turns err into an exit error so urfave/cli prints it once and
// exits non-zero.
func cliErr(err error) error {
	if err == nil {
		return nil
	}
	return cli.Exit(err.Error(), 1)
}
