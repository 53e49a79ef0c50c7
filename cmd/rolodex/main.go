package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/jeanpaul/rolodex/internal/cli"
	"github.com/jeanpaul/rolodex/internal/config"
	"github.com/jeanpaul/rolodex/internal/store"
	"github.com/jeanpaul/rolodex/internal/tui"
)

const version = "0.3.0"

func main() {
	versionFlag := flag.Bool("version", false, "Print version")
	helpFlag := flag.Bool("help", false, "Show help")
	flag.BoolVar(helpFlag, "h", false, "Show help")
	dataDirFlag := flag.String("data-dir", "", "Override the data directory")
	bookFlag := flag.String("book", "", "Book to load on startup (default: the configured default book)")
	plainFlag := flag.Bool("plain", false, "Run without the TUI: execute the arguments as one command")
	initFlag := flag.Bool("init", false, "Write a starter config file and exit")

	flag.Usage = showHelp
	flag.Parse()

	if *helpFlag {
		showHelp()
		os.Exit(0)
	}

	if *versionFlag {
		fmt.Printf("rolodex %s\n", version)
		os.Exit(0)
	}

	if *initFlag {
		path, err := config.WriteDefault()
		if err != nil {
			fatal("%v", err)
		}
		fmt.Printf("Wrote %s\n", path)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fatal("config error: %v", err)
	}
	if *dataDirFlag != "" {
		cfg.DataDir = *dataDirFlag
	}

	st, err := store.Open(cfg.DataDir)
	if err != nil {
		fatal("%v", err)
	}

	session := cli.NewSession(cfg, st)

	// Load the startup book when one exists; a fresh install starts empty.
	startup := cfg.DefaultBook
	if *bookFlag != "" {
		startup = *bookFlag
	}
	if _, err := session.Execute("load " + startup); err != nil && *bookFlag != "" {
		// Only complain when the user asked for a specific book.
		fatal("load %s: %v", startup, err)
	}

	args := flag.Args()
	if *plainFlag || len(args) > 0 {
		runPlain(session, args)
		return
	}

	if err := tui.Run(session); err != nil {
		fatal("%v", err)
	}
}

// runPlain executes the arguments as a single command line and prints the
// result, for scripted use. The book is saved only when the command
// itself saves it.
func runPlain(session *cli.Session, args []string) {
	line := strings.Join(args, " ")
	if line == "" {
		fatal("usage: rolodex -plain <command...>")
	}
	out, err := session.Execute(line)
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.Message(err))
		os.Exit(1)
	}
	fmt.Println(out)
}

func showHelp() {
	fmt.Println("rolodex — a terminal contact manager")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  rolodex                 launch the interactive session")
	fmt.Println("  rolodex <command...>    run one command and exit")
	fmt.Println()
	fmt.Println("Flags:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Print(cli.HelpText)
	fmt.Println()
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
