package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - import: Replace an owner's address book with a CSV file
// - search: Filter a CSV address book offline
// - token:  Mint a development access token

func main() {
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)
	searchCmd := flag.NewFlagSet("search", flag.ExitOnError)
	tokenCmd := flag.NewFlagSet("token", flag.ExitOnError)

	importFile := importCmd.String("file", "", "CSV file with a street,number,neighborhood header")
	importOwner := importCmd.String("owner", "", "Owner ID whose address book is replaced")

	searchFile := searchCmd.String("file", "", "CSV file with a street,number,neighborhood header")
	searchQuery := searchCmd.String("q", "", "Search query; empty lists every address")

	tokenOwner := tokenCmd.String("owner", "", "Owner ID the token is issued for")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flags := ctlFlags{
		Import: importFlags{
			cmd:   importCmd,
			file:  importFile,
			owner: importOwner,
		},
		Search: searchFlags{
			cmd:   searchCmd,
			file:  searchFile,
			query: searchQuery,
		},
		Token: tokenFlags{
			cmd:   tokenCmd,
			owner: tokenOwner,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type ctlFlags struct {
	Import importFlags
	Search searchFlags
	Token  tokenFlags
}

type importFlags struct {
	cmd   *flag.FlagSet
	file  *string
	owner *string
}

type searchFlags struct {
	cmd   *flag.FlagSet
	file  *string
	query *string
}

type tokenFlags struct {
	cmd   *flag.FlagSet
	owner *string
}

func runSubcommand(ctx context.Context, flags *ctlFlags) error {
	switch os.Args[1] {
	case "import":
		return handleImport(ctx, flags)
	case "search":
		return handleSearch(flags)
	case "token":
		return handleToken(flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleImport(ctx context.Context, flags *ctlFlags) error {
	if err := flags.Import.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse import flags")
	}

	if *flags.Import.file == "" {
		return errors.New("--file flag is required for import command")
	}

	ownerID, err := parseOwner(*flags.Import.owner)
	if err != nil {
		return err
	}

	return runImport(ctx, os.Stdout, *flags.Import.file, ownerID)
}

func handleSearch(flags *ctlFlags) error {
	if err := flags.Search.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse search flags")
	}

	if *flags.Search.file == "" {
		return errors.New("--file flag is required for search command")
	}

	return runSearch(os.Stdout, *flags.Search.file, *flags.Search.query)
}

func handleToken(flags *ctlFlags) error {
	if err := flags.Token.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse token flags")
	}

	ownerID, err := parseOwner(*flags.Token.owner)
	if err != nil {
		return err
	}

	return runToken(os.Stdout, ownerID)
}

func printUsage() {
	fmt.Println("Usage: addressctl <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  import    Replace an owner's address book with a CSV file")
	fmt.Println("  search    Filter a CSV address book offline")
	fmt.Println("  token     Mint a development access token")
	fmt.Println("")
	fmt.Println("Use 'addressctl <command> -h' for more information about a command.")
}
