package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"addressbook/internal/domain/addressfilter"
	"addressbook/internal/infra/loader"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// runSearch filters the CSV address book at file without touching the database.
func runSearch(w io.Writer, file, query string) error {
	addresses, err := loader.NewCSVLoader(file).Load(uuid.Nil)
	if err != nil {
		return err
	}

	engine := addressfilter.New()
	engine.Load(addresses)
	results := engine.Search(query)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TITLE\tSUBTITLE")
	for _, address := range results {
		fmt.Fprintf(tw, "%s\t%s\n", address.StreetLine(), address.Neighborhood)
	}
	if err := tw.Flush(); err != nil {
		return errors.WithStack(err)
	}

	fmt.Fprintf(w, "\n%d of %d addresses match %q\n", len(results), engine.Len(), query)

	return nil
}
