package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/accelleon/cloudmgmt/internal/domain"
)

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// pageFlags registers the pagination flags shared by every list command
// and returns a getter that only fills fields the user actually set.
func pageFlags(cmd *cobra.Command) func() domain.SearchPage {
	var page, perPage int
	var sort, order string

	cmd.Flags().IntVar(&page, "page", 0, "Page number")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "Results per page")
	cmd.Flags().StringVar(&sort, "sort", "", "Sort field")
	cmd.Flags().StringVar(&order, "order", "", "Sort order (asc|desc)")

	return func() domain.SearchPage {
		p := domain.SearchPage{Sort: sort, Order: domain.SearchOrder(order)}
		if cmd.Flags().Changed("page") {
			p.Page = &page
		}
		if cmd.Flags().Changed("per-page") {
			p.PerPage = &perPage
		}
		return p
	}
}

// optStringFlag registers a string flag and returns a getter yielding
// nil when the flag was not set, so the query parameter is omitted.
func optStringFlag(cmd *cobra.Command, name, usage string) func() *string {
	var value string
	cmd.Flags().StringVar(&value, name, "", usage)
	return func() *string {
		if !cmd.Flags().Changed(name) {
			return nil
		}
		return &value
	}
}

// optDateFlag accepts either a plain date or a full RFC 3339 timestamp.
func optDateFlag(cmd *cobra.Command, name, usage string) func() (*time.Time, error) {
	var value string
	cmd.Flags().StringVar(&value, name, "", usage)
	return func() (*time.Time, error) {
		if !cmd.Flags().Changed(name) {
			return nil, nil
		}
		t, err := time.Parse("2006-01-02", value)
		if err != nil {
			t, err = time.Parse(time.RFC3339, value)
		}
		if err != nil {
			return nil, fmt.Errorf("invalid --%s %q: expected YYYY-MM-DD or RFC 3339", name, value)
		}
		return &t, nil
	}
}

func optBoolFlag(cmd *cobra.Command, name, usage string) func() *bool {
	var value bool
	cmd.Flags().BoolVar(&value, name, false, usage)
	return func() *bool {
		if !cmd.Flags().Changed(name) {
			return nil
		}
		return &value
	}
}
