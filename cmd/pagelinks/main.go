package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/pflag"

	"github.com/DukeRupert/pagelinks/internal"
	"github.com/DukeRupert/pagelinks/internal/domain"
	"github.com/DukeRupert/pagelinks/internal/pagination"
)

// output is the JSON document written to stdout.
type output struct {
	PageCount int               `json:"page_count"`
	Paginated bool              `json:"paginated"`
	Current   pagination.Link   `json:"current"`
	First     pagination.Link   `json:"first"`
	Last      pagination.Link   `json:"last"`
	Prev      *pagination.Link  `json:"prev"`
	Next      *pagination.Link  `json:"next"`
	Left      []pagination.Link `json:"left"`
	Right     []pagination.Link `json:"right"`
	Items     []pagination.Item `json:"items"`
	Data      pagination.Data   `json:"data"`
}

func newOutput(p *pagination.Paginator) output {
	return output{
		PageCount: p.PageCount(),
		Paginated: p.IsPaginated(),
		Current:   p.Current(),
		First:     p.First(),
		Last:      p.Last(),
		Prev:      p.Prev(),
		Next:      p.Next(),
		Left:      p.Left(),
		Right:     p.Right(),
		Items:     p.Items(),
		Data:      p.Data(),
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(stderr, cfg.Env, cfg.LogLevel)

	fs := pflag.NewFlagSet("pagelinks", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	total := fs.Int("total", 0, "total number of items")
	page := fs.Int("page", 1, "current page (read from --query when not set)")
	query := fs.String("query", "", "base query string, without the leading ?")
	limit := fs.Int("limit", cfg.Limit, "items per page")
	maxItems := fs.Int("max-items", cfg.MaxItems, "page links shown around the current page")
	dumpMetrics := fs.Bool("metrics", false, "write pagination metrics to stderr in Prometheus text format")
	if err := fs.Parse(args); err != nil {
		return err
	}

	current := *page
	if !fs.Changed("page") {
		current = pagination.PageFromQuery(*query)
	}

	p := pagination.New(*query,
		pagination.WithLimit(*limit),
		pagination.WithMaxItems(*maxItems),
		pagination.WithLogger(logger),
	)
	if err := p.Paginate(*total, current); err != nil {
		logger.Error("Pagination failed", "op", domain.ErrorOp(err), "code", domain.ErrorCode(err))
		return fmt.Errorf("paginate failed: %w", err)
	}
	logger.Info("Pagination computed", "page_count", p.PageCount(), "current_page", current)

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(newOutput(p)); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	if *dumpMetrics {
		if err := writeMetrics(stderr, prometheus.DefaultGatherer); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}

// writeMetrics encodes this program's metric families, skipping Go runtime and process collectors.
func writeMetrics(w io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return err
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "pagelinks_") {
			continue
		}
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}

// errorText formats err for the terminal. Application errors are reported by code and
// message without the internal operation name.
func errorText(err error) string {
	code := domain.ErrorCode(err)
	if code == domain.EINTERNAL {
		return err.Error()
	}
	return fmt.Sprintf("%s: %s", code, domain.ErrorMessage(err))
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatal(errorText(err))
	}
}
