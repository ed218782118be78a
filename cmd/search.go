package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"lark/internal/adapter/postgres"
	"lark/internal/adapter/usecase"
	"lark/internal/core/domain"
	"lark/internal/db"
)

func searchCmd(a *app) *cobra.Command {
	var delay time.Duration
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Look users up by email, one query per line of stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext(cmd.Context())
			defer cancel()

			pool, err := db.NewPostgresPool(ctx, a.cfg.Psql)
			if err != nil {
				return fmt.Errorf("database connection: %w", err)
			}
			defer pool.Close()

			users := usecase.NewUserUseCase(postgres.NewUserStore(pool), a.logger)
			return searchLines(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), users.SearchUsers, delay, a.logger)
		},
	}
	cmd.Flags().DurationVar(&delay, "debounce", usecase.SearchDebounce, "How long a query must stay unchanged before it runs")
	return cmd
}

// searchLines treats every line of in as the query typed so far. Queries
// replaced within delay are never run; matches of the ones that do run are
// written to out as tab separated rows.
func searchLines(
	ctx context.Context,
	in io.Reader,
	out io.Writer,
	search func(context.Context, string) ([]domain.User, error),
	delay time.Duration,
	logger *slog.Logger,
) error {
	s := usecase.NewSearcher(search, delay, func(r usecase.SearchResult) {
		if r.Err != nil {
			logger.Error("search users", slog.String("query", r.Query), slog.Any("error", r.Err))
			return
		}
		if len(r.Users) == 0 {
			fmt.Fprintf(out, "no users match %q\n", r.Query)
			return
		}
		for _, u := range r.Users {
			fmt.Fprintf(out, "%s\t%s\t%s\n", u.ID, u.Email, u.DisplayName)
		}
	})
	defer s.Close()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				scanErr <- nil
				return
			}
		}
		scanErr <- sc.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				s.Wait()
				if err := <-scanErr; err != nil {
					return fmt.Errorf("read queries: %w", err)
				}
				return nil
			}
			s.Search(strings.TrimSpace(line))
		}
	}
}
