package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dancinggoatstudios/shopcal/internal/domain"
)

// resolveJobID resolves a job identifier which can be a full UUID, a UUID
// prefix, or a unique case-insensitive title prefix.
func resolveJobID(ctx context.Context, app *App, input string) (string, error) {
	jobs, err := app.Jobs.List(ctx)
	if err != nil {
		return "", err
	}

	lower := strings.ToLower(input)
	var matches []*domain.Job
	for _, j := range jobs {
		id := strings.ToLower(j.ID)
		if id == lower {
			return j.ID, nil
		}
		if strings.HasPrefix(id, lower) || strings.HasPrefix(strings.ToLower(j.Title), lower) {
			matches = append(matches, j)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no job matches %q", input)
	case 1:
		return matches[0].ID, nil
	default:
		names := make([]string, 0, len(matches))
		for _, j := range matches {
			names = append(names, j.Title)
		}
		return "", fmt.Errorf("%q is ambiguous: %s", input, strings.Join(names, ", "))
	}
}

// parseDateArg parses a required YYYY-MM-DD argument.
func parseDateArg(s string) (time.Time, error) {
	d, err := domain.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD", s)
	}
	return d, nil
}
