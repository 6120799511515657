package command

import "context"

// Client listens for Telegram commands and serves on-demand fetches.
type Client interface {
	HandleCommand(ctx context.Context) error
}
