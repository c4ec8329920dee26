package preview

import (
	"context"
	"fmt"
	"os"
	"time"
)

// DefaultPollInterval is how often Watch checks the file for changes.
const DefaultPollInterval = 200 * time.Millisecond

// Watch feeds the contents of path into p whenever the file changes,
// until ctx is cancelled. The initial contents are rendered
// immediately. Changes are detected by polling mtime and size.
func Watch(ctx context.Context, p *Previewer, path string, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	p.Update(string(data))
	p.Flush()

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	lastMod := info.ModTime()
	lastSize := info.Size()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			info, err := os.Stat(path)
			if err != nil {
				// File may be mid-rename by the editor; retry next tick.
				continue
			}
			if info.ModTime().Equal(lastMod) && info.Size() == lastSize {
				continue
			}
			lastMod = info.ModTime()
			lastSize = info.Size()

			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			p.Update(string(data))
		}
	}
}
