package bot

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// telegramDownloader fetches voice payloads through the Bot API file
// endpoint into a temporary .ogg file.
type telegramDownloader struct {
	api *tgbotapi.BotAPI
}

// Download resolves the file reference and streams it to a temp file. On
// failure after the temp file was created, the partial path is returned
// alongside the error so the pipeline can remove it.
func (d *telegramDownloader) Download(ctx context.Context, fileID string) (string, error) {
	file, err := d.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return "", fmt.Errorf("resolving voice file: %w", err)
	}

	tmp, err := os.CreateTemp("", "vocabot-*.ogg")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	path := tmp.Name()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(d.api.Token), nil)
	if err != nil {
		tmp.Close()
		return path, fmt.Errorf("building download request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		tmp.Close()
		return path, fmt.Errorf("downloading voice file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		tmp.Close()
		return path, fmt.Errorf("downloading voice file: HTTP %d", resp.StatusCode)
	}

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return path, fmt.Errorf("writing voice file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return path, fmt.Errorf("closing voice file: %w", err)
	}

	return path, nil
}
