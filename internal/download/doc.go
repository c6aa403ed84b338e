package download

// Package download implements the batch orchestration built on top of
// yt-dlp (via github.com/lrstanley/go-ytdlp). It walks the link list
// sequentially, retries each URL with jittered exponential backoff,
// paces successful downloads and records per-URL outcomes.
