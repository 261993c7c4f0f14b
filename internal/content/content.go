// Package content manages the promotional video library and the sales
// script collection, both persisted as JSON arrays per user.
package content

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/store"
)

// MaxVideoBytes is the storage limit for a single video payload. Files
// beyond it are rejected before anything is read into the store.
const MaxVideoBytes = 5 * 1024 * 1024

type (
	// VideoContent is a stored promotional video. VideoData holds the
	// whole payload as a base64 data URI, as the original app stored it.
	VideoContent struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		VideoData   string `json:"videoData"`
		FileName    string `json:"fileName"`
		FileType    string `json:"fileType"`
	}

	// ScriptContent is a stored sales script.
	ScriptContent struct {
		ID      string `json:"id"`
		Title   string `json:"title"`
		Content string `json:"content"`
	}
)

var (
	ErrEmptyTitle     = errors.New("empty title")
	ErrEmptyContent   = errors.New("empty content")
	ErrEmptyVideo     = errors.New("empty video payload")
	ErrVideoTooLarge  = fmt.Errorf("video exceeds the %d byte storage limit", MaxVideoBytes)
	ErrScriptNotFound = errors.New("script not found")
)

type Manager struct {
	kv store.KV
}

func NewManager(kv store.KV) *Manager {
	return &Manager{kv: kv}
}

// AddVideo validates and appends a video. The decoded payload size is
// checked against MaxVideoBytes before any mutation.
func (m *Manager) AddVideo(ctx context.Context, userID int64, v VideoContent, now time.Time) (VideoContent, error) {
	v.Title = strings.TrimSpace(v.Title)
	v.Description = strings.TrimSpace(v.Description)
	if v.Title == "" {
		return VideoContent{}, ErrEmptyTitle
	}
	if v.Description == "" {
		return VideoContent{}, ErrEmptyContent
	}
	if v.VideoData == "" {
		return VideoContent{}, ErrEmptyVideo
	}
	if payloadSize(v.VideoData) > MaxVideoBytes {
		return VideoContent{}, ErrVideoTooLarge
	}

	videos, err := m.Videos(ctx, userID)
	if err != nil {
		return VideoContent{}, err
	}
	v.ID = newID(now, len(videos))

	videos = append(videos, v)
	if err := store.SetJSON(ctx, m.kv, store.VideoContentKey(userID), videos); err != nil {
		return VideoContent{}, fmt.Errorf("persist videos: %w", err)
	}

	slog.InfoContext(ctx, "Video added",
		"user_id", userID,
		"video_id", v.ID,
		"file_name", v.FileName,
		"payload_bytes", payloadSize(v.VideoData))

	return v, nil
}

// Videos lists the stored videos in insertion order.
func (m *Manager) Videos(ctx context.Context, userID int64) ([]VideoContent, error) {
	var videos []VideoContent
	if _, err := store.GetJSON(ctx, m.kv, store.VideoContentKey(userID), &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

// AddScript validates and appends a sales script.
func (m *Manager) AddScript(ctx context.Context, userID int64, title, content string, now time.Time) (ScriptContent, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" {
		return ScriptContent{}, ErrEmptyTitle
	}
	if content == "" {
		return ScriptContent{}, ErrEmptyContent
	}

	scripts, err := m.Scripts(ctx, userID)
	if err != nil {
		return ScriptContent{}, err
	}
	s := ScriptContent{ID: newID(now, len(scripts)), Title: title, Content: content}

	scripts = append(scripts, s)
	if err := store.SetJSON(ctx, m.kv, store.ScriptsContentKey(userID), scripts); err != nil {
		return ScriptContent{}, fmt.Errorf("persist scripts: %w", err)
	}

	slog.InfoContext(ctx, "Script added", "user_id", userID, "script_id", s.ID, "title", s.Title)

	return s, nil
}

// Scripts lists the stored scripts in insertion order.
func (m *Manager) Scripts(ctx context.Context, userID int64) ([]ScriptContent, error) {
	var scripts []ScriptContent
	if _, err := store.GetJSON(ctx, m.kv, store.ScriptsContentKey(userID), &scripts); err != nil {
		return nil, err
	}
	return scripts, nil
}

// Script returns one stored script by id.
func (m *Manager) Script(ctx context.Context, userID int64, scriptID string) (ScriptContent, error) {
	scripts, err := m.Scripts(ctx, userID)
	if err != nil {
		return ScriptContent{}, err
	}
	for _, s := range scripts {
		if s.ID == scriptID {
			return s, nil
		}
	}
	return ScriptContent{}, ErrScriptNotFound
}

// ScriptFileName derives the plain-text download filename from a script
// title: lowercased, whitespace runs collapsed to underscores.
func ScriptFileName(title string) string {
	name := strings.ToLower(strings.TrimSpace(title))
	name = strings.Join(strings.Fields(name), "_")
	if name == "" {
		name = "script"
	}
	return name + ".txt"
}

// payloadSize estimates the decoded byte size of a base64 data URI.
func payloadSize(dataURI string) int64 {
	b64 := dataURI
	if i := strings.Index(dataURI, ","); i >= 0 {
		b64 = dataURI[i+1:]
	}
	return int64(base64.StdEncoding.DecodedLen(len(b64)))
}

func newID(now time.Time, ordinal int) string {
	id := now.UTC().Format(time.RFC3339Nano)
	if ordinal > 0 {
		id = fmt.Sprintf("%s-%d", id, ordinal+1)
	}
	return id
}
