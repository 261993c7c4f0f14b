package content

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/store"
)

func dataURI(payload []byte) string {
	return "data:video/mp4;base64," + base64.StdEncoding.EncodeToString(payload)
}

func TestAddVideoValidation(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	m := NewManager(kv)
	now := time.Now()
	ok := dataURI([]byte("tiny video"))

	cases := []struct {
		name    string
		video   VideoContent
		wantErr error
	}{
		{"empty title", VideoContent{Title: " ", Description: "d", VideoData: ok}, ErrEmptyTitle},
		{"empty description", VideoContent{Title: "t", Description: "", VideoData: ok}, ErrEmptyContent},
		{"no payload", VideoContent{Title: "t", Description: "d"}, ErrEmptyVideo},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := m.AddVideo(ctx, 1, tc.video, now); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
	if kv.Len() != 0 {
		t.Error("rejected videos must not persist anything")
	}
}

func TestAddVideoSizeLimit(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	m := NewManager(kv)

	big := VideoContent{
		Title:       "Grande demais",
		Description: "vídeo acima do limite",
		VideoData:   dataURI(make([]byte, MaxVideoBytes+1)),
		FileName:    "big.mp4",
		FileType:    "video/mp4",
	}
	if _, err := m.AddVideo(ctx, 1, big, time.Now()); !errors.Is(err, ErrVideoTooLarge) {
		t.Fatalf("expected ErrVideoTooLarge, got %v", err)
	}
	if kv.Len() != 0 {
		t.Error("oversized video must not be partially persisted")
	}
}

func TestAddVideoAndList(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	m := NewManager(kv)
	now := time.Date(2025, 8, 30, 10, 0, 0, 0, time.UTC)

	v, err := m.AddVideo(ctx, 1, VideoContent{
		Title:       "Como montar a barraca",
		Description: "passo a passo",
		VideoData:   dataURI([]byte("video bytes")),
		FileName:    "barraca.mp4",
		FileType:    "video/mp4",
	}, now)
	if err != nil {
		t.Fatalf("add video: %v", err)
	}
	if v.ID == "" {
		t.Error("video id must be assigned")
	}

	videos, err := NewManager(kv).Videos(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(videos) != 1 || videos[0].Title != "Como montar a barraca" {
		t.Errorf("unexpected listing: %+v", videos)
	}
}

func TestScriptsLifecycle(t *testing.T) {
	ctx := context.Background()
	m := NewManager(store.NewMemory())
	now := time.Now()

	if _, err := m.AddScript(ctx, 1, "  ", "conteúdo", now); !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
	if _, err := m.AddScript(ctx, 1, "título", "  ", now); !errors.Is(err, ErrEmptyContent) {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}

	s1, err := m.AddScript(ctx, 1, "Abordagem de venda", "Bom dia! Olha só...", now)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	s2, err := m.AddScript(ctx, 1, "Fechamento", "Posso embrulhar?", now)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if s1.ID == s2.ID {
		t.Error("script ids must be unique")
	}

	scripts, err := m.Scripts(ctx, 1)
	if err != nil || len(scripts) != 2 {
		t.Fatalf("list: %d scripts, err=%v", len(scripts), err)
	}

	got, err := m.Script(ctx, 1, s2.ID)
	if err != nil || got.Title != "Fechamento" {
		t.Errorf("lookup gave %+v, err=%v", got, err)
	}
	if _, err := m.Script(ctx, 1, "nope"); !errors.Is(err, ErrScriptNotFound) {
		t.Errorf("expected ErrScriptNotFound, got %v", err)
	}
}

func TestScriptFileName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Abordagem de Venda", "abordagem_de_venda.txt"},
		{"  Fechamento   Rápido ", "fechamento_rápido.txt"},
		{"", "script.txt"},
	}
	for _, tc := range cases {
		if got := ScriptFileName(tc.in); got != tc.want {
			t.Errorf("ScriptFileName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCorruptContentPropagates(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	if err := kv.Set(ctx, store.VideoContentKey(1), []byte("broken")); err != nil {
		t.Fatal(err)
	}
	m := NewManager(kv)
	if _, err := m.Videos(ctx, 1); !store.IsDecodeError(err) {
		t.Errorf("expected DecodeError, got %v", err)
	}
	if !strings.Contains(ErrVideoTooLarge.Error(), "5242880") {
		t.Errorf("limit error should name the byte limit: %v", ErrVideoTooLarge)
	}
}
