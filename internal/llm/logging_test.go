package llm

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/lectern/internal/store"
)

func openEventRepo(t *testing.T) store.EventRepo {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "events.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st.EventRepo()
}

func TestLogging_RecordsEvent(t *testing.T) {
	repo := openEventRepo(t)
	core, logs := observer.New(zapcore.DebugLevel)

	mock := NewMockProvider(MockResponse{
		Content: "Keyword one, keyword two",
		Usage:   Usage{InputTokens: 20, OutputTokens: 6, TotalTokens: 26},
	})
	p := WithLogging(mock, KindMock, repo, zap.New(core))

	ctx := WithPurpose(context.Background(), PurposeKeywords)
	if _, err := p.Generate(ctx, UserPrompt("Extract keywords", 200, 0.2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	events, err := repo.QueryLLMEvents(context.Background(), store.QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query events: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	ev := events[0]
	if ev.Purpose != PurposeKeywords || ev.Provider != KindMock || !ev.Success {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if ev.InputTokens != 20 || ev.OutputTokens != 6 {
		t.Fatalf("unexpected tokens: in=%d out=%d", ev.InputTokens, ev.OutputTokens)
	}
	if !strings.Contains(ev.RequestBody, "Extract keywords") || !strings.Contains(ev.RequestBody, "max_tokens: 200") {
		t.Fatalf("unexpected request body: %q", ev.RequestBody)
	}
	if ev.ResponseBody != "Keyword one, keyword two" {
		t.Fatalf("unexpected response body: %q", ev.ResponseBody)
	}

	entries := logs.FilterMessage("llm request").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if entries[0].ContextMap()["purpose"] != PurposeKeywords {
		t.Fatalf("unexpected log fields: %v", entries[0].ContextMap())
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	repo := openEventRepo(t)
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("503")}})
	p := WithLogging(mock, KindOpenAI, repo, nil)

	_, err := p.Generate(context.Background(), UserPrompt("x", 10, 0))
	if err == nil {
		t.Fatal("expected error")
	}

	events, err := repo.QueryLLMEvents(context.Background(), store.QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query events: %v", err)
	}
	if len(events) != 1 || events[0].Success {
		t.Fatalf("expected one failed event, got %+v", events)
	}
	if events[0].Purpose != "unknown" {
		t.Fatalf("purpose = %q, want unknown", events[0].Purpose)
	}
	if !strings.Contains(events[0].ErrorMessage, "503") {
		t.Fatalf("unexpected error message: %q", events[0].ErrorMessage)
	}
}

func TestLogging_NilRepo(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: "fine"})
	p := WithLogging(mock, KindMock, nil, nil)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != "fine" {
		t.Fatalf("unexpected content: %q", resp.Content)
	}
}
