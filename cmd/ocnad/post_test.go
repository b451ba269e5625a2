package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const testLandscapeYAML = `landscape:
  - name: Orchestration
    subcategories:
      - name: Scheduling
        items:
          - name: TestProject
            project: sandbox
            logo: testproject.svg
            homepage_url: https://testproject.example.com
`

func landscapeStub(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(testLandscapeYAML))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func postTestEnv(t *testing.T, sourceURL string) {
	t.Helper()
	t.Setenv("LANDSCAPE_DATA_SOURCE", sourceURL)
	t.Setenv("SLACK_BOT_TOKEN", "")
	t.Setenv("SLACK_CHANNEL_ID", "")
	t.Setenv("WORKDAY_ONLY", "")
	t.Setenv("ORIGINAL_HOLIDAYS", "")
	t.Setenv("CRUNCHBASE_API_KEY", "")
	t.Setenv("ICON_BASE_URL", "https://icons.example.com")
	t.Setenv("LANDSCAPE_SITE_BASE", "")
}

func TestRunPost_DryRun(t *testing.T) {
	srv := landscapeStub(t)
	postTestEnv(t, srv.URL)

	env, stdout, _ := testEnv()
	flags := &postFlags{dryRun: true}

	if err := runPost(context.Background(), flags, env); err != nil {
		t.Fatalf("runPost() error = %v", err)
	}

	out := stdout.String()
	for _, want := range []string{
		`"blocks"`,
		"TestProject",
		"orchestration--scheduling--testproject",
		"https://icons.example.com/testproject.png",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dry-run output missing %q:\n%s", want, out)
		}
	}
}

func TestRunPost_WorkdayGate(t *testing.T) {
	srv := landscapeStub(t)
	postTestEnv(t, srv.URL)
	t.Setenv("WORKDAY_ONLY", "true")

	env, stdout, _ := testEnv()
	// 2026-08-23 09:00 UTC is 18:00 JST on a Sunday.
	env.Now = func() time.Time { return time.Date(2026, 8, 23, 9, 0, 0, 0, time.UTC) }

	flags := &postFlags{dryRun: true}
	if err := runPost(context.Background(), flags, env); err != nil {
		t.Fatalf("runPost() error = %v", err)
	}
	if !strings.Contains(stdout.String(), "Skipping post") {
		t.Errorf("stdout = %q, want skip notice", stdout.String())
	}
	if strings.Contains(stdout.String(), `"blocks"`) {
		t.Error("message built despite the workday gate")
	}
}

func TestRunPost_ForceOverridesGate(t *testing.T) {
	srv := landscapeStub(t)
	postTestEnv(t, srv.URL)
	t.Setenv("WORKDAY_ONLY", "true")

	env, stdout, _ := testEnv()
	env.Now = func() time.Time { return time.Date(2026, 8, 23, 9, 0, 0, 0, time.UTC) } // Sunday

	flags := &postFlags{dryRun: true, force: true}
	if err := runPost(context.Background(), flags, env); err != nil {
		t.Fatalf("runPost() error = %v", err)
	}
	if !strings.Contains(stdout.String(), `"blocks"`) {
		t.Error("--force did not bypass the workday gate")
	}
}

func TestRunPost_MissingCredentials(t *testing.T) {
	srv := landscapeStub(t)
	postTestEnv(t, srv.URL)

	env, _, _ := testEnv()
	flags := &postFlags{} // no dry-run: posting requires credentials

	err := runPost(context.Background(), flags, env)
	if err == nil {
		t.Fatal("runPost() error = nil, want missing-credential error")
	}
	if !strings.Contains(err.Error(), "hint:") {
		t.Errorf("error %q carries no hint", err)
	}
	if code := exitCodeFor(err); code != ExitUsage {
		t.Errorf("exitCodeFor = %d, want %d", code, ExitUsage)
	}
}
