package cmd

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/restaurapp/restaurapp-cli/internal/session"
)

func TestWhoamiCommand_Run(t *testing.T) {
	expiresAt := time.Date(2026, 8, 28, 22, 0, 0, 0, time.UTC).UnixMilli()

	tests := []struct {
		name        string
		args        []string
		mockSession *session.Session
		wantOutput  []string
		wantErr     bool
	}{
		{
			name: "shows the logged-in identity",
			args: []string{"whoami"},
			mockSession: &session.Session{
				AccessToken: "token",
				Subject:     "ana@restaurapp.com",
				Role:        "mesero",
				ExpiresAt:   expiresAt,
			},
			wantOutput: []string{"ana@restaurapp.com", "mesero"},
			wantErr:    false,
		},
		{
			name: "outputs JSON format",
			args: []string{"whoami", "-o", "json"},
			mockSession: &session.Session{
				AccessToken: "token",
				Subject:     "ana@restaurapp.com",
				Role:        "admin",
				ExpiresAt:   expiresAt,
			},
			wantOutput: []string{`"subject": "ana@restaurapp.com"`, `"role": "admin"`},
			wantErr:    false,
		},
		{
			name:        "errors when not logged in",
			args:        []string{"whoami"},
			mockSession: nil,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAuth := &MockAuthService{
				SessionFunc: func() *session.Session {
					return tt.mockSession
				},
			}

			root := newTestRoot(mockAuth, nil)
			root.Command().SetArgs(tt.args)

			output, err := captureStdout(t, root.Command().Execute)

			if (err != nil) != tt.wantErr {
				t.Errorf("Run() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			for _, want := range tt.wantOutput {
				if !strings.Contains(output, want) {
					t.Errorf("Output should contain %q, got: %s", want, output)
				}
			}
		})
	}
}

func TestLogoutCommand_Run(t *testing.T) {
	called := false
	mockAuth := &MockAuthService{
		LogoutFunc: func(ctx context.Context) error {
			called = true
			return nil
		},
	}

	root := newTestRoot(mockAuth, nil)
	root.Command().SetArgs([]string{"logout"})

	output, err := captureStdout(t, root.Command().Execute)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !called {
		t.Error("Logout should be delegated to the auth service")
	}
	if !strings.Contains(output, "logged out") {
		t.Errorf("Output should confirm logout, got: %s", output)
	}
}
