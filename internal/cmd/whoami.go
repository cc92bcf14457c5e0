package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/restaurapp/restaurapp-cli/internal/session"
)

// WhoamiCommand represents the whoami command
type WhoamiCommand struct {
	root *RootCommand
	cmd  *cobra.Command
}

// NewWhoamiCommand creates a new whoami command
func NewWhoamiCommand(root *RootCommand) *WhoamiCommand {
	w := &WhoamiCommand{
		root: root,
	}

	w.cmd = &cobra.Command{
		Use:   "whoami",
		Short: "Show the currently logged-in user",
		Long: `Show the identity and role of the currently logged-in user.

Examples:
  restaurapp whoami
  restaurapp whoami -o json`,
		RunE: w.Run,
	}

	return w
}

// Command returns the underlying cobra command
func (w *WhoamiCommand) Command() *cobra.Command {
	return w.cmd
}

// Run executes the whoami command
func (w *WhoamiCommand) Run(cmd *cobra.Command, args []string) error {
	authService := w.root.Container().AuthService()

	sess := authService.Session()
	if sess == nil {
		return fmt.Errorf("not logged in. Please run 'restaurapp login' first")
	}

	switch outputFormat(cmd) {
	case "json":
		return w.outputJSON(sess)
	default:
		return w.outputText(sess)
	}
}

// outputJSON outputs the session identity in JSON format
func (w *WhoamiCommand) outputJSON(sess *session.Session) error {
	identity := struct {
		Subject   string `json:"subject"`
		Role      string `json:"role"`
		ExpiresAt string `json:"expiresAt"`
	}{
		Subject:   sess.Subject,
		Role:      sess.Role,
		ExpiresAt: sess.ExpiresAtTime().Format("2006-01-02 15:04:05"),
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(identity)
}

// outputText outputs the session identity in human-readable format
func (w *WhoamiCommand) outputText(sess *session.Session) error {
	fmt.Printf("User:    %s\n", sess.Subject)
	fmt.Printf("Role:    %s\n", sess.Role)
	fmt.Printf("Expires: %s\n", sess.ExpiresAtTime().Format("2006-01-02 15:04:05"))
	return nil
}
