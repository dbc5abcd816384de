package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"recovery-cli/config"
	"recovery-cli/domain/recovery"
	"recovery-cli/pkg/api"
	"recovery-cli/pkg/i18n"
	"recovery-cli/pkg/logger"
	"recovery-cli/pkg/tokenstore"
	"recovery-cli/stubserver"
)

func main() {
	config.InitConfig()

	command := "wizard"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "wizard":
		runWizard()
	case "stub":
		runStub()
	case "token":
		runToken()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		fmt.Println("Usage: go run cmd/main.go [wizard|stub|token]")
		os.Exit(1)
	}
}

func runWizard() {
	// The wizard owns the terminal, so logs go to a file.
	logFile, err := os.OpenFile(config.LogFile(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Printf("Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	logger.Init(logger.Config{
		Level:       logger.Level(config.LogLevel()),
		Environment: "production",
		Output:      logFile,
	})
	log := logger.Get()

	msgs := i18n.New(config.Locale())
	tokens := tokenstore.New(config.TokenFile())
	client := api.New(config.APIBaseURL(), tokens)

	program := tea.NewProgram(recovery.New(client, msgs, log), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		log.Error("wizard failed", err)
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if m, ok := final.(recovery.Model); ok && m.LoginHint() {
		fmt.Println(msgs.T(i18n.KeyLoginHint))
	}
}

// runToken manages the persisted access token for local runs against the
// stub backend, standing in for the login flow that normally writes it.
func runToken() {
	tokens := tokenstore.New(config.TokenFile())

	action := ""
	if len(os.Args) > 2 {
		action = os.Args[2]
	}

	switch action {
	case "set":
		if len(os.Args) < 4 {
			fmt.Println("Usage: go run cmd/main.go token set <token>")
			os.Exit(1)
		}
		if err := tokens.Save(os.Args[3]); err != nil {
			fmt.Printf("Failed to save token: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Token saved")
	case "clear":
		if err := tokens.Clear(); err != nil {
			fmt.Printf("Failed to clear token: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Token cleared")
	default:
		fmt.Println("Usage: go run cmd/main.go token [set <token>|clear]")
		os.Exit(1)
	}
}

func runStub() {
	logger.Init(logger.Config{
		Level:       logger.Level(config.LogLevel()),
		Environment: "development",
	})
	log := logger.Get()

	srv := stubserver.New(log, stubserver.DefaultAccounts()...)
	e := srv.Echo()

	log.Info("stub backend listening", logger.String("addr", config.StubListenAddr()))
	if err := e.Start(config.StubListenAddr()); err != nil {
		log.Fatal("stub backend stopped", err)
	}
}
