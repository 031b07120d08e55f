// Package cli реализует команды консольного клиента taskkeeper.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"
)

// PrintUsage печатает справку по командам клиента
func PrintUsage() {
	fmt.Println("TaskKeeper Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  taskkeeper [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version        Show version information")
	fmt.Println("  --server URL     Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH        Path to local database (default: taskkeeper-client.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register                       Register new user")
	fmt.Println("  login                          Login to server")
	fmt.Println("  logout                         Delete local session")
	fmt.Println("  status                         Show authentication status")
	fmt.Println("  category add <name> [color]    Create category")
	fmt.Println("  category list                  List categories")
	fmt.Println("  category delete <id>           Delete category")
	fmt.Println("  task add <title>               Create task")
	fmt.Println("  task list                      List tasks")
	fmt.Println("  task get <id>                  Show task details")
	fmt.Println("  task done <id>                 Mark task as completed")
	fmt.Println("  task delete <id>               Delete task")
	fmt.Println("  stats                          Show task statistics")
	fmt.Println()
	fmt.Println("Task list filters:")
	fmt.Println("  task list [--status STATUS] [--category ID] [--search TEXT]")
	fmt.Println("            [--sort-by FIELD] [--sort-dir asc|desc] [--page N] [--limit N]")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  taskkeeper register")
	fmt.Println("  taskkeeper task add 'Buy milk'")
	fmt.Println("  taskkeeper task list --status PENDING --sort-by due_date --sort-dir asc")
	fmt.Println("  taskkeeper --server https://example.com login")
}

// readInput читает строку из stdin
func readInput(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// readPassword читает пароль без отображения на экране
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(passwordBytes), nil
}
