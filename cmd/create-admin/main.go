package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/campushq/advising-backend/internal/config"
	"github.com/campushq/advising-backend/internal/database"
	"github.com/campushq/advising-backend/internal/logger"
	"github.com/campushq/advising-backend/internal/repository"
	"github.com/campushq/advising-backend/internal/service"
)

// Registrar admins are created from the shell, never through the API.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx := context.Background()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	adminRepo := repository.NewAdminRepository(pool)
	authService := service.NewAuthService(cfg, nil)
	adminService := service.NewAdminService(adminRepo, authService)

	fmt.Println("=== Create New Registrar Admin ===")

	reader := bufio.NewReader(os.Stdin)
	name, ok := prompt(reader, "Name")
	if !ok {
		return
	}
	email, ok := prompt(reader, "Email")
	if !ok {
		return
	}

	password, err := readPassword("Password")
	if err != nil {
		fmt.Println("\nError reading password")
		return
	}
	if len(password) < 6 {
		fmt.Println("Error: password must be at least 6 characters")
		return
	}
	confirm, err := readPassword("Confirm password")
	if err != nil || confirm != password {
		fmt.Println("\nError: passwords do not match")
		return
	}

	admin, err := adminService.Create(ctx, name, email, password)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create admin")
	}

	fmt.Printf("\nSuccess! Admin '%s' (%s) created with ID: %d\n", admin.Name, admin.Email, admin.ID)
}

func prompt(reader *bufio.Reader, label string) (string, bool) {
	fmt.Printf("Enter %s: ", label)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		fmt.Printf("Error: %s is required\n", strings.ToLower(label))
		return "", false
	}
	return line, true
}

func readPassword(label string) (string, error) {
	fmt.Printf("Enter %s: ", label)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
