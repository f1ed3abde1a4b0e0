package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sixwings/internal/logger"
	"sixwings/pkg/session"
)

// wingsctl logs into a 6Wings backend, keeps the session fresh in the
// background and dumps the category tree using the managed access token.
func main() {
	server := flag.String("server", "http://localhost:8082", "backend base URL")
	email := flag.String("email", "", "account email")
	password := flag.String("password", "", "account password")
	interval := flag.Duration("interval", session.DefaultCheckInterval, "expiry check interval")
	watch := flag.Bool("watch", false, "keep running and report session state every tick")
	flag.Parse()

	if *email == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	slogger := logger.Load()

	client := session.NewClient(*server, slogger)
	manager := session.NewManager(client, session.NewStore(), slogger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	s, err := manager.Login(ctx, *email, *password)
	if err != nil {
		log.Fatal("login failed:", err)
	}
	fmt.Printf("logged in as %s (%s), token expires %s\n",
		s.Identity.Name, s.Identity.Role, time.Unix(s.AccessExpiresAt, 0).Format(time.RFC3339))

	checker := session.NewChecker(manager, slogger, *interval)
	checker.Start(ctx)
	defer checker.Stop()

	if err := dumpCategories(ctx, *server, manager); err != nil {
		log.Fatal("fetch categories:", err)
	}

	if !*watch {
		return
	}

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			fmt.Println("\nbye")
			return
		case <-ticker.C:
			cur, ok := manager.Current()
			if !ok {
				log.Fatal("session ended, log in again")
			}
			fmt.Printf("session ok, %s until expiry\n",
				session.Remaining(&cur, time.Now()).Round(time.Second))
		}
	}
}

func dumpCategories(ctx context.Context, server string, manager *session.Manager) error {
	cur, ok := manager.Current()
	if !ok {
		return session.ErrNoActiveSession
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server+"/api/categorias", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+cur.AccessToken)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var categories []struct {
		ID            string   `json:"id"`
		Name          string   `json:"nome"`
		Subcategories []string `json:"subcategorias"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&categories); err != nil {
		return err
	}
	for _, c := range categories {
		fmt.Printf("  %s: %v\n", c.Name, c.Subcategories)
	}
	return nil
}
