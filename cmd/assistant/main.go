// WRTeam Sport Center assistant - interactive terminal client
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/wrteam/sportcenter-assistant/internal/assistant"
	"github.com/wrteam/sportcenter-assistant/internal/config"
	"github.com/wrteam/sportcenter-assistant/internal/store"
	"github.com/wrteam/sportcenter-assistant/internal/support"
)

const welcome = `Welcome to WRTeam Sport Center!
Your one-stop shop for sports equipment and apparel.
Football | Baseball | Tennis | Apparel | Footwear | Safety
1-800-WRTEAM | support@wrteam.com
Free shipping on orders over $50 | 30-day returns

What can I help you with today? You can:
- Search products: 'Find football equipment' or 'Show me running shoes'
- Track orders: 'Track my orders' or 'Where is order ORD001?'
- Manage your cart: 'Show my cart' or 'Add BALL001 to cart'
- Get help: 'What's your return policy?' or 'Store hours?'
Type 'exit' to quit.`

// exitWords end the session when typed on their own, case-insensitively.
var exitWords = map[string]bool{"exit": true, "quit": true, "bye": true}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	catalog := store.NewJSONCatalog(filepath.Join(cfg.DataDir, "products.json"))
	orders := store.NewJSONOrders(filepath.Join(cfg.DataDir, "orders.json"))
	carts := store.NewJSONCarts(filepath.Join(cfg.DataDir, "cart.json"), catalog, orders)
	kb := support.NewKnowledgeBase()
	reg := assistant.BuildRegistry(catalog, carts, orders, kb, cfg.DefaultUserID)

	inference, err := assistant.NewGeminiClient(ctx, assistant.GeminiConfig{
		APIKey: cfg.GeminiAPIKey,
		Model:  cfg.GeminiModel,
	}, reg.Operations(), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing assistant: %v\n", err)
		os.Exit(1)
	}

	convlog, err := assistant.NewConversationLogger(assistant.ConversationLogConfig{
		Enabled:   cfg.ConversationLog.Enabled,
		Dir:       cfg.ConversationLog.Dir,
		QueueSize: cfg.ConversationLog.QueueSize,
	}, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing conversation log: %v\n", err)
		os.Exit(1)
	}

	svc := assistant.NewService(inference, reg, convlog, logger, cfg.DefaultUserID, uuid.NewString())
	defer svc.Close()

	fmt.Println(welcome)
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	var history []assistant.Turn
	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if exitWords[strings.ToLower(input)] {
			fmt.Println("\nThanks for shopping with WRTeam Sport Center!")
			return
		}

		res, err := svc.Chat(ctx, input, history)
		if err != nil {
			slog.Warn("chat turn failed", "error", err)
		}
		fmt.Printf("\nAssistant: %s\n\n", res.Text)
		history = res.History
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
}
