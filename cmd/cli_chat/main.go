package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"chat-relay/internal/config"
	"chat-relay/internal/conversation"
	"chat-relay/internal/domain"
)

func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadClientConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	relay := conversation.NewHTTPRelay(cfg.RelayURL, cfg.RelayTimeout)
	var reporter conversation.FeedbackReporter
	if cfg.FeedbackEnabled {
		reporter = relay
	}
	sess := conversation.NewSession(conversation.NewStore(), relay, conversation.NotifierFunc(printNotification), reporter, logger)

	fmt.Printf("===== Chat (%s) =====\n", cfg.RelayURL)
	printHelp()

	for {
		fmt.Print("\n> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			return
		}
		line = strings.TrimRight(line, "\r\n")

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "/quit", "/salir":
			return
		case "/help":
			printHelp()
			continue
		case "/history":
			printConversation(sess.Store().Messages())
			continue
		case "/up":
			sess.Rate(ctx, domain.RatingUp)
			continue
		case "/down":
			sess.Rate(ctx, domain.RatingDown)
			continue
		case "/regen":
			fmt.Println("... regenerando")
			reply, err := sess.Regenerate(ctx)
			if errors.Is(err, conversation.ErrNothingToRegenerate) {
				fmt.Println("No hay mensajes para regenerar.")
				continue
			}
			if err == nil {
				printMessage(reply)
			}
			continue
		}

		fmt.Println("... pensando")
		reply, err := sess.Send(ctx, line)
		switch {
		case errors.Is(err, conversation.ErrEmptyInput):
			continue
		case errors.Is(err, conversation.ErrBusy):
			fmt.Println("Espera a que termine la respuesta anterior.")
		case err == nil:
			printMessage(reply)
		}
	}
}

func printHelp() {
	fmt.Println("Escribe un mensaje y presiona Enter para enviarlo.")
	fmt.Println("[/regen] Regenerar ultima respuesta  [/up] Me gusta  [/down] No me gusta")
	fmt.Println("[/history] Ver conversacion  [/quit] Salir")
}

func printNotification(n conversation.Notification) {
	prefix := "*"
	if n.Variant == conversation.VariantDestructive {
		prefix = "!"
	}
	fmt.Printf("%s %s: %s\n", prefix, n.Title, n.Description)
}

func printMessage(m domain.Message) {
	label := "Tu"
	if m.Role == domain.RoleAssistant {
		label = "Asistente"
	}
	rating := ""
	switch m.Rating {
	case domain.RatingUp:
		rating = " [+]"
	case domain.RatingDown:
		rating = " [-]"
	}
	fmt.Printf("\n%s%s:\n%s\n", label, rating, m.Content)
}

func printConversation(msgs []domain.Message) {
	if len(msgs) == 0 {
		fmt.Println("La conversacion esta vacia.")
		return
	}
	for _, m := range msgs {
		printMessage(m)
	}
}
