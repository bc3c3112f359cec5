package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	tgdv1 "github.com/mvieira/tgd/gen/tgd/v1"
	"github.com/mvieira/tgd/internal/session"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func main() {
	sessionFlag := flag.String("session", "", "session name (overrides config default)")
	jsonFlag := flag.Bool("json", false, "output in JSON format")
	flag.Parse()

	sessionName := session.Resolve(*sessionFlag)
	if err := session.ValidateName(sessionName); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	socketPath := session.SocketPath(sessionName)
	conn, err := grpc.NewClient("unix://"+socketPath,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: cannot connect to daemon for session %q: %v\n", sessionName, err)
		os.Exit(1)
	}
	defer func() { _ = conn.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch args[0] {
	case "auth":
		cmdAuth(ctx, conn, args[1:], *jsonFlag)
	case "chats":
		cmdChats(ctx, conn, args[1:], *jsonFlag)
	case "chat":
		cmdChat(ctx, conn, args[1:], *jsonFlag)
	case "send":
		cmdSend(ctx, conn, args[1:])
	case "stickers":
		cmdStickers(ctx, conn, args[1:], *jsonFlag)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: tgctl [--session <name>] [--json] <command>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  auth status          Show authorization state")
	fmt.Fprintln(os.Stderr, "  auth phone <number>  Submit the account phone number")
	fmt.Fprintln(os.Stderr, "  auth code <code>     Submit the login code")
	fmt.Fprintln(os.Stderr, "  chats [limit]        List top chats (default 50)")
	fmt.Fprintln(os.Stderr, "  chat <id>            Show one chat")
	fmt.Fprintln(os.Stderr, "  send <id> <text>     Send a text message")
	fmt.Fprintln(os.Stderr, "  stickers list        List installed sticker sets")
	fmt.Fprintln(os.Stderr, "  stickers get <id>    Show one sticker set")
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fatal(err)
	}
	fmt.Println(string(data))
}

func cmdAuth(ctx context.Context, conn *grpc.ClientConn, args []string, jsonOut bool) {
	c := tgdv1.NewAuthServiceClient(conn)
	if len(args) == 0 {
		args = []string{"status"}
	}
	switch args[0] {
	case "status":
		resp, err := c.GetAuthState(ctx, &tgdv1.GetAuthStateRequest{})
		if err != nil {
			fatal(err)
		}
		if jsonOut {
			printJSON(map[string]any{"state": resp.State, "authorized": resp.Authorized})
			return
		}
		fmt.Printf("state: %s\nauthorized: %v\n", resp.State, resp.Authorized)
	case "phone":
		if len(args) < 2 {
			fatal(fmt.Errorf("usage: tgctl auth phone <number>"))
		}
		resp, err := c.SendPhoneNumber(ctx, &tgdv1.SendPhoneNumberRequest{PhoneNumber: args[1]})
		if err != nil {
			fatal(err)
		}
		fmt.Println(resp.Message)
	case "code":
		if len(args) < 2 {
			fatal(fmt.Errorf("usage: tgctl auth code <code>"))
		}
		resp, err := c.CheckAuthCode(ctx, &tgdv1.CheckAuthCodeRequest{Code: args[1]})
		if err != nil {
			fatal(err)
		}
		fmt.Println(resp.Message)
	default:
		fatal(fmt.Errorf("unknown auth subcommand: %s", args[0]))
	}
}

func cmdChats(ctx context.Context, conn *grpc.ClientConn, args []string, jsonOut bool) {
	limit := int32(50)
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			fatal(fmt.Errorf("invalid limit %q", args[0]))
		}
		limit = int32(n)
	}

	resp, err := tgdv1.NewChatServiceClient(conn).ListChats(ctx, &tgdv1.ListChatsRequest{Limit: limit})
	if err != nil {
		fatal(err)
	}
	if jsonOut {
		printJSON(resp.Chats)
		return
	}
	for _, c := range resp.Chats {
		fmt.Printf("%d\t[%s]\t%s\t%s\n", c.Id, c.Kind, c.Title, c.LastMessageText)
	}
	fmt.Printf("total known: %d\n", resp.TotalKnown)
}

func cmdChat(ctx context.Context, conn *grpc.ClientConn, args []string, jsonOut bool) {
	if len(args) < 1 {
		fatal(fmt.Errorf("usage: tgctl chat <id>"))
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fatal(fmt.Errorf("invalid chat id %q", args[0]))
	}

	resp, err := tgdv1.NewChatServiceClient(conn).GetChat(ctx, &tgdv1.GetChatRequest{ChatId: id})
	if err != nil {
		fatal(err)
	}
	if jsonOut {
		printJSON(resp.Chat)
		return
	}
	c := resp.Chat
	fmt.Printf("id: %d\ntitle: %s\nkind: %s\nlast message: %s\n", c.Id, c.Title, c.Kind, c.LastMessageText)
}

func cmdSend(ctx context.Context, conn *grpc.ClientConn, args []string) {
	if len(args) < 2 {
		fatal(fmt.Errorf("usage: tgctl send <chat-id> <text>"))
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fatal(fmt.Errorf("invalid chat id %q", args[0]))
	}

	resp, err := tgdv1.NewChatServiceClient(conn).SendMessage(ctx, &tgdv1.SendMessageRequest{
		ChatId: id,
		Text:   args[1],
	})
	if err != nil {
		fatal(err)
	}
	fmt.Printf("sent message %d\n", resp.MessageId)
}

func cmdStickers(ctx context.Context, conn *grpc.ClientConn, args []string, jsonOut bool) {
	c := tgdv1.NewStickerServiceClient(conn)
	if len(args) == 0 {
		args = []string{"list"}
	}
	switch args[0] {
	case "list":
		resp, err := c.ListStickerSets(ctx, &tgdv1.ListStickerSetsRequest{})
		if err != nil {
			fatal(err)
		}
		if jsonOut {
			printJSON(resp.Sets)
			return
		}
		for _, s := range resp.Sets {
			fmt.Printf("%d\t%s\t(%d stickers)\n", s.Id, s.Title, s.Size)
		}
	case "get":
		if len(args) < 2 {
			fatal(fmt.Errorf("usage: tgctl stickers get <id>"))
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			fatal(fmt.Errorf("invalid set id %q", args[1]))
		}
		resp, err := c.GetStickerSet(ctx, &tgdv1.GetStickerSetRequest{SetId: id})
		if err != nil {
			fatal(err)
		}
		if jsonOut {
			printJSON(resp.Set)
			return
		}
		fmt.Printf("%s (%s)\n", resp.Set.Title, resp.Set.Name)
		for _, st := range resp.Set.Stickers {
			fmt.Printf("  %s\t%dx%d\tfile %d\n", st.Emoji, st.Width, st.Height, st.FileId)
		}
	default:
		fatal(fmt.Errorf("unknown stickers subcommand: %s", args[0]))
	}
}
