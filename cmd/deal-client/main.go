package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/monodeal/deal-client-go/internal/client"
	"github.com/monodeal/deal-client-go/internal/config"
	"github.com/monodeal/deal-client-go/internal/session"
	"github.com/monodeal/deal-client-go/internal/ui"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath = flag.String("config", "", "path to configuration file")
	serverURL  = flag.String("server", "", "override server websocket URL")
	version    = "dev" // set via ldflags during build
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *serverURL != "" {
		cfg.Server.URL = *serverURL
	}

	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting deal client",
		zap.String("version", version),
		zap.String("server", cfg.Server.URL),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	sess, err := session.Dial(ctx, cfg.Server, logger)
	if err != nil {
		logger.Fatal("failed to connect", zap.Error(err))
	}
	defer sess.Close()

	ctrl := client.New(sess, cfg.Player.Name, logger)
	render := ui.New(os.Stdout)

	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	fmt.Println("deal-client ready. Commands: create <name> | join <code> <name> | start | draw |")
	fmt.Println("  play <n> [double] | bank <n> | pick <n> | cancel | rearrange | discard <n> |")
	fmt.Println("  submit | pay <n> | accept | give <n> | no | end | chat <msg> | leave | quit")

	for {
		select {
		case sig := <-sigChan:
			logger.Info("received shutdown signal", zap.String("signal", sig.String()))
			return
		case ev, ok := <-sess.Events():
			if !ok {
				logger.Info("session ended")
				return
			}
			ctrl.HandleEvent(ev)
			render.Render(ctrl, sess.Connected())
		case line, ok := <-lines:
			if !ok {
				return
			}
			if strings.TrimSpace(line) == "quit" {
				return
			}
			if err := dispatch(ctrl, cfg.Player.Name, line); err != nil {
				fmt.Printf("! %v\n", err)
			}
			render.Render(ctrl, sess.Connected())
		}
	}
}

// dispatch parses one command line into a controller operation.
func dispatch(ctrl *client.Controller, defaultName, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "create":
		name := defaultName
		if len(args) > 0 {
			name = args[0]
		}
		return ctrl.CreateRoom(name)
	case "join":
		if len(args) < 1 {
			return fmt.Errorf("usage: join <code> [name]")
		}
		name := defaultName
		if len(args) > 1 {
			name = args[1]
		}
		return ctrl.JoinRoom(strings.ToUpper(args[0]), name)
	case "start":
		return ctrl.StartGame()
	case "draw":
		return ctrl.DrawCards()
	case "end":
		return ctrl.EndTurn()
	case "play":
		id, err := handCardID(ctrl, args)
		if err != nil {
			return err
		}
		double := len(args) > 1 && args[1] == "double"
		return ctrl.StartPlay(id, double)
	case "bank":
		id, err := handCardID(ctrl, args)
		if err != nil {
			return err
		}
		return ctrl.PlayAsBank(id)
	case "pick":
		return pick(ctrl, args)
	case "cancel":
		ctrl.CancelWizard()
		return nil
	case "rearrange":
		return ctrl.StartRearrange()
	case "discard":
		id, err := handCardID(ctrl, args)
		if err != nil {
			return err
		}
		return ctrl.ToggleDiscard(id)
	case "submit":
		return ctrl.SubmitDiscard()
	case "pay":
		return togglePayment(ctrl, args)
	case "accept":
		if r := ctrl.Responder(); r != nil && r.Action().IsMonetary() {
			return ctrl.AcceptWithPayment()
		}
		return ctrl.Accept()
	case "give":
		return surrender(ctrl, args)
	case "no":
		return ctrl.Veto()
	case "chat":
		return ctrl.SendChat(strings.Join(args, " "))
	case "leave":
		return ctrl.LeaveRoom()
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func index(args []string) (int, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("missing index")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid index %q", args[0])
	}
	return n - 1, nil
}

func handCardID(ctrl *client.Controller, args []string) (string, error) {
	i, err := index(args)
	if err != nil {
		return "", err
	}
	me, ok := ctrl.Me()
	if !ok || i >= len(me.Hand) {
		return "", fmt.Errorf("no hand card %d", i+1)
	}
	return me.Hand[i].ID, nil
}

// pick resolves the wizard's current option list by 1-based index.
func pick(ctrl *client.Controller, args []string) error {
	w := ctrl.Wizard()
	if w == nil {
		return fmt.Errorf("nothing to pick")
	}
	i, err := index(args)
	if err != nil {
		return err
	}
	if opts := w.PlayerOptions(); opts != nil {
		if i >= len(opts) {
			return fmt.Errorf("no option %d", i+1)
		}
		return ctrl.ChoosePlayer(opts[i].ID)
	}
	if opts := w.SetOptions(); opts != nil {
		if i >= len(opts) {
			return fmt.Errorf("no option %d", i+1)
		}
		return ctrl.ChooseSet(opts[i].Color)
	}
	if opts := w.WildcardOptions(); opts != nil {
		if i >= len(opts) {
			return fmt.Errorf("no option %d", i+1)
		}
		return ctrl.ChooseWildcard(opts[i].Card.ID)
	}
	if opts := w.ColorOptions(); opts != nil {
		if i >= len(opts) {
			return fmt.Errorf("no option %d", i+1)
		}
		return ctrl.ChooseColor(opts[i])
	}
	return fmt.Errorf("nothing to pick")
}

// togglePayment indexes the responder's liquid cards: bank first, then
// tabled properties in set order.
func togglePayment(ctrl *client.Controller, args []string) error {
	r := ctrl.Responder()
	if r == nil {
		return fmt.Errorf("no demand to pay")
	}
	i, err := index(args)
	if err != nil {
		return err
	}
	me, ok := ctrl.Me()
	if !ok {
		return fmt.Errorf("player unknown")
	}
	var liquid []string
	for _, c := range me.Bank {
		liquid = append(liquid, c.ID)
	}
	for _, s := range me.Properties {
		for _, c := range s.Cards {
			liquid = append(liquid, c.ID)
		}
	}
	if i >= len(liquid) {
		return fmt.Errorf("no liquid card %d", i+1)
	}
	r.TogglePayment(liquid[i])
	return nil
}

// surrender indexes the cards of the demanded set.
func surrender(ctrl *client.Controller, args []string) error {
	r := ctrl.Responder()
	if r == nil {
		return fmt.Errorf("no demand to answer")
	}
	i, err := index(args)
	if err != nil {
		return err
	}
	me, ok := ctrl.Me()
	if !ok {
		return fmt.Errorf("player unknown")
	}
	set, found := me.Set(r.Action().TargetSet)
	if !found || i >= len(set.Cards) {
		return fmt.Errorf("no card %d in the demanded set", i+1)
	}
	if err := r.SelectSurrender(set.Cards[i].ID); err != nil {
		return err
	}
	return ctrl.AcceptWithSurrender()
}

// initLogger initializes the zap logger based on configuration
func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
