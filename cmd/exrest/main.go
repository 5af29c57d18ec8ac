package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/betbot/exrest/pkg/config"
	"github.com/betbot/exrest/pkg/logger"
	"github.com/betbot/exrest/pkg/secretstore"
	"github.com/betbot/exrest/rest/client"
	"github.com/betbot/exrest/rest/deribit"
	"github.com/betbot/exrest/rest/kraken"
	"github.com/betbot/exrest/rest/types"
)

var exchanges = map[string]*client.Exchange{
	"kraken":  kraken.Exchange,
	"deribit": deribit.Exchange,
}

func main() {
	var (
		envPath    = flag.String("env", ".env", ".env file path (optional)")
		configPath = flag.String("config", "", "config file (.yaml/.yml/.json)")
		exchange   = flag.String("exchange", "", "exchange name, overrides config (kraken, deribit)")
		op         = flag.String("op", "", "operation name, e.g. ticker or balance")
		params     = flag.String("params", "", "url-encoded parameters, e.g. pair=XBTUSD")
		list       = flag.Bool("list", false, "list operations of the exchange and exit")
	)
	flag.Parse()

	// .env 不存在时忽略
	_ = godotenv.Load(*envPath)

	if *exchange != "" {
		os.Setenv("EXREST_EXCHANGE", *exchange)
	}
	config.SetConfigPath(*configPath)
	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}

	if err := logger.Init(logger.Config{
		Level:      cfg.LogLevel,
		OutputFile: cfg.LogFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
		Compress:   true,
	}); err != nil {
		fatal(err)
	}

	ex := exchanges[cfg.Exchange]
	if *list {
		printOps(ex)
		return
	}
	if *op == "" {
		fatal(errors.New("-op is required (use -list to see operations)"))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []client.Option{
		client.WithApiParams(cfg.ApiParams(ex.Defaults)),
		client.WithTimeout(cfg.Timeout()),
		client.WithProxy(cfg.Proxy),
	}

	out, err := run(ctx, cfg, ex, *op, *params, opts)
	if err != nil {
		fatal(err)
	}
	fmt.Println(out)
}

func run(ctx context.Context, cfg *config.Config, ex *client.Exchange, op, params string, opts []client.Option) (string, error) {
	pub, err := client.NewPublicClient(ex, opts...)
	if err != nil {
		return "", err
	}

	if _, ok := ex.PublicRoute(client.PublicOp(op)); ok {
		return pub.Public(ctx, client.PublicOp(op), params)
	}
	if _, ok := ex.PrivateRoute(client.PrivateOp(op)); !ok {
		return "", fmt.Errorf("%w: %s/%s", client.ErrUnknownOperation, ex.Name, op)
	}

	creds, err := loadCredentials(cfg)
	if err != nil {
		return "", err
	}
	logger.Component("cli").WithField("api_key", creds.String()).Debug("using credentials")
	return pub.SetCredentials(creds).Private(ctx, client.PrivateOp(op), params)
}

// loadCredentials 环境变量优先，其次 badger 凭证库
func loadCredentials(cfg *config.Config) (*types.ApiCredentials, error) {
	key := strings.TrimSpace(os.Getenv(secretstore.APIKeyName))
	secret := strings.TrimSpace(os.Getenv(secretstore.APISecretName))
	if key != "" && secret != "" {
		return types.NewApiCredentials(key, secret), nil
	}

	if _, err := os.Stat(cfg.Secrets.BadgerPath); err != nil {
		return nil, fmt.Errorf("no credentials: set %s/%s or import them with env2badger", secretstore.APIKeyName, secretstore.APISecretName)
	}
	encKey, err := secretstore.ParseKey(os.Getenv("EXREST_SECRET_KEY"))
	if err != nil {
		return nil, err
	}
	ss, err := secretstore.Open(secretstore.OpenOptions{
		Path:          cfg.Secrets.BadgerPath,
		EncryptionKey: encKey,
		ReadOnly:      true,
	})
	if err != nil {
		return nil, err
	}
	defer ss.Close()
	return ss.Credentials(cfg.Secrets.Prefix)
}

func printOps(ex *client.Exchange) {
	fmt.Printf("%s (%s/%s)\n", ex.Name, ex.Defaults.BaseURL, ex.Defaults.Version)
	for _, op := range ex.PublicOps() {
		r, _ := ex.PublicRoute(op)
		fmt.Printf("  public   %-24s %s%s\n", op, r.Endpoint, nullaryMark(r))
	}
	for _, op := range ex.PrivateOps() {
		r, _ := ex.PrivateRoute(op)
		fmt.Printf("  private  %-24s %s%s\n", op, r.Endpoint, nullaryMark(r))
	}
}

func nullaryMark(r client.Route) string {
	if r.Nullary {
		return " (no params)"
	}
	return ""
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err.Error())
	os.Exit(1)
}
