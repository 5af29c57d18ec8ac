package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/betbot/exrest/pkg/config"
	"github.com/betbot/exrest/pkg/secretstore"
)

func main() {
	var (
		inPath    = flag.String("in", ".env", "input .env file path")
		dbPath    = flag.String("badger", getenv("EXREST_SECRET_DB", config.DefaultSecretDB), "badger secrets db path")
		secretKey = flag.String("secret-key", getenv("EXREST_SECRET_KEY", ""), "badger encryption key (32 bytes base64/hex)")
		prefix    = flag.String("prefix", getenv("EXREST_SECRET_PREFIX", config.DefaultSecretPrefix), "key prefix inside badger")
		only      = flag.String("only", "", "comma separated keys to import (default: all)")
	)
	flag.Parse()

	keyBytes, err := secretstore.ParseKey(*secretKey)
	if err != nil {
		fatal(err)
	}
	if keyBytes == nil {
		fatal(fmt.Errorf("secret key is required: set EXREST_SECRET_KEY or pass -secret-key"))
	}

	kv, err := godotenv.Read(*inPath)
	if err != nil {
		fatal(err)
	}
	kv = filterKeys(kv, *only)

	ss, err := secretstore.Open(secretstore.OpenOptions{
		Path:          *dbPath,
		EncryptionKey: keyBytes,
	})
	if err != nil {
		fatal(err)
	}
	defer ss.Close()

	written, err := ss.Import(*prefix, kv)
	if err != nil {
		fatal(err)
	}

	fmt.Fprintf(os.Stderr, "已导入 %d 项到 badger：%s（前缀 %s）\n", written, *dbPath, *prefix)
}

func filterKeys(kv map[string]string, only string) map[string]string {
	if strings.TrimSpace(only) == "" {
		return kv
	}
	out := map[string]string{}
	for _, k := range strings.Split(only, ",") {
		k = strings.TrimSpace(k)
		if v, ok := kv[k]; ok {
			out[k] = v
		}
	}
	return out
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err.Error())
	os.Exit(1)
}
