package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gmr/go-indexlist/config"
	"gmr/go-indexlist/datastruct/list"
	"gmr/go-indexlist/lib/logger"
	"gmr/go-indexlist/shell"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var banner = `
  _           _           _ _     _
 (_)_ __   __| | _____  _| (_)___| |_
 | | '_ \ / _' |/ _ \ \/ / | / __| __|
 | | | | | (_| |  __/>  <| | \__ \ |_
 |_|_| |_|\__,_|\___/_/\_\_|_|___/\__|
`

func main() {
	fmt.Fprint(os.Stderr, banner)

	configFile := os.Getenv("INDEXLIST_CONFIG")
	if configFile == "" && fileExist("indexlist.conf") {
		configFile = "indexlist.conf"
	}
	if configFile != "" {
		if err := config.SetupConfig(configFile); err != nil {
			logger.Fatal(err)
		}
	}
	props := config.Current

	err := logger.Setup(&logger.Settings{
		Path:  props.LogDir,
		Name:  props.LogName,
		Level: props.LogLevel,
	})
	if err != nil {
		logger.Fatal(err)
	}
	logger.Infof("indexlist start, elemtype=%s", props.ElemType)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		// 解除阻塞在标准输入上的读取
		<-ctx.Done()
		_ = os.Stdin.Close()
	}()

	switch props.ElemType {
	case config.ElemTypeDecimal:
		err = serve(ctx, shell.MakeShell[decimal.Decimal](list.NewArrayIndexList[decimal.Decimal](), shell.DecimalCodec()), props)
	default:
		err = serve(ctx, shell.MakeShell[string](list.NewArrayIndexList[string](), shell.StringCodec()), props)
	}
	if err != nil && ctx.Err() == nil {
		logger.Fatal(err)
	}
	logger.Info("indexlist exit")
}

// serve 先执行配置的脚本, 再读取标准输入
func serve[E any](ctx context.Context, s *shell.Shell[E], props *config.Properties) error {
	for _, script := range props.Scripts {
		if err := runScript(ctx, s, script, props.Echo); err != nil {
			return err
		}
	}
	return s.Run(ctx, os.Stdin, os.Stdout, shell.Options{
		Prompt: props.Prompt,
		Echo:   props.Echo,
	})
}

func runScript[E any](ctx context.Context, s *shell.Shell[E], name string, echo bool) error {
	file, err := os.Open(name)
	if err != nil {
		return errors.Wrap(err, "open script")
	}
	defer file.Close()
	logger.Infof("run script %s", name)
	return s.Run(ctx, file, os.Stdout, shell.Options{Echo: echo})
}

func fileExist(fileName string) bool {
	info, err := os.Stat(fileName)
	return err == nil && !info.IsDir()
}
