// Package main prdctl 命令行工具：在终端里完成章节点评、大纲解析和 PRD 导出
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"prd-coach-api/internal/config"
	"prd-coach-api/pkg/logger"
)

// version 构建时注入
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "prdctl",
	Short: "Write a PRD section by section with AI feedback",
	Long: `prdctl talks to the same chat-completion gateway as prd-coach-api.

Subcommands list the built-in sections, parse a custom outline into
sections, get feedback on a section draft and export a YAML draft file
to Markdown or HTML.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
		level, _ := cmd.Flags().GetString("log-level")
		// 日志写 stderr，stdout 只输出结果
		logger.InitWithWriter(os.Stderr, level, "text")
	},
}

func init() {
	rootCmd.PersistentFlags().String("config-dir", config.DefaultDir, "directory containing config.yaml")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringP("output", "o", "json", "output format for structured results (json, yaml)")
}

// loadConfig 读取配置并校验上游凭证
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	dir, _ := cmd.Flags().GetString("config-dir")
	cfg, err := config.LoadFrom(dir)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
