package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

// printStructured 按 --output 输出 json 或 yaml
func printStructured(cmd *cobra.Command, v any) error {
	format, _ := cmd.Flags().GetString("output")
	return writeStructured(cmd.OutOrStdout(), format, v)
}

func writeStructured(w io.Writer, format string, v any) error {
	switch strings.ToLower(format) {
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// readInput 读取文件内容；path 为空或 "-" 时读 stdin
func readInput(cmd *cobra.Command, path string) (string, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}
