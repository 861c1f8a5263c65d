package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nativebind/nativebind-go/pkg/bytebuf"
)

var reverseCmd = &cobra.Command{
	Use:   "reverse <hex>",
	Short: "Reverse a hex-encoded buffer",
	Long: `Reverse the bytes of a hex-encoded buffer and print the result as hex.

By default the native routine is used. With --sandbox the reversal runs
inside a WebAssembly guest with the given memory limit.`,
	Args: cobra.ExactArgs(1),
	RunE: runReverse,
}

func init() {
	reverseCmd.Flags().Bool("sandbox", false, "Reverse inside the WebAssembly sandbox")
	reverseCmd.Flags().Uint32("memory-pages", 16, "Sandbox memory limit in 64 KiB pages")
	reverseCmd.Flags().String("cache-dir", "", "Sandbox compilation cache directory")
	rootCmd.AddCommand(reverseCmd)
}

func runReverse(cmd *cobra.Command, args []string) error {
	buf, err := hex.DecodeString(args[0])
	if err != nil {
		return fmt.Errorf("decode input: %w", err)
	}

	sandbox, _ := cmd.Flags().GetBool("sandbox")
	if !sandbox {
		bytebuf.Reverse(buf)
		fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(buf))
		return nil
	}

	pages, _ := cmd.Flags().GetUint32("memory-pages")
	cacheDir, _ := cmd.Flags().GetString("cache-dir")

	ctx := cmd.Context()
	sb, err := bytebuf.NewSandbox(ctx, bytebuf.Config{
		MemoryLimitPages: pages,
		CacheDir:         cacheDir,
		Logger:           newLogger(cmd),
	})
	if err != nil {
		return err
	}
	defer sb.Close(ctx)

	if err := sb.Reverse(ctx, buf); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(buf))
	return nil
}
