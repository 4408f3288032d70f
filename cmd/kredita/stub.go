package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kredita/kredita/internal/common"
	"github.com/kredita/kredita/internal/stub"
)

func stubCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stub",
		Short: "Run a local fixture analysis service",
		Long: `Serve canned /parse and /score responses on the analysis service port
so the dashboard can be tried without the real service. The responses
are fixtures; no actual message parsing happens.`,
		RunE: runStub,
	}

	cmd.Flags().String("listen", "127.0.0.1:8000", "address to listen on")
	_ = viper.BindPFlag("stub.listen", cmd.Flags().Lookup("listen"))

	return cmd
}

func runStub(cmd *cobra.Command, _ []string) error {
	addr := viper.GetString("stub.listen")
	app := stub.New()

	go func() {
		<-cmd.Context().Done()
		if err := app.Shutdown(); err != nil {
			common.LogError(err, "stub shutdown failed", nil)
		}
	}()

	common.LogInfo("stub analysis service listening", common.Fields{"addr": addr})
	if err := app.Listen(addr); err != nil {
		return fmt.Errorf("stub server failed: %w", err)
	}
	return nil
}
