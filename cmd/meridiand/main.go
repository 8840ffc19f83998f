package main

import (
	"os"

	svrcmd "github.com/cosmos/cosmos-sdk/server/cmd"

	"github.com/meridian-chain/meridian/app"
	"github.com/meridian-chain/meridian/cmd/meridiand/cmd"
)

func main() {
	startMetricsServer()

	rootCmd := cmd.NewRootCmd()

	if err := svrcmd.Execute(rootCmd, "", app.DefaultNodeHome); err != nil {
		os.Exit(1)
	}
}
